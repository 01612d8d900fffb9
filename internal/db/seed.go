package db

import (
	"log"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/borangersfc/ticketing/internal/auth"
	"github.com/borangersfc/ticketing/internal/matches"
	"github.com/borangersfc/ticketing/internal/tickets"
)

// Seed loads the development sample data: an admin account, the ticket
// categories, and a few fixtures. Runs only against an empty database.
func Seed(d *gorm.DB) {
	var n int64
	if err := d.Model(&auth.User{}).Count(&n).Error; err != nil {
		log.Fatalf("seed: %v", err)
	}
	if n > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("seed: %v", err)
	}
	admin := auth.User{
		Username:     "admin",
		Email:        "admin@borangersfc.com",
		PasswordHash: string(hash),
		IsAdmin:      true,
	}
	if err := d.Create(&admin).Error; err != nil {
		log.Fatalf("seed admin: %v", err)
	}
	if err := d.Create(&auth.Profile{UserID: admin.ID}).Error; err != nil {
		log.Fatalf("seed admin profile: %v", err)
	}

	categories := []tickets.Category{
		{Name: "VIP", Price: decimal.NewFromInt(50000), Description: "Premium seating with refreshments"},
		{Name: "Regular", Price: decimal.NewFromInt(15000), Description: "Standard stadium seating"},
		{Name: "Student", Price: decimal.NewFromInt(8000), Description: "Discounted tickets for students"},
		{Name: "Family", Price: decimal.NewFromInt(40000), Description: "Family package for 4 people"},
	}
	for i := range categories {
		if err := d.Create(&categories[i]).Error; err != nil {
			log.Fatalf("seed category: %v", err)
		}
	}

	now := time.Now()
	fixtures := []matches.Match{
		{
			HomeTeam: "Bo Rangers FC",
			AwayTeam: "East End Lions",
			Kickoff:  now.AddDate(0, 0, 7),
			Venue:    "Bo Stadium",
			Status:   matches.StatusUpcoming,
		},
		{
			HomeTeam: "Bo Rangers FC",
			AwayTeam: "Mighty Blackpool",
			Kickoff:  now.AddDate(0, 0, 14),
			Venue:    "Bo Stadium",
			Status:   matches.StatusUpcoming,
		},
		{
			HomeTeam:  "FC Kallon",
			AwayTeam:  "Bo Rangers FC",
			Kickoff:   now.AddDate(0, 0, -7),
			Venue:     "National Stadium",
			Status:    matches.StatusCompleted,
			HomeScore: 1,
			AwayScore: 2,
		},
	}
	for i := range fixtures {
		if err := d.Create(&fixtures[i]).Error; err != nil {
			log.Fatalf("seed match: %v", err)
		}
	}
	log.Printf("seeded sample data: 1 admin, %d categories, %d matches", len(categories), len(fixtures))
}
