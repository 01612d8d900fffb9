package matches

import (
	"fmt"
	"time"
)

const (
	StatusUpcoming  = "upcoming"
	StatusLive      = "live"
	StatusCompleted = "completed"
)

type Match struct {
	ID          int64     `json:"id"`
	HomeTeam    string    `json:"home_team" gorm:"size:100;not null"`
	AwayTeam    string    `json:"away_team" gorm:"size:100;not null"`
	Kickoff     time.Time `json:"date_time" gorm:"index;not null"`
	Venue       string    `json:"venue" gorm:"size:200"`
	Status      string    `json:"status" gorm:"size:20;index;default:upcoming"`
	HomeScore   int       `json:"home_score"`
	AwayScore   int       `json:"away_score"`
	Description string    `json:"description"`
}

// Describe is the human-readable fixture descriptor used in QR payloads
// and listings: "Home vs Away - 2025-10-10".
func (m Match) Describe() string {
	return fmt.Sprintf("%s vs %s - %s", m.HomeTeam, m.AwayTeam, m.Kickoff.Format("2006-01-02"))
}

func ValidStatus(s string) bool {
	switch s {
	case StatusUpcoming, StatusLive, StatusCompleted:
		return true
	}
	return false
}
