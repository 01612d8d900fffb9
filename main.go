package main

import (
	"flag"
	"log"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/borangersfc/ticketing/internal/auth"
	"github.com/borangersfc/ticketing/internal/config"
	dbpkg "github.com/borangersfc/ticketing/internal/db"
	"github.com/borangersfc/ticketing/internal/matches"
	"github.com/borangersfc/ticketing/internal/monitoring"
	"github.com/borangersfc/ticketing/internal/news"
	"github.com/borangersfc/ticketing/internal/reports"
	"github.com/borangersfc/ticketing/internal/status"
	"github.com/borangersfc/ticketing/internal/tickets"
)

func main() {
	cfg := config.Load()
	seed := flag.Bool("seed", cfg.Seed, "load sample data into an empty database")
	flag.Parse()

	db := dbpkg.Open(cfg.DBPath)
	dbpkg.AutoMigrate(db,
		&auth.User{}, &auth.Profile{}, &auth.Session{},
		&matches.Match{},
		&tickets.Category{}, &tickets.Ticket{},
		&news.Article{},
		&reports.Report{},
	)
	if *seed {
		dbpkg.Seed(db)
	}

	authRepo := auth.NewRepo(db)
	matchRepo := matches.NewRepo(db)
	ticketRepo := tickets.NewRepo(db)
	newsRepo := news.NewRepo(db)
	reportRepo := reports.NewRepo(db)

	qrStore := tickets.NewQRStore(cfg.MediaRoot)
	issuance := tickets.NewService(ticketRepo, matchRepo, qrStore)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	// Configure explicit trusted proxies to avoid gin's trust-all warning.
	// Default trusts only loopback; override via TRUSTED_PROXIES env.
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		log.Fatalf("trusted proxies: %v", err)
	}
	r.Use(monitoring.Middleware())

	requireUser := auth.RequireUser(authRepo)
	requireAdmin := auth.RequireAdmin(authRepo)

	auth.RegisterRoutes(r, authRepo, auth.Options{
		SessionTTL:   cfg.SessionTTL,
		CookieSecure: cfg.CookieSecure,
	})
	matches.RegisterRoutes(r, matchRepo, requireAdmin)
	tickets.RegisterRoutes(r, issuance, ticketRepo, matchRepo, requireUser, requireAdmin)
	news.RegisterRoutes(r, newsRepo, requireAdmin)
	reports.RegisterRoutes(r, reportRepo, requireAdmin)
	status.RegisterRoutes(r)
	monitoring.RegisterRoutes(r)

	// Home feed: last results, next fixtures, latest news.
	r.GET("/", func(c *gin.Context) {
		ctx := c.Request.Context()
		recent, err := matchRepo.RecentCompleted(ctx, 3)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		upcoming, err := matchRepo.Upcoming(ctx, 3)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		latest, err := newsRepo.Latest(ctx, 4)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"recent_matches":   recent,
			"upcoming_matches": upcoming,
			"latest_news":      latest,
		})
	})

	// Generated ticket QR images and uploaded news images.
	r.Static("/media/qr_codes", filepath.Join(cfg.MediaRoot, "qr_codes"))
	r.Static("/media/news_images", filepath.Join(cfg.MediaRoot, "news_images"))

	log.Printf("listening on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
