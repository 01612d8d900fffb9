package news

import (
	"time"

	"github.com/borangersfc/ticketing/internal/auth"
)

const (
	CategoryMatchReport  = "match_report"
	CategoryClubNews     = "club_news"
	CategoryPlayerNews   = "player_news"
	CategoryAnnouncement = "announcement"
)

type Article struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title" gorm:"size:200;not null"`
	Content     string    `json:"content"`
	Category    string    `json:"category" gorm:"size:20;default:club_news"`
	AuthorID    int64     `json:"author_id" gorm:"index;not null"`
	Author      auth.User `json:"author" gorm:"constraint:OnDelete:CASCADE"`
	Image       string    `json:"image" gorm:"size:255"`
	PublishDate time.Time `json:"publish_date" gorm:"index"`
	IsFeatured  bool      `json:"is_featured"`
}

func ValidCategory(s string) bool {
	switch s {
	case CategoryMatchReport, CategoryClubNews, CategoryPlayerNews, CategoryAnnouncement:
		return true
	}
	return false
}
