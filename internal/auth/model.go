package auth

import "time"

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username" gorm:"size:150;uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"size:254"`
	PasswordHash string    `json:"-" gorm:"not null"`
	FirstName    string    `json:"first_name" gorm:"size:150"`
	LastName     string    `json:"last_name" gorm:"size:150"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}

// Profile holds the contact details collected at registration. Exactly
// one per user.
type Profile struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id" gorm:"uniqueIndex;not null"`
	Phone       string     `json:"phone" gorm:"size:15"`
	DateOfBirth *time.Time `json:"date_of_birth"`
}

type Session struct {
	Token     string    `gorm:"primaryKey;size:64"`
	UserID    int64     `gorm:"index;not null"`
	ExpiresAt time.Time `gorm:"index"`
	CreatedAt time.Time
}
