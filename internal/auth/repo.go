package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("not found")

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

// CreateUser inserts the user and its profile in one transaction.
func (r *Repo) CreateUser(ctx context.Context, u *User, p *Profile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(u).Error; err != nil {
			return err
		}
		p.UserID = u.ID
		return tx.Create(p).Error
	})
}

func (r *Repo) ByUsername(ctx context.Context, username string) (*User, error) {
	var u User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *Repo) ProfileOf(ctx context.Context, userID int64) (*Profile, error) {
	var p Profile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// NewToken returns a cryptographically secure random token (hex-64).
func NewToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func (r *Repo) CreateSession(ctx context.Context, userID int64, ttl time.Duration) (*Session, error) {
	tok, err := NewToken()
	if err != nil {
		return nil, err
	}
	s := Session{Token: tok, UserID: userID, ExpiresAt: time.Now().Add(ttl).UTC()}
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repo) DeleteSession(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Delete(&Session{}, "token = ?", token).Error
}

// UserBySession resolves a session token to its user, sweeping expired
// sessions along the way.
func (r *Repo) UserBySession(ctx context.Context, token string) (*User, error) {
	tx := r.db.WithContext(ctx)
	tx.Where("expires_at < ?", time.Now().UTC()).Delete(&Session{})

	var s Session
	if err := tx.Where("token = ? AND expires_at > ?", token, time.Now().UTC()).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var u User
	if err := tx.First(&u, s.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
