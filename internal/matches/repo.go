package matches

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("match not found")

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) Create(ctx context.Context, m *Match) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *Repo) Update(ctx context.Context, m *Match) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&Match{}, id).Error
}

func (r *Repo) Get(ctx context.Context, id int64) (*Match, error) {
	var m Match
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *Repo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Match{}).Count(&n).Error
	return n, err
}

// List returns one page of fixtures, kickoff ascending (id breaks ties
// so paging is stable for simultaneous kickoffs).
func (r *Repo) List(ctx context.Context, offset, limit int) ([]Match, error) {
	var out []Match
	err := r.db.WithContext(ctx).Order("kickoff, id").Offset(offset).Limit(limit).Find(&out).Error
	return out, err
}

// Upcoming returns the next fixtures still to be played.
func (r *Repo) Upcoming(ctx context.Context, limit int) ([]Match, error) {
	var out []Match
	err := r.db.WithContext(ctx).Where("status = ?", StatusUpcoming).
		Order("kickoff, id").Limit(limit).Find(&out).Error
	return out, err
}

// RecentCompleted returns the latest finished fixtures, newest first.
func (r *Repo) RecentCompleted(ctx context.Context, limit int) ([]Match, error) {
	var out []Match
	err := r.db.WithContext(ctx).Where("status = ?", StatusCompleted).
		Order("kickoff DESC, id DESC").Limit(limit).Find(&out).Error
	return out, err
}
