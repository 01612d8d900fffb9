package reports

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("report not found")

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) Create(ctx context.Context, rep *Report) error {
	return r.db.WithContext(ctx).Omit("Match", "GeneratedBy").Create(rep).Error
}

func (r *Repo) Get(ctx context.Context, id int64) (*Report, error) {
	var rep Report
	if err := r.db.WithContext(ctx).Preload("Match").First(&rep, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rep, nil
}

// List returns reports newest first.
func (r *Repo) List(ctx context.Context) ([]Report, error) {
	var out []Report
	err := r.db.WithContext(ctx).Order("generated_date DESC, id DESC").Find(&out).Error
	return out, err
}
