package news

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("article not found")

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) Create(ctx context.Context, a *Article) error {
	return r.db.WithContext(ctx).Omit("Author").Create(a).Error
}

func (r *Repo) Update(ctx context.Context, a *Article) error {
	return r.db.WithContext(ctx).Omit("Author").Save(a).Error
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&Article{}, id).Error
}

func (r *Repo) Get(ctx context.Context, id int64) (*Article, error) {
	var a Article
	if err := r.db.WithContext(ctx).Preload("Author").First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *Repo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Article{}).Count(&n).Error
	return n, err
}

// List returns one page of articles, newest publish date first.
func (r *Repo) List(ctx context.Context, offset, limit int) ([]Article, error) {
	var out []Article
	err := r.db.WithContext(ctx).Order("publish_date DESC, id DESC").
		Offset(offset).Limit(limit).Find(&out).Error
	return out, err
}

// Latest feeds the home page.
func (r *Repo) Latest(ctx context.Context, limit int) ([]Article, error) {
	return r.List(ctx, 0, limit)
}
