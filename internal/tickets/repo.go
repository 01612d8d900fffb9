package tickets

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("ticket not found")

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

// -------- Categories --------

func (r *Repo) CreateCategory(ctx context.Context, c *Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *Repo) UpdateCategory(ctx context.Context, c *Category) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *Repo) DeleteCategory(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&Category{}, id).Error
}

func (r *Repo) GetCategory(ctx context.Context, id int64) (*Category, error) {
	var c Category
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *Repo) ListCategories(ctx context.Context) ([]Category, error) {
	var out []Category
	err := r.db.WithContext(ctx).Order("price, id").Find(&out).Error
	return out, err
}

// -------- Tickets --------

// Create persists the ticket row; the id is only known afterwards,
// which is why QR attachment is a separate step.
func (r *Repo) Create(ctx context.Context, t *Ticket) error {
	return r.db.WithContext(ctx).Omit("User", "Match", "Category").Create(t).Error
}

// AttachQRCode records the generated image path. It only fires while
// the ticket has no image yet, so the QR code stays immutable.
func (r *Repo) AttachQRCode(ctx context.Context, id int64, path string) error {
	return r.db.WithContext(ctx).Model(&Ticket{}).
		Where("id = ? AND qr_code = ''", id).
		Update("qr_code", path).Error
}

// GetOwned fetches a ticket by id scoped to its owner. A ticket held
// by a different user comes back as ErrNotFound, never as the row.
func (r *Repo) GetOwned(ctx context.Context, id, userID int64) (*Ticket, error) {
	var t Ticket
	err := r.db.WithContext(ctx).Preload("Match").Preload("Category").
		Where("id = ? AND user_id = ?", id, userID).First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// ListByUser returns the user's tickets, most recent booking first.
func (r *Repo) ListByUser(ctx context.Context, userID int64) ([]Ticket, error) {
	var out []Ticket
	err := r.db.WithContext(ctx).Preload("Match").Preload("Category").
		Where("user_id = ?", userID).
		Order("booking_date DESC, id DESC").Find(&out).Error
	return out, err
}

// MarkPaid flips the payment flag for an owned ticket. Missing ticket
// and wrong owner are indistinguishable to the caller.
func (r *Repo) MarkPaid(ctx context.Context, id, userID int64, method string) error {
	res := r.db.WithContext(ctx).Model(&Ticket{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{"payment_method": method, "is_paid": true})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
