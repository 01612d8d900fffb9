package tickets

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/borangersfc/ticketing/internal/auth"
	"github.com/borangersfc/ticketing/internal/matches"
)

type Category struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name" gorm:"size:50;not null"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Description string          `json:"description"`
}

// Ticket is created by the issuance service and later mutated only by
// the mock payment step. The QR code path is attached once, right
// after the initial insert, and is immutable from then on.
type Ticket struct {
	ID            int64           `json:"id"`
	UserID        int64           `json:"user_id" gorm:"index;not null"`
	User          auth.User       `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	MatchID       int64           `json:"match_id" gorm:"index;not null"`
	Match         matches.Match   `json:"match" gorm:"constraint:OnDelete:CASCADE"`
	CategoryID    int64           `json:"category_id" gorm:"index;not null"`
	Category      Category        `json:"category"`
	Quantity      int             `json:"quantity" gorm:"default:1"`
	TotalAmount   decimal.Decimal `json:"total_amount" gorm:"type:decimal(10,2)"`
	BookingDate   time.Time       `json:"booking_date"`
	QRCode        string          `json:"qr_code" gorm:"column:qr_code;size:255"`
	PaymentMethod string          `json:"payment_method" gorm:"size:50"`
	IsPaid        bool            `json:"is_paid"`
}
