package tickets

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/borangersfc/ticketing/internal/auth"
	"github.com/borangersfc/ticketing/internal/matches"
)

var (
	ErrMatchNotFound   = errors.New("match not found")
	ErrNotBookable     = errors.New("match is not open for booking")
	ErrInvalidCategory = errors.New("invalid ticket category")
	ErrBadQuantity     = errors.New("quantity must be a positive integer")
)

// Service issues tickets: it prices the booking, persists the row, and
// attaches the generated QR image. There is no seat inventory — any
// number of tickets may be issued for a match.
type Service struct {
	tickets *Repo
	matches *matches.Repo
	qr      *QRStore
}

func NewService(tickets *Repo, fixtures *matches.Repo, qr *QRStore) *Service {
	return &Service{tickets: tickets, matches: fixtures, qr: qr}
}

// Issue books quantity tickets in the given category for the user.
// Only matches still in the upcoming state are bookable. The ticket is
// persisted first so its id exists, then the QR image encoding that id
// is generated and attached in a second step.
func (s *Service) Issue(ctx context.Context, user *auth.User, matchID, categoryID int64, quantity int) (*Ticket, error) {
	if quantity <= 0 {
		return nil, ErrBadQuantity
	}

	m, err := s.matches.Get(ctx, matchID)
	if err != nil {
		if errors.Is(err, matches.ErrNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	if m.Status != matches.StatusUpcoming {
		return nil, ErrNotBookable
	}

	cat, err := s.tickets.GetCategory(ctx, categoryID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCategory
		}
		return nil, err
	}

	t := &Ticket{
		UserID:      user.ID,
		MatchID:     m.ID,
		CategoryID:  cat.ID,
		Quantity:    quantity,
		TotalAmount: cat.Price.Mul(decimal.NewFromInt(int64(quantity))),
		BookingDate: time.Now(),
	}
	if err := s.tickets.Create(ctx, t); err != nil {
		return nil, err
	}

	rel, err := s.qr.Write(t.ID, QRPayload(t.ID, m.Describe(), user.Username))
	if err != nil {
		return nil, err
	}
	if err := s.tickets.AttachQRCode(ctx, t.ID, rel); err != nil {
		return nil, err
	}
	t.QRCode = rel
	t.Match = *m
	t.Category = *cat
	return t, nil
}

// ConfirmPayment is the mock payment step: it sets the payment method
// and flips the paid flag on a ticket owned by the paying user. No
// gateway, no amount check, no double-confirmation guard.
func (s *Service) ConfirmPayment(ctx context.Context, user *auth.User, ticketID int64, method string) error {
	return s.tickets.MarkPaid(ctx, ticketID, user.ID, method)
}
