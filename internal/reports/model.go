package reports

import (
	"encoding/json"
	"time"

	"github.com/borangersfc/ticketing/internal/auth"
	"github.com/borangersfc/ticketing/internal/matches"
)

const (
	TypeSales      = "sales"
	TypeAttendance = "attendance"
	TypeRevenue    = "revenue"
)

// Report stores an opaque structured payload; nothing here derives or
// aggregates, the data is persisted as given.
type Report struct {
	ID            int64           `json:"id"`
	ReportType    string          `json:"report_type" gorm:"size:20;not null"`
	MatchID       *int64          `json:"match_id" gorm:"index"`
	Match         *matches.Match  `json:"match,omitempty"`
	Data          json.RawMessage `json:"data" gorm:"type:json"`
	GeneratedDate time.Time       `json:"generated_date" gorm:"index"`
	GeneratedByID int64           `json:"generated_by_id" gorm:"index;not null"`
	GeneratedBy   auth.User       `json:"-" gorm:"foreignKey:GeneratedByID;constraint:OnDelete:CASCADE"`
}

func ValidType(s string) bool {
	switch s {
	case TypeSales, TypeAttendance, TypeRevenue:
		return true
	}
	return false
}
