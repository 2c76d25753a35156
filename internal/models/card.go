package models

import (
	"time"

	"github.com/shopspring/decimal"

	"carteira/internal/aggregation"
)

// Card is a payment card. Only credit cards carry a limit.
type Card struct {
	Base
	UserID      string               `gorm:"type:uuid;not null;index" json:"user_id"`
	AccountID   *string              `gorm:"type:uuid" json:"account_id,omitempty"`
	Name        string               `gorm:"not null" json:"name"`
	Type        aggregation.CardType `gorm:"not null" json:"type"`
	Brand       string               `json:"brand"`
	LastDigits  string               `gorm:"size:4" json:"last_digits"`
	CreditLimit decimal.Decimal      `gorm:"type:numeric(15,2);not null;default:0" json:"credit_limit"`
	// UsedAmount is a cache refreshed on transaction changes. Limit usage
	// is always recomputed from transactions.
	UsedAmount decimal.Decimal `gorm:"type:numeric(15,2);not null;default:0" json:"used_amount"`
	ClosingDay int             `json:"closing_day"`
	DueDay     int             `json:"due_day"`
	Color      string          `json:"color"`
	IsActive   bool            `gorm:"default:true" json:"is_active"`
}

// Cycle returns the billing cycle containing now: the day after the
// previous closing day through the next closing day. Closing days past the
// end of a short month fall on its last day. Without a closing day the
// cycle is the calendar month.
func (c *Card) Cycle(now time.Time) aggregation.Period {
	if c.ClosingDay < 1 || c.ClosingDay > 31 {
		return aggregation.LastMonths(now, 1)
	}
	loc := now.Location()
	closing := closingDate(now.Year(), now.Month(), c.ClosingDay, loc)
	if !now.After(aggregation.EndOfDay(closing)) {
		prev := closingDate(now.Year(), now.Month()-1, c.ClosingDay, loc)
		return aggregation.Period{Start: prev.AddDate(0, 0, 1), End: aggregation.EndOfDay(closing)}
	}
	next := closingDate(now.Year(), now.Month()+1, c.ClosingDay, loc)
	return aggregation.Period{Start: closing.AddDate(0, 0, 1), End: aggregation.EndOfDay(next)}
}

func closingDate(year int, month time.Month, day int, loc *time.Location) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	if last := aggregation.EndOfMonth(first).Day(); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, loc)
}
