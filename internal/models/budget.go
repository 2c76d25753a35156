package models

import (
	"time"

	"github.com/shopspring/decimal"

	"carteira/internal/aggregation"
)

// Budget is a spending limit for one expense category per recurring period.
type Budget struct {
	Base
	UserID      string                   `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID  string                   `gorm:"type:uuid;not null" json:"category_id"`
	Name        string                   `gorm:"not null" json:"name"`
	LimitAmount decimal.Decimal          `gorm:"type:numeric(15,2);not null" json:"limit_amount"`
	// SpentAmount is a cache of the current window's spend, refreshed when
	// transactions change. Evaluation never reads it.
	SpentAmount decimal.Decimal          `gorm:"type:numeric(15,2);not null;default:0" json:"spent_amount"`
	Period      aggregation.BudgetPeriod `gorm:"not null" json:"period"`
	StartDate   time.Time                `gorm:"not null" json:"start_date"`
	EndDate     *time.Time               `json:"end_date,omitempty"`
	IsActive    bool                     `gorm:"default:true" json:"is_active"`
}

// Window returns the budget's current period window, clipped to its
// start and end dates.
func (b *Budget) Window(now time.Time) aggregation.Period {
	w := aggregation.BudgetWindow(b.Period, now)
	if start := aggregation.StartOfDay(b.StartDate.In(now.Location())); start.After(w.Start) {
		w.Start = start
	}
	if b.EndDate != nil {
		if end := aggregation.EndOfDay(b.EndDate.In(now.Location())); end.Before(w.End) {
			w.End = end
		}
	}
	return w
}
