package aggregation

import (
	"time"

	"carteira/internal/clock"
)

// PeriodSelector names a reporting window.
type PeriodSelector string

const (
	PeriodCurrentMonth PeriodSelector = "current-month"
	PeriodLast3Months  PeriodSelector = "last-3-months"
	PeriodLast6Months  PeriodSelector = "last-6-months"
	PeriodLast12Months PeriodSelector = "last-12-months"
	PeriodCurrentYear  PeriodSelector = "current-year"
	PeriodCustom       PeriodSelector = "custom"
)

// DefaultPeriod is used when no selector is given or a custom range is rejected.
const DefaultPeriod = PeriodCurrentMonth

// Selectors lists every selector accepted by Resolve.
var Selectors = []PeriodSelector{
	PeriodCurrentMonth,
	PeriodLast3Months,
	PeriodLast6Months,
	PeriodLast12Months,
	PeriodCurrentYear,
	PeriodCustom,
}

// Valid reports whether s is one of Selectors.
func (s PeriodSelector) Valid() bool {
	for _, known := range Selectors {
		if s == known {
			return true
		}
	}
	return false
}

// Period is a closed interval [Start, End].
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the period, both ends inclusive.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last instant of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// StartOfMonth returns midnight on the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last instant of t's month.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// Resolver converts selectors into concrete periods relative to its clock.
type Resolver struct {
	clock clock.Clock
}

// NewResolver creates a Resolver reading "now" from c.
func NewResolver(c clock.Clock) *Resolver {
	return &Resolver{clock: c}
}

// Now exposes the resolver's clock reading.
func (r *Resolver) Now() time.Time {
	return r.clock.Now()
}

// Resolve returns the period for sel. from and to are only consulted for
// PeriodCustom, where both are required and from must not be after to.
// Relative selectors end at the last instant of the current month.
func (r *Resolver) Resolve(sel PeriodSelector, from, to *time.Time) (Period, error) {
	now := r.clock.Now()

	switch sel {
	case PeriodCurrentMonth:
		return LastMonths(now, 1), nil
	case PeriodLast3Months:
		return LastMonths(now, 3), nil
	case PeriodLast6Months:
		return LastMonths(now, 6), nil
	case PeriodLast12Months:
		return LastMonths(now, 12), nil
	case PeriodCurrentYear:
		return Period{
			Start: time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()),
			End:   EndOfMonth(now),
		}, nil
	case PeriodCustom:
		return CustomPeriod(from, to)
	default:
		return Period{}, ErrUnknownSelector
	}
}

// ResolveOrDefault resolves sel and falls back to the current month when
// the selector or custom range is rejected. The boolean reports whether
// the fallback was used.
func (r *Resolver) ResolveOrDefault(sel PeriodSelector, from, to *time.Time) (Period, bool) {
	if sel == "" {
		sel = DefaultPeriod
	}
	p, err := r.Resolve(sel, from, to)
	if err != nil {
		return LastMonths(r.clock.Now(), 1), true
	}
	return p, false
}

// LastMonths returns the window covering the n calendar months that end
// with now's month. n below 1 is treated as 1.
func LastMonths(now time.Time, n int) Period {
	if n < 1 {
		n = 1
	}
	return Period{
		Start: StartOfMonth(now).AddDate(0, -(n - 1), 0),
		End:   EndOfMonth(now),
	}
}

// CustomPeriod validates an explicit pair of boundary dates. Comparison is
// by calendar day, so from and to on the same day form a one-day period.
func CustomPeriod(from, to *time.Time) (Period, error) {
	if from == nil || to == nil {
		return Period{}, &RangeError{From: from, To: to, Reason: "both from and to are required"}
	}
	start := StartOfDay(*from)
	end := EndOfDay(*to)
	if start.After(StartOfDay(*to)) {
		return Period{}, &RangeError{From: from, To: to, Reason: "from is after to"}
	}
	return Period{Start: start, End: end}, nil
}

// BudgetPeriod is the recurrence of a budget.
type BudgetPeriod string

const (
	BudgetWeekly  BudgetPeriod = "weekly"
	BudgetMonthly BudgetPeriod = "monthly"
	BudgetYearly  BudgetPeriod = "yearly"
)

// BudgetWindow returns the current window of a budget period. Weeks start
// on Monday. Unknown periods use the monthly window.
func BudgetWindow(period BudgetPeriod, now time.Time) Period {
	switch period {
	case BudgetWeekly:
		offset := (int(now.Weekday()) + 6) % 7
		start := StartOfDay(now).AddDate(0, 0, -offset)
		return Period{Start: start, End: start.AddDate(0, 0, 7).Add(-time.Nanosecond)}
	case BudgetYearly:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return Period{Start: start, End: start.AddDate(1, 0, 0).Add(-time.Nanosecond)}
	default:
		return LastMonths(now, 1)
	}
}
