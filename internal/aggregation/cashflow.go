package aggregation

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// CashFlowPoint is one bucket of a running-balance series.
type CashFlowPoint struct {
	Key               string          `json:"key"`
	Start             time.Time       `json:"start"`
	Income            decimal.Decimal `json:"income"`
	Expense           decimal.Decimal `json:"expense"`
	Net               decimal.Decimal `json:"net"`
	CumulativeBalance decimal.Decimal `json:"cumulative_balance"`
}

// CashFlow builds a chronological day or month series where each bucket's
// cumulative balance is the previous balance plus that bucket's income minus
// its expense, seeded with opening. When period is set, records outside it
// are skipped and every bucket in the window is emitted, even when empty.
func CashFlow(records []Record, by GroupBy, opening decimal.Decimal, period *Period, loc *time.Location) ([]CashFlowPoint, error) {
	var step func(time.Time) time.Time
	var floor func(time.Time) time.Time
	var layout string

	switch by {
	case GroupByDay:
		floor, layout = StartOfDay, dayKeyLayout
		step = func(t time.Time) time.Time { return t.AddDate(0, 0, 1) }
	case GroupByMonth:
		floor, layout = StartOfMonth, monthKeyLayout
		step = func(t time.Time) time.Time { return t.AddDate(0, 1, 0) }
	default:
		return nil, ErrUnsupportedGrouping
	}

	buckets := make(map[string]*CashFlowPoint)
	newPoint := func(start time.Time) *CashFlowPoint {
		key := start.Format(layout)
		if p, ok := buckets[key]; ok {
			return p
		}
		p := &CashFlowPoint{Key: key, Start: start, Income: decimal.Zero, Expense: decimal.Zero}
		buckets[key] = p
		return p
	}

	if period != nil {
		from := floor(inLocation(period.Start, loc))
		to := inLocation(period.End, loc)
		for t := from; !t.After(to); t = step(t) {
			newPoint(t)
		}
	}

	for i := range records {
		r := &records[i]
		if period != nil && !period.Contains(r.Date) {
			continue
		}
		p := newPoint(floor(inLocation(r.Date, loc)))
		switch r.Kind {
		case KindIncome:
			p.Income = p.Income.Add(r.Amount)
		case KindExpense:
			p.Expense = p.Expense.Add(r.Amount)
		}
	}

	points := make([]CashFlowPoint, 0, len(buckets))
	for _, p := range buckets {
		points = append(points, *p)
	}
	sort.Slice(points, func(a, b int) bool { return points[a].Start.Before(points[b].Start) })

	balance := opening
	for i := range points {
		points[i].Net = points[i].Income.Sub(points[i].Expense)
		balance = balance.Add(points[i].Net)
		points[i].CumulativeBalance = balance
	}
	return points, nil
}
