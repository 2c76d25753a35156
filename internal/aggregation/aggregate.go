package aggregation

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// GroupBy is the dimension records are bucketed by.
type GroupBy string

const (
	GroupByCategory GroupBy = "category"
	GroupByTag      GroupBy = "tag"
	GroupByDay      GroupBy = "day"
	GroupByMonth    GroupBy = "month"
)

// Valid reports whether g is a known grouping.
func (g GroupBy) Valid() bool {
	switch g {
	case GroupByCategory, GroupByTag, GroupByDay, GroupByMonth:
		return true
	}
	return false
}

// Synthetic buckets for records missing the grouping dimension.
const (
	UncategorizedKey   = "uncategorized"
	UncategorizedLabel = "Uncategorized"
	UntaggedKey        = "untagged"
	UntaggedLabel      = "Untagged"
)

const (
	dayKeyLayout   = "2006-01-02"
	monthKeyLayout = "2006-01"
)

var hundred = decimal.NewFromInt(100)

// Group is one bucket of an aggregation.
type Group struct {
	Key        string          `json:"key"`
	Label      string          `json:"label"`
	Color      string          `json:"color,omitempty"`
	Total      decimal.Decimal `json:"total"`
	Count      int             `json:"count"`
	Percentage float64         `json:"percentage"`
}

// Summary is the result of Aggregate.
type Summary struct {
	Kind       Kind            `json:"kind"`
	GroupBy    GroupBy         `json:"group_by"`
	GrandTotal decimal.Decimal `json:"grand_total"`
	Count      int             `json:"count"`
	Groups     []Group         `json:"groups"`
}

// Aggregate buckets the records of the given kind by dimension by. Records
// of the other kind are ignored so income and expense never mix. Groups are
// ordered by total descending, ties keeping first-appearance order, and the
// group totals always add up to GrandTotal.
func Aggregate(records []Record, kind Kind, by GroupBy, labels Labels) (Summary, error) {
	if !by.Valid() {
		return Summary{}, ErrUnsupportedGrouping
	}

	summary := Summary{Kind: kind, GroupBy: by, GrandTotal: decimal.Zero}
	index := make(map[string]int)
	var groups []Group

	add := func(key, label, color string, amount decimal.Decimal) {
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: key, Label: label, Color: color, Total: decimal.Zero})
		}
		groups[i].Total = groups[i].Total.Add(amount)
		groups[i].Count++
	}

	for i := range records {
		r := &records[i]
		if r.Kind != kind {
			continue
		}
		summary.GrandTotal = summary.GrandTotal.Add(r.Amount)
		summary.Count++

		switch by {
		case GroupByCategory:
			key, label, color := categoryBucket(r.CategoryID, labels)
			add(key, label, color, r.Amount)
		case GroupByTag:
			if len(r.Tags) == 0 {
				add(UntaggedKey, UntaggedLabel, "", r.Amount)
				continue
			}
			shares := SplitEvenly(r.Amount, len(r.Tags))
			for j, t := range r.Tags {
				add(t.ID, t.Name, t.Color, shares[j])
			}
		case GroupByDay:
			d := inLocation(r.Date, labels.Location)
			add(d.Format(dayKeyLayout), d.Format(dayKeyLayout), "", r.Amount)
		case GroupByMonth:
			d := inLocation(r.Date, labels.Location)
			add(d.Format(monthKeyLayout), d.Format(monthKeyLayout), "", r.Amount)
		}
	}

	for i := range groups {
		groups[i].Percentage = Percentage(groups[i].Total, summary.GrandTotal)
	}
	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].Total.GreaterThan(groups[b].Total)
	})

	if groups == nil {
		groups = []Group{}
	}
	summary.Groups = groups
	return summary, nil
}

func categoryBucket(id string, labels Labels) (key, label, color string) {
	if id == "" {
		return UncategorizedKey, UncategorizedLabel, ""
	}
	if info, ok := labels.Categories[id]; ok {
		return id, info.Name, info.Color
	}
	return id, id, ""
}

func inLocation(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		return t
	}
	return t.In(loc)
}

// Percentage returns part/whole*100, or 0 when whole is zero.
func Percentage(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	return part.Div(whole).Mul(hundred).InexactFloat64()
}

// SplitEvenly divides amount into n cent shares that sum exactly to amount.
// Shares are truncated to the cent, so the remainder, always between zero
// and n-1 cents, goes to the first share and no share is negative.
func SplitEvenly(amount decimal.Decimal, n int) []decimal.Decimal {
	if n <= 1 {
		return []decimal.Decimal{amount}
	}
	share := amount.Div(decimal.NewFromInt(int64(n))).RoundDown(2)
	shares := make([]decimal.Decimal, n)
	rest := amount
	for i := 1; i < n; i++ {
		shares[i] = share
		rest = rest.Sub(share)
	}
	shares[0] = rest
	return shares
}

// KindTotals sums a record set per kind.
type KindTotals struct {
	Income       decimal.Decimal `json:"income"`
	Expense      decimal.Decimal `json:"expense"`
	Net          decimal.Decimal `json:"net"`
	IncomeCount  int             `json:"income_count"`
	ExpenseCount int             `json:"expense_count"`
}

// Totals returns income, expense and net for records.
func Totals(records []Record) KindTotals {
	t := KindTotals{Income: decimal.Zero, Expense: decimal.Zero}
	for i := range records {
		switch records[i].Kind {
		case KindIncome:
			t.Income = t.Income.Add(records[i].Amount)
			t.IncomeCount++
		case KindExpense:
			t.Expense = t.Expense.Add(records[i].Amount)
			t.ExpenseCount++
		}
	}
	t.Net = t.Income.Sub(t.Expense)
	return t
}
