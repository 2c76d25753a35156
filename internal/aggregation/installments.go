package aggregation

import (
	"time"

	"github.com/shopspring/decimal"
)

// Installment is one monthly slice of an installment purchase.
type Installment struct {
	Number int             `json:"number"`
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
}

// SplitInstallments spreads total over n monthly installments starting at
// first. Amounts are rounded to cents and sum exactly to total, with the
// rounding remainder on the first installment. A purchase on the 31st lands
// on the last day of shorter months.
func SplitInstallments(total decimal.Decimal, n int, first time.Time) []Installment {
	if n < 1 {
		n = 1
	}
	amounts := SplitEvenly(total, n)
	out := make([]Installment, n)
	for i := 0; i < n; i++ {
		out[i] = Installment{
			Number: i + 1,
			Amount: amounts[i],
			Date:   AddMonthsClamped(first, i),
		}
	}
	return out
}

// AddMonthsClamped adds months to t keeping the day of month, clamped to
// the length of the target month.
func AddMonthsClamped(t time.Time, months int) time.Time {
	firstOfTarget := time.Date(t.Year(), t.Month()+time.Month(months), 1,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	day := t.Day()
	if day > lastDay {
		day = lastDay
	}
	return firstOfTarget.AddDate(0, 0, day-1)
}
