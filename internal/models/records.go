package models

import (
	"carteira/internal/aggregation"
)

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Record converts the transaction into an aggregation record.
func (t *Transaction) Record() aggregation.Record {
	return aggregation.Record{
		ID:          t.ID,
		Source:      aggregation.SourceTransaction,
		Amount:      t.Amount,
		Date:        t.Date,
		Kind:        t.Kind,
		CategoryID:  deref(t.CategoryID),
		Tags:        []aggregation.TagRef(t.Tags),
		AccountID:   deref(t.AccountID),
		CardID:      deref(t.CardID),
		Description: t.Description,
		Notes:       t.Notes,
	}
}

// Record converts the debt into an expense dated on its due date.
func (d *Debt) Record() aggregation.Record {
	return aggregation.Record{
		ID:          d.ID,
		Source:      aggregation.SourceDebt,
		Amount:      d.Amount,
		Date:        d.DueDate,
		Kind:        aggregation.KindExpense,
		CategoryID:  deref(d.CategoryID),
		AccountID:   deref(d.AccountID),
		Description: d.Creditor,
		Notes:       d.Description,
	}
}

// Record converts the payment into income. The receivable supplies the
// category and the description.
func (p *ReceivablePayment) Record(r *Receivable) aggregation.Record {
	rec := aggregation.Record{
		ID:        p.ID,
		Source:    aggregation.SourceReceivablePayment,
		Amount:    p.Amount,
		Date:      p.Date,
		Kind:      aggregation.KindIncome,
		AccountID: deref(p.AccountID),
		Notes:     p.Notes,
	}
	if r != nil {
		rec.CategoryID = deref(r.CategoryID)
		rec.Description = r.Debtor
	}
	return rec
}
