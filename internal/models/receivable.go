package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceivableStatus tracks how much of a receivable has come in.
type ReceivableStatus string

const (
	ReceivableStatusPending  ReceivableStatus = "pending"
	ReceivableStatusPartial  ReceivableStatus = "partial"
	ReceivableStatusReceived ReceivableStatus = "received"
)

// Receivable is money owed to the user. Each payment received is reported
// as income on its own date.
type Receivable struct {
	Base
	UserID         string              `gorm:"type:uuid;not null;index" json:"user_id"`
	Debtor         string              `gorm:"not null" json:"debtor"`
	Description    string              `json:"description"`
	Amount         decimal.Decimal     `gorm:"type:numeric(15,2);not null" json:"amount"`
	ReceivedAmount decimal.Decimal     `gorm:"type:numeric(15,2);not null;default:0" json:"received_amount"`
	DueDate        time.Time           `gorm:"not null" json:"due_date"`
	Status         ReceivableStatus    `gorm:"not null;default:'pending'" json:"status"`
	CategoryID     *string             `gorm:"type:uuid" json:"category_id,omitempty"`
	Payments       []ReceivablePayment `gorm:"foreignKey:ReceivableID" json:"payments,omitempty"`
}

// Outstanding is what is still to be received.
func (r *Receivable) Outstanding() decimal.Decimal {
	return r.Amount.Sub(r.ReceivedAmount)
}

// ReceivablePayment is one installment received against a receivable.
type ReceivablePayment struct {
	Base
	ReceivableID string          `gorm:"type:uuid;not null;index" json:"receivable_id"`
	UserID       string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount       decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"amount"`
	Date         time.Time       `gorm:"not null" json:"date"`
	AccountID    *string         `gorm:"type:uuid" json:"account_id,omitempty"`
	Notes        string          `json:"notes"`
}
