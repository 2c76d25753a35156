package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebtStatus is whether a debt has been settled.
type DebtStatus string

const (
	DebtStatusPending DebtStatus = "pending"
	DebtStatusPaid    DebtStatus = "paid"
)

// Debt is money owed to a creditor, due on DueDate. For reporting it is an
// expense dated on its due date.
type Debt struct {
	Base
	UserID      string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Creditor    string          `gorm:"not null" json:"creditor"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"amount"`
	DueDate     time.Time       `gorm:"not null" json:"due_date"`
	Status      DebtStatus      `gorm:"not null;default:'pending'" json:"status"`
	PaidAt      *time.Time      `json:"paid_at,omitempty"`
	CategoryID  *string         `gorm:"type:uuid" json:"category_id,omitempty"`
	AccountID   *string         `gorm:"type:uuid" json:"account_id,omitempty"`
}
