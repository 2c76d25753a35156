package models

import "github.com/shopspring/decimal"

// AccountType represents the type of account
type AccountType string

const (
	AccountTypeChecking   AccountType = "checking"
	AccountTypeSavings    AccountType = "savings"
	AccountTypeCash       AccountType = "cash"
	AccountTypeInvestment AccountType = "investment"
)

// Account is a place money is held. Balance moves with every income or
// expense booked against it and seeds the cash-flow running balance.
type Account struct {
	Base
	UserID      string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string          `gorm:"not null" json:"name"`
	Type        AccountType     `gorm:"not null" json:"type"`
	Institution string          `json:"institution"`
	Balance     decimal.Decimal `gorm:"type:numeric(15,2);not null;default:0" json:"balance"`
	Currency    string          `gorm:"not null;default:'BRL'" json:"currency"`
	Color       string          `json:"color"`
	IsActive    bool            `gorm:"default:true" json:"is_active"`
}
