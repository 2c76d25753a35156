package models

// CategoryType represents the type of category
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Category groups transactions for reporting. Default categories are
// seeded per user and cannot be deleted.
type Category struct {
	Base
	UserID    string       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string       `gorm:"not null" json:"name"`
	Type      CategoryType `gorm:"not null" json:"type"`
	Icon      string       `json:"icon"`
	Color     string       `json:"color"`
	IsDefault bool         `gorm:"not null;default:false" json:"is_default"`
	SortOrder int          `gorm:"not null;default:0" json:"sort_order"`
}
