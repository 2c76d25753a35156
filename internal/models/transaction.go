package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"carteira/internal/aggregation"
)

// TagList is the JSON column holding a transaction's tag snapshots.
type TagList []aggregation.TagRef

// Value implements driver.Valuer.
func (l TagList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner.
func (l *TagList) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*l = TagList{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported tag list source %T", src)
	}
	return json.Unmarshal(data, l)
}

// IDs returns the tag ids in order.
func (l TagList) IDs() []string {
	ids := make([]string, len(l))
	for i, t := range l {
		ids[i] = t.ID
	}
	return ids
}

// Transaction is an income or expense paid from an account or a card.
// Installment purchases share an InstallmentGroupID.
type Transaction struct {
	Base
	UserID      string           `gorm:"type:uuid;not null;index" json:"user_id"`
	Kind        aggregation.Kind `gorm:"not null" json:"kind"`
	Amount      decimal.Decimal  `gorm:"type:numeric(15,2);not null" json:"amount"`
	Date        time.Time        `gorm:"not null;index" json:"date"`
	AccountID   *string          `gorm:"type:uuid" json:"account_id,omitempty"`
	CardID      *string          `gorm:"type:uuid" json:"card_id,omitempty"`
	CategoryID  *string          `gorm:"type:uuid" json:"category_id,omitempty"`
	GoalID      *string          `gorm:"type:uuid" json:"goal_id,omitempty"`
	Description string           `json:"description"`
	Notes       string           `json:"notes"`
	Tags        TagList          `gorm:"type:text" json:"tags"`

	InstallmentGroupID *string `gorm:"type:uuid;index" json:"installment_group_id,omitempty"`
	InstallmentNumber  int     `json:"installment_number,omitempty"`
	InstallmentTotal   int     `json:"installment_total,omitempty"`
}
