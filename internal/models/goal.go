package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalStatus is the stored lifecycle state of a goal.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusPaused    GoalStatus = "paused"
)

// Goal is a savings target. CurrentAmount grows with contributions and with
// income transactions linked to the goal.
type Goal struct {
	Base
	UserID        string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Title         string          `gorm:"not null" json:"title"`
	Description   string          `json:"description"`
	TargetAmount  decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"target_amount"`
	CurrentAmount decimal.Decimal `gorm:"type:numeric(15,2);not null;default:0" json:"current_amount"`
	Deadline      *time.Time      `json:"deadline,omitempty"`
	Status        GoalStatus      `gorm:"not null;default:'active'" json:"status"`
	Color         string          `json:"color"`
}
