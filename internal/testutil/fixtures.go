package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"carteira/internal/aggregation"
	"carteira/internal/models"
	"carteira/internal/uuid"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Dec parses a decimal literal, panicking on malformed input.
func Dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// NewUserID returns a fresh user id. Users live in the auth provider, so
// there is no row to create.
func NewUserID() string {
	return uuid.New()
}

// CreateTestAccount creates a checking account with the given balance.
func CreateTestAccount(t *testing.T, db *gorm.DB, userID, balance string) *models.Account {
	t.Helper()

	account := &models.Account{
		UserID:   userID,
		Name:     fmt.Sprintf("Test Account %d", nextID()),
		Type:     models.AccountTypeChecking,
		Balance:  Dec(balance),
		Currency: "BRL",
		IsActive: true,
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

// CreateTestCard creates a card. limit is ignored for non-credit cards.
func CreateTestCard(t *testing.T, db *gorm.DB, userID string, cardType aggregation.CardType, limit string) *models.Card {
	t.Helper()

	card := &models.Card{
		UserID:     userID,
		Name:       fmt.Sprintf("Test Card %d", nextID()),
		Type:       cardType,
		ClosingDay: 3,
		DueDay:     10,
		IsActive:   true,
	}
	if cardType == aggregation.CardCredit {
		card.CreditLimit = Dec(limit)
	}
	if err := db.Create(card).Error; err != nil {
		t.Fatalf("failed to create test card: %v", err)
	}
	return card
}

// CreateTestCategory creates a category of the given type.
func CreateTestCategory(t *testing.T, db *gorm.DB, userID string, categoryType models.CategoryType) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID: userID,
		Name:   fmt.Sprintf("Test Category %d", nextID()),
		Type:   categoryType,
		Color:  "#336699",
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestTag creates a tag.
func CreateTestTag(t *testing.T, db *gorm.DB, userID string) *models.Tag {
	t.Helper()

	tag := &models.Tag{UserID: userID, Name: fmt.Sprintf("tag-%d", nextID()), Color: "#ff9900"}
	if err := db.Create(tag).Error; err != nil {
		t.Fatalf("failed to create test tag: %v", err)
	}
	return tag
}

// TxOption customizes a fixture transaction.
type TxOption func(*models.Transaction)

// WithAccount books the transaction against an account.
func WithAccount(id string) TxOption { return func(tx *models.Transaction) { tx.AccountID = &id } }

// WithCard books the transaction on a card.
func WithCard(id string) TxOption { return func(tx *models.Transaction) { tx.CardID = &id } }

// WithCategory sets the category.
func WithCategory(id string) TxOption { return func(tx *models.Transaction) { tx.CategoryID = &id } }

// WithTags embeds tag snapshots.
func WithTags(tags ...*models.Tag) TxOption {
	return func(tx *models.Transaction) {
		for _, tag := range tags {
			tx.Tags = append(tx.Tags, tag.Snapshot())
		}
	}
}

// WithDescription sets the description.
func WithDescription(s string) TxOption { return func(tx *models.Transaction) { tx.Description = s } }

// CreateTestTransaction inserts a transaction row directly, without touching
// balances.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID string, kind aggregation.Kind, amount string, date time.Time, opts ...TxOption) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID: userID,
		Kind:   kind,
		Amount: Dec(amount),
		Date:   date,
		Tags:   models.TagList{},
	}
	for _, opt := range opts {
		opt(tx)
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestBudget creates a monthly budget for the given category.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID, categoryID, limit string) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID:      userID,
		CategoryID:  categoryID,
		Name:        fmt.Sprintf("Test Budget %d", nextID()),
		LimitAmount: Dec(limit),
		Period:      aggregation.BudgetMonthly,
		StartDate:   time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		IsActive:    true,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestGoal creates an active goal.
func CreateTestGoal(t *testing.T, db *gorm.DB, userID, target, current string, deadline *time.Time) *models.Goal {
	t.Helper()

	goal := &models.Goal{
		UserID:        userID,
		Title:         fmt.Sprintf("Test Goal %d", nextID()),
		TargetAmount:  Dec(target),
		CurrentAmount: Dec(current),
		Deadline:      deadline,
		Status:        models.GoalStatusActive,
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}

// CreateTestDebt creates a pending debt.
func CreateTestDebt(t *testing.T, db *gorm.DB, userID, amount string, due time.Time) *models.Debt {
	t.Helper()

	debt := &models.Debt{
		UserID:   userID,
		Creditor: fmt.Sprintf("Creditor %d", nextID()),
		Amount:   Dec(amount),
		DueDate:  due,
		Status:   models.DebtStatusPending,
	}
	if err := db.Create(debt).Error; err != nil {
		t.Fatalf("failed to create test debt: %v", err)
	}
	return debt
}

// CreateTestReceivable creates a pending receivable.
func CreateTestReceivable(t *testing.T, db *gorm.DB, userID, amount string, due time.Time) *models.Receivable {
	t.Helper()

	r := &models.Receivable{
		UserID:  userID,
		Debtor:  fmt.Sprintf("Debtor %d", nextID()),
		Amount:  Dec(amount),
		DueDate: due,
		Status:  models.ReceivableStatusPending,
	}
	if err := db.Create(r).Error; err != nil {
		t.Fatalf("failed to create test receivable: %v", err)
	}
	return r
}
