package testutil_test

import (
	"testing"
	"time"

	"carteira/internal/aggregation"
	"carteira/internal/errors"
	"carteira/internal/models"
	"carteira/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	var count int64
	for _, table := range []string{"accounts", "cards", "categories", "tags", "transactions", "budgets", "goals", "debts", "receivables", "receivable_payments", "audit_logs"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestSetupTestDB_Isolated(t *testing.T) {
	db1 := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db1)
	db2 := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db2)

	testutil.CreateTestAccount(t, db1, testutil.NewUserID(), "0")

	var count int64
	db2.Model(&models.Account{}).Count(&count)
	if count != 0 {
		t.Errorf("expected isolated databases, found %d accounts", count)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	userID := testutil.NewUserID()

	account := testutil.CreateTestAccount(t, db, userID, "5000.50")
	testutil.AssertDecimal(t, account.Balance, "5000.5", "balance")

	card := testutil.CreateTestCard(t, db, userID, aggregation.CardCredit, "3000")
	testutil.AssertDecimal(t, card.CreditLimit, "3000", "credit limit")

	category := testutil.CreateTestCategory(t, db, userID, models.CategoryTypeExpense)
	tag := testutil.CreateTestTag(t, db, userID)

	tx := testutil.CreateTestTransaction(t, db, userID, aggregation.KindExpense, "12.34", time.Now(),
		testutil.WithAccount(account.ID), testutil.WithCategory(category.ID), testutil.WithTags(tag))

	var loaded models.Transaction
	if err := db.First(&loaded, "id = ?", tx.ID).Error; err != nil {
		t.Fatalf("failed to reload transaction: %v", err)
	}
	testutil.AssertDecimal(t, loaded.Amount, "12.34", "amount")
	if len(loaded.Tags) != 1 || loaded.Tags[0].Name != tag.Name {
		t.Errorf("expected tag snapshot to round-trip, got %+v", loaded.Tags)
	}

	budget := testutil.CreateTestBudget(t, db, userID, category.ID, "100")
	testutil.AssertDecimal(t, budget.LimitAmount, "100", "limit")
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrAccountNotFound, "custom message")
	testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
