package services

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"carteira/internal/aggregation"
	"carteira/internal/cache"
	"carteira/internal/clock"
	"carteira/internal/events"
	"carteira/internal/models"
	"carteira/internal/testutil"
)

func assertStoredAmounts(t *testing.T, db *gorm.DB, budgetID, cardID, want string) {
	t.Helper()
	var b models.Budget
	if err := db.First(&b, "id = ?", budgetID).Error; err != nil {
		t.Fatalf("failed to load budget: %v", err)
	}
	var c models.Card
	if err := db.First(&c, "id = ?", cardID).Error; err != nil {
		t.Fatalf("failed to load card: %v", err)
	}
	testutil.AssertDecimal(t, b.SpentAmount, want, "stored spent amount")
	testutil.AssertDecimal(t, c.UsedAmount, want, "stored used amount")
}

func TestRefreshUser(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	refresher := NewCacheRefreshService(e.db, e.datasets, testResolver())
	userID := testutil.NewUserID()
	category := testutil.CreateTestCategory(t, e.db, userID, models.CategoryTypeExpense)
	budget := testutil.CreateTestBudget(t, e.db, userID, category.ID, "500")
	card := testutil.CreateTestCard(t, e.db, userID, aggregation.CardCredit, "1000")
	testutil.CreateTestTransaction(t, e.db, userID, aggregation.KindExpense, "120.50", day(2025, 3, 10),
		testutil.WithCategory(category.ID), testutil.WithCard(card.ID))

	testutil.AssertNoError(t, refresher.RefreshUser(ctx, userID))

	assertStoredAmounts(t, e.db, budget.ID, card.ID, "120.50")
}

func TestRefreshAll(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	refresher := NewCacheRefreshService(e.db, e.datasets, testResolver())

	a, b := testutil.NewUserID(), testutil.NewUserID()
	category := testutil.CreateTestCategory(t, e.db, a, models.CategoryTypeExpense)
	testutil.CreateTestBudget(t, e.db, a, category.ID, "100")
	testutil.CreateTestCard(t, e.db, a, aggregation.CardCredit, "100")
	testutil.CreateTestCard(t, e.db, b, aggregation.CardCredit, "100")

	n, err := refresher.RefreshAll(ctx)
	testutil.AssertNoError(t, err)
	if n != 2 {
		t.Errorf("expected 2 users refreshed, got %d", n)
	}
}

// TestRefreshOnChange wires the bus the way the API does and checks that a
// new transaction reaches both the cached dataset and the stored amounts.
func TestRefreshOnChange(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	resolver := testResolver()
	bus := events.NewBus()
	datasets := NewDatasetService(db, cache.NewLRUCache[*Dataset](10, time.Hour), clock.Fixed(testNow))
	refresher := NewCacheRefreshService(db, datasets, resolver)
	bus.Subscribe(datasets.Invalidate, events.AllEntities...)
	bus.Subscribe(refresher.Handle, RefreshEntities...)

	accounts := NewAccountService(db, bus)
	transactions := NewTransactionService(db, accounts, resolver, bus)
	budgets := NewBudgetService(db, datasets, resolver, bus)

	userID := testutil.NewUserID()
	account := testutil.CreateTestAccount(t, db, userID, "1000")
	category := testutil.CreateTestCategory(t, db, userID, models.CategoryTypeExpense)
	card := testutil.CreateTestCard(t, db, userID, aggregation.CardCredit, "1000")
	budget, err := budgets.CreateBudget(ctx, userID, BudgetInput{
		CategoryID: category.ID, Name: "Food", LimitAmount: testutil.Dec("500"), Period: aggregation.BudgetMonthly,
		StartDate: day(2025, 1, 1),
	})
	testutil.AssertNoError(t, err)

	// Warm the cache before the write
	_, err = budgets.GetBudgetProgress(ctx, userID, budget.ID)
	testutil.AssertNoError(t, err)

	_, err = transactions.CreateTransaction(ctx, userID, TransactionInput{
		Kind: aggregation.KindExpense, Amount: testutil.Dec("200"), Date: day(2025, 3, 11),
		AccountID: &account.ID, CardID: &card.ID, CategoryID: &category.ID,
	})
	testutil.AssertNoError(t, err)

	progress, err := budgets.GetBudgetProgress(ctx, userID, budget.ID)
	testutil.AssertNoError(t, err)
	testutil.AssertDecimal(t, progress.Spent, "200", "live spent")

	assertStoredAmounts(t, db, budget.ID, card.ID, "200")
}
