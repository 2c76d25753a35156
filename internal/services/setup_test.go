package services

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"carteira/internal/aggregation"
	"carteira/internal/clock"
	"carteira/internal/events"
	"carteira/internal/testutil"
)

// testNow is the fixed "now" of every service test: mid March 2025.
var testNow = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

func testResolver() *aggregation.Resolver {
	return aggregation.NewResolver(clock.Fixed(testNow))
}

// recordingPublisher remembers every published change.
type recordingPublisher struct {
	changes []events.Change
}

func (p *recordingPublisher) Publish(_ context.Context, c events.Change) {
	p.changes = append(p.changes, c)
}

func (p *recordingPublisher) last() events.Change {
	if len(p.changes) == 0 {
		return events.Change{}
	}
	return p.changes[len(p.changes)-1]
}

// env bundles the services wired the way cmd/api wires them, minus caching.
type env struct {
	db           *gorm.DB
	pub          *recordingPublisher
	datasets     DatasetServicer
	accounts     AccountServicer
	cards        CardServicer
	categories   CategoryServicer
	tags         TagServicer
	transactions TransactionServicer
	budgets      BudgetServicer
	goals        GoalServicer
	debts        DebtServicer
	receivables  ReceivableServicer
	reports      ReportServicer
}

func newEnv(t *testing.T) *env {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	pub := &recordingPublisher{}
	resolver := testResolver()
	datasets := NewDatasetService(db, nil, clock.Fixed(testNow))
	accounts := NewAccountService(db, pub)

	return &env{
		db:           db,
		pub:          pub,
		datasets:     datasets,
		accounts:     accounts,
		cards:        NewCardService(db, datasets, resolver, pub),
		categories:   NewCategoryService(db, pub),
		tags:         NewTagService(db, pub),
		transactions: NewTransactionService(db, accounts, resolver, pub),
		budgets:      NewBudgetService(db, datasets, resolver, pub),
		goals:        NewGoalService(db, resolver, pub),
		debts:        NewDebtService(db, accounts, resolver, pub),
		receivables:  NewReceivableService(db, accounts, resolver, pub),
		reports:      NewReportService(datasets, resolver, time.UTC),
	}
}
