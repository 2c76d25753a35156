package services

import (
	"context"

	"gorm.io/gorm"

	"carteira/internal/aggregation"
	apperrors "carteira/internal/errors"
	"carteira/internal/events"
	"carteira/internal/logger"
	"carteira/internal/models"
)

// cacheRefreshService rewrites Budget.SpentAmount and Card.UsedAmount
// from the records. Nothing reads those columns for evaluation; they exist
// for clients that list budgets and cards without asking for progress.
type cacheRefreshService struct {
	db       *gorm.DB
	datasets DatasetServicer
	resolver *aggregation.Resolver
}

// NewCacheRefreshService creates a new CacheRefreshServicer.
func NewCacheRefreshService(db *gorm.DB, datasets DatasetServicer, resolver *aggregation.Resolver) CacheRefreshServicer {
	return &cacheRefreshService{db: db, datasets: datasets, resolver: resolver}
}

// RefreshEntities are the changes that can move a spent or used amount.
var RefreshEntities = []events.Entity{
	events.EntityTransaction,
	events.EntityDebt,
	events.EntityReceivable,
	events.EntityBudget,
	events.EntityCard,
}

// Handle refreshes the changed user's cached amounts.
func (s *cacheRefreshService) Handle(ctx context.Context, c events.Change) error {
	return s.RefreshUser(ctx, c.UserID)
}

// RefreshUser recomputes and stores the user's budget spent and card used
// amounts, writing only the rows that changed.
func (s *cacheRefreshService) RefreshUser(ctx context.Context, userID string) error {
	ds, err := s.datasets.Load(ctx, userID)
	if err != nil {
		return err
	}

	now := s.resolver.Now()
	db := s.db.WithContext(ctx)

	for i := range ds.Budgets {
		b := &ds.Budgets[i]
		spent := spentIn(ds.Records, b.CategoryID, b.Window(now))
		if spent.Equal(b.SpentAmount) {
			continue
		}
		if err := db.Model(&models.Budget{}).Where("id = ?", b.ID).Update("spent_amount", spent).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	for i := range ds.Cards {
		c := &ds.Cards[i]
		used := usedIn(ds.Records, c.ID, c.Cycle(now))
		if used.Equal(c.UsedAmount) {
			continue
		}
		if err := db.Model(&models.Card{}).Where("id = ?", c.ID).Update("used_amount", used).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	// The stored amounts just changed under the cached copy
	return s.datasets.Invalidate(ctx, events.Change{UserID: userID})
}

// RefreshAll refreshes every user owning a budget or a card and returns
// how many users were refreshed. Windows roll over with time, so this runs
// on demand from the maintenance endpoint.
func (s *cacheRefreshService) RefreshAll(ctx context.Context) (int, error) {
	db := s.db.WithContext(ctx)

	var budgetUsers, cardUsers []string
	if err := db.Model(&models.Budget{}).Distinct().Pluck("user_id", &budgetUsers).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := db.Model(&models.Card{}).Distinct().Pluck("user_id", &cardUsers).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	seen := make(map[string]bool, len(budgetUsers)+len(cardUsers))
	refreshed := 0
	for _, userID := range append(budgetUsers, cardUsers...) {
		if seen[userID] {
			continue
		}
		seen[userID] = true
		if err := s.RefreshUser(ctx, userID); err != nil {
			logger.Get().Errorw("failed to refresh cached amounts", "error", err, "user_id", userID)
			continue
		}
		refreshed++
	}
	return refreshed, nil
}
