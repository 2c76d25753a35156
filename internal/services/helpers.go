package services

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"carteira/internal/aggregation"
	apperrors "carteira/internal/errors"
	"carteira/internal/events"
	"carteira/internal/models"
)

func publisherOrNop(p events.Publisher) events.Publisher {
	if p == nil {
		return events.Nop{}
	}
	return p
}

// findOwned loads a row of T by id, scoped to the user.
func findOwned[T any](db *gorm.DB, userID, id string, notFound *apperrors.AppError) (*T, error) {
	var out T
	if err := db.Where("id = ? AND user_id = ?", id, userID).First(&out).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &out, nil
}

// countOwned counts rows of model for the user matching query.
func countOwned(db *gorm.DB, model interface{}, userID, query string, args ...interface{}) (int64, error) {
	var n int64
	err := db.Model(model).Where("user_id = ?", userID).Where(query, args...).Count(&n).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return n, nil
}

// mapCoreError converts aggregation errors to AppErrors.
func mapCoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, aggregation.ErrInvalidRange):
		return apperrors.WithMessage(apperrors.ErrInvalidRange, err.Error())
	case errors.Is(err, aggregation.ErrUnknownSelector), errors.Is(err, aggregation.ErrUnsupportedGrouping):
		return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}

func requirePositive(amount decimal.Decimal, field string) error {
	if !amount.IsPositive() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, field+" must be greater than zero")
	}
	return nil
}

// spentIn sums the expenses recorded against categoryID inside w.
func spentIn(records []aggregation.Record, categoryID string, w aggregation.Period) decimal.Decimal {
	matched := aggregation.Filter(records, aggregation.Criteria{
		Period:     &w,
		Kind:       aggregation.KindExpense,
		CategoryID: categoryID,
	})
	return aggregation.Totals(matched).Expense
}

// usedIn is the card's net charges inside its cycle. Refunds booked as
// income on the card reduce it, never below zero.
func usedIn(records []aggregation.Record, cardID string, cycle aggregation.Period) decimal.Decimal {
	matched := aggregation.Filter(records, aggregation.Criteria{Period: &cycle, CardID: cardID})
	totals := aggregation.Totals(matched)
	used := totals.Expense.Sub(totals.Income)
	if used.IsNegative() {
		return decimal.Zero
	}
	return used
}

func budgetProgress(b *models.Budget, categoryName string, records []aggregation.Record, now time.Time) BudgetProgress {
	w := b.Window(now)
	return BudgetProgress{
		BudgetID:         b.ID,
		Name:             b.Name,
		CategoryID:       b.CategoryID,
		CategoryName:     categoryName,
		Period:           b.Period,
		WindowStart:      w.Start,
		WindowEnd:        w.End,
		BudgetEvaluation: aggregation.EvaluateBudget(b.LimitAmount, spentIn(records, b.CategoryID, w)),
	}
}

func cardUsage(c *models.Card, records []aggregation.Record, now time.Time) CardUsage {
	cycle := c.Cycle(now)
	return CardUsage{
		CardID:         c.ID,
		Name:           c.Name,
		Type:           c.Type,
		CycleStart:     cycle.Start,
		CycleEnd:       cycle.End,
		CardEvaluation: aggregation.EvaluateCard(c.Type, c.CreditLimit, usedIn(records, c.ID, cycle)),
	}
}

func goalProgress(g *models.Goal, now time.Time) GoalProgress {
	return GoalProgress{
		GoalID:         g.ID,
		Title:          g.Title,
		StoredStatus:   g.Status,
		Deadline:       g.Deadline,
		GoalEvaluation: aggregation.EvaluateGoal(g.TargetAmount, g.CurrentAmount, g.Deadline, now),
	}
}

func publish(ctx context.Context, p events.Publisher, userID string, entity events.Entity, action events.Action, id string) {
	p.Publish(ctx, events.Change{UserID: userID, Entity: entity, Action: action, ID: id})
}
