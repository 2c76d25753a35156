package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"carteira/internal/aggregation"
	apperrors "carteira/internal/errors"
	"carteira/internal/events"
	"carteira/internal/models"
	"carteira/internal/pagination"
)

// goalService handles goal-related business logic.
type goalService struct {
	db       *gorm.DB
	resolver *aggregation.Resolver
	events   events.Publisher
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(db *gorm.DB, resolver *aggregation.Resolver, pub events.Publisher) GoalServicer {
	return &goalService{db: db, resolver: resolver, events: publisherOrNop(pub)}
}

// reconcileStatus completes an active goal that reached its target and
// reopens a completed one that fell below it. Paused goals stay paused.
func reconcileStatus(g *models.Goal) {
	reached := g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
	switch {
	case reached && g.Status == models.GoalStatusActive:
		g.Status = models.GoalStatusCompleted
	case !reached && g.Status == models.GoalStatusCompleted:
		g.Status = models.GoalStatusActive
	}
}

// adjustGoal moves a goal's current amount by delta inside tx.
func adjustGoal(tx *gorm.DB, userID, goalID string, delta decimal.Decimal) (*models.Goal, error) {
	goal, err := findOwned[models.Goal](tx, userID, goalID, apperrors.ErrGoalNotFound)
	if err != nil {
		return nil, err
	}

	goal.CurrentAmount = goal.CurrentAmount.Add(delta)
	reconcileStatus(goal)
	if err := tx.Model(goal).Updates(map[string]interface{}{
		"current_amount": goal.CurrentAmount,
		"status":         goal.Status,
	}).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goal, nil
}

// CreateGoal creates a new savings goal.
func (s *goalService) CreateGoal(ctx context.Context, userID string, in GoalInput) (*models.Goal, error) {
	if in.Title == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "goal title is required")
	}
	if err := requirePositive(in.TargetAmount, "target amount"); err != nil {
		return nil, err
	}
	if in.CurrentAmount.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "current amount cannot be negative")
	}

	goal := &models.Goal{
		UserID:        userID,
		Title:         in.Title,
		Description:   in.Description,
		TargetAmount:  in.TargetAmount,
		CurrentAmount: in.CurrentAmount,
		Deadline:      in.Deadline,
		Status:        models.GoalStatusActive,
		Color:         in.Color,
	}
	reconcileStatus(goal)

	if err := s.db.WithContext(ctx).Create(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	publish(ctx, s.events, userID, events.EntityGoal, events.ActionCreated, goal.ID)
	return goal, nil
}

// GetUserGoals returns a paginated list of goals, optionally by status.
func (s *goalService) GetUserGoals(ctx context.Context, userID string, status *models.GoalStatus, page pagination.PageRequest) (*pagination.PageResponse[models.Goal], error) {
	page.Defaults()

	base := s.db.WithContext(ctx).Model(&models.Goal{}).Where("user_id = ?", userID)
	if status != nil {
		base = base.Where("status = ?", *status)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var goals []models.Goal
	if err := base.Scopes(
		pagination.Order(page, []string{"title", "deadline", "target_amount", "created_at"}, "created_at DESC"),
		pagination.Paginate(page),
	).Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(goals, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetGoalByID returns a goal by ID if it belongs to the user.
func (s *goalService) GetGoalByID(ctx context.Context, userID, goalID string) (*models.Goal, error) {
	var goal models.Goal
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &goal, nil
}

// UpdateGoal updates a goal. An explicit status is kept as given; otherwise
// the status follows the amounts.
func (s *goalService) UpdateGoal(ctx context.Context, userID, goalID string, fields GoalUpdateFields) (*models.Goal, error) {
	goal, err := s.GetGoalByID(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	if fields.Title != nil && *fields.Title != "" {
		goal.Title = *fields.Title
	}
	if fields.Description != nil {
		goal.Description = *fields.Description
	}
	if fields.TargetAmount != nil {
		if err := requirePositive(*fields.TargetAmount, "target amount"); err != nil {
			return nil, err
		}
		goal.TargetAmount = *fields.TargetAmount
	}
	if fields.Deadline != nil {
		goal.Deadline = fields.Deadline
	}
	if fields.Color != nil {
		goal.Color = *fields.Color
	}
	if fields.Status != nil {
		goal.Status = *fields.Status
	} else {
		reconcileStatus(goal)
	}

	if err := s.db.WithContext(ctx).Save(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	publish(ctx, s.events, userID, events.EntityGoal, events.ActionUpdated, goal.ID)
	return goal, nil
}

// DeleteGoal soft-deletes a goal. Linked transactions keep their goal id.
func (s *goalService) DeleteGoal(ctx context.Context, userID, goalID string) error {
	goal, err := s.GetGoalByID(ctx, userID, goalID)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(goal).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	publish(ctx, s.events, userID, events.EntityGoal, events.ActionDeleted, goal.ID)
	return nil
}

// Contribute adds a manual contribution to a goal.
func (s *goalService) Contribute(ctx context.Context, userID, goalID string, amount decimal.Decimal) (*models.Goal, error) {
	if err := requirePositive(amount, "amount"); err != nil {
		return nil, err
	}

	var goal *models.Goal
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		goal, err = adjustGoal(tx, userID, goalID, amount.Round(2))
		return err
	})
	if err != nil {
		return nil, err
	}

	publish(ctx, s.events, userID, events.EntityGoal, events.ActionUpdated, goal.ID)
	return goal, nil
}

// GetGoalProgress evaluates the goal against the current moment.
func (s *goalService) GetGoalProgress(ctx context.Context, userID, goalID string) (*GoalProgress, error) {
	goal, err := s.GetGoalByID(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	progress := goalProgress(goal, s.resolver.Now())
	return &progress, nil
}
