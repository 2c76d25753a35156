package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"carteira/internal/aggregation"
	apperrors "carteira/internal/errors"
	"carteira/internal/events"
	"carteira/internal/models"
	"carteira/internal/pagination"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	db       *gorm.DB
	datasets DatasetServicer
	resolver *aggregation.Resolver
	events   events.Publisher
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB, datasets DatasetServicer, resolver *aggregation.Resolver, pub events.Publisher) BudgetServicer {
	return &budgetService{db: db, datasets: datasets, resolver: resolver, events: publisherOrNop(pub)}
}

func validBudgetPeriod(p aggregation.BudgetPeriod) bool {
	switch p {
	case aggregation.BudgetWeekly, aggregation.BudgetMonthly, aggregation.BudgetYearly:
		return true
	}
	return false
}

// CreateBudget creates a new budget for an expense category.
func (s *budgetService) CreateBudget(ctx context.Context, userID string, in BudgetInput) (*models.Budget, error) {
	if in.Name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "budget name is required")
	}
	if err := requirePositive(in.LimitAmount, "limit amount"); err != nil {
		return nil, err
	}
	if !validBudgetPeriod(in.Period) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "period must be weekly, monthly or yearly")
	}
	if in.StartDate.IsZero() {
		in.StartDate = aggregation.StartOfDay(s.resolver.Now())
	}
	if in.EndDate != nil && in.EndDate.Before(in.StartDate) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidRange, "end date must not be before start date")
	}

	db := s.db.WithContext(ctx)

	// Verify category exists, belongs to user and holds expenses
	category, err := findOwned[models.Category](db, userID, in.CategoryID, apperrors.ErrCategoryNotFound)
	if err != nil {
		return nil, err
	}
	if category.Type != models.CategoryTypeExpense {
		return nil, apperrors.WithMessage(apperrors.ErrCategoryTypeMismatch, "budgets track expense categories")
	}

	budget := &models.Budget{
		UserID:      userID,
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		LimitAmount: in.LimitAmount,
		Period:      in.Period,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		IsActive:    true,
	}

	if err := db.Create(budget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	publish(ctx, s.events, userID, events.EntityBudget, events.ActionCreated, budget.ID)
	return budget, nil
}

// GetUserBudgets returns a paginated list of budgets for the user with optional filters.
func (s *budgetService) GetUserBudgets(
	ctx context.Context,
	userID string,
	page pagination.PageRequest,
	isActive *bool,
	period *aggregation.BudgetPeriod,
) (*pagination.PageResponse[models.Budget], error) {
	page.Defaults()

	base := s.db.WithContext(ctx).Model(&models.Budget{}).Where("user_id = ?", userID)
	if isActive != nil {
		base = base.Where("is_active = ?", *isActive)
	}
	if period != nil {
		base = base.Where("period = ?", *period)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var budgets []models.Budget
	if err := base.Scopes(
		pagination.Order(page, []string{"name", "limit_amount", "start_date"}, "name ASC"),
		pagination.Paginate(page),
	).Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(budgets, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetBudgetByID returns a budget by ID if it belongs to the user.
func (s *budgetService) GetBudgetByID(ctx context.Context, userID, budgetID string) (*models.Budget, error) {
	var budget models.Budget
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", budgetID, userID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}

// UpdateBudget updates an existing budget's fields.
func (s *budgetService) UpdateBudget(ctx context.Context, userID, budgetID string, fields BudgetUpdateFields) (*models.Budget, error) {
	budget, err := s.GetBudgetByID(ctx, userID, budgetID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if fields.Name != nil && *fields.Name != "" {
		updates["name"] = *fields.Name
	}
	if fields.LimitAmount != nil {
		if err := requirePositive(*fields.LimitAmount, "limit amount"); err != nil {
			return nil, err
		}
		updates["limit_amount"] = *fields.LimitAmount
	}
	if fields.Period != nil {
		if !validBudgetPeriod(*fields.Period) {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "period must be weekly, monthly or yearly")
		}
		updates["period"] = *fields.Period
	}
	if fields.EndDate != nil {
		if fields.EndDate.Before(budget.StartDate) {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidRange, "end date must not be before start date")
		}
		updates["end_date"] = fields.EndDate
	}
	if fields.IsActive != nil {
		updates["is_active"] = *fields.IsActive
	}

	if len(updates) > 0 {
		db := s.db.WithContext(ctx)
		if err := db.Model(budget).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := db.Where("id = ?", budget.ID).First(budget).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		publish(ctx, s.events, userID, events.EntityBudget, events.ActionUpdated, budget.ID)
	}

	return budget, nil
}

// DeleteBudget soft-deletes a budget.
func (s *budgetService) DeleteBudget(ctx context.Context, userID, budgetID string) error {
	budget, err := s.GetBudgetByID(ctx, userID, budgetID)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(budget).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	publish(ctx, s.events, userID, events.EntityBudget, events.ActionDeleted, budget.ID)
	return nil
}

// GetBudgetProgress evaluates spending against the budget for its current
// window. Spending is always recomputed from the user's records; the
// stored spent amount is not consulted.
func (s *budgetService) GetBudgetProgress(ctx context.Context, userID, budgetID string) (*BudgetProgress, error) {
	budget, err := s.GetBudgetByID(ctx, userID, budgetID)
	if err != nil {
		return nil, err
	}

	ds, err := s.datasets.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	progress := budgetProgress(budget, ds.CategoryName(budget.CategoryID), ds.Records, s.resolver.Now())
	return &progress, nil
}
