package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "carteira/internal/errors"
	"carteira/internal/events"
	"carteira/internal/models"
	"carteira/internal/pagination"
)

// defaultCategories are seeded for every new user.
var defaultCategories = []CategoryInput{
	{Name: "Salary", Type: models.CategoryTypeIncome, Icon: "briefcase", Color: "#22c55e"},
	{Name: "Freelance", Type: models.CategoryTypeIncome, Icon: "laptop", Color: "#10b981"},
	{Name: "Investments", Type: models.CategoryTypeIncome, Icon: "trending-up", Color: "#14b8a6"},
	{Name: "Other Income", Type: models.CategoryTypeIncome, Icon: "plus-circle", Color: "#84cc16"},
	{Name: "Food", Type: models.CategoryTypeExpense, Icon: "utensils", Color: "#ef4444"},
	{Name: "Housing", Type: models.CategoryTypeExpense, Icon: "home", Color: "#f97316"},
	{Name: "Transportation", Type: models.CategoryTypeExpense, Icon: "car", Color: "#f59e0b"},
	{Name: "Health", Type: models.CategoryTypeExpense, Icon: "heart", Color: "#ec4899"},
	{Name: "Education", Type: models.CategoryTypeExpense, Icon: "book", Color: "#8b5cf6"},
	{Name: "Leisure", Type: models.CategoryTypeExpense, Icon: "smile", Color: "#6366f1"},
	{Name: "Shopping", Type: models.CategoryTypeExpense, Icon: "shopping-bag", Color: "#3b82f6"},
	{Name: "Bills", Type: models.CategoryTypeExpense, Icon: "file-text", Color: "#64748b"},
	{Name: "Other Expenses", Type: models.CategoryTypeExpense, Icon: "more-horizontal", Color: "#94a3b8"},
}

// categoryService handles category-related business logic.
type categoryService struct {
	db     *gorm.DB
	events events.Publisher
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB, pub events.Publisher) CategoryServicer {
	return &categoryService{db: db, events: publisherOrNop(pub)}
}

// CreateCategory creates a new category
func (s *categoryService) CreateCategory(ctx context.Context, userID string, in CategoryInput) (*models.Category, error) {
	if in.Name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}
	if in.Type != models.CategoryTypeIncome && in.Type != models.CategoryTypeExpense {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category type must be income or expense")
	}

	db := s.db.WithContext(ctx)

	// Names are unique per user and type
	n, err := countOwned(db, &models.Category{}, userID, "name = ? AND type = ?", in.Name, in.Type)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category with this name already exists")
	}

	category := &models.Category{
		UserID:    userID,
		Name:      in.Name,
		Type:      in.Type,
		Icon:      in.Icon,
		Color:     in.Color,
		SortOrder: in.SortOrder,
	}
	if err := db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	publish(ctx, s.events, userID, events.EntityCategory, events.ActionCreated, category.ID)
	return category, nil
}

// GetUserCategories retrieves a paginated list of categories for a user,
// optionally limited to one type.
func (s *categoryService) GetUserCategories(ctx context.Context, userID string, categoryType *models.CategoryType, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error) {
	page.Defaults()

	base := s.db.WithContext(ctx).Model(&models.Category{}).Where("user_id = ?", userID)
	if categoryType != nil {
		base = base.Where("type = ?", *categoryType)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var categories []models.Category
	if err := base.Scopes(
		pagination.Order(page, []string{"name", "sort_order"}, "sort_order ASC, name ASC"),
		pagination.Paginate(page),
	).Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(categories, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetCategoryByID retrieves a category by ID for a specific user
func (s *categoryService) GetCategoryByID(ctx context.Context, userID, categoryID string) (*models.Category, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", categoryID, userID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// UpdateCategory updates an existing category
func (s *categoryService) UpdateCategory(ctx context.Context, userID, categoryID string, fields CategoryUpdateFields) (*models.Category, error) {
	category, err := s.GetCategoryByID(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if fields.Name != nil && *fields.Name != "" {
		updates["name"] = *fields.Name
	}
	if fields.Icon != nil {
		updates["icon"] = *fields.Icon
	}
	if fields.Color != nil {
		updates["color"] = *fields.Color
	}
	if fields.SortOrder != nil {
		updates["sort_order"] = *fields.SortOrder
	}

	if len(updates) > 0 {
		db := s.db.WithContext(ctx)
		if err := db.Model(category).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := db.Where("id = ?", category.ID).First(category).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		publish(ctx, s.events, userID, events.EntityCategory, events.ActionUpdated, category.ID)
	}

	return category, nil
}

// DeleteCategory deletes a category. Default categories and categories
// still referenced by records or budgets are kept.
func (s *categoryService) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	category, err := s.GetCategoryByID(ctx, userID, categoryID)
	if err != nil {
		return err
	}
	if category.IsDefault {
		return apperrors.ErrDefaultCategory
	}

	db := s.db.WithContext(ctx)
	for _, model := range []interface{}{&models.Transaction{}, &models.Budget{}, &models.Debt{}, &models.Receivable{}} {
		n, err := countOwned(db, model, userID, "category_id = ?", categoryID)
		if err != nil {
			return err
		}
		if n > 0 {
			return apperrors.ErrCategoryInUse
		}
	}

	if err := db.Delete(category).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	publish(ctx, s.events, userID, events.EntityCategory, events.ActionDeleted, category.ID)
	return nil
}

// SeedDefaults creates the default categories for a user. It is a no-op
// returning the existing defaults when they were already seeded.
func (s *categoryService) SeedDefaults(ctx context.Context, userID string) ([]models.Category, error) {
	db := s.db.WithContext(ctx)

	var existing []models.Category
	if err := db.Where("user_id = ? AND is_default = ?", userID, true).
		Order("sort_order ASC").Find(&existing).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if len(existing) > 0 {
		return existing, nil
	}

	categories := make([]models.Category, len(defaultCategories))
	for i, d := range defaultCategories {
		categories[i] = models.Category{
			UserID:    userID,
			Name:      d.Name,
			Type:      d.Type,
			Icon:      d.Icon,
			Color:     d.Color,
			IsDefault: true,
			SortOrder: i,
		}
	}
	if err := db.Create(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	publish(ctx, s.events, userID, events.EntityCategory, events.ActionCreated, "")
	return categories, nil
}
