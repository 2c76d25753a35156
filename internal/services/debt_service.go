package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"carteira/internal/aggregation"
	apperrors "carteira/internal/errors"
	"carteira/internal/events"
	"carteira/internal/models"
	"carteira/internal/pagination"
)

// debtService handles debt-related business logic.
type debtService struct {
	db             *gorm.DB
	accountService AccountServicer
	resolver       *aggregation.Resolver
	events         events.Publisher
}

// NewDebtService creates a new DebtServicer.
func NewDebtService(db *gorm.DB, accountService AccountServicer, resolver *aggregation.Resolver, pub events.Publisher) DebtServicer {
	return &debtService{db: db, accountService: accountService, resolver: resolver, events: publisherOrNop(pub)}
}

// checkCategory verifies an optional category belongs to the user and has
// the wanted type.
func checkCategory(db *gorm.DB, userID string, categoryID *string, want models.CategoryType) error {
	if categoryID == nil {
		return nil
	}
	category, err := findOwned[models.Category](db, userID, *categoryID, apperrors.ErrCategoryNotFound)
	if err != nil {
		return err
	}
	if category.Type != want {
		return apperrors.ErrCategoryTypeMismatch
	}
	return nil
}

// CreateDebt records money owed to a creditor.
func (s *debtService) CreateDebt(ctx context.Context, userID string, in DebtInput) (*models.Debt, error) {
	if in.Creditor == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "creditor is required")
	}
	if err := requirePositive(in.Amount, "amount"); err != nil {
		return nil, err
	}
	if in.DueDate.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "due date is required")
	}

	db := s.db.WithContext(ctx)
	if err := checkCategory(db, userID, in.CategoryID, models.CategoryTypeExpense); err != nil {
		return nil, err
	}
	if in.AccountID != nil {
		if _, err := findOwned[models.Account](db, userID, *in.AccountID, apperrors.ErrAccountNotFound); err != nil {
			return nil, err
		}
	}

	debt := &models.Debt{
		UserID:      userID,
		Creditor:    in.Creditor,
		Description: in.Description,
		Amount:      in.Amount.Round(2),
		DueDate:     in.DueDate,
		Status:      models.DebtStatusPending,
		CategoryID:  in.CategoryID,
		AccountID:   in.AccountID,
	}
	if err := db.Create(debt).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	publish(ctx, s.events, userID, events.EntityDebt, events.ActionCreated, debt.ID)
	return debt, nil
}

// GetUserDebts lists debts by due date, optionally by status.
func (s *debtService) GetUserDebts(ctx context.Context, userID string, status *models.DebtStatus, page pagination.PageRequest) (*pagination.PageResponse[models.Debt], error) {
	page.Defaults()

	base := s.db.WithContext(ctx).Model(&models.Debt{}).Where("user_id = ?", userID)
	if status != nil {
		base = base.Where("status = ?", *status)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var debts []models.Debt
	if err := base.Scopes(
		pagination.Order(page, []string{"due_date", "amount", "creditor"}, "due_date ASC"),
		pagination.Paginate(page),
	).Find(&debts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(debts, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetDebtByID returns a debt by ID if it belongs to the user.
func (s *debtService) GetDebtByID(ctx context.Context, userID, debtID string) (*models.Debt, error) {
	var debt models.Debt
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", debtID, userID).First(&debt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDebtNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &debt, nil
}

// UpdateDebt updates a debt. The amount of a paid debt is frozen.
func (s *debtService) UpdateDebt(ctx context.Context, userID, debtID string, fields DebtUpdateFields) (*models.Debt, error) {
	debt, err := s.GetDebtByID(ctx, userID, debtID)
	if err != nil {
		return nil, err
	}

	db := s.db.WithContext(ctx)
	updates := make(map[string]interface{})
	if fields.Creditor != nil && *fields.Creditor != "" {
		updates["creditor"] = *fields.Creditor
	}
	if fields.Description != nil {
		updates["description"] = *fields.Description
	}
	if fields.Amount != nil {
		if debt.Status == models.DebtStatusPaid {
			return nil, apperrors.WithMessage(apperrors.ErrDebtAlreadyPaid, "the amount of a paid debt cannot change")
		}
		if err := requirePositive(*fields.Amount, "amount"); err != nil {
			return nil, err
		}
		updates["amount"] = fields.Amount.Round(2)
	}
	if fields.DueDate != nil {
		updates["due_date"] = *fields.DueDate
	}
	if fields.CategoryID != nil {
		if err := checkCategory(db, userID, fields.CategoryID, models.CategoryTypeExpense); err != nil {
			return nil, err
		}
		updates["category_id"] = *fields.CategoryID
	}

	if len(updates) > 0 {
		if err := db.Model(debt).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := db.Where("id = ?", debt.ID).First(debt).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		publish(ctx, s.events, userID, events.EntityDebt, events.ActionUpdated, debt.ID)
	}

	return debt, nil
}

// DeleteDebt deletes a debt. Deleting a paid debt returns its amount to the
// account it was paid from.
func (s *debtService) DeleteDebt(ctx context.Context, userID, debtID string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		debt, err := findOwned[models.Debt](tx, userID, debtID, apperrors.ErrDebtNotFound)
		if err != nil {
			return err
		}
		if err := tx.Delete(debt).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if debt.Status == models.DebtStatusPaid && debt.AccountID != nil {
			return s.accountService.UpdateAccountBalance(tx, userID, *debt.AccountID, debt.Amount)
		}
		return nil
	})
	if err != nil {
		return err
	}

	publish(ctx, s.events, userID, events.EntityDebt, events.ActionDeleted, debtID)
	return nil
}

// MarkDebtPaid settles a debt, debiting its account when it has one. A
// zero paidAt means now.
func (s *debtService) MarkDebtPaid(ctx context.Context, userID, debtID string, paidAt time.Time) (*models.Debt, error) {
	if paidAt.IsZero() {
		paidAt = s.resolver.Now()
	}

	var debt *models.Debt
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		debt, err = findOwned[models.Debt](tx, userID, debtID, apperrors.ErrDebtNotFound)
		if err != nil {
			return err
		}
		if debt.Status == models.DebtStatusPaid {
			return apperrors.ErrDebtAlreadyPaid
		}

		debt.Status = models.DebtStatusPaid
		debt.PaidAt = &paidAt
		if err := tx.Model(debt).Updates(map[string]interface{}{
			"status":  debt.Status,
			"paid_at": paidAt,
		}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if debt.AccountID != nil {
			return s.accountService.UpdateAccountBalance(tx, userID, *debt.AccountID, debt.Amount.Neg())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	publish(ctx, s.events, userID, events.EntityDebt, events.ActionUpdated, debt.ID)
	return debt, nil
}
