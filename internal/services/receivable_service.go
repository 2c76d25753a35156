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

// receivableService handles receivable-related business logic.
type receivableService struct {
	db             *gorm.DB
	accountService AccountServicer
	resolver       *aggregation.Resolver
	events         events.Publisher
}

// NewReceivableService creates a new ReceivableServicer.
func NewReceivableService(db *gorm.DB, accountService AccountServicer, resolver *aggregation.Resolver, pub events.Publisher) ReceivableServicer {
	return &receivableService{db: db, accountService: accountService, resolver: resolver, events: publisherOrNop(pub)}
}

// receivableStatus derives the status from how much came in.
func receivableStatus(r *models.Receivable) models.ReceivableStatus {
	switch {
	case !r.ReceivedAmount.IsPositive():
		return models.ReceivableStatusPending
	case r.ReceivedAmount.GreaterThanOrEqual(r.Amount):
		return models.ReceivableStatusReceived
	default:
		return models.ReceivableStatusPartial
	}
}

// CreateReceivable records money owed to the user.
func (s *receivableService) CreateReceivable(ctx context.Context, userID string, in ReceivableInput) (*models.Receivable, error) {
	if in.Debtor == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "debtor is required")
	}
	if err := requirePositive(in.Amount, "amount"); err != nil {
		return nil, err
	}
	if in.DueDate.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "due date is required")
	}

	db := s.db.WithContext(ctx)
	if err := checkCategory(db, userID, in.CategoryID, models.CategoryTypeIncome); err != nil {
		return nil, err
	}

	receivable := &models.Receivable{
		UserID:      userID,
		Debtor:      in.Debtor,
		Description: in.Description,
		Amount:      in.Amount.Round(2),
		DueDate:     in.DueDate,
		Status:      models.ReceivableStatusPending,
		CategoryID:  in.CategoryID,
	}
	if err := db.Create(receivable).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	publish(ctx, s.events, userID, events.EntityReceivable, events.ActionCreated, receivable.ID)
	return receivable, nil
}

// GetUserReceivables lists receivables by due date, optionally by status.
func (s *receivableService) GetUserReceivables(ctx context.Context, userID string, status *models.ReceivableStatus, page pagination.PageRequest) (*pagination.PageResponse[models.Receivable], error) {
	page.Defaults()

	base := s.db.WithContext(ctx).Model(&models.Receivable{}).Where("user_id = ?", userID)
	if status != nil {
		base = base.Where("status = ?", *status)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var receivables []models.Receivable
	if err := base.Scopes(
		pagination.Order(page, []string{"due_date", "amount", "debtor"}, "due_date ASC"),
		pagination.Paginate(page),
	).Find(&receivables).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(receivables, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetReceivableByID returns a receivable with its payments.
func (s *receivableService) GetReceivableByID(ctx context.Context, userID, receivableID string) (*models.Receivable, error) {
	var receivable models.Receivable
	if err := s.db.WithContext(ctx).
		Preload("Payments", func(db *gorm.DB) *gorm.DB { return db.Order("date ASC") }).
		Where("id = ? AND user_id = ?", receivableID, userID).
		First(&receivable).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReceivableNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &receivable, nil
}

// UpdateReceivable updates a receivable. The amount may not drop below what
// was already received.
func (s *receivableService) UpdateReceivable(ctx context.Context, userID, receivableID string, fields ReceivableUpdateFields) (*models.Receivable, error) {
	receivable, err := s.GetReceivableByID(ctx, userID, receivableID)
	if err != nil {
		return nil, err
	}

	db := s.db.WithContext(ctx)
	updates := make(map[string]interface{})
	if fields.Debtor != nil && *fields.Debtor != "" {
		updates["debtor"] = *fields.Debtor
	}
	if fields.Description != nil {
		updates["description"] = *fields.Description
	}
	if fields.Amount != nil {
		if err := requirePositive(*fields.Amount, "amount"); err != nil {
			return nil, err
		}
		amount := fields.Amount.Round(2)
		if amount.LessThan(receivable.ReceivedAmount) {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount cannot be less than what was already received")
		}
		receivable.Amount = amount
		updates["amount"] = amount
		updates["status"] = receivableStatus(receivable)
	}
	if fields.DueDate != nil {
		updates["due_date"] = *fields.DueDate
	}
	if fields.CategoryID != nil {
		if err := checkCategory(db, userID, fields.CategoryID, models.CategoryTypeIncome); err != nil {
			return nil, err
		}
		updates["category_id"] = *fields.CategoryID
	}

	if len(updates) > 0 {
		if err := db.Model(&models.Receivable{}).Where("id = ?", receivable.ID).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		publish(ctx, s.events, userID, events.EntityReceivable, events.ActionUpdated, receivable.ID)
		return s.GetReceivableByID(ctx, userID, receivableID)
	}

	return receivable, nil
}

// DeleteReceivable deletes a receivable and its payments, taking back what
// the payments credited to accounts.
func (s *receivableService) DeleteReceivable(ctx context.Context, userID, receivableID string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		receivable, err := findOwned[models.Receivable](tx, userID, receivableID, apperrors.ErrReceivableNotFound)
		if err != nil {
			return err
		}

		var payments []models.ReceivablePayment
		if err := tx.Where("receivable_id = ?", receivable.ID).Find(&payments).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		for i := range payments {
			if payments[i].AccountID == nil {
				continue
			}
			if err := s.accountService.UpdateAccountBalance(tx, userID, *payments[i].AccountID, payments[i].Amount.Neg()); err != nil {
				return err
			}
		}

		if err := tx.Where("receivable_id = ?", receivable.ID).Delete(&models.ReceivablePayment{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Delete(receivable).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	publish(ctx, s.events, userID, events.EntityReceivable, events.ActionDeleted, receivableID)
	return nil
}

// RecordPayment registers a payment against the receivable. Payments above
// the outstanding amount are rejected.
func (s *receivableService) RecordPayment(ctx context.Context, userID, receivableID string, in PaymentInput) (*models.Receivable, error) {
	if err := requirePositive(in.Amount, "amount"); err != nil {
		return nil, err
	}
	amount := in.Amount.Round(2)
	if in.Date.IsZero() {
		in.Date = s.resolver.Now()
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		receivable, err := findOwned[models.Receivable](tx, userID, receivableID, apperrors.ErrReceivableNotFound)
		if err != nil {
			return err
		}
		if amount.GreaterThan(receivable.Outstanding()) {
			return apperrors.ErrOverpayment
		}
		if in.AccountID != nil {
			if err := s.accountService.UpdateAccountBalance(tx, userID, *in.AccountID, amount); err != nil {
				return err
			}
		}

		payment := &models.ReceivablePayment{
			ReceivableID: receivable.ID,
			UserID:       userID,
			Amount:       amount,
			Date:         in.Date,
			AccountID:    in.AccountID,
			Notes:        in.Notes,
		}
		if err := tx.Create(payment).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		receivable.ReceivedAmount = receivable.ReceivedAmount.Add(amount)
		if err := tx.Model(receivable).Updates(map[string]interface{}{
			"received_amount": receivable.ReceivedAmount,
			"status":          receivableStatus(receivable),
		}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	publish(ctx, s.events, userID, events.EntityReceivable, events.ActionUpdated, receivableID)
	return s.GetReceivableByID(ctx, userID, receivableID)
}
