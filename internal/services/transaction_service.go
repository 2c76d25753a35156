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
	"carteira/internal/uuid"
)

// MaxInstallments caps how many monthly installments one purchase is split into.
const MaxInstallments = 72

// transactionService handles transaction-related business logic.
type transactionService struct {
	db             *gorm.DB
	accountService AccountServicer
	resolver       *aggregation.Resolver
	events         events.Publisher
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, accountService AccountServicer, resolver *aggregation.Resolver, pub events.Publisher) TransactionServicer {
	return &transactionService{
		db:             db,
		accountService: accountService,
		resolver:       resolver,
		events:         publisherOrNop(pub),
	}
}

// prepare validates the input against the user's data and returns the tag
// snapshots to embed.
func (s *transactionService) prepare(tx *gorm.DB, userID string, in *TransactionInput) (models.TagList, error) {
	if !in.Kind.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "kind must be income or expense")
	}
	if err := requirePositive(in.Amount, "amount"); err != nil {
		return nil, err
	}
	in.Amount = in.Amount.Round(2)

	if in.AccountID == nil && in.CardID == nil {
		return nil, apperrors.ErrMissingPaymentSource
	}
	if in.AccountID != nil {
		if _, err := findOwned[models.Account](tx, userID, *in.AccountID, apperrors.ErrAccountNotFound); err != nil {
			return nil, err
		}
	}
	if in.CardID != nil {
		if _, err := findOwned[models.Card](tx, userID, *in.CardID, apperrors.ErrCardNotFound); err != nil {
			return nil, err
		}
	}
	if in.CategoryID != nil {
		category, err := findOwned[models.Category](tx, userID, *in.CategoryID, apperrors.ErrCategoryNotFound)
		if err != nil {
			return nil, err
		}
		if string(category.Type) != string(in.Kind) {
			return nil, apperrors.ErrCategoryTypeMismatch
		}
	}
	if in.GoalID != nil {
		if in.Kind != aggregation.KindIncome {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "only income can be linked to a goal")
		}
		if _, err := findOwned[models.Goal](tx, userID, *in.GoalID, apperrors.ErrGoalNotFound); err != nil {
			return nil, err
		}
	}

	if in.Date.IsZero() {
		in.Date = s.resolver.Now()
	}

	return s.snapshotTags(tx, userID, in.TagIDs)
}

// snapshotTags copies the named tags in request order. Repeated ids are
// kept once.
func (s *transactionService) snapshotTags(tx *gorm.DB, userID string, ids []string) (models.TagList, error) {
	tags := models.TagList{}
	if len(ids) == 0 {
		return tags, nil
	}

	var found []models.Tag
	if err := tx.Where("user_id = ? AND id IN ?", userID, ids).Find(&found).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	byID := make(map[string]models.Tag, len(found))
	for _, t := range found {
		byID[t.ID] = t
	}

	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		t, ok := byID[id]
		if !ok {
			return nil, apperrors.ErrTagNotFound
		}
		tags = append(tags, t.Snapshot())
	}
	return tags, nil
}

// applyEffects moves the account balance and linked goal by the
// transaction's amount. sign -1 reverts a previously applied transaction.
func (s *transactionService) applyEffects(tx *gorm.DB, t *models.Transaction, sign int64) error {
	amount := t.Amount
	if sign < 0 {
		amount = amount.Neg()
	}

	if t.AccountID != nil {
		delta := amount
		if t.Kind == aggregation.KindExpense {
			delta = delta.Neg()
		}
		if err := s.accountService.UpdateAccountBalance(tx, t.UserID, *t.AccountID, delta); err != nil {
			return err
		}
	}

	if t.GoalID != nil && t.Kind == aggregation.KindIncome {
		_, err := adjustGoal(tx, t.UserID, *t.GoalID, amount)
		// A deleted goal has nothing left to revert
		if err != nil && !(sign < 0 && errors.Is(err, apperrors.ErrGoalNotFound)) {
			return err
		}
	}
	return nil
}

func newTransaction(userID string, in TransactionInput, tags models.TagList) *models.Transaction {
	return &models.Transaction{
		UserID:      userID,
		Kind:        in.Kind,
		Amount:      in.Amount,
		Date:        in.Date,
		AccountID:   in.AccountID,
		CardID:      in.CardID,
		CategoryID:  in.CategoryID,
		GoalID:      in.GoalID,
		Description: in.Description,
		Notes:       in.Notes,
		Tags:        tags,
	}
}

// CreateTransaction records a transaction, moving the account balance and
// any linked goal in the same database transaction.
func (s *transactionService) CreateTransaction(ctx context.Context, userID string, in TransactionInput) (*models.Transaction, error) {
	var result *models.Transaction
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tags, err := s.prepare(tx, userID, &in)
		if err != nil {
			return err
		}

		transaction := newTransaction(userID, in, tags)
		if err := tx.Create(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := s.applyEffects(tx, transaction, 1); err != nil {
			return err
		}

		result = transaction
		return nil
	})
	if err != nil {
		return nil, err
	}

	publish(ctx, s.events, userID, events.EntityTransaction, events.ActionCreated, result.ID)
	return result, nil
}

// CreateInstallments splits an expense into count monthly installments
// sharing one group id. The first installment falls on in.Date.
func (s *transactionService) CreateInstallments(ctx context.Context, userID string, in TransactionInput, count int) ([]models.Transaction, error) {
	if count < 2 || count > MaxInstallments {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "installments must be between 2 and 72")
	}
	if in.Kind != aggregation.KindExpense {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "only expenses can be paid in installments")
	}

	var result []models.Transaction
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tags, err := s.prepare(tx, userID, &in)
		if err != nil {
			return err
		}

		groupID := uuid.New()
		for _, inst := range aggregation.SplitInstallments(in.Amount, count, in.Date) {
			slice := in
			slice.Amount = inst.Amount
			slice.Date = inst.Date

			transaction := newTransaction(userID, slice, tags)
			transaction.InstallmentGroupID = &groupID
			transaction.InstallmentNumber = inst.Number
			transaction.InstallmentTotal = count

			if err := tx.Create(transaction).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			if err := s.applyEffects(tx, transaction, 1); err != nil {
				return err
			}
			result = append(result, *transaction)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for i := range result {
		publish(ctx, s.events, userID, events.EntityTransaction, events.ActionCreated, result[i].ID)
	}
	return result, nil
}

// criteria converts a list filter into aggregation criteria. The period is
// resolved strictly: an invalid custom range is an error, not a fallback.
func (s *transactionService) criteria(f TransactionFilter) (aggregation.Criteria, error) {
	c := aggregation.Criteria{
		Kind:       f.Kind,
		CategoryID: f.CategoryID,
		AccountID:  f.AccountID,
		CardID:     f.CardID,
		TagIDs:     f.TagIDs,
		SearchText: f.Search,
		MinAmount:  f.MinAmount,
		MaxAmount:  f.MaxAmount,
	}

	sel := f.Period
	if sel == "" {
		if f.From == nil && f.To == nil {
			return c, nil
		}
		sel = aggregation.PeriodCustom
	}
	period, err := s.resolver.Resolve(sel, f.From, f.To)
	if err != nil {
		return c, mapCoreError(err)
	}
	c.Period = &period
	return c, nil
}

// GetUserTransactions lists a user's transactions matching the filter,
// newest first unless page.Sort says otherwise.
func (s *transactionService) GetUserTransactions(ctx context.Context, userID string, filter TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	criteria, err := s.criteria(filter)
	if err != nil {
		return nil, err
	}

	var transactions []models.Transaction
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Scopes(pagination.Order(page, []string{"date", "amount", "created_at"}, "date DESC, created_at DESC")).
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	matched := make([]models.Transaction, 0, len(transactions))
	for i := range transactions {
		if criteria.Matches(transactions[i].Record()) {
			matched = append(matched, transactions[i])
		}
	}

	result := pagination.Slice(matched, page)
	return &result, nil
}

// GetTransactionByID retrieves a transaction by ID for a specific user
func (s *transactionService) GetTransactionByID(ctx context.Context, userID, transactionID string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", transactionID, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// UpdateTransaction replaces every writable field. The old effects on
// balances and goals are reverted before the new ones are applied.
func (s *transactionService) UpdateTransaction(ctx context.Context, userID, transactionID string, in TransactionInput) (*models.Transaction, error) {
	var result *models.Transaction
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		transaction, err := findOwned[models.Transaction](tx, userID, transactionID, apperrors.ErrTransactionNotFound)
		if err != nil {
			return err
		}
		if err := s.applyEffects(tx, transaction, -1); err != nil {
			return err
		}

		if in.Date.IsZero() {
			in.Date = transaction.Date
		}
		tags, err := s.prepare(tx, userID, &in)
		if err != nil {
			return err
		}

		updated := newTransaction(userID, in, tags)
		updated.Base = transaction.Base
		updated.InstallmentGroupID = transaction.InstallmentGroupID
		updated.InstallmentNumber = transaction.InstallmentNumber
		updated.InstallmentTotal = transaction.InstallmentTotal

		if err := tx.Save(updated).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := s.applyEffects(tx, updated, 1); err != nil {
			return err
		}

		result = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	publish(ctx, s.events, userID, events.EntityTransaction, events.ActionUpdated, result.ID)
	return result, nil
}

// DeleteTransaction deletes a transaction and reverts its effects.
func (s *transactionService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		transaction, err := findOwned[models.Transaction](tx, userID, transactionID, apperrors.ErrTransactionNotFound)
		if err != nil {
			return err
		}
		if err := tx.Delete(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return s.applyEffects(tx, transaction, -1)
	})
	if err != nil {
		return err
	}

	publish(ctx, s.events, userID, events.EntityTransaction, events.ActionDeleted, transactionID)
	return nil
}
