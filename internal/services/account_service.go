package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "carteira/internal/errors"
	"carteira/internal/events"
	"carteira/internal/models"
	"carteira/internal/pagination"
)

// accountService handles account-related business logic.
type accountService struct {
	db     *gorm.DB
	events events.Publisher
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(db *gorm.DB, pub events.Publisher) AccountServicer {
	return &accountService{db: db, events: publisherOrNop(pub)}
}

// CreateAccount creates a new account for a user
func (s *accountService) CreateAccount(ctx context.Context, userID string, in AccountInput) (*models.Account, error) {
	if in.Name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account name is required")
	}
	if in.Type == "" {
		in.Type = models.AccountTypeChecking
	}
	if in.Currency == "" {
		in.Currency = "BRL" // Default currency
	}

	account := &models.Account{
		UserID:      userID,
		Name:        in.Name,
		Type:        in.Type,
		Institution: in.Institution,
		Balance:     in.Balance,
		Currency:    in.Currency,
		Color:       in.Color,
		IsActive:    true,
	}

	if err := s.db.WithContext(ctx).Create(account).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	publish(ctx, s.events, userID, events.EntityAccount, events.ActionCreated, account.ID)
	return account, nil
}

// GetUserAccounts retrieves a paginated list of accounts for a user.
func (s *accountService) GetUserAccounts(ctx context.Context, userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Account], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.WithContext(ctx).Model(&models.Account{}).Where("user_id = ?", userID)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var accounts []models.Account
	if err := base.Scopes(
		pagination.Order(page, []string{"name", "balance", "created_at"}, "name ASC"),
		pagination.Paginate(page),
	).Find(&accounts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(accounts, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetAccountByID retrieves an account by ID for a specific user
func (s *accountService) GetAccountByID(ctx context.Context, userID, accountID string) (*models.Account, error) {
	var account models.Account
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", accountID, userID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &account, nil
}

// UpdateAccount applies the non-nil fields to an account.
func (s *accountService) UpdateAccount(ctx context.Context, userID, accountID string, fields AccountUpdateFields) (*models.Account, error) {
	account, err := s.GetAccountByID(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if fields.Name != nil && *fields.Name != "" {
		updates["name"] = *fields.Name
	}
	if fields.Institution != nil {
		updates["institution"] = *fields.Institution
	}
	if fields.Color != nil {
		updates["color"] = *fields.Color
	}
	if fields.IsActive != nil {
		updates["is_active"] = *fields.IsActive
	}

	if len(updates) > 0 {
		db := s.db.WithContext(ctx)
		if err := db.Model(account).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		// Reload to get fresh data
		if err := db.Where("id = ?", account.ID).First(account).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		publish(ctx, s.events, userID, events.EntityAccount, events.ActionUpdated, account.ID)
	}

	return account, nil
}

// DeleteAccount removes an account that no record or card refers to.
func (s *accountService) DeleteAccount(ctx context.Context, userID, accountID string) error {
	account, err := s.GetAccountByID(ctx, userID, accountID)
	if err != nil {
		return err
	}

	db := s.db.WithContext(ctx)
	for _, model := range []interface{}{&models.Transaction{}, &models.Card{}, &models.Debt{}} {
		n, err := countOwned(db, model, userID, "account_id = ?", accountID)
		if err != nil {
			return err
		}
		if n > 0 {
			return apperrors.ErrAccountInUse
		}
	}

	if err := db.Delete(account).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	publish(ctx, s.events, userID, events.EntityAccount, events.ActionDeleted, account.ID)
	return nil
}

// UpdateAccountBalance adds delta to the account balance inside tx. Income
// passes a positive delta and expenses a negative one.
func (s *accountService) UpdateAccountBalance(tx *gorm.DB, userID, accountID string, delta decimal.Decimal) error {
	account, err := findOwned[models.Account](tx, userID, accountID, apperrors.ErrAccountNotFound)
	if err != nil {
		return err
	}

	account.Balance = account.Balance.Add(delta)
	if err := tx.Model(account).Update("balance", account.Balance).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
