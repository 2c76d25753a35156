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

// cardService handles card-related business logic.
type cardService struct {
	db       *gorm.DB
	datasets DatasetServicer
	resolver *aggregation.Resolver
	events   events.Publisher
}

// NewCardService creates a new CardServicer.
func NewCardService(db *gorm.DB, datasets DatasetServicer, resolver *aggregation.Resolver, pub events.Publisher) CardServicer {
	return &cardService{db: db, datasets: datasets, resolver: resolver, events: publisherOrNop(pub)}
}

// validDay accepts a day of month, or 0 for "not set".
func validDay(day int) bool {
	return day >= 0 && day <= 31
}

// CreateCard creates a new card. Non-credit cards never carry a limit.
func (s *cardService) CreateCard(ctx context.Context, userID string, in CardInput) (*models.Card, error) {
	if in.Name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "card name is required")
	}
	if !validDay(in.ClosingDay) || !validDay(in.DueDay) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "closing and due days must be between 1 and 31")
	}
	if in.CreditLimit.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "credit limit cannot be negative")
	}

	db := s.db.WithContext(ctx)
	if in.AccountID != nil {
		if _, err := findOwned[models.Account](db, userID, *in.AccountID, apperrors.ErrAccountNotFound); err != nil {
			return nil, err
		}
	}

	card := &models.Card{
		UserID:      userID,
		AccountID:   in.AccountID,
		Name:        in.Name,
		Type:        in.Type,
		Brand:       in.Brand,
		LastDigits:  in.LastDigits,
		CreditLimit: in.CreditLimit,
		ClosingDay:  in.ClosingDay,
		DueDay:      in.DueDay,
		Color:       in.Color,
		IsActive:    true,
	}
	if card.Type != aggregation.CardCredit {
		card.CreditLimit = decimal.Zero
	}

	if err := db.Create(card).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	publish(ctx, s.events, userID, events.EntityCard, events.ActionCreated, card.ID)
	return card, nil
}

// GetUserCards retrieves a paginated list of cards for a user.
func (s *cardService) GetUserCards(ctx context.Context, userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Card], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.WithContext(ctx).Model(&models.Card{}).Where("user_id = ?", userID)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var cards []models.Card
	if err := base.Scopes(
		pagination.Order(page, []string{"name", "credit_limit", "created_at"}, "name ASC"),
		pagination.Paginate(page),
	).Find(&cards).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(cards, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetCardByID retrieves a card by ID for a specific user.
func (s *cardService) GetCardByID(ctx context.Context, userID, cardID string) (*models.Card, error) {
	var card models.Card
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", cardID, userID).First(&card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCardNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &card, nil
}

// UpdateCard applies the non-nil fields to a card.
func (s *cardService) UpdateCard(ctx context.Context, userID, cardID string, fields CardUpdateFields) (*models.Card, error) {
	card, err := s.GetCardByID(ctx, userID, cardID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if fields.Name != nil && *fields.Name != "" {
		updates["name"] = *fields.Name
	}
	if fields.Brand != nil {
		updates["brand"] = *fields.Brand
	}
	if fields.LastDigits != nil {
		updates["last_digits"] = *fields.LastDigits
	}
	if fields.Color != nil {
		updates["color"] = *fields.Color
	}
	if fields.CreditLimit != nil {
		if card.Type != aggregation.CardCredit {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "only credit cards have a limit")
		}
		if fields.CreditLimit.IsNegative() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "credit limit cannot be negative")
		}
		updates["credit_limit"] = *fields.CreditLimit
	}
	if fields.ClosingDay != nil {
		if !validDay(*fields.ClosingDay) {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "closing day must be between 1 and 31")
		}
		updates["closing_day"] = *fields.ClosingDay
	}
	if fields.DueDay != nil {
		if !validDay(*fields.DueDay) {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "due day must be between 1 and 31")
		}
		updates["due_day"] = *fields.DueDay
	}
	if fields.IsActive != nil {
		updates["is_active"] = *fields.IsActive
	}

	if len(updates) > 0 {
		db := s.db.WithContext(ctx)
		if err := db.Model(card).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := db.Where("id = ?", card.ID).First(card).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		publish(ctx, s.events, userID, events.EntityCard, events.ActionUpdated, card.ID)
	}

	return card, nil
}

// DeleteCard removes a card no transaction was charged to.
func (s *cardService) DeleteCard(ctx context.Context, userID, cardID string) error {
	card, err := s.GetCardByID(ctx, userID, cardID)
	if err != nil {
		return err
	}

	db := s.db.WithContext(ctx)
	n, err := countOwned(db, &models.Transaction{}, userID, "card_id = ?", cardID)
	if err != nil {
		return err
	}
	if n > 0 {
		return apperrors.ErrCardInUse
	}

	if err := db.Delete(card).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	publish(ctx, s.events, userID, events.EntityCard, events.ActionDeleted, card.ID)
	return nil
}

// GetCardUsage evaluates the card's limit usage from the records charged
// in its current billing cycle.
func (s *cardService) GetCardUsage(ctx context.Context, userID, cardID string) (*CardUsage, error) {
	card, err := s.GetCardByID(ctx, userID, cardID)
	if err != nil {
		return nil, err
	}

	ds, err := s.datasets.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	usage := cardUsage(card, ds.Records, s.resolver.Now())
	return &usage, nil
}
