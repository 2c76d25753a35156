package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"carteira/internal/aggregation"
	apperrors "carteira/internal/errors"
	"carteira/internal/pagination"
	"carteira/internal/services"
)

// CardHandler handles card-related requests.
type CardHandler struct {
	cardService  services.CardServicer
	auditService services.AuditServicer
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(cardService services.CardServicer, auditService services.AuditServicer) *CardHandler {
	return &CardHandler{cardService: cardService, auditService: auditService}
}

// CreateCardRequest represents the request payload for creating a card.
type CreateCardRequest struct {
	AccountID   *string              `json:"account_id" binding:"omitempty,uuid"`
	Name        string               `json:"name" binding:"required,min=1,max=100"`
	Type        aggregation.CardType `json:"type" binding:"required,card_type"`
	Brand       string               `json:"brand" binding:"max=50"`
	LastDigits  string               `json:"last_digits" binding:"omitempty,len=4,numeric"`
	CreditLimit decimal.Decimal      `json:"credit_limit" swaggertype:"string" example:"5000.00"`
	ClosingDay  int                  `json:"closing_day" binding:"omitempty,min=1,max=31"`
	DueDay      int                  `json:"due_day" binding:"omitempty,min=1,max=31"`
	Color       string               `json:"color" binding:"omitempty,hex_color"`
}

// UpdateCardRequest represents the request payload for updating a card.
type UpdateCardRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=100"`
	Brand       *string          `json:"brand" binding:"omitempty,max=50"`
	LastDigits  *string          `json:"last_digits" binding:"omitempty,len=4,numeric"`
	Color       *string          `json:"color" binding:"omitempty,hex_color"`
	CreditLimit *decimal.Decimal `json:"credit_limit" swaggertype:"string"`
	ClosingDay  *int             `json:"closing_day" binding:"omitempty,min=1,max=31"`
	DueDay      *int             `json:"due_day" binding:"omitempty,min=1,max=31"`
	IsActive    *bool            `json:"is_active"`
}

// CreateCard handles the creation of a new card
// @Summary     Create a card
// @Description Create a credit, debit or prepaid card. Only credit cards keep a limit.
// @Tags        cards
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateCardRequest true "Card details"
// @Success     201 {object} models.Card "Card created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /cards [post]
func (h *CardHandler) CreateCard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	card, err := h.cardService.CreateCard(c.Request.Context(), userID, services.CardInput{
		AccountID:   req.AccountID,
		Name:        req.Name,
		Type:        req.Type,
		Brand:       req.Brand,
		LastDigits:  req.LastDigits,
		CreditLimit: req.CreditLimit,
		ClosingDay:  req.ClosingDay,
		DueDay:      req.DueDay,
		Color:       req.Color,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_CARD", "card", card.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "type": req.Type, "credit_limit": card.CreditLimit.String()})

	c.JSON(http.StatusCreated, gin.H{"card": card})
}

// GetCards handles listing cards
// @Summary     Get cards
// @Tags        cards
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Param       sort      query string false "Sort column, prefix with - for descending"
// @Success     200 {object} pagination.PageResponse[models.Card] "Paginated cards"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /cards [get]
func (h *CardHandler) GetCards(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.cardService.GetUserCards(c.Request.Context(), userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetCard handles retrieving a specific card
// @Summary     Get card by ID
// @Tags        cards
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Card ID"
// @Success     200 {object} models.Card "Card details"
// @Failure     400 {object} ErrorResponse "Invalid card ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Card not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /cards/{id} [get]
func (h *CardHandler) GetCard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	cardID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	card, err := h.cardService.GetCardByID(c.Request.Context(), userID, cardID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"card": card})
}

// UpdateCard handles updating a card
// @Summary     Update card
// @Tags        cards
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string            true "Card ID"
// @Param       request body UpdateCardRequest true "Updated card details"
// @Success     200 {object} models.Card "Updated card"
// @Failure     400 {object} ErrorResponse "Invalid input or card ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Card not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /cards/{id} [put]
func (h *CardHandler) UpdateCard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	cardID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	card, err := h.cardService.UpdateCard(c.Request.Context(), userID, cardID, services.CardUpdateFields{
		Name:        req.Name,
		Brand:       req.Brand,
		LastDigits:  req.LastDigits,
		Color:       req.Color,
		CreditLimit: req.CreditLimit,
		ClosingDay:  req.ClosingDay,
		DueDay:      req.DueDay,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_CARD", "card", cardID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"card": card})
}

// DeleteCard handles deleting a card
// @Summary     Delete card
// @Description Delete a card that no transaction references
// @Tags        cards
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Card ID"
// @Success     200 {object} MessageResponse "Card deleted"
// @Failure     400 {object} ErrorResponse "Invalid card ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Card not found"
// @Failure     409 {object} ErrorResponse "Card in use"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /cards/{id} [delete]
func (h *CardHandler) DeleteCard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	cardID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.cardService.DeleteCard(c.Request.Context(), userID, cardID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_CARD", "card", cardID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Card deleted successfully"})
}

// GetCardUsage handles retrieving a card's limit usage
// @Summary     Get card usage
// @Description Limit usage over the card's current billing cycle
// @Tags        cards
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Card ID"
// @Success     200 {object} services.CardUsage "Card usage"
// @Failure     400 {object} ErrorResponse "Invalid card ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Card not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /cards/{id}/usage [get]
func (h *CardHandler) GetCardUsage(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	cardID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	usage, err := h.cardService.GetCardUsage(c.Request.Context(), userID, cardID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"usage": usage})
}
