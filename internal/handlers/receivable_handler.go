package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "carteira/internal/errors"
	"carteira/internal/models"
	"carteira/internal/pagination"
	"carteira/internal/services"
)

// ReceivableHandler handles requests for money owed to the user.
type ReceivableHandler struct {
	receivableService services.ReceivableServicer
	auditService      services.AuditServicer
}

// NewReceivableHandler creates a new ReceivableHandler.
func NewReceivableHandler(receivableService services.ReceivableServicer, auditService services.AuditServicer) *ReceivableHandler {
	return &ReceivableHandler{receivableService: receivableService, auditService: auditService}
}

// CreateReceivableRequest represents the request payload for creating a receivable.
type CreateReceivableRequest struct {
	Debtor      string          `json:"debtor" binding:"required,min=1,max=100"`
	Description string          `json:"description" binding:"max=500"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"800.00"`
	DueDate     string          `json:"due_date" binding:"required" example:"2025-05-01"`
	CategoryID  *string         `json:"category_id" binding:"omitempty,uuid"`
}

// UpdateReceivableRequest represents the request payload for updating a receivable.
type UpdateReceivableRequest struct {
	Debtor      *string          `json:"debtor" binding:"omitempty,min=1,max=100"`
	Description *string          `json:"description" binding:"omitempty,max=500"`
	Amount      *decimal.Decimal `json:"amount" swaggertype:"string"`
	DueDate     *string          `json:"due_date"`
	CategoryID  *string          `json:"category_id" binding:"omitempty,uuid"`
}

// RecordPaymentRequest is one payment received. Date defaults to today.
type RecordPaymentRequest struct {
	Amount    decimal.Decimal `json:"amount" swaggertype:"string" example:"200.00"`
	Date      *string         `json:"date" example:"2025-04-15"`
	AccountID *string         `json:"account_id" binding:"omitempty,uuid"`
	Notes     string          `json:"notes" binding:"max=500"`
}

// CreateReceivable handles the creation of a new receivable
// @Summary     Create a receivable
// @Tags        receivables
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateReceivableRequest true "Receivable details"
// @Success     201 {object} models.Receivable "Receivable created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /receivables [post]
func (h *ReceivableHandler) CreateReceivable(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateReceivableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	dueDate, err := requiredDate(req.DueDate, "due_date")
	if err != nil {
		respondWithError(c, err)
		return
	}

	receivable, err := h.receivableService.CreateReceivable(c.Request.Context(), userID, services.ReceivableInput{
		Debtor:      req.Debtor,
		Description: req.Description,
		Amount:      req.Amount,
		DueDate:     dueDate,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_RECEIVABLE", "receivable", receivable.ID, c.ClientIP(),
		map[string]interface{}{"debtor": req.Debtor, "amount": receivable.Amount.String()})

	c.JSON(http.StatusCreated, gin.H{"receivable": receivable})
}

// GetReceivables handles listing receivables
// @Summary     Get receivables
// @Tags        receivables
// @Produce     json
// @Security    BearerAuth
// @Param       status    query string false "Filter by status (pending/partial/received)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Receivable] "Paginated receivables"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /receivables [get]
func (h *ReceivableHandler) GetReceivables(c *gin.Context) {
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

	var status *models.ReceivableStatus
	if v := c.Query("status"); v != "" {
		s := models.ReceivableStatus(v)
		switch s {
		case models.ReceivableStatusPending, models.ReceivableStatusPartial, models.ReceivableStatusReceived:
			status = &s
		default:
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "status must be 'pending', 'partial' or 'received'"))
			return
		}
	}

	result, err := h.receivableService.GetUserReceivables(c.Request.Context(), userID, status, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetReceivable handles retrieving a receivable with its payments
// @Summary     Get receivable by ID
// @Tags        receivables
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Receivable ID"
// @Success     200 {object} models.Receivable "Receivable details"
// @Failure     400 {object} ErrorResponse "Invalid receivable ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Receivable not found"
// @Router      /receivables/{id} [get]
func (h *ReceivableHandler) GetReceivable(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	receivableID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	receivable, err := h.receivableService.GetReceivableByID(c.Request.Context(), userID, receivableID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"receivable": receivable})
}

// UpdateReceivable handles updating a receivable
// @Summary     Update receivable
// @Tags        receivables
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                  true "Receivable ID"
// @Param       request body UpdateReceivableRequest true "Updated receivable details"
// @Success     200 {object} models.Receivable "Updated receivable"
// @Failure     400 {object} ErrorResponse "Invalid input or receivable ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Receivable not found"
// @Router      /receivables/{id} [put]
func (h *ReceivableHandler) UpdateReceivable(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	receivableID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateReceivableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	dueDate, err := optionalDate(req.DueDate, "due_date")
	if err != nil {
		respondWithError(c, err)
		return
	}

	receivable, err := h.receivableService.UpdateReceivable(c.Request.Context(), userID, receivableID, services.ReceivableUpdateFields{
		Debtor:      req.Debtor,
		Description: req.Description,
		Amount:      req.Amount,
		DueDate:     dueDate,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_RECEIVABLE", "receivable", receivableID, c.ClientIP(),
		map[string]interface{}{"amount": receivable.Amount.String()})

	c.JSON(http.StatusOK, gin.H{"receivable": receivable})
}

// DeleteReceivable handles deleting a receivable and its payments
// @Summary     Delete receivable
// @Tags        receivables
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Receivable ID"
// @Success     200 {object} MessageResponse "Receivable deleted"
// @Failure     400 {object} ErrorResponse "Invalid receivable ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Receivable not found"
// @Router      /receivables/{id} [delete]
func (h *ReceivableHandler) DeleteReceivable(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	receivableID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.receivableService.DeleteReceivable(c.Request.Context(), userID, receivableID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_RECEIVABLE", "receivable", receivableID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Receivable deleted successfully"})
}

// RecordPayment handles a payment received against a receivable
// @Summary     Record payment
// @Description The receivable moves to partial or received. Payments beyond the outstanding amount are rejected.
// @Tags        receivables
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string               true "Receivable ID"
// @Param       request body RecordPaymentRequest true "Payment details"
// @Success     200 {object} models.Receivable "Updated receivable"
// @Failure     400 {object} ErrorResponse "Invalid input or overpayment"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Receivable not found"
// @Router      /receivables/{id}/payments [post]
func (h *ReceivableHandler) RecordPayment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	receivableID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := optionalDate(req.Date, "date")
	if err != nil {
		respondWithError(c, err)
		return
	}

	in := services.PaymentInput{Amount: req.Amount, AccountID: req.AccountID, Notes: req.Notes}
	if date != nil {
		in.Date = *date
	}

	receivable, err := h.receivableService.RecordPayment(c.Request.Context(), userID, receivableID, in)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "RECORD_PAYMENT", "receivable", receivableID, c.ClientIP(),
		map[string]interface{}{"amount": req.Amount.String(), "status": receivable.Status})

	c.JSON(http.StatusOK, gin.H{"receivable": receivable})
}
