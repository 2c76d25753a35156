package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "carteira/internal/errors"
	"carteira/internal/models"
	"carteira/internal/pagination"
	"carteira/internal/services"
)

// DebtHandler handles debt-related requests.
type DebtHandler struct {
	debtService  services.DebtServicer
	auditService services.AuditServicer
}

// NewDebtHandler creates a new DebtHandler.
func NewDebtHandler(debtService services.DebtServicer, auditService services.AuditServicer) *DebtHandler {
	return &DebtHandler{debtService: debtService, auditService: auditService}
}

// CreateDebtRequest represents the request payload for creating a debt.
type CreateDebtRequest struct {
	Creditor    string          `json:"creditor" binding:"required,min=1,max=100"`
	Description string          `json:"description" binding:"max=500"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"1200.00"`
	DueDate     string          `json:"due_date" binding:"required" example:"2025-04-10"`
	CategoryID  *string         `json:"category_id" binding:"omitempty,uuid"`
	AccountID   *string         `json:"account_id" binding:"omitempty,uuid"`
}

// UpdateDebtRequest represents the request payload for updating a debt.
type UpdateDebtRequest struct {
	Creditor    *string          `json:"creditor" binding:"omitempty,min=1,max=100"`
	Description *string          `json:"description" binding:"omitempty,max=500"`
	Amount      *decimal.Decimal `json:"amount" swaggertype:"string"`
	DueDate     *string          `json:"due_date"`
	CategoryID  *string          `json:"category_id" binding:"omitempty,uuid"`
}

// PayDebtRequest optionally backdates the payment.
type PayDebtRequest struct {
	PaidAt *string `json:"paid_at" example:"2025-04-09"`
}

// CreateDebt handles the creation of a new debt
// @Summary     Create a debt
// @Description Record money owed. Debts count as expenses on their due date.
// @Tags        debts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateDebtRequest true "Debt details"
// @Success     201 {object} models.Debt "Debt created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /debts [post]
func (h *DebtHandler) CreateDebt(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	dueDate, err := requiredDate(req.DueDate, "due_date")
	if err != nil {
		respondWithError(c, err)
		return
	}

	debt, err := h.debtService.CreateDebt(c.Request.Context(), userID, services.DebtInput{
		Creditor:    req.Creditor,
		Description: req.Description,
		Amount:      req.Amount,
		DueDate:     dueDate,
		CategoryID:  req.CategoryID,
		AccountID:   req.AccountID,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_DEBT", "debt", debt.ID, c.ClientIP(),
		map[string]interface{}{"creditor": req.Creditor, "amount": debt.Amount.String()})

	c.JSON(http.StatusCreated, gin.H{"debt": debt})
}

// GetDebts handles listing debts
// @Summary     Get debts
// @Tags        debts
// @Produce     json
// @Security    BearerAuth
// @Param       status    query string false "Filter by status (pending/paid)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Debt] "Paginated debts"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /debts [get]
func (h *DebtHandler) GetDebts(c *gin.Context) {
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

	var status *models.DebtStatus
	if v := c.Query("status"); v != "" {
		s := models.DebtStatus(v)
		if s != models.DebtStatusPending && s != models.DebtStatusPaid {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "status must be 'pending' or 'paid'"))
			return
		}
		status = &s
	}

	result, err := h.debtService.GetUserDebts(c.Request.Context(), userID, status, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetDebt handles retrieving a debt
// @Summary     Get debt by ID
// @Tags        debts
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Debt ID"
// @Success     200 {object} models.Debt "Debt details"
// @Failure     400 {object} ErrorResponse "Invalid debt ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Debt not found"
// @Router      /debts/{id} [get]
func (h *DebtHandler) GetDebt(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	debtID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	debt, err := h.debtService.GetDebtByID(c.Request.Context(), userID, debtID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"debt": debt})
}

// UpdateDebt handles updating a debt
// @Summary     Update debt
// @Tags        debts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string            true "Debt ID"
// @Param       request body UpdateDebtRequest true "Updated debt details"
// @Success     200 {object} models.Debt "Updated debt"
// @Failure     400 {object} ErrorResponse "Invalid input or debt ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Debt not found"
// @Router      /debts/{id} [put]
func (h *DebtHandler) UpdateDebt(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	debtID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	dueDate, err := optionalDate(req.DueDate, "due_date")
	if err != nil {
		respondWithError(c, err)
		return
	}

	debt, err := h.debtService.UpdateDebt(c.Request.Context(), userID, debtID, services.DebtUpdateFields{
		Creditor:    req.Creditor,
		Description: req.Description,
		Amount:      req.Amount,
		DueDate:     dueDate,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_DEBT", "debt", debtID, c.ClientIP(),
		map[string]interface{}{"amount": debt.Amount.String()})

	c.JSON(http.StatusOK, gin.H{"debt": debt})
}

// DeleteDebt handles deleting a debt
// @Summary     Delete debt
// @Tags        debts
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Debt ID"
// @Success     200 {object} MessageResponse "Debt deleted"
// @Failure     400 {object} ErrorResponse "Invalid debt ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Debt not found"
// @Router      /debts/{id} [delete]
func (h *DebtHandler) DeleteDebt(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	debtID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.debtService.DeleteDebt(c.Request.Context(), userID, debtID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_DEBT", "debt", debtID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Debt deleted successfully"})
}

// PayDebt handles marking a debt as paid
// @Summary     Mark debt paid
// @Description Settle a pending debt. paid_at defaults to now.
// @Tags        debts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string         true  "Debt ID"
// @Param       request body PayDebtRequest false "Payment date"
// @Success     200 {object} models.Debt "Paid debt"
// @Failure     400 {object} ErrorResponse "Invalid input or debt ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Debt not found"
// @Failure     409 {object} ErrorResponse "Debt already paid"
// @Router      /debts/{id}/pay [post]
func (h *DebtHandler) PayDebt(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	debtID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req PayDebtRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
			return
		}
	}

	paidAt, err := optionalDate(req.PaidAt, "paid_at")
	if err != nil {
		respondWithError(c, err)
		return
	}
	var at time.Time
	if paidAt != nil {
		at = *paidAt
	}

	debt, err := h.debtService.MarkDebtPaid(c.Request.Context(), userID, debtID, at)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "PAY_DEBT", "debt", debtID, c.ClientIP(),
		map[string]interface{}{"amount": debt.Amount.String()})

	c.JSON(http.StatusOK, gin.H{"debt": debt})
}
