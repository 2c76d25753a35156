package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"carteira/internal/aggregation"
	apperrors "carteira/internal/errors"
	"carteira/internal/pagination"
	"carteira/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	auditService       services.AuditServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer, auditService services.AuditServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, auditService: auditService}
}

// TransactionRequest represents the request payload for creating or
// replacing a transaction. At least one of account_id and card_id is required.
type TransactionRequest struct {
	Kind        aggregation.Kind `json:"kind" binding:"required,transaction_kind"`
	Amount      decimal.Decimal  `json:"amount" swaggertype:"string" example:"49.90"`
	Date        *string          `json:"date" example:"2025-03-15"`
	AccountID   *string          `json:"account_id" binding:"omitempty,uuid"`
	CardID      *string          `json:"card_id" binding:"omitempty,uuid"`
	CategoryID  *string          `json:"category_id" binding:"omitempty,uuid"`
	GoalID      *string          `json:"goal_id" binding:"omitempty,uuid"`
	Description string           `json:"description" binding:"max=500"`
	Notes       string           `json:"notes" binding:"max=2000"`
	TagIDs      []string         `json:"tag_ids" binding:"omitempty,max=20,dive,uuid"`
}

// InstallmentRequest splits one purchase into monthly installments.
type InstallmentRequest struct {
	TransactionRequest
	Installments int `json:"installments" binding:"required,min=2,max=72"`
}

func (r *TransactionRequest) input() (services.TransactionInput, error) {
	in := services.TransactionInput{
		Kind:        r.Kind,
		Amount:      r.Amount,
		AccountID:   r.AccountID,
		CardID:      r.CardID,
		CategoryID:  r.CategoryID,
		GoalID:      r.GoalID,
		Description: r.Description,
		Notes:       r.Notes,
		TagIDs:      r.TagIDs,
	}
	date, err := optionalDate(r.Date, "date")
	if err != nil {
		return in, err
	}
	if date != nil {
		in.Date = *date
	}
	return in, nil
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Record an income or expense against an account, a card or both. Balances and linked goals move with it.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body TransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Account, card, category, goal or tag not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	in, err := req.input()
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.CreateTransaction(c.Request.Context(), userID, in)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_TRANSACTION", "transaction", transaction.ID, c.ClientIP(),
		map[string]interface{}{"kind": req.Kind, "amount": transaction.Amount.String()})

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// CreateInstallments handles splitting a purchase into monthly installments
// @Summary     Create installments
// @Description Split an amount into 2 to 72 monthly transactions. The first carries the rounding remainder.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body InstallmentRequest true "Purchase details"
// @Success     201 {array}  models.Transaction "Installments created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Account, card, category or tag not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/installments [post]
func (h *TransactionHandler) CreateInstallments(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req InstallmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	in, err := req.input()
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactions, err := h.transactionService.CreateInstallments(c.Request.Context(), userID, in, req.Installments)
	if err != nil {
		respondWithError(c, err)
		return
	}

	groupID := ""
	if len(transactions) > 0 && transactions[0].InstallmentGroupID != nil {
		groupID = *transactions[0].InstallmentGroupID
	}
	h.auditService.Log(userID, "CREATE_INSTALLMENTS", "transaction", groupID, c.ClientIP(),
		map[string]interface{}{"amount": req.Amount.String(), "installments": req.Installments})

	c.JSON(http.StatusCreated, gin.H{"transactions": transactions})
}

// GetTransactions handles listing transactions
// @Summary     Get transactions
// @Description List transactions newest first. Filters combine; a custom range needs from and to with from not after to.
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       period      query string false "current-month, last-3-months, last-6-months, last-12-months, current-year or custom"
// @Param       from        query string false "Start date (RFC3339 or YYYY-MM-DD)"
// @Param       to          query string false "End date (RFC3339 or YYYY-MM-DD)"
// @Param       kind        query string false "income or expense"
// @Param       category_id query string false "Category ID or all"
// @Param       account_id  query string false "Account ID or all"
// @Param       card_id     query string false "Card ID or all"
// @Param       tag_ids     query string false "Comma separated tag IDs, any may match"
// @Param       search      query string false "Text in description or notes"
// @Param       min_amount  query string false "Minimum amount"
// @Param       max_amount  query string false "Maximum amount"
// @Param       page        query int    false "Page number (default 1)"
// @Param       page_size   query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid filter or range"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
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

	f, err := parseRecordFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.transactionService.GetUserTransactions(c.Request.Context(), userID, services.TransactionFilter{
		Period:     f.Period,
		From:       f.From,
		To:         f.To,
		Kind:       f.Kind,
		CategoryID: f.CategoryID,
		AccountID:  f.AccountID,
		CardID:     f.CardID,
		TagIDs:     f.TagIDs,
		Search:     f.Search,
		MinAmount:  f.MinAmount,
		MaxAmount:  f.MaxAmount,
	}, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// recordFilter is the query filter shared by transaction listing and reports.
type recordFilter struct {
	Period     aggregation.PeriodSelector
	From       *time.Time
	To         *time.Time
	Kind       aggregation.Kind
	CategoryID string
	AccountID  string
	CardID     string
	TagIDs     []string
	Search     string
	MinAmount  *decimal.Decimal
	MaxAmount  *decimal.Decimal
}

// recordQuery is the part of the record filter gin binds and validates.
type recordQuery struct {
	Period     string `form:"period" binding:"omitempty,period_selector"`
	Kind       string `form:"kind" binding:"omitempty,transaction_kind"`
	CategoryID string `form:"category_id"`
	AccountID  string `form:"account_id"`
	CardID     string `form:"card_id"`
	Search     string `form:"search"`
}

func parseRecordFilter(c *gin.Context) (recordFilter, error) {
	var f recordFilter

	var q recordQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return f, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	f.Period = aggregation.PeriodSelector(q.Period)
	f.Kind = aggregation.Kind(q.Kind)
	f.CategoryID = q.CategoryID
	f.AccountID = q.AccountID
	f.CardID = q.CardID
	f.Search = q.Search
	f.TagIDs = queryIDs(c, "tag_ids")

	var err error
	if f.From, err = queryTime(c, "from"); err != nil {
		return f, err
	}
	if f.To, err = queryTime(c, "to"); err != nil {
		return f, err
	}

	if f.MinAmount, err = queryDecimal(c, "min_amount"); err != nil {
		return f, err
	}
	if f.MaxAmount, err = queryDecimal(c, "max_amount"); err != nil {
		return f, err
	}

	return f, nil
}

// GetTransactionByID handles the retrieval of a specific transaction
// @Summary     Get transaction by ID
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} models.Transaction "Transaction details"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.GetTransactionByID(c.Request.Context(), userID, transactionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// UpdateTransaction handles replacing a transaction
// @Summary     Update transaction
// @Description Replace every field of a transaction. Its old effect on balances and goals is undone first. Omitting the date keeps it.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string             true "Transaction ID"
// @Param       request body TransactionRequest true "Transaction details"
// @Success     200 {object} models.Transaction "Updated transaction"
// @Failure     400 {object} ErrorResponse "Invalid input or transaction ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	in, err := req.input()
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.UpdateTransaction(c.Request.Context(), userID, transactionID, in)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_TRANSACTION", "transaction", transactionID, c.ClientIP(),
		map[string]interface{}{"kind": req.Kind, "amount": transaction.Amount.String()})

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// DeleteTransaction handles the deletion of a transaction
// @Summary     Delete transaction
// @Description Delete a transaction and undo its effect on balances and goals
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} MessageResponse "Transaction deleted"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), userID, transactionID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_TRANSACTION", "transaction", transactionID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}
