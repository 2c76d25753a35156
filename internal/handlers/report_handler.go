package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carteira/internal/aggregation"
	apperrors "carteira/internal/errors"
	"carteira/internal/services"
)

// ReportHandler serves the read-only aggregation reports.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// parseReportQuery reads the record filter plus group_by.
func parseReportQuery(c *gin.Context) (services.ReportQuery, error) {
	f, err := parseRecordFilter(c)
	if err != nil {
		return services.ReportQuery{}, err
	}

	q := services.ReportQuery{
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
	}

	var grouping struct {
		GroupBy string `form:"group_by" binding:"omitempty,group_by"`
	}
	if err := c.ShouldBindQuery(&grouping); err != nil {
		return q, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	q.GroupBy = aggregation.GroupBy(grouping.GroupBy)
	return q, nil
}

// GetSummary handles the income and expense totals report
// @Summary     Summary report
// @Description Income, expense and net totals for a period. An invalid custom range falls back to the current month.
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Param       period      query string false "current-month, last-3-months, last-6-months, last-12-months, current-year or custom"
// @Param       from        query string false "Custom range start (RFC3339 or YYYY-MM-DD)"
// @Param       to          query string false "Custom range end (RFC3339 or YYYY-MM-DD)"
// @Param       category_id query string false "Filter by category"
// @Param       account_id  query string false "Filter by account"
// @Param       card_id     query string false "Filter by card"
// @Param       tag_ids     query string false "Comma-separated tag IDs"
// @Param       search      query string false "Search description and notes"
// @Success     200 {object} services.SummaryReport "Summary"
// @Failure     400 {object} ErrorResponse "Invalid query"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/summary [get]
func (h *ReportHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	q, err := parseReportQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	report, err := h.reportService.GetSummary(c.Request.Context(), userID, q)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetBreakdown handles the grouped breakdown report
// @Summary     Breakdown report
// @Description Totals of one kind grouped by category, tag, day or month, largest first
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Param       period   query string false "Period selector"
// @Param       from     query string false "Custom range start"
// @Param       to       query string false "Custom range end"
// @Param       kind     query string false "income or expense (default expense)"
// @Param       group_by query string false "category, tag, day or month (default category)"
// @Success     200 {object} services.BreakdownReport "Breakdown"
// @Failure     400 {object} ErrorResponse "Invalid query"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/breakdown [get]
func (h *ReportHandler) GetBreakdown(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	q, err := parseReportQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	report, err := h.reportService.GetBreakdown(c.Request.Context(), userID, q)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetCashFlow handles the running balance report
// @Summary     Cash flow report
// @Description Income, expense and cumulative balance per day or month bucket
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Param       period   query string false "Period selector"
// @Param       from     query string false "Custom range start"
// @Param       to       query string false "Custom range end"
// @Param       group_by query string false "day or month (default month)"
// @Success     200 {object} services.CashFlowReport "Cash flow"
// @Failure     400 {object} ErrorResponse "Invalid query"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/cash-flow [get]
func (h *ReportHandler) GetCashFlow(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	q, err := parseReportQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	report, err := h.reportService.GetCashFlow(c.Request.Context(), userID, q)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetBudgetsOverview handles progress for every active budget
// @Summary     Budgets overview
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array}  services.BudgetProgress "Budget progress"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/budgets [get]
func (h *ReportHandler) GetBudgetsOverview(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgets, err := h.reportService.GetBudgetsOverview(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budgets": budgets})
}

// GetGoalsOverview handles progress for every goal
// @Summary     Goals overview
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array}  services.GoalProgress "Goal progress"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/goals [get]
func (h *ReportHandler) GetGoalsOverview(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goals, err := h.reportService.GetGoalsOverview(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goals": goals})
}

// GetCardsOverview handles usage for every active card
// @Summary     Cards overview
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array}  services.CardUsage "Card usage"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/cards [get]
func (h *ReportHandler) GetCardsOverview(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	cards, err := h.reportService.GetCardsOverview(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cards": cards})
}
