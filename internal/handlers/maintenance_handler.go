package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carteira/internal/services"
)

// MaintenanceHandler serves the operator endpoints guarded by an API key.
type MaintenanceHandler struct {
	refresher services.CacheRefreshServicer
	datasets  services.DatasetServicer
}

// NewMaintenanceHandler creates a new MaintenanceHandler.
func NewMaintenanceHandler(refresher services.CacheRefreshServicer, datasets services.DatasetServicer) *MaintenanceHandler {
	return &MaintenanceHandler{refresher: refresher, datasets: datasets}
}

// RefreshCaches recomputes stored budget spent and card used amounts.
// @Summary     Refresh cached amounts
// @Description Recompute budget spent and card used amounts for every user with budgets or cards
// @Tags        maintenance
// @Produce     json
// @Param       X-API-Key header   string         true "Maintenance API key"
// @Success     200       {object} map[string]int "Users refreshed"
// @Failure     401       {object} ErrorResponse  "Invalid API key"
// @Failure     500       {object} ErrorResponse  "Server error"
// @Failure     503       {object} ErrorResponse  "Maintenance not configured"
// @Router      /maintenance/refresh-caches [post]
func (h *MaintenanceHandler) RefreshCaches(c *gin.Context) {
	count, err := h.refresher.RefreshAll(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users_refreshed": count})
}

// GetCacheStats reports the dataset cache counters.
// @Summary     Dataset cache stats
// @Tags        maintenance
// @Produce     json
// @Param       X-API-Key header   string      true "Maintenance API key"
// @Success     200       {object} cache.Stats "Cache stats"
// @Failure     401       {object} ErrorResponse "Invalid API key"
// @Failure     503       {object} ErrorResponse "Maintenance not configured"
// @Router      /maintenance/cache-stats [get]
func (h *MaintenanceHandler) GetCacheStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"datasets": h.datasets.Stats()})
}
