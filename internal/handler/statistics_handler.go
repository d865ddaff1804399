package handler

import (
	"net/http"

	"uniformes/internal/middleware"
	"uniformes/internal/service"
	"uniformes/internal/stats"
	"uniformes/pkg/pagination"
	"uniformes/pkg/response"

	"github.com/gin-gonic/gin"
)

type StatisticsHandler struct {
	statisticsService service.StatisticsService
	jwtSecret         []byte
}

func NewStatisticsHandler(statisticsService service.StatisticsService, jwtSecret []byte) *StatisticsHandler {
	return &StatisticsHandler{statisticsService: statisticsService, jwtSecret: jwtSecret}
}

func (h *StatisticsHandler) RegisterRoutes(router *gin.RouterGroup) {
	admin := router.Group("/api", middleware.RequireRole(h.jwtSecret, service.RoleAdmin))
	{
		admin.GET("/statistics", h.GetStatistics)
		admin.GET("/deliveries", h.ListDeliveries)
	}
}

// GetStatistics handles GET /api/statistics
// @Summary      Get aggregated request statistics
// @Description  Grouped counts by area, item, color and reason plus total requested units
// @Tags         statistics
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=object}
// @Failure      401 {object} response.Response
// @Failure      500 {object} response.Response
// @Router       /api/statistics [get]
func (h *StatisticsHandler) GetStatistics(c *gin.Context) {
	result, err := h.statisticsService.GetStatistics(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	// Display order: descending count, stable label tie-break
	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"statistics": result,
		"charts": map[string]interface{}{
			"areas":   stats.SortedEntries(result.Stats.AreaCounts),
			"items":   stats.SortedEntries(result.Stats.ItemCounts),
			"colors":  stats.SortedEntries(result.Stats.ColorCounts),
			"reasons": stats.SortedEntries(result.Stats.ReasonCounts),
		},
	}))
}

// ListDeliveries handles GET /api/deliveries
// @Summary      Browse the request history
// @Description  Paginated list of submitted requests, most recent first
// @Tags         statistics
// @Produce      json
// @Security     BearerAuth
// @Param        page   query int false "Page number"
// @Param        limit  query int false "Page size"
// @Success      200 {object} response.Response{data=object}
// @Failure      401 {object} response.Response
// @Failure      500 {object} response.Response
// @Router       /api/deliveries [get]
func (h *StatisticsHandler) ListDeliveries(c *gin.Context) {
	params := pagination.Parse(c)

	deliveries, total, err := h.statisticsService.ListDeliveries(c.Request.Context(), params.Page, params.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch deliveries"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"deliveries": deliveries,
		"total":      total,
		"page":       params.Page,
		"limit":      params.Limit,
	}))
}
