package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pressroom/internal/service"
)

// AnalyticsHandler exposes dashboard analytics.
type AnalyticsHandler struct {
	analytics service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(analytics service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// Summary godoc
// @Summary Dashboard summary counters
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.Summary
// @Router /analytics/summary [get]
func (h *AnalyticsHandler) Summary(c echo.Context) error {
	summary, err := h.analytics.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}
