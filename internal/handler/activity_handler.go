package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pressroom/internal/service"
)

// ActivityHandler exposes the read side of the audit log.
type ActivityHandler struct {
	activity service.ActivityService
}

// NewActivityHandler creates a new activity handler.
func NewActivityHandler(activity service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activity: activity}
}

// List godoc
// @Summary List audit log entries, newest first
// @Tags activity
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param per_page query int false "Page size"
// @Success 200 {object} listResponse
// @Router /activities [get]
func (h *ActivityHandler) List(c echo.Context) error {
	page, perPage := pagination(c)
	activities, total, err := h.activity.List(c.Request().Context(), page, perPage)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse{Data: activities, Total: total, Page: page, PerPage: perPage})
}
