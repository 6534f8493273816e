package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pressroom/internal/auth"
	apperrors "pressroom/internal/errors"
	"pressroom/internal/service"
)

// NotificationHandler handles in-app notification endpoints.
type NotificationHandler struct {
	notifications service.NotificationService
}

// NewNotificationHandler creates a new notification handler.
func NewNotificationHandler(notifications service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// List godoc
// @Summary List notifications for the authenticated user
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param per_page query int false "Page size"
// @Success 200 {object} listResponse
// @Router /notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	ident := auth.IdentityFrom(c)
	if ident == nil {
		return apperrors.ErrInvalidToken
	}
	page, perPage := pagination(c)
	notifications, total, err := h.notifications.List(c.Request().Context(), ident.ID, page, perPage)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse{Data: notifications, Total: total, Page: page, PerPage: perPage})
}

// MarkRead godoc
// @Summary Mark a notification as read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} map[string]bool
// @Router /notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	ident := auth.IdentityFrom(c)
	if ident == nil {
		return apperrors.ErrInvalidToken
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}
	if err := h.notifications.MarkRead(c.Request().Context(), id, ident.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// MarkAllRead godoc
// @Summary Mark every notification as read for the authenticated user
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]bool
// @Router /notifications/read-all [patch]
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	ident := auth.IdentityFrom(c)
	if ident == nil {
		return apperrors.ErrInvalidToken
	}
	if err := h.notifications.MarkAllRead(c.Request().Context(), ident.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// Delete godoc
// @Summary Delete a notification
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} map[string]bool
// @Router /notifications/{id} [delete]
func (h *NotificationHandler) Delete(c echo.Context) error {
	ident := auth.IdentityFrom(c)
	if ident == nil {
		return apperrors.ErrInvalidToken
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}
	if err := h.notifications.Delete(c.Request().Context(), id, ident.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
