package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pressroom/internal/model"
	"pressroom/internal/realtime"
	"pressroom/internal/service"
)

// MessageHandler handles the public contact form and the admin inbox.
type MessageHandler struct {
	messages      service.MessageService
	notifications service.NotificationService
	activity      service.ActivityService
	hub           *realtime.Hub
}

// NewMessageHandler creates a new message handler.
func NewMessageHandler(
	messages service.MessageService,
	notifications service.NotificationService,
	activity service.ActivityService,
	hub *realtime.Hub,
) *MessageHandler {
	return &MessageHandler{messages: messages, notifications: notifications, activity: activity, hub: hub}
}

// SubmitMessageRequest represents a contact-form submission.
type SubmitMessageRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject,omitempty"`
	Body    string `json:"body" validate:"required"`
}

// Submit godoc
// @Summary Submit a contact message
// @Tags messages
// @Accept json
// @Produce json
// @Param request body SubmitMessageRequest true "Message data"
// @Success 201 {object} model.Message
// @Failure 400 {object} errors.ErrorResponse
// @Router /messages [post]
func (h *MessageHandler) Submit(c echo.Context) error {
	var req SubmitMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	message, err := h.messages.Submit(ctx, req.Name, req.Email, req.Subject, req.Body)
	if err != nil {
		return err
	}

	// dashboard-wide notification; failure must not fail the submission
	if _, err := h.notifications.Notify(ctx, nil, "message",
		"New contact message", "From "+message.Name+": "+message.Subject); err == nil {
		h.hub.Publish("created", "notifications", "")
	}
	h.activity.Record(ctx,
		activityEntry(c, model.ActivityMessageReceived, "contact message from "+message.Email))
	h.hub.Publish("created", "messages", message.ID.String())

	return c.JSON(http.StatusCreated, message)
}

// List godoc
// @Summary List contact messages
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param unread query bool false "Unread only"
// @Param page query int false "Page"
// @Param per_page query int false "Page size"
// @Success 200 {object} listResponse
// @Router /messages [get]
func (h *MessageHandler) List(c echo.Context) error {
	page, perPage := pagination(c)
	unreadOnly := c.QueryParam("unread") == "true"
	messages, total, err := h.messages.List(c.Request().Context(), unreadOnly, page, perPage)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse{Data: messages, Total: total, Page: page, PerPage: perPage})
}

// Get godoc
// @Summary Get a contact message by id
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Success 200 {object} model.Message
// @Failure 404 {object} errors.ErrorResponse
// @Router /messages/{id} [get]
func (h *MessageHandler) Get(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}
	message, err := h.messages.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, message)
}

// MarkRead godoc
// @Summary Mark a contact message as read
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} errors.ErrorResponse
// @Router /messages/{id}/read [patch]
func (h *MessageHandler) MarkRead(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}
	if err := h.messages.MarkRead(c.Request().Context(), id); err != nil {
		return err
	}
	h.hub.Publish("updated", "messages", id.String())
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// Delete godoc
// @Summary Delete a contact message
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} errors.ErrorResponse
// @Router /messages/{id} [delete]
func (h *MessageHandler) Delete(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}
	if err := h.messages.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	h.hub.Publish("deleted", "messages", id.String())
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// Export godoc
// @Summary Export all contact messages as CSV
// @Tags messages
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {string} string "CSV payload"
// @Router /messages/export [get]
func (h *MessageHandler) Export(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="messages.csv"`)
	c.Response().WriteHeader(http.StatusOK)
	return h.messages.ExportCSV(c.Request().Context(), c.Response())
}
