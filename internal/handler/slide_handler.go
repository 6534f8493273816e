package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"pressroom/internal/realtime"
	"pressroom/internal/service"
)

// SlideHandler handles carousel endpoints.
type SlideHandler struct {
	slides service.SlideService
	hub    *realtime.Hub
}

// NewSlideHandler creates a new slide handler.
func NewSlideHandler(slides service.SlideService, hub *realtime.Hub) *SlideHandler {
	return &SlideHandler{slides: slides, hub: hub}
}

// SlideRequest represents a slide creation request.
type SlideRequest struct {
	Title    string `json:"title" validate:"required"`
	Subtitle string `json:"subtitle,omitempty"`
	Image    string `json:"image" validate:"required"`
	LinkURL  string `json:"link_url,omitempty"`
}

// SlideUpdateRequest represents a partial slide update.
type SlideUpdateRequest struct {
	Title    *string `json:"title,omitempty"`
	Subtitle *string `json:"subtitle,omitempty"`
	Image    *string `json:"image,omitempty"`
	LinkURL  *string `json:"link_url,omitempty"`
	Active   *bool   `json:"active,omitempty"`
}

// ReorderRequest carries the new slide order, first to last.
type ReorderRequest struct {
	IDs []uuid.UUID `json:"ids" validate:"required,min=1"`
}

// PublicList godoc
// @Summary List active carousel slides in display order
// @Tags carousel
// @Produce json
// @Success 200 {array} model.Slide
// @Router /carousel [get]
func (h *SlideHandler) PublicList(c echo.Context) error {
	slides, err := h.slides.List(c.Request().Context(), true)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, slides)
}

// List godoc
// @Summary List all carousel slides including inactive ones
// @Tags carousel
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Slide
// @Router /carousel/all [get]
func (h *SlideHandler) List(c echo.Context) error {
	slides, err := h.slides.List(c.Request().Context(), false)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, slides)
}

// Create godoc
// @Summary Create a carousel slide
// @Tags carousel
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SlideRequest true "Slide data"
// @Success 201 {object} model.Slide
// @Failure 400 {object} errors.ErrorResponse
// @Router /carousel [post]
func (h *SlideHandler) Create(c echo.Context) error {
	var req SlideRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	slide, err := h.slides.Create(c.Request().Context(), service.SlideInput{
		Title:    req.Title,
		Subtitle: req.Subtitle,
		Image:    req.Image,
		LinkURL:  req.LinkURL,
	})
	if err != nil {
		return err
	}
	h.hub.Publish("created", "carousel", slide.ID.String())
	return c.JSON(http.StatusCreated, slide)
}

// Update godoc
// @Summary Update a carousel slide
// @Tags carousel
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slide ID"
// @Param request body SlideUpdateRequest true "Fields to update"
// @Success 200 {object} model.Slide
// @Failure 404 {object} errors.ErrorResponse
// @Router /carousel/{id} [put]
func (h *SlideHandler) Update(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}
	var req SlideUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	slide, err := h.slides.Update(c.Request().Context(), id, service.SlideUpdate{
		Title:    req.Title,
		Subtitle: req.Subtitle,
		Image:    req.Image,
		LinkURL:  req.LinkURL,
		Active:   req.Active,
	})
	if err != nil {
		return err
	}
	h.hub.Publish("updated", "carousel", slide.ID.String())
	return c.JSON(http.StatusOK, slide)
}

// Reorder godoc
// @Summary Reorder the carousel
// @Tags carousel
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ReorderRequest true "Slide ids, first to last"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} errors.ErrorResponse
// @Router /carousel/reorder [put]
func (h *SlideHandler) Reorder(c echo.Context) error {
	var req ReorderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.slides.Reorder(c.Request().Context(), req.IDs); err != nil {
		return err
	}
	h.hub.Publish("reordered", "carousel", "")
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// Delete godoc
// @Summary Delete a carousel slide
// @Tags carousel
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slide ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} errors.ErrorResponse
// @Router /carousel/{id} [delete]
func (h *SlideHandler) Delete(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}
	if err := h.slides.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	h.hub.Publish("deleted", "carousel", id.String())
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
