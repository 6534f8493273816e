package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"pressroom/internal/auth"
	apperrors "pressroom/internal/errors"
	"pressroom/internal/model"
	"pressroom/internal/realtime"
	"pressroom/internal/repository"
	"pressroom/internal/service"
)

// ArticleHandler handles both the admin CRUD surface and the public
// read surface for articles.
type ArticleHandler struct {
	articles      service.ArticleService
	roles         repository.RoleRepository
	activity      service.ActivityService
	notifications service.NotificationService
	hub           *realtime.Hub
}

// NewArticleHandler creates a new article handler.
func NewArticleHandler(
	articles service.ArticleService,
	roles repository.RoleRepository,
	activity service.ActivityService,
	notifications service.NotificationService,
	hub *realtime.Hub,
) *ArticleHandler {
	return &ArticleHandler{articles: articles, roles: roles, activity: activity, notifications: notifications, hub: hub}
}

// ArticleRequest represents an article create request.
type ArticleRequest struct {
	Title      string     `json:"title" validate:"required"`
	Excerpt    string     `json:"excerpt,omitempty"`
	Content    string     `json:"content" validate:"required"`
	CoverImage string     `json:"cover_image,omitempty"`
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
	Status     string     `json:"status,omitempty" validate:"omitempty,oneof=draft published"`
}

// ArticleUpdateRequest represents a partial article update.
type ArticleUpdateRequest struct {
	Title      *string    `json:"title,omitempty"`
	Excerpt    *string    `json:"excerpt,omitempty"`
	Content    *string    `json:"content,omitempty"`
	CoverImage *string    `json:"cover_image,omitempty"`
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
}

// PublicList godoc
// @Summary List articles
// @Description Published articles only, unless the caller's role grants draft visibility.
// @Tags articles
// @Produce json
// @Param page query int false "Page"
// @Param per_page query int false "Page size"
// @Param category_id query string false "Filter by category"
// @Param search query string false "Search in title and excerpt"
// @Param status query string false "Status filter (privileged callers only)"
// @Success 200 {object} listResponse
// @Router /articles [get]
func (h *ArticleHandler) PublicList(c echo.Context) error {
	page, perPage := pagination(c)
	filter := repository.ArticleFilter{
		Status:  model.ArticleStatusPublished,
		Search:  c.QueryParam("search"),
		Page:    page,
		PerPage: perPage,
	}
	if raw := c.QueryParam("category_id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			filter.CategoryID = &id
		}
	}

	// Callers with draft visibility may widen the status filter.
	if status := c.QueryParam("status"); status != "" && h.canViewDrafts(c) {
		filter.Status = model.ArticleStatus(status)
		if status == "all" {
			filter.Status = ""
		}
	}

	articles, total, err := h.articles.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse{Data: articles, Total: total, Page: page, PerPage: perPage})
}

// GetBySlug godoc
// @Summary Get a published article by slug
// @Tags articles
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} model.Article
// @Failure 404 {object} errors.ErrorResponse
// @Router /articles/{slug} [get]
func (h *ArticleHandler) GetBySlug(c echo.Context) error {
	article, err := h.articles.GetBySlug(c.Request().Context(), c.Param("slug"), true)
	if err != nil {
		return err
	}
	if article.Status != model.ArticleStatusPublished && !h.canViewDrafts(c) {
		return apperrors.ErrNotFound
	}
	return c.JSON(http.StatusOK, article)
}

// Get godoc
// @Summary Get an article by id
// @Tags articles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Article ID"
// @Success 200 {object} model.Article
// @Failure 404 {object} errors.ErrorResponse
// @Router /articles/id/{id} [get]
func (h *ArticleHandler) Get(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}
	article, err := h.articles.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, article)
}

// Create godoc
// @Summary Create an article
// @Tags articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ArticleRequest true "Article data"
// @Success 201 {object} model.Article
// @Failure 400 {object} errors.ErrorResponse
// @Router /articles [post]
func (h *ArticleHandler) Create(c echo.Context) error {
	ident := auth.IdentityFrom(c)
	if ident == nil {
		return apperrors.ErrInvalidToken
	}
	var req ArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	article, err := h.articles.Create(c.Request().Context(), ident.ID, service.ArticleInput{
		Title:      req.Title,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		CoverImage: req.CoverImage,
		CategoryID: req.CategoryID,
		Status:     model.ArticleStatus(req.Status),
	})
	if err != nil {
		return err
	}

	h.activity.Record(c.Request().Context(),
		activityEntry(c, model.ActivityArticleCreated, "created article "+article.Title))
	h.hub.Publish("created", "articles", article.ID.String())
	return c.JSON(http.StatusCreated, article)
}

// Update godoc
// @Summary Update an article
// @Tags articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Article ID"
// @Param request body ArticleUpdateRequest true "Fields to update"
// @Success 200 {object} model.Article
// @Failure 404 {object} errors.ErrorResponse
// @Router /articles/{id} [put]
func (h *ArticleHandler) Update(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}
	var req ArticleUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	article, err := h.articles.Update(c.Request().Context(), id, service.ArticleUpdate{
		Title:      req.Title,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		CoverImage: req.CoverImage,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		return err
	}

	h.activity.Record(c.Request().Context(),
		activityEntry(c, model.ActivityArticleUpdated, "updated article "+article.Title))
	h.hub.Publish("updated", "articles", article.ID.String())
	return c.JSON(http.StatusOK, article)
}

// SetStatus godoc
// @Summary Publish or unpublish an article
// @Tags articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Article ID"
// @Param request body map[string]string true "New status"
// @Success 200 {object} model.Article
// @Failure 400 {object} errors.ErrorResponse
// @Router /articles/{id}/status [patch]
func (h *ArticleHandler) SetStatus(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}
	var req struct {
		Status string `json:"status" validate:"required,oneof=draft published"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	article, err := h.articles.SetStatus(c.Request().Context(), id, model.ArticleStatus(req.Status))
	if err != nil {
		return err
	}

	if article.Status == model.ArticleStatusPublished {
		h.activity.Record(c.Request().Context(),
			activityEntry(c, model.ActivityArticlePublished, "published article "+article.Title))
		// dashboard-wide notification; failure must not fail the publish
		if _, err := h.notifications.Notify(c.Request().Context(), nil, "article",
			"Article published", article.Title); err == nil {
			h.hub.Publish("created", "notifications", "")
		}
	}
	h.hub.Publish("updated", "articles", article.ID.String())
	return c.JSON(http.StatusOK, article)
}

// Delete godoc
// @Summary Delete an article
// @Tags articles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Article ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} errors.ErrorResponse
// @Router /articles/{id} [delete]
func (h *ArticleHandler) Delete(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}
	if err := h.articles.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	h.activity.Record(c.Request().Context(),
		activityEntry(c, model.ActivityArticleDeleted, "deleted article "+id.String()))
	h.hub.Publish("deleted", "articles", id.String())
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// canViewDrafts reports whether the request's optional identity carries
// a role granting draft visibility. No identity, no drafts.
func (h *ArticleHandler) canViewDrafts(c echo.Context) bool {
	ident := auth.IdentityFrom(c)
	if ident == nil {
		return false
	}
	role, err := h.roles.FindBySlug(c.Request().Context(), ident.Role)
	if err != nil || role == nil {
		return false
	}
	return role.HasAnyPermission("view_articles")
}
