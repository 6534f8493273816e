package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pressroom/internal/auth"
	apperrors "pressroom/internal/errors"
	"pressroom/internal/model"
	"pressroom/internal/service"
)

// UserHandler handles the admin user management endpoints.
type UserHandler struct {
	users    service.UserService
	activity service.ActivityService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(users service.UserService, activity service.ActivityService) *UserHandler {
	return &UserHandler{users: users, activity: activity}
}

// CreateUserRequest represents an admin user creation request.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role,omitempty"`
}

// UpdateUserRequest represents a partial user update.
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Role     *string `json:"role,omitempty"`
	Status   *string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
	Avatar   *string `json:"avatar,omitempty"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"`
}

// List godoc
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param per_page query int false "Page size"
// @Success 200 {object} listResponse
// @Router /users [get]
func (h *UserHandler) List(c echo.Context) error {
	page, perPage := pagination(c)
	users, total, err := h.users.List(c.Request().Context(), page, perPage)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse{Data: users, Total: total, Page: page, PerPage: perPage})
}

// Get godoc
// @Summary Get a user by id
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} model.User
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}
	user, err := h.users.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Create godoc
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateUserRequest true "User data"
// @Success 201 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Router /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.Create(c.Request().Context(), req.Email, req.Password, req.Name, req.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// Update godoc
// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body UpdateUserRequest true "Fields to update"
// @Success 200 {object} model.User
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}
	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	update := service.UserUpdate{
		Name:     req.Name,
		Role:     req.Role,
		Avatar:   req.Avatar,
		Password: req.Password,
	}
	if req.Status != nil {
		status := model.UserStatus(*req.Status)
		update.Status = &status
	}

	user, err := h.users.Update(c.Request().Context(), id, update)
	if err != nil {
		return err
	}

	h.activity.Record(c.Request().Context(),
		activityEntry(c, model.ActivityUserUpdated, "updated user "+user.Email))
	return c.JSON(http.StatusOK, user)
}

// Delete godoc
// @Summary Delete a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} map[string]bool
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}
	ident := auth.IdentityFrom(c)
	if ident == nil {
		return apperrors.ErrInvalidToken
	}

	if err := h.users.Delete(c.Request().Context(), ident.ID, id); err != nil {
		return err
	}

	h.activity.Record(c.Request().Context(),
		activityEntry(c, model.ActivityUserDeleted, "deleted user "+id.String()))
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
