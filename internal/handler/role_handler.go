package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pressroom/internal/model"
	"pressroom/internal/service"
)

// RoleHandler handles role and permission catalog endpoints.
type RoleHandler struct {
	roles    service.RoleService
	activity service.ActivityService
}

// NewRoleHandler creates a new role handler.
func NewRoleHandler(roles service.RoleService, activity service.ActivityService) *RoleHandler {
	return &RoleHandler{roles: roles, activity: activity}
}

// CreateRoleRequest represents a role creation request.
type CreateRoleRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description,omitempty"`
	Permissions []string `json:"permissions"`
}

// UpdateRoleRequest represents a partial role update.
type UpdateRoleRequest struct {
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
}

// List godoc
// @Summary List roles
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Role
// @Router /roles [get]
func (h *RoleHandler) List(c echo.Context) error {
	roles, err := h.roles.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roles)
}

// Get godoc
// @Summary Get a role by id
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Role ID"
// @Success 200 {object} model.Role
// @Failure 404 {object} errors.ErrorResponse
// @Router /roles/{id} [get]
func (h *RoleHandler) Get(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}
	role, err := h.roles.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, role)
}

// Create godoc
// @Summary Create a custom role
// @Tags roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateRoleRequest true "Role data"
// @Success 201 {object} model.Role
// @Failure 400 {object} errors.ErrorResponse
// @Router /roles [post]
func (h *RoleHandler) Create(c echo.Context) error {
	var req CreateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, err := h.roles.Create(c.Request().Context(), req.Name, req.Description, req.Permissions)
	if err != nil {
		return err
	}

	h.activity.Record(c.Request().Context(),
		activityEntry(c, model.ActivityRoleCreated, "created role "+role.Name))
	return c.JSON(http.StatusCreated, role)
}

// Update godoc
// @Summary Update a custom role
// @Tags roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Role ID"
// @Param request body UpdateRoleRequest true "Fields to update"
// @Success 200 {object} model.Role
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /roles/{id} [put]
func (h *RoleHandler) Update(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}
	var req UpdateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	role, err := h.roles.Update(c.Request().Context(), id, req.Name, req.Description, req.Permissions)
	if err != nil {
		return err
	}

	h.activity.Record(c.Request().Context(),
		activityEntry(c, model.ActivityRoleUpdated, "updated role "+role.Name))
	return c.JSON(http.StatusOK, role)
}

// Delete godoc
// @Summary Delete a custom role
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Role ID"
// @Success 200 {object} map[string]bool
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /roles/{id} [delete]
func (h *RoleHandler) Delete(c echo.Context) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}
	if err := h.roles.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	h.activity.Record(c.Request().Context(),
		activityEntry(c, model.ActivityRoleDeleted, "deleted role "+id.String()))
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// Permissions godoc
// @Summary List the permission catalog grouped by category
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.PermissionCatalog
// @Router /permissions [get]
func (h *RoleHandler) Permissions(c echo.Context) error {
	catalog, err := h.roles.Catalog(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, catalog)
}
