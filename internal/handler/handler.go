package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"pressroom/internal/auth"
	"pressroom/internal/model"
)

// paramUUID parses a UUID path parameter.
func paramUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// pagination reads page/per_page query parameters with defaults.
func pagination(c echo.Context) (page, perPage int) {
	page, perPage = 1, 20
	if err := echo.QueryParamsBinder(c).
		Int("page", &page).
		Int("per_page", &perPage).
		BindError(); err != nil {
		return 1, 20
	}
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	return page, perPage
}

// activityEntry builds a partially filled audit record from the request.
func activityEntry(c echo.Context, kind model.ActivityType, description string) model.Activity {
	entry := model.Activity{
		Type:        kind,
		Description: description,
		IP:          c.RealIP(),
		UserAgent:   c.Request().UserAgent(),
	}
	if ident := auth.IdentityFrom(c); ident != nil {
		id := ident.ID
		entry.ActorID = &id
		entry.ActorName = ident.Name
	}
	return entry
}

// listResponse is the uniform shape for paginated collections.
type listResponse struct {
	Data    interface{} `json:"data"`
	Total   int64       `json:"total"`
	Page    int         `json:"page"`
	PerPage int         `json:"per_page"`
}
