package router

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"pressroom/internal/auth"
	"pressroom/internal/config"
	apperrors "pressroom/internal/errors"
	"pressroom/internal/handler"
	"pressroom/internal/realtime"
	"pressroom/internal/repository"
)

// Deps bundles everything the route table needs.
type Deps struct {
	Config *config.Config
	Log    zerolog.Logger
	Tokens *auth.TokenService
	Users  repository.UserRepository
	Roles  repository.RoleRepository
	Hub    *realtime.Hub

	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Role         *handler.RoleHandler
	Article      *handler.ArticleHandler
	Category     *handler.CategoryHandler
	Slide        *handler.SlideHandler
	Message      *handler.MessageHandler
	Notification *handler.NotificationHandler
	Activity     *handler.ActivityHandler
	Analytics    *handler.AnalyticsHandler
	Upload       *handler.UploadHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, d Deps) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = errorHandler(d.Log)

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.Static("/uploads", d.Config.UploadDir)

	e.GET("/ws", d.Hub.ServeWS)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", d.Auth.Register)
	api.POST("/auth/login", d.Auth.Login)
	api.POST("/auth/refresh", d.Auth.Refresh)
	api.POST("/messages", d.Message.Submit)
	api.GET("/categories", d.Category.List)
	api.GET("/carousel", d.Slide.PublicList)

	// Public article reads carry optional credentials: a valid token
	// widens the result set to drafts when the role allows it.
	optional := api.Group("", auth.TryAuth(d.Tokens, d.Users))
	optional.GET("/articles", d.Article.PublicList)
	optional.GET("/articles/:slug", d.Article.GetBySlug)

	// Secured routes: the JWT middleware checks the signature, then
	// RequireUser re-reads the account row on every request.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  d.Tokens.AccessSecret(),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		ErrorHandler: func(c echo.Context, err error) error {
			return apperrors.ErrInvalidToken
		},
	}), auth.RequireUser(d.Users))

	secured.GET("/auth/me", d.Auth.Me)

	// User and role administration is role-gated.
	admin := secured.Group("", auth.Authorize(d.Roles, "admin"))
	admin.GET("/users", d.User.List)
	admin.GET("/users/:id", d.User.Get)
	admin.POST("/users", d.User.Create)
	admin.PUT("/users/:id", d.User.Update)
	admin.DELETE("/users/:id", d.User.Delete)

	admin.GET("/roles", d.Role.List)
	admin.GET("/roles/:id", d.Role.Get)
	admin.POST("/roles", d.Role.Create)
	admin.PUT("/roles/:id", d.Role.Update)
	admin.DELETE("/roles/:id", d.Role.Delete)
	admin.GET("/permissions", d.Role.Permissions)

	// Content routes are permission-gated.
	secured.GET("/articles/id/:id", d.Article.Get, auth.RequirePermission(d.Roles, "view_articles"))
	secured.POST("/articles", d.Article.Create, auth.RequirePermission(d.Roles, "create_articles"))
	secured.PUT("/articles/:id", d.Article.Update, auth.RequirePermission(d.Roles, "edit_articles"))
	secured.PATCH("/articles/:id/status", d.Article.SetStatus, auth.RequirePermission(d.Roles, "publish_articles"))
	secured.DELETE("/articles/:id", d.Article.Delete, auth.RequirePermission(d.Roles, "delete_articles"))

	secured.POST("/categories", d.Category.Create, auth.RequirePermission(d.Roles, "manage_categories"))
	secured.PUT("/categories/:id", d.Category.Update, auth.RequirePermission(d.Roles, "manage_categories"))
	secured.DELETE("/categories/:id", d.Category.Delete, auth.RequirePermission(d.Roles, "manage_categories"))

	secured.GET("/carousel/all", d.Slide.List, auth.RequirePermission(d.Roles, "view_carousel"))
	secured.POST("/carousel", d.Slide.Create, auth.RequirePermission(d.Roles, "manage_carousel"))
	secured.PUT("/carousel/:id", d.Slide.Update, auth.RequirePermission(d.Roles, "manage_carousel"))
	secured.PUT("/carousel/reorder", d.Slide.Reorder, auth.RequirePermission(d.Roles, "manage_carousel"))
	secured.DELETE("/carousel/:id", d.Slide.Delete, auth.RequirePermission(d.Roles, "manage_carousel"))

	secured.GET("/messages", d.Message.List, auth.RequirePermission(d.Roles, "view_messages"))
	secured.GET("/messages/export", d.Message.Export, auth.RequirePermission(d.Roles, "manage_messages"))
	secured.GET("/messages/:id", d.Message.Get, auth.RequirePermission(d.Roles, "view_messages"))
	secured.PATCH("/messages/:id/read", d.Message.MarkRead, auth.RequirePermission(d.Roles, "manage_messages"))
	secured.DELETE("/messages/:id", d.Message.Delete, auth.RequirePermission(d.Roles, "manage_messages"))

	secured.GET("/notifications", d.Notification.List)
	secured.PATCH("/notifications/read-all", d.Notification.MarkAllRead)
	secured.PATCH("/notifications/:id/read", d.Notification.MarkRead)
	secured.DELETE("/notifications/:id", d.Notification.Delete)

	secured.GET("/activities", d.Activity.List, auth.RequirePermission(d.Roles, "view_activity"))
	secured.GET("/analytics/summary", d.Analytics.Summary, auth.RequirePermission(d.Roles, "view_analytics"))

	secured.POST("/uploads", d.Upload.Upload,
		auth.RequirePermission(d.Roles, "create_articles", "edit_articles", "manage_carousel"))
}

// errorHandler renders every error as the uniform JSON body. Status
// resolution order: explicit echo errors, then the application error
// mapping. 5xx details stay in the log, not the response.
func errorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		status := http.StatusInternalServerError
		message := "internal server error"
		if he, ok := err.(*echo.HTTPError); ok {
			status = he.Code
			message = fmt.Sprintf("%v", he.Message)
		} else {
			mapped := apperrors.MapToHTTP(err)
			status = mapped.StatusCode
			message = mapped.Message
		}
		if status >= http.StatusInternalServerError {
			log.Error().Err(err).Str("path", c.Request().URL.Path).Msg("request failed")
			message = "internal server error"
		}
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, apperrors.ErrorResponse{Success: false, Error: message})
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
