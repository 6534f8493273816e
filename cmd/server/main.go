package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	_ "pressroom/docs" // swagger docs

	"pressroom/internal/auth"
	"pressroom/internal/cache"
	"pressroom/internal/config"
	"pressroom/internal/db"
	"pressroom/internal/handler"
	"pressroom/internal/realtime"
	"pressroom/internal/repository"
	"pressroom/internal/router"
	"pressroom/internal/service"
)

// cleanupInterval is how often read notifications past retention are purged.
const cleanupInterval = 24 * time.Hour

// @title Pressroom API
// @version 1.0
// @description Content management API with articles, carousel, roles and realtime notifications.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}
	if err := db.Seed(gormDB); err != nil {
		log.Fatal().Err(err).Msg("seed permissions and roles")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	tokens := auth.NewTokenService(cfg.AccessSecret, cfg.RefreshSecret, cfg.AccessExpiry, cfg.RefreshExpiry)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	roleRepo := repository.NewRoleRepository(gormDB)
	permissionRepo := repository.NewPermissionRepository(gormDB)
	articleRepo := repository.NewArticleRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	slideRepo := repository.NewSlideRepository(gormDB)
	messageRepo := repository.NewMessageRepository(gormDB)
	notificationRepo := repository.NewNotificationRepository(gormDB)
	activityRepo := repository.NewActivityRepository(gormDB)

	// Services
	authService := service.NewAuthService(userRepo, tokens)
	userService := service.NewUserService(userRepo)
	roleService := service.NewRoleService(roleRepo, permissionRepo)
	articleService := service.NewArticleService(articleRepo)
	categoryService := service.NewCategoryService(categoryRepo, articleRepo)
	slideService := service.NewSlideService(slideRepo)
	messageService := service.NewMessageService(messageRepo)
	notificationService := service.NewNotificationService(notificationRepo, log)
	activityService := service.NewActivityService(activityRepo, log)
	analyticsService := service.NewAnalyticsService(articleRepo, userRepo, messageRepo, cacheClient)

	hub := realtime.NewHub(tokens, log)
	go hub.Run()

	// Purge read notifications past retention on a slow ticker.
	go func() {
		ticker := time.NewTicker(cleanupInterval)
		defer ticker.Stop()
		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			if _, err := notificationService.CleanupRead(ctx); err != nil {
				log.Warn().Err(err).Msg("notification cleanup failed")
			}
			cancel()
		}
	}()

	e := echo.New()
	e.HideBanner = true

	router.Register(e, router.Deps{
		Config:       cfg,
		Log:          log,
		Tokens:       tokens,
		Users:        userRepo,
		Roles:        roleRepo,
		Hub:          hub,
		Auth:         handler.NewAuthHandler(authService, activityService),
		User:         handler.NewUserHandler(userService, activityService),
		Role:         handler.NewRoleHandler(roleService, activityService),
		Article:      handler.NewArticleHandler(articleService, roleRepo, activityService, notificationService, hub),
		Category:     handler.NewCategoryHandler(categoryService, hub),
		Slide:        handler.NewSlideHandler(slideService, hub),
		Message:      handler.NewMessageHandler(messageService, notificationService, activityService, hub),
		Notification: handler.NewNotificationHandler(notificationService),
		Activity:     handler.NewActivityHandler(activityService),
		Analytics:    handler.NewAnalyticsHandler(analyticsService),
		Upload:       handler.NewUploadHandler(cfg.UploadDir),
	})

	addr := ":" + cfg.ServerPort
	log.Info().Str("addr", addr).Str("env", cfg.AppEnv).Msg("starting server")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}
