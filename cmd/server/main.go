package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"skicheck/internal/auth"
	"skicheck/internal/cache"
	"skicheck/internal/config"
	"skicheck/internal/db"
	"skicheck/internal/handler"
	"skicheck/internal/i18n"
	"skicheck/internal/model"
	"skicheck/internal/repository"
	"skicheck/internal/router"
	"skicheck/internal/service"
	"skicheck/pkg/logger"
)

// @title Ski Check API
// @version 1.0
// @description Club membership service with season payment tracking, equipment records, and JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		l := logger.Get()
		l.Fatal().Err(err).Msg("loading configuration failed")
	}
	logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	log := logger.Named("server")

	gormDB, err := db.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init failed")
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.RoleAssignment{},
		&model.UserDetail{},
		&model.EquipmentItem{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate failed")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()

	bundle := i18n.NewBundle()

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	userDetailRepo := repository.NewUserDetailRepository(gormDB)

	// Auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Services
	userService := service.NewUserService(userRepo, bundle)
	userDetailService := service.NewUserDetailService(userDetailRepo, bundle)
	authService := service.NewAuthService(userRepo, jwtService, tokenStore, bundle, cfg.DefaultPassword)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	accountHandler := handler.NewAccountHandler(userService, userDetailService, authService)
	adminHandler := handler.NewAdminHandler(userService, userDetailService, authService, cfg.DefaultPassword)
	languageHandler := handler.NewLanguageHandler(bundle)

	e := echo.New()
	e.HideBanner = true
	router.Register(e, cfg, authHandler, accountHandler, adminHandler, languageHandler)

	addr := ":" + cfg.ServerPort
	log.Info().Str("addr", addr).Msg("starting server")
	if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
