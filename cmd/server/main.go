package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "hizmetpinari/docs"
	"hizmetpinari/internal/auth"
	"hizmetpinari/internal/cache"
	"hizmetpinari/internal/config"
	"hizmetpinari/internal/db"
	"hizmetpinari/internal/handler"
	"hizmetpinari/internal/model"
	"hizmetpinari/internal/repository"
	"hizmetpinari/internal/router"
	"hizmetpinari/internal/service"
)

// @title Hizmet Pinari API
// @version 1.0
// @description Service marketplace API connecting customers posting jobs with providers bidding on them.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Provider{},
		&model.Category{},
		&model.Service{},
		&model.District{},
		&model.Job{},
		&model.Offer{},
		&model.Review{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	providerRepo := repository.NewProviderRepository(gormDB)
	jobRepo := repository.NewJobRepository(gormDB)
	offerRepo := repository.NewOfferRepository(gormDB)
	reviewRepo := repository.NewReviewRepository(gormDB)
	catalogRepo := repository.NewCatalogRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	jobService := service.NewJobService(jobRepo, userRepo, cacheClient)
	offerService := service.NewOfferService(offerRepo, jobRepo, providerRepo, userRepo, cacheClient)
	reviewService := service.NewReviewService(reviewRepo, jobRepo, offerRepo)
	userService := service.NewUserService(userRepo)
	catalogService := service.NewCatalogService(catalogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	jobHandler := handler.NewJobHandler(jobService)
	offerHandler := handler.NewOfferHandler(offerService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	adminHandler := handler.NewAdminHandler(userService)
	catalogHandler := handler.NewCatalogHandler(catalogService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		jobHandler,
		offerHandler,
		reviewHandler,
		adminHandler,
		catalogHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
