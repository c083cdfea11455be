package main

import (
	"log"
	"net/http"

	"clubfund/docs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"clubfund/internal/auth"
	"clubfund/internal/cache"
	"clubfund/internal/config"
	"clubfund/internal/db"
	"clubfund/internal/handler"
	"clubfund/internal/model"
	"clubfund/internal/repository"
	"clubfund/internal/router"
	"clubfund/internal/service"
)

// @title Club Fundraisers API
// @version 1.0
// @description API for posting and browsing club fundraiser listings with JWT accounts.
// @host localhost:4000
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

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Fundraiser{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	fundraiserRepo := repository.NewFundraiserRepository(gormDB)

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo)
	fundraiserService := service.NewFundraiserService(fundraiserRepo, userRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, fundraiserService)
	fundraiserHandler := handler.NewFundraiserHandler(fundraiserService)

	// Register routes
	router.Register(e, cfg, authHandler, userHandler, fundraiserHandler)

	// Point the swagger docs at the externally visible host when one is set.
	swaggerHost := cfg.SwaggerHost
	if swaggerHost == "" {
		swaggerHost = "localhost:" + cfg.ServerPort
	}
	docs.SwaggerInfo.Host = swaggerHost
	log.Printf("Swagger documentation available at: http://%s/swagger/index.html", swaggerHost)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
