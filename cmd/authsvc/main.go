package main

import (
	"context"

	"github.com/AdityaZala3919/mini-services/config"
	"github.com/AdityaZala3919/mini-services/db"
	"github.com/AdityaZala3919/mini-services/internal/auth/handler"
	repo "github.com/AdityaZala3919/mini-services/internal/auth/repository/postgres"
	"github.com/AdityaZala3919/mini-services/internal/auth/service"
	"github.com/AdityaZala3919/mini-services/internal/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"
)

func main() {
	log := logger.New()
	if err := log.Init("Info"); err != nil {
		panic(err)
	}
	defer func() { _ = log.Log.Sync() }()

	cfg := config.LoadAuth()
	ctx := context.Background()

	if err := db.MigrateAccounts(ctx, cfg.DBURL); err != nil {
		log.Log.Fatal("failed to run migrations", zap.Error(err))
	}

	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	accountRepo := repo.NewAccountRepository(pool)
	tokenService := service.NewTokenService(cfg.TokenSecret, cfg.AccessExpiryMin)
	accountService := service.NewAccountService(accountRepo, tokenService)
	authHandler := handler.NewAuthHandler(accountService)

	app := fiber.New()
	app.Use(cors.New())
	handler.RegisterRoutes(app, authHandler)

	log.Log.Info("authenticator listening", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Log.Fatal("server stopped", zap.Error(err))
	}
}
