package main

import (
	"context"

	"github.com/AdityaZala3919/mini-services/config"
	"github.com/AdityaZala3919/mini-services/db"
	"github.com/AdityaZala3919/mini-services/internal/diary/handler"
	repo "github.com/AdityaZala3919/mini-services/internal/diary/repository/sqlite"
	"github.com/AdityaZala3919/mini-services/internal/diary/service"
	"github.com/AdityaZala3919/mini-services/internal/diary/store"
	"github.com/AdityaZala3919/mini-services/internal/logger"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	log := logger.New()
	if err := log.Init("Info"); err != nil {
		panic(err)
	}
	defer func() { _ = log.Log.Sync() }()

	cfg := config.LoadDiary()

	indexDB, err := db.OpenDiaryIndex(context.Background(), cfg.IndexPath)
	if err != nil {
		log.Log.Fatal("failed to open diary index", zap.Error(err))
	}
	defer indexDB.Close()

	fileStore, err := store.NewFileStore(cfg.DataDir)
	if err != nil {
		log.Log.Fatal("failed to open data dir", zap.Error(err))
	}

	indexRepo := repo.NewIndexRepository(indexDB)
	diaryService := service.NewDiaryService(fileStore, indexRepo, cfg.ExportDir)
	diaryHandler := handler.NewDiaryHandler(diaryService)

	app := fiber.New()
	handler.RegisterRoutes(app, diaryHandler)

	log.Log.Info("diary listening", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Log.Fatal("server stopped", zap.Error(err))
	}
}
