package main

import (
	"github.com/AdityaZala3919/mini-services/config"
	"github.com/AdityaZala3919/mini-services/internal/logger"
	"github.com/AdityaZala3919/mini-services/internal/predict/handler"
	"github.com/AdityaZala3919/mini-services/internal/predict/model"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	log := logger.New()
	if err := log.Init("Info"); err != nil {
		panic(err)
	}
	defer func() { _ = log.Log.Sync() }()

	cfg := config.LoadPredict()

	// A missing or malformed artifact stops the process here; the
	// serving path never sees an unloaded model.
	m, err := model.Load(cfg.ModelPath)
	if err != nil {
		log.Log.Fatal("failed to load model", zap.String("path", cfg.ModelPath), zap.Error(err))
	}
	log.Log.Info("model loaded",
		zap.String("model", m.Name()),
		zap.Strings("features", m.Features()))

	predictHandler := handler.NewPredictHandler(m)

	app := fiber.New()
	handler.RegisterRoutes(app, predictHandler)

	log.Log.Info("predictor listening", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Log.Fatal("server stopped", zap.Error(err))
	}
}
