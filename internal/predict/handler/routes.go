package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *PredictHandler) {
	app.Get("/", h.Root)
	app.Post("/predict", h.Predict)
	app.Get("/healthz", h.Health)
}
