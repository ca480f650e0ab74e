package handler

import (
	"github.com/AdityaZala3919/mini-services/internal/predict/dto"
	"github.com/AdityaZala3919/mini-services/internal/predict/model"
	"github.com/gofiber/fiber/v2"
)

type PredictHandler struct {
	model *model.Model
}

func NewPredictHandler(m *model.Model) *PredictHandler {
	return &PredictHandler{model: m}
}

func (h *PredictHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Housing Price Prediction API",
		"endpoints": fiber.Map{
			"/predict": "POST - Predict housing price from features",
			"/healthz": "GET - Health check",
		},
	})
}

func (h *PredictHandler) Predict(c *fiber.Ctx) error {
	var features dto.HousingFeatures
	if err := c.BodyParser(&features); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	prediction, err := h.model.Predict(features.Vector())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(dto.PredictionResponse{
		PredictedPrice: prediction,
	})
}

// Health reports liveness. The model is always loaded here: a failed
// load never reaches serving.
func (h *PredictHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":       "healthy",
		"model_loaded": h.model != nil,
	})
}
