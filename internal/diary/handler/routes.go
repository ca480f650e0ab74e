package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *DiaryHandler) {
	app.Get("/", h.Root)
	app.Post("/diary", h.CreateOrUpdate)
	app.Get("/diary/:date", h.Get)
	app.Get("/export/txt", h.Export)
}
