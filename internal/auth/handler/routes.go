package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	app.Get("/", h.Root)
	app.Post("/register", h.Register)
	app.Post("/token", h.Token)
	app.Get("/me", h.RequireAuth(), h.Me)
}
