package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app fiber.Router, h *AuthHandler) {
	auth := app.Group("/api/auth")
	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)
	auth.Get("/me", h.RequireAuth(), h.Me)
}
