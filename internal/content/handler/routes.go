package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the content endpoints behind the given middleware,
// typically authentication followed by rate limiting.
func RegisterRoutes(app fiber.Router, h *ContentHandler, middleware ...fiber.Handler) {
	content := app.Group("/api/content", middleware...)
	content.Post("/instagram", h.Instagram)
	content.Post("/linkedin", h.LinkedIn)
	content.Get("/history", h.History)
}
