// Package response writes the JSON error envelope shared by all handlers.
package response

import (
	"github.com/gofiber/fiber/v2"
	apperrors "github.com/kolhesatish/content-app/internal/errors"
)

// Error writes {success:false, error:<Kind>, message} with the status mapped from err.
func Error(c *fiber.Ctx, err error) error {
	return c.Status(apperrors.HTTPStatus(err)).JSON(fiber.Map{
		"success": false,
		"error":   apperrors.KindOf(err),
		"message": apperrors.Message(err),
	})
}
