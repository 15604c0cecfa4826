package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/kolhesatish/content-app/internal/auth/dto"
	"github.com/kolhesatish/content-app/internal/auth/service"
	apperrors "github.com/kolhesatish/content-app/internal/errors"
	"github.com/kolhesatish/content-app/internal/response"
)

// LocalUserID is the fiber.Ctx Locals key holding the authenticated user ID.
const LocalUserID = "userID"

type AuthHandler struct {
	userService *service.UserService
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, apperrors.ErrInvalidRequest)
	}

	resp, err := h.userService.Register(c.UserContext(), input)
	if err != nil {
		return response.Error(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, apperrors.ErrInvalidRequest)
	}

	resp, err := h.userService.Login(c.UserContext(), input)
	if err != nil {
		return response.Error(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, _ := c.Locals(LocalUserID).(string)

	resp, err := h.userService.Me(c.UserContext(), userID)
	if err != nil {
		// A valid token for a deleted account is an authentication failure.
		if apperrors.KindOf(err) == apperrors.KindNotFound {
			return response.Error(c, apperrors.ErrUnauthenticated)
		}
		return response.Error(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// RequireAuth resolves the bearer token and stores the user ID in Locals.
func (h *AuthHandler) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		var token string
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		userID, err := h.userService.Authenticate(token)
		if err != nil {
			return response.Error(c, err)
		}

		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}
