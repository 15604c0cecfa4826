package handler

import (
	"github.com/gofiber/fiber/v2"
	authhandler "github.com/kolhesatish/content-app/internal/auth/handler"
	"github.com/kolhesatish/content-app/internal/content/domain"
	"github.com/kolhesatish/content-app/internal/content/dto"
	"github.com/kolhesatish/content-app/internal/content/service"
	apperrors "github.com/kolhesatish/content-app/internal/errors"
	"github.com/kolhesatish/content-app/internal/response"
)

type ContentHandler struct {
	gateway *service.Gateway
}

func NewContentHandler(gateway *service.Gateway) *ContentHandler {
	return &ContentHandler{gateway: gateway}
}

func (h *ContentHandler) Instagram(c *fiber.Ctx) error {
	var input dto.InstagramInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, apperrors.ErrInvalidRequest)
	}

	return h.generate(c, domain.Request{
		Platform:    domain.PlatformInstagram,
		ContentType: input.ContentType,
		Topic:       input.Topic,
		Options:     input.Options,
	})
}

func (h *ContentHandler) LinkedIn(c *fiber.Ctx) error {
	var input dto.LinkedInInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, apperrors.ErrInvalidRequest)
	}

	return h.generate(c, domain.Request{
		Platform: domain.PlatformLinkedIn,
		Style:    input.Style,
		Topic:    input.Topic,
		Options:  input.Options,
	})
}

func (h *ContentHandler) generate(c *fiber.Ctx, req domain.Request) error {
	req.AccountID, _ = c.Locals(authhandler.LocalUserID).(string)

	gen, err := h.gateway.Generate(c.UserContext(), req)
	if err != nil {
		return response.Error(c, err)
	}

	resp := dto.GenerateResponse{
		Success:          true,
		Content:          gen.Content,
		Platform:         gen.Request.Platform,
		ContentType:      gen.Request.ContentType,
		Style:            gen.Request.Style,
		Topic:            gen.Request.Topic,
		CreditsRemaining: gen.CreditsRemaining,
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *ContentHandler) History(c *fiber.Ctx) error {
	userID, _ := c.Locals(authhandler.LocalUserID).(string)

	records, err := h.gateway.History(c.UserContext(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewHistoryResponse(records))
}
