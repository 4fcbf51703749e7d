package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/witoldp/petcare-backend/internal/dto"
	"github.com/witoldp/petcare-backend/internal/principal"
	"github.com/witoldp/petcare-backend/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyParseError()
	}
	resp, err := h.authService.Register(&req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyParseError()
	}
	resp, err := h.authService.Login(&req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Me echoes the resolved principal's account.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	p, err := principal.FromCtx(c)
	if err != nil {
		return err
	}
	user, err := h.authService.CurrentUser(p)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserResponse(user))
}
