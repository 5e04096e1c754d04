package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/leo-lightfoot/travel-photo-album/internal/middleware"
	"github.com/leo-lightfoot/travel-photo-album/internal/service"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input struct {
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	token, err := h.authService.Login(c.Context(), input.Password)
	if err != nil {
		if errors.Is(err, service.ErrIncorrectPassword) {
			return middleware.Unauthorized("Incorrect password")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(token)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return middleware.Unauthorized("Invalid authorization header format")
	}

	if err := h.authService.Logout(c.Context(), parts[1]); err != nil {
		return middleware.Unauthorized("Invalid or expired token")
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}
