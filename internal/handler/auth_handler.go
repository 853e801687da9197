package handler

import (
	"funkopop-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup handles POST /api/1.0/auth/signup
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	user, err := h.authService.Signup(parseBody(c))
	if err != nil {
		return err
	}
	return c.Status(201).JSON(fiber.Map{"user": user.ToResponse()})
}

// Signin handles POST /api/1.0/auth/signin
func (h *AuthHandler) Signin(c *fiber.Ctx) error {
	user, token, err := h.authService.Signin(parseBody(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"user":  user.ToResponse(),
		"token": token,
	})
}

// GetUser handles GET /api/1.0/auth/get-user
func (h *AuthHandler) GetUser(c *fiber.Ctx) error {
	user, err := caller(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"user": user.ToResponse()})
}
