package handler

import (
	"aquamanager/internal/middleware"
	"aquamanager/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	secret []byte
}

func NewAuthHandler(apiKey string) *AuthHandler {
	return &AuthHandler{secret: []byte(apiKey)}
}

type ValidateTokenRequest struct {
	Token string `json:"token"`
}

// ValidateToken reports whether a token is still accepted and what it grants.
// POST /api/v1/auth/validate-token
func (h *AuthHandler) ValidateToken(c *fiber.Ctx) error {
	var req ValidateTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if req.Token == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Token is required"})
	}

	claims, err := jwt.ValidateToken(h.secret, req.Token)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"valid": false, "error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"valid":      true,
		"subject":    claims.Subject,
		"role":       claims.Role,
		"privileges": claims.Privileges,
		"expires_at": claims.ExpiresAt.Time,
	})
}

// Me echoes the caller identity resolved by RequireAuth.
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"subject":    c.Locals(middleware.LocalSubject),
		"role":       c.Locals(middleware.LocalRole),
		"privileges": c.Locals(middleware.LocalPrivileges),
	})
}
