package middleware

import (
	"crypto/subtle"
	"strings"

	"aquamanager/internal/model"
	"aquamanager/pkg/jwt"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// Locals keys set by RequireAuth.
const (
	LocalSubject    = "auth_subject"
	LocalRole       = "auth_role"
	LocalPrivileges = "user_privileges"
)

// RequireAuth accepts either the raw API key in the apikey header (service role, every privilege)
// or a Bearer token signed with it. Websocket upgrades may pass the same values as query parameters.
func RequireAuth(apiKey string) fiber.Handler {
	secret := []byte(apiKey)

	return func(c *fiber.Ctx) error {
		key := c.Get("apikey")
		authHeader := c.Get("Authorization")
		if websocket.IsWebSocketUpgrade(c) {
			if key == "" {
				key = c.Query("apikey")
			}
			if authHeader == "" && c.Query("access_token") != "" {
				authHeader = "Bearer " + c.Query("access_token")
			}
		}

		if key != "" {
			if subtle.ConstantTimeCompare([]byte(key), secret) != 1 {
				return c.Status(401).JSON(fiber.Map{"error": "Invalid API key"})
			}
			c.Locals(LocalSubject, model.RoleService)
			c.Locals(LocalRole, model.RoleService)
			c.Locals(LocalPrivileges, model.AllPrivilegeCodes())
			return c.Next()
		}

		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := jwt.ValidateToken(secret, parts[1])
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		c.Locals(LocalSubject, claims.Subject)
		c.Locals(LocalRole, claims.Role)
		c.Locals(LocalPrivileges, claims.Privileges)

		return c.Next()
	}
}

// RequirePrivilege checks if the caller has the required privilege
func RequirePrivilege(requiredPrivilege string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		privileges, ok := c.Locals(LocalPrivileges).([]string)
		if !ok {
			return c.Status(403).JSON(fiber.Map{"error": "No privileges found"})
		}

		for _, p := range privileges {
			if p == requiredPrivilege {
				return c.Next()
			}
		}

		return c.Status(403).JSON(fiber.Map{
			"error": "Forbidden: requires '" + requiredPrivilege + "' privilege",
		})
	}
}

// RequireAnyPrivilege checks if the caller has at least one of the specified privileges
func RequireAnyPrivilege(requiredPrivileges ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		privileges, ok := c.Locals(LocalPrivileges).([]string)
		if !ok {
			return c.Status(403).JSON(fiber.Map{"error": "No privileges found"})
		}

		for _, userPriv := range privileges {
			for _, reqPriv := range requiredPrivileges {
				if userPriv == reqPriv {
					return c.Next()
				}
			}
		}

		return c.Status(403).JSON(fiber.Map{
			"error": "Forbidden: requires one of " + strings.Join(requiredPrivileges, ", ") + " privileges",
		})
	}
}
