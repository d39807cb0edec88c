package handler

import (
	"errors"

	"aquamanager/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// respondError writes the status matching a service error. Anything unrecognised goes to the app's ErrorHandler.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrConflict),
		errors.Is(err, service.ErrInsufficientStock),
		errors.Is(err, service.ErrInactiveProduct):
		return c.Status(409).JSON(fiber.Map{"error": err.Error()})
	}
	return err
}

// ErrorHandler logs unexpected errors and hides their details from the client.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
		}

		log.Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
}
