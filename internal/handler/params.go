package handler

import (
	"strconv"
	"time"

	"aquamanager/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(400).JSON(fiber.Map{"error": msg})
}

// pathID parses the :id route parameter.
func pathID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params("id"))
	return id, err == nil
}

// queryUUID returns nil for an absent parameter and ok=false for a malformed one.
func queryUUID(c *fiber.Ctx, key string) (*uuid.UUID, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, false
	}
	return &id, true
}

func queryDate(c *fiber.Ctx, key string) (*time.Time, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	d, err := model.ParseDate(raw)
	if err != nil {
		return nil, false
	}
	return &d, true
}

// queryInt returns def only when the parameter is absent; an explicit value is parsed as given.
func queryInt(c *fiber.Ctx, key string, def int) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	return n, err == nil
}
