package handler

import (
	"aquamanager/internal/model"

	"github.com/gofiber/fiber/v2"
)

type RoleHandler struct {
	roles      []model.Role
	privileges []model.Privilege
}

func NewRoleHandler() *RoleHandler {
	return &RoleHandler{roles: model.DefaultRoles, privileges: model.DefaultPrivileges}
}

// GetRoles returns the roles a token can be issued for
// GET /api/v1/roles
func (h *RoleHandler) GetRoles(c *fiber.Ctx) error {
	return c.JSON(h.roles)
}

// GetPrivileges returns every privilege code the API checks
// GET /api/v1/privileges
func (h *RoleHandler) GetPrivileges(c *fiber.Ctx) error {
	return c.JSON(h.privileges)
}
