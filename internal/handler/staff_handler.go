package handler

import (
	"aquamanager/internal/model"
	"aquamanager/internal/service"

	"github.com/gofiber/fiber/v2"
)

type StaffHandler struct {
	service service.StaffService
}

func NewStaffHandler(s service.StaffService) *StaffHandler {
	return &StaffHandler{service: s}
}

func (h *StaffHandler) GetStaff(c *fiber.Ctx) error {
	people, err := h.service.List(c.UserContext(), c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(people)
}

func (h *StaffHandler) CreateStaff(c *fiber.Ctx) error {
	var req model.CreatePersonRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid JSON")
	}
	person, err := h.service.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Staff member created", "data": person})
}

func (h *StaffHandler) UpdateStaff(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "Invalid staff ID")
	}
	var req model.UpdatePersonRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid JSON")
	}
	person, err := h.service.Update(c.UserContext(), id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Staff member updated", "data": person})
}

// SetActive body: {"is_active": bool}
func (h *StaffHandler) SetActive(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "Invalid staff ID")
	}
	var req struct {
		IsActive *bool `json:"is_active"`
	}
	if err := c.BodyParser(&req); err != nil || req.IsActive == nil {
		return badRequest(c, "Body must be {\"is_active\": true|false}")
	}
	person, err := h.service.SetActive(c.UserContext(), id, *req.IsActive)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Staff status updated", "data": person})
}

func (h *StaffHandler) DeleteStaff(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "Invalid staff ID")
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Staff member deleted"})
}
