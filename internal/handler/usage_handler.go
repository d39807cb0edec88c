package handler

import (
	"aquamanager/internal/model"
	"aquamanager/internal/service"

	"github.com/gofiber/fiber/v2"
)

type UsageHandler struct {
	service service.UsageService
}

func NewUsageHandler(s service.UsageService) *UsageHandler {
	return &UsageHandler{service: s}
}

// GetUsage query params: start_date, end_date, person_id, department_id, product_id, search
func (h *UsageHandler) GetUsage(c *fiber.Ctx) error {
	filter := model.UsageFilter{Search: c.Query("search")}
	var ok bool
	if filter.StartDate, ok = queryDate(c, "start_date"); !ok {
		return badRequest(c, "Invalid start_date, expected YYYY-MM-DD")
	}
	if filter.EndDate, ok = queryDate(c, "end_date"); !ok {
		return badRequest(c, "Invalid end_date, expected YYYY-MM-DD")
	}
	if filter.PersonID, ok = queryUUID(c, "person_id"); !ok {
		return badRequest(c, "Invalid person_id")
	}
	if filter.DepartmentID, ok = queryUUID(c, "department_id"); !ok {
		return badRequest(c, "Invalid department_id")
	}
	if filter.ProductID, ok = queryUUID(c, "product_id"); !ok {
		return badRequest(c, "Invalid product_id")
	}

	records, err := h.service.List(c.UserContext(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(records)
}

func (h *UsageHandler) GetUsageRecord(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "Invalid usage record ID")
	}
	record, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(record)
}

func (h *UsageHandler) CreateUsage(c *fiber.Ctx) error {
	var req model.CreateUsageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid JSON")
	}
	record, err := h.service.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Usage recorded", "data": record})
}

func (h *UsageHandler) UpdateUsage(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "Invalid usage record ID")
	}
	var req model.CreateUsageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid JSON")
	}
	record, err := h.service.Update(c.UserContext(), id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Usage record updated", "data": record})
}

func (h *UsageHandler) DeleteUsage(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "Invalid usage record ID")
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Usage record deleted"})
}
