package handler

import (
	"aquamanager/internal/model"
	"aquamanager/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(s service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: s}
}

func (h *CatalogHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(categories)
}

func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var req model.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid JSON")
	}
	category, err := h.service.CreateCategory(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Category created", "data": category})
}

func (h *CatalogHandler) GetVendors(c *fiber.Ctx) error {
	vendors, err := h.service.ListVendors(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(vendors)
}

func (h *CatalogHandler) CreateVendor(c *fiber.Ctx) error {
	var req model.CreateVendorRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid JSON")
	}
	vendor, err := h.service.CreateVendor(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Vendor created", "data": vendor})
}

func (h *CatalogHandler) GetDepartments(c *fiber.Ctx) error {
	departments, err := h.service.ListDepartments(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(departments)
}

func (h *CatalogHandler) CreateDepartment(c *fiber.Ctx) error {
	var req model.CreateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid JSON")
	}
	department, err := h.service.CreateDepartment(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Department created", "data": department})
}
