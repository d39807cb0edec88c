package handler

import (
	"aquamanager/internal/model"
	"aquamanager/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	service service.ProductService
}

func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

// GetProducts lists active products. Query params: search, include_inactive
func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.List(c.UserContext(), c.Query("search"), c.QueryBool("include_inactive"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

// GetStockStatus lists active products with their stock status. Query params: status, search
func (h *ProductHandler) GetStockStatus(c *fiber.Ctx) error {
	rows, err := h.service.StockStatus(c.UserContext(), model.StockStatus(c.Query("status")), c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}

func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "Invalid product ID")
	}
	product, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req model.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid JSON")
	}
	product, err := h.service.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Product created", "data": product})
}

func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "Invalid product ID")
	}
	var req model.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid JSON")
	}
	product, err := h.service.Update(c.UserContext(), id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product updated", "data": product})
}

// DeleteProduct deactivates the product; it stays visible with include_inactive=true.
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "Invalid product ID")
	}
	if err := h.service.Deactivate(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product deactivated"})
}
