package handler

import (
	"aquamanager/internal/model"
	"aquamanager/internal/service"
	"aquamanager/pkg/currency"

	"github.com/gofiber/fiber/v2"
)

// transactionView adds the INR strings the dashboard tables show next to the raw amounts.
type transactionView struct {
	*model.InventoryTransaction
	UnitPriceDisplay   string `json:"unit_price_display"`
	TotalAmountDisplay string `json:"total_amount_display"`
}

func viewTransaction(t *model.InventoryTransaction) transactionView {
	return transactionView{
		InventoryTransaction: t,
		UnitPriceDisplay:     currency.FormatNull(t.UnitPrice),
		TotalAmountDisplay:   currency.FormatNull(t.TotalAmount),
	}
}

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

// GetTransactions query params: start_date, end_date, type, product_id, search
func (h *InventoryHandler) GetTransactions(c *fiber.Ctx) error {
	filter := model.TransactionFilter{
		Type:   model.TransactionType(c.Query("type")),
		Search: c.Query("search"),
	}
	var ok bool
	if filter.StartDate, ok = queryDate(c, "start_date"); !ok {
		return badRequest(c, "Invalid start_date, expected YYYY-MM-DD")
	}
	if filter.EndDate, ok = queryDate(c, "end_date"); !ok {
		return badRequest(c, "Invalid end_date, expected YYYY-MM-DD")
	}
	if filter.ProductID, ok = queryUUID(c, "product_id"); !ok {
		return badRequest(c, "Invalid product_id")
	}

	transactions, err := h.service.ListTransactions(c.UserContext(), filter)
	if err != nil {
		return respondError(c, err)
	}
	views := make([]transactionView, len(transactions))
	for i := range transactions {
		views[i] = viewTransaction(&transactions[i])
	}
	return c.JSON(views)
}

func (h *InventoryHandler) GetTransaction(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "Invalid transaction ID")
	}
	tx, err := h.service.GetTransaction(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(viewTransaction(tx))
}

func (h *InventoryHandler) CreateTransaction(c *fiber.Ctx) error {
	var req model.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid JSON")
	}
	tx, err := h.service.RecordTransaction(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Transaction recorded", "data": viewTransaction(tx)})
}

func (h *InventoryHandler) UpdateTransaction(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "Invalid transaction ID")
	}
	var req model.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid JSON")
	}
	tx, err := h.service.UpdateTransaction(c.UserContext(), id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Transaction updated", "data": viewTransaction(tx)})
}

func (h *InventoryHandler) DeleteTransaction(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "Invalid transaction ID")
	}
	if err := h.service.DeleteTransaction(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Transaction deleted"})
}
