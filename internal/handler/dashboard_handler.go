package handler

import (
	"aquamanager/internal/service"
	"aquamanager/pkg/currency"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetDashboardStats returns overview statistics
func (h *DashboardHandler) GetDashboardStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"total_products":  stats.TotalProducts,
		"low_stock_items": stats.LowStockItems,
		"today_orders":    stats.TodayOrders,
		"revenue":         stats.Revenue,
		"revenue_display": currency.Format(&stats.Revenue),
	})
}

// GetRecentActivity query params: limit (default 10)
func (h *DashboardHandler) GetRecentActivity(c *fiber.Ctx) error {
	limit, ok := queryInt(c, "limit", service.DefaultActivityLimit)
	if !ok || limit < 1 {
		return badRequest(c, "Invalid limit")
	}
	activity, err := h.service.RecentActivity(c.UserContext(), limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(activity)
}

// GetStockMovement returns stock movement data for charts
// Query params: days (default 7)
func (h *DashboardHandler) GetStockMovement(c *fiber.Ctx) error {
	days, ok := queryInt(c, "days", service.DefaultMovementDays)
	if !ok {
		return badRequest(c, "Invalid days")
	}

	data, err := h.service.StockMovement(c.UserContext(), days)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"period": days,
		"data":   data,
	})
}
