package handler

import (
	"aquamanager/internal/middleware"
	"aquamanager/internal/model"
	"aquamanager/internal/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// Handlers bundles every HTTP handler served under /api/v1.
type Handlers struct {
	Catalog   *CatalogHandler
	Product   *ProductHandler
	Inventory *InventoryHandler
	Usage     *UsageHandler
	Staff     *StaffHandler
	Dashboard *DashboardHandler
}

// Register mounts the health check, the REST API and the websocket endpoint on app.
func (h *Handlers) Register(app *fiber.App, apiKey string, hub *ws.Hub) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	auth := NewAuthHandler(apiKey)
	roles := NewRoleHandler()

	// Public
	app.Post("/api/v1/auth/validate-token", auth.ValidateToken)

	api := app.Group("/api/v1", middleware.RequireAuth(apiKey))
	allow := middleware.RequirePrivilege

	// Caller identity and the role catalogue
	api.Get("/auth/me", auth.Me)
	api.Get("/roles", roles.GetRoles)
	api.Get("/privileges", roles.GetPrivileges)

	// Reference data
	api.Get("/categories", allow(model.PrivCatalogView), h.Catalog.GetCategories)
	api.Post("/categories", allow(model.PrivCatalogCreate), h.Catalog.CreateCategory)
	api.Get("/vendors", allow(model.PrivCatalogView), h.Catalog.GetVendors)
	api.Post("/vendors", allow(model.PrivCatalogCreate), h.Catalog.CreateVendor)
	api.Get("/departments", allow(model.PrivCatalogView), h.Catalog.GetDepartments)
	api.Post("/departments", allow(model.PrivCatalogCreate), h.Catalog.CreateDepartment)

	// Products
	api.Get("/products", allow(model.PrivProductView), h.Product.GetProducts)
	api.Get("/products/stock-status", middleware.RequireAnyPrivilege(model.PrivProductView, model.PrivDashboardView), h.Product.GetStockStatus)
	api.Get("/products/:id", allow(model.PrivProductView), h.Product.GetProduct)
	api.Post("/products", allow(model.PrivProductCreate), h.Product.CreateProduct)
	api.Put("/products/:id", allow(model.PrivProductUpdate), h.Product.UpdateProduct)
	api.Delete("/products/:id", allow(model.PrivProductDelete), h.Product.DeleteProduct)

	// Transactions
	api.Get("/transactions", allow(model.PrivTransactionView), h.Inventory.GetTransactions)
	api.Get("/transactions/:id", allow(model.PrivTransactionView), h.Inventory.GetTransaction)
	api.Post("/transactions", allow(model.PrivTransactionCreate), h.Inventory.CreateTransaction)
	api.Put("/transactions/:id", allow(model.PrivTransactionUpdate), h.Inventory.UpdateTransaction)
	api.Delete("/transactions/:id", allow(model.PrivTransactionDelete), h.Inventory.DeleteTransaction)

	// Usage
	api.Get("/usage", allow(model.PrivUsageView), h.Usage.GetUsage)
	api.Get("/usage/:id", allow(model.PrivUsageView), h.Usage.GetUsageRecord)
	api.Post("/usage", allow(model.PrivUsageCreate), h.Usage.CreateUsage)
	api.Put("/usage/:id", allow(model.PrivUsageUpdate), h.Usage.UpdateUsage)
	api.Delete("/usage/:id", allow(model.PrivUsageDelete), h.Usage.DeleteUsage)

	// Staff
	api.Get("/staff", allow(model.PrivStaffView), h.Staff.GetStaff)
	api.Post("/staff", allow(model.PrivStaffCreate), h.Staff.CreateStaff)
	api.Put("/staff/:id", allow(model.PrivStaffUpdate), h.Staff.UpdateStaff)
	api.Patch("/staff/:id/active", allow(model.PrivStaffUpdate), h.Staff.SetActive)
	api.Delete("/staff/:id", allow(model.PrivStaffDelete), h.Staff.DeleteStaff)

	// Dashboard
	api.Get("/dashboard/stats", allow(model.PrivDashboardView), h.Dashboard.GetDashboardStats)
	api.Get("/dashboard/recent-activity", allow(model.PrivDashboardView), h.Dashboard.GetRecentActivity)
	api.Get("/dashboard/stock-movement", allow(model.PrivDashboardView), h.Dashboard.GetStockMovement)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	}, middleware.RequireAuth(apiKey))
	app.Get("/ws", websocket.New(hub.Serve))
}
