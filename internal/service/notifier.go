package service

// Cache keys clients refetch when they receive an invalidation event.
const (
	KeyProducts              = "products"
	KeyProductStockStatus    = "product-stock-status"
	KeyInventoryTransactions = "inventory-transactions"
	KeyDashboardStats        = "dashboard-stats"
	KeyRecentActivity        = "recent-activity"
	KeyUsageRecords          = "usage-records"
	KeyPeople                = "people"
	KeyCategories            = "categories"
	KeyVendors               = "vendors"
	KeyDepartments           = "departments"
)

// stockKeys are invalidated by every write that changes a product quantity.
var stockKeys = []string{
	KeyProducts,
	KeyProductStockStatus,
	KeyDashboardStats,
	KeyRecentActivity,
}

type Event struct {
	Type   string   `json:"type"`
	Action string   `json:"action"`
	Keys   []string `json:"keys"`
	ID     string   `json:"id,omitempty"`
}

// Notifier delivers events to connected clients. Publish must not block.
type Notifier interface {
	Publish(event Event)
}

func invalidate(action, id string, keys ...string) Event {
	return Event{Type: "invalidate", Action: action, Keys: keys, ID: id}
}

func withStockKeys(keys ...string) []string {
	out := make([]string, 0, len(stockKeys)+len(keys))
	out = append(out, keys...)
	return append(out, stockKeys...)
}
