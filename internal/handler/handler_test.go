package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"aquamanager/internal/model"
	"aquamanager/internal/repository"
	"aquamanager/internal/service"
	"aquamanager/internal/testutil"
	"aquamanager/internal/ws"
	"aquamanager/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const apiKey = "handler-test-key"

type testServer struct {
	app     *fiber.App
	db      *gorm.DB
	fixture *testutil.Fixture
}

func newServer(t *testing.T) *testServer {
	db := testutil.NewDB(t)
	log := zap.NewNop()
	hub := ws.NewHub(log)

	productRepo := repository.NewProductRepo(db)
	txRepo := repository.NewTransactionRepo(db)

	handlers := &Handlers{
		Catalog: NewCatalogHandler(service.NewCatalogService(
			repository.NewCategoryRepo(db), repository.NewVendorRepo(db), repository.NewDepartmentRepo(db), hub)),
		Product:   NewProductHandler(service.NewProductService(productRepo, repository.NewVendorRepo(db), repository.NewCategoryRepo(db), db, hub, log)),
		Inventory: NewInventoryHandler(service.NewInventoryService(productRepo, txRepo, db, hub, log)),
		Usage:     NewUsageHandler(service.NewUsageService(productRepo, repository.NewUsageRepo(db), db, hub, log)),
		Staff:     NewStaffHandler(service.NewStaffService(repository.NewPersonRepo(db), repository.NewDepartmentRepo(db), hub)),
		Dashboard: NewDashboardHandler(service.NewDashboardService(productRepo, txRepo)),
	}

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(log)})
	handlers.Register(app, apiKey, hub)

	return &testServer{app: app, db: db, fixture: testutil.Seed(t, db)}
}

type call struct {
	method  string
	path    string
	body    interface{}
	headers map[string]string
}

func (s *testServer) do(t *testing.T, c call) (int, []byte) {
	t.Helper()

	var body io.Reader
	if c.body != nil {
		raw, err := json.Marshal(c.body)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(c.method, c.path, body)
	req.Header.Set("Content-Type", "application/json")
	if c.headers == nil {
		req.Header.Set("apikey", apiKey)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

type envelope[T any] struct {
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func bearer(t *testing.T, role string) map[string]string {
	r, ok := model.FindRole(role)
	require.True(t, ok)
	tok, err := jwt.GenerateToken([]byte(apiKey), "tester", r.Code, r.Privileges, time.Hour)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + tok}
}

func TestHealthIsPublic(t *testing.T) {
	s := newServer(t)
	status, _ := s.do(t, call{method: http.MethodGet, path: "/health", headers: map[string]string{}})
	assert.Equal(t, http.StatusOK, status)

	status, _ = s.do(t, call{method: http.MethodGet, path: "/api/v1/products", headers: map[string]string{}})
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestProductsEndpoints(t *testing.T) {
	s := newServer(t)
	f := s.fixture

	status, raw := s.do(t, call{method: http.MethodPost, path: "/api/v1/products", body: map[string]interface{}{
		"description": "Rescue Tube",
		"vendor_id":   f.Vendor.ID,
		"category_id": f.Category.ID,
		"unit":        "PCS",
		"rate":        "850.00",
		"quantity":    3,
		"min_stock":   5,
	}})
	require.Equal(t, http.StatusCreated, status, string(raw))
	created := decode[envelope[model.Product]](t, raw).Data
	assert.Equal(t, "Rescue Tube", created.Description)

	status, raw = s.do(t, call{method: http.MethodGet, path: "/api/v1/products/stock-status?status=low_stock"})
	require.Equal(t, http.StatusOK, status)
	rows := decode[[]model.ProductStockStatus](t, raw)
	require.Len(t, rows, 1)
	assert.Equal(t, model.LowStock, rows[0].StockStatus)

	status, _ = s.do(t, call{method: http.MethodGet, path: "/api/v1/products/stock-status?status=bogus"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = s.do(t, call{method: http.MethodPut, path: "/api/v1/products/" + created.ID.String(), body: map[string]interface{}{"min_stock": 1}})
	assert.Equal(t, http.StatusOK, status)

	status, _ = s.do(t, call{method: http.MethodDelete, path: "/api/v1/products/" + created.ID.String()})
	assert.Equal(t, http.StatusOK, status)

	status, raw = s.do(t, call{method: http.MethodGet, path: "/api/v1/products"})
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, decode[[]model.Product](t, raw))

	status, raw = s.do(t, call{method: http.MethodGet, path: "/api/v1/products?include_inactive=true&search=rescue"})
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]model.Product](t, raw), 1)

	status, _ = s.do(t, call{method: http.MethodGet, path: "/api/v1/products/not-a-uuid"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = s.do(t, call{method: http.MethodGet, path: "/api/v1/products/" + f.Vendor.ID.String()})
	assert.Equal(t, http.StatusNotFound, status)
}

func TestTransactionsEndpoints(t *testing.T) {
	s := newServer(t)
	p := s.fixture.Product(t, s.db, "Sunscreen", 5, 2)

	status, raw := s.do(t, call{method: http.MethodPost, path: "/api/v1/transactions", body: map[string]interface{}{
		"product_id":       p.ID,
		"transaction_type": "issue",
		"quantity":         9,
		"transaction_date": "2024-06-01",
	}})
	assert.Equal(t, http.StatusConflict, status)
	assert.Contains(t, string(raw), "only 5 PCS available")

	status, raw = s.do(t, call{method: http.MethodPost, path: "/api/v1/transactions", body: map[string]interface{}{
		"product_id":       p.ID,
		"transaction_type": "purchase",
		"quantity":         10,
		"unit_price":       "40",
		"transaction_date": "2024-06-01",
	}})
	require.Equal(t, http.StatusCreated, status, string(raw))
	tx := decode[envelope[model.InventoryTransaction]](t, raw).Data
	assert.Equal(t, "400", tx.TotalAmount.Decimal.String())
	assert.Contains(t, string(raw), `"total_amount_display":"₹400.00"`)

	status, raw = s.do(t, call{method: http.MethodGet, path: "/api/v1/transactions?type=purchase&start_date=2024-06-01&end_date=2024-06-30"})
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]model.InventoryTransaction](t, raw), 1)
	assert.Contains(t, string(raw), `"unit_price_display":"₹40.00"`)

	status, _ = s.do(t, call{method: http.MethodGet, path: "/api/v1/transactions?start_date=June"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = s.do(t, call{method: http.MethodPut, path: "/api/v1/transactions/" + tx.ID.String(), body: map[string]interface{}{
		"product_id":       p.ID,
		"transaction_type": "purchase",
		"quantity":         12,
		"transaction_date": "2024-06-01",
	}})
	assert.Equal(t, http.StatusOK, status)

	status, _ = s.do(t, call{method: http.MethodDelete, path: "/api/v1/transactions/" + tx.ID.String()})
	assert.Equal(t, http.StatusOK, status)

	status, _ = s.do(t, call{method: http.MethodGet, path: "/api/v1/transactions/" + tx.ID.String()})
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = s.do(t, call{method: http.MethodPost, path: "/api/v1/transactions", body: "not json"})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestUsageAndStaffEndpoints(t *testing.T) {
	s := newServer(t)
	f := s.fixture
	p := s.fixture.Product(t, s.db, "Towels", 10, 2)

	for _, missing := range []string{"person_id", "department_id"} {
		body := map[string]interface{}{
			"product_id":    p.ID,
			"quantity":      4,
			"person_id":     f.Person.ID,
			"department_id": f.Department.ID,
			"usage_date":    "2024-06-02",
		}
		delete(body, missing)
		status, raw := s.do(t, call{method: http.MethodPost, path: "/api/v1/usage", body: body})
		assert.Equal(t, http.StatusBadRequest, status, missing)
		assert.Contains(t, string(raw), "required", missing)
	}

	status, raw := s.do(t, call{method: http.MethodPost, path: "/api/v1/usage", body: map[string]interface{}{
		"product_id":    p.ID,
		"quantity":      4,
		"person_id":     f.Person.ID,
		"department_id": f.Department.ID,
		"usage_date":    "2024-06-02",
	}})
	require.Equal(t, http.StatusCreated, status, string(raw))
	record := decode[envelope[model.UsageRecord]](t, raw).Data

	status, raw = s.do(t, call{method: http.MethodGet, path: "/api/v1/usage?department_id=" + f.Department.ID.String()})
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]model.UsageRecord](t, raw), 1)

	status, _ = s.do(t, call{method: http.MethodDelete, path: "/api/v1/usage/" + record.ID.String()})
	assert.Equal(t, http.StatusOK, status)

	status, raw = s.do(t, call{method: http.MethodPost, path: "/api/v1/staff", body: map[string]interface{}{
		"name":  "Nikhil Shah",
		"email": "nikhil@example.com",
	}})
	require.Equal(t, http.StatusCreated, status, string(raw))
	person := decode[envelope[model.Person]](t, raw).Data
	assert.True(t, person.IsActive)

	status, raw = s.do(t, call{method: http.MethodPatch, path: "/api/v1/staff/" + person.ID.String() + "/active", body: map[string]interface{}{"is_active": false}})
	require.Equal(t, http.StatusOK, status)
	assert.False(t, decode[envelope[model.Person]](t, raw).Data.IsActive)

	status, _ = s.do(t, call{method: http.MethodPatch, path: "/api/v1/staff/" + person.ID.String() + "/active", body: map[string]interface{}{}})
	assert.Equal(t, http.StatusBadRequest, status)

	status, raw = s.do(t, call{method: http.MethodGet, path: "/api/v1/staff?search=nikhil"})
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]model.Person](t, raw), 1)

	status, _ = s.do(t, call{method: http.MethodDelete, path: "/api/v1/staff/" + person.ID.String()})
	assert.Equal(t, http.StatusOK, status)
}

func TestDashboardEndpoints(t *testing.T) {
	s := newServer(t)
	p := s.fixture.Product(t, s.db, "Towels", 10, 20)
	s.fixture.Transaction(t, s.db, p, model.TxPurchase, 10, model.Today(time.Now()), "123456.78")

	status, raw := s.do(t, call{method: http.MethodGet, path: "/api/v1/dashboard/stats"})
	require.Equal(t, http.StatusOK, status, string(raw))
	stats := decode[map[string]interface{}](t, raw)
	assert.Equal(t, float64(1), stats["total_products"])
	assert.Equal(t, float64(1), stats["low_stock_items"])
	assert.Equal(t, float64(1), stats["today_orders"])
	assert.Equal(t, "₹1,23,456.78", stats["revenue_display"])

	status, raw = s.do(t, call{method: http.MethodGet, path: "/api/v1/dashboard/recent-activity"})
	require.Equal(t, http.StatusOK, status)
	activity := decode[[]service.Activity](t, raw)
	require.Len(t, activity, 1)
	assert.Equal(t, "+10", activity[0].Qty)

	status, raw = s.do(t, call{method: http.MethodGet, path: "/api/v1/dashboard/stock-movement?days=3"})
	require.Equal(t, http.StatusOK, status)
	movement := decode[struct {
		Period int                     `json:"period"`
		Data   []service.StockMovement `json:"data"`
	}](t, raw)
	assert.Equal(t, 3, movement.Period)
	require.Len(t, movement.Data, 3)
	assert.Equal(t, 10, movement.Data[2].Inbound)

	status, _ = s.do(t, call{method: http.MethodGet, path: "/api/v1/dashboard/stock-movement?days=500"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = s.do(t, call{method: http.MethodGet, path: "/api/v1/dashboard/stock-movement?days=0"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, raw = s.do(t, call{method: http.MethodGet, path: "/api/v1/dashboard/stock-movement"})
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[struct {
		Data []service.StockMovement `json:"data"`
	}](t, raw).Data, service.DefaultMovementDays)

	status, _ = s.do(t, call{method: http.MethodGet, path: "/api/v1/dashboard/recent-activity?limit=0"})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestPrivilegesEnforced(t *testing.T) {
	s := newServer(t)
	p := s.fixture.Product(t, s.db, "Towels", 10, 2)

	status, _ := s.do(t, call{method: http.MethodGet, path: "/api/v1/products", headers: bearer(t, model.RoleViewer)})
	assert.Equal(t, http.StatusOK, status)

	status, _ = s.do(t, call{method: http.MethodDelete, path: "/api/v1/products/" + p.ID.String(), headers: bearer(t, model.RoleViewer)})
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = s.do(t, call{method: http.MethodPost, path: "/api/v1/usage", headers: bearer(t, model.RoleClerk), body: map[string]interface{}{
		"product_id":    p.ID,
		"quantity":      1,
		"person_id":     s.fixture.Person.ID,
		"department_id": s.fixture.Department.ID,
		"usage_date":    "2024-06-02",
	}})
	assert.Equal(t, http.StatusCreated, status)

	status, _ = s.do(t, call{method: http.MethodPost, path: "/api/v1/staff", headers: bearer(t, model.RoleClerk), body: map[string]interface{}{"name": "X"}})
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = s.do(t, call{method: http.MethodGet, path: "/ws", headers: map[string]string{}})
	assert.Equal(t, http.StatusUpgradeRequired, status)
}
