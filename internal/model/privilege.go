package model

// Privilege codes carried in access tokens and checked per route.
const (
	PrivCatalogView   = "catalog:view"
	PrivCatalogCreate = "catalog:create"

	PrivProductView   = "product:view"
	PrivProductCreate = "product:create"
	PrivProductUpdate = "product:update"
	PrivProductDelete = "product:delete"

	PrivTransactionView   = "transaction:view"
	PrivTransactionCreate = "transaction:create"
	PrivTransactionUpdate = "transaction:update"
	PrivTransactionDelete = "transaction:delete"

	PrivUsageView   = "usage:view"
	PrivUsageCreate = "usage:create"
	PrivUsageUpdate = "usage:update"
	PrivUsageDelete = "usage:delete"

	PrivStaffView   = "staff:view"
	PrivStaffCreate = "staff:create"
	PrivStaffUpdate = "staff:update"
	PrivStaffDelete = "staff:delete"

	PrivDashboardView = "dashboard:view"
)

// Privilege describes a code for listings.
type Privilege struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

var DefaultPrivileges = []Privilege{
	{Code: PrivCatalogView, Name: "View Categories, Vendors and Departments"},
	{Code: PrivCatalogCreate, Name: "Create Categories, Vendors and Departments"},
	{Code: PrivProductView, Name: "View Product"},
	{Code: PrivProductCreate, Name: "Create Product"},
	{Code: PrivProductUpdate, Name: "Update Product"},
	{Code: PrivProductDelete, Name: "Deactivate Product"},
	{Code: PrivTransactionView, Name: "View Transaction"},
	{Code: PrivTransactionCreate, Name: "Create Transaction"},
	{Code: PrivTransactionUpdate, Name: "Update Transaction"},
	{Code: PrivTransactionDelete, Name: "Delete Transaction"},
	{Code: PrivUsageView, Name: "View Usage"},
	{Code: PrivUsageCreate, Name: "Record Usage"},
	{Code: PrivUsageUpdate, Name: "Update Usage"},
	{Code: PrivUsageDelete, Name: "Delete Usage"},
	{Code: PrivStaffView, Name: "View Staff"},
	{Code: PrivStaffCreate, Name: "Create Staff"},
	{Code: PrivStaffUpdate, Name: "Update Staff"},
	{Code: PrivStaffDelete, Name: "Delete Staff"},
	{Code: PrivDashboardView, Name: "View Dashboard"},
}

func AllPrivilegeCodes() []string {
	codes := make([]string, len(DefaultPrivileges))
	for i, p := range DefaultPrivileges {
		codes[i] = p.Code
	}
	return codes
}
