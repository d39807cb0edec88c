package model

import "strings"

// Role codes
const (
	RoleViewer  = "viewer"
	RoleClerk   = "clerk"
	RoleManager = "manager"
	RoleService = "service"
)

// Role is a named privilege set a token can be issued for.
type Role struct {
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Privileges  []string `json:"privileges"`
}

var viewPrivileges = []string{
	PrivCatalogView, PrivProductView, PrivTransactionView, PrivUsageView, PrivStaffView, PrivDashboardView,
}

// DefaultRoles lists the roles tokens can be issued for.
var DefaultRoles = []Role{
	{
		Code:        RoleViewer,
		Name:        "Viewer",
		Description: "Read-only access to every screen",
		Privileges:  viewPrivileges,
	},
	{
		Code:        RoleClerk,
		Name:        "Store Clerk",
		Description: "Records transactions and usage",
		Privileges: append(append([]string{}, viewPrivileges...),
			PrivTransactionCreate, PrivUsageCreate),
	},
	{
		Code:        RoleManager,
		Name:        "Inventory Manager",
		Description: "Full access to inventory and staff",
		Privileges:  AllPrivilegeCodes(),
	},
}

// FindRole looks a role up by code, ignoring case.
func FindRole(code string) (Role, bool) {
	for _, r := range DefaultRoles {
		if strings.EqualFold(r.Code, code) {
			return r, true
		}
	}
	return Role{}, false
}
