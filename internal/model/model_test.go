package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockStatusFor(t *testing.T) {
	tests := []struct {
		quantity, minStock int
		want               StockStatus
	}{
		{0, 10, OutOfStock},
		{-1, 0, OutOfStock},
		{0, 0, OutOfStock},
		{5, 10, LowStock},
		{10, 10, LowStock},
		{11, 10, InStock},
		{1, 0, InStock},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StockStatusFor(tt.quantity, tt.minStock), "qty=%d min=%d", tt.quantity, tt.minStock)
	}
}

func TestTransactionType_Delta(t *testing.T) {
	assert.Equal(t, 5, TxPurchase.Delta(5))
	assert.Equal(t, 5, TxReturn.Delta(5))
	assert.Equal(t, -5, TxIssue.Delta(5))
	assert.Equal(t, -3, TxAdjustment.Delta(-3))
	assert.Equal(t, 3, TxAdjustment.Delta(3))
	assert.Equal(t, 0, TransactionType("transfer").Delta(3))
}

func TestTransactionType_Valid(t *testing.T) {
	for _, tt := range []TransactionType{TxPurchase, TxIssue, TxReturn, TxAdjustment} {
		assert.True(t, tt.Valid())
	}
	assert.False(t, TransactionType("IN").Valid())
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-04-02")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("02-04-2025")
	assert.Error(t, err)
}

func TestToday(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2025, 4, 3, 1, 30, 0, 0, ist)
	assert.Equal(t, time.Date(2025, 4, 3, 0, 0, 0, 0, time.UTC), Today(now))
}

func TestFindRole(t *testing.T) {
	role, ok := FindRole("Manager")
	require.True(t, ok)
	assert.ElementsMatch(t, AllPrivilegeCodes(), role.Privileges)

	clerk, ok := FindRole(RoleClerk)
	require.True(t, ok)
	assert.Contains(t, clerk.Privileges, PrivUsageCreate)
	assert.NotContains(t, clerk.Privileges, PrivStaffDelete)

	_, ok = FindRole("root")
	assert.False(t, ok)
}

func TestProduct_ToStockStatus(t *testing.T) {
	p := Product{
		Description: "Pool Floats",
		Unit:        "PCS",
		Quantity:    12,
		MinStock:    15,
		Category:    &Category{Name: "Toys"},
	}
	s := p.ToStockStatus()
	assert.Equal(t, LowStock, s.StockStatus)
	assert.Equal(t, "Toys", s.Category)
	assert.Equal(t, "", s.Vendor)
}
