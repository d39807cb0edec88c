// Package testutil provides helpers shared by the repository, service and handler tests.
package testutil

import (
	"testing"
	"time"

	"aquamanager/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens an in-memory SQLite database with every table migrated and foreign keys enforced.
// The pool is capped at one connection so all callers see the same database.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))
	return db
}

// Fixture holds one row of each reference table for building products and movements.
type Fixture struct {
	Category   model.Category
	Vendor     model.Vendor
	Department model.Department
	Person     model.Person
}

func Seed(t testing.TB, db *gorm.DB) *Fixture {
	t.Helper()

	f := &Fixture{
		Category:   model.Category{Name: "Filters"},
		Vendor:     model.Vendor{Name: "Blue Water Supplies"},
		Department: model.Department{Name: "Maintenance"},
	}
	require.NoError(t, db.Create(&f.Category).Error)
	require.NoError(t, db.Create(&f.Vendor).Error)
	require.NoError(t, db.Create(&f.Department).Error)

	f.Person = model.Person{Name: "Asha Rao", DepartmentID: &f.Department.ID, IsActive: true}
	require.NoError(t, db.Omit("Department").Create(&f.Person).Error)
	return f
}

// Product inserts an active product with the given stock levels.
func (f *Fixture) Product(t testing.TB, db *gorm.DB, description string, quantity, minStock int) *model.Product {
	t.Helper()

	p := &model.Product{
		Description: description,
		VendorID:    f.Vendor.ID,
		CategoryID:  f.Category.ID,
		Unit:        "PCS",
		Rate:        decimal.RequireFromString("125.50"),
		Quantity:    quantity,
		MinStock:    minStock,
		IsActive:    true,
	}
	require.NoError(t, db.Omit("Vendor", "Category").Create(p).Error)
	return p
}

// Transaction inserts a transaction row without touching product stock.
func (f *Fixture) Transaction(t testing.TB, db *gorm.DB, product *model.Product, txType model.TransactionType, quantity int, date time.Time, total string) *model.InventoryTransaction {
	t.Helper()

	tx := &model.InventoryTransaction{
		ProductID:       product.ID,
		TransactionType: txType,
		Quantity:        quantity,
		TransactionDate: date,
	}
	if total != "" {
		tx.TotalAmount = decimal.NewNullDecimal(decimal.RequireFromString(total))
	}
	require.NoError(t, db.Omit("Product", "Vendor", "Person", "Department").Create(tx).Error)
	return tx
}

// Date is a UTC midnight shortcut.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
