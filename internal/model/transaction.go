package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionType string

const (
	TxPurchase   TransactionType = "purchase"
	TxIssue      TransactionType = "issue"
	TxReturn     TransactionType = "return"
	TxAdjustment TransactionType = "adjustment"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TxPurchase, TxIssue, TxReturn, TxAdjustment:
		return true
	}
	return false
}

// Delta is the change a transaction of this type applies to product quantity.
// Adjustments carry their own sign; the other types always use a positive quantity.
func (t TransactionType) Delta(quantity int) int {
	switch t {
	case TxPurchase, TxReturn:
		return quantity
	case TxIssue:
		return -quantity
	case TxAdjustment:
		return quantity
	}
	return 0
}

type InventoryTransaction struct {
	ID              uuid.UUID           `gorm:"type:uuid;primary_key;" json:"id"`
	ProductID       uuid.UUID           `gorm:"type:uuid;not null;index" json:"product_id"`
	Product         *Product            `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	TransactionType TransactionType     `gorm:"type:varchar(20);not null;index" json:"transaction_type"`
	Quantity        int                 `gorm:"not null" json:"quantity"`
	UnitPrice       decimal.NullDecimal `gorm:"type:numeric(12,2)" json:"unit_price"`
	TotalAmount     decimal.NullDecimal `gorm:"type:numeric(14,2)" json:"total_amount"`
	TransactionDate time.Time           `gorm:"type:date;not null;index" json:"transaction_date"`
	VendorID        *uuid.UUID          `gorm:"type:uuid" json:"vendor_id"`
	Vendor          *Vendor             `gorm:"foreignKey:VendorID;constraint:OnDelete:SET NULL" json:"vendor,omitempty"`
	PersonID        *uuid.UUID          `gorm:"type:uuid" json:"person_id"`
	Person          *Person             `gorm:"foreignKey:PersonID;constraint:OnDelete:SET NULL" json:"person,omitempty"`
	DepartmentID    *uuid.UUID          `gorm:"type:uuid" json:"department_id"`
	Department      *Department         `gorm:"foreignKey:DepartmentID;constraint:OnDelete:SET NULL" json:"department,omitempty"`
	ReferenceNumber *string             `gorm:"type:varchar(100)" json:"reference_number"`
	Notes           *string             `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time           `json:"created_at"`
}

func (InventoryTransaction) TableName() string {
	return "inventory_transactions"
}

// StockDelta is the quantity change this transaction applied to its product.
func (t *InventoryTransaction) StockDelta() int {
	return t.TransactionType.Delta(t.Quantity)
}

// CreateTransactionRequest is also used for full updates.
type CreateTransactionRequest struct {
	ProductID       uuid.UUID           `json:"product_id" validate:"uuid_required"`
	TransactionType TransactionType     `json:"transaction_type" validate:"required,oneof=purchase issue return adjustment"`
	Quantity        int                 `json:"quantity" validate:"required"`
	UnitPrice       decimal.NullDecimal `json:"unit_price"`
	TotalAmount     decimal.NullDecimal `json:"total_amount"`
	TransactionDate string              `json:"transaction_date" validate:"required,datetime=2006-01-02"`
	VendorID        *uuid.UUID          `json:"vendor_id"`
	PersonID        *uuid.UUID          `json:"person_id"`
	DepartmentID    *uuid.UUID          `json:"department_id"`
	ReferenceNumber *string             `json:"reference_number" validate:"omitempty,max=100"`
	Notes           *string             `json:"notes"`
}

// TransactionFilter narrows transaction listings. Zero values mean "no filter".
type TransactionFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Type      TransactionType
	ProductID *uuid.UUID
	Search    string
}

func (t *InventoryTransaction) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}
