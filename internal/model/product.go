package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	BaseModel
	Description string          `gorm:"type:varchar(255);not null" json:"description"`
	VendorID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"vendor_id"`
	Vendor      *Vendor         `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"category_id"`
	Category    *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Unit        string          `gorm:"type:varchar(20);not null" json:"unit"`
	Rate        decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"rate"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	MinStock    int             `gorm:"not null" json:"min_stock"`
	IsActive    bool            `gorm:"not null;index" json:"is_active"`
}

func (p *Product) CategoryName() string {
	if p.Category == nil {
		return ""
	}
	return p.Category.Name
}

func (p *Product) VendorName() string {
	if p.Vendor == nil {
		return ""
	}
	return p.Vendor.Name
}

// StockStatus is the derived classification shown as a badge next to each product.
type StockStatus string

const (
	InStock    StockStatus = "in_stock"
	LowStock   StockStatus = "low_stock"
	OutOfStock StockStatus = "out_of_stock"
)

func (s StockStatus) Valid() bool {
	switch s {
	case InStock, LowStock, OutOfStock:
		return true
	}
	return false
}

// StockStatusFor classifies a quantity against its minimum stock threshold.
func StockStatusFor(quantity, minStock int) StockStatus {
	switch {
	case quantity <= 0:
		return OutOfStock
	case quantity <= minStock:
		return LowStock
	default:
		return InStock
	}
}

func (p *Product) StockStatus() StockStatus {
	return StockStatusFor(p.Quantity, p.MinStock)
}

// ProductStockStatus is the flattened read model listing products with their stock status.
type ProductStockStatus struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	MinStock    int             `json:"min_stock"`
	Unit        string          `json:"unit"`
	Rate        decimal.Decimal `json:"rate"`
	StockStatus StockStatus     `json:"stock_status"`
	Category    string          `json:"category"`
	Vendor      string          `json:"vendor"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (p *Product) ToStockStatus() ProductStockStatus {
	return ProductStockStatus{
		ID:          p.ID,
		Description: p.Description,
		Quantity:    p.Quantity,
		MinStock:    p.MinStock,
		Unit:        p.Unit,
		Rate:        p.Rate,
		StockStatus: p.StockStatus(),
		Category:    p.CategoryName(),
		Vendor:      p.VendorName(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type CreateProductRequest struct {
	Description string          `json:"description" validate:"notblank"`
	VendorID    uuid.UUID       `json:"vendor_id" validate:"uuid_required"`
	CategoryID  uuid.UUID       `json:"category_id" validate:"uuid_required"`
	Unit        string          `json:"unit" validate:"notblank,max=20"`
	Rate        decimal.Decimal `json:"rate"`
	Quantity    int             `json:"quantity" validate:"min=0"`
	MinStock    int             `json:"min_stock" validate:"min=0"`
}

// UpdateProductRequest applies only the fields that are present.
type UpdateProductRequest struct {
	Description *string          `json:"description" validate:"omitnil,notblank"`
	VendorID    *uuid.UUID       `json:"vendor_id"`
	CategoryID  *uuid.UUID       `json:"category_id"`
	Unit        *string          `json:"unit" validate:"omitnil,notblank,max=20"`
	Rate        *decimal.Decimal `json:"rate"`
	Quantity    *int             `json:"quantity" validate:"omitnil,min=0"`
	MinStock    *int             `json:"min_stock" validate:"omitnil,min=0"`
	IsActive    *bool            `json:"is_active"`
}
