package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UsageRecord is stock issued for internal use by a person or department.
type UsageRecord struct {
	ID           uuid.UUID   `gorm:"type:uuid;primary_key;" json:"id"`
	ProductID    uuid.UUID   `gorm:"type:uuid;not null;index" json:"product_id"`
	Product      *Product    `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity     int         `gorm:"not null" json:"quantity"`
	PersonID     *uuid.UUID  `gorm:"type:uuid;index" json:"person_id"`
	Person       *Person     `gorm:"foreignKey:PersonID;constraint:OnDelete:SET NULL" json:"person,omitempty"`
	DepartmentID *uuid.UUID  `gorm:"type:uuid;index" json:"department_id"`
	Department   *Department `gorm:"foreignKey:DepartmentID;constraint:OnDelete:SET NULL" json:"department,omitempty"`
	UsageDate    time.Time   `gorm:"type:date;not null;index" json:"usage_date"`
	Purpose      *string     `gorm:"type:text" json:"purpose"`
	CreatedAt    time.Time   `json:"created_at"`
}

// CreateUsageRequest is also used for full updates.
type CreateUsageRequest struct {
	ProductID    uuid.UUID  `json:"product_id" validate:"uuid_required"`
	Quantity     int        `json:"quantity" validate:"gt=0"`
	PersonID     *uuid.UUID `json:"person_id" validate:"required"`
	DepartmentID *uuid.UUID `json:"department_id" validate:"required"`
	UsageDate    string     `json:"usage_date" validate:"required,datetime=2006-01-02"`
	Purpose      *string    `json:"purpose"`
}

type UsageFilter struct {
	StartDate    *time.Time
	EndDate      *time.Time
	PersonID     *uuid.UUID
	DepartmentID *uuid.UUID
	ProductID    *uuid.UUID
	Search       string
}

func (u *UsageRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return
}
