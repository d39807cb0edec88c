package model

import "github.com/google/uuid"

// Person is a staff member. Usage records and transactions may name the person responsible.
type Person struct {
	BaseModel
	Name         string      `gorm:"type:varchar(255);not null" json:"name"`
	Email        *string     `gorm:"type:varchar(255)" json:"email"`
	Phone        *string     `gorm:"type:varchar(50)" json:"phone"`
	DepartmentID *uuid.UUID  `gorm:"type:uuid;index" json:"department_id"`
	Department   *Department `gorm:"foreignKey:DepartmentID;constraint:OnDelete:SET NULL" json:"department,omitempty"`
	IsActive     bool        `gorm:"not null" json:"is_active"`
}

// TableName keeps the table name used by the hosted schema.
func (Person) TableName() string {
	return "people"
}

// DepartmentName returns the preloaded department's name, or "".
func (p *Person) DepartmentName() string {
	if p.Department == nil {
		return ""
	}
	return p.Department.Name
}

type CreatePersonRequest struct {
	Name         string     `json:"name" validate:"notblank"`
	Email        *string    `json:"email" validate:"omitnil,email"`
	Phone        *string    `json:"phone"`
	DepartmentID *uuid.UUID `json:"department_id"`
	IsActive     *bool      `json:"is_active"`
}

// UpdatePersonRequest replaces the editable fields; IsActive is kept when omitted.
type UpdatePersonRequest struct {
	Name         string     `json:"name" validate:"notblank"`
	Email        *string    `json:"email" validate:"omitnil,email"`
	Phone        *string    `json:"phone"`
	DepartmentID *uuid.UUID `json:"department_id"`
	IsActive     *bool      `json:"is_active"`
}
