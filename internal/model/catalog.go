package model

// Category groups products (e.g. "Pool Supplies", "Electrical").
type Category struct {
	BaseModel
	Name        string  `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Description *string `gorm:"type:text" json:"description"`
}

type Vendor struct {
	BaseModel
	Name          string  `gorm:"type:varchar(255);not null" json:"name"`
	ContactPerson *string `gorm:"type:varchar(255)" json:"contact_person"`
	Email         *string `gorm:"type:varchar(255)" json:"email"`
	Phone         *string `gorm:"type:varchar(50)" json:"phone"`
	Address       *string `gorm:"type:text" json:"address"`
}

type Department struct {
	BaseModel
	Name        string  `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Description *string `gorm:"type:text" json:"description"`
}

type CreateCategoryRequest struct {
	Name        string  `json:"name" validate:"notblank"`
	Description *string `json:"description"`
}

type CreateVendorRequest struct {
	Name          string  `json:"name" validate:"notblank"`
	ContactPerson *string `json:"contact_person"`
	Email         *string `json:"email" validate:"omitnil,email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
}

type CreateDepartmentRequest struct {
	Name        string  `json:"name" validate:"notblank"`
	Description *string `json:"description"`
}
