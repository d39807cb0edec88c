package repository

import (
	"context"

	"aquamanager/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	FindAll(ctx context.Context) ([]model.Category, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Category, error)
	Create(ctx context.Context, category *model.Category) error
}

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db}
}

func (r *categoryRepo) FindAll(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := r.db.WithContext(ctx).Order("name").Find(&categories).Error
	return categories, err
}

func (r *categoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepo) Create(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

type VendorRepository interface {
	FindAll(ctx context.Context) ([]model.Vendor, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Vendor, error)
	Create(ctx context.Context, vendor *model.Vendor) error
}

type vendorRepo struct {
	db *gorm.DB
}

func NewVendorRepo(db *gorm.DB) VendorRepository {
	return &vendorRepo{db}
}

func (r *vendorRepo) FindAll(ctx context.Context) ([]model.Vendor, error) {
	var vendors []model.Vendor
	err := r.db.WithContext(ctx).Order("name").Find(&vendors).Error
	return vendors, err
}

func (r *vendorRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Vendor, error) {
	var vendor model.Vendor
	if err := r.db.WithContext(ctx).First(&vendor, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *vendorRepo) Create(ctx context.Context, vendor *model.Vendor) error {
	return r.db.WithContext(ctx).Create(vendor).Error
}

type DepartmentRepository interface {
	FindAll(ctx context.Context) ([]model.Department, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Department, error)
	Create(ctx context.Context, department *model.Department) error
}

type departmentRepo struct {
	db *gorm.DB
}

func NewDepartmentRepo(db *gorm.DB) DepartmentRepository {
	return &departmentRepo{db}
}

func (r *departmentRepo) FindAll(ctx context.Context) ([]model.Department, error) {
	var departments []model.Department
	err := r.db.WithContext(ctx).Order("name").Find(&departments).Error
	return departments, err
}

func (r *departmentRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Department, error) {
	var department model.Department
	if err := r.db.WithContext(ctx).First(&department, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &department, nil
}

func (r *departmentRepo) Create(ctx context.Context, department *model.Department) error {
	return r.db.WithContext(ctx).Create(department).Error
}
