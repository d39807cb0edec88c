package service

import (
	"context"

	"aquamanager/internal/model"
	"aquamanager/internal/repository"
)

// CatalogService manages the reference tables products and movements point at.
type CatalogService interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, req *model.CreateCategoryRequest) (*model.Category, error)
	ListVendors(ctx context.Context) ([]model.Vendor, error)
	CreateVendor(ctx context.Context, req *model.CreateVendorRequest) (*model.Vendor, error)
	ListDepartments(ctx context.Context) ([]model.Department, error)
	CreateDepartment(ctx context.Context, req *model.CreateDepartmentRequest) (*model.Department, error)
}

type catalogService struct {
	categoryRepo   repository.CategoryRepository
	vendorRepo     repository.VendorRepository
	departmentRepo repository.DepartmentRepository
	notifier       Notifier
}

func NewCatalogService(cRepo repository.CategoryRepository, vRepo repository.VendorRepository, dRepo repository.DepartmentRepository, notifier Notifier) CatalogService {
	return &catalogService{
		categoryRepo:   cRepo,
		vendorRepo:     vRepo,
		departmentRepo: dRepo,
		notifier:       notifier,
	}
}

func (s *catalogService) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.categoryRepo.FindAll(ctx)
}

func (s *catalogService) CreateCategory(ctx context.Context, req *model.CreateCategoryRequest) (*model.Category, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	category := &model.Category{Name: trim(req.Name), Description: req.Description}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, storeError(err, "category")
	}
	s.notifier.Publish(invalidate("category_created", category.ID.String(), KeyCategories))
	return category, nil
}

func (s *catalogService) ListVendors(ctx context.Context) ([]model.Vendor, error) {
	return s.vendorRepo.FindAll(ctx)
}

func (s *catalogService) CreateVendor(ctx context.Context, req *model.CreateVendorRequest) (*model.Vendor, error) {
	req.Email = blankToNil(req.Email)
	if err := validate(req); err != nil {
		return nil, err
	}
	vendor := &model.Vendor{
		Name:          trim(req.Name),
		ContactPerson: blankToNil(req.ContactPerson),
		Email:         req.Email,
		Phone:         blankToNil(req.Phone),
		Address:       blankToNil(req.Address),
	}
	if err := s.vendorRepo.Create(ctx, vendor); err != nil {
		return nil, storeError(err, "vendor")
	}
	s.notifier.Publish(invalidate("vendor_created", vendor.ID.String(), KeyVendors))
	return vendor, nil
}

func (s *catalogService) ListDepartments(ctx context.Context) ([]model.Department, error) {
	return s.departmentRepo.FindAll(ctx)
}

func (s *catalogService) CreateDepartment(ctx context.Context, req *model.CreateDepartmentRequest) (*model.Department, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	department := &model.Department{Name: trim(req.Name), Description: req.Description}
	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return nil, storeError(err, "department")
	}
	s.notifier.Publish(invalidate("department_created", department.ID.String(), KeyDepartments))
	return department, nil
}
