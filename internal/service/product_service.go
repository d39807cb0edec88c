package service

import (
	"context"
	"fmt"

	"aquamanager/internal/model"
	"aquamanager/internal/repository"
	"aquamanager/pkg/search"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ProductService interface {
	List(ctx context.Context, term string, includeInactive bool) ([]model.Product, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Product, error)
	Create(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error)
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateProductRequest) (*model.Product, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
	StockStatus(ctx context.Context, status model.StockStatus, term string) ([]model.ProductStockStatus, error)
}

type productService struct {
	productRepo  repository.ProductRepository
	vendorRepo   repository.VendorRepository
	categoryRepo repository.CategoryRepository
	db           *gorm.DB
	notifier     Notifier
	log          *zap.Logger
}

func NewProductService(pRepo repository.ProductRepository, vRepo repository.VendorRepository, cRepo repository.CategoryRepository, db *gorm.DB, notifier Notifier, log *zap.Logger) ProductService {
	return &productService{
		productRepo:  pRepo,
		vendorRepo:   vRepo,
		categoryRepo: cRepo,
		db:           db,
		notifier:     notifier,
		log:          log.Named("product"),
	}
}

func productFields(p model.Product) []string {
	return []string{p.Description, p.CategoryName()}
}

func (s *productService) List(ctx context.Context, term string, includeInactive bool) ([]model.Product, error) {
	products, err := s.productRepo.FindAll(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	return search.Filter(products, term, productFields), nil
}

func (s *productService) Get(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "product")
	}
	return product, nil
}

func (s *productService) Create(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	if req.Rate.IsNegative() {
		return nil, fmt.Errorf("%w: rate must not be negative", ErrValidation)
	}
	if err := s.checkRefs(ctx, &req.VendorID, &req.CategoryID); err != nil {
		return nil, err
	}

	product := &model.Product{
		Description: trim(req.Description),
		VendorID:    req.VendorID,
		CategoryID:  req.CategoryID,
		Unit:        trim(req.Unit),
		Rate:        req.Rate,
		Quantity:    req.Quantity,
		MinStock:    req.MinStock,
		IsActive:    true,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, storeError(err, "product")
	}

	s.log.Info("product created", zap.String("id", product.ID.String()), zap.String("description", product.Description))
	s.notifier.Publish(invalidate("product_created", product.ID.String(), KeyProducts, KeyProductStockStatus, KeyDashboardStats))
	return s.Get(ctx, product.ID)
}

// checkRefs rejects a vendor or category id that does not exist. Nil ids are skipped.
func (s *productService) checkRefs(ctx context.Context, vendorID, categoryID *uuid.UUID) error {
	if vendorID != nil {
		if _, err := s.vendorRepo.FindByID(ctx, *vendorID); err != nil {
			return refError(err, "vendor", *vendorID)
		}
	}
	if categoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *categoryID); err != nil {
			return refError(err, "category", *categoryID)
		}
	}
	return nil
}

// Update writes only the fields present in req. The row is locked for the duration so stock
// movements recorded meanwhile keep their quantity.
func (s *productService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateProductRequest) (*model.Product, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	if req.Rate != nil && req.Rate.IsNegative() {
		return nil, fmt.Errorf("%w: rate must not be negative", ErrValidation)
	}
	if err := s.checkRefs(ctx, req.VendorID, req.CategoryID); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Description != nil {
		fields["description"] = trim(*req.Description)
	}
	if req.VendorID != nil {
		fields["vendor_id"] = *req.VendorID
	}
	if req.CategoryID != nil {
		fields["category_id"] = *req.CategoryID
	}
	if req.Unit != nil {
		fields["unit"] = trim(*req.Unit)
	}
	if req.Rate != nil {
		fields["rate"] = *req.Rate
	}
	if req.Quantity != nil {
		fields["quantity"] = *req.Quantity
	}
	if req.MinStock != nil {
		fields["min_stock"] = *req.MinStock
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.productRepo.FindForUpdate(tx, id); err != nil {
			return storeError(err, "product")
		}
		if len(fields) == 0 {
			return nil
		}
		return storeError(s.productRepo.Update(tx, id, fields), "product")
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Publish(invalidate("product_updated", id.String(), KeyProducts, KeyProductStockStatus, KeyDashboardStats))
	return s.Get(ctx, id)
}

// Deactivate soft-deletes the product; its transactions and usage records stay intact.
func (s *productService) Deactivate(ctx context.Context, id uuid.UUID) error {
	if err := s.productRepo.Deactivate(ctx, id); err != nil {
		return storeError(err, "product")
	}
	s.log.Info("product deactivated", zap.String("id", id.String()))
	s.notifier.Publish(invalidate("product_deactivated", id.String(), KeyProducts, KeyProductStockStatus, KeyDashboardStats))
	return nil
}

// StockStatus lists active products with their derived status, optionally narrowed to one status.
func (s *productService) StockStatus(ctx context.Context, status model.StockStatus, term string) ([]model.ProductStockStatus, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("%w: unknown stock status %q", ErrValidation, status)
	}

	products, err := s.productRepo.FindAll(ctx, false)
	if err != nil {
		return nil, err
	}

	rows := make([]model.ProductStockStatus, 0, len(products))
	for i := range products {
		row := products[i].ToStockStatus()
		if status != "" && row.StockStatus != status {
			continue
		}
		rows = append(rows, row)
	}
	return search.Filter(rows, term, func(r model.ProductStockStatus) []string {
		return []string{r.Description, r.Category, r.Vendor}
	}), nil
}
