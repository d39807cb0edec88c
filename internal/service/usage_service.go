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

// UsageService records stock consumed internally. Usage always draws stock down.
type UsageService interface {
	List(ctx context.Context, filter model.UsageFilter) ([]model.UsageRecord, error)
	Get(ctx context.Context, id uuid.UUID) (*model.UsageRecord, error)
	Create(ctx context.Context, req *model.CreateUsageRequest) (*model.UsageRecord, error)
	Update(ctx context.Context, id uuid.UUID, req *model.CreateUsageRequest) (*model.UsageRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type usageService struct {
	productRepo repository.ProductRepository
	usageRepo   repository.UsageRepository
	db          *gorm.DB
	notifier    Notifier
	log         *zap.Logger
}

func NewUsageService(pRepo repository.ProductRepository, uRepo repository.UsageRepository, db *gorm.DB, notifier Notifier, log *zap.Logger) UsageService {
	return &usageService{
		productRepo: pRepo,
		usageRepo:   uRepo,
		db:          db,
		notifier:    notifier,
		log:         log.Named("usage"),
	}
}

func usageFields(u model.UsageRecord) []string {
	fields := make([]string, 0, 4)
	if u.Product != nil {
		fields = append(fields, u.Product.Description)
	}
	if u.Person != nil {
		fields = append(fields, u.Person.Name)
	}
	if u.Department != nil {
		fields = append(fields, u.Department.Name)
	}
	if u.Purpose != nil {
		fields = append(fields, *u.Purpose)
	}
	return fields
}

func (s *usageService) List(ctx context.Context, filter model.UsageFilter) ([]model.UsageRecord, error) {
	records, err := s.usageRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return search.Filter(records, filter.Search, usageFields), nil
}

func (s *usageService) Get(ctx context.Context, id uuid.UUID) (*model.UsageRecord, error) {
	u, err := s.usageRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "usage record")
	}
	return u, nil
}

func buildUsage(req *model.CreateUsageRequest) (*model.UsageRecord, error) {
	req.Purpose = blankToNil(req.Purpose)
	if err := validate(req); err != nil {
		return nil, err
	}
	date, err := model.ParseDate(req.UsageDate)
	if err != nil {
		return nil, fmt.Errorf("%w: usage_date: %v", ErrValidation, err)
	}
	return &model.UsageRecord{
		ProductID:    req.ProductID,
		Quantity:     req.Quantity,
		PersonID:     req.PersonID,
		DepartmentID: req.DepartmentID,
		UsageDate:    date,
		Purpose:      req.Purpose,
	}, nil
}

// requireActive rejects usage drawn from a product that has been deactivated.
func (s *usageService) requireActive(tx *gorm.DB, productID uuid.UUID) error {
	product, err := s.productRepo.FindForUpdate(tx, productID)
	if err != nil {
		return storeError(err, "product")
	}
	if !product.IsActive {
		return fmt.Errorf("%w: %s", ErrInactiveProduct, product.Description)
	}
	return nil
}

func (s *usageService) Create(ctx context.Context, req *model.CreateUsageRequest) (*model.UsageRecord, error) {
	u, err := buildUsage(req)
	if err != nil {
		return nil, err
	}

	var stock int
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.requireActive(tx, u.ProductID); err != nil {
			return err
		}
		product, err := adjustStock(tx, s.productRepo, u.ProductID, -u.Quantity)
		if err != nil {
			return err
		}
		stock = product.Quantity
		return storeError(s.usageRepo.Create(tx, u), "usage record")
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("usage recorded",
		zap.String("id", u.ID.String()),
		zap.Int("quantity", u.Quantity),
		zap.Int("stock", stock),
	)
	s.notifier.Publish(invalidate("usage_created", u.ID.String(), withStockKeys(KeyUsageRecords)...))
	return s.Get(ctx, u.ID)
}

// Update replaces the record. Moving usage onto another product requires that product to be active.
func (s *usageService) Update(ctx context.Context, id uuid.UUID, req *model.CreateUsageRequest) (*model.UsageRecord, error) {
	u, err := buildUsage(req)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.usageRepo.FindForUpdate(tx, id)
		if err != nil {
			return storeError(err, "usage record")
		}
		if existing.ProductID != u.ProductID {
			if err := s.requireActive(tx, u.ProductID); err != nil {
				return err
			}
		}
		if err := rebalance(tx, s.productRepo, existing.ProductID, -existing.Quantity, u.ProductID, -u.Quantity); err != nil {
			return err
		}
		u.ID = existing.ID
		u.CreatedAt = existing.CreatedAt
		return storeError(s.usageRepo.Update(tx, u), "usage record")
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("usage updated", zap.String("id", id.String()))
	s.notifier.Publish(invalidate("usage_updated", id.String(), withStockKeys(KeyUsageRecords)...))
	return s.Get(ctx, id)
}

// Delete removes the record and returns its quantity to stock.
func (s *usageService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.usageRepo.FindForUpdate(tx, id)
		if err != nil {
			return storeError(err, "usage record")
		}
		if _, err := adjustStock(tx, s.productRepo, existing.ProductID, existing.Quantity); err != nil {
			return err
		}
		return storeError(s.usageRepo.Delete(tx, id), "usage record")
	})
	if err != nil {
		return err
	}

	s.log.Info("usage deleted", zap.String("id", id.String()))
	s.notifier.Publish(invalidate("usage_deleted", id.String(), withStockKeys(KeyUsageRecords)...))
	return nil
}
