package repository

import (
	"context"

	"aquamanager/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	FindAll(ctx context.Context, includeInactive bool) ([]model.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	FindForUpdate(tx *gorm.DB, id uuid.UUID) (*model.Product, error)
	Update(tx *gorm.DB, id uuid.UUID, fields map[string]interface{}) error
	UpdateQuantity(tx *gorm.DB, id uuid.UUID, quantity int) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	CountActive(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status model.StockStatus) (int64, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(product).Error
}

func (r *productRepo) FindAll(ctx context.Context, includeInactive bool) ([]model.Product, error) {
	var products []model.Product
	q := r.db.WithContext(ctx).Preload("Vendor").Preload("Category")
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}
	err := q.Order("description").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var product model.Product
	if err := r.db.WithContext(ctx).Preload("Vendor").Preload("Category").First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// FindForUpdate loads the product inside tx holding a row lock until the transaction ends.
func (r *productRepo) FindForUpdate(tx *gorm.DB, id uuid.UUID) (*model.Product, error) {
	var product model.Product
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// Update writes only the given columns, so a concurrent stock change to quantity is not overwritten.
func (r *productRepo) Update(tx *gorm.DB, id uuid.UUID, fields map[string]interface{}) error {
	result := tx.Model(&model.Product{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateQuantity takes a *gorm.DB (tx) so it runs inside the caller's transaction.
func (r *productRepo) UpdateQuantity(tx *gorm.DB, id uuid.UUID, quantity int) error {
	return tx.Model(&model.Product{}).
		Where("id = ?", id).
		Update("quantity", quantity).Error
}

// Deactivate is the soft delete for products; history keeps referring to them.
func (r *productRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *productRepo) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

// CountByStatus counts active products in a stock status, using the thresholds of model.StockStatusFor.
func (r *productRepo) CountByStatus(ctx context.Context, status model.StockStatus) (int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Product{}).Where("is_active = ?", true)
	switch status {
	case model.OutOfStock:
		q = q.Where("quantity <= 0")
	case model.LowStock:
		q = q.Where("quantity > 0 AND quantity <= min_stock")
	default:
		q = q.Where("quantity > 0 AND quantity > min_stock")
	}

	var count int64
	err := q.Count(&count).Error
	return count, err
}
