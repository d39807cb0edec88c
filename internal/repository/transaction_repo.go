package repository

import (
	"context"
	"time"

	"aquamanager/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TransactionRepository interface {
	FindAll(ctx context.Context, filter model.TransactionFilter) ([]model.InventoryTransaction, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.InventoryTransaction, error)
	FindForUpdate(tx *gorm.DB, id uuid.UUID) (*model.InventoryTransaction, error)
	FindBetween(ctx context.Context, start, end time.Time) ([]model.InventoryTransaction, error)
	Recent(ctx context.Context, limit int) ([]model.InventoryTransaction, error)
	Create(tx *gorm.DB, t *model.InventoryTransaction) error
	Update(tx *gorm.DB, t *model.InventoryTransaction) error
	Delete(tx *gorm.DB, id uuid.UUID) error
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

func (r *transactionRepo) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Product").
		Preload("Vendor").
		Preload("Person").
		Preload("Department")
}

func (r *transactionRepo) FindAll(ctx context.Context, filter model.TransactionFilter) ([]model.InventoryTransaction, error) {
	q := r.withRelations(ctx)
	if filter.StartDate != nil {
		q = q.Where("transaction_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		q = q.Where("transaction_date <= ?", *filter.EndDate)
	}
	if filter.Type != "" {
		q = q.Where("transaction_type = ?", filter.Type)
	}
	if filter.ProductID != nil {
		q = q.Where("product_id = ?", *filter.ProductID)
	}

	var transactions []model.InventoryTransaction
	err := q.Order("transaction_date DESC").Order("created_at DESC").Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.InventoryTransaction, error) {
	var t model.InventoryTransaction
	if err := r.withRelations(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *transactionRepo) FindForUpdate(tx *gorm.DB, id uuid.UUID) (*model.InventoryTransaction, error) {
	var t model.InventoryTransaction
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// FindBetween returns transactions dated within [start, end], both inclusive.
func (r *transactionRepo) FindBetween(ctx context.Context, start, end time.Time) ([]model.InventoryTransaction, error) {
	var transactions []model.InventoryTransaction
	err := r.db.WithContext(ctx).
		Where("transaction_date >= ? AND transaction_date <= ?", start, end).
		Order("transaction_date").
		Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepo) Recent(ctx context.Context, limit int) ([]model.InventoryTransaction, error) {
	var transactions []model.InventoryTransaction
	err := r.db.WithContext(ctx).
		Preload("Product").
		Order("created_at DESC").
		Limit(limit).
		Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepo) Create(tx *gorm.DB, t *model.InventoryTransaction) error {
	return tx.Omit(clause.Associations).Create(t).Error
}

func (r *transactionRepo) Update(tx *gorm.DB, t *model.InventoryTransaction) error {
	return tx.Omit(clause.Associations).Save(t).Error
}

func (r *transactionRepo) Delete(tx *gorm.DB, id uuid.UUID) error {
	result := tx.Delete(&model.InventoryTransaction{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
