package repository

import (
	"context"

	"aquamanager/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UsageRepository interface {
	FindAll(ctx context.Context, filter model.UsageFilter) ([]model.UsageRecord, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.UsageRecord, error)
	FindForUpdate(tx *gorm.DB, id uuid.UUID) (*model.UsageRecord, error)
	Create(tx *gorm.DB, u *model.UsageRecord) error
	Update(tx *gorm.DB, u *model.UsageRecord) error
	Delete(tx *gorm.DB, id uuid.UUID) error
}

type usageRepo struct {
	db *gorm.DB
}

func NewUsageRepo(db *gorm.DB) UsageRepository {
	return &usageRepo{db}
}

func (r *usageRepo) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Product").
		Preload("Person").
		Preload("Department")
}

func (r *usageRepo) FindAll(ctx context.Context, filter model.UsageFilter) ([]model.UsageRecord, error) {
	q := r.withRelations(ctx)
	if filter.StartDate != nil {
		q = q.Where("usage_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		q = q.Where("usage_date <= ?", *filter.EndDate)
	}
	if filter.PersonID != nil {
		q = q.Where("person_id = ?", *filter.PersonID)
	}
	if filter.DepartmentID != nil {
		q = q.Where("department_id = ?", *filter.DepartmentID)
	}
	if filter.ProductID != nil {
		q = q.Where("product_id = ?", *filter.ProductID)
	}

	var records []model.UsageRecord
	err := q.Order("usage_date DESC").Order("created_at DESC").Find(&records).Error
	return records, err
}

func (r *usageRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.UsageRecord, error) {
	var u model.UsageRecord
	if err := r.withRelations(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usageRepo) FindForUpdate(tx *gorm.DB, id uuid.UUID) (*model.UsageRecord, error) {
	var u model.UsageRecord
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usageRepo) Create(tx *gorm.DB, u *model.UsageRecord) error {
	return tx.Omit(clause.Associations).Create(u).Error
}

func (r *usageRepo) Update(tx *gorm.DB, u *model.UsageRecord) error {
	return tx.Omit(clause.Associations).Save(u).Error
}

func (r *usageRepo) Delete(tx *gorm.DB, id uuid.UUID) error {
	result := tx.Delete(&model.UsageRecord{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
