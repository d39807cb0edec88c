package repository

import (
	"context"

	"aquamanager/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PersonRepository interface {
	FindAll(ctx context.Context) ([]model.Person, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Person, error)
	Create(ctx context.Context, person *model.Person) error
	Update(ctx context.Context, person *model.Person) error
	SetActive(ctx context.Context, id uuid.UUID, isActive bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type personRepo struct {
	db *gorm.DB
}

func NewPersonRepo(db *gorm.DB) PersonRepository {
	return &personRepo{db}
}

func (r *personRepo) FindAll(ctx context.Context) ([]model.Person, error) {
	var people []model.Person
	err := r.db.WithContext(ctx).Preload("Department").Order("name").Find(&people).Error
	return people, err
}

func (r *personRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Person, error) {
	var person model.Person
	if err := r.db.WithContext(ctx).Preload("Department").First(&person, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *personRepo) Create(ctx context.Context, person *model.Person) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(person).Error
}

func (r *personRepo) Update(ctx context.Context, person *model.Person) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(person).Error
}

func (r *personRepo) SetActive(ctx context.Context, id uuid.UUID, isActive bool) error {
	result := r.db.WithContext(ctx).Model(&model.Person{}).Where("id = ?", id).Update("is_active", isActive)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the person. References from transactions and usage records are cleared by the schema.
func (r *personRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Person{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
