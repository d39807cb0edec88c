package service

import (
	"context"

	"aquamanager/internal/model"
	"aquamanager/internal/repository"
	"aquamanager/pkg/search"

	"github.com/google/uuid"
)

type StaffService interface {
	List(ctx context.Context, term string) ([]model.Person, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Person, error)
	Create(ctx context.Context, req *model.CreatePersonRequest) (*model.Person, error)
	Update(ctx context.Context, id uuid.UUID, req *model.UpdatePersonRequest) (*model.Person, error)
	SetActive(ctx context.Context, id uuid.UUID, isActive bool) (*model.Person, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type staffService struct {
	personRepo     repository.PersonRepository
	departmentRepo repository.DepartmentRepository
	notifier       Notifier
}

func NewStaffService(pRepo repository.PersonRepository, dRepo repository.DepartmentRepository, notifier Notifier) StaffService {
	return &staffService{personRepo: pRepo, departmentRepo: dRepo, notifier: notifier}
}

func (s *staffService) checkDepartment(ctx context.Context, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	if _, err := s.departmentRepo.FindByID(ctx, *id); err != nil {
		return refError(err, "department", *id)
	}
	return nil
}

func (s *staffService) List(ctx context.Context, term string) ([]model.Person, error) {
	people, err := s.personRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return search.Filter(people, term, func(p model.Person) []string {
		return []string{p.Name, p.DepartmentName()}
	}), nil
}

func (s *staffService) Get(ctx context.Context, id uuid.UUID) (*model.Person, error) {
	person, err := s.personRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "person")
	}
	return person, nil
}

func (s *staffService) Create(ctx context.Context, req *model.CreatePersonRequest) (*model.Person, error) {
	req.Email = blankToNil(req.Email)
	if err := validate(req); err != nil {
		return nil, err
	}
	if err := s.checkDepartment(ctx, req.DepartmentID); err != nil {
		return nil, err
	}

	person := &model.Person{
		Name:         trim(req.Name),
		Email:        req.Email,
		Phone:        blankToNil(req.Phone),
		DepartmentID: req.DepartmentID,
		IsActive:     true,
	}
	if req.IsActive != nil {
		person.IsActive = *req.IsActive
	}
	if err := s.personRepo.Create(ctx, person); err != nil {
		return nil, storeError(err, "person")
	}

	s.notifier.Publish(invalidate("person_created", person.ID.String(), KeyPeople))
	return s.Get(ctx, person.ID)
}

// Update replaces the editable fields; omitted optional fields are cleared and IsActive is kept when omitted.
func (s *staffService) Update(ctx context.Context, id uuid.UUID, req *model.UpdatePersonRequest) (*model.Person, error) {
	req.Email = blankToNil(req.Email)
	if err := validate(req); err != nil {
		return nil, err
	}
	if err := s.checkDepartment(ctx, req.DepartmentID); err != nil {
		return nil, err
	}

	person, err := s.personRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "person")
	}
	person.Name = trim(req.Name)
	person.Email = req.Email
	person.Phone = blankToNil(req.Phone)
	person.DepartmentID = req.DepartmentID
	person.Department = nil
	if req.IsActive != nil {
		person.IsActive = *req.IsActive
	}
	if err := s.personRepo.Update(ctx, person); err != nil {
		return nil, storeError(err, "person")
	}

	s.notifier.Publish(invalidate("person_updated", id.String(), KeyPeople))
	return s.Get(ctx, id)
}

func (s *staffService) SetActive(ctx context.Context, id uuid.UUID, isActive bool) (*model.Person, error) {
	if err := s.personRepo.SetActive(ctx, id, isActive); err != nil {
		return nil, storeError(err, "person")
	}
	s.notifier.Publish(invalidate("person_updated", id.String(), KeyPeople))
	return s.Get(ctx, id)
}

// Delete removes the person. Transactions and usage records they appear on are kept with person_id cleared.
func (s *staffService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.personRepo.Delete(ctx, id); err != nil {
		return storeError(err, "person")
	}
	s.notifier.Publish(invalidate("person_deleted", id.String(), KeyPeople, KeyUsageRecords, KeyInventoryTransactions))
	return nil
}
