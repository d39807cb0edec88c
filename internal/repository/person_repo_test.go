package repository

import (
	"context"
	"testing"

	"aquamanager/internal/model"
	"aquamanager/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestPersonRepo_Lifecycle(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	repo := NewPersonRepo(db)
	ctx := context.Background()

	p := &model.Person{Name: "Bilal Khan", DepartmentID: &f.Department.ID, IsActive: true}
	require.NoError(t, repo.Create(ctx, p))

	people, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, people, 2)
	assert.Equal(t, "Asha Rao", people[0].Name)
	assert.Equal(t, "Maintenance", people[1].DepartmentName())

	require.NoError(t, repo.SetActive(ctx, p.ID, false))
	loaded, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, loaded.IsActive)

	loaded.DepartmentID = nil
	loaded.Department = nil
	require.NoError(t, repo.Update(ctx, loaded))
	loaded, err = repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, loaded.DepartmentID)

	require.NoError(t, repo.Delete(ctx, p.ID))
	_, err = repo.FindByID(ctx, p.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPersonRepo_MissingRows(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewPersonRepo(db)
	ctx := context.Background()

	assert.ErrorIs(t, repo.SetActive(ctx, uuid.New(), true), gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, uuid.New()), gorm.ErrRecordNotFound)
}

func TestCatalogRepos(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	categories := NewCategoryRepo(db)
	require.NoError(t, categories.Create(ctx, &model.Category{Name: "Pumps"}))
	require.NoError(t, categories.Create(ctx, &model.Category{Name: "Chemicals"}))
	list, err := categories.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Chemicals", list[0].Name)

	err = categories.Create(ctx, &model.Category{Name: "Pumps"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	vendors := NewVendorRepo(db)
	require.NoError(t, vendors.Create(ctx, &model.Vendor{Name: "Aqua Traders"}))
	vlist, err := vendors.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, vlist, 1)

	departments := NewDepartmentRepo(db)
	d := &model.Department{Name: "Front Office"}
	require.NoError(t, departments.Create(ctx, d))
	found, err := departments.FindByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "Front Office", found.Name)
}
