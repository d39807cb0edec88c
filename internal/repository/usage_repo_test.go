package repository

import (
	"context"
	"testing"

	"aquamanager/internal/model"
	"aquamanager/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsageRepo_FindAllFilters(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	repo := NewUsageRepo(db)
	ctx := context.Background()
	p := f.Product(t, db, "Towels", 40, 10)

	records := []*model.UsageRecord{
		{ProductID: p.ID, Quantity: 2, PersonID: &f.Person.ID, UsageDate: testutil.Date(2024, 4, 1)},
		{ProductID: p.ID, Quantity: 3, DepartmentID: &f.Department.ID, UsageDate: testutil.Date(2024, 4, 2)},
		{ProductID: p.ID, Quantity: 4, UsageDate: testutil.Date(2024, 4, 3)},
	}
	for _, r := range records {
		require.NoError(t, repo.Create(db, r))
	}

	all, err := repo.FindAll(ctx, model.UsageFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, 4, all[0].Quantity)

	byPerson, err := repo.FindAll(ctx, model.UsageFilter{PersonID: &f.Person.ID})
	require.NoError(t, err)
	require.Len(t, byPerson, 1)
	require.NotNil(t, byPerson[0].Person)
	assert.Equal(t, "Asha Rao", byPerson[0].Person.Name)

	byDepartment, err := repo.FindAll(ctx, model.UsageFilter{DepartmentID: &f.Department.ID})
	require.NoError(t, err)
	assert.Len(t, byDepartment, 1)

	start := testutil.Date(2024, 4, 2)
	fromSecond, err := repo.FindAll(ctx, model.UsageFilter{StartDate: &start})
	require.NoError(t, err)
	assert.Len(t, fromSecond, 2)
}
