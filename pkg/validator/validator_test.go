package validator

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	ID    uuid.UUID `validate:"uuid_required"`
	Name  string    `validate:"notblank"`
	Email string    `validate:"omitempty,email"`
	Date  string    `validate:"required,datetime=2006-01-02"`
}

func TestValidateStruct_Valid(t *testing.T) {
	errs := ValidateStruct(&sample{ID: uuid.New(), Name: "Pool Noodles", Date: "2025-04-02"})
	assert.Empty(t, errs)
}

func TestValidateStruct_ReportsEachField(t *testing.T) {
	errs := ValidateStruct(&sample{Name: "   ", Email: "not-an-email", Date: "02/04/2025"})
	require.Len(t, errs, 4)

	tags := map[string]string{}
	for _, e := range errs {
		tags[e.FailedField] = e.Tag
	}
	assert.Equal(t, "uuid_required", tags["sample.ID"])
	assert.Equal(t, "notblank", tags["sample.Name"])
	assert.Equal(t, "email", tags["sample.Email"])
	assert.Equal(t, "datetime", tags["sample.Date"])
	assert.Equal(t, "field 'sample.ID' failed on tag 'uuid_required'", errs[0].String())
}
