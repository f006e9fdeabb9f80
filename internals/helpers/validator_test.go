// file: internals/helpers/validator_test.go
package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleReq struct {
	Name  string  `validate:"required,min=2"`
	Email string  `validate:"required,email"`
	Phone *string `validate:"omitempty,phone"`
}

func TestValidateStruct_OK(t *testing.T) {
	phone := "+905551234567"
	errs := ValidateStruct(sampleReq{Name: "Ali", Email: "ali@example.com", Phone: &phone})
	assert.Nil(t, errs)
}

func TestValidateStruct_FieldNamesAreCamelCase(t *testing.T) {
	errs := ValidateStruct(sampleReq{Name: "", Email: "not-an-email"})
	require.Len(t, errs, 2)
	assert.Equal(t, "name", errs[0].Field)
	assert.Equal(t, "email", errs[1].Field)
}

func TestValidateStruct_PhoneRule(t *testing.T) {
	bad := "abc"
	errs := ValidateStruct(sampleReq{Name: "Ali", Email: "ali@example.com", Phone: &bad})
	require.Len(t, errs, 1)
	assert.Equal(t, "phone", errs[0].Field)

	short := "12345"
	errs = ValidateStruct(sampleReq{Name: "Ali", Email: "ali@example.com", Phone: &short})
	require.Len(t, errs, 1)

	ok := "05551234567"
	assert.Nil(t, ValidateStruct(sampleReq{Name: "Ali", Email: "ali@example.com", Phone: &ok}))
}

func TestBuildMeta(t *testing.T) {
	meta := BuildMeta(51, Params{Page: 2, PerPage: 25})
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)

	meta = BuildMeta(0, Params{Page: 1, PerPage: 25})
	assert.Equal(t, 0, meta.TotalPages)
	assert.False(t, meta.HasNext)
	assert.False(t, meta.HasPrev)
}
