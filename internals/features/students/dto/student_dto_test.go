// file: internals/features/students/dto/student_dto_test.go
package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func TestCreateStudent_EmailRequiresPassword(t *testing.T) {
	req := CreateStudentRequest{
		Name:  "Ali Veli",
		Email: strp("ali@example.com"),
	}
	req.Normalize()
	errs := req.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "password", errs[0].Field)
}

func TestCreateStudent_NoEmailNoPasswordIsFine(t *testing.T) {
	req := CreateStudentRequest{Name: "Ali Veli"}
	req.Normalize()
	assert.Empty(t, req.Validate())
}

func TestCreateStudent_EmailWithPasswordIsFine(t *testing.T) {
	req := CreateStudentRequest{
		Name:     "Ali Veli",
		Email:    strp("  ALI@Example.com "),
		Password: strp("sifre1234"),
	}
	req.Normalize()
	assert.Empty(t, req.Validate())
	require.NotNil(t, req.Email)
	assert.Equal(t, "ali@example.com", *req.Email, "email is trimmed and lower-cased")
}

func TestNormalize_EmptyStringsBecomeNil(t *testing.T) {
	req := CreateStudentRequest{
		Name:  "Ali Veli",
		Phone: strp("   "),
		Notes: strp(""),
	}
	req.Normalize()
	assert.Nil(t, req.Phone)
	assert.Nil(t, req.Notes)
}
