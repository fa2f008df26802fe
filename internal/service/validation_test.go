package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/school-admin-api/pkg/errors"
)

func TestValidatorUsesJSONNames(t *testing.T) {
	v := NewValidator()
	req := validStudentRequest()
	req.FirstName = ""
	req.Guardian.Name = ""

	err := v.Struct(req, "invalid student payload")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, "invalid student payload", appErr.Message)
	assert.Equal(t, "first_name is a required field", appErr.Details["first_name"])
	assert.Equal(t, "name is a required field", appErr.Details["guardian.name"])
}

func TestValidatorCustomTags(t *testing.T) {
	v := NewValidator()
	type probe struct {
		Section    string `json:"section" validate:"section"`
		Department string `json:"department" validate:"department"`
		Status     string `json:"status" validate:"status"`
	}

	assert.NoError(t, v.Struct(probe{Section: "C", Department: "Languages", Status: "Inactive"}, "bad"))

	err := v.Struct(probe{Section: "c", Department: "Art", Status: "Graduated"}, "bad")
	appErr := appErrors.FromError(err)
	assert.Equal(t, "section must be one of A, B, C, D", appErr.Details["section"])
	assert.Equal(t, "department must be a known department", appErr.Details["department"])
	assert.Equal(t, "status must be Active or Inactive", appErr.Details["status"])
}

func TestNewValidatorIsIndependent(t *testing.T) {
	a, b := NewValidator(), NewValidator()
	req := validStudentRequest()
	req.Section = "Z"
	assert.Equal(t, appErrors.FromError(a.Struct(req, "x")).Details, appErrors.FromError(b.Struct(req, "x")).Details)
}
