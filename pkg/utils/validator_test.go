package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Count   *int   `json:"count" validate:"required,gt=0"`
	Private string `validate:"max=3"`
}

func TestValidateStruct(t *testing.T) {
	count := 0
	errs := ValidateStruct(sampleRequest{Name: "a", Email: "nope", Count: &count, Private: "toolong"})

	assert.Equal(t, map[string]string{
		"name":    "Minimum is 2",
		"email":   "Invalid email format",
		"count":   "Must be greater than 0",
		"Private": "Maximum is 3",
	}, errs)
}

func TestValidateStruct_Valid(t *testing.T) {
	count := 1
	assert.Nil(t, ValidateStruct(sampleRequest{Name: "ok", Count: &count}))
}

func TestValidateStruct_MissingPointer(t *testing.T) {
	errs := ValidateStruct(&sampleRequest{Name: "ok"})
	assert.Equal(t, map[string]string{"count": "This field is required"}, errs)
}

func TestFormatValidationErrors(t *testing.T) {
	got := FormatValidationErrors(map[string]string{"b": "second", "a": "first"})
	assert.Equal(t, "a: first; b: second", got)
}

func TestParseID(t *testing.T) {
	id, ok := ParseID("42")
	assert.True(t, ok)
	assert.Equal(t, 42, id)

	for _, s := range []string{"", "0", "-1", "abc", "1.5"} {
		_, ok := ParseID(s)
		assert.False(t, ok, s)
	}
}
