package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStructReportsJSONFieldNames(t *testing.T) {
	payload := struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}{
		Email:    "not-an-email",
		Password: "short",
	}

	errors := ValidateStruct(payload)
	assert.Len(t, errors, 2)
	assert.Contains(t, errors, "email")
	assert.Contains(t, errors, "password")
}

func TestValidateStructValidPayload(t *testing.T) {
	payload := struct {
		Email string `json:"email" validate:"required,email"`
	}{
		Email: "jane@example.com",
	}

	assert.Empty(t, ValidateStruct(payload))
}
