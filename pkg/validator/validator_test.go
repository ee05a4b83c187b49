package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mensonones/service-pro-api/pkg/validator"
)

type phonePayload struct {
	Phone string `validate:"required,brphone"`
}

func TestBRPhoneTag(t *testing.T) {
	v := validator.NewValidator()

	valid := []string{"85992563678", "11987654321"}
	for _, phone := range valid {
		assert.NoError(t, v.Validate(phonePayload{Phone: phone}), phone)
	}

	invalid := []string{"123456789", "8599256367", "859925636789", "85892563678", "abc92563678"}
	for _, phone := range invalid {
		assert.Error(t, v.Validate(phonePayload{Phone: phone}), phone)
	}
}

func TestFormatValidationErrors(t *testing.T) {
	v := validator.NewValidator()

	err := v.Validate(phonePayload{Phone: "123"})
	require.Error(t, err)

	fields := v.FormatValidationErrors(err)
	assert.Contains(t, fields, "phone")
}
