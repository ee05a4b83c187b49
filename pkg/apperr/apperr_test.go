package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mensonones/service-pro-api/pkg/apperr"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(apperr.Validation("bad value")))
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(apperr.NotFound("missing")))
	assert.Equal(t, apperr.KindIntegrity, apperr.KindOf(apperr.Integrity("duplicate")))
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(apperr.Conflict("stale write")))
	assert.Equal(t, apperr.Kind(""), apperr.KindOf(errors.New("plain")))
}

func TestValidationWrap_KeepsCause(t *testing.T) {
	cause := errors.New("price out of range")
	err := apperr.ValidationWrap(cause)

	assert.True(t, apperr.IsValidation(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, cause.Error(), err.Error())
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("create profile: %w", apperr.Integrity("email already in use"))
	assert.True(t, apperr.IsIntegrity(err))
	assert.False(t, apperr.IsNotFound(err))
}
