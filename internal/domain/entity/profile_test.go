package entity_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mensonones/service-pro-api/internal/domain/entity"
)

func testAddress() entity.Address {
	return entity.Address{
		Street:       "Rua das Flores",
		Neighborhood: "Centro",
		Number:       "100",
		City:         "Fortaleza",
		State:        "CE",
		PostalCode:   "60000-000",
		Country:      "Brasil",
	}
}

func TestNewClientProfile(t *testing.T) {
	userID := uuid.New()

	profile, err := entity.NewClientProfile(userID, "85992563678", "client@example.com", testAddress())

	require.NoError(t, err)
	assert.Equal(t, userID, profile.UserID)
	assert.Equal(t, entity.RoleClient, profile.Role)
	assert.True(t, profile.IsClient())
	assert.False(t, profile.IsProvider())
}

func TestNewProviderProfile(t *testing.T) {
	profile, err := entity.NewProviderProfile(uuid.New(), "85992563678", "provider@example.com", testAddress())

	require.NoError(t, err)
	assert.Equal(t, entity.RoleProvider, profile.Role)
	assert.True(t, profile.IsProvider())
}

func TestNewProfile_RejectsInvalidPhone(t *testing.T) {
	cases := []string{
		"123456789",    // no mobile marker, wrong length
		"8599256367",   // too short
		"859925636789", // too long
		"85892563678",  // third digit is not 9
		"",
	}

	for _, phone := range cases {
		_, err := entity.NewClientProfile(uuid.New(), phone, "client@example.com", testAddress())
		require.Error(t, err, "phone %q", phone)
		assert.ErrorIs(t, err, entity.ErrInvalidPhone)
	}
}

func TestNewProfile_AcceptsValidPhone(t *testing.T) {
	_, err := entity.NewClientProfile(uuid.New(), "85992563678", "client@example.com", testAddress())
	require.NoError(t, err)
}

func TestNewProfile_RejectsInvalidEmail(t *testing.T) {
	_, err := entity.NewProviderProfile(uuid.New(), "85992563678", "not-an-email", testAddress())
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrInvalidEmail)
}
