package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mensonones/service-pro-api/internal/delivery/dto"
	"github.com/mensonones/service-pro-api/internal/domain/entity"
	"github.com/mensonones/service-pro-api/internal/usecase"
	"github.com/mensonones/service-pro-api/pkg/apperr"
)

type profileFixture struct {
	uc       usecase.ProfileUsecase
	users    *fakeUserRepo
	profiles *fakeProfileRepo
}

func newProfileFixture() *profileFixture {
	f := &profileFixture{
		users:    newFakeUserRepo(),
		profiles: newFakeProfileRepo(),
	}
	f.uc = usecase.NewProfileUsecase(testLogger(), f.users, f.profiles)
	return f
}

func (f *profileFixture) seedUser(username, email string) *entity.User {
	user := &entity.User{ID: uuid.New(), Username: username, Email: email}
	f.users.add(user)
	return user
}

func profileRequest(userID uuid.UUID, email string) *dto.CreateProfileRequest {
	return &dto.CreateProfileRequest{
		UserID: userID,
		Phone:  "85992563678",
		Email:  email,
		Address: dto.AddressRequest{
			Street:       "Rua das Flores",
			Neighborhood: "Centro",
			Number:       "120",
			City:         "Fortaleza",
			State:        "CE",
			PostalCode:   "60000-000",
			Country:      "BR",
		},
	}
}

func TestProfileCreate_EndpointDecidesRole(t *testing.T) {
	f := newProfileFixture()
	ctx := context.Background()

	clientUser := f.seedUser("maria", "maria@example.com")
	req := profileRequest(clientUser.ID, "maria@example.com")
	req.Role = "provider" // must be ignored

	created, err := f.uc.CreateClient(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, string(entity.RoleClient), created.Role)

	providerUser := f.seedUser("joao", "joao@example.com")
	req = profileRequest(providerUser.ID, "joao@example.com")
	req.Role = "client" // must be ignored

	created, err = f.uc.CreateProvider(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, string(entity.RoleProvider), created.Role)
}

func TestProfileCreate_UnknownUser(t *testing.T) {
	f := newProfileFixture()

	_, err := f.uc.CreateClient(context.Background(), profileRequest(uuid.New(), "ghost@example.com"))
	assert.ErrorIs(t, err, usecase.ErrUserNotFound)
}

func TestProfileCreate_OneProfilePerUser(t *testing.T) {
	f := newProfileFixture()
	ctx := context.Background()
	user := f.seedUser("maria", "maria@example.com")

	_, err := f.uc.CreateClient(ctx, profileRequest(user.ID, "maria@example.com"))
	require.NoError(t, err)

	_, err = f.uc.CreateProvider(ctx, profileRequest(user.ID, "maria2@example.com"))
	assert.ErrorIs(t, err, usecase.ErrUserAlreadyBound)
	assert.True(t, apperr.IsIntegrity(err))
}

func TestProfileCreate_UniqueEmail(t *testing.T) {
	f := newProfileFixture()
	ctx := context.Background()

	first := f.seedUser("maria", "maria@example.com")
	_, err := f.uc.CreateClient(ctx, profileRequest(first.ID, "shared@example.com"))
	require.NoError(t, err)

	second := f.seedUser("joao", "joao@example.com")
	_, err = f.uc.CreateClient(ctx, profileRequest(second.ID, "shared@example.com"))
	assert.ErrorIs(t, err, usecase.ErrEmailAlreadyInUse)
}

func TestProfileCreate_InvalidPhone(t *testing.T) {
	f := newProfileFixture()
	user := f.seedUser("maria", "maria@example.com")

	req := profileRequest(user.ID, "maria@example.com")
	req.Phone = "123456789"

	_, err := f.uc.CreateClient(context.Background(), req)
	assert.ErrorIs(t, err, entity.ErrInvalidPhone)
	assert.True(t, apperr.IsValidation(err))
}

func TestProfileList_RoleProjections(t *testing.T) {
	f := newProfileFixture()
	ctx := context.Background()

	clientUser := f.seedUser("maria", "maria@example.com")
	_, err := f.uc.CreateClient(ctx, profileRequest(clientUser.ID, "maria@example.com"))
	require.NoError(t, err)

	providerUser := f.seedUser("joao", "joao@example.com")
	_, err = f.uc.CreateProvider(ctx, profileRequest(providerUser.ID, "joao@example.com"))
	require.NoError(t, err)

	clients, total, err := f.uc.ListClients(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, clients, 1)
	assert.Equal(t, string(entity.RoleClient), clients[0].Role)

	providers, total, err := f.uc.ListProviders(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, providers, 1)
	assert.Equal(t, string(entity.RoleProvider), providers[0].Role)

	// The two projections partition the profile table
	assert.NotEqual(t, clients[0].ID, providers[0].ID)

	all, total, err := f.uc.ListAll(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, all, 2)
}

func TestProfileGetByID(t *testing.T) {
	f := newProfileFixture()
	ctx := context.Background()
	user := f.seedUser("maria", "maria@example.com")

	created, err := f.uc.CreateClient(ctx, profileRequest(user.ID, "maria@example.com"))
	require.NoError(t, err)

	found, err := f.uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "85992563678", found.Phone)

	_, err = f.uc.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, usecase.ErrProfileNotFound)
}

func TestProfileDelete_AlwaysDenied(t *testing.T) {
	f := newProfileFixture()
	ctx := context.Background()
	user := f.seedUser("maria", "maria@example.com")

	created, err := f.uc.CreateClient(ctx, profileRequest(user.ID, "maria@example.com"))
	require.NoError(t, err)

	err = f.uc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, usecase.ErrProfileDeleteDenied)

	still, err := f.uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, still.ID)
}
