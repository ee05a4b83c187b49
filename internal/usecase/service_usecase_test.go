package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mensonones/service-pro-api/internal/delivery/dto"
	"github.com/mensonones/service-pro-api/internal/domain/entity"
	"github.com/mensonones/service-pro-api/internal/usecase"
	"github.com/mensonones/service-pro-api/pkg/apperr"
)

// recordingCache tracks catalog cache traffic without a real Redis.
type recordingCache struct {
	store       map[uuid.UUID]*entity.Service
	invalidated []uuid.UUID
}

func newRecordingCache() *recordingCache {
	return &recordingCache{store: make(map[uuid.UUID]*entity.Service)}
}

func (c *recordingCache) Get(_ context.Context, id uuid.UUID) *entity.Service {
	return c.store[id]
}

func (c *recordingCache) Set(_ context.Context, svc *entity.Service) {
	c.store[svc.ID] = svc
}

func (c *recordingCache) Invalidate(_ context.Context, id uuid.UUID) {
	delete(c.store, id)
	c.invalidated = append(c.invalidated, id)
}

func TestServiceCreate_PriceBounds(t *testing.T) {
	uc := usecase.NewServiceUsecase(testLogger(), newFakeServiceRepo(), newRecordingCache())
	ctx := context.Background()

	tests := []struct {
		name    string
		price   decimal.Decimal
		wantErr bool
	}{
		{"below minimum", decimal.NewFromFloat(0.99), true},
		{"zero", decimal.Zero, true},
		{"negative", decimal.NewFromInt(-5), true},
		{"at minimum", decimal.NewFromInt(1), false},
		{"typical", decimal.NewFromInt(30), false},
		{"at maximum", decimal.NewFromInt(9999), false},
		{"above maximum", decimal.NewFromFloat(9999.01), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Create(ctx, &dto.CreateServiceRequest{Name: "Haircut", Price: tt.price})
			if tt.wantErr {
				assert.ErrorIs(t, err, entity.ErrPriceOutOfRange)
				assert.True(t, apperr.IsValidation(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestServiceUpdate_InvalidatesCache(t *testing.T) {
	repo := newFakeServiceRepo()
	cache := newRecordingCache()
	uc := usecase.NewServiceUsecase(testLogger(), repo, cache)
	ctx := context.Background()

	created, err := uc.Create(ctx, &dto.CreateServiceRequest{Name: "Haircut", Price: decimal.NewFromInt(30)})
	require.NoError(t, err)

	// Warm the cache
	_, err = uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, cache.Get(ctx, created.ID))

	updated, err := uc.Update(ctx, created.ID, &dto.UpdateServiceRequest{Name: "Haircut", Price: decimal.NewFromInt(20)})
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(decimal.NewFromInt(20)))

	assert.Nil(t, cache.Get(ctx, created.ID), "price edits must evict the cached row")
	assert.Contains(t, cache.invalidated, created.ID)
}

func TestServiceGetByID_ServesFromCache(t *testing.T) {
	repo := newFakeServiceRepo()
	cache := newRecordingCache()
	uc := usecase.NewServiceUsecase(testLogger(), repo, cache)
	ctx := context.Background()

	created, err := uc.Create(ctx, &dto.CreateServiceRequest{Name: "Haircut", Price: decimal.NewFromInt(30)})
	require.NoError(t, err)

	_, err = uc.GetByID(ctx, created.ID)
	require.NoError(t, err)

	// Remove the row from storage; the cached copy must still answer
	require.NoError(t, repo.Delete(ctx, created.ID))
	found, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestServiceGetAll_Search(t *testing.T) {
	repo := newFakeServiceRepo()
	uc := usecase.NewServiceUsecase(testLogger(), repo, newRecordingCache())
	ctx := context.Background()

	_, err := uc.Create(ctx, &dto.CreateServiceRequest{Name: "Haircut", Price: decimal.NewFromInt(30)})
	require.NoError(t, err)
	_, err = uc.Create(ctx, &dto.CreateServiceRequest{Name: "Massage", Price: decimal.NewFromInt(80)})
	require.NoError(t, err)

	matched, total, err := uc.GetAll(ctx, "hair", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, matched, 1)
	assert.Equal(t, "Haircut", matched[0].Name)

	all, total, err := uc.GetAll(ctx, "", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, all, 2)
}

func TestServiceDelete(t *testing.T) {
	repo := newFakeServiceRepo()
	cache := newRecordingCache()
	uc := usecase.NewServiceUsecase(testLogger(), repo, cache)
	ctx := context.Background()

	created, err := uc.Create(ctx, &dto.CreateServiceRequest{Name: "Haircut", Price: decimal.NewFromInt(30)})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, created.ID))
	assert.Contains(t, cache.invalidated, created.ID)

	err = uc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, usecase.ErrServiceNotFound)
}
