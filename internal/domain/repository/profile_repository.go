package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/mensonones/service-pro-api/internal/domain/entity"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
	FindByEmail(ctx context.Context, email string) (*entity.Profile, error)
	FindByRole(ctx context.Context, role entity.ProfileRole, limit, offset int) ([]entity.Profile, int64, error)
	FindAll(ctx context.Context, limit, offset int) ([]entity.Profile, int64, error)
}
