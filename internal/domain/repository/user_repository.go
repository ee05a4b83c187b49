package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/mensonones/service-pro-api/internal/domain/entity"
)

type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
