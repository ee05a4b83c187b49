package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/mensonones/service-pro-api/internal/domain/entity"
)

type PaymentMethodRepository interface {
	Create(ctx context.Context, method *entity.PaymentMethod) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentMethod, error)
	FindAll(ctx context.Context, search string, limit, offset int) ([]entity.PaymentMethod, int64, error)
	Update(ctx context.Context, method *entity.PaymentMethod) error
	Delete(ctx context.Context, id uuid.UUID) error
}
