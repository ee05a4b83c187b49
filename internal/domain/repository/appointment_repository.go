package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/mensonones/service-pro-api/internal/domain/entity"
)

// AppointmentFilter narrows listings on the administrative surface.
type AppointmentFilter struct {
	Status     entity.AppointmentStatus
	ClientID   uuid.UUID
	ProviderID uuid.UUID
}

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Appointment, error)
	FindAll(ctx context.Context, filter AppointmentFilter, limit, offset int) ([]entity.Appointment, int64, error)

	// UpdateVersioned writes the row only when its stored version still
	// matches appointment.Version, bumping the version on success.
	// Returns affected rows: 1 = written, 0 = lost the race.
	UpdateVersioned(ctx context.Context, appointment *entity.Appointment) (int64, error)

	// MarkCompleted force-sets status=completed on every matching row in
	// one statement, regardless of current status.
	MarkCompleted(ctx context.Context, ids []uuid.UUID) (int64, error)

	// CancelScheduled cancels only the rows still scheduled, as a single
	// atomic batch. Returns the number of rows actually cancelled.
	CancelScheduled(ctx context.Context, ids []uuid.UUID) (int64, error)
}
