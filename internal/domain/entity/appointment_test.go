package entity_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mensonones/service-pro-api/internal/domain/entity"
)

func TestAppointment_AdoptServicePrice_NewOverwritesCallerPrice(t *testing.T) {
	appointment := &entity.Appointment{
		Price:  decimal.Zero,
		Status: entity.AppointmentStatusScheduled,
	}

	appointment.AdoptServicePrice(decimal.NewFromFloat(30.00))

	assert.True(t, appointment.Price.Equal(decimal.NewFromFloat(30.00)))
}

func TestAppointment_AdoptServicePrice_RatchetsDownWhileScheduled(t *testing.T) {
	appointment := &entity.Appointment{
		ID:     uuid.New(),
		Price:  decimal.NewFromFloat(30.00),
		Status: entity.AppointmentStatusScheduled,
	}

	appointment.AdoptServicePrice(decimal.NewFromFloat(20.00))

	assert.True(t, appointment.Price.Equal(decimal.NewFromFloat(20.00)))
}

func TestAppointment_AdoptServicePrice_NeverRaises(t *testing.T) {
	appointment := &entity.Appointment{
		ID:     uuid.New(),
		Price:  decimal.NewFromFloat(30.00),
		Status: entity.AppointmentStatusScheduled,
	}

	appointment.AdoptServicePrice(decimal.NewFromFloat(45.00))

	assert.True(t, appointment.Price.Equal(decimal.NewFromFloat(30.00)))
}

func TestAppointment_AdoptServicePrice_FinalizedUnchanged(t *testing.T) {
	for _, status := range []entity.AppointmentStatus{
		entity.AppointmentStatusCompleted,
		entity.AppointmentStatusCancelled,
	} {
		appointment := &entity.Appointment{
			ID:     uuid.New(),
			Price:  decimal.NewFromFloat(30.00),
			Status: status,
		}

		appointment.AdoptServicePrice(decimal.NewFromFloat(20.00))

		assert.True(t, appointment.Price.Equal(decimal.NewFromFloat(30.00)), "status %s", status)
	}
}

func TestAppointment_ValidateStatusChange_AllowsScheduledTransitions(t *testing.T) {
	persisted := &entity.Appointment{
		ID:     uuid.New(),
		Status: entity.AppointmentStatusScheduled,
	}

	updated := *persisted
	updated.Status = entity.AppointmentStatusCompleted

	require.NoError(t, updated.ValidateStatusChange(persisted))
}

func TestAppointment_ValidateStatusChange_RejectsLeavingTerminalState(t *testing.T) {
	for _, status := range []entity.AppointmentStatus{
		entity.AppointmentStatusCompleted,
		entity.AppointmentStatusCancelled,
	} {
		persisted := &entity.Appointment{
			ID:     uuid.New(),
			Status: status,
		}

		updated := *persisted
		updated.Status = entity.AppointmentStatusScheduled

		err := updated.ValidateStatusChange(persisted)
		require.Error(t, err)
		assert.ErrorIs(t, err, entity.ErrFinalizedStatusChange)
	}
}

func TestAppointment_ValidateStatusChange_AllowsResavingSameStatus(t *testing.T) {
	persisted := &entity.Appointment{
		ID:     uuid.New(),
		Status: entity.AppointmentStatusCompleted,
	}

	updated := *persisted

	require.NoError(t, updated.ValidateStatusChange(persisted))
}

func TestAppointment_IsFinalized(t *testing.T) {
	assert.False(t, (&entity.Appointment{Status: entity.AppointmentStatusScheduled}).IsFinalized())
	assert.True(t, (&entity.Appointment{Status: entity.AppointmentStatusCompleted}).IsFinalized())
	assert.True(t, (&entity.Appointment{Status: entity.AppointmentStatusCancelled}).IsFinalized())
}
