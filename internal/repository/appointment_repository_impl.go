package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mensonones/service-pro-api/internal/domain/entity"
	domainRepo "github.com/mensonones/service-pro-api/internal/domain/repository"
)

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Client").
		Preload("Provider").
		Preload("PaymentMethod").
		Where("id = ?", id).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindAll(ctx context.Context, filter domainRepo.AppointmentFilter, limit, offset int) ([]entity.Appointment, int64, error) {
	var appointments []entity.Appointment
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Appointment{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.ClientID != uuid.Nil {
		query = query.Where("client_id = ?", filter.ClientID)
	}
	if filter.ProviderID != uuid.Nil {
		query = query.Where("provider_id = ?", filter.ProviderID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Service").
		Preload("Client").
		Preload("Provider").
		Preload("PaymentMethod").
		Limit(limit).Offset(offset).
		Order("scheduled_at DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, 0, err
	}

	return appointments, total, nil
}

// UpdateVersioned writes the appointment only if nobody else has written it
// since it was read. The WHERE version guard and the version bump happen in
// one statement, so two concurrent saves cannot both pass the status check:
// the loser sees 0 affected rows.
func (r *appointmentRepository) UpdateVersioned(ctx context.Context, appointment *entity.Appointment) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("id = ? AND version = ?", appointment.ID, appointment.Version).
		Updates(map[string]interface{}{
			"service_id":        appointment.ServiceID,
			"client_id":         appointment.ClientID,
			"provider_id":       appointment.ProviderID,
			"scheduled_at":      appointment.ScheduledAt,
			"price":             appointment.Price,
			"payment_method_id": appointment.PaymentMethodID,
			"status":            appointment.Status,
			"version":           gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected > 0 {
		appointment.Version++
	}
	return result.RowsAffected, result.Error
}

// MarkCompleted is the privileged bulk path: one UPDATE over all matching
// rows with no status precondition, so it can pull a cancelled appointment
// back to completed.
func (r *appointmentRepository) MarkCompleted(ctx context.Context, ids []uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{
			"status":  entity.AppointmentStatusCompleted,
			"version": gorm.Expr("version + 1"),
		})
	return result.RowsAffected, result.Error
}

// CancelScheduled cancels the still-scheduled subset in a single
// conditional UPDATE, so the reported count always matches the rows that
// actually changed.
func (r *appointmentRepository) CancelScheduled(ctx context.Context, ids []uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("id IN ? AND status = ?", ids, entity.AppointmentStatusScheduled).
		Updates(map[string]interface{}{
			"status":  entity.AppointmentStatusCancelled,
			"version": gorm.Expr("version + 1"),
		})
	return result.RowsAffected, result.Error
}
