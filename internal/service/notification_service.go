package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mensonones/service-pro-api/internal/domain/entity"
)

// Routing keys for appointment lifecycle tasks
const (
	TaskAppointmentCreated   = "appointment.created"
	TaskAppointmentCompleted = "appointment.completed"
	TaskAppointmentCancelled = "appointment.cancelled"
)

// Publisher hands JSON payloads to the external task broker.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload []byte) error
}

// appointmentTask is the JSON contract consumed by the external worker.
// Timestamps are UTC; scheduled_local carries the configured scheduling
// timezone for human-facing notifications.
type appointmentTask struct {
	AppointmentID  uuid.UUID `json:"appointment_id"`
	ServiceID      uuid.UUID `json:"service_id"`
	ClientID       uuid.UUID `json:"client_id"`
	ProviderID     uuid.UUID `json:"provider_id"`
	Status         string    `json:"status"`
	Price          string    `json:"price"`
	ScheduledAt    time.Time `json:"scheduled_at"`
	ScheduledLocal string    `json:"scheduled_local"`
	EnqueuedAt     time.Time `json:"enqueued_at"`
}

// bulkTask reports an administrative batch transition.
type bulkTask struct {
	AppointmentIDs []uuid.UUID `json:"appointment_ids"`
	Status         string      `json:"status"`
	EnqueuedAt     time.Time   `json:"enqueued_at"`
}

// NotificationService enqueues appointment lifecycle work for the external
// task queue. Publishing is best-effort: a broker failure is logged and
// never blocks or fails the write that triggered it.
type NotificationService struct {
	publisher Publisher
	log       *logrus.Logger
	location  *time.Location
}

func NewNotificationService(publisher Publisher, log *logrus.Logger, timezone string) *NotificationService {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		log.Warnf("Unknown broker timezone %q, falling back to UTC: %+v", timezone, err)
		location = time.UTC
	}

	return &NotificationService{
		publisher: publisher,
		log:       log,
		location:  location,
	}
}

// AppointmentChanged enqueues a task for a single appointment write.
func (s *NotificationService) AppointmentChanged(ctx context.Context, routingKey string, appointment *entity.Appointment) {
	task := appointmentTask{
		AppointmentID:  appointment.ID,
		ServiceID:      appointment.ServiceID,
		ClientID:       appointment.ClientID,
		ProviderID:     appointment.ProviderID,
		Status:         string(appointment.Status),
		Price:          appointment.Price.StringFixed(2),
		ScheduledAt:    appointment.ScheduledAt.UTC(),
		ScheduledLocal: appointment.ScheduledAt.In(s.location).Format(time.RFC3339),
		EnqueuedAt:     time.Now().UTC(),
	}
	s.publish(ctx, routingKey, task)
}

// BulkStatusChanged enqueues a task for an administrative batch transition.
func (s *NotificationService) BulkStatusChanged(ctx context.Context, routingKey string, ids []uuid.UUID, status entity.AppointmentStatus) {
	task := bulkTask{
		AppointmentIDs: ids,
		Status:         string(status),
		EnqueuedAt:     time.Now().UTC(),
	}
	s.publish(ctx, routingKey, task)
}

func (s *NotificationService) publish(ctx context.Context, routingKey string, task interface{}) {
	payload, err := json.Marshal(task)
	if err != nil {
		s.log.Warnf("Failed to marshal task %s: %+v", routingKey, err)
		return
	}

	if err := s.publisher.Publish(ctx, routingKey, payload); err != nil {
		s.log.Warnf("Failed to enqueue task %s (non-fatal): %+v", routingKey, err)
	}
}
