package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

// CreateAppointmentRequest may carry a price, but it is never trusted:
// the stored price always comes from the referenced service.
type CreateAppointmentRequest struct {
	ServiceID       uuid.UUID       `json:"service_id" validate:"required"`
	ClientID        uuid.UUID       `json:"client_id" validate:"required"`
	ProviderID      uuid.UUID       `json:"provider_id" validate:"required"`
	PaymentMethodID uuid.UUID       `json:"payment_method_id" validate:"required"`
	ScheduledAt     time.Time       `json:"scheduled_at" validate:"required"`
	Price           decimal.Decimal `json:"price"`
}

type UpdateAppointmentRequest struct {
	PaymentMethodID uuid.UUID `json:"payment_method_id" validate:"required"`
	ScheduledAt     time.Time `json:"scheduled_at" validate:"required"`
	Status          string    `json:"status" validate:"required,oneof=scheduled completed cancelled"`
}

// BulkActionRequest selects the appointments targeted by an
// administrative batch transition.
type BulkActionRequest struct {
	AppointmentIDs []uuid.UUID `json:"appointment_ids" validate:"required,min=1"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              uuid.UUID              `json:"id"`
	ServiceID       uuid.UUID              `json:"service_id"`
	ClientID        uuid.UUID              `json:"client_id"`
	ProviderID      uuid.UUID              `json:"provider_id"`
	PaymentMethodID uuid.UUID              `json:"payment_method_id"`
	ScheduledAt     time.Time              `json:"scheduled_at"`
	Price           decimal.Decimal        `json:"price"`
	Status          string                 `json:"status"`
	Service         *ServiceResponse       `json:"service,omitempty"`
	Client          *ProfileResponse       `json:"client,omitempty"`
	Provider        *ProfileResponse       `json:"provider,omitempty"`
	PaymentMethod   *PaymentMethodResponse `json:"payment_method,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int64                 `json:"total"`
}

// Bulk outcome categories
const (
	OutcomeError   = "error"
	OutcomeSuccess = "success"
	OutcomeWarning = "warning"
)

// BulkOutcome is one line of a batch-transition report. Partial
// ineligibility is reported as data, never raised as an error.
type BulkOutcome struct {
	Category string `json:"category"`
	Message  string `json:"message"`
	Count    int64  `json:"count"`
}

type BulkActionResponse struct {
	Outcomes []BulkOutcome `json:"outcomes"`
}
