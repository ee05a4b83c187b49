package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// ErrFinalizedStatusChange is returned when a save tries to move a
// completed or cancelled appointment to a different status.
var ErrFinalizedStatusChange = errors.New("cannot change status of a finalized appointment")

// Appointment books a client with a provider for a catalog service.
//
// The stored price is system-derived from the service (never
// caller-supplied) and, while still scheduled, is corrected downward when
// the service price drops. Version is the optimistic lock token bumped on
// every write.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ServiceID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"service_id"`
	ClientID        uuid.UUID         `gorm:"type:uuid;not null;index" json:"client_id"`
	ProviderID      uuid.UUID         `gorm:"type:uuid;not null;index" json:"provider_id"`
	ScheduledAt     time.Time         `gorm:"not null" json:"scheduled_at"`
	Price           decimal.Decimal   `gorm:"type:decimal(10,2);not null" json:"price"`
	PaymentMethodID uuid.UUID         `gorm:"type:uuid;not null" json:"payment_method_id"`
	Status          AppointmentStatus `gorm:"type:appointment_status;not null;default:'scheduled';index" json:"status"`
	Version         int64             `gorm:"not null;default:1" json:"version"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Service       Service       `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	Client        Profile       `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Provider      Profile       `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
	PaymentMethod PaymentMethod `gorm:"foreignKey:PaymentMethodID" json:"payment_method,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsNew checks if the appointment has not been persisted yet
func (a *Appointment) IsNew() bool {
	return a.ID == uuid.Nil
}

// IsScheduled checks if the appointment is still open
func (a *Appointment) IsScheduled() bool {
	return a.Status == AppointmentStatusScheduled
}

// IsFinalized checks if the appointment reached a terminal status
func (a *Appointment) IsFinalized() bool {
	return a.Status == AppointmentStatusCompleted || a.Status == AppointmentStatusCancelled
}

// AdoptServicePrice derives the stored price from the referenced service.
//
// A new appointment always takes the service price, overwriting whatever
// the caller supplied. A persisted appointment that is still scheduled is
// ratcheted down when the service now costs less; it is never raised.
func (a *Appointment) AdoptServicePrice(servicePrice decimal.Decimal) {
	if a.IsNew() {
		a.Price = servicePrice
		return
	}
	if a.IsScheduled() && servicePrice.LessThan(a.Price) {
		a.Price = servicePrice
	}
}

// ValidateStatusChange guards the terminal states. The comparison runs
// against the row currently persisted, not the in-memory value, so an
// illegitimate transition cannot be smuggled through a stale copy.
// Re-saving with the same status is allowed.
func (a *Appointment) ValidateStatusChange(persisted *Appointment) error {
	if persisted == nil {
		return nil
	}
	if persisted.IsFinalized() && persisted.Status != a.Status {
		return ErrFinalizedStatusChange
	}
	return nil
}
