package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePaymentMethodRequest struct {
	Name string `json:"name" validate:"required,min=2"`
}

type UpdatePaymentMethodRequest struct {
	Name string `json:"name" validate:"required,min=2"`
}

// Response DTOs

type PaymentMethodResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
