package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type AddressRequest struct {
	Street       string `json:"street" validate:"required"`
	Neighborhood string `json:"neighborhood" validate:"required"`
	Number       string `json:"number" validate:"required"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state" validate:"required"`
	PostalCode   string `json:"postal_code" validate:"required"`
	Country      string `json:"country" validate:"required"`
}

// CreateProfileRequest serves both client and provider creation. The role
// field is accepted but ignored: the endpoint decides the role.
type CreateProfileRequest struct {
	UserID  uuid.UUID      `json:"user_id" validate:"required"`
	Role    string         `json:"role"`
	Phone   string         `json:"phone" validate:"required,brphone"`
	Email   string         `json:"email" validate:"required,email"`
	Address AddressRequest `json:"address" validate:"required"`
}

// Response DTOs

type AddressResponse struct {
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	Number       string `json:"number"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
}

type ProfileResponse struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Username  string          `json:"username,omitempty"`
	Role      string          `json:"role"`
	Phone     string          `json:"phone"`
	Email     string          `json:"email"`
	Address   AddressResponse `json:"address"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type ProfileListResponse struct {
	Profiles []ProfileResponse `json:"profiles"`
	Total    int64             `json:"total"`
}
