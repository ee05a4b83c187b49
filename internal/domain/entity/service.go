package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrPriceOutOfRange is returned when a service price falls outside the
// accepted [1, 9999] window.
var ErrPriceOutOfRange = errors.New("service price must be between 1 and 9999")

var (
	// ServiceMinPrice and ServiceMaxPrice bound every catalog price.
	ServiceMinPrice = decimal.NewFromInt(1)
	ServiceMaxPrice = decimal.NewFromInt(9999)
)

// Service is a bookable catalog offering. Its current price is the
// ceiling for any appointment that references it.
type Service struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string          `gorm:"type:varchar(200);not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(7,2);not null" json:"price"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Service) TableName() string {
	return "services"
}

// Validate enforces the catalog price bounds.
func (s *Service) Validate() error {
	if s.Price.LessThan(ServiceMinPrice) || s.Price.GreaterThan(ServiceMaxPrice) {
		return ErrPriceOutOfRange
	}
	return nil
}
