package converter

import (
	"github.com/mensonones/service-pro-api/internal/delivery/dto"
	"github.com/mensonones/service-pro-api/internal/domain/entity"
)

// PaymentMethodToResponse converts a PaymentMethod entity to DTO
func PaymentMethodToResponse(method *entity.PaymentMethod) *dto.PaymentMethodResponse {
	if method == nil {
		return nil
	}

	return &dto.PaymentMethodResponse{
		ID:        method.ID,
		Name:      method.Name,
		CreatedAt: method.CreatedAt,
		UpdatedAt: method.UpdatedAt,
	}
}

// PaymentMethodsToResponses converts a slice of PaymentMethod entities to DTOs
func PaymentMethodsToResponses(methods []entity.PaymentMethod) []dto.PaymentMethodResponse {
	responses := make([]dto.PaymentMethodResponse, len(methods))
	for i, method := range methods {
		responses[i] = *PaymentMethodToResponse(&method)
	}
	return responses
}
