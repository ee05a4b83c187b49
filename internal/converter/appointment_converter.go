package converter

import (
	"github.com/google/uuid"

	"github.com/mensonones/service-pro-api/internal/delivery/dto"
	"github.com/mensonones/service-pro-api/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		ServiceID:       appointment.ServiceID,
		ClientID:        appointment.ClientID,
		ProviderID:      appointment.ProviderID,
		PaymentMethodID: appointment.PaymentMethodID,
		ScheduledAt:     appointment.ScheduledAt,
		Price:           appointment.Price,
		Status:          string(appointment.Status),
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}

	// Include related records only when preloaded
	if appointment.Service.ID != uuid.Nil {
		response.Service = ServiceToResponse(&appointment.Service)
	}
	if appointment.Client.ID != uuid.Nil {
		response.Client = ProfileToResponse(&appointment.Client)
	}
	if appointment.Provider.ID != uuid.Nil {
		response.Provider = ProfileToResponse(&appointment.Provider)
	}
	if appointment.PaymentMethod.ID != uuid.Nil {
		response.PaymentMethod = PaymentMethodToResponse(&appointment.PaymentMethod)
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		responses[i] = *AppointmentToResponse(&appointment)
	}
	return responses
}
