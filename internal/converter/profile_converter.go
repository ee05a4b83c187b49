package converter

import (
	"github.com/mensonones/service-pro-api/internal/delivery/dto"
	"github.com/mensonones/service-pro-api/internal/domain/entity"
)

// ProfileToResponse converts a Profile entity to ProfileResponse DTO
func ProfileToResponse(profile *entity.Profile) *dto.ProfileResponse {
	if profile == nil {
		return nil
	}

	return &dto.ProfileResponse{
		ID:       profile.ID,
		UserID:   profile.UserID,
		Username: profile.User.Username,
		Role:     string(profile.Role),
		Phone:    profile.Phone,
		Email:    profile.Email,
		Address: dto.AddressResponse{
			Street:       profile.Address.Street,
			Neighborhood: profile.Address.Neighborhood,
			Number:       profile.Address.Number,
			City:         profile.Address.City,
			State:        profile.Address.State,
			PostalCode:   profile.Address.PostalCode,
			Country:      profile.Address.Country,
		},
		CreatedAt: profile.CreatedAt,
		UpdatedAt: profile.UpdatedAt,
	}
}

// ProfilesToResponses converts a slice of Profile entities to DTOs
func ProfilesToResponses(profiles []entity.Profile) []dto.ProfileResponse {
	responses := make([]dto.ProfileResponse, len(profiles))
	for i, profile := range profiles {
		responses[i] = *ProfileToResponse(&profile)
	}
	return responses
}
