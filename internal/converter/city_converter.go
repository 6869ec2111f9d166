package converter

import (
	"hello-doctors/internal/delivery/dto"
	"hello-doctors/internal/domain/entity"
)

// CityToResponse converts a City entity to CityResponse DTO
func CityToResponse(city *entity.City) *dto.CityResponse {
	if city == nil {
		return nil
	}

	return &dto.CityResponse{
		ID:       city.ID,
		Name:     city.Name,
		Slug:     city.Slug,
		State:    city.State,
		IsActive: city.IsActive,
	}
}

// CitiesToResponses converts a slice of City entities to CityResponse DTOs
func CitiesToResponses(cities []entity.City) []dto.CityResponse {
	responses := make([]dto.CityResponse, len(cities))
	for i := range cities {
		responses[i] = *CityToResponse(&cities[i])
	}
	return responses
}
