package converter

import (
	"hello-doctors/internal/delivery/dto"
	"hello-doctors/internal/domain/entity"
	"hello-doctors/internal/service"
)

// SpecialtyConverter shapes specialties for display; the stored image path
// goes through the same three-tier URL resolution as profile images.
type SpecialtyConverter struct {
	images *service.ImageResolver
}

func NewSpecialtyConverter(images *service.ImageResolver) *SpecialtyConverter {
	return &SpecialtyConverter{images: images}
}

func (c *SpecialtyConverter) ToResponse(specialty *entity.Specialty) *dto.SpecialtyResponse {
	if specialty == nil {
		return nil
	}

	return &dto.SpecialtyResponse{
		ID:          specialty.ID,
		Name:        specialty.Name,
		Slug:        specialty.Slug,
		Icon:        specialty.Icon,
		ImageURL:    c.images.Resolve(specialty.ImagePath),
		Description: specialty.Description,
		IsActive:    specialty.IsActive,
		SortOrder:   specialty.SortOrder,
	}
}

func (c *SpecialtyConverter) ToResponses(specialties []entity.Specialty) []dto.SpecialtyResponse {
	responses := make([]dto.SpecialtyResponse, len(specialties))
	for i := range specialties {
		responses[i] = *c.ToResponse(&specialties[i])
	}
	return responses
}
