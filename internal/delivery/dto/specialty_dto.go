package dto

// Request DTOs

type CreateSpecialtyRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Icon        string `json:"icon" validate:"omitempty,max=50"`
	Description string `json:"description" validate:"omitempty"`
	IsActive    *bool  `json:"is_active" validate:"omitempty"`
	SortOrder   int    `json:"sort_order" validate:"omitempty,gte=0"`
}

type UpdateSpecialtyRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=100"`
	Icon        *string `json:"icon" validate:"omitempty,max=50"`
	Description *string `json:"description" validate:"omitempty"`
	IsActive    *bool   `json:"is_active" validate:"omitempty"`
	SortOrder   *int    `json:"sort_order" validate:"omitempty,gte=0"`
}

// Response DTOs

type SpecialtyResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Icon        string  `json:"icon,omitempty"`
	ImageURL    *string `json:"image_url"`
	Description string  `json:"description,omitempty"`
	IsActive    *bool   `json:"is_active"`
	SortOrder   int     `json:"sort_order"`
}
