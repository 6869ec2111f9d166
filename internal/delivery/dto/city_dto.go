package dto

// Request DTOs

type CreateCityRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	State    string `json:"state" validate:"omitempty,max=100"`
	IsActive *bool  `json:"is_active" validate:"omitempty"`
}

type UpdateCityRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=2,max=100"`
	State    *string `json:"state" validate:"omitempty,max=100"`
	IsActive *bool   `json:"is_active" validate:"omitempty"`
}

// Response DTOs

type CityResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	State    string `json:"state,omitempty"`
	IsActive *bool  `json:"is_active"`
}
