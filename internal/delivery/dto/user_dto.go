package dto

// Request DTOs

type UpdateUserRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,min=2"`
	Phone    *string `json:"phone" validate:"omitempty,max=20"`
	Address  *string `json:"address" validate:"omitempty"`
	IsActive *bool   `json:"is_active" validate:"omitempty"`
}
