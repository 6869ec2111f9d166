package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RegisterPatientRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required,min=2"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
	Address  string `json:"address" validate:"omitempty"`
}

// RegisterDoctorRequest is the public self-registration payload. It arrives
// as a multipart form (the profile image rides along); the handler binds
// the fields before validation. The created account stays inactive and the
// profile unverified until an admin approves it.
type RegisterDoctorRequest struct {
	Email             string               `json:"email" validate:"required,email"`
	Password          string               `json:"password" validate:"required,min=6"`
	FullName          string               `json:"full_name" validate:"required,min=2"`
	Phone             string               `json:"phone" validate:"omitempty,max=20"`
	SpecializationID  *uint                `json:"specialization_id" validate:"omitempty"`
	LicenseNumber     string               `json:"license_number" validate:"omitempty,max=50"`
	Qualification     string               `json:"qualification" validate:"omitempty,max=255"`
	ExperienceYears   *int                 `json:"experience_years" validate:"omitempty,gte=0"`
	ConsultationFee   string               `json:"consultation_fee" validate:"omitempty"`
	Bio               string               `json:"bio" validate:"omitempty"`
	Website           string               `json:"website" validate:"omitempty,url"`
	IsAvailableOnline bool                 `json:"is_available_online"`
	Cities            []DoctorCityRequest  `json:"cities" validate:"omitempty,dive"`
	WorkingHours      []WorkingHourRequest `json:"working_hours" validate:"omitempty,dive"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Role      string    `json:"role,omitempty"`
	IsActive  *bool     `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
