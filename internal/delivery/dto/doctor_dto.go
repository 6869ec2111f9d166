package dto

import (
	"github.com/shopspring/decimal"
)

// Request DTOs

type DoctorCityRequest struct {
	CityID    uint     `json:"city_id" validate:"required"`
	Address   string   `json:"address" validate:"omitempty"`
	Landmarks string   `json:"landmarks" validate:"omitempty"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

type WorkingHourRequest struct {
	CityID      *uint   `json:"city_id" validate:"omitempty"`
	TimingText  string  `json:"timing_text" validate:"omitempty,max=255"`
	DayOfWeek   *int    `json:"day_of_week" validate:"omitempty,gte=0,lte=6"`
	OpeningTime *string `json:"opening_time" validate:"omitempty"`
	ClosingTime *string `json:"closing_time" validate:"omitempty"`
	IsAvailable *bool   `json:"is_available" validate:"omitempty"`
}

type CreateDoctorRequest struct {
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
	IsVerified        bool                 `json:"is_verified"`
	Cities            []DoctorCityRequest  `json:"cities" validate:"omitempty,dive"`
	WorkingHours      []WorkingHourRequest `json:"working_hours" validate:"omitempty,dive"`
}

// UpdateDoctorRequest uses pointers so absent fields are left untouched.
// A non-nil Cities replaces the whole city set.
type UpdateDoctorRequest struct {
	Email             *string               `json:"email" validate:"omitempty,email"`
	Password          *string               `json:"password" validate:"omitempty,min=6"`
	FullName          *string               `json:"full_name" validate:"omitempty,min=2"`
	Phone             *string               `json:"phone" validate:"omitempty,max=20"`
	SpecializationID  *uint                 `json:"specialization_id" validate:"omitempty"`
	LicenseNumber     *string               `json:"license_number" validate:"omitempty,max=50"`
	Qualification     *string               `json:"qualification" validate:"omitempty,max=255"`
	ExperienceYears   *int                  `json:"experience_years" validate:"omitempty,gte=0"`
	ConsultationFee   *string               `json:"consultation_fee" validate:"omitempty"`
	Bio               *string               `json:"bio" validate:"omitempty"`
	Website           *string               `json:"website" validate:"omitempty,url"`
	IsAvailableOnline *bool                 `json:"is_available_online" validate:"omitempty"`
	Cities            *[]DoctorCityRequest  `json:"cities" validate:"omitempty,dive"`
	WorkingHours      *[]WorkingHourRequest `json:"working_hours" validate:"omitempty,dive"`
}

// SearchDoctorsRequest carries the public search query string parameters.
type SearchDoctorsRequest struct {
	Search          string
	CityID          uint
	CityName        string
	SpecialtyID     uint
	AvailableOnline bool
	Sort            string
	Page            int
}

// Response DTOs

type DoctorCityResponse struct {
	CityID  uint   `json:"city_id"`
	City    string `json:"city"`
	Address string `json:"address,omitempty"`
}

type WorkingHourResponse struct {
	CityID      *uint   `json:"city_id,omitempty"`
	TimingText  string  `json:"timing_text,omitempty"`
	DayOfWeek   *int    `json:"day_of_week,omitempty"`
	OpeningTime *string `json:"opening_time,omitempty"`
	ClosingTime *string `json:"closing_time,omitempty"`
	IsAvailable *bool   `json:"is_available"`
}

// DoctorSummaryResponse is one row of the public listing.
type DoctorSummaryResponse struct {
	ID                uint                 `json:"id"`
	Name              string               `json:"name"`
	SpecialtyID       *uint                `json:"specialty_id,omitempty"`
	Specialty         string               `json:"specialty,omitempty"`
	ImageURL          *string              `json:"image_url"`
	Bio               string               `json:"bio,omitempty"`
	Cities            []DoctorCityResponse `json:"cities"`
	ExperienceYears   *int                 `json:"experience_years,omitempty"`
	ConsultationFee   *decimal.Decimal     `json:"consultation_fee,omitempty"`
	IsAvailableOnline bool                 `json:"is_available_online"`
	Website           string               `json:"website,omitempty"`
}

type DoctorDetailResponse struct {
	ID                uint                  `json:"id"`
	Name              string                `json:"name"`
	Email             string                `json:"email"`
	Phone             string                `json:"phone,omitempty"`
	SpecialtyID       *uint                 `json:"specialty_id,omitempty"`
	Specialty         string                `json:"specialty,omitempty"`
	LicenseNumber     *string               `json:"license_number,omitempty"`
	Qualification     string                `json:"qualification,omitempty"`
	ExperienceYears   *int                  `json:"experience_years,omitempty"`
	ConsultationFee   *decimal.Decimal      `json:"consultation_fee,omitempty"`
	Bio               string                `json:"bio,omitempty"`
	ImageURL          *string               `json:"image_url"`
	Website           string                `json:"website,omitempty"`
	IsVerified        bool                  `json:"is_verified"`
	IsActive          bool                  `json:"is_active"`
	IsAvailableOnline bool                  `json:"is_available_online"`
	Cities            []DoctorCityResponse  `json:"cities"`
	WorkingHours      []WorkingHourResponse `json:"working_hours"`
}
