package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DoctorProfile represents doctor-specific profile data. A profile exists
// only for users with the doctor role; the owning user carries the account
// state (is_active) while the profile carries the directory state
// (is_verified, is_available_online).
type DoctorProfile struct {
	ID                uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID            uuid.UUID        `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	SpecializationID  *uint            `gorm:"index" json:"specialization_id,omitempty"`
	LicenseNumber     *string          `gorm:"type:varchar(50);uniqueIndex" json:"license_number,omitempty"`
	Qualification     string           `gorm:"type:varchar(255)" json:"qualification,omitempty"`
	ExperienceYears   *int             `json:"experience_years,omitempty"`
	ConsultationFee   *decimal.Decimal `gorm:"type:decimal(10,2)" json:"consultation_fee,omitempty"`
	Bio               string           `gorm:"type:text" json:"bio,omitempty"`
	ProfileImage      string           `gorm:"type:varchar(500)" json:"profile_image,omitempty"`
	Website           string           `gorm:"type:varchar(255)" json:"website,omitempty"`
	IsVerified        *bool            `gorm:"not null;default:false;index" json:"is_verified"`
	IsAvailableOnline *bool            `gorm:"not null;default:false" json:"is_available_online"`
	CreatedAt         time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time        `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User         User                `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Specialty    *Specialty          `gorm:"foreignKey:SpecializationID" json:"specialty,omitempty"`
	CityLinks    []DoctorCity        `gorm:"foreignKey:DoctorProfileID" json:"city_links,omitempty"`
	WorkingHours []DoctorWorkingHour `gorm:"foreignKey:DoctorProfileID" json:"working_hours,omitempty"`
	SearchTag    *SearchTag          `gorm:"foreignKey:DoctorProfileID" json:"search_tag,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}

// DoctorCity is the doctor-city association row. It carries the relationship
// plus per-relationship attributes: the practice address in that city,
// nearby landmarks and optional coordinates.
type DoctorCity struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorProfileID uint      `gorm:"not null;index;uniqueIndex:idx_doctor_cities_doctor_city" json:"doctor_profile_id"`
	CityID          uint      `gorm:"not null;index;uniqueIndex:idx_doctor_cities_doctor_city" json:"city_id"`
	Address         string    `gorm:"type:text" json:"address,omitempty"`
	Landmarks       string    `gorm:"type:text" json:"landmarks,omitempty"`
	Latitude        *float64  `gorm:"type:decimal(10,7)" json:"latitude,omitempty"`
	Longitude       *float64  `gorm:"type:decimal(10,7)" json:"longitude,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	City City `gorm:"foreignKey:CityID" json:"city,omitempty"`
}

func (DoctorCity) TableName() string {
	return "doctor_cities"
}
