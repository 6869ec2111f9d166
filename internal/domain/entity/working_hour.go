package entity

import "time"

// DoctorWorkingHour represents a doctor's availability. Either the free-text
// TimingText or the structured day/time fields are populated, not
// necessarily both; historical rows only carry the free-text form.
type DoctorWorkingHour struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorProfileID uint      `gorm:"not null;index" json:"doctor_profile_id"`
	CityID          *uint     `gorm:"index" json:"city_id,omitempty"`
	TimingText      string    `gorm:"type:varchar(255)" json:"timing_text,omitempty"`
	DayOfWeek       *int      `json:"day_of_week,omitempty"`
	OpeningTime     *string   `gorm:"type:time" json:"opening_time,omitempty"`
	ClosingTime     *string   `gorm:"type:time" json:"closing_time,omitempty"`
	IsAvailable     *bool     `gorm:"not null;default:true" json:"is_available"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	City *City `gorm:"foreignKey:CityID" json:"city,omitempty"`
}

func (DoctorWorkingHour) TableName() string {
	return "doctor_working_hours"
}
