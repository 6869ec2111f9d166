package entity

import "time"

// SearchTag holds the denormalized lowercase token string used by the
// free-text doctor search. One row per doctor profile, regenerated whenever
// a searchable field (name, specialty, bio, qualification) changes.
type SearchTag struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorProfileID uint      `gorm:"not null;uniqueIndex" json:"doctor_profile_id"`
	Tags            string    `gorm:"type:text;not null" json:"tags"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SearchTag) TableName() string {
	return "search_tags"
}
