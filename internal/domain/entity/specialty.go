package entity

import "time"

// Specialty represents a medical specialty. Cannot be deleted while any
// doctor profile references it.
type Specialty struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Slug        string    `gorm:"type:varchar(120);index;not null" json:"slug"`
	Icon        string    `gorm:"type:varchar(50)" json:"icon,omitempty"`
	ImagePath   string    `gorm:"type:varchar(500)" json:"image_path,omitempty"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	IsActive    *bool     `gorm:"not null;default:true" json:"is_active"`
	SortOrder   int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Specialty) TableName() string {
	return "specialties"
}
