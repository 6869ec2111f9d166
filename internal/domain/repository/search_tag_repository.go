package repository

import (
	"gorm.io/gorm"
)

type SearchTagRepository interface {
	// Upsert writes the tag string for the profile, inserting or replacing
	// the existing row.
	Upsert(db *gorm.DB, doctorProfileID uint, tags string) error
	DeleteByDoctorProfileID(db *gorm.DB, doctorProfileID uint) error
}
