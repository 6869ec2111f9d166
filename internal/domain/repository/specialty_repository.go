package repository

import (
	"hello-doctors/internal/domain/entity"

	"gorm.io/gorm"
)

type SpecialtyRepository interface {
	Create(db *gorm.DB, specialty *entity.Specialty) error
	FindAll(db *gorm.DB, activeOnly bool) ([]entity.Specialty, error)
	FindByID(db *gorm.DB, id uint) (*entity.Specialty, error)
	// CountDoctors returns how many doctor profiles reference the specialty.
	CountDoctors(db *gorm.DB, specialtyID uint) (int64, error)
	Update(db *gorm.DB, specialty *entity.Specialty) error
	Delete(db *gorm.DB, id uint) (int64, error)
}
