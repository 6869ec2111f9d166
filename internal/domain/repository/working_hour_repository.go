package repository

import (
	"hello-doctors/internal/domain/entity"

	"gorm.io/gorm"
)

type WorkingHourRepository interface {
	CreateBatch(db *gorm.DB, hours []entity.DoctorWorkingHour) error
	FindByDoctorProfileID(db *gorm.DB, doctorProfileID uint) ([]entity.DoctorWorkingHour, error)
	DeleteByDoctorProfileID(db *gorm.DB, doctorProfileID uint) error
}
