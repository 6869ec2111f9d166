package repository

import (
	"hello-doctors/internal/domain/entity"
	domainRepo "hello-doctors/internal/domain/repository"

	"gorm.io/gorm"
)

type workingHourRepository struct{}

func NewWorkingHourRepository() domainRepo.WorkingHourRepository {
	return &workingHourRepository{}
}

func (r *workingHourRepository) CreateBatch(db *gorm.DB, hours []entity.DoctorWorkingHour) error {
	if len(hours) == 0 {
		return nil
	}
	return db.Create(&hours).Error
}

func (r *workingHourRepository) FindByDoctorProfileID(db *gorm.DB, doctorProfileID uint) ([]entity.DoctorWorkingHour, error) {
	var hours []entity.DoctorWorkingHour
	err := db.Where("doctor_profile_id = ?", doctorProfileID).
		Order("day_of_week ASC NULLS LAST, id ASC").
		Find(&hours).Error
	if err != nil {
		return nil, err
	}
	return hours, nil
}

func (r *workingHourRepository) DeleteByDoctorProfileID(db *gorm.DB, doctorProfileID uint) error {
	return db.Where("doctor_profile_id = ?", doctorProfileID).Delete(&entity.DoctorWorkingHour{}).Error
}
