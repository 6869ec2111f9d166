package repository

import (
	"hello-doctors/internal/domain/entity"
	domainRepo "hello-doctors/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type searchTagRepository struct{}

func NewSearchTagRepository() domainRepo.SearchTagRepository {
	return &searchTagRepository{}
}

func (r *searchTagRepository) Upsert(db *gorm.DB, doctorProfileID uint, tags string) error {
	tag := entity.SearchTag{
		DoctorProfileID: doctorProfileID,
		Tags:            tags,
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "doctor_profile_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"tags", "updated_at"}),
	}).Create(&tag).Error
}

func (r *searchTagRepository) DeleteByDoctorProfileID(db *gorm.DB, doctorProfileID uint) error {
	return db.Where("doctor_profile_id = ?", doctorProfileID).Delete(&entity.SearchTag{}).Error
}
