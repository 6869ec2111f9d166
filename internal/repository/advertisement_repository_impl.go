package repository

import (
	"errors"
	"time"

	"hello-doctors/internal/domain/entity"
	domainRepo "hello-doctors/internal/domain/repository"

	"gorm.io/gorm"
)

type advertisementRepository struct{}

func NewAdvertisementRepository() domainRepo.AdvertisementRepository {
	return &advertisementRepository{}
}

func (r *advertisementRepository) Create(db *gorm.DB, ad *entity.Advertisement) error {
	return db.Create(ad).Error
}

func (r *advertisementRepository) FindAll(db *gorm.DB, limit, offset int) ([]entity.Advertisement, int64, error) {
	var ads []entity.Advertisement
	var total int64

	if err := db.Model(&entity.Advertisement{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&ads).Error
	if err != nil {
		return nil, 0, err
	}
	return ads, total, nil
}

func (r *advertisementRepository) FindByID(db *gorm.DB, id uint) (*entity.Advertisement, error) {
	var ad entity.Advertisement
	err := db.Where("id = ?", id).First(&ad).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ad, nil
}

func (r *advertisementRepository) FindLiveByPosition(db *gorm.DB, position string, day time.Time) ([]entity.Advertisement, error) {
	var ads []entity.Advertisement
	date := day.Format("2006-01-02")
	err := db.
		Where("position = ?", position).
		Where("is_active = ?", true).
		Where("start_date <= ?", date).
		Where("end_date IS NULL OR end_date >= ?", date).
		Order("created_at DESC").
		Find(&ads).Error
	if err != nil {
		return nil, err
	}
	return ads, nil
}

func (r *advertisementRepository) Update(db *gorm.DB, ad *entity.Advertisement) error {
	return db.Save(ad).Error
}

func (r *advertisementRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.Advertisement{})
	return affected.RowsAffected, affected.Error
}

// IncrementClicks is a single atomic UPDATE, never read-modify-write, so
// concurrent clicks cannot lose updates.
func (r *advertisementRepository) IncrementClicks(db *gorm.DB, id uint) (int64, error) {
	affected := db.Model(&entity.Advertisement{}).
		Where("id = ?", id).
		UpdateColumn("click_count", gorm.Expr("click_count + ?", 1))
	return affected.RowsAffected, affected.Error
}
