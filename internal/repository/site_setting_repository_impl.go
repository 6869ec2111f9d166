package repository

import (
	"errors"

	"hello-doctors/internal/domain/entity"
	domainRepo "hello-doctors/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type siteSettingRepository struct{}

func NewSiteSettingRepository() domainRepo.SiteSettingRepository {
	return &siteSettingRepository{}
}

func (r *siteSettingRepository) FindAll(db *gorm.DB) ([]entity.SiteSetting, error) {
	var settings []entity.SiteSetting
	if err := db.Order("\"group\" ASC, key ASC").Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *siteSettingRepository) FindByGroup(db *gorm.DB, group string) ([]entity.SiteSetting, error) {
	var settings []entity.SiteSetting
	err := db.Where("\"group\" = ?", group).Order("key ASC").Find(&settings).Error
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *siteSettingRepository) FindByKey(db *gorm.DB, key string) (*entity.SiteSetting, error) {
	var setting entity.SiteSetting
	err := db.Where("key = ?", key).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &setting, nil
}

func (r *siteSettingRepository) Upsert(db *gorm.DB, setting *entity.SiteSetting) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "group", "type", "updated_at"}),
	}).Create(setting).Error
}
