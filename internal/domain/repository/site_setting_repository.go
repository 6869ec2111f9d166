package repository

import (
	"hello-doctors/internal/domain/entity"

	"gorm.io/gorm"
)

type SiteSettingRepository interface {
	FindAll(db *gorm.DB) ([]entity.SiteSetting, error)
	FindByGroup(db *gorm.DB, group string) ([]entity.SiteSetting, error)
	FindByKey(db *gorm.DB, key string) (*entity.SiteSetting, error)
	Upsert(db *gorm.DB, setting *entity.SiteSetting) error
}
