package repository

import (
	"time"

	"hello-doctors/internal/domain/entity"

	"gorm.io/gorm"
)

type AdvertisementRepository interface {
	Create(db *gorm.DB, ad *entity.Advertisement) error
	FindAll(db *gorm.DB, limit, offset int) ([]entity.Advertisement, int64, error)
	FindByID(db *gorm.DB, id uint) (*entity.Advertisement, error)
	// FindLiveByPosition returns ads for the position that are active and
	// whose date window covers the given day.
	FindLiveByPosition(db *gorm.DB, position string, day time.Time) ([]entity.Advertisement, error)
	Update(db *gorm.DB, ad *entity.Advertisement) error
	Delete(db *gorm.DB, id uint) (int64, error)
	// IncrementClicks bumps click_count atomically in the database.
	IncrementClicks(db *gorm.DB, id uint) (int64, error)
}
