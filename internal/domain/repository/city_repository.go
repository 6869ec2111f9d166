package repository

import (
	"hello-doctors/internal/domain/entity"

	"gorm.io/gorm"
)

type CityRepository interface {
	Create(db *gorm.DB, city *entity.City) error
	FindAll(db *gorm.DB, activeOnly bool) ([]entity.City, error)
	FindByID(db *gorm.DB, id uint) (*entity.City, error)
	FindBySlug(db *gorm.DB, slug string) (*entity.City, error)
	// FindByName matches the city name exactly, case-insensitively.
	FindByName(db *gorm.DB, name string) (*entity.City, error)
	Update(db *gorm.DB, city *entity.City) error
	Delete(db *gorm.DB, id uint) (int64, error)
}
