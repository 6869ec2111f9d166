package repository

import (
	"errors"

	"hello-doctors/internal/domain/entity"
	domainRepo "hello-doctors/internal/domain/repository"

	"gorm.io/gorm"
)

type cityRepository struct{}

func NewCityRepository() domainRepo.CityRepository {
	return &cityRepository{}
}

func (r *cityRepository) Create(db *gorm.DB, city *entity.City) error {
	return db.Create(city).Error
}

func (r *cityRepository) FindAll(db *gorm.DB, activeOnly bool) ([]entity.City, error) {
	var cities []entity.City
	query := db.Order("name ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&cities).Error; err != nil {
		return nil, err
	}
	return cities, nil
}

func (r *cityRepository) FindByID(db *gorm.DB, id uint) (*entity.City, error) {
	var city entity.City
	err := db.Where("id = ?", id).First(&city).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &city, nil
}

func (r *cityRepository) FindBySlug(db *gorm.DB, slug string) (*entity.City, error) {
	var city entity.City
	err := db.Where("slug = ?", slug).First(&city).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &city, nil
}

func (r *cityRepository) FindByName(db *gorm.DB, name string) (*entity.City, error) {
	var city entity.City
	err := db.Where("LOWER(name) = LOWER(?)", name).First(&city).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &city, nil
}

func (r *cityRepository) Update(db *gorm.DB, city *entity.City) error {
	return db.Save(city).Error
}

func (r *cityRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.City{})
	return affected.RowsAffected, affected.Error
}
