package repository

import (
	"hello-doctors/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorProfileRepository interface {
	Create(db *gorm.DB, profile *entity.DoctorProfile) error
	FindByID(db *gorm.DB, id uint) (*entity.DoctorProfile, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error)
	// FindVerifiedByID returns the profile only when it is verified and its
	// owning user is active; nil otherwise.
	FindVerifiedByID(db *gorm.DB, id uint) (*entity.DoctorProfile, error)
	// FindAll lists profiles for the back-office, unverified ones included.
	FindAll(db *gorm.DB, limit, offset int) ([]entity.DoctorProfile, int64, error)
	// Search returns one page of profiles matching the filter plus the total
	// match count. Only verified profiles with active owners are returned.
	Search(db *gorm.DB, filter *entity.DoctorFilter) ([]entity.DoctorProfile, int64, error)
	Update(db *gorm.DB, profile *entity.DoctorProfile) error
	Delete(db *gorm.DB, id uint) (int64, error)

	// City association management. ReplaceCities is all-or-nothing: it
	// detaches every existing link before attaching the new set and must be
	// called inside a transaction.
	ReplaceCities(db *gorm.DB, doctorProfileID uint, links []entity.DoctorCity) error
	DeleteCities(db *gorm.DB, doctorProfileID uint) error
}
