package repository

import (
	"errors"

	"hello-doctors/internal/domain/entity"
	domainRepo "hello-doctors/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorProfileRepository struct{}

func NewDoctorProfileRepository() domainRepo.DoctorProfileRepository {
	return &doctorProfileRepository{}
}

func (r *doctorProfileRepository) Create(db *gorm.DB, profile *entity.DoctorProfile) error {
	return db.Create(profile).Error
}

func (r *doctorProfileRepository) FindByID(db *gorm.DB, id uint) (*entity.DoctorProfile, error) {
	var profile entity.DoctorProfile
	err := db.
		Preload("User").
		Preload("Specialty").
		Preload("CityLinks.City").
		Preload("WorkingHours").
		Where("id = ?", id).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *doctorProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error) {
	var profile entity.DoctorProfile
	err := db.
		Preload("User").
		Preload("Specialty").
		Preload("CityLinks.City").
		Preload("WorkingHours").
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *doctorProfileRepository) FindVerifiedByID(db *gorm.DB, id uint) (*entity.DoctorProfile, error) {
	var profile entity.DoctorProfile
	err := db.
		Joins("JOIN users ON users.id = doctor_profiles.user_id").
		Where("doctor_profiles.id = ?", id).
		Where("doctor_profiles.is_verified = ?", true).
		Where("users.is_active = ?", true).
		Preload("User").
		Preload("Specialty").
		Preload("CityLinks.City").
		Preload("WorkingHours").
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *doctorProfileRepository) FindAll(db *gorm.DB, limit, offset int) ([]entity.DoctorProfile, int64, error) {
	var profiles []entity.DoctorProfile
	var total int64

	if err := db.Model(&entity.DoctorProfile{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.
		Preload("User").
		Preload("Specialty").
		Preload("CityLinks.City").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&profiles).Error
	if err != nil {
		return nil, 0, err
	}
	return profiles, total, nil
}

// Search composes the public doctor listing query. Verified profiles of
// active users only; free-text matches are a case-insensitive OR across the
// owner's name, the specialty name, the precomputed search tags and the bio.
func (r *doctorProfileRepository) Search(db *gorm.DB, filter *entity.DoctorFilter) ([]entity.DoctorProfile, int64, error) {
	query := db.Model(&entity.DoctorProfile{}).
		Joins("JOIN users ON users.id = doctor_profiles.user_id").
		Where("users.is_active = ?", true).
		Where("doctor_profiles.is_verified = ?", true)

	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.
			Joins("LEFT JOIN specialties ON specialties.id = doctor_profiles.specialization_id").
			Joins("LEFT JOIN search_tags ON search_tags.doctor_profile_id = doctor_profiles.id").
			Where(
				"users.full_name ILIKE ? OR specialties.name ILIKE ? OR search_tags.tags ILIKE ? OR doctor_profiles.bio ILIKE ?",
				pattern, pattern, pattern, pattern,
			)
	}

	if filter.CityID != 0 {
		query = query.
			Joins("JOIN doctor_cities ON doctor_cities.doctor_profile_id = doctor_profiles.id").
			Where("doctor_cities.city_id = ?", filter.CityID)
	}

	if filter.SpecialtyID != 0 {
		query = query.Where("doctor_profiles.specialization_id = ?", filter.SpecialtyID)
	}

	if filter.AvailableOnline {
		query = query.Where("doctor_profiles.is_available_online = ?", true)
	}

	// Count on a detached session: Count would otherwise leave DISTINCT on
	// the shared statement and Postgres rejects SELECT DISTINCT with an
	// ORDER BY expression outside the select list.
	var total int64
	if err := query.Session(&gorm.Session{}).Distinct("doctor_profiles.id").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch filter.Sort {
	case entity.DoctorSortExperience:
		query = query.Order("doctor_profiles.experience_years DESC NULLS LAST, doctor_profiles.id ASC")
	case entity.DoctorSortFee:
		query = query.Order("doctor_profiles.consultation_fee ASC NULLS LAST, doctor_profiles.id ASC")
	default:
		query = query.Order("LOWER(users.full_name) ASC, doctor_profiles.id ASC")
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}

	// No DISTINCT here: the city filter pins one association row and the
	// tag/specialty joins are one-to-one, so each profile appears once.
	var profiles []entity.DoctorProfile
	err := query.
		Select("doctor_profiles.*").
		Preload("User").
		Preload("Specialty").
		Preload("CityLinks.City").
		Limit(entity.DoctorPageSize).
		Offset((page - 1) * entity.DoctorPageSize).
		Find(&profiles).Error
	if err != nil {
		return nil, 0, err
	}
	return profiles, total, nil
}

func (r *doctorProfileRepository) Update(db *gorm.DB, profile *entity.DoctorProfile) error {
	return db.Omit("Specialty", "CityLinks", "WorkingHours", "SearchTag").Save(profile).Error
}

func (r *doctorProfileRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.DoctorProfile{})
	return affected.RowsAffected, affected.Error
}

// ReplaceCities swaps the doctor's full city set. Runs inside the caller's
// transaction; partial replacement is not supported.
func (r *doctorProfileRepository) ReplaceCities(db *gorm.DB, doctorProfileID uint, links []entity.DoctorCity) error {
	if err := db.Where("doctor_profile_id = ?", doctorProfileID).Delete(&entity.DoctorCity{}).Error; err != nil {
		return err
	}
	if len(links) == 0 {
		return nil
	}
	for i := range links {
		links[i].ID = 0
		links[i].DoctorProfileID = doctorProfileID
	}
	return db.Create(&links).Error
}

func (r *doctorProfileRepository) DeleteCities(db *gorm.DB, doctorProfileID uint) error {
	return db.Where("doctor_profile_id = ?", doctorProfileID).Delete(&entity.DoctorCity{}).Error
}
