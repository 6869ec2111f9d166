package usecase

import (
	"hello-doctors/internal/delivery/dto"
	"hello-doctors/internal/domain/entity"
	"hello-doctors/internal/domain/repository"
	"hello-doctors/internal/service"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// parseFee converts the form's fee string into a decimal, rejecting
// negative values. Empty input means no fee is published.
func parseFee(s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	fee, err := decimal.NewFromString(s)
	if err != nil || fee.IsNegative() {
		return nil, ErrInvalidFee
	}
	return &fee, nil
}

func cityLinksFromRequests(reqs []dto.DoctorCityRequest) []entity.DoctorCity {
	links := make([]entity.DoctorCity, len(reqs))
	for i, req := range reqs {
		links[i] = entity.DoctorCity{
			CityID:    req.CityID,
			Address:   req.Address,
			Landmarks: req.Landmarks,
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
		}
	}
	return links
}

func workingHoursFromRequests(doctorProfileID uint, reqs []dto.WorkingHourRequest) []entity.DoctorWorkingHour {
	hours := make([]entity.DoctorWorkingHour, len(reqs))
	for i, req := range reqs {
		available := boolPtr(true)
		if req.IsAvailable != nil {
			available = req.IsAvailable
		}
		hours[i] = entity.DoctorWorkingHour{
			DoctorProfileID: doctorProfileID,
			CityID:          req.CityID,
			TimingText:      req.TimingText,
			DayOfWeek:       req.DayOfWeek,
			OpeningTime:     req.OpeningTime,
			ClosingTime:     req.ClosingTime,
			IsAvailable:     available,
		}
	}
	return hours
}

// regenerateSearchTags recomputes and stores the doctor's tag string from
// the current profile and owner fields. Runs inside the caller's
// transaction so the tags never commit apart from the fields they index.
func regenerateSearchTags(
	tx *gorm.DB,
	profile *entity.DoctorProfile,
	specialtyRepo repository.SpecialtyRepository,
	searchTagRepo repository.SearchTagRepository,
) error {
	specialtyName := ""
	if profile.SpecializationID != nil {
		specialty, err := specialtyRepo.FindByID(tx, *profile.SpecializationID)
		if err != nil {
			return err
		}
		if specialty != nil {
			specialtyName = specialty.Name
		}
	}

	tags := service.GenerateSearchTags(profile.User.FullName, specialtyName, profile.Bio, profile.Qualification)
	return searchTagRepo.Upsert(tx, profile.ID, tags)
}
