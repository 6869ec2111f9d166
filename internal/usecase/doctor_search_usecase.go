package usecase

import (
	"context"
	"errors"

	"hello-doctors/internal/converter"
	"hello-doctors/internal/delivery/dto"
	"hello-doctors/internal/domain/entity"
	"hello-doctors/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrDoctorNotFound = errors.New("doctor not found")

// DoctorSearchUsecase serves the public directory pages. Read-only.
type DoctorSearchUsecase interface {
	Search(ctx context.Context, req *dto.SearchDoctorsRequest) ([]dto.DoctorSummaryResponse, int64, int, error)
	GetDoctorDetail(ctx context.Context, id uint) (*dto.DoctorDetailResponse, error)
}

type doctorSearchUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	doctorProfileRepo repository.DoctorProfileRepository
	cityRepo          repository.CityRepository
	doctorConverter   *converter.DoctorConverter
}

func NewDoctorSearchUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorProfileRepo repository.DoctorProfileRepository,
	cityRepo repository.CityRepository,
	doctorConverter *converter.DoctorConverter,
) DoctorSearchUsecase {
	return &doctorSearchUsecase{
		db:                db,
		log:               log,
		doctorProfileRepo: doctorProfileRepo,
		cityRepo:          cityRepo,
		doctorConverter:   doctorConverter,
	}
}

func (u *doctorSearchUsecase) Search(ctx context.Context, req *dto.SearchDoctorsRequest) ([]dto.DoctorSummaryResponse, int64, int, error) {
	filter, err := u.buildFilter(req)
	if err != nil {
		u.log.Warnf("Failed to build doctor filter: %+v", err)
		return nil, 0, 0, err
	}

	profiles, total, err := u.doctorProfileRepo.Search(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to search doctors: %+v", err)
		return nil, 0, 0, err
	}

	return u.doctorConverter.ToSummaries(profiles), total, filter.Page, nil
}

// buildFilter normalizes the raw query parameters into a domain filter.
// A free-typed city name resolves by exact case-insensitive match; an
// unrecognized name leaves the city filter off rather than erroring, so
// the listing degrades to the unfiltered set.
func (u *doctorSearchUsecase) buildFilter(req *dto.SearchDoctorsRequest) (*entity.DoctorFilter, error) {
	filter := &entity.DoctorFilter{
		Query:           req.Search,
		CityID:          req.CityID,
		SpecialtyID:     req.SpecialtyID,
		AvailableOnline: req.AvailableOnline,
		Page:            req.Page,
	}

	if filter.Page < 1 {
		filter.Page = 1
	}

	switch req.Sort {
	case entity.DoctorSortExperience, entity.DoctorSortFee:
		filter.Sort = req.Sort
	default:
		filter.Sort = entity.DoctorSortName
	}

	if filter.CityID == 0 && req.CityName != "" {
		city, err := u.cityRepo.FindByName(u.db, req.CityName)
		if err != nil {
			return nil, err
		}
		if city != nil {
			filter.CityID = city.ID
		}
	}

	return filter, nil
}

func (u *doctorSearchUsecase) GetDoctorDetail(ctx context.Context, id uint) (*dto.DoctorDetailResponse, error) {
	profile, err := u.doctorProfileRepo.FindVerifiedByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	return u.doctorConverter.ToDetail(profile), nil
}
