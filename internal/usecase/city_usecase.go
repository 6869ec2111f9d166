package usecase

import (
	"context"
	"errors"

	"hello-doctors/internal/converter"
	"hello-doctors/internal/delivery/dto"
	"hello-doctors/internal/domain/entity"
	"hello-doctors/internal/domain/repository"
	"hello-doctors/internal/service"
	"hello-doctors/pkg/slug"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrCityExists = errors.New("city already exists")
	ErrCityInUse  = errors.New("city is referenced by doctor locations")
)

type CityUsecase interface {
	GetAll(ctx context.Context, activeOnly bool) ([]dto.CityResponse, error)
	Get(ctx context.Context, id uint) (*dto.CityResponse, error)
	Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateCityRequest) (*dto.CityResponse, error)
	Update(ctx context.Context, actorID uuid.UUID, id uint, req *dto.UpdateCityRequest) (*dto.CityResponse, error)
	Delete(ctx context.Context, actorID uuid.UUID, id uint) error
}

type cityUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	cityRepo     repository.CityRepository
	auditService service.AuditService
}

func NewCityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cityRepo repository.CityRepository,
	auditService service.AuditService,
) CityUsecase {
	return &cityUsecase{
		db:           db,
		log:          log,
		cityRepo:     cityRepo,
		auditService: auditService,
	}
}

func (u *cityUsecase) GetAll(ctx context.Context, activeOnly bool) ([]dto.CityResponse, error) {
	cities, err := u.cityRepo.FindAll(u.db.WithContext(ctx), activeOnly)
	if err != nil {
		u.log.Warnf("Failed to find cities: %+v", err)
		return nil, err
	}
	return converter.CitiesToResponses(cities), nil
}

func (u *cityUsecase) Get(ctx context.Context, id uint) (*dto.CityResponse, error) {
	city, err := u.cityRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find city: %+v", err)
		return nil, err
	}
	if city == nil {
		return nil, ErrCityNotFound
	}
	return converter.CityToResponse(city), nil
}

func (u *cityUsecase) Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateCityRequest) (*dto.CityResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	active := boolPtr(true)
	if req.IsActive != nil {
		active = req.IsActive
	}

	city := &entity.City{
		Name:     req.Name,
		Slug:     slug.Make(req.Name),
		State:    req.State,
		IsActive: active,
	}

	if err := u.cityRepo.Create(tx, city); err != nil {
		if isDuplicateKeyError(err, "slug") {
			return nil, ErrCityExists
		}
		u.log.Warnf("Failed to create city: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionCityCreate, "city", city.Slug, city); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.CityToResponse(city), nil
}

func (u *cityUsecase) Update(ctx context.Context, actorID uuid.UUID, id uint, req *dto.UpdateCityRequest) (*dto.CityResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	city, err := u.cityRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find city: %+v", err)
		return nil, err
	}
	if city == nil {
		return nil, ErrCityNotFound
	}

	oldValue := converter.CityToResponse(city)

	if req.Name != nil {
		city.Name = *req.Name
		city.Slug = slug.Make(*req.Name)
	}
	if req.State != nil {
		city.State = *req.State
	}
	if req.IsActive != nil {
		city.IsActive = req.IsActive
	}

	if err := u.cityRepo.Update(tx, city); err != nil {
		if isDuplicateKeyError(err, "slug") {
			return nil, ErrCityExists
		}
		u.log.Warnf("Failed to update city: %+v", err)
		return nil, err
	}

	newValue := converter.CityToResponse(city)
	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionCityUpdate, "city", city.Slug, oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

func (u *cityUsecase) Delete(ctx context.Context, actorID uuid.UUID, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	city, err := u.cityRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find city: %+v", err)
		return err
	}
	if city == nil {
		return ErrCityNotFound
	}

	if _, err := u.cityRepo.Delete(tx, id); err != nil {
		// Doctor locations and working hours keep the city alive.
		if isForeignKeyError(err, "city") {
			return ErrCityInUse
		}
		u.log.Warnf("Failed to delete city: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, &actorID, entity.AuditActionCityDelete, "city", city.Slug, city); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
