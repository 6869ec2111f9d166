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
	ErrSpecialtyExists = errors.New("specialty already exists")
	ErrSpecialtyInUse  = errors.New("specialty is referenced by doctor profiles")
)

type SpecialtyUsecase interface {
	GetAll(ctx context.Context, activeOnly bool) ([]dto.SpecialtyResponse, error)
	Get(ctx context.Context, id uint) (*dto.SpecialtyResponse, error)
	Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateSpecialtyRequest, imagePath string) (*dto.SpecialtyResponse, error)
	Update(ctx context.Context, actorID uuid.UUID, id uint, req *dto.UpdateSpecialtyRequest, imagePath string) (*dto.SpecialtyResponse, error)
	Delete(ctx context.Context, actorID uuid.UUID, id uint) error
}

type specialtyUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	specialtyRepo      repository.SpecialtyRepository
	auditService       service.AuditService
	specialtyConverter *converter.SpecialtyConverter
}

func NewSpecialtyUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	specialtyRepo repository.SpecialtyRepository,
	auditService service.AuditService,
	specialtyConverter *converter.SpecialtyConverter,
) SpecialtyUsecase {
	return &specialtyUsecase{
		db:                 db,
		log:                log,
		specialtyRepo:      specialtyRepo,
		auditService:       auditService,
		specialtyConverter: specialtyConverter,
	}
}

func (u *specialtyUsecase) GetAll(ctx context.Context, activeOnly bool) ([]dto.SpecialtyResponse, error) {
	specialties, err := u.specialtyRepo.FindAll(u.db.WithContext(ctx), activeOnly)
	if err != nil {
		u.log.Warnf("Failed to find specialties: %+v", err)
		return nil, err
	}
	return u.specialtyConverter.ToResponses(specialties), nil
}

func (u *specialtyUsecase) Get(ctx context.Context, id uint) (*dto.SpecialtyResponse, error) {
	specialty, err := u.specialtyRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find specialty: %+v", err)
		return nil, err
	}
	if specialty == nil {
		return nil, ErrSpecialtyNotFound
	}
	return u.specialtyConverter.ToResponse(specialty), nil
}

func (u *specialtyUsecase) Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateSpecialtyRequest, imagePath string) (*dto.SpecialtyResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	active := boolPtr(true)
	if req.IsActive != nil {
		active = req.IsActive
	}

	specialty := &entity.Specialty{
		Name:        req.Name,
		Slug:        slug.Make(req.Name),
		Icon:        req.Icon,
		ImagePath:   imagePath,
		Description: req.Description,
		IsActive:    active,
		SortOrder:   req.SortOrder,
	}

	if err := u.specialtyRepo.Create(tx, specialty); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrSpecialtyExists
		}
		u.log.Warnf("Failed to create specialty: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionSpecialtyCreate, "specialty", specialty.Slug, specialty); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.specialtyConverter.ToResponse(specialty), nil
}

func (u *specialtyUsecase) Update(ctx context.Context, actorID uuid.UUID, id uint, req *dto.UpdateSpecialtyRequest, imagePath string) (*dto.SpecialtyResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	specialty, err := u.specialtyRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find specialty: %+v", err)
		return nil, err
	}
	if specialty == nil {
		return nil, ErrSpecialtyNotFound
	}

	oldValue := u.specialtyConverter.ToResponse(specialty)

	if req.Name != nil {
		specialty.Name = *req.Name
		specialty.Slug = slug.Make(*req.Name)
	}
	if req.Icon != nil {
		specialty.Icon = *req.Icon
	}
	if req.Description != nil {
		specialty.Description = *req.Description
	}
	if req.IsActive != nil {
		specialty.IsActive = req.IsActive
	}
	if req.SortOrder != nil {
		specialty.SortOrder = *req.SortOrder
	}
	if imagePath != "" {
		specialty.ImagePath = imagePath
	}

	if err := u.specialtyRepo.Update(tx, specialty); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrSpecialtyExists
		}
		u.log.Warnf("Failed to update specialty: %+v", err)
		return nil, err
	}

	newValue := u.specialtyConverter.ToResponse(specialty)
	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionSpecialtyUpdate, "specialty", specialty.Slug, oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

func (u *specialtyUsecase) Delete(ctx context.Context, actorID uuid.UUID, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	specialty, err := u.specialtyRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find specialty: %+v", err)
		return err
	}
	if specialty == nil {
		return ErrSpecialtyNotFound
	}

	// Refuse deletion while doctors still reference it; the admin has to
	// reassign them first.
	count, err := u.specialtyRepo.CountDoctors(tx, id)
	if err != nil {
		u.log.Warnf("Failed to count doctors for specialty: %+v", err)
		return err
	}
	if count > 0 {
		return ErrSpecialtyInUse
	}

	if _, err := u.specialtyRepo.Delete(tx, id); err != nil {
		if isForeignKeyError(err, "specialization") {
			return ErrSpecialtyInUse
		}
		u.log.Warnf("Failed to delete specialty: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, &actorID, entity.AuditActionSpecialtyDelete, "specialty", specialty.Slug, specialty); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
