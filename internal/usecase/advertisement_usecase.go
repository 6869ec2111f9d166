package usecase

import (
	"context"
	"errors"
	"time"

	"hello-doctors/internal/converter"
	"hello-doctors/internal/delivery/dto"
	"hello-doctors/internal/domain/entity"
	"hello-doctors/internal/domain/repository"
	"hello-doctors/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAdNotFound      = errors.New("advertisement not found")
	ErrInvalidAdDate   = errors.New("invalid advertisement date")
	ErrInvalidAdWindow = errors.New("advertisement end date precedes start date")
)

type AdvertisementUsecase interface {
	GetAll(ctx context.Context, page, limit int) ([]dto.AdvertisementResponse, int64, error)
	Get(ctx context.Context, id uint) (*dto.AdvertisementResponse, error)
	// GetLiveByPosition returns the ads a public page should render for a
	// slot today: active and inside their date window.
	GetLiveByPosition(ctx context.Context, position string) ([]dto.AdvertisementResponse, error)
	Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateAdvertisementRequest) (*dto.AdvertisementResponse, error)
	Update(ctx context.Context, actorID uuid.UUID, id uint, req *dto.UpdateAdvertisementRequest) (*dto.AdvertisementResponse, error)
	Delete(ctx context.Context, actorID uuid.UUID, id uint) error
	// RecordClick bumps the counter for click-through reporting.
	RecordClick(ctx context.Context, id uint) error
}

type advertisementUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	adRepo       repository.AdvertisementRepository
	auditService service.AuditService
	adConverter  *converter.AdvertisementConverter
}

func NewAdvertisementUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	adRepo repository.AdvertisementRepository,
	auditService service.AuditService,
	adConverter *converter.AdvertisementConverter,
) AdvertisementUsecase {
	return &advertisementUsecase{
		db:           db,
		log:          log,
		adRepo:       adRepo,
		auditService: auditService,
		adConverter:  adConverter,
	}
}

func (u *advertisementUsecase) GetAll(ctx context.Context, page, limit int) ([]dto.AdvertisementResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	ads, total, err := u.adRepo.FindAll(u.db.WithContext(ctx), limit, (page-1)*limit)
	if err != nil {
		u.log.Warnf("Failed to find advertisements: %+v", err)
		return nil, 0, err
	}

	return u.adConverter.ToResponses(ads), total, nil
}

func (u *advertisementUsecase) Get(ctx context.Context, id uint) (*dto.AdvertisementResponse, error) {
	ad, err := u.adRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find advertisement: %+v", err)
		return nil, err
	}
	if ad == nil {
		return nil, ErrAdNotFound
	}
	return u.adConverter.ToResponse(ad), nil
}

func (u *advertisementUsecase) GetLiveByPosition(ctx context.Context, position string) ([]dto.AdvertisementResponse, error) {
	ads, err := u.adRepo.FindLiveByPosition(u.db.WithContext(ctx), position, time.Now())
	if err != nil {
		u.log.Warnf("Failed to find live advertisements: %+v", err)
		return nil, err
	}
	return u.adConverter.ToResponses(ads), nil
}

func (u *advertisementUsecase) Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateAdvertisementRequest) (*dto.AdvertisementResponse, error) {
	startDate, endDate, err := parseAdWindow(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	active := boolPtr(true)
	if req.IsActive != nil {
		active = req.IsActive
	}

	ad := &entity.Advertisement{
		Title:     req.Title,
		Image:     req.Image,
		Link:      req.Link,
		Position:  req.Position,
		StartDate: startDate,
		EndDate:   endDate,
		IsActive:  active,
	}

	if err := u.adRepo.Create(tx, ad); err != nil {
		u.log.Warnf("Failed to create advertisement: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionAdCreate, "advertisement", ad.Title, ad); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.adConverter.ToResponse(ad), nil
}

func (u *advertisementUsecase) Update(ctx context.Context, actorID uuid.UUID, id uint, req *dto.UpdateAdvertisementRequest) (*dto.AdvertisementResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	ad, err := u.adRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find advertisement: %+v", err)
		return nil, err
	}
	if ad == nil {
		return nil, ErrAdNotFound
	}

	oldValue := u.adConverter.ToResponse(ad)

	if req.Title != nil {
		ad.Title = *req.Title
	}
	if req.Image != nil {
		ad.Image = *req.Image
	}
	if req.Link != nil {
		ad.Link = *req.Link
	}
	if req.Position != nil {
		ad.Position = *req.Position
	}
	if req.StartDate != nil {
		start, err := converter.ParseAdDate(*req.StartDate)
		if err != nil {
			return nil, ErrInvalidAdDate
		}
		ad.StartDate = start
	}
	if req.EndDate != nil {
		if *req.EndDate == "" {
			ad.EndDate = nil
		} else {
			end, err := converter.ParseAdDate(*req.EndDate)
			if err != nil {
				return nil, ErrInvalidAdDate
			}
			ad.EndDate = &end
		}
	}
	if ad.EndDate != nil && ad.EndDate.Before(ad.StartDate) {
		return nil, ErrInvalidAdWindow
	}
	if req.IsActive != nil {
		ad.IsActive = req.IsActive
	}

	if err := u.adRepo.Update(tx, ad); err != nil {
		u.log.Warnf("Failed to update advertisement: %+v", err)
		return nil, err
	}

	newValue := u.adConverter.ToResponse(ad)
	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionAdUpdate, "advertisement", ad.Title, oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

func (u *advertisementUsecase) Delete(ctx context.Context, actorID uuid.UUID, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	ad, err := u.adRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find advertisement: %+v", err)
		return err
	}
	if ad == nil {
		return ErrAdNotFound
	}

	if _, err := u.adRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete advertisement: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, &actorID, entity.AuditActionAdDelete, "advertisement", ad.Title, ad); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *advertisementUsecase) RecordClick(ctx context.Context, id uint) error {
	affected, err := u.adRepo.IncrementClicks(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to increment advertisement clicks: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrAdNotFound
	}
	return nil
}

func parseAdWindow(start, end string) (time.Time, *time.Time, error) {
	startDate, err := converter.ParseAdDate(start)
	if err != nil {
		return time.Time{}, nil, ErrInvalidAdDate
	}

	var endDate *time.Time
	if end != "" {
		parsed, err := converter.ParseAdDate(end)
		if err != nil {
			return time.Time{}, nil, ErrInvalidAdDate
		}
		if parsed.Before(startDate) {
			return time.Time{}, nil, ErrInvalidAdWindow
		}
		endDate = &parsed
	}

	return startDate, endDate, nil
}
