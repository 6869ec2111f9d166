package usecase

import (
	"context"

	"hello-doctors/internal/converter"
	"hello-doctors/internal/delivery/dto"
	"hello-doctors/internal/domain/entity"
	"hello-doctors/internal/domain/repository"
	"hello-doctors/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type SiteSettingUsecase interface {
	GetAll(ctx context.Context) (dto.GroupedSettingsResponse, error)
	GetByGroup(ctx context.Context, group string) ([]dto.SettingResponse, error)
	// UpdateBatch upserts the submitted settings in one transaction, so a
	// customization form saves completely or not at all.
	UpdateBatch(ctx context.Context, actorID uuid.UUID, req *dto.UpdateSettingsRequest) (dto.GroupedSettingsResponse, error)
}

type siteSettingUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	siteSettingRepo repository.SiteSettingRepository
	auditService    service.AuditService
}

func NewSiteSettingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	siteSettingRepo repository.SiteSettingRepository,
	auditService service.AuditService,
) SiteSettingUsecase {
	return &siteSettingUsecase{
		db:              db,
		log:             log,
		siteSettingRepo: siteSettingRepo,
		auditService:    auditService,
	}
}

func (u *siteSettingUsecase) GetAll(ctx context.Context) (dto.GroupedSettingsResponse, error) {
	settings, err := u.siteSettingRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find site settings: %+v", err)
		return nil, err
	}
	return converter.SettingsToGroupedResponse(settings), nil
}

func (u *siteSettingUsecase) GetByGroup(ctx context.Context, group string) ([]dto.SettingResponse, error) {
	settings, err := u.siteSettingRepo.FindByGroup(u.db.WithContext(ctx), group)
	if err != nil {
		u.log.Warnf("Failed to find site settings by group: %+v", err)
		return nil, err
	}

	responses := make([]dto.SettingResponse, len(settings))
	for i, setting := range settings {
		responses[i] = dto.SettingResponse{
			Key:   setting.Key,
			Value: setting.Value,
			Group: setting.Group,
			Type:  setting.Type,
		}
	}
	return responses, nil
}

func (u *siteSettingUsecase) UpdateBatch(ctx context.Context, actorID uuid.UUID, req *dto.UpdateSettingsRequest) (dto.GroupedSettingsResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	for _, item := range req.Settings {
		group := item.Group
		if group == "" {
			group = entity.SettingGroupGeneral
		}
		settingType := item.Type
		if settingType == "" {
			settingType = entity.SettingTypeText
		}

		setting := &entity.SiteSetting{
			Key:   item.Key,
			Value: item.Value,
			Group: group,
			Type:  settingType,
		}
		if err := u.siteSettingRepo.Upsert(tx, setting); err != nil {
			u.log.Warnf("Failed to upsert site setting %s: %+v", item.Key, err)
			return nil, err
		}
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionSettingUpdate, "site_setting", "batch", nil, req.Settings); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.GetAll(ctx)
}
