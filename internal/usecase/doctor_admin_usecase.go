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
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DoctorAdminUsecase covers the back-office doctor management flows. The
// acting admin is passed in explicitly for audit logging; there is no
// ambient session state.
type DoctorAdminUsecase interface {
	CreateDoctor(ctx context.Context, actorID uuid.UUID, req *dto.CreateDoctorRequest, profileImagePath string) (*dto.DoctorDetailResponse, error)
	GetDoctor(ctx context.Context, id uint) (*dto.DoctorDetailResponse, error)
	GetAllDoctors(ctx context.Context, page, limit int) ([]dto.DoctorDetailResponse, int64, error)
	UpdateDoctor(ctx context.Context, actorID uuid.UUID, id uint, req *dto.UpdateDoctorRequest) (*dto.DoctorDetailResponse, error)
	GetSelfProfile(ctx context.Context, userID uuid.UUID) (*dto.DoctorDetailResponse, error)
	UpdateSelfProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorDetailResponse, error)
	DeleteDoctor(ctx context.Context, actorID uuid.UUID, id uint) error
	ToggleVerification(ctx context.Context, actorID uuid.UUID, id uint) (*dto.DoctorDetailResponse, error)
	ToggleActive(ctx context.Context, actorID uuid.UUID, id uint) (*dto.DoctorDetailResponse, error)
}

type doctorAdminUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	userRepo          repository.UserRepository
	doctorProfileRepo repository.DoctorProfileRepository
	workingHourRepo   repository.WorkingHourRepository
	searchTagRepo     repository.SearchTagRepository
	specialtyRepo     repository.SpecialtyRepository
	auditService      service.AuditService
	doctorConverter   *converter.DoctorConverter
}

func NewDoctorAdminUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	workingHourRepo repository.WorkingHourRepository,
	searchTagRepo repository.SearchTagRepository,
	specialtyRepo repository.SpecialtyRepository,
	auditService service.AuditService,
	doctorConverter *converter.DoctorConverter,
) DoctorAdminUsecase {
	return &doctorAdminUsecase{
		db:                db,
		log:               log,
		userRepo:          userRepo,
		doctorProfileRepo: doctorProfileRepo,
		workingHourRepo:   workingHourRepo,
		searchTagRepo:     searchTagRepo,
		specialtyRepo:     specialtyRepo,
		auditService:      auditService,
		doctorConverter:   doctorConverter,
	}
}

func (u *doctorAdminUsecase) CreateDoctor(ctx context.Context, actorID uuid.UUID, req *dto.CreateDoctorRequest, profileImagePath string) (*dto.DoctorDetailResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	fee, err := parseFee(req.ConsultationFee)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Email:    req.Email,
		Password: string(hashedPassword),
		FullName: req.FullName,
		Phone:    req.Phone,
		RoleID:   entity.RoleIDDoctor,
		IsActive: boolPtr(true),
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		if isForeignKeyError(err, "role") {
			return nil, ErrRoleNotFound
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	profile := &entity.DoctorProfile{
		UserID:            user.ID,
		SpecializationID:  req.SpecializationID,
		Qualification:     req.Qualification,
		ExperienceYears:   req.ExperienceYears,
		ConsultationFee:   fee,
		Bio:               req.Bio,
		ProfileImage:      profileImagePath,
		Website:           req.Website,
		IsVerified:        boolPtr(req.IsVerified),
		IsAvailableOnline: boolPtr(req.IsAvailableOnline),
	}
	if req.LicenseNumber != "" {
		profile.LicenseNumber = &req.LicenseNumber
	}

	if err := u.doctorProfileRepo.Create(tx, profile); err != nil {
		if isDuplicateKeyError(err, "license_number") {
			return nil, ErrLicenseAlreadyExists
		}
		if isForeignKeyError(err, "specialization") {
			return nil, ErrSpecialtyNotFound
		}
		u.log.Warnf("Failed to create doctor profile: %+v", err)
		return nil, err
	}

	if len(req.Cities) > 0 {
		if err := u.doctorProfileRepo.ReplaceCities(tx, profile.ID, cityLinksFromRequests(req.Cities)); err != nil {
			if isForeignKeyError(err, "city") {
				return nil, ErrCityNotFound
			}
			u.log.Warnf("Failed to attach cities: %+v", err)
			return nil, err
		}
	}

	if len(req.WorkingHours) > 0 {
		if err := u.workingHourRepo.CreateBatch(tx, workingHoursFromRequests(profile.ID, req.WorkingHours)); err != nil {
			u.log.Warnf("Failed to create working hours: %+v", err)
			return nil, err
		}
	}

	profile.User = *user
	if err := regenerateSearchTags(tx, profile, u.specialtyRepo, u.searchTagRepo); err != nil {
		u.log.Warnf("Failed to generate search tags: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionDoctorCreate, "doctor_profile", user.ID.String(), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.doctorConverter.ToDetail(profile), nil
}

func (u *doctorAdminUsecase) GetDoctor(ctx context.Context, id uint) (*dto.DoctorDetailResponse, error) {
	profile, err := u.doctorProfileRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	return u.doctorConverter.ToDetail(profile), nil
}

func (u *doctorAdminUsecase) GetAllDoctors(ctx context.Context, page, limit int) ([]dto.DoctorDetailResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	profiles, total, err := u.doctorProfileRepo.FindAll(u.db.WithContext(ctx), limit, (page-1)*limit)
	if err != nil {
		u.log.Warnf("Failed to find all doctor profiles: %+v", err)
		return nil, 0, err
	}

	responses := make([]dto.DoctorDetailResponse, len(profiles))
	for i := range profiles {
		responses[i] = *u.doctorConverter.ToDetail(&profiles[i])
	}
	return responses, total, nil
}

func (u *doctorAdminUsecase) UpdateDoctor(ctx context.Context, actorID uuid.UUID, id uint, req *dto.UpdateDoctorRequest) (*dto.DoctorDetailResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.doctorProfileRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	oldValue := u.doctorConverter.ToDetail(profile)

	updated, err := u.applyDoctorUpdate(tx, profile, req)
	if err != nil {
		return nil, err
	}

	newValue := u.doctorConverter.ToDetail(updated)
	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionDoctorUpdate, "doctor_profile", updated.User.ID.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

func (u *doctorAdminUsecase) GetSelfProfile(ctx context.Context, userID uuid.UUID) (*dto.DoctorDetailResponse, error) {
	profile, err := u.doctorProfileRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	return u.doctorConverter.ToDetail(profile), nil
}

func (u *doctorAdminUsecase) UpdateSelfProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorDetailResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.doctorProfileRepo.FindByUserID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	oldValue := u.doctorConverter.ToDetail(profile)

	updated, err := u.applyDoctorUpdate(tx, profile, req)
	if err != nil {
		return nil, err
	}

	newValue := u.doctorConverter.ToDetail(updated)
	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionDoctorUpdate, "doctor_profile", userID.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

// applyDoctorUpdate writes the requested field changes, the city set
// replacement and the working-hour replacement, then regenerates search
// tags. Runs inside the caller's transaction.
func (u *doctorAdminUsecase) applyDoctorUpdate(tx *gorm.DB, profile *entity.DoctorProfile, req *dto.UpdateDoctorRequest) (*entity.DoctorProfile, error) {
	if req.Email != nil {
		profile.User.Email = *req.Email
	}
	if req.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		profile.User.Password = string(hashedPassword)
	}
	if req.FullName != nil {
		profile.User.FullName = *req.FullName
	}
	if req.Phone != nil {
		profile.User.Phone = *req.Phone
	}
	if req.SpecializationID != nil {
		profile.SpecializationID = req.SpecializationID
	}
	if req.LicenseNumber != nil {
		profile.LicenseNumber = req.LicenseNumber
	}
	if req.Qualification != nil {
		profile.Qualification = *req.Qualification
	}
	if req.ExperienceYears != nil {
		profile.ExperienceYears = req.ExperienceYears
	}
	if req.ConsultationFee != nil {
		fee, err := parseFee(*req.ConsultationFee)
		if err != nil {
			return nil, err
		}
		profile.ConsultationFee = fee
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Website != nil {
		profile.Website = *req.Website
	}
	if req.IsAvailableOnline != nil {
		profile.IsAvailableOnline = req.IsAvailableOnline
	}

	if err := u.userRepo.Update(tx, &profile.User); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	if err := u.doctorProfileRepo.Update(tx, profile); err != nil {
		if isDuplicateKeyError(err, "license_number") {
			return nil, ErrLicenseAlreadyExists
		}
		if isForeignKeyError(err, "specialization") {
			return nil, ErrSpecialtyNotFound
		}
		u.log.Warnf("Failed to update doctor profile: %+v", err)
		return nil, err
	}

	if req.Cities != nil {
		if err := u.doctorProfileRepo.ReplaceCities(tx, profile.ID, cityLinksFromRequests(*req.Cities)); err != nil {
			if isForeignKeyError(err, "city") {
				return nil, ErrCityNotFound
			}
			u.log.Warnf("Failed to replace cities: %+v", err)
			return nil, err
		}
	}

	if req.WorkingHours != nil {
		if err := u.workingHourRepo.DeleteByDoctorProfileID(tx, profile.ID); err != nil {
			u.log.Warnf("Failed to delete working hours: %+v", err)
			return nil, err
		}
		if err := u.workingHourRepo.CreateBatch(tx, workingHoursFromRequests(profile.ID, *req.WorkingHours)); err != nil {
			u.log.Warnf("Failed to create working hours: %+v", err)
			return nil, err
		}
	}

	if err := regenerateSearchTags(tx, profile, u.specialtyRepo, u.searchTagRepo); err != nil {
		u.log.Warnf("Failed to regenerate search tags: %+v", err)
		return nil, err
	}

	// Reload so the response reflects replaced associations.
	reloaded, err := u.doctorProfileRepo.FindByID(tx, profile.ID)
	if err != nil {
		u.log.Warnf("Failed to reload doctor profile: %+v", err)
		return nil, err
	}
	if reloaded == nil {
		return profile, nil
	}
	return reloaded, nil
}

func (u *doctorAdminUsecase) DeleteDoctor(ctx context.Context, actorID uuid.UUID, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.doctorProfileRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return err
	}
	if profile == nil {
		return ErrDoctorNotFound
	}

	if err := u.deleteDoctorTx(ctx, tx, profile, actorID); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// deleteDoctorTx removes the doctor and everything hanging off it: city
// links, working hours, the search tag, the profile and the owning user.
// Any failure aborts the caller's transaction, leaving the doctor intact.
func (u *doctorAdminUsecase) deleteDoctorTx(ctx context.Context, tx *gorm.DB, profile *entity.DoctorProfile, actorID uuid.UUID) error {
	oldValue := u.doctorConverter.ToDetail(profile)

	if err := u.doctorProfileRepo.DeleteCities(tx, profile.ID); err != nil {
		u.log.Warnf("Failed to detach cities: %+v", err)
		return err
	}

	if err := u.workingHourRepo.DeleteByDoctorProfileID(tx, profile.ID); err != nil {
		u.log.Warnf("Failed to delete working hours: %+v", err)
		return err
	}

	if err := u.searchTagRepo.DeleteByDoctorProfileID(tx, profile.ID); err != nil {
		u.log.Warnf("Failed to delete search tag: %+v", err)
		return err
	}

	if _, err := u.doctorProfileRepo.Delete(tx, profile.ID); err != nil {
		u.log.Warnf("Failed to delete doctor profile: %+v", err)
		return err
	}

	if _, err := u.userRepo.Delete(tx, profile.UserID); err != nil {
		u.log.Warnf("Failed to delete user: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, &actorID, entity.AuditActionDoctorDelete, "doctor_profile", profile.UserID.String(), oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return nil
}

func (u *doctorAdminUsecase) ToggleVerification(ctx context.Context, actorID uuid.UUID, id uint) (*dto.DoctorDetailResponse, error) {
	return u.toggle(ctx, actorID, id, entity.AuditActionDoctorVerify, func(profile *entity.DoctorProfile) {
		verified := profile.IsVerified != nil && *profile.IsVerified
		profile.IsVerified = boolPtr(!verified)
	})
}

func (u *doctorAdminUsecase) ToggleActive(ctx context.Context, actorID uuid.UUID, id uint) (*dto.DoctorDetailResponse, error) {
	return u.toggle(ctx, actorID, id, entity.AuditActionDoctorActivate, func(profile *entity.DoctorProfile) {
		active := profile.User.IsActive != nil && *profile.User.IsActive
		profile.User.IsActive = boolPtr(!active)
	})
}

func (u *doctorAdminUsecase) toggle(ctx context.Context, actorID uuid.UUID, id uint, action string, flip func(*entity.DoctorProfile)) (*dto.DoctorDetailResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.doctorProfileRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	oldValue := u.doctorConverter.ToDetail(profile)
	flip(profile)

	if err := u.userRepo.Update(tx, &profile.User); err != nil {
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}
	if err := u.doctorProfileRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update doctor profile: %+v", err)
		return nil, err
	}

	newValue := u.doctorConverter.ToDetail(profile)
	if err := u.auditService.LogUpdate(ctx, tx, &actorID, action, "doctor_profile", profile.UserID.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}
