package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"hello-doctors/internal/delivery/dto"
	"hello-doctors/internal/delivery/http/middleware"
	"hello-doctors/internal/usecase"
	"hello-doctors/pkg/response"
	"hello-doctors/pkg/storage"
	"hello-doctors/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// DoctorAdminHandler serves the back-office doctor endpoints plus the
// doctor's own profile page.
type DoctorAdminHandler struct {
	adminUsecase usecase.DoctorAdminUsecase
	validator    *validator.CustomValidator
	imageDisk    *storage.Disk
}

// NewDoctorAdminHandler takes the public images disk: photos attached by an
// admin are managed assets, unlike self-registration uploads.
func NewDoctorAdminHandler(adminUsecase usecase.DoctorAdminUsecase, validator *validator.CustomValidator, imageDisk *storage.Disk) *DoctorAdminHandler {
	return &DoctorAdminHandler{
		adminUsecase: adminUsecase,
		validator:    validator,
		imageDisk:    imageDisk,
	}
}

// Create adds a doctor from the back office. Multipart so the profile
// photo can be attached; cities and working_hours are JSON-encoded fields.
// @Summary Create doctor
// @Tags Admin
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/doctors [post]
func (h *DoctorAdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid multipart form", nil)
		return
	}

	req := dto.CreateDoctorRequest{
		Email:             r.FormValue("email"),
		Password:          r.FormValue("password"),
		FullName:          r.FormValue("full_name"),
		Phone:             r.FormValue("phone"),
		SpecializationID:  formUintPtr(r, "specialization_id"),
		LicenseNumber:     r.FormValue("license_number"),
		Qualification:     r.FormValue("qualification"),
		ExperienceYears:   formIntPtr(r, "experience_years"),
		ConsultationFee:   r.FormValue("consultation_fee"),
		Bio:               r.FormValue("bio"),
		Website:           r.FormValue("website"),
		IsAvailableOnline: formBool(r, "is_available_online"),
		IsVerified:        formBool(r, "is_verified"),
	}
	if err := formJSON(r, "cities", &req.Cities); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid cities payload", nil)
		return
	}
	if err := formJSON(r, "working_hours", &req.WorkingHours); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid working hours payload", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	profileImage, err := saveStaticImage(r, "profile_image", h.imageDisk)
	if err != nil {
		response.InternalServerError(w, "Failed to store profile image")
		return
	}

	doctor, err := h.adminUsecase.CreateDoctor(r.Context(), actorID, &req, profileImage)
	if err != nil {
		h.imageDisk.Remove(profileImage)
		h.writeDoctorError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Doctor created successfully", doctor)
}

// List returns all doctor profiles, unverified ones included
// @Summary List doctors
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Response
// @Router /admin/doctors [get]
func (h *DoctorAdminHandler) List(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 20)

	doctors, total, err := h.adminUsecase.GetAllDoctors(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list doctors")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Doctors retrieved successfully", doctors,
		response.NewMeta(page, limit, total))
}

// Get returns one doctor profile by ID
// @Summary Get doctor
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "Doctor profile ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/doctors/{id} [get]
func (h *DoctorAdminHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r)
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	doctor, err := h.adminUsecase.GetDoctor(r.Context(), id)
	if err != nil {
		h.writeDoctorError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

// Update modifies a doctor profile; absent fields stay untouched
// @Summary Update doctor
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Doctor profile ID"
// @Param request body dto.UpdateDoctorRequest true "Update Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/doctors/{id} [put]
func (h *DoctorAdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := parseIDVar(r)
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	var req dto.UpdateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.adminUsecase.UpdateDoctor(r.Context(), actorID, id, &req)
	if err != nil {
		h.writeDoctorError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Doctor updated successfully", doctor)
}

// Delete removes a doctor along with the account, locations, hours and
// search tag
// @Summary Delete doctor
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "Doctor profile ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/doctors/{id} [delete]
func (h *DoctorAdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := parseIDVar(r)
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	if err := h.adminUsecase.DeleteDoctor(r.Context(), actorID, id); err != nil {
		h.writeDoctorError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Doctor deleted successfully", nil)
}

// ToggleVerification flips the doctor's verified flag
// @Summary Toggle doctor verification
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "Doctor profile ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/doctors/{id}/toggle-verification [post]
func (h *DoctorAdminHandler) ToggleVerification(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.adminUsecase.ToggleVerification)
}

// ToggleActive flips the doctor account's active flag
// @Summary Toggle doctor account active state
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "Doctor profile ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/doctors/{id}/toggle-active [post]
func (h *DoctorAdminHandler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.adminUsecase.ToggleActive)
}

// GetProfile returns the authenticated doctor's own profile
// @Summary Get own doctor profile
// @Tags Doctor
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctor/profile [get]
func (h *DoctorAdminHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	doctor, err := h.adminUsecase.GetSelfProfile(r.Context(), userID)
	if err != nil {
		h.writeDoctorError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Profile retrieved successfully", doctor)
}

// UpdateProfile lets the authenticated doctor edit their own profile
// @Summary Update own doctor profile
// @Tags Doctor
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateDoctorRequest true "Update Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctor/profile [put]
func (h *DoctorAdminHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.UpdateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.adminUsecase.UpdateSelfProfile(r.Context(), userID, &req)
	if err != nil {
		h.writeDoctorError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Profile updated successfully", doctor)
}

func (h *DoctorAdminHandler) toggle(w http.ResponseWriter, r *http.Request, op func(context.Context, uuid.UUID, uint) (*dto.DoctorDetailResponse, error)) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := parseIDVar(r)
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	doctor, err := op(r.Context(), actorID, id)
	if err != nil {
		h.writeDoctorError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Doctor updated successfully", doctor)
}

func (h *DoctorAdminHandler) writeDoctorError(w http.ResponseWriter, err error) {
	switch err {
	case usecase.ErrDoctorNotFound:
		response.NotFound(w, "Doctor not found")
	case usecase.ErrEmailAlreadyExists:
		response.Conflict(w, "Email already exists")
	case usecase.ErrLicenseAlreadyExists:
		response.Conflict(w, "License number already exists")
	case usecase.ErrSpecialtyNotFound:
		response.BadRequest(w, "Specialty not found")
	case usecase.ErrCityNotFound:
		response.BadRequest(w, "City not found")
	case usecase.ErrInvalidFee:
		response.BadRequest(w, "Consultation fee must be a non-negative number")
	default:
		response.InternalServerError(w, "Failed to process doctor")
	}
}

func parseIDVar(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	return uint(id), err
}
