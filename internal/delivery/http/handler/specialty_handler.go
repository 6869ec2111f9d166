package handler

import (
	"net/http"

	"hello-doctors/internal/delivery/dto"
	"hello-doctors/internal/delivery/http/middleware"
	"hello-doctors/internal/usecase"
	"hello-doctors/pkg/response"
	"hello-doctors/pkg/storage"
	"hello-doctors/pkg/validator"
)

// SpecialtyHandler covers the public specialty listing and the back-office
// CRUD. Writes arrive as multipart forms so an illustration image can be
// attached.
type SpecialtyHandler struct {
	specialtyUsecase usecase.SpecialtyUsecase
	validator        *validator.CustomValidator
	imageDisk        *storage.Disk
}

// NewSpecialtyHandler takes the public images disk: specialty illustrations
// are admin-managed assets, not user uploads.
func NewSpecialtyHandler(specialtyUsecase usecase.SpecialtyUsecase, validator *validator.CustomValidator, imageDisk *storage.Disk) *SpecialtyHandler {
	return &SpecialtyHandler{
		specialtyUsecase: specialtyUsecase,
		validator:        validator,
		imageDisk:        imageDisk,
	}
}

// List returns specialties; the public route serves active ones only
// @Summary List specialties
// @Tags Specialties
// @Produce json
// @Param include_inactive query bool false "Include inactive specialties"
// @Success 200 {object} response.Response
// @Router /specialties [get]
func (h *SpecialtyHandler) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := !queryBool(r, "include_inactive")

	specialties, err := h.specialtyUsecase.GetAll(r.Context(), activeOnly)
	if err != nil {
		response.InternalServerError(w, "Failed to list specialties")
		return
	}

	response.Success(w, http.StatusOK, "Specialties retrieved successfully", specialties)
}

// Get returns one specialty
// @Summary Get specialty
// @Tags Specialties
// @Produce json
// @Param id path int true "Specialty ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /specialties/{id} [get]
func (h *SpecialtyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r)
	if err != nil {
		response.BadRequest(w, "Invalid specialty ID")
		return
	}

	specialty, err := h.specialtyUsecase.Get(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrSpecialtyNotFound:
			response.NotFound(w, "Specialty not found")
		default:
			response.InternalServerError(w, "Failed to get specialty")
		}
		return
	}

	response.Success(w, http.StatusOK, "Specialty retrieved successfully", specialty)
}

// Create adds a specialty
// @Summary Create specialty
// @Tags Admin
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/specialties [post]
func (h *SpecialtyHandler) Create(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid multipart form", nil)
		return
	}

	req := dto.CreateSpecialtyRequest{
		Name:        r.FormValue("name"),
		Icon:        r.FormValue("icon"),
		Description: r.FormValue("description"),
		SortOrder:   int(formUint(r, "sort_order")),
	}
	if raw := r.FormValue("is_active"); raw != "" {
		active := formBool(r, "is_active")
		req.IsActive = &active
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	imagePath, err := saveStaticImage(r, "image", h.imageDisk)
	if err != nil {
		response.InternalServerError(w, "Failed to store specialty image")
		return
	}

	specialty, err := h.specialtyUsecase.Create(r.Context(), actorID, &req, imagePath)
	if err != nil {
		h.imageDisk.Remove(imagePath)
		switch err {
		case usecase.ErrSpecialtyExists:
			response.Conflict(w, "Specialty already exists")
		default:
			response.InternalServerError(w, "Failed to create specialty")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Specialty created successfully", specialty)
}

// Update modifies a specialty
// @Summary Update specialty
// @Tags Admin
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Specialty ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/specialties/{id} [put]
func (h *SpecialtyHandler) Update(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := parseIDVar(r)
	if err != nil {
		response.BadRequest(w, "Invalid specialty ID")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid multipart form", nil)
		return
	}

	var req dto.UpdateSpecialtyRequest
	if v := r.FormValue("name"); v != "" {
		req.Name = &v
	}
	if v := r.FormValue("icon"); v != "" {
		req.Icon = &v
	}
	if v := r.FormValue("description"); v != "" {
		req.Description = &v
	}
	if raw := r.FormValue("is_active"); raw != "" {
		active := formBool(r, "is_active")
		req.IsActive = &active
	}
	req.SortOrder = formIntPtr(r, "sort_order")

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	imagePath, err := saveStaticImage(r, "image", h.imageDisk)
	if err != nil {
		response.InternalServerError(w, "Failed to store specialty image")
		return
	}

	specialty, err := h.specialtyUsecase.Update(r.Context(), actorID, id, &req, imagePath)
	if err != nil {
		h.imageDisk.Remove(imagePath)
		switch err {
		case usecase.ErrSpecialtyNotFound:
			response.NotFound(w, "Specialty not found")
		case usecase.ErrSpecialtyExists:
			response.Conflict(w, "Specialty already exists")
		default:
			response.InternalServerError(w, "Failed to update specialty")
		}
		return
	}

	response.Success(w, http.StatusOK, "Specialty updated successfully", specialty)
}

// Delete removes a specialty unless doctor profiles still reference it
// @Summary Delete specialty
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "Specialty ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/specialties/{id} [delete]
func (h *SpecialtyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := parseIDVar(r)
	if err != nil {
		response.BadRequest(w, "Invalid specialty ID")
		return
	}

	if err := h.specialtyUsecase.Delete(r.Context(), actorID, id); err != nil {
		switch err {
		case usecase.ErrSpecialtyNotFound:
			response.NotFound(w, "Specialty not found")
		case usecase.ErrSpecialtyInUse:
			response.Conflict(w, "Specialty is referenced by doctor profiles")
		default:
			response.InternalServerError(w, "Failed to delete specialty")
		}
		return
	}

	response.Success(w, http.StatusOK, "Specialty deleted successfully", nil)
}
