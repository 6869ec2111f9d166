package handler

import (
	"encoding/json"
	"net/http"

	"hello-doctors/internal/delivery/dto"
	"hello-doctors/internal/delivery/http/middleware"
	"hello-doctors/internal/usecase"
	"hello-doctors/pkg/response"
	"hello-doctors/pkg/validator"
)

type SiteSettingHandler struct {
	settingUsecase usecase.SiteSettingUsecase
	validator      *validator.CustomValidator
}

func NewSiteSettingHandler(settingUsecase usecase.SiteSettingUsecase, validator *validator.CustomValidator) *SiteSettingHandler {
	return &SiteSettingHandler{
		settingUsecase: settingUsecase,
		validator:      validator,
	}
}

// Get returns the site settings grouped by section, optionally filtered to
// one group
// @Summary Get site settings
// @Tags Settings
// @Produce json
// @Param group query string false "Setting group"
// @Success 200 {object} response.Response
// @Router /settings [get]
func (h *SiteSettingHandler) Get(w http.ResponseWriter, r *http.Request) {
	if group := r.URL.Query().Get("group"); group != "" {
		settings, err := h.settingUsecase.GetByGroup(r.Context(), group)
		if err != nil {
			response.InternalServerError(w, "Failed to get settings")
			return
		}
		response.Success(w, http.StatusOK, "Settings retrieved successfully", settings)
		return
	}

	settings, err := h.settingUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get settings")
		return
	}

	response.Success(w, http.StatusOK, "Settings retrieved successfully", settings)
}

// Update upserts a batch of settings atomically
// @Summary Update site settings
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateSettingsRequest true "Settings"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/settings [put]
func (h *SiteSettingHandler) Update(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	settings, err := h.settingUsecase.UpdateBatch(r.Context(), actorID, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to update settings")
		return
	}

	response.Success(w, http.StatusOK, "Settings updated successfully", settings)
}
