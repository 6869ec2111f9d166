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

type AdvertisementHandler struct {
	adUsecase usecase.AdvertisementUsecase
	validator *validator.CustomValidator
}

func NewAdvertisementHandler(adUsecase usecase.AdvertisementUsecase, validator *validator.CustomValidator) *AdvertisementHandler {
	return &AdvertisementHandler{
		adUsecase: adUsecase,
		validator: validator,
	}
}

// GetLive returns the ads a public page should render for a position today
// @Summary Get live advertisements for a position
// @Tags Advertisements
// @Produce json
// @Param position query string true "Ad position"
// @Success 200 {object} response.Response
// @Router /advertisements [get]
func (h *AdvertisementHandler) GetLive(w http.ResponseWriter, r *http.Request) {
	position := r.URL.Query().Get("position")
	if position == "" {
		response.BadRequest(w, "position is required")
		return
	}

	ads, err := h.adUsecase.GetLiveByPosition(r.Context(), position)
	if err != nil {
		response.InternalServerError(w, "Failed to get advertisements")
		return
	}

	response.Success(w, http.StatusOK, "Advertisements retrieved successfully", ads)
}

// RecordClick counts a click-through on an ad
// @Summary Record advertisement click
// @Tags Advertisements
// @Produce json
// @Param id path int true "Advertisement ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /advertisements/{id}/click [post]
func (h *AdvertisementHandler) RecordClick(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r)
	if err != nil {
		response.BadRequest(w, "Invalid advertisement ID")
		return
	}

	if err := h.adUsecase.RecordClick(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrAdNotFound:
			response.NotFound(w, "Advertisement not found")
		default:
			response.InternalServerError(w, "Failed to record click")
		}
		return
	}

	response.Success(w, http.StatusOK, "Click recorded", nil)
}

// List returns all ads for the back office
// @Summary List advertisements
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Response
// @Router /admin/advertisements [get]
func (h *AdvertisementHandler) List(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 20)

	ads, total, err := h.adUsecase.GetAll(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list advertisements")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Advertisements retrieved successfully", ads,
		response.NewMeta(page, limit, total))
}

// Get returns one ad
// @Summary Get advertisement
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "Advertisement ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/advertisements/{id} [get]
func (h *AdvertisementHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r)
	if err != nil {
		response.BadRequest(w, "Invalid advertisement ID")
		return
	}

	ad, err := h.adUsecase.Get(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrAdNotFound:
			response.NotFound(w, "Advertisement not found")
		default:
			response.InternalServerError(w, "Failed to get advertisement")
		}
		return
	}

	response.Success(w, http.StatusOK, "Advertisement retrieved successfully", ad)
}

// Create adds an ad
// @Summary Create advertisement
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAdvertisementRequest true "Create Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/advertisements [post]
func (h *AdvertisementHandler) Create(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateAdvertisementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	ad, err := h.adUsecase.Create(r.Context(), actorID, &req)
	if err != nil {
		h.writeAdError(w, err, "Failed to create advertisement")
		return
	}

	response.Success(w, http.StatusCreated, "Advertisement created successfully", ad)
}

// Update modifies an ad
// @Summary Update advertisement
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Advertisement ID"
// @Param request body dto.UpdateAdvertisementRequest true "Update Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/advertisements/{id} [put]
func (h *AdvertisementHandler) Update(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := parseIDVar(r)
	if err != nil {
		response.BadRequest(w, "Invalid advertisement ID")
		return
	}

	var req dto.UpdateAdvertisementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	ad, err := h.adUsecase.Update(r.Context(), actorID, id, &req)
	if err != nil {
		h.writeAdError(w, err, "Failed to update advertisement")
		return
	}

	response.Success(w, http.StatusOK, "Advertisement updated successfully", ad)
}

// Delete removes an ad
// @Summary Delete advertisement
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "Advertisement ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/advertisements/{id} [delete]
func (h *AdvertisementHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := parseIDVar(r)
	if err != nil {
		response.BadRequest(w, "Invalid advertisement ID")
		return
	}

	if err := h.adUsecase.Delete(r.Context(), actorID, id); err != nil {
		h.writeAdError(w, err, "Failed to delete advertisement")
		return
	}

	response.Success(w, http.StatusOK, "Advertisement deleted successfully", nil)
}

func (h *AdvertisementHandler) writeAdError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrAdNotFound:
		response.NotFound(w, "Advertisement not found")
	case usecase.ErrInvalidAdDate:
		response.BadRequest(w, "Dates must use the YYYY-MM-DD format")
	case usecase.ErrInvalidAdWindow:
		response.BadRequest(w, "End date must not precede start date")
	default:
		response.InternalServerError(w, fallback)
	}
}
