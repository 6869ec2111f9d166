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

type CityHandler struct {
	cityUsecase usecase.CityUsecase
	validator   *validator.CustomValidator
}

func NewCityHandler(cityUsecase usecase.CityUsecase, validator *validator.CustomValidator) *CityHandler {
	return &CityHandler{
		cityUsecase: cityUsecase,
		validator:   validator,
	}
}

// List returns cities; the public route serves active ones only
// @Summary List cities
// @Tags Cities
// @Produce json
// @Param include_inactive query bool false "Include inactive cities"
// @Success 200 {object} response.Response
// @Router /cities [get]
func (h *CityHandler) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := !queryBool(r, "include_inactive")

	cities, err := h.cityUsecase.GetAll(r.Context(), activeOnly)
	if err != nil {
		response.InternalServerError(w, "Failed to list cities")
		return
	}

	response.Success(w, http.StatusOK, "Cities retrieved successfully", cities)
}

// Get returns one city
// @Summary Get city
// @Tags Cities
// @Produce json
// @Param id path int true "City ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /cities/{id} [get]
func (h *CityHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r)
	if err != nil {
		response.BadRequest(w, "Invalid city ID")
		return
	}

	city, err := h.cityUsecase.Get(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrCityNotFound:
			response.NotFound(w, "City not found")
		default:
			response.InternalServerError(w, "Failed to get city")
		}
		return
	}

	response.Success(w, http.StatusOK, "City retrieved successfully", city)
}

// Create adds a city
// @Summary Create city
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateCityRequest true "Create Request"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/cities [post]
func (h *CityHandler) Create(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateCityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	city, err := h.cityUsecase.Create(r.Context(), actorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrCityExists:
			response.Conflict(w, "City already exists")
		default:
			response.InternalServerError(w, "Failed to create city")
		}
		return
	}

	response.Success(w, http.StatusCreated, "City created successfully", city)
}

// Update modifies a city
// @Summary Update city
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "City ID"
// @Param request body dto.UpdateCityRequest true "Update Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/cities/{id} [put]
func (h *CityHandler) Update(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := parseIDVar(r)
	if err != nil {
		response.BadRequest(w, "Invalid city ID")
		return
	}

	var req dto.UpdateCityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	city, err := h.cityUsecase.Update(r.Context(), actorID, id, &req)
	if err != nil {
		switch err {
		case usecase.ErrCityNotFound:
			response.NotFound(w, "City not found")
		case usecase.ErrCityExists:
			response.Conflict(w, "City already exists")
		default:
			response.InternalServerError(w, "Failed to update city")
		}
		return
	}

	response.Success(w, http.StatusOK, "City updated successfully", city)
}

// Delete removes a city unless doctors still practice there
// @Summary Delete city
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "City ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/cities/{id} [delete]
func (h *CityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := parseIDVar(r)
	if err != nil {
		response.BadRequest(w, "Invalid city ID")
		return
	}

	if err := h.cityUsecase.Delete(r.Context(), actorID, id); err != nil {
		switch err {
		case usecase.ErrCityNotFound:
			response.NotFound(w, "City not found")
		case usecase.ErrCityInUse:
			response.Conflict(w, "City is referenced by doctor locations")
		default:
			response.InternalServerError(w, "Failed to delete city")
		}
		return
	}

	response.Success(w, http.StatusOK, "City deleted successfully", nil)
}
