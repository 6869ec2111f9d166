package handler

import (
	"net/http"
	"strconv"

	"hello-doctors/internal/delivery/dto"
	"hello-doctors/internal/domain/entity"
	"hello-doctors/internal/usecase"
	"hello-doctors/pkg/response"

	"github.com/gorilla/mux"
)

// DoctorHandler serves the public directory endpoints.
type DoctorHandler struct {
	searchUsecase usecase.DoctorSearchUsecase
}

func NewDoctorHandler(searchUsecase usecase.DoctorSearchUsecase) *DoctorHandler {
	return &DoctorHandler{searchUsecase: searchUsecase}
}

// Search lists verified doctors matching the query parameters
// @Summary Search doctors
// @Tags Doctors
// @Produce json
// @Param search query string false "Free text search"
// @Param city_id query int false "City filter"
// @Param city_name query string false "City name filter"
// @Param specialty query int false "Specialty filter"
// @Param available_online query bool false "Online consultation filter"
// @Param sort query string false "Sort: name, experience or fee"
// @Param page query int false "Page number"
// @Success 200 {object} response.Response
// @Router /search [get]
func (h *DoctorHandler) Search(w http.ResponseWriter, r *http.Request) {
	// city and specialty_id are accepted as aliases for callers built
	// against the old parameter names.
	cityName := r.URL.Query().Get("city_name")
	if cityName == "" {
		cityName = r.URL.Query().Get("city")
	}
	specialtyID := queryUint(r, "specialty")
	if specialtyID == 0 {
		specialtyID = queryUint(r, "specialty_id")
	}

	req := &dto.SearchDoctorsRequest{
		Search:          r.URL.Query().Get("search"),
		CityID:          queryUint(r, "city_id"),
		CityName:        cityName,
		SpecialtyID:     specialtyID,
		AvailableOnline: queryBool(r, "available_online"),
		Sort:            r.URL.Query().Get("sort"),
		Page:            queryInt(r, "page", 1),
	}

	doctors, total, page, err := h.searchUsecase.Search(r.Context(), req)
	if err != nil {
		response.InternalServerError(w, "Failed to search doctors")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Doctors retrieved successfully", doctors,
		response.NewMeta(page, entity.DoctorPageSize, total))
}

// GetDetail returns one verified doctor's public profile
// @Summary Get doctor detail
// @Tags Doctors
// @Produce json
// @Param id path int true "Doctor profile ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctors/{id} [get]
func (h *DoctorHandler) GetDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	doctor, err := h.searchUsecase.GetDoctorDetail(r.Context(), uint(id))
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to get doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}
