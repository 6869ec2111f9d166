package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"hello-doctors/internal/delivery/dto"
)

type fakeSearchUsecase struct {
	lastReq *dto.SearchDoctorsRequest
}

func (f *fakeSearchUsecase) Search(ctx context.Context, req *dto.SearchDoctorsRequest) ([]dto.DoctorSummaryResponse, int64, int, error) {
	f.lastReq = req
	return []dto.DoctorSummaryResponse{}, 0, req.Page, nil
}

func (f *fakeSearchUsecase) GetDoctorDetail(ctx context.Context, id uint) (*dto.DoctorDetailResponse, error) {
	return nil, nil
}

func TestSearch_QueryParameterNames(t *testing.T) {
	fake := &fakeSearchUsecase{}
	h := NewDoctorHandler(fake)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/search?city_name=Lucknow&specialty=4&available_online=true&sort=fee&page=2", nil)
	h.Search(httptest.NewRecorder(), r)

	if fake.lastReq == nil {
		t.Fatal("search usecase was not called")
	}
	if fake.lastReq.CityName != "Lucknow" {
		t.Errorf("CityName = %q, want Lucknow", fake.lastReq.CityName)
	}
	if fake.lastReq.SpecialtyID != 4 {
		t.Errorf("SpecialtyID = %d, want 4", fake.lastReq.SpecialtyID)
	}
	if !fake.lastReq.AvailableOnline {
		t.Error("AvailableOnline should be true")
	}
	if fake.lastReq.Sort != "fee" {
		t.Errorf("Sort = %q, want fee", fake.lastReq.Sort)
	}
	if fake.lastReq.Page != 2 {
		t.Errorf("Page = %d, want 2", fake.lastReq.Page)
	}
}

func TestSearch_ParameterAliases(t *testing.T) {
	fake := &fakeSearchUsecase{}
	h := NewDoctorHandler(fake)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/search?city=Delhi&specialty_id=2", nil)
	h.Search(httptest.NewRecorder(), r)

	if fake.lastReq == nil {
		t.Fatal("search usecase was not called")
	}
	if fake.lastReq.CityName != "Delhi" {
		t.Errorf("CityName = %q, want Delhi", fake.lastReq.CityName)
	}
	if fake.lastReq.SpecialtyID != 2 {
		t.Errorf("SpecialtyID = %d, want 2", fake.lastReq.SpecialtyID)
	}
}

func TestSearch_PrimaryNamesWinOverAliases(t *testing.T) {
	fake := &fakeSearchUsecase{}
	h := NewDoctorHandler(fake)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/search?city_name=Lucknow&city=Delhi&specialty=4&specialty_id=2", nil)
	h.Search(httptest.NewRecorder(), r)

	if fake.lastReq.CityName != "Lucknow" {
		t.Errorf("CityName = %q, want Lucknow", fake.lastReq.CityName)
	}
	if fake.lastReq.SpecialtyID != 4 {
		t.Errorf("SpecialtyID = %d, want 4", fake.lastReq.SpecialtyID)
	}
}
