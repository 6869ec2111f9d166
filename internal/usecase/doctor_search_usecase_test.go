package usecase

import (
	"testing"

	"hello-doctors/internal/delivery/dto"
	"hello-doctors/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

func newSearchUsecaseForTest(cities []entity.City) *doctorSearchUsecase {
	return &doctorSearchUsecase{
		log:      logrus.New(),
		cityRepo: &fakeCityRepo{cities: cities},
	}
}

func TestBuildFilter_Defaults(t *testing.T) {
	u := newSearchUsecaseForTest(nil)

	filter, err := u.buildFilter(&dto.SearchDoctorsRequest{})
	if err != nil {
		t.Fatalf("buildFilter returned error: %v", err)
	}
	if filter.Page != 1 {
		t.Errorf("Page = %d, want 1", filter.Page)
	}
	if filter.Sort != entity.DoctorSortName {
		t.Errorf("Sort = %q, want %q", filter.Sort, entity.DoctorSortName)
	}
}

func TestBuildFilter_UnknownSortFallsBackToName(t *testing.T) {
	u := newSearchUsecaseForTest(nil)

	filter, err := u.buildFilter(&dto.SearchDoctorsRequest{Sort: "rating"})
	if err != nil {
		t.Fatalf("buildFilter returned error: %v", err)
	}
	if filter.Sort != entity.DoctorSortName {
		t.Errorf("Sort = %q, want %q", filter.Sort, entity.DoctorSortName)
	}
}

func TestBuildFilter_KeepsValidSorts(t *testing.T) {
	u := newSearchUsecaseForTest(nil)

	for _, sort := range []string{entity.DoctorSortExperience, entity.DoctorSortFee} {
		filter, err := u.buildFilter(&dto.SearchDoctorsRequest{Sort: sort})
		if err != nil {
			t.Fatalf("buildFilter(%q) returned error: %v", sort, err)
		}
		if filter.Sort != sort {
			t.Errorf("Sort = %q, want %q", filter.Sort, sort)
		}
	}
}

func TestBuildFilter_NegativePageClampsToOne(t *testing.T) {
	u := newSearchUsecaseForTest(nil)

	filter, err := u.buildFilter(&dto.SearchDoctorsRequest{Page: -3})
	if err != nil {
		t.Fatalf("buildFilter returned error: %v", err)
	}
	if filter.Page != 1 {
		t.Errorf("Page = %d, want 1", filter.Page)
	}
}

func TestBuildFilter_CityNameResolvesCaseInsensitively(t *testing.T) {
	u := newSearchUsecaseForTest([]entity.City{{ID: 7, Name: "Lucknow", Slug: "lucknow"}})

	filter, err := u.buildFilter(&dto.SearchDoctorsRequest{CityName: "lucknow"})
	if err != nil {
		t.Fatalf("buildFilter returned error: %v", err)
	}
	if filter.CityID != 7 {
		t.Errorf("CityID = %d, want 7", filter.CityID)
	}
}

func TestBuildFilter_UnknownCityNameDegradesToNoFilter(t *testing.T) {
	u := newSearchUsecaseForTest([]entity.City{{ID: 7, Name: "Lucknow", Slug: "lucknow"}})

	filter, err := u.buildFilter(&dto.SearchDoctorsRequest{CityName: "Atlantis"})
	if err != nil {
		t.Fatalf("buildFilter returned error: %v", err)
	}
	if filter.CityID != 0 {
		t.Errorf("CityID = %d, want 0 for unknown city name", filter.CityID)
	}
}

func TestBuildFilter_CityIDWinsOverCityName(t *testing.T) {
	u := newSearchUsecaseForTest([]entity.City{{ID: 7, Name: "Lucknow", Slug: "lucknow"}})

	filter, err := u.buildFilter(&dto.SearchDoctorsRequest{CityID: 3, CityName: "Lucknow"})
	if err != nil {
		t.Fatalf("buildFilter returned error: %v", err)
	}
	if filter.CityID != 3 {
		t.Errorf("CityID = %d, want 3", filter.CityID)
	}
}
