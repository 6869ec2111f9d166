package usecase

import (
	"testing"

	"hello-doctors/internal/delivery/dto"
	"hello-doctors/internal/domain/entity"

	"github.com/google/uuid"
)

func TestParseFee(t *testing.T) {
	fee, err := parseFee("500.50")
	if err != nil {
		t.Fatalf("parseFee returned error: %v", err)
	}
	if fee == nil || fee.String() != "500.5" {
		t.Errorf("parseFee(500.50) = %v, want 500.5", fee)
	}
}

func TestParseFee_EmptyMeansNoFee(t *testing.T) {
	fee, err := parseFee("")
	if err != nil {
		t.Fatalf("parseFee returned error: %v", err)
	}
	if fee != nil {
		t.Errorf("parseFee(\"\") = %v, want nil", fee)
	}
}

func TestParseFee_RejectsNegative(t *testing.T) {
	if _, err := parseFee("-10"); err != ErrInvalidFee {
		t.Errorf("parseFee(-10) error = %v, want ErrInvalidFee", err)
	}
}

func TestParseFee_RejectsGarbage(t *testing.T) {
	if _, err := parseFee("free"); err != ErrInvalidFee {
		t.Errorf("parseFee(free) error = %v, want ErrInvalidFee", err)
	}
}

func TestWorkingHoursFromRequests_DefaultsAvailable(t *testing.T) {
	hours := workingHoursFromRequests(9, []dto.WorkingHourRequest{
		{TimingText: "Mon-Fri 10am-6pm"},
	})
	if len(hours) != 1 {
		t.Fatalf("got %d hours, want 1", len(hours))
	}
	if hours[0].DoctorProfileID != 9 {
		t.Errorf("DoctorProfileID = %d, want 9", hours[0].DoctorProfileID)
	}
	if hours[0].IsAvailable == nil || !*hours[0].IsAvailable {
		t.Error("IsAvailable should default to true")
	}
}

func TestWorkingHoursFromRequests_KeepsExplicitUnavailable(t *testing.T) {
	unavailable := false
	hours := workingHoursFromRequests(9, []dto.WorkingHourRequest{
		{TimingText: "Closed Sundays", IsAvailable: &unavailable},
	})
	if hours[0].IsAvailable == nil || *hours[0].IsAvailable {
		t.Error("IsAvailable should stay false when set explicitly")
	}
}

func TestRegenerateSearchTags_IncludesSpecialtyName(t *testing.T) {
	tags := map[uint]string{}
	specialtyID := uint(3)
	profile := &entity.DoctorProfile{
		ID:               42,
		UserID:           uuid.New(),
		SpecializationID: &specialtyID,
		Qualification:    "MBBS",
		Bio:              "Senior consultant.",
		User:             entity.User{FullName: "Asha Verma"},
	}

	specialtyRepo := &fakeSpecialtyRepo{specialties: map[uint]*entity.Specialty{
		3: {ID: 3, Name: "Skin Care"},
	}}
	searchTagRepo := &fakeSearchTagRepo{journal: &callJournal{}, tags: tags}

	if err := regenerateSearchTags(nil, profile, specialtyRepo, searchTagRepo); err != nil {
		t.Fatalf("regenerateSearchTags returned error: %v", err)
	}

	want := "asha verma skin care senior consultant. mbbs"
	if tags[42] != want {
		t.Errorf("tags = %q, want %q", tags[42], want)
	}
}

func TestRegenerateSearchTags_NoSpecialty(t *testing.T) {
	tags := map[uint]string{}
	profile := &entity.DoctorProfile{
		ID:     42,
		UserID: uuid.New(),
		User:   entity.User{FullName: "Asha Verma"},
	}

	searchTagRepo := &fakeSearchTagRepo{journal: &callJournal{}, tags: tags}
	if err := regenerateSearchTags(nil, profile, &fakeSpecialtyRepo{}, searchTagRepo); err != nil {
		t.Fatalf("regenerateSearchTags returned error: %v", err)
	}

	if tags[42] != "asha verma" {
		t.Errorf("tags = %q, want %q", tags[42], "asha verma")
	}
}
