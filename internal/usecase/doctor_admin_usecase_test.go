package usecase

import (
	"context"
	"testing"

	"hello-doctors/internal/converter"
	"hello-doctors/internal/domain/entity"
	"hello-doctors/internal/service"
	"hello-doctors/pkg/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func newAdminUsecaseForTest(journal *callJournal, failOn string) *doctorAdminUsecase {
	resolver := service.NewImageResolver("http://example.com", storage.NewDisk("/tmp", "http://example.com/uploads"))
	return &doctorAdminUsecase{
		log:               logrus.New(),
		userRepo:          &fakeUserRepo{journal: journal, failOn: failOn},
		doctorProfileRepo: &fakeDoctorProfileRepo{journal: journal, failOn: failOn},
		workingHourRepo:   &fakeWorkingHourRepo{journal: journal, failOn: failOn},
		searchTagRepo:     &fakeSearchTagRepo{journal: journal, failOn: failOn},
		auditService:      &fakeAuditService{journal: journal},
		doctorConverter:   converter.NewDoctorConverter(resolver),
	}
}

func testProfile() *entity.DoctorProfile {
	active := true
	return &entity.DoctorProfile{
		ID:     42,
		UserID: uuid.New(),
		User: entity.User{
			FullName: "Asha Verma",
			Email:    "asha@example.com",
			IsActive: &active,
		},
	}
}

func TestDeleteDoctorTx_Order(t *testing.T) {
	journal := &callJournal{}
	u := newAdminUsecaseForTest(journal, "")

	if err := u.deleteDoctorTx(context.Background(), nil, testProfile(), uuid.New()); err != nil {
		t.Fatalf("deleteDoctorTx returned error: %v", err)
	}

	want := []string{
		"profile.DeleteCities",
		"hours.Delete",
		"tags.Delete",
		"profile.Delete",
		"user.Delete",
		"audit." + entity.AuditActionDoctorDelete,
	}
	if len(journal.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", journal.calls, want)
	}
	for i := range want {
		if journal.calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, journal.calls[i], want[i])
		}
	}
}

func TestDeleteDoctorTx_StopsOnFailure(t *testing.T) {
	cases := []struct {
		failOn    string
		wantCalls int
	}{
		{"profile.DeleteCities", 1},
		{"hours.Delete", 2},
		{"tags.Delete", 3},
		{"profile.Delete", 4},
		{"user.Delete", 5},
	}

	for _, tc := range cases {
		journal := &callJournal{}
		u := newAdminUsecaseForTest(journal, tc.failOn)

		err := u.deleteDoctorTx(context.Background(), nil, testProfile(), uuid.New())
		if err == nil {
			t.Errorf("failOn=%s: expected error, got nil", tc.failOn)
			continue
		}
		if len(journal.calls) != tc.wantCalls {
			t.Errorf("failOn=%s: calls = %v, want %d entries", tc.failOn, journal.calls, tc.wantCalls)
		}
	}
}
