package usecase

import (
	"context"
	"errors"
	"strings"

	"hello-doctors/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository fakes. The db argument is ignored; methods record
// the call on a shared journal so tests can assert ordering.

type callJournal struct {
	calls []string
}

func (j *callJournal) record(name string) {
	j.calls = append(j.calls, name)
}

type fakeCityRepo struct {
	cities []entity.City
	err    error
}

func (f *fakeCityRepo) Create(db *gorm.DB, city *entity.City) error { return nil }

func (f *fakeCityRepo) FindAll(db *gorm.DB, activeOnly bool) ([]entity.City, error) {
	return f.cities, f.err
}

func (f *fakeCityRepo) FindByID(db *gorm.DB, id uint) (*entity.City, error) {
	for i := range f.cities {
		if f.cities[i].ID == id {
			return &f.cities[i], nil
		}
	}
	return nil, f.err
}

func (f *fakeCityRepo) FindBySlug(db *gorm.DB, slug string) (*entity.City, error) {
	for i := range f.cities {
		if f.cities[i].Slug == slug {
			return &f.cities[i], nil
		}
	}
	return nil, f.err
}

func (f *fakeCityRepo) FindByName(db *gorm.DB, name string) (*entity.City, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.cities {
		if strings.EqualFold(f.cities[i].Name, name) {
			return &f.cities[i], nil
		}
	}
	return nil, nil
}

func (f *fakeCityRepo) Update(db *gorm.DB, city *entity.City) error { return nil }

func (f *fakeCityRepo) Delete(db *gorm.DB, id uint) (int64, error) { return 1, nil }

type fakeDoctorProfileRepo struct {
	journal  *callJournal
	failOn   string
	profiles map[uint]*entity.DoctorProfile
}

func (f *fakeDoctorProfileRepo) fail(name string) error {
	f.journal.record(name)
	if f.failOn == name {
		return errFakeRepo
	}
	return nil
}

func (f *fakeDoctorProfileRepo) Create(db *gorm.DB, profile *entity.DoctorProfile) error {
	return f.fail("profile.Create")
}

func (f *fakeDoctorProfileRepo) FindByID(db *gorm.DB, id uint) (*entity.DoctorProfile, error) {
	return f.profiles[id], nil
}

func (f *fakeDoctorProfileRepo) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error) {
	for _, p := range f.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeDoctorProfileRepo) FindVerifiedByID(db *gorm.DB, id uint) (*entity.DoctorProfile, error) {
	return f.profiles[id], nil
}

func (f *fakeDoctorProfileRepo) FindAll(db *gorm.DB, limit, offset int) ([]entity.DoctorProfile, int64, error) {
	return nil, 0, nil
}

func (f *fakeDoctorProfileRepo) Search(db *gorm.DB, filter *entity.DoctorFilter) ([]entity.DoctorProfile, int64, error) {
	return nil, 0, nil
}

func (f *fakeDoctorProfileRepo) Update(db *gorm.DB, profile *entity.DoctorProfile) error {
	return f.fail("profile.Update")
}

func (f *fakeDoctorProfileRepo) Delete(db *gorm.DB, id uint) (int64, error) {
	return 1, f.fail("profile.Delete")
}

func (f *fakeDoctorProfileRepo) ReplaceCities(db *gorm.DB, doctorProfileID uint, links []entity.DoctorCity) error {
	return f.fail("profile.ReplaceCities")
}

func (f *fakeDoctorProfileRepo) DeleteCities(db *gorm.DB, doctorProfileID uint) error {
	return f.fail("profile.DeleteCities")
}

type fakeWorkingHourRepo struct {
	journal *callJournal
	failOn  string
}

func (f *fakeWorkingHourRepo) fail(name string) error {
	f.journal.record(name)
	if f.failOn == name {
		return errFakeRepo
	}
	return nil
}

func (f *fakeWorkingHourRepo) CreateBatch(db *gorm.DB, hours []entity.DoctorWorkingHour) error {
	return f.fail("hours.CreateBatch")
}

func (f *fakeWorkingHourRepo) FindByDoctorProfileID(db *gorm.DB, doctorProfileID uint) ([]entity.DoctorWorkingHour, error) {
	return nil, nil
}

func (f *fakeWorkingHourRepo) DeleteByDoctorProfileID(db *gorm.DB, doctorProfileID uint) error {
	return f.fail("hours.Delete")
}

type fakeSearchTagRepo struct {
	journal *callJournal
	failOn  string
	tags    map[uint]string
}

func (f *fakeSearchTagRepo) fail(name string) error {
	f.journal.record(name)
	if f.failOn == name {
		return errFakeRepo
	}
	return nil
}

func (f *fakeSearchTagRepo) Upsert(db *gorm.DB, doctorProfileID uint, tags string) error {
	if f.tags != nil {
		f.tags[doctorProfileID] = tags
	}
	return f.fail("tags.Upsert")
}

func (f *fakeSearchTagRepo) DeleteByDoctorProfileID(db *gorm.DB, doctorProfileID uint) error {
	return f.fail("tags.Delete")
}

type fakeUserRepo struct {
	journal *callJournal
	failOn  string
}

func (f *fakeUserRepo) fail(name string) error {
	f.journal.record(name)
	if f.failOn == name {
		return errFakeRepo
	}
	return nil
}

func (f *fakeUserRepo) Create(db *gorm.DB, user *entity.User) error { return f.fail("user.Create") }

func (f *fakeUserRepo) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) { return nil, nil }

func (f *fakeUserRepo) FindAll(db *gorm.DB, roleID int, limit, offset int) ([]entity.User, int64, error) {
	return nil, 0, nil
}

func (f *fakeUserRepo) Update(db *gorm.DB, user *entity.User) error { return f.fail("user.Update") }

func (f *fakeUserRepo) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	return 1, f.fail("user.Delete")
}

type fakeSpecialtyRepo struct {
	specialties map[uint]*entity.Specialty
	doctorCount int64
}

func (f *fakeSpecialtyRepo) Create(db *gorm.DB, specialty *entity.Specialty) error { return nil }

func (f *fakeSpecialtyRepo) FindAll(db *gorm.DB, activeOnly bool) ([]entity.Specialty, error) {
	return nil, nil
}

func (f *fakeSpecialtyRepo) FindByID(db *gorm.DB, id uint) (*entity.Specialty, error) {
	return f.specialties[id], nil
}

func (f *fakeSpecialtyRepo) CountDoctors(db *gorm.DB, specialtyID uint) (int64, error) {
	return f.doctorCount, nil
}

func (f *fakeSpecialtyRepo) Update(db *gorm.DB, specialty *entity.Specialty) error { return nil }

func (f *fakeSpecialtyRepo) Delete(db *gorm.DB, id uint) (int64, error) { return 1, nil }

type fakeAuditService struct {
	journal *callJournal
}

func (f *fakeAuditService) LogCreate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error {
	f.journal.record("audit." + action)
	return nil
}

func (f *fakeAuditService) LogUpdate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	f.journal.record("audit." + action)
	return nil
}

func (f *fakeAuditService) LogDelete(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue interface{}) error {
	f.journal.record("audit." + action)
	return nil
}

var errFakeRepo = errors.New("fake repository failure")
