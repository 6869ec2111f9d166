package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"hello-doctors/internal/domain/entity"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlRecorder captures every statement gorm builds so tests can assert on
// the composed SQL without a live database.
type sqlRecorder struct {
	stmts []string
}

func (r *sqlRecorder) LogMode(logger.LogLevel) logger.Interface { return r }

func (r *sqlRecorder) Info(context.Context, string, ...interface{}) {}

func (r *sqlRecorder) Warn(context.Context, string, ...interface{}) {}

func (r *sqlRecorder) Error(context.Context, string, ...interface{}) {}

func (r *sqlRecorder) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	sql, _ := fc()
	r.stmts = append(r.stmts, sql)
}

func newDryRunDB(t *testing.T) (*gorm.DB, *sqlRecorder) {
	t.Helper()
	rec := &sqlRecorder{}
	db, err := gorm.Open(postgres.Open("host=localhost user=test dbname=test"), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               rec,
	})
	if err != nil {
		t.Fatalf("failed to open dry-run db: %v", err)
	}
	return db, rec
}

// searchSQL runs Search under dry-run and returns the count and page
// statements it built.
func searchSQL(t *testing.T, filter *entity.DoctorFilter) (countSQL, pageSQL string) {
	t.Helper()
	db, rec := newDryRunDB(t)

	repo := NewDoctorProfileRepository()
	if _, _, err := repo.Search(db, filter); err != nil {
		t.Fatalf("Search returned error: %v", err)
	}

	for _, sql := range rec.stmts {
		switch {
		case strings.Contains(strings.ToUpper(sql), "COUNT("):
			countSQL = sql
		case strings.Contains(sql, "ORDER BY"):
			pageSQL = sql
		}
	}
	if countSQL == "" || pageSQL == "" {
		t.Fatalf("expected count and page statements, got %v", rec.stmts)
	}
	return countSQL, pageSQL
}

func TestSearch_BaseFilterAlwaysApplied(t *testing.T) {
	countSQL, pageSQL := searchSQL(t, &entity.DoctorFilter{})

	for _, sql := range []string{countSQL, pageSQL} {
		if !strings.Contains(sql, "JOIN users ON users.id = doctor_profiles.user_id") {
			t.Errorf("missing users join: %s", sql)
		}
		if !strings.Contains(sql, "users.is_active = true") {
			t.Errorf("missing active-owner filter: %s", sql)
		}
		if !strings.Contains(sql, "doctor_profiles.is_verified = true") {
			t.Errorf("missing verified filter: %s", sql)
		}
	}
}

func TestSearch_PageQueryHasNoDistinct(t *testing.T) {
	countSQL, pageSQL := searchSQL(t, &entity.DoctorFilter{CityID: 7})

	if !strings.Contains(countSQL, "DISTINCT") {
		t.Errorf("count should deduplicate profile ids: %s", countSQL)
	}
	// DISTINCT on the page query breaks the LOWER(users.full_name) sort on
	// Postgres (42P10); the count must not leak it into the shared statement.
	if strings.Contains(pageSQL, "DISTINCT") {
		t.Errorf("page query must not carry DISTINCT: %s", pageSQL)
	}
	if !strings.Contains(pageSQL, "LIMIT") {
		t.Errorf("page query should be paginated: %s", pageSQL)
	}
}

func TestSearch_FreeTextMatchesFourFields(t *testing.T) {
	_, pageSQL := searchSQL(t, &entity.DoctorFilter{Query: "derm"})

	if !strings.Contains(pageSQL, "LEFT JOIN specialties") || !strings.Contains(pageSQL, "LEFT JOIN search_tags") {
		t.Errorf("free-text search should left-join specialties and tags: %s", pageSQL)
	}
	for _, field := range []string{
		"users.full_name ILIKE",
		"specialties.name ILIKE",
		"search_tags.tags ILIKE",
		"doctor_profiles.bio ILIKE",
	} {
		if !strings.Contains(pageSQL, field) {
			t.Errorf("free-text search missing %s: %s", field, pageSQL)
		}
	}
	if !strings.Contains(pageSQL, "'%derm%'") {
		t.Errorf("free-text pattern should be a substring match: %s", pageSQL)
	}
}

func TestSearch_CityFilterJoinsAssociation(t *testing.T) {
	_, pageSQL := searchSQL(t, &entity.DoctorFilter{CityID: 7})

	if !strings.Contains(pageSQL, "JOIN doctor_cities ON doctor_cities.doctor_profile_id = doctor_profiles.id") {
		t.Errorf("city filter should join the association table: %s", pageSQL)
	}
	if !strings.Contains(pageSQL, "doctor_cities.city_id = 7") {
		t.Errorf("city filter missing city condition: %s", pageSQL)
	}
}

func TestSearch_OnlineFilter(t *testing.T) {
	_, pageSQL := searchSQL(t, &entity.DoctorFilter{AvailableOnline: true})

	if !strings.Contains(pageSQL, "doctor_profiles.is_available_online = true") {
		t.Errorf("online filter missing: %s", pageSQL)
	}
}

func TestSearch_SortOrders(t *testing.T) {
	cases := []struct {
		sort string
		want string
	}{
		{entity.DoctorSortName, "ORDER BY LOWER(users.full_name) ASC, doctor_profiles.id ASC"},
		{"", "ORDER BY LOWER(users.full_name) ASC, doctor_profiles.id ASC"},
		{entity.DoctorSortExperience, "ORDER BY doctor_profiles.experience_years DESC NULLS LAST, doctor_profiles.id ASC"},
		{entity.DoctorSortFee, "ORDER BY doctor_profiles.consultation_fee ASC NULLS LAST, doctor_profiles.id ASC"},
	}

	for _, tc := range cases {
		_, pageSQL := searchSQL(t, &entity.DoctorFilter{Sort: tc.sort})
		if !strings.Contains(pageSQL, tc.want) {
			t.Errorf("sort %q: want %q in %s", tc.sort, tc.want, pageSQL)
		}
	}
}

func TestSearch_Pagination(t *testing.T) {
	_, pageSQL := searchSQL(t, &entity.DoctorFilter{Page: 3})

	if !strings.Contains(pageSQL, "LIMIT 20") {
		t.Errorf("page size should be fixed at 20: %s", pageSQL)
	}
	if !strings.Contains(pageSQL, "OFFSET 40") {
		t.Errorf("page 3 should skip two pages: %s", pageSQL)
	}
}
