package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsDuplicateKeyError(t *testing.T) {
	err := &pgconn.PgError{Code: "23505", ConstraintName: "uq_users_email"}
	if !isDuplicateKeyError(err, "email") {
		t.Error("unique violation on uq_users_email should classify as email duplicate")
	}
	if isDuplicateKeyError(err, "license_number") {
		t.Error("email constraint should not classify as license duplicate")
	}
}

func TestIsDuplicateKeyError_WrappedError(t *testing.T) {
	err := fmt.Errorf("create user: %w", &pgconn.PgError{Code: "23505", ConstraintName: "uq_doctor_profiles_license_number"})
	if !isDuplicateKeyError(err, "license_number") {
		t.Error("wrapped unique violation should still classify")
	}
}

func TestIsDuplicateKeyError_OtherCodes(t *testing.T) {
	if isDuplicateKeyError(&pgconn.PgError{Code: "23503", ConstraintName: "uq_users_email"}, "email") {
		t.Error("foreign key code should not classify as duplicate")
	}
	if isDuplicateKeyError(errors.New("plain error"), "email") {
		t.Error("non-pg error should not classify")
	}
}

func TestIsForeignKeyError(t *testing.T) {
	err := &pgconn.PgError{Code: "23503", ConstraintName: "fk_doctor_profiles_specialization"}
	if !isForeignKeyError(err, "specialization") {
		t.Error("fk violation on specialization should classify")
	}
	if isForeignKeyError(err, "city") {
		t.Error("specialization constraint should not classify as city")
	}
	if isForeignKeyError(&pgconn.PgError{Code: "23505", ConstraintName: "fk_doctor_cities_city"}, "city") {
		t.Error("unique code should not classify as fk violation")
	}
}
