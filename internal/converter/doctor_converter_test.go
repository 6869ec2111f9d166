package converter

import (
	"strings"
	"testing"

	"hello-doctors/internal/domain/entity"
	"hello-doctors/internal/service"
	"hello-doctors/pkg/storage"
)

func TestTruncateWords_ShortStringUntouched(t *testing.T) {
	if got := TruncateWords("short bio", 150); got != "short bio" {
		t.Errorf("TruncateWords = %q, want unchanged", got)
	}
}

func TestTruncateWords_CutsAtWordBoundary(t *testing.T) {
	got := TruncateWords("alpha beta gamma delta", 15)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("TruncateWords = %q, want ellipsis suffix", got)
	}
	body := strings.TrimSuffix(got, "...")
	if strings.HasSuffix(body, " ") {
		t.Errorf("TruncateWords = %q, trailing space before ellipsis", got)
	}
	for _, word := range strings.Fields(body) {
		if !strings.Contains("alpha beta gamma delta", word) {
			t.Errorf("TruncateWords split a word: %q", word)
		}
	}
}

func TestTruncateWords_ExactLimitUntouched(t *testing.T) {
	s := strings.Repeat("a", 150)
	if got := TruncateWords(s, 150); got != s {
		t.Errorf("TruncateWords changed a string at the limit")
	}
}

func TestToSummary_FlagsAndSpecialty(t *testing.T) {
	resolver := service.NewImageResolver("http://example.com", storage.NewDisk("/tmp", "http://example.com/uploads"))
	c := NewDoctorConverter(resolver)

	online := true
	profile := &entity.DoctorProfile{
		ID:                5,
		User:              entity.User{FullName: "Asha Verma"},
		Specialty:         &entity.Specialty{Name: "Skin Care"},
		IsAvailableOnline: &online,
	}

	resp := c.ToSummary(profile)
	if resp.Name != "Asha Verma" {
		t.Errorf("Name = %q", resp.Name)
	}
	if resp.Specialty != "Skin Care" {
		t.Errorf("Specialty = %q", resp.Specialty)
	}
	if !resp.IsAvailableOnline {
		t.Error("IsAvailableOnline should be true")
	}
	if resp.ImageURL != nil {
		t.Errorf("ImageURL = %v, want nil for empty stored image", *resp.ImageURL)
	}
}

func TestToSummary_NilBoolsReadAsFalse(t *testing.T) {
	resolver := service.NewImageResolver("http://example.com", storage.NewDisk("/tmp", "http://example.com/uploads"))
	c := NewDoctorConverter(resolver)

	resp := c.ToSummary(&entity.DoctorProfile{ID: 5})
	if resp.IsAvailableOnline {
		t.Error("nil IsAvailableOnline should read as false")
	}
}
