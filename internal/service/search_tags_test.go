package service

import (
	"strings"
	"testing"
)

func TestGenerateSearchTags_Basic(t *testing.T) {
	got := GenerateSearchTags("Asha Verma", "Skin Care", "Senior consultant dermatologist", "MBBS MD")
	want := "asha verma skin care senior consultant dermatologist mbbs md"
	if got != want {
		t.Errorf("GenerateSearchTags = %q, want %q", got, want)
	}
}

func TestGenerateSearchTags_SpecialtyKeptAsSingleTag(t *testing.T) {
	got := GenerateSearchTags("", "Skin Care", "", "")
	if got != "skin care" {
		t.Errorf("GenerateSearchTags = %q, want %q", got, "skin care")
	}
}

func TestGenerateSearchTags_Deduplicates(t *testing.T) {
	got := GenerateSearchTags("Asha Asha", "", "asha writes about asha", "ASHA")
	tokens := strings.Fields(got)
	seen := map[string]int{}
	for _, tok := range tokens {
		seen[tok]++
	}
	if seen["asha"] != 1 {
		t.Errorf("token asha appears %d times, want 1 (tags: %q)", seen["asha"], got)
	}
}

func TestGenerateSearchTags_BioCappedAtFiftyWords(t *testing.T) {
	words := make([]string, 60)
	for i := range words {
		words[i] = "w" + string(rune('a'+i%26)) + string(rune('a'+i/26))
	}
	bio := strings.Join(words, " ")

	got := GenerateSearchTags("", "", bio, "")
	gotTokens := strings.Fields(got)
	if len(gotTokens) > bioTagWordLimit {
		t.Errorf("got %d bio tokens, want at most %d", len(gotTokens), bioTagWordLimit)
	}
	for _, late := range words[bioTagWordLimit:] {
		if strings.Contains(" "+got+" ", " "+late+" ") {
			t.Errorf("token %q past the bio cap leaked into tags", late)
		}
	}
}

func TestGenerateSearchTags_Idempotent(t *testing.T) {
	first := GenerateSearchTags("Asha Verma", "Skin Care", "Senior consultant", "MBBS")
	second := GenerateSearchTags("Asha Verma", "Skin Care", "Senior consultant", "MBBS")
	if first != second {
		t.Errorf("regeneration changed output: %q vs %q", first, second)
	}
}

func TestGenerateSearchTags_AllEmpty(t *testing.T) {
	if got := GenerateSearchTags("", "", "", ""); got != "" {
		t.Errorf("GenerateSearchTags(empty) = %q, want empty", got)
	}
}
