package service

import "strings"

// bioTagWordLimit caps how much of the bio feeds the tag string. Bios run
// long and anything past the opening words adds noise, not recall.
const bioTagWordLimit = 50

// GenerateSearchTags produces the denormalized token string stored on a
// doctor's search tag row. Tokens come from the doctor's display name, the
// specialty display name (kept as a single tag, internal spaces included),
// the first 50 words of the bio and the qualification text. Everything is
// lowercased, deduplicated and joined with single spaces.
//
// Regenerated synchronously on every write that touches a searchable field,
// so the row trails the profile by at most one transaction.
func GenerateSearchTags(fullName, specialtyName, bio, qualification string) string {
	var tokens []string

	tokens = append(tokens, strings.Fields(strings.ToLower(fullName))...)

	if specialty := strings.TrimSpace(strings.ToLower(specialtyName)); specialty != "" {
		tokens = append(tokens, specialty)
	}

	bioWords := strings.Fields(strings.ToLower(bio))
	if len(bioWords) > bioTagWordLimit {
		bioWords = bioWords[:bioTagWordLimit]
	}
	tokens = append(tokens, bioWords...)

	tokens = append(tokens, strings.Fields(strings.ToLower(qualification))...)

	seen := make(map[string]struct{}, len(tokens))
	unique := tokens[:0]
	for _, token := range tokens {
		if token == "" {
			continue
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		unique = append(unique, token)
	}

	return strings.Join(unique, " ")
}
