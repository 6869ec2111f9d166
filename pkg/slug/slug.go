package slug

import "strings"

// Make turns a display name into a URL slug: lowercase, alphanumeric runs
// joined by single hyphens. "Uttar Pradesh" -> "uttar-pradesh".
func Make(s string) string {
	var b strings.Builder
	lastHyphen := true
	for _, c := range strings.ToLower(s) {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			b.WriteRune(c)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
