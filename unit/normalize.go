package unit

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// pluralException lists forms that keep their trailing "s".
var pluralException = map[string]bool{"lbs": true}

// Normalize canonicalizes a user supplied unit string for alias lookup:
// surrounding whitespace is trimmed, the string is lowercased, degree signs
// and the words "degree"/"degrees" are removed, all whitespace is dropped
// and a simple plural "s" is collapsed (meters -> meter).
//
// Compatibility characters are folded (℃ -> c, Kelvin sign -> k). A string
// ending in "ss", a lone "s" and "lbs" keep their final "s", which keeps
// Normalize idempotent.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	s = stripDegreeSigns(s)
	s = norm.NFKC.String(s)
	s = strings.ToLower(s)
	s = stripDegreeSigns(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	s = norm.NFKC.String(s) // recompose marks separated by removed spaces
	for strings.Contains(s, "degree") {
		s = strings.ReplaceAll(s, "degrees", "")
		s = strings.ReplaceAll(s, "degree", "")
	}
	if len(s) > 1 && strings.HasSuffix(s, "s") && !strings.HasSuffix(s, "ss") && !pluralException[s] {
		s = s[:len(s)-1]
	}
	return s
}

func stripDegreeSigns(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '°', 'º', '˚':
			return -1
		}
		return r
	}, s)
}
