package matcher

import "strings"

// Match reports whether name satisfies pattern: "*" matches everything, an
// empty pattern nothing, anything else is a prefix. A trailing "*" is
// optional ("unit-*" equals "unit-").
func Match(pattern, name string) bool {
	if pattern == "*" {
		return true
	}
	pattern = strings.TrimSuffix(pattern, "*")
	if pattern == "" {
		return false
	}
	return strings.HasPrefix(name, pattern)
}

// MatchAny reports whether any of the names matches one of the patterns and
// none matches an exclusion. Exclusions are patterns prefixed with "!", e.g.
// []string{"unit", "!unit-units"}.
func MatchAny(patterns []string, names ...string) bool {
	matched := false
	for _, pattern := range patterns {
		exclude := strings.HasPrefix(pattern, "!")
		if exclude {
			pattern = pattern[1:]
		}
		for _, name := range names {
			if !Match(pattern, name) {
				continue
			}
			if exclude {
				return false
			}
			matched = true
		}
	}
	return matched
}
