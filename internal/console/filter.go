package console

import "strings"

// enumMatches reports whether a selected enum filter admits the value.
// Empty and "all" mean unconstrained.
func enumMatches(selected, value string) bool {
	return selected == "" || selected == "all" || selected == value
}

// searchMatches reports whether the term appears in any of the fields,
// case-insensitively. An empty term admits everything.
func searchMatches(term string, fields ...string) bool {
	term = strings.TrimSpace(strings.ToLower(term))
	if term == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
