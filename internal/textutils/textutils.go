// Package textutils provides text cleanup helpers for statement descriptions.
package textutils

import "strings"

// CleanDescription normalizes whitespace in a statement description: leading
// and trailing whitespace is removed and internal runs collapse to a single
// space. The wording itself is never altered.
func CleanDescription(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ContainsFold reports whether s contains substr as a case-insensitive
// substring. An empty substr never matches.
func ContainsFold(s, substr string) bool {
	if substr == "" {
		return false
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
