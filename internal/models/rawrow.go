package models

import "strings"

// RawRow is a single record from a statement export before normalization.
// Keys carry whatever casing and naming the source file used; values are
// kept as strings until the normalizer coerces them.
type RawRow map[string]string

// Lookup resolves a canonical field against a prioritized list of synonyms.
// Key matching is case-insensitive. The first synonym that matches a key
// present in the row wins, even if its value is empty, so callers can tell
// "field missing" (ok=false) apart from "field present but empty".
func (r RawRow) Lookup(synonyms ...string) (string, bool) {
	for _, syn := range synonyms {
		for key, value := range r {
			if strings.EqualFold(key, syn) {
				return value, true
			}
		}
	}
	return "", false
}

// Has reports whether any of the given synonyms matches a key in the row.
func (r RawRow) Has(synonyms ...string) bool {
	_, ok := r.Lookup(synonyms...)
	return ok
}
