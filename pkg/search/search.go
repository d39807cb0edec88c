// Package search implements the case-insensitive substring matching used by the list filters.
package search

import (
	"strings"

	"golang.org/x/text/cases"
)

// Normalize trims and case-folds a search term.
func Normalize(term string) string {
	return cases.Fold().String(strings.TrimSpace(term))
}

// Any reports whether any of fields contains term.
func Any(term string, fields ...string) bool {
	term = Normalize(term)
	if term == "" {
		return true
	}
	folder := cases.Fold()
	for _, f := range fields {
		if strings.Contains(folder.String(f), term) {
			return true
		}
	}
	return false
}

// Filter keeps the items whose fields match term.
func Filter[T any](items []T, term string, fields func(T) []string) []T {
	if Normalize(term) == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if Any(term, fields(item)...) {
			out = append(out, item)
		}
	}
	return out
}
