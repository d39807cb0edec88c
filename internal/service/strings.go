package service

import "strings"

func trim(s string) string {
	return strings.TrimSpace(s)
}

// blankToNil treats an empty or whitespace-only optional string as absent.
func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
