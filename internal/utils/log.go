package utils

import "strings"

// TruncateForLog trims s and cuts it to limit runes, marking the cut with an
// ellipsis. A non-positive limit drops the text entirely.
func TruncateForLog(s string, limit int) string {
	if limit <= 0 {
		return ""
	}

	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	return string(runes[:limit]) + "..."
}
