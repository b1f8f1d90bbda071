// Package similarity scores how alike two strings are.
package similarity

import (
	"github.com/pmezard/go-difflib/difflib"
)

// Ratio returns a character-sequence similarity in [0, 1] where 1 means the
// strings are identical. The comparison is case-sensitive; callers fold case
// beforehand when they need to.
//
// The matcher is greedy, so a single pass is not guaranteed to be symmetric.
// Both argument orders are scored and the higher ratio wins.
func Ratio(a, b string) float64 {
	if a == b {
		return 1
	}

	left, right := runes(a), runes(b)

	forward := difflib.NewMatcherWithJunk(left, right, false, nil).Ratio()
	backward := difflib.NewMatcherWithJunk(right, left, false, nil).Ratio()

	if backward > forward {
		return backward
	}
	return forward
}

func runes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
