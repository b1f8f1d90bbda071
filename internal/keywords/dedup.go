package keywords

import (
	"strings"

	"github.com/spigell/interview-agent/internal/similarity"
)

// DefaultThreshold is the similarity at which two keywords count as duplicates.
const DefaultThreshold = 0.8

// Deduplicate keeps keywords in first-seen order, dropping any keyword whose
// case-insensitive similarity to an already kept one reaches threshold.
//
// The pass is greedy: which member of a near-duplicate pair survives depends
// on input order.
func Deduplicate(keywords []string, threshold float64) []string {
	kept := make([]string, 0, len(keywords))
	lowered := make([]string, 0, len(keywords))

	for _, keyword := range keywords {
		candidate := strings.ToLower(keyword)

		duplicate := false
		for _, existing := range lowered {
			if similarity.Ratio(candidate, existing) >= threshold {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}

		kept = append(kept, keyword)
		lowered = append(lowered, candidate)
	}

	return kept
}

// Intersect returns the keywords of a that also appear, exactly, in b.
// Order follows a and duplicates in a are collapsed.
func Intersect(a, b []string) []string {
	in := make(map[string]struct{}, len(b))
	for _, keyword := range b {
		in[keyword] = struct{}{}
	}

	out := make([]string, 0)
	seen := make(map[string]struct{})
	for _, keyword := range a {
		if _, ok := in[keyword]; !ok {
			continue
		}
		if _, ok := seen[keyword]; ok {
			continue
		}
		seen[keyword] = struct{}{}
		out = append(out, keyword)
	}
	return out
}
