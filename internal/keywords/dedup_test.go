package keywords

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/spigell/interview-agent/internal/similarity"
)

func TestDeduplicate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     []string
		threshold float64
		expect    []string
	}{
		{
			name:      "case insensitive duplicates",
			input:     []string{"Python", "python", "Python3", "SQL"},
			threshold: DefaultThreshold,
			expect:    []string{"Python", "SQL"},
		},
		{
			name:      "first seen representative survives",
			input:     []string{"Python3", "Python"},
			threshold: DefaultThreshold,
			expect:    []string{"Python3"},
		},
		{
			name:      "similarity equal to threshold is a duplicate",
			input:     []string{"abcd", "abxy"},
			threshold: 0.5,
			expect:    []string{"abcd"},
		},
		{
			name:      "below threshold is kept",
			input:     []string{"abcd", "abxy"},
			threshold: 0.51,
			expect:    []string{"abcd", "abxy"},
		},
		{
			name:      "empty",
			input:     nil,
			threshold: DefaultThreshold,
			expect:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Deduplicate(tt.input, tt.threshold); !slices.Equal(got, tt.expect) {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestDeduplicateProperties(t *testing.T) {
	t.Parallel()

	alphabet := []rune("abcde ")
	rng := rand.New(rand.NewPCG(1, 2))

	for round := 0; round < 200; round++ {
		input := make([]string, rng.IntN(12))
		for i := range input {
			word := make([]rune, 1+rng.IntN(6))
			for j := range word {
				word[j] = alphabet[rng.IntN(len(alphabet))]
			}
			input[i] = string(word)
		}

		out := Deduplicate(input, DefaultThreshold)

		for _, kept := range out {
			if !contains(input, kept) {
				t.Fatalf("kept %q is not from input %q", kept, input)
			}
		}

		for i := range out {
			for j := i + 1; j < len(out); j++ {
				ratio := similarity.Ratio(strings.ToLower(out[i]), strings.ToLower(out[j]))
				if ratio >= DefaultThreshold {
					t.Fatalf("%q vs %q: ratio %v reaches threshold", out[i], out[j], ratio)
				}
			}
		}

		// Every dropped keyword has an earlier kept representative.
		for idx, keyword := range input {
			if contains(out, keyword) {
				continue
			}
			found := false
			for _, kept := range out {
				if indexOf(input, kept) < idx && similarity.Ratio(strings.ToLower(kept), strings.ToLower(keyword)) >= DefaultThreshold {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("no representative for %q in %q", keyword, out)
			}
		}
	}
}

func TestIntersect(t *testing.T) {
	t.Parallel()

	got := Intersect(
		[]string{"Python", "SQL", "Python", "Acme"},
		[]string{"Acme", "python", "Python"},
	)
	if expect := []string{"Python", "Acme"}; !slices.Equal(got, expect) {
		t.Fatalf("expected %q, got %q", expect, got)
	}
	if got := Intersect(nil, []string{"x"}); len(got) != 0 {
		t.Fatalf("expected empty intersection, got %q", got)
	}
}

func contains(list []string, s string) bool {
	return indexOf(list, s) >= 0
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
