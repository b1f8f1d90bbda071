package utils

import "testing"

func TestTruncateForLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		limit  int
		expect string
	}{
		{
			name:   "drops text when limit non-positive",
			input:  "I have five years of Python experience",
			limit:  0,
			expect: "",
		},
		{
			name:   "short answer kept",
			input:  "Yes",
			limit:  10,
			expect: "Yes",
		},
		{
			name:   "long answer cut",
			input:  "Mostly SQL and Spark",
			limit:  10,
			expect: "Mostly SQL...",
		},
		{
			name:   "trims surrounding whitespace",
			input:  "  pandas  ",
			limit:  3,
			expect: "pan...",
		},
		{
			name:   "counts runes not bytes",
			input:  "résumé parsing",
			limit:  6,
			expect: "résumé...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TruncateForLog(tt.input, tt.limit); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}
