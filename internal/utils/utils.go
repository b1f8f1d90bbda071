// Package utils holds small helpers shared by the AI clients and the
// interview loop.
package utils

import (
	"context"
	"time"
)

// after is replaced in tests.
var after = time.After

// WaitFor pauses for d between Gemini retries. It returns early with the
// context error when ctx ends first.
func WaitFor(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-after(d):
		return nil
	}
}
