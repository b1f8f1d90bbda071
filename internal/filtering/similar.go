package filtering

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spigell/interview-agent/internal/keywords"
)

type similarFilter struct {
	threshold float64
	disabled  bool
	reason    string
}

// NewSimilar creates a filter that collapses near-duplicate keywords.
func NewSimilar() Filter {
	return &similarFilter{}
}

func (f *similarFilter) Name() string { return "similar" }

func (f *similarFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *similarFilter) IsEnabled() bool { return !f.disabled }

func (f *similarFilter) Validate(cfg *Config) error {
	f.threshold = keywords.DefaultThreshold
	if cfg != nil && cfg.Threshold != 0 {
		f.threshold = cfg.Threshold
	}
	if f.threshold <= 0 || f.threshold > 1 {
		return fmt.Errorf("similarity threshold must be in (0, 1], got %v", f.threshold)
	}
	return nil
}

func (f *similarFilter) Apply(_ context.Context, deps Deps, kw []string) ([]string, Step, error) {
	initial := len(kw)
	kept := keywords.Deduplicate(kw, f.threshold)

	if deps.Logger != nil && len(kept) != initial {
		deps.Logger.Debug("collapsed similar keywords",
			zap.Strings("kept", kept),
			zap.Float64("threshold", f.threshold),
		)
	}

	return kept, Step{Initial: initial, Dropped: initial - len(kept), Left: len(kept)}, nil
}

func (f *similarFilter) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: f.IsEnabled(),
		Reason:  f.reason,
		Details: map[string]string{"threshold": fmt.Sprintf("%.2f", f.threshold)},
	}
}
