package filtering

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/spigell/interview-agent/internal/keywords"
)

type resumeOverlapFilter struct {
	disabled bool
	reason   string
}

// NewResumeOverlap creates a filter that keeps only keywords also found in the résumé.
func NewResumeOverlap() Filter {
	return &resumeOverlapFilter{}
}

func (f *resumeOverlapFilter) Name() string { return "resume_overlap" }

func (f *resumeOverlapFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *resumeOverlapFilter) IsEnabled() bool { return !f.disabled }

func (f *resumeOverlapFilter) Validate(*Config) error { return nil }

func (f *resumeOverlapFilter) Apply(_ context.Context, deps Deps, kw []string) ([]string, Step, error) {
	initial := len(kw)
	common := keywords.Intersect(kw, deps.Reference)

	if deps.Logger != nil {
		deps.Logger.Debug("keywords shared with the resume",
			zap.Strings("keywords", common),
			zap.Int("resume_keywords", len(deps.Reference)),
		)
	}

	return common, Step{Initial: initial, Dropped: initial - len(common), Left: len(common)}, nil
}

func (f *resumeOverlapFilter) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: f.IsEnabled(),
		Reason:  f.reason,
		Details: map[string]string{"exact_match": strconv.FormatBool(true)},
	}
}
