package filtering

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/interview-agent/internal/keywords"
)

type excludeFileFilter struct {
	path     string
	disabled bool
	reason   string
}

// NewExcludeFile creates a filter that removes keywords listed in the exclude file.
func NewExcludeFile() Filter {
	return &excludeFileFilter{}
}

func (f *excludeFileFilter) Name() string { return "exclude_file" }

func (f *excludeFileFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *excludeFileFilter) IsEnabled() bool { return !f.disabled }

func (f *excludeFileFilter) Validate(cfg *Config) error {
	f.path = ""
	if cfg != nil {
		f.path = strings.TrimSpace(cfg.ExcludeFile)
	}
	return nil
}

func (f *excludeFileFilter) Apply(_ context.Context, deps Deps, kw []string) ([]string, Step, error) {
	initial := len(kw)
	if f.path == "" {
		return kw, Step{Initial: initial, Dropped: 0, Left: initial}, nil
	}

	excluded, err := keywords.GetExcludedFromFile(f.path)
	if err != nil {
		return kw, Step{}, fmt.Errorf("getting excluded keywords from file: %w", err)
	}

	kept, removed := excluded.Filter(kw)
	if deps.Logger != nil && len(removed) > 0 {
		deps.Logger.Info("excluding keywords based on exclude file",
			zap.String("path", f.path),
			zap.Strings("excluded_keywords", removed),
			zap.Int("keywords_left", len(kept)),
		)
	}

	return kept, Step{Initial: initial, Dropped: len(removed), Left: len(kept)}, nil
}

func (f *excludeFileFilter) Status() Status {
	details := map[string]string{}
	if f.path != "" {
		details["path"] = f.path
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
