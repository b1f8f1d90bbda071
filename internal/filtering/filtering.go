// Package filtering narrows the keywords extracted from a job post down to
// the topics worth asking about.
package filtering

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Filter is one named step of the keyword chain.
type Filter interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	Validate(cfg *Config) error
	Apply(ctx context.Context, deps Deps, keywords []string) ([]string, Step, error)
}

// Deps is passed to every step.
type Deps struct {
	Logger *zap.Logger
	// Reference holds the keywords of the candidate résumé.
	Reference []string
}

// Step is the outcome of one filter over the keyword list.
type Step struct {
	Name    string
	Initial int
	Dropped int
	Left    int
}

// Report lists the steps that ran, in order.
type Report []Step

// Dropped sums the keywords removed by all steps.
func (r Report) Dropped() int {
	total := 0
	for _, step := range r {
		total += step.Dropped
	}
	return total
}

// Config is validated by each enabled filter before any of them runs.
type Config struct {
	Threshold   float64
	ExcludeFile string
}

// Status describes a filter for diagnostics.
type Status struct {
	Name    string
	Enabled bool
	Reason  string
	Details map[string]string
}

// statusProvider is implemented by filters with extra details to report.
type statusProvider interface {
	Status() Status
}

// Default returns the standard filter chain: résumé overlap, exclusion file,
// near-duplicate collapse.
func Default() []Filter {
	return []Filter{
		NewResumeOverlap(),
		NewExcludeFile(),
		NewSimilar(),
	}
}

// DisableByName turns off the named filter; it stays in the chain so its
// status can still be reported.
func DisableByName(steps []Filter, name, reason string) {
	for _, step := range steps {
		if step.Name() == name {
			step.Disable(reason)
		}
	}
}

// Run validates every enabled filter, then applies them in order. Disabled
// filters are skipped and logged.
func Run(ctx context.Context, cfg *Config, deps Deps, steps []Filter, keywords []string) ([]string, Report, error) {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	enabled := make([]Filter, 0, len(steps))
	for _, step := range steps {
		if !step.IsEnabled() {
			log.Info("filter disabled", zap.String("name", step.Name()))
			continue
		}
		if err := step.Validate(cfg); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", step.Name(), err)
		}
		enabled = append(enabled, step)
	}

	report := make(Report, 0, len(enabled))
	for _, step := range enabled {
		next, info, err := step.Apply(ctx, deps, keywords)
		if err != nil {
			return nil, report, fmt.Errorf("%s: %w", step.Name(), err)
		}
		info.Name = step.Name()

		log.Info("filter step",
			zap.String("name", info.Name),
			zap.Int("initial", info.Initial),
			zap.Int("dropped", info.Dropped),
			zap.Int("left", info.Left),
		)

		report = append(report, info)
		keywords = next
	}

	return keywords, report, nil
}

// Describe reports the status of each filter in order.
func Describe(steps []Filter) []Status {
	statuses := make([]Status, 0, len(steps))
	for _, step := range steps {
		if reporter, ok := step.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}

		statuses = append(statuses, Status{
			Name:    step.Name(),
			Enabled: step.IsEnabled(),
		})
	}
	return statuses
}
