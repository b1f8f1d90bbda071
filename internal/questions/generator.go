package questions

import (
	"context"
	"math/rand/v2"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/interview-agent/internal/documents"
	"github.com/spigell/interview-agent/internal/fields"
	"github.com/spigell/interview-agent/internal/filtering"
	"github.com/spigell/interview-agent/internal/keywords"
)

// Options tune a Generator. Zero values select the defaults.
type Options struct {
	Filters      []filtering.Filter
	FilterConfig *filtering.Config
	Context      string
	Rand         *rand.Rand
	Logger       *zap.Logger
}

// Generator runs the whole question pipeline over a document set.
type Generator struct {
	extractor *keywords.Extractor
	filters   []filtering.Filter
	config    *filtering.Config
	context   string
	rng       *rand.Rand
	logger    *zap.Logger
}

// Result carries the questions and the intermediate values they came from.
type Result struct {
	Keywords   []string
	JobTitle   string
	CoreValues []string
	Questions  List

	// Filters records how each keyword filter narrowed the job post keywords.
	Filters filtering.Report
}

// NewGenerator creates a Generator around a keyword extractor.
func NewGenerator(extractor *keywords.Extractor, opts Options) *Generator {
	g := &Generator{
		extractor: extractor,
		filters:   opts.Filters,
		config:    opts.FilterConfig,
		context:   strings.TrimSpace(opts.Context),
		rng:       opts.Rand,
		logger:    opts.Logger,
	}
	if g.filters == nil {
		g.filters = filtering.Default()
	}
	if g.config == nil {
		g.config = &filtering.Config{Threshold: keywords.DefaultThreshold}
	}
	if g.context == "" {
		g.context = DefaultContext
	}
	if g.logger == nil {
		g.logger = zap.NewNop()
	}
	return g
}

// Generate extracts keywords from the job post and résumé, filters them,
// reads the job title and core values and renders the question list.
// Only an unusable exclusion file or filter configuration makes it fail.
func (g *Generator) Generate(ctx context.Context, docs documents.Set) (*Result, error) {
	jobKeywords := g.extractor.Extract(ctx, docs.Text(documents.JobPost))
	resumeKeywords := g.extractor.Extract(ctx, docs.Text(documents.CandidateResume))

	g.logger.Debug("extracted keywords",
		zap.Strings("job_post", jobKeywords),
		zap.Strings("candidate_resume", resumeKeywords),
	)

	filtered, report, err := filtering.Run(ctx, g.config, filtering.Deps{
		Logger:    g.logger,
		Reference: resumeKeywords,
	}, g.filters, jobKeywords)
	if err != nil {
		return nil, err
	}

	jobTitle := fields.JobTitle(docs.Text(documents.JobPost))
	coreValues := fields.CoreValues(docs.Text(documents.CompanyProfile))

	g.logger.Debug("question inputs",
		zap.Strings("filtered_keywords", filtered),
		zap.String("job_title", jobTitle),
		zap.Strings("core_values", coreValues),
	)

	list := Synthesize(filtered, jobTitle, coreValues, g.context, g.rng)

	g.logger.Info("generated interview questions", zap.Int("count", list.Len()))

	return &Result{
		Keywords:   filtered,
		JobTitle:   jobTitle,
		CoreValues: coreValues,
		Questions:  list,
		Filters:    report,
	}, nil
}
