// Package keywords extracts candidate interview topics from documents and
// collapses near-duplicates.
package keywords

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/interview-agent/internal/ai"
)

// DefaultEntityLabels are the entity categories kept as keywords.
var DefaultEntityLabels = []string{ai.LabelOrganization, ai.LabelSkill, ai.LabelWorkOfArt, ai.LabelProduct}

// DefaultTechnicalTerms is the vocabulary that promotes a noun chunk to a keyword.
var DefaultTechnicalTerms = []string{
	"Python", "R", "SQL", "TensorFlow", "PyTorch",
	"Machine Learning", "Deep Learning", "Data Analysis",
}

// Extractor turns a document into a set of keyword strings.
type Extractor struct {
	analyzer ai.Analyzer
	labels   map[string]struct{}
	terms    []string
	logger   *zap.Logger
}

// NewExtractor builds an Extractor. Empty labels or terms fall back to the
// defaults.
func NewExtractor(analyzer ai.Analyzer, labels, terms []string, logger *zap.Logger) *Extractor {
	if len(labels) == 0 {
		labels = DefaultEntityLabels
	}
	if len(terms) == 0 {
		terms = DefaultTechnicalTerms
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	allowed := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		allowed[strings.ToUpper(strings.TrimSpace(label))] = struct{}{}
	}

	lowered := make([]string, 0, len(terms))
	for _, term := range terms {
		if term = strings.ToLower(strings.TrimSpace(term)); term != "" {
			lowered = append(lowered, term)
		}
	}

	return &Extractor{
		analyzer: analyzer,
		labels:   allowed,
		terms:    lowered,
		logger:   logger,
	}
}

// Extract returns allow-listed entities followed by noun chunks that mention a
// technical term, without exact duplicates. A failing analyzer yields an
// empty result.
func (e *Extractor) Extract(ctx context.Context, text string) []string {
	keywords := []string{}
	if e.analyzer == nil {
		return keywords
	}

	analysis, err := e.analyzer.Analyze(ctx, text)
	if err != nil {
		e.logger.Warn("text analysis failed, no keywords extracted",
			zap.String("analyzer", e.analyzer.Name()),
			zap.Error(err),
		)
		return keywords
	}
	if analysis == nil {
		return keywords
	}

	seen := make(map[string]struct{})
	add := func(keyword string) {
		if keyword == "" {
			return
		}
		if _, ok := seen[keyword]; ok {
			return
		}
		seen[keyword] = struct{}{}
		keywords = append(keywords, keyword)
	}

	for _, entity := range analysis.Entities {
		if _, ok := e.labels[strings.ToUpper(entity.Label)]; ok {
			add(entity.Text)
		}
	}

	for _, chunk := range analysis.NounChunks {
		if e.mentionsTerm(chunk) {
			add(chunk)
		}
	}

	return keywords
}

// mentionsTerm reports whether chunk contains a technical term as a
// substring, ignoring case.
func (e *Extractor) mentionsTerm(chunk string) bool {
	lower := strings.ToLower(chunk)
	for _, term := range e.terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
