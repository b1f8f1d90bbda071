package cmd

import (
	"context"
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/spigell/interview-agent/internal/ai"
	"github.com/spigell/interview-agent/internal/ai/gemini"
	"github.com/spigell/interview-agent/internal/ai/lexical"
	"github.com/spigell/interview-agent/internal/documents"
	"github.com/spigell/interview-agent/internal/filtering"
	"github.com/spigell/interview-agent/internal/keywords"
	"github.com/spigell/interview-agent/internal/logger"
	"github.com/spigell/interview-agent/internal/questions"
	"github.com/spigell/interview-agent/internal/secrets"
)

const geminiAPIKeyEnv = "GEMINI_API_KEY"

// generateQuestions loads the documents and runs the question pipeline.
func generateQuestions(ctx context.Context, config *Config, log *zap.Logger) (*questions.Result, error) {
	docs, err := documents.Load(config.DocumentsDir)
	if err != nil {
		return nil, fmt.Errorf("loading documents: %w", err)
	}

	log.Info("loaded documents", zap.String("dir", config.DocumentsDir), zap.Int("count", len(docs)))

	analyzer, err := newAnalyzer(ctx, config, log)
	if err != nil {
		return nil, fmt.Errorf("building %s analyzer: %w", config.Analyzer.Provider, err)
	}

	var labels, terms []string
	if config.Keywords != nil {
		labels = config.Keywords.EntityLabels
		terms = config.Keywords.TechnicalTerms
	}

	extractor := keywords.NewExtractor(analyzer, labels, terms, log)

	steps := filtering.Default()
	for _, name := range config.DisabledFilters {
		filtering.DisableByName(steps, name, "disabled in config")
	}

	log.Debug("keyword filters", zap.Any("filters", filtering.Describe(steps)))

	generator := questions.NewGenerator(extractor, questions.Options{
		Filters: steps,
		FilterConfig: &filtering.Config{
			Threshold:   config.Threshold,
			ExcludeFile: config.ExcludeFile,
		},
		Context: config.Context,
		Rand:    newRand(config.Seed),
		Logger:  log,
	})

	return generator.Generate(ctx, docs)
}

func newAnalyzer(ctx context.Context, config *Config, log *zap.Logger) (ai.Analyzer, error) {
	switch config.Analyzer.Provider {
	case "", "lexical":
		var extra map[string][]string
		if config.Analyzer.Lexical != nil {
			extra = config.Analyzer.Lexical.Gazetteer
		}
		return lexical.New(extra), nil
	case "gemini":
		cfg := geminiConfig(config)

		generator, err := newGeminiGenerator(ctx, cfg, log)
		if err != nil {
			return nil, err
		}

		var labels []string
		if config.Keywords != nil {
			labels = config.Keywords.EntityLabels
		}
		if len(labels) == 0 {
			labels = keywords.DefaultEntityLabels
		}

		analyzerLogger := logger.WithProvider(log, "gemini", generator.Model())
		return gemini.NewAnalyzer(generator, labels, cfg.MaxLogLength, analyzerLogger), nil
	default:
		return nil, fmt.Errorf("unsupported analyzer provider: %s", config.Analyzer.Provider)
	}
}

func geminiConfig(config *Config) *GeminiConfig {
	if config.Analyzer == nil || config.Analyzer.Gemini == nil {
		return &GeminiConfig{}
	}
	return config.Analyzer.Gemini
}

func newGeminiGenerator(ctx context.Context, cfg *GeminiConfig, log *zap.Logger) (*gemini.Generator, error) {
	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: cfg.APIKeyFile,
		Env:  geminiAPIKeyEnv,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set analyzer.gemini.api-key-file, GEMINI_API_KEY_FILE or GEMINI_API_KEY)", err)
	}

	genLogger := logger.WithProvider(log, "gemini", cfg.Model).With(
		zap.Int("ai_retry_attempts", cfg.MaxRetries),
	)

	return gemini.NewGenerator(ctx, apiKey, cfg.Model, cfg.MaxRetries, genLogger)
}

// newRand returns a seeded source for reproducible question order, or nil to
// let the synthesizer pick a random one.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(seed, seed))
}
