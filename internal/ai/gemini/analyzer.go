package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/mitchellh/mapstructure"
	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/spigell/interview-agent/internal/ai"
	"github.com/spigell/interview-agent/internal/utils"
)

//go:embed prompt.md
var promptTemplate string

//go:embed response.schema.json
var responseSchemaJSON string

var responseSchema = mustSchema(responseSchemaJSON)

const (
	defaultMaxLogLength = 200
	providerName        = "gemini"
)

var defaultLabels = []string{ai.LabelOrganization, ai.LabelSkill, ai.LabelWorkOfArt, ai.LabelProduct}

type textGenerator interface {
	Generate(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (string, error)
}

// Analyzer asks Gemini for entities and noun chunks of a document.
type Analyzer struct {
	generator textGenerator
	labels    []string
	logger    *zap.Logger
	maxLogLen int
}

// NewAnalyzer builds an Analyzer. An empty labels list falls back to the
// default keyword allow-list.
func NewAnalyzer(generator textGenerator, labels []string, maxLogLength int, logger *zap.Logger) *Analyzer {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if len(labels) == 0 {
		labels = defaultLabels
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Analyzer{
		generator: generator,
		labels:    labels,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

func (a *Analyzer) Name() string { return providerName }

// Analyze implements ai.Analyzer.
func (a *Analyzer) Analyze(ctx context.Context, text string) (*ai.Analysis, error) {
	if strings.TrimSpace(text) == "" {
		return &ai.Analysis{}, nil
	}

	prompt := buildPrompt(text, a.labels)

	a.logger.Debug("gemini analyze request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, a.maxLogLen)),
	)

	raw, err := a.generator.Generate(ctx, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		Temperature:      genai.Ptr[float32](0),
	})
	if err != nil {
		return nil, err
	}

	a.logger.Debug("gemini analyze response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, a.maxLogLen)),
	)

	return parseResponse(raw)
}

func buildPrompt(text string, labels []string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Labels: {{LABELS}}\n\nDocument:\n{{TEXT}}\n\nJSON Response:"
	}
	prompt := strings.ReplaceAll(template, "{{LABELS}}", strings.Join(labels, ", "))
	prompt = strings.ReplaceAll(prompt, "{{TEXT}}", text)
	return prompt
}

func parseResponse(raw string) (*ai.Analysis, error) {
	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	if err := validateResponse(data); err != nil {
		return nil, err
	}

	var entities []ai.Entity
	if err := mapstructure.Decode(data["entities"], &entities); err != nil {
		return nil, fmt.Errorf("decode entities: %w", err)
	}

	analysis := &ai.Analysis{}
	for _, entity := range entities {
		entity.Text = strings.TrimSpace(entity.Text)
		entity.Label = strings.ToUpper(strings.TrimSpace(entity.Label))
		if entity.Text == "" {
			continue
		}
		analysis.Entities = append(analysis.Entities, entity)
	}

	if chunks, ok := data["noun_chunks"].([]any); ok {
		for _, chunk := range chunks {
			if s := coerceString(chunk); s != "" {
				analysis.NounChunks = append(analysis.NounChunks, s)
			}
		}
	}

	return analysis, nil
}

func mustSchema(schema string) *gojsonschema.Schema {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schema))
	if err != nil {
		panic(fmt.Sprintf("compiling gemini response schema: %v", err))
	}
	return compiled
}

// validateResponse checks the decoded reply against the response schema.
func validateResponse(data map[string]any) error {
	result, err := responseSchema.Validate(gojsonschema.NewGoLoader(data))
	if err != nil {
		return fmt.Errorf("validate gemini response: %w", err)
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		problems = append(problems, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	return fmt.Errorf("gemini response does not match schema: %s", strings.Join(problems, "; "))
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case fmt.Stringer:
		return strings.TrimSpace(val.String())
	default:
		return ""
	}
}
