package gemini

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/spigell/interview-agent/internal/ai"
)

const (
	unintelligibleMarker  = "[unintelligible]"
	transcribeInstruction = "Transcribe the candidate's spoken answer verbatim. " +
		"Reply with the transcript only. If there is no intelligible speech, reply with " + unintelligibleMarker + "."
)

// Transcriber converts recorded answers into text with a Gemini model.
type Transcriber struct {
	generator textGenerator
	logger    *zap.Logger
}

// NewTranscriber builds a Transcriber on top of a generator.
func NewTranscriber(generator textGenerator, logger *zap.Logger) *Transcriber {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Transcriber{generator: generator, logger: logger}
}

// Transcribe implements ai.Transcriber. Silence and noise are reported as
// ai.ErrNotUnderstood; any other failure is returned as is.
func (t *Transcriber) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	if len(audio) == 0 {
		return "", ai.ErrNotUnderstood
	}

	contents := []*genai.Content{{
		Role: "user",
		Parts: []*genai.Part{
			{Text: transcribeInstruction},
			{InlineData: &genai.Blob{Data: audio, MIMEType: mimeType}},
		},
	}}

	text, err := t.generator.Generate(ctx, contents, nil)
	if errors.Is(err, errEmptyResponse) {
		return "", ai.ErrNotUnderstood
	}
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)
	if text == "" || strings.EqualFold(text, unintelligibleMarker) {
		return "", ai.ErrNotUnderstood
	}

	t.logger.Debug("transcribed answer", zap.Int("audio_bytes", len(audio)), zap.Int("text_length", len(text)))

	return text, nil
}
