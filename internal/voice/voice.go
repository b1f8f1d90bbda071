// Package voice conducts an interview over speech: questions are spoken and
// answers are transcribed from audio.
package voice

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/spigell/interview-agent/internal/ai"
	"github.com/spigell/interview-agent/internal/utils"
)

const (
	// DefaultMaxRetries bounds how many times a candidate is asked to repeat
	// an answer within one turn.
	DefaultMaxRetries = 5

	RepeatMessage       = "Sorry, I did not catch that. Could you please repeat?"
	ServiceIssueMessage = "Sorry, there seems to be an issue with the speech recognition service."

	maxTranscriptLogLength = 80
)

var (
	// ErrNotUnderstood means the listener heard audio but recognized no speech.
	ErrNotUnderstood = ai.ErrNotUnderstood
	// ErrServiceUnavailable means the recognition backend could not be used.
	ErrServiceUnavailable = errors.New("speech recognition service unavailable")
)

// Speaker renders text as speech.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// Listener captures one spoken answer and returns its text.
type Listener interface {
	Listen(ctx context.Context) (string, error)
}

// Channel is an interview channel backed by a Speaker and a Listener.
type Channel struct {
	speaker    Speaker
	listener   Listener
	maxRetries int
	logger     *zap.Logger
}

// NewChannel builds a voice channel. A non-positive maxRetries falls back to
// DefaultMaxRetries.
func NewChannel(speaker Speaker, listener Listener, maxRetries int, logger *zap.Logger) *Channel {
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Channel{
		speaker:    speaker,
		listener:   listener,
		maxRetries: maxRetries,
		logger:     logger,
	}
}

// Deliver speaks text.
func (c *Channel) Deliver(ctx context.Context, text string) error {
	return c.speaker.Speak(ctx, text)
}

// Obtain listens for the answer to question.
//
// Unrecognized speech makes the channel ask the candidate to repeat, up to
// maxRetries times, after which the turn is recorded as an empty answer. Any
// other listener failure is announced and also yields an empty answer.
// Cancellation of ctx and speaker failures abort the turn with an error.
func (c *Channel) Obtain(ctx context.Context, question string) (string, error) {
	for attempt := 0; ; attempt++ {
		text, err := c.listener.Listen(ctx)
		if err == nil {
			c.logger.Debug("transcribed response",
				zap.Int("attempt", attempt+1),
				zap.String("preview", utils.TruncateForLog(text, maxTranscriptLogLength)),
			)
			return text, nil
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}

		if !errors.Is(err, ErrNotUnderstood) {
			c.logger.Warn("speech recognition failed", zap.Error(err))
			if err := c.speaker.Speak(ctx, ServiceIssueMessage); err != nil {
				return "", fmt.Errorf("announcing recognition failure: %w", err)
			}
			return "", nil
		}

		if attempt >= c.maxRetries {
			c.logger.Warn("giving up on response",
				zap.Int("retries", c.maxRetries),
				zap.String("question", utils.TruncateForLog(question, maxTranscriptLogLength)),
			)
			return "", nil
		}

		c.logger.Debug("asking candidate to repeat", zap.Int("attempt", attempt+1))
		if err := c.speaker.Speak(ctx, RepeatMessage); err != nil {
			return "", fmt.Errorf("asking to repeat: %w", err)
		}
	}
}
