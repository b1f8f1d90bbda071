// Package interview runs the question/answer loop and keeps its transcript.
package interview

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spigell/interview-agent/internal/logger"
	"github.com/spigell/interview-agent/internal/utils"
)

const (
	// ConcludingMessage is returned once every question has been asked.
	ConcludingMessage = "Thank you for your time. This concludes our interview."

	startMessage = "Interview Start"
	endMessage   = "Interview End"

	maxResponseLogLength = 80
)

// State is the position of an Agent in the interview.
type State int

const (
	AwaitingQuestion State = iota
	Concluded
)

func (s State) String() string {
	switch s {
	case AwaitingQuestion:
		return "awaiting_question"
	case Concluded:
		return "concluded"
	default:
		return "unknown"
	}
}

// Channel delivers questions to the candidate and collects answers.
type Channel interface {
	Deliver(ctx context.Context, text string) error
	Obtain(ctx context.Context, question string) (string, error)
}

// Agent owns one interview session. It is not safe for concurrent use.
//
// The agent does not pair answers with asked questions: callers are expected
// to alternate AskNextQuestion and RecordResponse.
type Agent struct {
	id        string
	questions []string
	responses []string
	current   int
	logger    *zap.Logger
}

// New creates an Agent over a finalized question list.
func New(questions []string, log *zap.Logger) *Agent {
	id := uuid.NewString()
	return &Agent{
		id:        id,
		questions: append([]string(nil), questions...),
		responses: []string{},
		logger:    logger.WithFields(log, logger.SessionFields(id)...),
	}
}

// ID returns the session identifier used in logs.
func (a *Agent) ID() string { return a.id }

// State reports whether questions remain.
func (a *Agent) State() State {
	if a.current < len(a.questions) {
		return AwaitingQuestion
	}
	return Concluded
}

// AskNextQuestion returns the next question and advances the cursor. Once
// concluded it keeps returning ConcludingMessage without changing state.
func (a *Agent) AskNextQuestion() string {
	if a.State() == Concluded {
		return ConcludingMessage
	}

	question := a.questions[a.current]
	a.current++

	a.logger.Debug("asking question", logger.QuestionIndex(a.current), zap.Int("total", len(a.questions)))

	return question
}

// RecordResponse appends response verbatim.
func (a *Agent) RecordResponse(response string) {
	a.responses = append(a.responses, response)

	a.logger.Debug("recorded response",
		zap.Int("responses", len(a.responses)),
		zap.String("preview", utils.TruncateForLog(response, maxResponseLogLength)),
	)
}

// Questions returns a copy of the question list.
func (a *Agent) Questions() []string {
	return append([]string(nil), a.questions...)
}

// Responses returns a copy of the recorded responses in order.
func (a *Agent) Responses() []string {
	return append([]string{}, a.responses...)
}

// Conduct asks every remaining question over ch, records each answer, then
// saves the transcript to path and returns the responses.
func (a *Agent) Conduct(ctx context.Context, ch Channel, path string) ([]string, error) {
	a.logger.Info("interview started", zap.Int("questions", len(a.questions)))

	if err := ch.Deliver(ctx, startMessage); err != nil {
		return nil, fmt.Errorf("delivering start message: %w", err)
	}

	for a.State() == AwaitingQuestion {
		question := a.AskNextQuestion()

		if err := ch.Deliver(ctx, question); err != nil {
			return nil, fmt.Errorf("delivering question %d: %w", a.current, err)
		}

		response, err := ch.Obtain(ctx, question)
		if err != nil {
			return nil, fmt.Errorf("obtaining response %d: %w", a.current, err)
		}

		a.RecordResponse(response)
	}

	for _, text := range []string{ConcludingMessage, endMessage} {
		if err := ch.Deliver(ctx, text); err != nil {
			return nil, fmt.Errorf("delivering closing message: %w", err)
		}
	}

	if err := a.SaveResponses(path); err != nil {
		return nil, err
	}

	a.logger.Info("interview finished", zap.Int("responses", len(a.responses)), zap.String("transcript", path))

	return a.Responses(), nil
}
