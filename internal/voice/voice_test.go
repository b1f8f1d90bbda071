package voice

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/interview-agent/internal/interview"
)

var _ interview.Channel = (*Channel)(nil)

type recordingSpeaker struct {
	spoken []string
	err    error
}

func (s *recordingSpeaker) Speak(_ context.Context, text string) error {
	s.spoken = append(s.spoken, text)
	return s.err
}

type listenResult struct {
	text string
	err  error
}

type scriptedListener struct {
	results []listenResult
	calls   int
}

func (l *scriptedListener) Listen(context.Context) (string, error) {
	if l.calls >= len(l.results) {
		return "", ErrNoMoreAudio
	}
	res := l.results[l.calls]
	l.calls++
	return res.text, res.err
}

func TestObtainRecognizedFirstTime(t *testing.T) {
	speaker := &recordingSpeaker{}
	listener := &scriptedListener{results: []listenResult{{text: "Five years of Python"}}}

	got, err := NewChannel(speaker, listener, 0, nil).Obtain(context.Background(), "q")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Five years of Python" {
		t.Fatalf("unexpected answer %q", got)
	}
	if len(speaker.spoken) != 0 {
		t.Fatalf("nothing should be spoken, got %q", speaker.spoken)
	}
}

func TestObtainAsksToRepeat(t *testing.T) {
	speaker := &recordingSpeaker{}
	listener := &scriptedListener{results: []listenResult{
		{err: ErrNotUnderstood},
		{err: ErrNotUnderstood},
		{text: "Mostly SQL"},
	}}

	got, err := NewChannel(speaker, listener, 5, nil).Obtain(context.Background(), "q")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Mostly SQL" {
		t.Fatalf("unexpected answer %q", got)
	}
	if !slices.Equal(speaker.spoken, []string{RepeatMessage, RepeatMessage}) {
		t.Fatalf("unexpected prompts %q", speaker.spoken)
	}
	if listener.calls != 3 {
		t.Fatalf("expected 3 listen attempts, got %d", listener.calls)
	}
}

func TestObtainGivesUpAfterMaxRetries(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	speaker := &recordingSpeaker{}

	results := make([]listenResult, 10)
	for i := range results {
		results[i] = listenResult{err: ErrNotUnderstood}
	}
	listener := &scriptedListener{results: results}

	got, err := NewChannel(speaker, listener, 2, zap.New(core)).Obtain(context.Background(), "q")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty answer, got %q", got)
	}
	if listener.calls != 3 {
		t.Fatalf("expected 3 listen attempts, got %d", listener.calls)
	}
	if len(speaker.spoken) != 2 {
		t.Fatalf("expected 2 repeat prompts, got %q", speaker.spoken)
	}
	if n := logs.FilterMessage("giving up on response").Len(); n != 1 {
		t.Fatalf("expected 1 give-up warning, got %d", n)
	}
}

func TestObtainServiceFailureYieldsEmptyAnswer(t *testing.T) {
	speaker := &recordingSpeaker{}
	listener := &scriptedListener{results: []listenResult{{err: ErrServiceUnavailable}}}

	got, err := NewChannel(speaker, listener, 5, nil).Obtain(context.Background(), "q")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty answer, got %q", got)
	}
	if !slices.Equal(speaker.spoken, []string{ServiceIssueMessage}) {
		t.Fatalf("unexpected prompts %q", speaker.spoken)
	}
	if listener.calls != 1 {
		t.Fatalf("expected 1 listen attempt, got %d", listener.calls)
	}
}

func TestObtainCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	listener := &scriptedListener{results: []listenResult{{err: context.Canceled}}}

	_, err := NewChannel(&recordingSpeaker{}, listener, 5, nil).Obtain(ctx, "q")

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestObtainSpeakerFailure(t *testing.T) {
	boom := errors.New("audio device lost")
	speaker := &recordingSpeaker{err: boom}
	listener := &scriptedListener{results: []listenResult{{err: ErrNotUnderstood}}}

	_, err := NewChannel(speaker, listener, 5, nil).Obtain(context.Background(), "q")

	if !errors.Is(err, boom) {
		t.Fatalf("expected speaker error, got %v", err)
	}
}

func TestConductOverVoice(t *testing.T) {
	speaker := &recordingSpeaker{}
	listener := &scriptedListener{results: []listenResult{
		{text: "I led the analytics team"},
		{err: ErrNotUnderstood},
		{text: "Integrity matters to me"},
	}}

	agent := interview.New([]string{"Q1?", "Q2?"}, nil)
	path := filepath.Join(t.TempDir(), "transcript.txt")

	responses, err := agent.Conduct(context.Background(), NewChannel(speaker, listener, 5, nil), path)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if expect := []string{"I led the analytics team", "Integrity matters to me"}; !slices.Equal(responses, expect) {
		t.Fatalf("expected %q, got %q", expect, responses)
	}
	spoken := []string{
		"Interview Start",
		"Q1?",
		"Q2?",
		RepeatMessage,
		interview.ConcludingMessage,
		"Interview End",
	}
	if !slices.Equal(speaker.spoken, spoken) {
		t.Fatalf("expected %q, got %q", spoken, speaker.spoken)
	}

	entries, err := interview.ReadTranscript(path)
	if err != nil {
		t.Fatalf("reading transcript: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 transcript entries, got %d", len(entries))
	}
	if entries[1].Question != "Q2?" {
		t.Fatalf("unexpected second question %q", entries[1].Question)
	}
}
