package voice

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/spigell/interview-agent/internal/ai"
)

// ErrNoMoreAudio is returned by an AudioSource with nothing left to play.
var ErrNoMoreAudio = errors.New("no more audio")

// Clip is one recorded answer.
type Clip struct {
	Name     string
	Data     []byte
	MIMEType string
}

// AudioSource yields recorded answers one at a time.
type AudioSource interface {
	Next(ctx context.Context) (*Clip, error)
}

// TranscribingListener reads clips from an AudioSource and turns them into
// text with an ai.Transcriber.
type TranscribingListener struct {
	source      AudioSource
	transcriber ai.Transcriber
	logger      *zap.Logger
}

func NewTranscribingListener(source AudioSource, transcriber ai.Transcriber, logger *zap.Logger) *TranscribingListener {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TranscribingListener{source: source, transcriber: transcriber, logger: logger}
}

// Listen transcribes the next clip. Source and transcriber failures other
// than unrecognized speech are reported as ErrServiceUnavailable.
func (l *TranscribingListener) Listen(ctx context.Context) (string, error) {
	clip, err := l.source.Next(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	l.logger.Debug("listening", zap.String("clip", clip.Name), zap.String("mime_type", clip.MIMEType))

	text, err := l.transcriber.Transcribe(ctx, clip.Data, clip.MIMEType)
	switch {
	case err == nil:
		return text, nil
	case errors.Is(err, ai.ErrNotUnderstood):
		return "", err
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "", err
	default:
		return "", fmt.Errorf("%w: transcribing %s: %w", ErrServiceUnavailable, clip.Name, err)
	}
}

// DirSource replays the regular files of a directory in lexical order. Each
// file is one answer.
type DirSource struct {
	files    []string
	mimeType string
	next     int
}

// NewDirSource lists dir once. When mimeType is empty the type of each clip
// is detected from its content.
func NewDirSource(dir, mimeType string) (*DirSource, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading audio dir: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}

	return &DirSource{files: files, mimeType: strings.TrimSpace(mimeType)}, nil
}

// Len returns how many clips remain.
func (d *DirSource) Len() int {
	return len(d.files) - d.next
}

func (d *DirSource) Next(ctx context.Context) (*Clip, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if d.next >= len(d.files) {
		return nil, ErrNoMoreAudio
	}

	path := d.files[d.next]
	d.next++

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading clip %s: %w", path, err)
	}

	mimeType := d.mimeType
	if mimeType == "" {
		mimeType = mimetype.Detect(data).String()
	}

	return &Clip{Name: filepath.Base(path), Data: data, MIMEType: mimeType}, nil
}
