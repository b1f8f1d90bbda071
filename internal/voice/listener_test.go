package voice

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/spigell/interview-agent/internal/ai"
)

var wavHeader = []byte("RIFF\x24\x00\x00\x00WAVEfmt \x10\x00\x00\x00")

type stubTranscriber struct {
	text      string
	err       error
	mimeTypes []string
}

func (s *stubTranscriber) Transcribe(_ context.Context, _ []byte, mimeType string) (string, error) {
	s.mimeTypes = append(s.mimeTypes, mimeType)
	return s.text, s.err
}

func writeClips(t *testing.T, names ...string) string {
	t.Helper()

	dir := t.TempDir()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), wavHeader, 0o600); err != nil {
			t.Fatalf("writing clip %s: %v", name, err)
		}
	}
	return dir
}

func TestDirSourceReplaysInLexicalOrder(t *testing.T) {
	dir := writeClips(t, "02.wav", "01.wav", ".hidden")
	if err := os.Mkdir(filepath.Join(dir, "nested"), 0o755); err != nil {
		t.Fatalf("creating nested dir: %v", err)
	}

	src, err := NewDirSource(dir, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src.Len() != 2 {
		t.Fatalf("expected 2 clips, got %d", src.Len())
	}

	first, err := src.Next(context.Background())
	if err != nil {
		t.Fatalf("first clip: %v", err)
	}
	if first.Name != "01.wav" || first.MIMEType != "audio/wav" {
		t.Fatalf("unexpected first clip %q (%s)", first.Name, first.MIMEType)
	}
	if !bytes.Equal(wavHeader, first.Data) {
		t.Fatal("first clip data differs from the file")
	}

	second, err := src.Next(context.Background())
	if err != nil {
		t.Fatalf("second clip: %v", err)
	}
	if second.Name != "02.wav" {
		t.Fatalf("unexpected second clip %q", second.Name)
	}

	if _, err := src.Next(context.Background()); !errors.Is(err, ErrNoMoreAudio) {
		t.Fatalf("expected ErrNoMoreAudio, got %v", err)
	}
	if src.Len() != 0 {
		t.Fatalf("expected drained source, got %d clips", src.Len())
	}
}

func TestDirSourceConfiguredMIMEType(t *testing.T) {
	src, err := NewDirSource(writeClips(t, "answer.ogg"), " audio/ogg ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clip, err := src.Next(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clip.MIMEType != "audio/ogg" {
		t.Fatalf("unexpected mime type %q", clip.MIMEType)
	}
}

func TestDirSourceMissingDir(t *testing.T) {
	if _, err := NewDirSource(filepath.Join(t.TempDir(), "absent"), ""); err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}

func TestTranscribingListener(t *testing.T) {
	tests := []struct {
		name       string
		clips      []string
		transcribe *stubTranscriber
		expect     string
		expectErr  error
	}{
		{
			name:       "transcribed",
			clips:      []string{"01.wav"},
			transcribe: &stubTranscriber{text: "I use pandas daily"},
			expect:     "I use pandas daily",
		},
		{
			name:       "not understood passes through",
			clips:      []string{"01.wav"},
			transcribe: &stubTranscriber{err: ai.ErrNotUnderstood},
			expectErr:  ErrNotUnderstood,
		},
		{
			name:       "backend failure is a service error",
			clips:      []string{"01.wav"},
			transcribe: &stubTranscriber{err: errors.New("503")},
			expectErr:  ErrServiceUnavailable,
		},
		{
			name:       "drained source is a service error",
			transcribe: &stubTranscriber{text: "unused"},
			expectErr:  ErrNoMoreAudio,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := NewDirSource(writeClips(t, tt.clips...), "")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			got, err := NewTranscribingListener(src, tt.transcribe, nil).Listen(context.Background())
			if tt.expectErr != nil {
				if !errors.Is(err, tt.expectErr) {
					t.Fatalf("expected %v, got %v", tt.expectErr, err)
				}
				if errors.Is(tt.expectErr, ErrNoMoreAudio) && !errors.Is(err, ErrServiceUnavailable) {
					t.Fatalf("drained source must be a service error, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
			if !slices.Equal(tt.transcribe.mimeTypes, []string{"audio/wav"}) {
				t.Fatalf("unexpected mime types %q", tt.transcribe.mimeTypes)
			}
		})
	}
}

func TestWriterSpeaker(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriterSpeaker(&buf).Speak(context.Background(), "Interview Start"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := buf.String(); got != "[agent] Interview Start\n" {
		t.Fatalf("unexpected output %q", got)
	}
}
