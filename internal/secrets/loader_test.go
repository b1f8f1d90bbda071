package secrets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gemini.key")
	if err := os.WriteFile(path, []byte("  file-key\n"), 0o600); err != nil {
		t.Fatalf("writing key: %v", err)
	}

	t.Setenv("TEST_GEMINI_KEY", "env-key")

	got, err := Load(Source{Name: "gemini api key", File: path, Env: "TEST_GEMINI_KEY", Value: "inline"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "file-key" {
		t.Fatalf("expected file to win, got %q", got)
	}
}

func TestLoadFromEnvThenValue(t *testing.T) {
	t.Setenv("TEST_GEMINI_KEY", " env-key ")

	got, err := Load(Source{Env: "TEST_GEMINI_KEY", Value: "inline"})
	if err != nil || got != "env-key" {
		t.Fatalf("expected env-key, got %q (err %v)", got, err)
	}

	t.Setenv("TEST_GEMINI_KEY", "")

	got, err = Load(Source{Env: "TEST_GEMINI_KEY", Value: "inline"})
	if err != nil || got != "inline" {
		t.Fatalf("expected inline fallback, got %q (err %v)", got, err)
	}
}

func TestLoadErrors(t *testing.T) {
	empty := filepath.Join(t.TempDir(), "empty.key")
	if err := os.WriteFile(empty, []byte("\n"), 0o600); err != nil {
		t.Fatalf("writing key: %v", err)
	}

	tests := []struct {
		name   string
		src    Source
		expect string
	}{
		{name: "nothing configured", src: Source{Name: "gemini api key"}, expect: "gemini api key is not configured"},
		{name: "default name", src: Source{}, expect: "secret is not configured"},
		{name: "empty file", src: Source{File: empty}, expect: "is empty"},
		{name: "missing file", src: Source{File: filepath.Join(t.TempDir(), "absent")}, expect: "reading secret from file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.src)
			if err == nil || !strings.Contains(err.Error(), tt.expect) {
				t.Fatalf("expected error containing %q, got %v", tt.expect, err)
			}
		})
	}
}
