package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agent.log")

	log, err := New(true, true, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	log.Debug("generated interview questions")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}

	line := string(data)
	if !strings.Contains(line, `"step":"generated interview questions"`) || !strings.Contains(line, `"level":"debug"`) {
		t.Fatalf("unexpected log line: %s", line)
	}
}

func TestNewDefaultsToInfo(t *testing.T) {
	log, err := New(false, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if log.Core().Enabled(-1) {
		t.Fatalf("debug level must be disabled by default")
	}
}

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	cfg := buildConfig(false, false, nil)
	if cfg.Encoding != "console" || len(cfg.OutputPaths) != 1 || cfg.OutputPaths[0] != "stderr" {
		t.Fatalf("unexpected default config: %+v", cfg)
	}
	if cfg.EncoderConfig.MessageKey != "step" {
		t.Fatalf("unexpected message key %q", cfg.EncoderConfig.MessageKey)
	}

	cfg = buildConfig(true, true, []string{"a.log", "stdout"})
	if cfg.Encoding != "json" || !cfg.Level.Enabled(-1) || len(cfg.OutputPaths) != 2 {
		t.Fatalf("unexpected json/debug config: %+v", cfg)
	}
}
