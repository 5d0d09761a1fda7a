package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestSetup_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "wordwise.log")

	closer, err := Setup("debug", path)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	log.Debug().Str("word", "eloquent").Msg("round playing")
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"word":"eloquent"`) {
		t.Fatalf("log line missing field: %s", data)
	}
}

func TestSetup_InvalidLevelFallsBackToInfo(t *testing.T) {
	closer, err := Setup("chatty", filepath.Join(t.TempDir(), "w.log"))
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	defer closer.Close()

	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Fatalf("level = %s, want info", zerolog.GlobalLevel())
	}
}

func TestDefaultLogPath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/var/state")
	p, err := DefaultLogPath()
	if err != nil {
		t.Fatalf("default path: %v", err)
	}
	if p != filepath.Join("/var/state", "wordwise", "wordwise.log") {
		t.Fatalf("path = %q", p)
	}
}
