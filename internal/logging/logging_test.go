package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestForEpisodePrefix(t *testing.T) {
	var buf bytes.Buffer
	base, closer := New(Options{Console: &buf})
	defer closer.Close()

	id := uuid.MustParse("1f3a9c2e-0000-4000-8000-000000000000")
	ForEpisode(base, id).Print("tower placed")

	if !strings.Contains(buf.String(), "[episode 1f3a9c2e] tower placed") {
		t.Errorf("log line = %q", buf.String())
	}
}

func TestNewWritesFile(t *testing.T) {
	var console bytes.Buffer
	path := filepath.Join(t.TempDir(), "td.log")
	logger, closer := New(Options{Console: &console, File: path})
	logger.Print("game over")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "game over") || !strings.Contains(console.String(), "game over") {
		t.Errorf("file=%q console=%q", data, console.String())
	}
}
