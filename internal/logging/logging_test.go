package logging

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/wailsapp/wails/v2/pkg/logger"
)

func TestWailsLevel(t *testing.T) {
	tests := []struct {
		in   string
		want logger.LogLevel
	}{
		{"trace", logger.TRACE},
		{"debug", logger.DEBUG},
		{"info", logger.INFO},
		{"", logger.INFO},
		{"warn", logger.WARNING},
		{"error", logger.ERROR},
		{"bogus", logger.INFO},
	}

	for _, tc := range tests {
		if got := WailsLevel(tc.in); got != tc.want {
			t.Errorf("WailsLevel(%q) = %v; want %v", tc.in, got, tc.want)
		}
	}
}

func TestWailsLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	w := NewWailsLogger(zerolog.New(&buf).Level(zerolog.InfoLevel))

	w.Debug("hidden")
	w.Warning("low disk")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d log lines; want 1: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["level"] != "warn" {
		t.Errorf("level = %v; want warn", entry["level"])
	}
	if entry["message"] != "low disk" {
		t.Errorf("message = %v; want low disk", entry["message"])
	}
	if entry["component"] != "wails" {
		t.Errorf("component = %v; want wails", entry["component"])
	}
}

func TestLogPath(t *testing.T) {
	path := LogPath()

	if filepath.Base(path) != "mute-overlay.log" {
		t.Errorf("LogPath() = %s; want mute-overlay.log file", path)
	}
	if filepath.Base(filepath.Dir(path)) != "mute-overlay" {
		t.Errorf("LogPath() = %s; want mute-overlay directory", path)
	}
}

func TestNew_UnknownLevelFallsBack(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)
	t.Setenv("LOCALAPPDATA", dir)
	t.Setenv("HOME", dir)

	l := New("not-a-level")
	if l.GetLevel() != zerolog.InfoLevel {
		t.Errorf("level = %v; want info fallback", l.GetLevel())
	}
}
