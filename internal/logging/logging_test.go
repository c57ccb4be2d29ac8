package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	wailslogger "github.com/wailsapp/wails/v2/pkg/logger"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{"", zerolog.InfoLevel, false},
		{"debug", zerolog.DebugLevel, false},
		{"TRACE", zerolog.TraceLevel, false},
		{" warn ", zerolog.WarnLevel, false},
		{"warning", zerolog.WarnLevel, false},
		{"error", zerolog.ErrorLevel, false},
		{"loud", zerolog.NoLevel, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat(""); err != nil || f != FormatConsole {
		t.Errorf("Expected console default, got %q (%v)", f, err)
	}
	if f, err := ParseFormat("JSON"); err != nil || f != FormatJSON {
		t.Errorf("Expected json, got %q (%v)", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("Expected error for unknown format")
	}
}

func TestNew_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	log := Component(New(&buf, zerolog.DebugLevel, FormatJSON), "bridge")
	log.Info().Str("id", "menu_file_open").Msg("menu activated")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Expected JSON log line, got %q: %v", buf.String(), err)
	}
	if entry["component"] != "bridge" {
		t.Errorf("Expected component 'bridge', got %v", entry["component"])
	}
	if entry["id"] != "menu_file_open" {
		t.Errorf("Expected id field, got %v", entry["id"])
	}
	if entry["message"] != "menu activated" {
		t.Errorf("Expected message, got %v", entry["message"])
	}
}

func TestNew_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, zerolog.WarnLevel, FormatConsole)
	log.Info().Msg("hidden")
	log.Warn().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Expected info line to be filtered, got %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("Expected warn line, got %q", out)
	}
}

func TestWailsAdapter(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewWailsAdapter(New(&buf, zerolog.TraceLevel, FormatJSON))

	adapter.Info("runtime ready")
	adapter.Warning("slow frame")
	adapter.Error("asset missing")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 log lines, got %d: %q", len(lines), buf.String())
	}
	wantLevels := []string{"info", "warn", "error"}
	for i, line := range lines {
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("Invalid JSON line %q: %v", line, err)
		}
		if entry["level"] != wantLevels[i] {
			t.Errorf("Line %d: expected level %s, got %v", i, wantLevels[i], entry["level"])
		}
		if entry["component"] != "wails" {
			t.Errorf("Line %d: expected component 'wails', got %v", i, entry["component"])
		}
	}
}

func TestWailsLevel(t *testing.T) {
	tests := []struct {
		in   zerolog.Level
		want wailslogger.LogLevel
	}{
		{zerolog.TraceLevel, wailslogger.TRACE},
		{zerolog.DebugLevel, wailslogger.DEBUG},
		{zerolog.InfoLevel, wailslogger.INFO},
		{zerolog.WarnLevel, wailslogger.WARNING},
		{zerolog.ErrorLevel, wailslogger.ERROR},
	}
	for _, tt := range tests {
		if got := WailsLevel(tt.in); got != tt.want {
			t.Errorf("WailsLevel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
