package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("info", "json", &buf)

	logger.Debug("hidden")
	logger.Info("tado client", "version", "v2097")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one record, got %d: %q", len(lines), buf.String())
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if rec["msg"] != "tado client" || rec["version"] != "v2097" {
		t.Fatalf("unexpected record: %v", rec)
	}
}

func TestNewLogger_TextDebug(t *testing.T) {
	var buf bytes.Buffer
	NewLogger("debug", "text", &buf).Debug("parsed env document", "keys", 9)

	if !strings.Contains(buf.String(), "level=DEBUG") || !strings.Contains(buf.String(), "keys=9") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
