package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"hyprwatch/internal/logging"
)

func TestConsoleFormatRendersSingleLine(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(logging.Options{Level: "debug", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	log.Info("snapshot loaded", "kind", "workspaces", "count", 3)

	output := buf.String()
	if strings.Count(output, "\n") != 1 {
		t.Fatalf("expected a single line, got %q", output)
	}
	for _, want := range []string{"INFO", "snapshot loaded", "kind=workspaces", "count=3"} {
		if !strings.Contains(output, want) {
			t.Fatalf("output %q missing %q", output, want)
		}
	}
}

func TestConsoleFormatQuotesValuesWithSpaces(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(logging.Options{Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	log.Warn("cycle skipped", "error", "decode j/monitors response: boom")

	if !strings.Contains(buf.String(), `error="decode j/monitors response: boom"`) {
		t.Fatalf("value not quoted: %q", buf.String())
	}
}

func TestConsoleFormatHonorsLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(logging.Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	log.Info("should be suppressed")
	log.Warn("should appear")

	output := buf.String()
	if strings.Contains(output, "suppressed") {
		t.Fatalf("info record leaked through warn level: %q", output)
	}
	if !strings.Contains(output, "should appear") {
		t.Fatalf("warn record missing: %q", output)
	}
}

func TestJSONFormatEmitsValidDocuments(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(logging.Options{Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	log.Info("watch started", "kind", "clients")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v: %q", err, buf.String())
	}
	if record["msg"] != "watch started" || record["kind"] != "clients" {
		t.Fatalf("unexpected record: %v", record)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNewNopDiscards(t *testing.T) {
	log := logging.NewNop()
	// Must not panic and must report disabled levels.
	log.Error("dropped")
	if log.Enabled(nil, 0) {
		t.Fatal("nop logger should report disabled")
	}
}
