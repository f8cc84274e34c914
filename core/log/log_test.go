// File: log_test.go
// Title: Structured Logger Tests
// Description: Test suite for level handling, clone semantics, and the
//              text/JSON formatters.
// Version: v0.1.0
// Created: 2025-08-07
// Modified: 2025-08-07
//
// Change History:
// - 2025-08-07 v0.1.0: Initial test implementation

package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", "debug", LevelDebug, false},
		{"info", "info", LevelInfo, false},
		{"warning alias", "warning", LevelWarn, false},
		{"err alias", "err", LevelError, false},
		{"uppercase", "ERROR", LevelError, false},
		{"padded", "  warn  ", LevelWarn, false},
		{"unknown", "verbose", LevelInfo, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseLevel(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestLevelGate(t *testing.T) {
	var buf bytes.Buffer
	logger := New().WithOutput(&buf).WithLevel(LevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Error("shown")

	lines := strings.Count(buf.String(), "\n")
	if lines != 2 {
		t.Errorf("expected 2 log lines, got %d: %q", lines, buf.String())
	}
	if strings.Contains(buf.String(), "hidden") {
		t.Error("suppressed levels should not appear in output")
	}
}

func TestCloneIsolation(t *testing.T) {
	var buf bytes.Buffer
	base := New().WithOutput(&buf).WithField("app", "whenny")
	child := base.WithField("cmd", "serve")

	base.Info("base")
	if strings.Contains(buf.String(), "cmd=serve") {
		t.Error("child field leaked into base logger")
	}

	buf.Reset()
	child.Info("child")
	if !strings.Contains(buf.String(), "app=whenny") || !strings.Contains(buf.String(), "cmd=serve") {
		t.Errorf("child should carry both fields: %q", buf.String())
	}
}

func TestTextFormatter(t *testing.T) {
	entry := &Entry{
		Timestamp: time.Date(2024, 1, 15, 15, 30, 45, 0, time.UTC),
		Level:     LevelInfo,
		Logger:    "format",
		Message:   "rendered",
		Fields:    Fields{"zone": "Asia/Tokyo", "note": "two words"},
	}

	line, err := NewTextFormatter().Format(entry)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	got := string(line)
	for _, want := range []string{"[INFO]", "[format]", "rendered", "zone=Asia/Tokyo", `note="two words"`} {
		if !strings.Contains(got, want) {
			t.Errorf("text output missing %q: %q", want, got)
		}
	}
	if !strings.HasSuffix(got, "\n") {
		t.Error("text output should end with a newline")
	}
}

func TestJSONFormatter(t *testing.T) {
	entry := &Entry{
		Timestamp: time.Date(2024, 1, 15, 15, 30, 45, 0, time.UTC),
		Level:     LevelError,
		Message:   "boom",
		Fields:    Fields{"code": "INVALID_TIMEZONE", "level": "shadowed"},
	}

	line, err := NewJSONFormatter().Format(entry)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	var record map[string]interface{}
	if err := json.Unmarshal(line, &record); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if record["level"] != "error" {
		t.Errorf("level = %v, want error", record["level"])
	}
	if record["message"] != "boom" {
		t.Errorf("message = %v, want boom", record["message"])
	}
	if record["code"] != "INVALID_TIMEZONE" {
		t.Errorf("code field = %v", record["code"])
	}
	if record["fields.level"] != "shadowed" {
		t.Error("colliding field names should be prefixed")
	}
}

func TestPerCallFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New().WithOutput(&buf)

	logger.Info("request", Fields{"zone": "UTC"})

	if !strings.Contains(buf.String(), "zone=UTC") {
		t.Errorf("per-call fields missing: %q", buf.String())
	}
}
