// File: config_test.go
// Title: Configuration File Loading Tests
// Description: Test suite for TOML/YAML override parsing, unknown-section
//              rejection, and value validation.
// Version: v0.1.0
// Created: 2025-08-06
// Modified: 2025-08-06
//
// Change History:
// - 2025-08-06 v0.1.0: Initial test implementation

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/msto63/whenny"
	werror "github.com/msto63/whenny/core/error"
)

func TestParseTOML(t *testing.T) {
	data := []byte(`
locale = "en"
defaultTimezone = "America/New_York"

[formats]
twelveHour = false

[formats.presets]
stamp = "{year}-{month}-{day}"

[calendar]
weekStart = "monday"
businessDays = ["mon", "tue", "wed", "thu"]

[server]
fallback = "utc"
`)

	override, err := Parse(data, FormatTOML)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if override.DefaultTimezone == nil || *override.DefaultTimezone != "America/New_York" {
		t.Error("defaultTimezone not parsed")
	}
	if override.Formats == nil || override.Formats.TwelveHour == nil || *override.Formats.TwelveHour {
		t.Error("formats.twelveHour should be false")
	}
	if override.Formats.Presets["stamp"] != "{year}-{month}-{day}" {
		t.Error("formats.presets.stamp not parsed")
	}
	if override.Calendar == nil || override.Calendar.WeekStart == nil || *override.Calendar.WeekStart != time.Monday {
		t.Error("calendar.weekStart should be Monday")
	}
	if len(override.Calendar.BusinessDays) != 4 {
		t.Errorf("businessDays count = %d, want 4", len(override.Calendar.BusinessDays))
	}
	if override.Server == nil || override.Server.Fallback == nil || *override.Server.Fallback != whenny.ServerFallbackUTC {
		t.Error("server.fallback should be utc")
	}

	cfg := whenny.MergeConfig(whenny.DefaultConfig(), override)
	if cfg.Calendar.WeekStart != time.Monday {
		t.Error("merged config should carry the Monday week start")
	}
	if cfg.Formats.Presets["short"] == "" {
		t.Error("merged config should keep default presets")
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
locale: de
smart:
  past:
    - within: minute
      template: relative
    - older: true
      template: "{monthShort} {day}, {year}"
duration:
  separator: " and "
`)

	override, err := Parse(data, FormatYAML)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if override.Locale == nil || *override.Locale != "de" {
		t.Error("locale not parsed")
	}
	if override.Smart == nil || len(override.Smart.Past) != 2 {
		t.Fatal("smart.past should have two buckets")
	}
	if !override.Smart.Past[1].Older {
		t.Error("final bucket should be the older catch-all")
	}
	if override.Duration == nil || override.Duration.Separator == nil || *override.Duration.Separator != " and " {
		t.Error("duration.separator not parsed")
	}

	cfg := whenny.MergeConfig(whenny.DefaultConfig(), override)
	if err := cfg.Validate(); err != nil {
		t.Errorf("merged config should validate: %v", err)
	}
}

func TestParseUnknownSection(t *testing.T) {
	data := []byte("[telemetry]\nenabled = true\n")

	_, err := Parse(data, FormatTOML)
	if err == nil {
		t.Fatal("unknown section should be rejected")
	}
	if !werror.HasCode(err, werror.CodeUnknownModule) {
		t.Errorf("error code = %v, want UNKNOWN_MODULE", werror.CodeOf(err))
	}
}

func TestParseBadWeekday(t *testing.T) {
	data := []byte("[calendar]\nweekStart = \"caturday\"\n")

	_, err := Parse(data, FormatTOML)
	if err == nil {
		t.Fatal("bad weekday should be rejected")
	}
	if !werror.HasCode(err, werror.CodeValidationFailed) {
		t.Errorf("error code = %v, want VALIDATION_FAILED", werror.CodeOf(err))
	}
}

func TestParseEmptyBusinessDays(t *testing.T) {
	data := []byte("[calendar]\nbusinessDays = []\n")

	_, err := Parse(data, FormatTOML)
	if err == nil {
		t.Fatal("empty businessDays list should be rejected")
	}
	if !werror.HasCode(err, werror.CodeValidationFailed) {
		t.Errorf("error code = %v, want VALIDATION_FAILED", werror.CodeOf(err))
	}
}

func TestParseBadFallback(t *testing.T) {
	data := []byte("[server]\nfallback = \"panic\"\n")

	if _, err := Parse(data, FormatTOML); err == nil {
		t.Fatal("bad fallback policy should be rejected")
	}
}

func TestParseJustNowLimit(t *testing.T) {
	override, err := Parse([]byte("[relative]\njustNowLimit = 10\n"), FormatTOML)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	cfg := whenny.MergeConfig(whenny.DefaultConfig(), override)
	now := whenny.Now()

	// 25 seconds ago is past the shrunken just-now window
	if got := whenny.Relative(whenny.FromUnixMilli(now.UnixMilli()-25000), now, cfg); got != "25 seconds ago" {
		t.Errorf("Relative with justNowLimit=10 = %q, want %q", got, "25 seconds ago")
	}

	if _, err := Parse([]byte("[relative]\njustNowLimit = -5\n"), FormatTOML); err == nil {
		t.Error("negative justNowLimit should be rejected")
	}
}

func TestLoadAutoDetect(t *testing.T) {
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "whenny.toml")
	if err := os.WriteFile(tomlPath, []byte("locale = \"en\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	yamlPath := filepath.Join(dir, "whenny.yaml")
	if err := os.WriteFile(yamlPath, []byte("locale: en\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{tomlPath, yamlPath} {
		override, err := Load(path)
		if err != nil {
			t.Errorf("Load(%s) failed: %v", path, err)
			continue
		}
		if override.Locale == nil || *override.Locale != "en" {
			t.Errorf("Load(%s) did not parse locale", path)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("missing file should fail")
	}
	if !werror.HasCode(err, werror.CodeMissingConfig) {
		t.Errorf("error code = %v, want MISSING_CONFIG", werror.CodeOf(err))
	}
}

func TestFormatString(t *testing.T) {
	if FormatTOML.String() != "toml" || FormatYAML.String() != "yaml" || FormatAuto.String() != "auto" {
		t.Error("Format.String() mismatch")
	}
}
