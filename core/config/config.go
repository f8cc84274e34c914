// File: config.go
// Title: Configuration File Loading
// Description: Implements loading of partial whenny configuration override
//              trees from TOML and YAML files with format auto-detection.
//              Loaded overrides feed the pure whenny.MergeConfig; this
//              package never mutates a live configuration.
// Version: v0.1.0
// Created: 2025-08-06
// Modified: 2025-08-09
//
// Change History:
// - 2025-08-06 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/msto63/whenny"
	werror "github.com/msto63/whenny/core/error"
	"github.com/msto63/whenny/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// recognizedSections are the top-level keys a configuration file may carry;
// anything else fails with UNKNOWN_MODULE rather than being silently ignored
var recognizedSections = map[string]bool{
	"locale":          true,
	"defaultTimezone": true,
	"relative":        true,
	"smart":           true,
	"compare":         true,
	"duration":        true,
	"formats":         true,
	"calendar":        true,
	"natural":         true,
	"server":          true,
	"personality":     true,
}

// fileOverride mirrors the file-expressible subset of whenny.ConfigOverride.
// Phrase generator functions cannot live in a file; those are overridden
// programmatically through whenny.MergeConfig.
type fileOverride struct {
	Locale          *string             `toml:"locale" yaml:"locale"`
	DefaultTimezone *string             `toml:"defaultTimezone" yaml:"defaultTimezone"`
	Relative        *relativeSection    `toml:"relative" yaml:"relative"`
	Smart           *smartSection       `toml:"smart" yaml:"smart"`
	Compare         *compareSection     `toml:"compare" yaml:"compare"`
	Duration        *durationSection    `toml:"duration" yaml:"duration"`
	Formats         *formatsSection     `toml:"formats" yaml:"formats"`
	Calendar        *calendarSection    `toml:"calendar" yaml:"calendar"`
	Natural         *naturalSection     `toml:"natural" yaml:"natural"`
	Server          *serverSection      `toml:"server" yaml:"server"`
	Personality     *personalitySection `toml:"personality" yaml:"personality"`
}

type relativeSection struct {
	JustNowLimit *int64 `toml:"justNowLimit" yaml:"justNowLimit"`
}

type smartSection struct {
	Past   []bucketEntry `toml:"past" yaml:"past"`
	Future []bucketEntry `toml:"future" yaml:"future"`
}

type bucketEntry struct {
	Within   string `toml:"within" yaml:"within"`
	Older    bool   `toml:"older" yaml:"older"`
	Template string `toml:"template" yaml:"template"`
}

type compareSection struct {
	Granularity *string `toml:"granularity" yaml:"granularity"`
}

type durationSection struct {
	Separator *string `toml:"separator" yaml:"separator"`
}

type formatsSection struct {
	TwelveHour *bool             `toml:"twelveHour" yaml:"twelveHour"`
	Presets    map[string]string `toml:"presets" yaml:"presets"`
}

type calendarSection struct {
	WeekStart    *string  `toml:"weekStart" yaml:"weekStart"`
	BusinessDays []string `toml:"businessDays" yaml:"businessDays"`
}

type naturalSection struct {
	PreferFuture *bool `toml:"preferFuture" yaml:"preferFuture"`
}

type serverSection struct {
	Fallback *string `toml:"fallback" yaml:"fallback"`
}

type personalitySection struct {
	Tone *string `toml:"tone" yaml:"tone"`
}

// Load loads a configuration override from a file, auto-detecting the format
// from the file extension
func Load(path string) (whenny.ConfigOverride, error) {
	return LoadWithFormat(path, FormatAuto)
}

// LoadWithFormat loads a configuration override from a file in the given format
func LoadWithFormat(path string, format Format) (whenny.ConfigOverride, error) {
	if stringx.IsBlank(path) {
		return whenny.ConfigOverride{}, werror.New("config file path cannot be empty").
			WithCode(werror.CodeMissingConfig).
			WithOperation("config.Load")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return whenny.ConfigOverride{}, werror.Wrap(err, "unable to read config file").
			WithCode(werror.CodeMissingConfig).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	if format == FormatAuto {
		format = detectFormat(path)
	}

	return Parse(data, format)
}

// detectFormat picks the format from the file extension, defaulting to TOML
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Parse decodes raw configuration data in the given format into an override
func Parse(data []byte, format Format) (whenny.ConfigOverride, error) {
	raw := make(map[string]interface{})
	var override fileOverride

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return whenny.ConfigOverride{}, parseError(err, "yaml")
		}
		if err := yaml.Unmarshal(data, &override); err != nil {
			return whenny.ConfigOverride{}, parseError(err, "yaml")
		}
	default:
		if err := toml.Unmarshal(data, &raw); err != nil {
			return whenny.ConfigOverride{}, parseError(err, "toml")
		}
		if err := toml.Unmarshal(data, &override); err != nil {
			return whenny.ConfigOverride{}, parseError(err, "toml")
		}
	}

	for key := range raw {
		if !recognizedSections[key] {
			return whenny.ConfigOverride{}, werror.New("unknown configuration section").
				WithCode(werror.CodeUnknownModule).
				WithOperation("config.Parse").
				WithDetail("section", key).
				WithHint("recognized sections: locale, defaultTimezone, relative, smart, compare, duration, formats, calendar, natural, server, personality")
		}
	}

	return toOverride(override)
}

func parseError(err error, format string) error {
	return werror.Wrap(err, "unable to parse config file").
		WithCode(werror.CodeInvalidConfig).
		WithOperation("config.Parse").
		WithDetail("format", format)
}

// toOverride converts the file representation into a whenny.ConfigOverride,
// validating enumerated values on the way
func toOverride(file fileOverride) (whenny.ConfigOverride, error) {
	override := whenny.ConfigOverride{
		Locale:          file.Locale,
		DefaultTimezone: file.DefaultTimezone,
	}

	if file.Relative != nil && file.Relative.JustNowLimit != nil {
		limit := *file.Relative.JustNowLimit
		if limit <= 0 {
			return whenny.ConfigOverride{}, werror.New("relative.justNowLimit must be positive").
				WithCode(werror.CodeValueOutOfRange).
				WithOperation("config.Parse").
				WithDetail("justNowLimit", limit)
		}

		// The ladder stays the default one; only the first rung moves.
		tiers := whenny.DefaultConfig().Relative.Tiers
		tiers[0].Limit = limit
		override.Relative = &whenny.RelativeOverride{Tiers: tiers}
	}

	if file.Smart != nil {
		smart := &whenny.SmartOverride{}
		if file.Smart.Past != nil {
			smart.Past = toBuckets(file.Smart.Past)
		}
		if file.Smart.Future != nil {
			smart.Future = toBuckets(file.Smart.Future)
		}
		override.Smart = smart
	}

	if file.Compare != nil {
		override.Compare = &whenny.CompareOverride{Granularity: file.Compare.Granularity}
	}

	if file.Duration != nil {
		override.Duration = &whenny.DurationOverride{Separator: file.Duration.Separator}
	}

	if file.Formats != nil {
		override.Formats = &whenny.FormatsOverride{
			TwelveHour: file.Formats.TwelveHour,
			Presets:    file.Formats.Presets,
		}
	}

	if file.Calendar != nil {
		calendar := &whenny.CalendarOverride{}

		if file.Calendar.WeekStart != nil {
			weekday, err := parseWeekday(*file.Calendar.WeekStart)
			if err != nil {
				return whenny.ConfigOverride{}, err
			}
			calendar.WeekStart = &weekday
		}

		if file.Calendar.BusinessDays != nil {
			if len(file.Calendar.BusinessDays) == 0 {
				return whenny.ConfigOverride{}, werror.New("calendar.businessDays cannot be empty").
					WithCode(werror.CodeValidationFailed).
					WithOperation("config.Parse").
					WithHint("list at least one business day, or omit the key to keep the default")
			}

			days := make([]time.Weekday, 0, len(file.Calendar.BusinessDays))
			for _, name := range file.Calendar.BusinessDays {
				weekday, err := parseWeekday(name)
				if err != nil {
					return whenny.ConfigOverride{}, err
				}
				days = append(days, weekday)
			}
			calendar.BusinessDays = days
		}

		override.Calendar = calendar
	}

	if file.Natural != nil {
		override.Natural = &whenny.NaturalOverride{PreferFuture: file.Natural.PreferFuture}
	}

	if file.Server != nil {
		if file.Server.Fallback != nil {
			switch *file.Server.Fallback {
			case whenny.ServerFallbackRaw, whenny.ServerFallbackUTC, whenny.ServerFallbackLocal:
			default:
				return whenny.ConfigOverride{}, werror.New("unrecognized server fallback policy").
					WithCode(werror.CodeValidationFailed).
					WithOperation("config.Parse").
					WithDetail("fallback", *file.Server.Fallback).
					WithHint("use raw, utc, or local")
			}
		}
		override.Server = &whenny.ServerOverride{Fallback: file.Server.Fallback}
	}

	if file.Personality != nil {
		override.Personality = &whenny.PersonalityOverride{Tone: file.Personality.Tone}
	}

	return override, nil
}

func toBuckets(entries []bucketEntry) []whenny.SmartBucket {
	buckets := make([]whenny.SmartBucket, len(entries))
	for idx, entry := range entries {
		buckets[idx] = whenny.SmartBucket{
			Within:   entry.Within,
			Older:    entry.Older,
			Template: entry.Template,
		}
	}
	return buckets
}

// parseWeekday maps a day name (case-insensitive, full or three-letter) to
// a time.Weekday
func parseWeekday(name string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sunday", "sun":
		return time.Sunday, nil
	case "monday", "mon":
		return time.Monday, nil
	case "tuesday", "tue":
		return time.Tuesday, nil
	case "wednesday", "wed":
		return time.Wednesday, nil
	case "thursday", "thu":
		return time.Thursday, nil
	case "friday", "fri":
		return time.Friday, nil
	case "saturday", "sat":
		return time.Saturday, nil
	default:
		return time.Sunday, werror.New("unrecognized weekday name").
			WithCode(werror.CodeValidationFailed).
			WithOperation("config.Parse").
			WithDetail("weekday", name)
	}
}
