// File: token.go
// Title: Token Template Formatter
// Description: Implements the rendering primitive for every higher-level
//              formatter: {tokenName} substitution over a closed token
//              vocabulary, evaluated against local or timezone-projected
//              wall-clock fields. Unknown tokens pass through verbatim by
//              deliberate leniency.
// Version: v0.1.0
// Created: 2025-08-04
// Modified: 2025-08-09
//
// Change History:
// - 2025-08-04 v0.1.0: Initial implementation

package whenny

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	werror "github.com/msto63/whenny/core/error"
)

// tokenPattern matches {tokenName} placeholders in a template
var tokenPattern = regexp.MustCompile(`\{([a-zA-Z0-9]+)\}`)

// Format renders the instant into the template using the caller's local
// wall-clock fields. Unknown tokens are left verbatim in the output.
func Format(i Instant, template string, cfg Config) string {
	return renderTokens(i.In(time.Local), template, cfg)
}

// FormatInTimezone projects the instant's wall-clock fields into the target
// zone before token substitution, so date-changing effects of the projection
// (crossing midnight) are reflected in every token, not just time-of-day.
func FormatInTimezone(i Instant, template string, cfg Config, zone string) (string, error) {
	loc, err := LoadZone(zone)
	if err != nil {
		return "", err
	}
	return renderTokens(i.In(loc), template, cfg), nil
}

// FormatPreset renders the instant using a named template from the config's
// preset map, failing with UNKNOWN_PRESET for absent names
func FormatPreset(i Instant, preset string, cfg Config) (string, error) {
	template, ok := cfg.Formats.Presets[preset]
	if !ok {
		return "", unknownPresetError(preset, cfg)
	}
	return Format(i, template, cfg), nil
}

// FormatPresetInTimezone is FormatPreset with timezone projection
func FormatPresetInTimezone(i Instant, preset string, cfg Config, zone string) (string, error) {
	template, ok := cfg.Formats.Presets[preset]
	if !ok {
		return "", unknownPresetError(preset, cfg)
	}
	return FormatInTimezone(i, template, cfg, zone)
}

func unknownPresetError(preset string, cfg Config) error {
	names := make([]string, 0, len(cfg.Formats.Presets))
	for name := range cfg.Formats.Presets {
		names = append(names, name)
	}

	return werror.New("unknown format preset").
		WithCode(werror.CodeUnknownPreset).
		WithOperation("whenny.FormatPreset").
		WithDetail("preset", preset).
		WithDetail("available", names).
		WithHint("add the preset to Formats.Presets or use one of the defaults: short, long, iso, time, datetime")
}

// renderTokens substitutes every known token with the field value of t,
// which must already be in the desired location
func renderTokens(t time.Time, template string, cfg Config) string {
	return tokenPattern.ReplaceAllStringFunc(template, func(match string) string {
		name := match[1 : len(match)-1]
		if value, ok := renderToken(t, name, cfg); ok {
			return value
		}
		return match
	})
}

// renderToken resolves one token name against the wall-clock fields of t.
// The vocabulary is closed; the second return is false for unknown names.
func renderToken(t time.Time, name string, cfg Config) (string, bool) {
	switch name {
	case "year":
		return fmt.Sprintf("%04d", t.Year()), true
	case "yearShort":
		return fmt.Sprintf("%02d", t.Year()%100), true
	case "month":
		return fmt.Sprintf("%02d", int(t.Month())), true
	case "monthShort":
		return t.Format("Jan"), true
	case "monthFull":
		return t.Format("January"), true
	case "day":
		return fmt.Sprintf("%02d", t.Day()), true
	case "dayOrdinal":
		return ordinal(t.Day()), true
	case "weekday":
		return t.Format("Monday"), true
	case "weekdayShort":
		return t.Format("Mon"), true
	case "hour":
		if cfg.Formats.TwelveHour {
			return fmt.Sprintf("%d", hour12(t)), true
		}
		return fmt.Sprintf("%02d", t.Hour()), true
	case "hour24":
		return fmt.Sprintf("%02d", t.Hour()), true
	case "hour12":
		return fmt.Sprintf("%d", hour12(t)), true
	case "minute":
		return fmt.Sprintf("%02d", t.Minute()), true
	case "second":
		return fmt.Sprintf("%02d", t.Second()), true
	case "millisecond":
		return fmt.Sprintf("%03d", t.Nanosecond()/1000000), true
	case "ampm":
		return strings.ToLower(t.Format("PM")), true
	case "AMPM":
		return t.Format("PM"), true
	case "timezone":
		zoneName, _ := t.Zone()
		return zoneName, true
	case "offset":
		_, offsetSeconds := t.Zone()
		return FormatOffset(offsetSeconds / 60), true
	case "offsetShort":
		_, offsetSeconds := t.Zone()
		return shortOffset(offsetSeconds / 60), true
	case "time":
		return clockTime(t, cfg), true
	default:
		return "", false
	}
}

// hour12 maps the 24-hour field onto the 1..12 clock
func hour12(t time.Time) int {
	h := t.Hour() % 12
	if h == 0 {
		h = 12
	}
	return h
}

// clockTime renders the time-of-day per the config's 12/24-hour flag
func clockTime(t time.Time, cfg Config) string {
	if cfg.Formats.TwelveHour {
		return fmt.Sprintf("%d:%02d %s", hour12(t), t.Minute(), t.Format("PM"))
	}
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// shortOffset renders "+5" / "-9" / "+5:30" style offsets without padding
func shortOffset(minutes int) string {
	sign := "+"
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	if minutes%60 == 0 {
		return fmt.Sprintf("%s%d", sign, minutes/60)
	}
	return fmt.Sprintf("%s%d:%02d", sign, minutes/60, minutes%60)
}

// ordinal appends the English ordinal suffix to a day of month; 11 through
// 13 take "th" regardless of their final digit
func ordinal(day int) string {
	suffix := "th"
	if day%100 < 11 || day%100 > 13 {
		switch day % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", day, suffix)
}
