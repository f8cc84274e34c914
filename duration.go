// File: duration.go
// Title: Duration Formatting
// Description: Implements the WhennyDuration value object over a nonnegative
//              total-seconds count with pre-decomposed fields, the fixed
//              rendering styles (long, compact, brief, clock, timer, minimal,
//              human), and the deliberately lenient ParseDuration companion.
// Version: v0.1.0
// Created: 2025-08-05
// Modified: 2025-08-09
//
// Change History:
// - 2025-08-05 v0.1.0: Initial implementation

package whenny

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// WhennyDuration is a value object over a nonnegative total-seconds count.
// Negative input is treated as its magnitude; fractional seconds are floored.
type WhennyDuration struct {
	TotalSeconds int64
	TotalMinutes int64
	TotalHours   int64
	Hours        int64
	Minutes      int64
	Seconds      int64
}

// Duration decomposes a scalar duration in seconds into hour/minute/second
// fields. The decomposition satisfies
// Hours*3600 + Minutes*60 + Seconds == TotalSeconds.
func Duration(totalSeconds float64) WhennyDuration {
	if math.IsNaN(totalSeconds) || math.IsInf(totalSeconds, 0) {
		totalSeconds = 0
	}

	abs := math.Abs(totalSeconds)

	// Conversion of an out-of-range float64 to int64 is implementation
	// defined, so saturate before converting.
	var total int64
	if abs >= math.MaxInt64 {
		total = math.MaxInt64
	} else {
		total = int64(math.Floor(abs))
	}

	return WhennyDuration{
		TotalSeconds: total,
		TotalMinutes: total / 60,
		TotalHours:   total / 3600,
		Hours:        total / 3600,
		Minutes:      (total % 3600) / 60,
		Seconds:      total % 60,
	}
}

// Long joins the nonzero unit phrases with the configured separator, always
// including seconds when nothing else is nonzero
func (d WhennyDuration) Long(cfg Config) string {
	p := cfg.Duration.Phrases

	var parts []string
	if d.Hours > 0 {
		parts = append(parts, p.LongHours(d.Hours))
	}
	if d.Minutes > 0 {
		parts = append(parts, p.LongMinutes(d.Minutes))
	}
	if d.Seconds > 0 || len(parts) == 0 {
		parts = append(parts, p.LongSeconds(d.Seconds))
	}

	return strings.Join(parts, cfg.Duration.Separator)
}

// Compact renders the symbol-suffixed form ("1h 1m 1s"), always showing
// minutes once hours are present even when minutes are zero
func (d WhennyDuration) Compact(cfg Config) string {
	p := cfg.Duration.Phrases

	var parts []string
	if d.Hours > 0 {
		parts = append(parts, p.CompactHours(d.Hours))
		parts = append(parts, p.CompactMinutes(d.Minutes))
	} else if d.Minutes > 0 {
		parts = append(parts, p.CompactMinutes(d.Minutes))
	}
	if d.Seconds > 0 || len(parts) == 0 {
		parts = append(parts, p.CompactSeconds(d.Seconds))
	}

	return strings.Join(parts, " ")
}

// Brief is Compact with seconds suppressed unless the whole duration is
// under one minute
func (d WhennyDuration) Brief(cfg Config) string {
	p := cfg.Duration.Phrases

	if d.TotalSeconds < 60 {
		return p.CompactSeconds(d.Seconds)
	}

	var parts []string
	if d.Hours > 0 {
		parts = append(parts, p.CompactHours(d.Hours))
		parts = append(parts, p.CompactMinutes(d.Minutes))
	} else {
		parts = append(parts, p.CompactMinutes(d.Minutes))
	}

	return strings.Join(parts, " ")
}

// Clock renders "M:SS" when there are no hours, otherwise "H:MM:SS"
func (d WhennyDuration) Clock() string {
	if d.Hours == 0 {
		return fmt.Sprintf("%d:%02d", d.Minutes, d.Seconds)
	}
	return fmt.Sprintf("%d:%02d:%02d", d.Hours, d.Minutes, d.Seconds)
}

// Timer always shows all three fields, zero-padded: "00:02:05"
func (d WhennyDuration) Timer() string {
	return fmt.Sprintf("%02d:%02d:%02d", d.Hours, d.Minutes, d.Seconds)
}

// Minimal shows only the single largest nonzero unit
func (d WhennyDuration) Minimal(cfg Config) string {
	p := cfg.Duration.Phrases

	switch {
	case d.Hours > 0:
		return p.CompactHours(d.Hours)
	case d.Minutes > 0:
		return p.CompactMinutes(d.Minutes)
	default:
		return p.CompactSeconds(d.Seconds)
	}
}

// Human renders an approximate phrase: at or past 30 minutes into an hour it
// rounds up ("about 2 hours" for 1h45m), otherwise it floors. Durations
// under an hour fall back to minutes, and under a minute to seconds.
func (d WhennyDuration) Human(cfg Config) string {
	p := cfg.Duration.Phrases

	if d.TotalSeconds < 60 {
		return p.About(d.Seconds, "second")
	}
	if d.Hours == 0 {
		return p.About(d.Minutes, "minute")
	}

	hours := d.Hours
	if d.Minutes >= 30 {
		hours++
	}
	return p.About(hours, "hour")
}

// durationFragment matches one number-plus-unit fragment anywhere in a
// duration string: "1.5h", "90 min", "20s"
var durationFragment = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(h|m(?:in)?|s(?:ec)?)`)

// ParseDuration recognizes h/m/s fragments anywhere in the text, sums all
// matched fragments, and falls back to parsing the whole string as a plain
// number of seconds when no unit suffix matched. Unparseable input yields 0:
// this function is lenient by design, in deliberate contrast with the strict
// date-coercion policy.
func ParseDuration(text string) float64 {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0
	}

	matches := durationFragment.FindAllStringSubmatch(trimmed, -1)
	if len(matches) == 0 {
		if seconds, err := strconv.ParseFloat(trimmed, 64); err == nil && !math.IsNaN(seconds) && !math.IsInf(seconds, 0) {
			return seconds
		}
		return 0
	}

	var total float64
	for _, match := range matches {
		value, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			continue
		}

		switch strings.ToLower(match[2][:1]) {
		case "h":
			total += value * 3600
		case "m":
			total += value * 60
		case "s":
			total += value
		}
	}

	return total
}
