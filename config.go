// File: config.go
// Title: Configuration Tree and Merge
// Description: Implements the immutable whenny configuration tree covering
//              relative-time tiers and phrases, smart bucket lists, duration
//              phrases, format presets, calendar settings, and the server
//              fallback policy, together with a pure deep merge over defaults.
// Version: v0.1.0
// Created: 2025-08-03
// Modified: 2025-08-09
//
// Change History:
// - 2025-08-03 v0.1.0: Initial implementation

package whenny

import (
	"fmt"
	"math"
	"time"

	werror "github.com/msto63/whenny/core/error"
)

// SmartTemplateRelative is the sentinel bucket template that delegates
// rendering to the relative engine instead of token substitution.
const SmartTemplateRelative = "relative"

// Server fallback policies for smart formatting without timezone context
const (
	ServerFallbackRaw   = "raw"   // raw ISO timestamp
	ServerFallbackUTC   = "utc"   // UTC-labeled long format
	ServerFallbackLocal = "local" // host-local long-form bucket walk
)

// RelativeTier is one rung of the relative-time threshold ladder. Limit is
// the exclusive upper bound on the absolute difference in seconds; Divisor
// scales the difference into the tier's unit. A zero Divisor renders the
// phrase without a magnitude (the "just now" tier). MinOne forces a zero
// magnitude up to 1 so "0 weeks ago" cannot appear.
type RelativeTier struct {
	Limit   int64
	Divisor int64
	MinOne  bool
	Past    func(n int64) string
	Future  func(n int64) string
}

// RelativeConfig drives the relative engine: an ordered ladder of tiers with
// strictly increasing limits, plus the calendar-day phrases used when the
// days tier lands on an adjacent calendar day.
type RelativeConfig struct {
	Tiers     []RelativeTier
	Yesterday func() string
	Tomorrow  func() string
}

// SmartBucket is one entry in an ordered smart-format bucket list. Within
// names a fixed predicate tag (minute, hour, today, yesterday, week, year);
// Older marks the unconditional catch-all that must terminate every list.
type SmartBucket struct {
	Within   string
	Older    bool
	Template string
}

// SmartConfig holds the past bucket list and the optional future list.
// When Future is empty the past list serves both directions.
type SmartConfig struct {
	Past   []SmartBucket
	Future []SmartBucket
}

// DurationPhrases are the generator functions for duration rendering
type DurationPhrases struct {
	LongHours      func(n int64) string
	LongMinutes    func(n int64) string
	LongSeconds    func(n int64) string
	CompactHours   func(n int64) string
	CompactMinutes func(n int64) string
	CompactSeconds func(n int64) string
	About          func(n int64, unit string) string
}

// DurationConfig configures duration rendering
type DurationConfig struct {
	Separator string
	Phrases   DurationPhrases
}

// FormatsConfig holds named token-template presets and the clock flag
type FormatsConfig struct {
	TwelveHour bool
	Presets    map[string]string
}

// CalendarConfig holds week and business-day settings
type CalendarConfig struct {
	WeekStart    time.Weekday
	BusinessDays []time.Weekday
}

// CompareConfig is the recognized surface for the external comparison
// collaborator; the core consults only the granularity default.
type CompareConfig struct {
	Granularity string
}

// NaturalConfig is the recognized surface for the external natural-language
// parsing collaborator. The core does not interpret it.
type NaturalConfig struct {
	PreferFuture bool
}

// ServerConfig selects the fallback behavior for smart formatting when the
// caller has no timezone context (see Smart).
type ServerConfig struct {
	Fallback string
}

// PersonalityConfig is the recognized surface for phrase-flavor overrides
// used by external collaborators.
type PersonalityConfig struct {
	Tone string
}

// Config is the fully-populated whenny configuration tree. Treat a Config as
// immutable once obtained: merge produces new values and never mutates.
type Config struct {
	Locale          string
	DefaultTimezone string
	Relative        RelativeConfig
	Smart           SmartConfig
	Compare         CompareConfig
	Duration        DurationConfig
	Formats         FormatsConfig
	Calendar        CalendarConfig
	Natural         NaturalConfig
	Server          ServerConfig
	Personality     PersonalityConfig
}

// plural returns "n unit" with an English plural suffix
func plural(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// DefaultConfig returns a fresh, fully-populated default configuration.
// Every call builds a new tree; callers may layer overrides with MergeConfig
// without affecting other holders of a default instance.
func DefaultConfig() Config {
	return Config{
		Locale:          "en",
		DefaultTimezone: "UTC",
		Relative: RelativeConfig{
			Tiers: []RelativeTier{
				{
					Limit:   30,
					Divisor: 0,
					Past:    func(int64) string { return "just now" },
					Future:  func(int64) string { return "just now" },
				},
				{
					Limit:   60,
					Divisor: 1,
					Past:    func(n int64) string { return plural(n, "second") + " ago" },
					Future:  func(n int64) string { return "in " + plural(n, "second") },
				},
				{
					Limit:   3600,
					Divisor: 60,
					Past:    func(n int64) string { return plural(n, "minute") + " ago" },
					Future:  func(n int64) string { return "in " + plural(n, "minute") },
				},
				{
					Limit:   86400,
					Divisor: 3600,
					Past:    func(n int64) string { return plural(n, "hour") + " ago" },
					Future:  func(n int64) string { return "in " + plural(n, "hour") },
				},
				{
					Limit:   604800,
					Divisor: 86400,
					Past:    func(n int64) string { return plural(n, "day") + " ago" },
					Future:  func(n int64) string { return "in " + plural(n, "day") },
				},
				{
					Limit:   2592000,
					Divisor: 604800,
					MinOne:  true,
					Past:    func(n int64) string { return plural(n, "week") + " ago" },
					Future:  func(n int64) string { return "in " + plural(n, "week") },
				},
				{
					Limit:   31536000,
					Divisor: 2592000,
					MinOne:  true,
					Past:    func(n int64) string { return plural(n, "month") + " ago" },
					Future:  func(n int64) string { return "in " + plural(n, "month") },
				},
				{
					Limit:   math.MaxInt64,
					Divisor: 31536000,
					MinOne:  true,
					Past:    func(n int64) string { return plural(n, "year") + " ago" },
					Future:  func(n int64) string { return "in " + plural(n, "year") },
				},
			},
			Yesterday: func() string { return "yesterday" },
			Tomorrow:  func() string { return "tomorrow" },
		},
		Smart: SmartConfig{
			Past: []SmartBucket{
				{Within: "minute", Template: SmartTemplateRelative},
				{Within: "hour", Template: SmartTemplateRelative},
				{Within: "today", Template: "Today at {time}"},
				{Within: "yesterday", Template: "Yesterday at {time}"},
				{Within: "week", Template: "{weekday} at {time}"},
				{Within: "year", Template: "{monthShort} {day}"},
				{Older: true, Template: "{monthShort} {day}, {year}"},
			},
			Future: []SmartBucket{
				{Within: "minute", Template: SmartTemplateRelative},
				{Within: "hour", Template: SmartTemplateRelative},
				{Within: "today", Template: "Today at {time}"},
				{Within: "yesterday", Template: "Tomorrow at {time}"},
				{Within: "week", Template: "{weekday} at {time}"},
				{Within: "year", Template: "{monthShort} {day}"},
				{Older: true, Template: "{monthShort} {day}, {year}"},
			},
		},
		Compare: CompareConfig{
			Granularity: "millisecond",
		},
		Duration: DurationConfig{
			Separator: ", ",
			Phrases: DurationPhrases{
				LongHours:      func(n int64) string { return plural(n, "hour") },
				LongMinutes:    func(n int64) string { return plural(n, "minute") },
				LongSeconds:    func(n int64) string { return plural(n, "second") },
				CompactHours:   func(n int64) string { return fmt.Sprintf("%dh", n) },
				CompactMinutes: func(n int64) string { return fmt.Sprintf("%dm", n) },
				CompactSeconds: func(n int64) string { return fmt.Sprintf("%ds", n) },
				About:          func(n int64, unit string) string { return "about " + plural(n, unit) },
			},
		},
		Formats: FormatsConfig{
			TwelveHour: true,
			Presets: map[string]string{
				"short":    "{month}/{day}/{year}",
				"long":     "{weekday}, {monthFull} {dayOrdinal}, {year}",
				"iso":      "{year}-{month}-{day}T{hour24}:{minute}:{second}",
				"time":     "{time}",
				"datetime": "{month}/{day}/{year} {time}",
			},
		},
		Calendar: CalendarConfig{
			WeekStart: time.Sunday,
			BusinessDays: []time.Weekday{
				time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
			},
		},
		Natural: NaturalConfig{
			PreferFuture: false,
		},
		Server: ServerConfig{
			Fallback: ServerFallbackLocal,
		},
		Personality: PersonalityConfig{
			Tone: "neutral",
		},
	}
}

// ConfigOverride is a partial configuration tree. Nil fields keep the base
// value; non-nil fields replace or merge into it (see MergeConfig).
type ConfigOverride struct {
	Locale          *string
	DefaultTimezone *string
	Relative        *RelativeOverride
	Smart           *SmartOverride
	Compare         *CompareOverride
	Duration        *DurationOverride
	Formats         *FormatsOverride
	Calendar        *CalendarOverride
	Natural         *NaturalOverride
	Server          *ServerOverride
	Personality     *PersonalityOverride
}

// RelativeOverride replaces parts of the relative configuration. A non-nil
// Tiers slice replaces the whole ladder; the ladder is ordered and cannot be
// merged rung-wise.
type RelativeOverride struct {
	Tiers     []RelativeTier
	Yesterday func() string
	Tomorrow  func() string
}

// SmartOverride replaces bucket lists. Lists are ordered with first-match
// semantics, so each non-nil list replaces its base list wholesale.
type SmartOverride struct {
	Past   []SmartBucket
	Future []SmartBucket
}

// CompareOverride overrides comparison settings
type CompareOverride struct {
	Granularity *string
}

// DurationOverride overrides duration settings; phrase functions merge
// field-wise, nil keeps the base generator
type DurationOverride struct {
	Separator *string
	Phrases   *DurationPhrasesOverride
}

// DurationPhrasesOverride carries optional phrase generator replacements
type DurationPhrasesOverride struct {
	LongHours      func(n int64) string
	LongMinutes    func(n int64) string
	LongSeconds    func(n int64) string
	CompactHours   func(n int64) string
	CompactMinutes func(n int64) string
	CompactSeconds func(n int64) string
	About          func(n int64, unit string) string
}

// FormatsOverride overrides the clock flag and merges presets key-wise
type FormatsOverride struct {
	TwelveHour *bool
	Presets    map[string]string
}

// CalendarOverride overrides calendar settings
type CalendarOverride struct {
	WeekStart    *time.Weekday
	BusinessDays []time.Weekday
}

// NaturalOverride overrides the natural-language surface
type NaturalOverride struct {
	PreferFuture *bool
}

// ServerOverride overrides the server fallback policy
type ServerOverride struct {
	Fallback *string
}

// PersonalityOverride overrides the personality surface
type PersonalityOverride struct {
	Tone *string
}

// MergeConfig layers a partial override over a base configuration and returns
// the merged result. Neither input is modified; slices and maps in the result
// are fresh copies, so the returned Config is safe to share.
func MergeConfig(base Config, override ConfigOverride) Config {
	merged := base

	// Copy the mutable containers so the result never aliases the base
	merged.Relative.Tiers = append([]RelativeTier(nil), base.Relative.Tiers...)
	merged.Smart.Past = append([]SmartBucket(nil), base.Smart.Past...)
	merged.Smart.Future = append([]SmartBucket(nil), base.Smart.Future...)
	merged.Calendar.BusinessDays = append([]time.Weekday(nil), base.Calendar.BusinessDays...)
	merged.Formats.Presets = make(map[string]string, len(base.Formats.Presets))
	for k, v := range base.Formats.Presets {
		merged.Formats.Presets[k] = v
	}

	if override.Locale != nil {
		merged.Locale = *override.Locale
	}
	if override.DefaultTimezone != nil {
		merged.DefaultTimezone = *override.DefaultTimezone
	}

	if o := override.Relative; o != nil {
		if o.Tiers != nil {
			merged.Relative.Tiers = append([]RelativeTier(nil), o.Tiers...)
		}
		if o.Yesterday != nil {
			merged.Relative.Yesterday = o.Yesterday
		}
		if o.Tomorrow != nil {
			merged.Relative.Tomorrow = o.Tomorrow
		}
	}

	if o := override.Smart; o != nil {
		if o.Past != nil {
			merged.Smart.Past = append([]SmartBucket(nil), o.Past...)
		}
		if o.Future != nil {
			merged.Smart.Future = append([]SmartBucket(nil), o.Future...)
		}
	}

	if o := override.Compare; o != nil {
		if o.Granularity != nil {
			merged.Compare.Granularity = *o.Granularity
		}
	}

	if o := override.Duration; o != nil {
		if o.Separator != nil {
			merged.Duration.Separator = *o.Separator
		}
		if p := o.Phrases; p != nil {
			if p.LongHours != nil {
				merged.Duration.Phrases.LongHours = p.LongHours
			}
			if p.LongMinutes != nil {
				merged.Duration.Phrases.LongMinutes = p.LongMinutes
			}
			if p.LongSeconds != nil {
				merged.Duration.Phrases.LongSeconds = p.LongSeconds
			}
			if p.CompactHours != nil {
				merged.Duration.Phrases.CompactHours = p.CompactHours
			}
			if p.CompactMinutes != nil {
				merged.Duration.Phrases.CompactMinutes = p.CompactMinutes
			}
			if p.CompactSeconds != nil {
				merged.Duration.Phrases.CompactSeconds = p.CompactSeconds
			}
			if p.About != nil {
				merged.Duration.Phrases.About = p.About
			}
		}
	}

	if o := override.Formats; o != nil {
		if o.TwelveHour != nil {
			merged.Formats.TwelveHour = *o.TwelveHour
		}
		for k, v := range o.Presets {
			merged.Formats.Presets[k] = v
		}
	}

	if o := override.Calendar; o != nil {
		if o.WeekStart != nil {
			merged.Calendar.WeekStart = *o.WeekStart
		}
		if o.BusinessDays != nil {
			merged.Calendar.BusinessDays = append([]time.Weekday(nil), o.BusinessDays...)
		}
	}

	if o := override.Natural; o != nil {
		if o.PreferFuture != nil {
			merged.Natural.PreferFuture = *o.PreferFuture
		}
	}

	if o := override.Server; o != nil {
		if o.Fallback != nil {
			merged.Server.Fallback = *o.Fallback
		}
	}

	if o := override.Personality; o != nil {
		if o.Tone != nil {
			merged.Personality.Tone = *o.Tone
		}
	}

	return merged
}

// Section returns the named configuration section. Unknown names fail with
// UNKNOWN_MODULE so collaborators probing for a section get a loud answer.
func (c Config) Section(name string) (interface{}, error) {
	switch name {
	case "locale":
		return c.Locale, nil
	case "defaultTimezone":
		return c.DefaultTimezone, nil
	case "relative":
		return c.Relative, nil
	case "smart":
		return c.Smart, nil
	case "compare":
		return c.Compare, nil
	case "duration":
		return c.Duration, nil
	case "formats":
		return c.Formats, nil
	case "calendar":
		return c.Calendar, nil
	case "natural":
		return c.Natural, nil
	case "server":
		return c.Server, nil
	case "personality":
		return c.Personality, nil
	default:
		return nil, werror.New("unknown configuration section").
			WithCode(werror.CodeUnknownModule).
			WithOperation("whenny.Config.Section").
			WithDetail("section", name).
			WithHint("recognized sections: locale, defaultTimezone, relative, smart, compare, duration, formats, calendar, natural, server, personality")
	}
}

// Validate checks the structural invariants of a configuration: a strictly
// increasing relative ladder, smart bucket lists terminated by an older
// catch-all, a nonempty business-day set, and a recognized fallback policy.
func (c Config) Validate() error {
	var prev int64 = -1
	for idx, tier := range c.Relative.Tiers {
		if tier.Limit <= prev {
			return werror.New("relative tier limits must be strictly increasing").
				WithCode(werror.CodeValidationFailed).
				WithOperation("whenny.Config.Validate").
				WithDetail("tier", idx)
		}
		prev = tier.Limit
	}

	for _, list := range []struct {
		name    string
		buckets []SmartBucket
	}{
		{"smart.past", c.Smart.Past},
		{"smart.future", c.Smart.Future},
	} {
		if len(list.buckets) == 0 {
			continue
		}
		last := list.buckets[len(list.buckets)-1]
		if !last.Older {
			return werror.New("smart bucket list must end with an older catch-all").
				WithCode(werror.CodeValidationFailed).
				WithOperation("whenny.Config.Validate").
				WithDetail("list", list.name).
				WithHint("append {Older: true, Template: ...} as the final bucket")
		}
	}

	if len(c.Calendar.BusinessDays) == 0 {
		return werror.New("calendar must define at least one business day").
			WithCode(werror.CodeValidationFailed).
			WithOperation("whenny.Config.Validate").
			WithHint("the business-day walk cannot terminate over an empty set")
	}

	switch c.Server.Fallback {
	case ServerFallbackRaw, ServerFallbackUTC, ServerFallbackLocal:
	default:
		return werror.New("unrecognized server fallback policy").
			WithCode(werror.CodeValidationFailed).
			WithOperation("whenny.Config.Validate").
			WithDetail("fallback", c.Server.Fallback).
			WithHint("use raw, utc, or local")
	}

	return nil
}
