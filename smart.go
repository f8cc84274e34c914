// File: smart.go
// Title: Smart Bucket Selector
// Description: Implements first-match-wins selection over the configured
//              ordered bucket lists, rendering the matched bucket's template
//              through the token formatter or delegating to the relative
//              engine. Includes the server-side fallback policy for callers
//              without timezone context.
// Version: v0.1.0
// Created: 2025-08-04
// Modified: 2025-08-09
//
// Change History:
// - 2025-08-04 v0.1.0: Initial implementation

package whenny

import "time"

// Smart renders the instant against the reference using the configured
// bucket lists. Without timezone context the behavior follows the server
// fallback policy: "local" walks the buckets in the host-local zone (the
// classic client behavior), "utc" renders the long preset in UTC with a UTC
// label, and "raw" returns the ISO timestamp. The policy guards against
// rendering in the wrong zone on machines whose local zone is meaningless.
func Smart(i Instant, reference Instant, cfg Config) string {
	switch cfg.Server.Fallback {
	case ServerFallbackRaw:
		return i.ISO()
	case ServerFallbackUTC:
		if rendered, err := FormatPresetInTimezone(i, "long", cfg, "UTC"); err == nil {
			return rendered + " UTC"
		}
		return i.ISO()
	default:
		return smartIn(i, reference, cfg, time.Local)
	}
}

// SmartInZone renders the instant with full timezone context: bucket
// predicates and templates are evaluated against the zone's wall clock.
func SmartInZone(i Instant, reference Instant, cfg Config, zone string) (string, error) {
	loc, err := LoadZone(zone)
	if err != nil {
		return "", err
	}
	return smartIn(i, reference, cfg, loc), nil
}

// smartIn walks the appropriate bucket list in order and renders the first
// match. A correctly configured list terminates with an older catch-all; if
// selection falls through anyway, the raw ISO timestamp is returned.
func smartIn(i Instant, reference Instant, cfg Config, loc *time.Location) string {
	future := i.After(reference)

	buckets := cfg.Smart.Past
	if future && len(cfg.Smart.Future) > 0 {
		buckets = cfg.Smart.Future
	}

	for _, bucket := range buckets {
		if !bucketMatches(bucket, i, reference, future, loc) {
			continue
		}
		if bucket.Template == SmartTemplateRelative {
			return relativeIn(i, reference, cfg, loc)
		}
		return renderTokens(i.In(loc), bucket.Template, cfg)
	}

	return i.ISO()
}

// bucketMatches evaluates one bucket predicate. The "yesterday" tag is a
// deliberate two-direction predicate: for future-dated inputs it means
// "exactly one calendar day after" rather than before.
func bucketMatches(bucket SmartBucket, i Instant, reference Instant, future bool, loc *time.Location) bool {
	if bucket.Older {
		return true
	}

	absSeconds := i.Sub(reference) / 1000
	if absSeconds < 0 {
		absSeconds = -absSeconds
	}

	switch bucket.Within {
	case "minute":
		return absSeconds < 60
	case "hour":
		return absSeconds < 3600
	case "today":
		return sameCalendarDay(i.In(loc), reference.In(loc))
	case "yesterday":
		dayShift := -1
		if future {
			dayShift = 1
		}
		return sameCalendarDay(i.In(loc), reference.In(loc).AddDate(0, 0, dayShift))
	case "week":
		return absSeconds < 604800
	case "year":
		return i.In(loc).Year() == reference.In(loc).Year()
	default:
		return false
	}
}
