// File: relative.go
// Title: Relative Time Engine
// Description: Implements magnitude-bucketed relative phrases ("5 minutes
//              ago", "in 2 days") driven by the config's strictly increasing
//              threshold ladder and phrase generator functions.
// Version: v0.1.0
// Created: 2025-08-04
// Modified: 2025-08-09
//
// Change History:
// - 2025-08-04 v0.1.0: Initial implementation

package whenny

import (
	"fmt"
	"time"
)

// Relative converts the instant-vs-reference difference into a phrase from
// the first tier of the ladder whose limit the absolute difference is still
// below. A pure function of its inputs: identical arguments always produce
// identical output.
func Relative(i Instant, reference Instant, cfg Config) string {
	return relativeIn(i, reference, cfg, time.Local)
}

// RelativeInZone evaluates the calendar-day special case of the days tier in
// the given zone instead of the host-local one
func RelativeInZone(i Instant, reference Instant, cfg Config, zone string) (string, error) {
	loc, err := LoadZone(zone)
	if err != nil {
		return "", err
	}
	return relativeIn(i, reference, cfg, loc), nil
}

func relativeIn(i Instant, reference Instant, cfg Config, loc *time.Location) string {
	diffMillis := i.Sub(reference)
	future := diffMillis > 0

	absSeconds := diffMillis / 1000
	if absSeconds < 0 {
		absSeconds = -absSeconds
	}

	for _, tier := range cfg.Relative.Tiers {
		if absSeconds >= tier.Limit {
			continue
		}

		n := int64(0)
		if tier.Divisor > 0 {
			n = absSeconds / tier.Divisor
		}
		if tier.MinOne && n == 0 {
			n = 1
		}

		// The days tier prefers "yesterday"/"tomorrow" for a magnitude of
		// exactly one day, but only when the calendar day actually differs
		// from the reference's.
		if tier.Divisor == 86400 && n == 1 && !sameCalendarDay(i.In(loc), reference.In(loc)) {
			if future {
				return cfg.Relative.Tomorrow()
			}
			return cfg.Relative.Yesterday()
		}

		if future {
			return tier.Future(n)
		}
		return tier.Past(n)
	}

	// Unreachable with a default ladder (the final tier is unbounded);
	// a custom ladder with a finite top falls back to the ISO timestamp.
	return i.ISO()
}

// RelativeShort returns a compact single-unit relative phrase for dense list
// output: "45s ago", "3d ago", "2mo ago", "just now" for future instants.
func RelativeShort(i Instant, reference Instant) string {
	diffSeconds := (reference.Sub(i)) / 1000
	if diffSeconds < 0 {
		return "just now"
	}

	switch {
	case diffSeconds < 60:
		return fmt.Sprintf("%ds ago", diffSeconds)
	case diffSeconds < 3600:
		return fmt.Sprintf("%dm ago", diffSeconds/60)
	case diffSeconds < 86400:
		return fmt.Sprintf("%dh ago", diffSeconds/3600)
	case diffSeconds < 2592000:
		return fmt.Sprintf("%dd ago", diffSeconds/86400)
	case diffSeconds < 31536000:
		return fmt.Sprintf("%dmo ago", diffSeconds/2592000)
	default:
		return fmt.Sprintf("%dy ago", diffSeconds/31536000)
	}
}
