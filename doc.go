// Package whenny is a date/time formatting and manipulation library.
//
// Package: whenny
// Title: Date/Time Formatting, Parsing, and Timezone-Transfer Engine
// Description: This package implements the whenny core: coercion of
//              heterogeneous date inputs into a canonical Instant, token-based
//              template formatting, relative and "smart" human-readable time
//              descriptions, duration formatting, calendar arithmetic with
//              business-day support, and a timezone-context-preserving
//              transfer payload for crossing serialization boundaries.
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-09
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation of the formatting core
//
// Design principles:
//   - Instant and Config values are immutable after construction and safe to
//     share across goroutines without synchronization.
//   - There is no global mutable configuration. DefaultConfig() builds a fresh
//     default tree; MergeConfig layers a partial override over a base without
//     touching either input. Callers thread the resulting Config explicitly.
//   - Date, timezone, and transfer-payload errors surface synchronously with
//     machine-readable codes (core/error); the library never degrades to a
//     silently wrong date or zone.
//   - Timezone data comes solely from the host platform via the narrow
//     TimezoneProvider boundary; no IANA database is bundled.
//
// Usage:
//
//	cfg := whenny.DefaultConfig()
//	inst, err := whenny.Coerce("2024-01-15T15:30:45.123Z")
//	if err != nil {
//		// INVALID_DATE_INPUT
//	}
//	whenny.Format(inst, "{weekday}, {monthFull} {dayOrdinal}", cfg)
//	whenny.Relative(inst, whenny.Now(), cfg)
package whenny
