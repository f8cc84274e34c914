// File: instant.go
// Title: Instant Value Type
// Description: Implements the Instant type, an immutable point in time with
//              millisecond resolution represented as milliseconds since the
//              Unix epoch (UTC). All arithmetic produces new values.
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation

package whenny

import "time"

// ISOMillis is the canonical wire format for instants: ISO-8601 UTC with
// millisecond precision and a mandatory 'Z' suffix.
const ISOMillis = "2006-01-02T15:04:05.000Z"

// Instant is an opaque point in time with millisecond resolution.
// The zero value is the Unix epoch.
type Instant struct {
	ms int64
}

// FromUnixMilli returns the Instant for the given epoch milliseconds
func FromUnixMilli(ms int64) Instant {
	return Instant{ms: ms}
}

// FromTime returns the Instant for the given time, truncated to milliseconds
func FromTime(t time.Time) Instant {
	return Instant{ms: t.UnixMilli()}
}

// Now returns the current wall-clock Instant
func Now() Instant {
	return Instant{ms: time.Now().UnixMilli()}
}

// UnixMilli returns the count of milliseconds since the epoch (UTC)
func (i Instant) UnixMilli() int64 {
	return i.ms
}

// Time returns the instant as a time.Time in UTC
func (i Instant) Time() time.Time {
	return time.UnixMilli(i.ms).UTC()
}

// In returns the instant as a time.Time in the given location.
// A nil location falls back to the caller's local zone.
func (i Instant) In(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.UnixMilli(i.ms).In(loc)
}

// ISO returns the canonical ISO-8601 UTC string with millisecond precision
func (i Instant) ISO() string {
	return i.Time().Format(ISOMillis)
}

// AddMillis returns a new Instant shifted by the given millisecond count
func (i Instant) AddMillis(ms int64) Instant {
	return Instant{ms: i.ms + ms}
}

// Before reports whether i is strictly before other
func (i Instant) Before(other Instant) bool {
	return i.ms < other.ms
}

// After reports whether i is strictly after other
func (i Instant) After(other Instant) bool {
	return i.ms > other.ms
}

// Equal reports whether i and other denote the same millisecond
func (i Instant) Equal(other Instant) bool {
	return i.ms == other.ms
}

// Sub returns the signed difference i - other in milliseconds
func (i Instant) Sub(other Instant) int64 {
	return i.ms - other.ms
}

// String returns the canonical ISO representation
func (i Instant) String() string {
	return i.ISO()
}

// MinInstant returns the earlier of two instants
func MinInstant(a, b Instant) Instant {
	if a.Before(b) {
		return a
	}
	return b
}

// MaxInstant returns the later of two instants
func MaxInstant(a, b Instant) Instant {
	if a.After(b) {
		return a
	}
	return b
}

// ClampInstant constrains an instant to be within the given range
func ClampInstant(i, min, max Instant) Instant {
	if i.Before(min) {
		return min
	}
	if i.After(max) {
		return max
	}
	return i
}
