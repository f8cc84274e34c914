// File: timezone.go
// Title: Timezone Offset and Provider Boundary
// Description: Implements UTC-offset computation, zone abbreviation lookup,
//              and offset string formatting. All timezone data comes from the
//              host platform through the narrow TimezoneProvider interface;
//              no IANA database is bundled, and an unrecognized zone name is
//              always a loud error, never a silently wrong offset.
// Version: v0.1.0
// Created: 2025-08-03
// Modified: 2025-08-09
//
// Change History:
// - 2025-08-03 v0.1.0: Initial implementation with cached host locations

package whenny

import (
	"fmt"
	"sync"
	"time"

	werror "github.com/msto63/whenny/core/error"
	"github.com/msto63/whenny/utils/stringx"
)

// TimezoneProvider is the dependency boundary for the one piece of genuinely
// platform-specific behavior in the library: resolving an IANA zone name to
// an offset and an abbreviation at a particular instant.
type TimezoneProvider interface {
	// OffsetMinutes returns the UTC offset of the zone at the instant, in minutes
	OffsetMinutes(zone string, at Instant) (int, error)

	// Abbreviation returns the host's short zone name (e.g. "EST") at the instant
	Abbreviation(zone string, at Instant) (string, error)
}

// HostTimezoneProvider implements TimezoneProvider against the host's own
// timezone database via time.LoadLocation, with a location cache for
// commonly used zones. Accuracy, including DST transitions, depends entirely
// on the host platform's IANA data.
type HostTimezoneProvider struct {
	mu    sync.RWMutex
	cache map[string]*time.Location
}

// NewHostTimezoneProvider returns a provider with an empty location cache
func NewHostTimezoneProvider() *HostTimezoneProvider {
	return &HostTimezoneProvider{
		cache: make(map[string]*time.Location),
	}
}

// defaultProvider backs the package-level timezone functions
var defaultProvider = NewHostTimezoneProvider()

// location returns a cached timezone location or loads and caches it
func (p *HostTimezoneProvider) location(zone string) (*time.Location, error) {
	if stringx.IsBlank(zone) {
		return nil, werror.New("timezone name cannot be empty").
			WithCode(werror.CodeInvalidTimezone).
			WithOperation("whenny.Timezone")
	}

	p.mu.RLock()
	if loc, exists := p.cache[zone]; exists {
		p.mu.RUnlock()
		return loc, nil
	}
	p.mu.RUnlock()

	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, werror.Wrap(err, "timezone rejected by host platform").
			WithCode(werror.CodeInvalidTimezone).
			WithOperation("whenny.Timezone").
			WithDetail("zone", zone).
			WithHint("use an IANA zone name such as America/New_York, or the literal UTC")
	}

	p.mu.Lock()
	p.cache[zone] = loc
	p.mu.Unlock()

	return loc, nil
}

// OffsetMinutes returns the UTC offset of the zone at the instant in minutes
func (p *HostTimezoneProvider) OffsetMinutes(zone string, at Instant) (int, error) {
	loc, err := p.location(zone)
	if err != nil {
		return 0, err
	}

	_, offsetSeconds := at.In(loc).Zone()
	return offsetSeconds / 60, nil
}

// Abbreviation returns whatever short zone name the host produces for the
// zone at the instant; there is no independent abbreviation table
func (p *HostTimezoneProvider) Abbreviation(zone string, at Instant) (string, error) {
	loc, err := p.location(zone)
	if err != nil {
		return "", err
	}

	name, _ := at.In(loc).Zone()
	return name, nil
}

// OffsetMinutes resolves the zone's UTC offset at the instant using the
// default host provider
func OffsetMinutes(zone string, at Instant) (int, error) {
	return defaultProvider.OffsetMinutes(zone, at)
}

// Abbreviation resolves the zone's short name at the instant using the
// default host provider
func Abbreviation(zone string, at Instant) (string, error) {
	return defaultProvider.Abbreviation(zone, at)
}

// LoadZone resolves and caches a zone name, failing with INVALID_TIMEZONE
// when the host rejects it
func LoadZone(zone string) (*time.Location, error) {
	return defaultProvider.location(zone)
}

// FormatOffset renders a minute offset as a sign-mandatory, two-digit padded
// offset string: "+05:30", "-09:00", "+00:00"
func FormatOffset(minutes int) string {
	sign := "+"
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("%s%02d:%02d", sign, minutes/60, minutes%60)
}
