// File: timezone_test.go
// Title: Timezone Offset Tests
// Description: Test suite for host-backed offset resolution, DST awareness,
//              abbreviation lookup, and offset string formatting.
// Version: v0.1.0
// Created: 2025-08-03
// Modified: 2025-08-03
//
// Change History:
// - 2025-08-03 v0.1.0: Initial test implementation

package whenny

import (
	"testing"

	werror "github.com/msto63/whenny/core/error"
)

func TestOffsetMinutes(t *testing.T) {
	january := utcInstant(2024, 1, 15, 12, 0, 0)
	july := utcInstant(2024, 7, 15, 12, 0, 0)

	testCases := []struct {
		name string
		zone string
		at   Instant
		want int
	}{
		{"utc", "UTC", january, 0},
		{"new york winter", "America/New_York", january, -300},
		{"new york summer", "America/New_York", july, -240},
		{"tokyo no dst", "Asia/Tokyo", january, 540},
		{"tokyo summer", "Asia/Tokyo", july, 540},
		{"kolkata half hour", "Asia/Kolkata", january, 330},
		{"berlin winter", "Europe/Berlin", january, 60},
		{"berlin summer", "Europe/Berlin", july, 120},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := OffsetMinutes(tc.zone, tc.at)
			if err != nil {
				t.Fatalf("OffsetMinutes(%s) failed: %v", tc.zone, err)
			}
			if got != tc.want {
				t.Errorf("OffsetMinutes(%s) = %d, want %d", tc.zone, got, tc.want)
			}
		})
	}
}

func TestOffsetMinutesInvalidZone(t *testing.T) {
	testCases := []struct {
		name string
		zone string
	}{
		{"garbage", "Not/AZone"},
		{"empty", ""},
		{"blank", "   "},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := OffsetMinutes(tc.zone, Now())
			if err == nil {
				t.Fatalf("OffsetMinutes(%q) should fail", tc.zone)
			}
			if !werror.HasCode(err, werror.CodeInvalidTimezone) {
				t.Errorf("error code = %v, want INVALID_TIMEZONE", werror.CodeOf(err))
			}
		})
	}
}

func TestAbbreviation(t *testing.T) {
	january := utcInstant(2024, 1, 15, 12, 0, 0)
	july := utcInstant(2024, 7, 15, 12, 0, 0)

	if got, err := Abbreviation("America/New_York", january); err != nil || got != "EST" {
		t.Errorf("Abbreviation winter = %q (%v), want EST", got, err)
	}
	if got, err := Abbreviation("America/New_York", july); err != nil || got != "EDT" {
		t.Errorf("Abbreviation summer = %q (%v), want EDT", got, err)
	}
}

func TestLoadZoneCaching(t *testing.T) {
	first, err := LoadZone("Australia/Sydney")
	if err != nil {
		t.Fatalf("LoadZone failed: %v", err)
	}
	second, err := LoadZone("Australia/Sydney")
	if err != nil {
		t.Fatalf("LoadZone failed on second call: %v", err)
	}
	if first != second {
		t.Error("repeated loads should return the cached location")
	}
}

func TestProviderIndependence(t *testing.T) {
	provider := NewHostTimezoneProvider()

	got, err := provider.OffsetMinutes("UTC", Now())
	if err != nil || got != 0 {
		t.Errorf("fresh provider OffsetMinutes(UTC) = %d (%v), want 0", got, err)
	}
}

func TestFormatOffset(t *testing.T) {
	testCases := []struct {
		name    string
		minutes int
		want    string
	}{
		{"zero", 0, "+00:00"},
		{"new york", -300, "-05:00"},
		{"kolkata", 330, "+05:30"},
		{"nepal", 345, "+05:45"},
		{"chatham", 765, "+12:45"},
		{"negative half", -570, "-09:30"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatOffset(tc.minutes); got != tc.want {
				t.Errorf("FormatOffset(%d) = %s, want %s", tc.minutes, got, tc.want)
			}
		})
	}
}

var _ TimezoneProvider = (*HostTimezoneProvider)(nil)

// fixedProvider lets transfer tests pin an offset without host zone data
type fixedProvider struct {
	offset int
	abbrev string
}

func (p fixedProvider) OffsetMinutes(zone string, at Instant) (int, error) {
	return p.offset, nil
}

func (p fixedProvider) Abbreviation(zone string, at Instant) (string, error) {
	return p.abbrev, nil
}

func TestCreateTransferWithProvider(t *testing.T) {
	i := utcInstant(2024, 1, 15, 15, 30, 45)

	payload, err := CreateTransferWith(fixedProvider{offset: 345}, i, "Asia/Kathmandu")
	if err != nil {
		t.Fatalf("CreateTransferWith failed: %v", err)
	}
	if payload.OriginOffset != 345 {
		t.Errorf("OriginOffset = %d, want 345", payload.OriginOffset)
	}
	if payload.ISO != i.ISO() {
		t.Errorf("payload ISO = %s, want %s", payload.ISO, i.ISO())
	}
}
