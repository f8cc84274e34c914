// File: smart_test.go
// Title: Smart Bucket Selector Tests
// Description: Test suite for first-match bucket selection, the dual-direction
//              yesterday predicate, and the server fallback policies.
// Version: v0.1.0
// Created: 2025-08-04
// Modified: 2025-08-04
//
// Change History:
// - 2025-08-04 v0.1.0: Initial test implementation

package whenny

import (
	"testing"
)

func TestSmartBuckets(t *testing.T) {
	cfg := DefaultConfig()

	// Monday noon
	reference := utcInstant(2024, 1, 15, 12, 0, 0)

	testCases := []struct {
		name string
		i    Instant
		want string
	}{
		{"within a minute", reference.AddMillis(-20 * 1000), "just now"},
		{"seconds phrase", reference.AddMillis(-45 * 1000), "45 seconds ago"},
		{"within the hour", reference.AddMillis(-45 * 60 * 1000), "45 minutes ago"},
		{"earlier today", utcInstant(2024, 1, 15, 9, 0, 0), "Today at 9:00 AM"},
		{"yesterday", utcInstant(2024, 1, 14, 16, 0, 0), "Yesterday at 4:00 PM"},
		{"within the week", utcInstant(2024, 1, 12, 12, 0, 0), "Friday at 12:00 PM"},
		{"this year", utcInstant(2024, 1, 1, 12, 0, 0), "Jan 01"},
		{"last year", utcInstant(2023, 12, 26, 12, 0, 0), "Dec 26, 2023"},
		{"long ago", utcInstant(2021, 6, 1, 12, 0, 0), "Jun 01, 2021"},
		{"future minute", reference.AddMillis(20 * 1000), "just now"},
		{"future hour", reference.AddMillis(45 * 60 * 1000), "in 45 minutes"},
		{"later today", utcInstant(2024, 1, 15, 18, 0, 0), "Today at 6:00 PM"},
		{"tomorrow", utcInstant(2024, 1, 16, 9, 0, 0), "Tomorrow at 9:00 AM"},
		{"later this week", utcInstant(2024, 1, 18, 12, 0, 0), "Thursday at 12:00 PM"},
		{"later this year", utcInstant(2024, 3, 10, 12, 0, 0), "Mar 10"},
		{"next year", utcInstant(2025, 2, 1, 12, 0, 0), "Feb 01, 2025"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SmartInZone(tc.i, reference, cfg, "UTC")
			if err != nil {
				t.Fatalf("SmartInZone failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("SmartInZone = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSmartNeverFallsThrough(t *testing.T) {
	cfg := DefaultConfig()
	reference := utcInstant(2024, 1, 15, 12, 0, 0)

	// Sweep offsets from one second to a decade in both directions; with
	// the default lists the older catch-all guarantees a rendered phrase,
	// never the raw ISO fallback
	offsets := []int64{
		1, 30, 59, 60, 3599, 3600, 43200, 86400, 172800,
		604800, 2592000, 31536000, 10 * 31536000,
	}

	for _, offset := range offsets {
		for _, sign := range []int64{-1, 1} {
			i := reference.AddMillis(sign * offset * 1000)
			got, err := SmartInZone(i, reference, cfg, "UTC")
			if err != nil {
				t.Fatalf("SmartInZone failed at %d: %v", sign*offset, err)
			}
			if got == i.ISO() {
				t.Errorf("offset %ds fell through to the raw ISO form: %q", sign*offset, got)
			}
		}
	}
}

func TestSmartYesterdayIsDirectional(t *testing.T) {
	cfg := DefaultConfig()
	reference := utcInstant(2024, 1, 15, 12, 0, 0)

	// One calendar day after the reference matches the future list's
	// adjacent-day bucket, not the past one
	got, err := SmartInZone(utcInstant(2024, 1, 16, 9, 0, 0), reference, cfg, "UTC")
	if err != nil {
		t.Fatalf("SmartInZone failed: %v", err)
	}
	if got != "Tomorrow at 9:00 AM" {
		t.Errorf("adjacent future day = %q, want Tomorrow at 9:00 AM", got)
	}

	got, err = SmartInZone(utcInstant(2024, 1, 14, 9, 0, 0), reference, cfg, "UTC")
	if err != nil {
		t.Fatalf("SmartInZone failed: %v", err)
	}
	if got != "Yesterday at 9:00 AM" {
		t.Errorf("adjacent past day = %q, want Yesterday at 9:00 AM", got)
	}
}

func TestSmartFutureFallsBackToPastList(t *testing.T) {
	base := DefaultConfig()
	cfg := MergeConfig(base, ConfigOverride{
		Smart: &SmartOverride{
			Past: []SmartBucket{
				{Within: "minute", Template: SmartTemplateRelative},
				{Older: true, Template: "way back on {monthShort} {day}"},
			},
			Future: []SmartBucket{},
		},
	})

	// MergeConfig treats an empty non-nil list as a replacement, leaving
	// future rendering to the past list
	reference := utcInstant(2024, 1, 15, 12, 0, 0)
	got, err := SmartInZone(utcInstant(2024, 6, 1, 12, 0, 0), reference, cfg, "UTC")
	if err != nil {
		t.Fatalf("SmartInZone failed: %v", err)
	}
	if got != "way back on Jun 01" {
		t.Errorf("future input with empty future list = %q, want the past catch-all", got)
	}
}

func TestSmartZoneChangesBucket(t *testing.T) {
	cfg := DefaultConfig()

	// 23:30 UTC on the 15th is already the 16th in Tokyo: the same pair of
	// instants lands in different buckets depending on the zone
	reference := utcInstant(2024, 1, 15, 23, 30, 0)
	i := utcInstant(2024, 1, 15, 4, 0, 0)

	inUTC, err := SmartInZone(i, reference, cfg, "UTC")
	if err != nil {
		t.Fatalf("SmartInZone failed: %v", err)
	}
	if inUTC != "Today at 4:00 AM" {
		t.Errorf("UTC bucket = %q, want Today at 4:00 AM", inUTC)
	}

	inTokyo, err := SmartInZone(i, reference, cfg, "Asia/Tokyo")
	if err != nil {
		t.Fatalf("SmartInZone failed: %v", err)
	}
	if inTokyo != "Yesterday at 1:00 PM" {
		t.Errorf("Tokyo bucket = %q, want Yesterday at 1:00 PM", inTokyo)
	}
}

func TestSmartFallbackPolicies(t *testing.T) {
	reference := utcInstant(2024, 1, 15, 12, 0, 0)
	i := utcInstant(2024, 1, 15, 9, 30, 0)

	raw := ServerFallbackRaw
	rawCfg := MergeConfig(DefaultConfig(), ConfigOverride{
		Server: &ServerOverride{Fallback: &raw},
	})
	if got := Smart(i, reference, rawCfg); got != i.ISO() {
		t.Errorf("raw fallback = %q, want the ISO timestamp", got)
	}

	utc := ServerFallbackUTC
	utcCfg := MergeConfig(DefaultConfig(), ConfigOverride{
		Server: &ServerOverride{Fallback: &utc},
	})
	if got := Smart(i, reference, utcCfg); got != "Monday, January 15th, 2024 UTC" {
		t.Errorf("utc fallback = %q, want the labeled long form", got)
	}
}

func TestSmartInvalidZone(t *testing.T) {
	if _, err := SmartInZone(Now(), Now(), DefaultConfig(), "Not/AZone"); err == nil {
		t.Fatal("invalid zone should fail")
	}
}
