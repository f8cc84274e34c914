// File: stringx_test.go
// Title: String Utilities Tests
// Description: Test suite for the stringx helper functions.
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-09
//
// Change History:
// - 2025-08-02 v0.1.0: Initial test implementation

package stringx

import "testing"

func TestIsBlank(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty", "", true},
		{"spaces", "   ", true},
		{"tabs and newlines", "\t\n ", true},
		{"word", "hello", false},
		{"word with spaces", "  x  ", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsBlank(tc.input); got != tc.want {
				t.Errorf("IsBlank(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestIsASCII(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  bool
	}{
		{"plain ascii", "2024-01-15T15:30:00Z", true},
		{"empty", "", true},
		{"umlaut", "März", false},
		{"cjk", "2024年1月15日", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsASCII(tc.input); got != tc.want {
				t.Errorf("IsASCII(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		maxLen   int
		ellipsis string
		want     string
	}{
		{"truncates", "hello world", 8, "...", "hello..."},
		{"short enough", "short", 8, "...", "short"},
		{"exact length", "12345678", 8, "...", "12345678"},
		{"zero max", "anything", 0, "...", ""},
		{"ellipsis wider than max", "hello world", 2, "...", "he"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Truncate(tc.input, tc.maxLen, tc.ellipsis); got != tc.want {
				t.Errorf("Truncate(%q, %d, %q) = %q, want %q", tc.input, tc.maxLen, tc.ellipsis, got, tc.want)
			}
		})
	}
}
