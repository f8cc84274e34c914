// File: stringx.go
// Title: String Utilities
// Description: Implements the small string helpers used across the whenny
//              library: blank checks, ASCII validation, and bounded
//              truncation for error details.
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-09
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation trimmed to library needs

package stringx

import "unicode"

// IsBlank checks if a string is empty or contains only whitespace
func IsBlank(s string) bool {
	if len(s) == 0 {
		return true
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsASCII checks if a string contains only ASCII characters
func IsASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > unicode.MaxASCII {
			return false
		}
	}
	return true
}

// Truncate shortens a string to maxLen, appending ellipsis when truncation occurs
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if len(s) <= maxLen {
		return s
	}
	if len(ellipsis) >= maxLen {
		return s[:maxLen]
	}
	return s[:maxLen-len(ellipsis)] + ellipsis
}
