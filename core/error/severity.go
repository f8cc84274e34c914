// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable proper prioritization
//              and monitoring. A silently wrong date or timezone is strictly worse
//              than a loud failure in this domain, so input errors stay visible
//              but low, while config corruption ranks high.
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: unparseable user input, unknown preset name
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: malformed transfer payload, rejected timezone
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: corrupted configuration, missing required config section
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the library unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInvalidConfig, CodeMissingConfig:
		return SeverityHigh

	case CodeInvalidTimezone, CodeInvalidTransferPayload, CodeInternal:
		return SeverityMedium

	case CodeInvalidDateInput, CodeInvalidUnit, CodeUnknownPreset, CodeUnknownModule,
		CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
