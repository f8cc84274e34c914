// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error classification
//              across the whenny library. These codes enable structured error
//              handling, API response formatting, and error monitoring.
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for the whenny library
const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"

	// Date and time input
	CodeInvalidDateInput Code = "INVALID_DATE_INPUT"
	CodeInvalidTimezone  Code = "INVALID_TIMEZONE"
	CodeInvalidUnit      Code = "INVALID_UNIT"

	// Transfer protocol
	CodeInvalidTransferPayload Code = "INVALID_TRANSFER_PAYLOAD"

	// Configuration and lookup
	CodeUnknownPreset Code = "UNKNOWN_PRESET"
	CodeUnknownModule Code = "UNKNOWN_MODULE"
	CodeInvalidConfig Code = "INVALID_CONFIG"
	CodeMissingConfig Code = "MISSING_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal,
		CodeInvalidDateInput, CodeInvalidTimezone, CodeInvalidUnit,
		CodeInvalidTransferPayload,
		CodeUnknownPreset, CodeUnknownModule, CodeInvalidConfig, CodeMissingConfig,
		CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidDateInput, CodeInvalidTimezone, CodeInvalidUnit:
		return "datetime"
	case CodeInvalidTransferPayload:
		return "transfer"
	case CodeUnknownPreset, CodeUnknownModule, CodeInvalidConfig, CodeMissingConfig:
		return "configuration"
	case CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange:
		return "validation"
	default:
		return "generic"
	}
}

// HTTPStatus returns the appropriate HTTP status code for this error code
func (c Code) HTTPStatus() int {
	switch c {
	case CodeInvalidDateInput, CodeInvalidTimezone, CodeInvalidUnit,
		CodeInvalidTransferPayload, CodeValidationFailed, CodeInvalidFormat,
		CodeValueOutOfRange:
		return 400
	case CodeUnknownPreset, CodeUnknownModule:
		return 404
	default:
		return 500
	}
}
