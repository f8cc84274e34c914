// Package error provides comprehensive error handling capabilities for the whenny library.
//
// Package: error
// Title: whenny Error Handling Framework
// Description: This package implements a structured error handling system with
//              machine-readable error codes, human-readable remediation hints,
//              stack traces, and metadata. It is the foundation for the strict
//              propagation policy of the library: date and timezone failures
//              surface synchronously to the caller, never degrade silently.
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation with contextual errors and codes
//
// Features:
// - Contextual error wrapping with additional metadata
// - Structured error codes for consistent classification
// - Human-readable hints alongside machine-readable codes
// - Stack trace capture for debugging
// - Error severity levels and categorization
//
// Usage:
//   import werror "github.com/msto63/whenny/core/error"
//
//   // Create a new error with context
//   err := werror.New("unable to parse date string").
//     WithCode(werror.CodeInvalidDateInput).
//     WithDetail("input", raw).
//     WithHint("expected an ISO-8601 timestamp such as 2024-01-15T15:30:00Z")
//
//   // Check error code
//   if werror.HasCode(err, werror.CodeInvalidDateInput) {
//     // Handle bad input specifically
//   }
package error
