// File: error_test.go
// Title: Error Handling Tests
// Description: Test suite for the structured error type including codes,
//              severities, hints, wrapping, and JSON serialization.
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial test implementation

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("something went wrong")

	if err.Error() != "something went wrong" {
		t.Errorf("Error() = %q, want %q", err.Error(), "something went wrong")
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
}

func TestWithCode(t *testing.T) {
	testCases := []struct {
		name         string
		code         Code
		wantSeverity Severity
	}{
		{"invalid date input is low", CodeInvalidDateInput, SeverityLow},
		{"invalid timezone is medium", CodeInvalidTimezone, SeverityMedium},
		{"invalid config is high", CodeInvalidConfig, SeverityHigh},
		{"unknown preset is low", CodeUnknownPreset, SeverityLow},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := New("test").WithCode(tc.code)

			if err.Code() != tc.code {
				t.Errorf("Code() = %v, want %v", err.Code(), tc.code)
			}
			if err.Severity() != tc.wantSeverity {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tc.wantSeverity)
			}
		})
	}
}

func TestExplicitSeverityNotOverridden(t *testing.T) {
	err := New("test").WithSeverity(SeverityCritical).WithCode(CodeInvalidDateInput)

	if err.Severity() != SeverityCritical {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityCritical)
	}
}

func TestWithHint(t *testing.T) {
	err := New("unable to parse date string").
		WithCode(CodeInvalidDateInput).
		WithHint("expected an ISO-8601 timestamp").
		WithHint("try 2024-01-15T15:30:00Z")

	hints := err.Hints()
	if len(hints) != 2 {
		t.Fatalf("Hints() returned %d hints, want 2", len(hints))
	}
	if hints[0] != "expected an ISO-8601 timestamp" {
		t.Errorf("Hints()[0] = %q", hints[0])
	}

	// Returned slice must be a copy
	hints[0] = "mutated"
	if err.Hints()[0] == "mutated" {
		t.Error("Hints() should return a copy")
	}
}

func TestWrap(t *testing.T) {
	base := New("zone rejected").
		WithCode(CodeInvalidTimezone).
		WithDetail("zone", "Mars/Olympus")

	wrapped := Wrap(base, "createTransfer failed")

	if wrapped.Code() != CodeInvalidTimezone {
		t.Errorf("wrapped Code() = %v, want %v", wrapped.Code(), CodeInvalidTimezone)
	}
	if wrapped.Details()["zone"] != "Mars/Olympus" {
		t.Error("wrapped error should carry details of the cause")
	}
	if !strings.Contains(wrapped.Error(), "zone rejected") {
		t.Errorf("Error() = %q should contain cause message", wrapped.Error())
	}
	if !errors.Is(wrapped, base) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil, ...) should return nil")
	}
}

func TestWrapStandardError(t *testing.T) {
	stdErr := errors.New("plain failure")
	wrapped := Wrap(stdErr, "operation failed")

	if wrapped.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", wrapped.Code(), CodeUnknown)
	}
	if RootCause(wrapped) != stdErr {
		t.Error("RootCause should return the standard error")
	}
}

func TestChainDepthGuard(t *testing.T) {
	var err error = New("root")
	for i := 0; i < MaxErrorChainDepth+5; i++ {
		err = Wrap(err, fmt.Sprintf("layer %d", i))
	}

	werr, ok := err.(*Error)
	if !ok {
		t.Fatal("expected *Error")
	}
	if werr.Details()["truncated"] != true {
		t.Error("deep chains should be truncated")
	}
}

func TestHasCode(t *testing.T) {
	base := New("bad zone").WithCode(CodeInvalidTimezone)
	wrapped := fmt.Errorf("outer: %w", base)

	if !HasCode(wrapped, CodeInvalidTimezone) {
		t.Error("HasCode should find the code through a fmt wrapper")
	}
	if HasCode(wrapped, CodeInvalidDateInput) {
		t.Error("HasCode should not match a different code")
	}
	if HasCode(nil, CodeUnknown) {
		t.Error("HasCode(nil) should be false")
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(New("x").WithCode(CodeUnknownPreset)); got != CodeUnknownPreset {
		t.Errorf("CodeOf() = %v, want %v", got, CodeUnknownPreset)
	}
	if got := CodeOf(errors.New("plain")); got != CodeUnknown {
		t.Errorf("CodeOf(plain) = %v, want %v", got, CodeUnknown)
	}
}

func TestMarshalJSON(t *testing.T) {
	err := New("unable to parse date string").
		WithCode(CodeInvalidDateInput).
		WithOperation("whenny.Coerce").
		WithDetail("input", "garbage").
		WithHint("expected an ISO-8601 timestamp")

	data, jsonErr := json.Marshal(err)
	if jsonErr != nil {
		t.Fatalf("Marshal failed: %v", jsonErr)
	}

	var decoded map[string]interface{}
	if jsonErr := json.Unmarshal(data, &decoded); jsonErr != nil {
		t.Fatalf("Unmarshal failed: %v", jsonErr)
	}

	if decoded["code"] != "INVALID_DATE_INPUT" {
		t.Errorf("code = %v, want INVALID_DATE_INPUT", decoded["code"])
	}
	if decoded["operation"] != "whenny.Coerce" {
		t.Errorf("operation = %v", decoded["operation"])
	}
	hints, ok := decoded["hints"].([]interface{})
	if !ok || len(hints) != 1 {
		t.Errorf("hints = %v, want one hint", decoded["hints"])
	}
}

func TestCodeCategory(t *testing.T) {
	testCases := []struct {
		code Code
		want string
	}{
		{CodeInvalidDateInput, "datetime"},
		{CodeInvalidTimezone, "datetime"},
		{CodeInvalidTransferPayload, "transfer"},
		{CodeUnknownPreset, "configuration"},
		{CodeValidationFailed, "validation"},
		{CodeInternal, "generic"},
	}

	for _, tc := range testCases {
		t.Run(string(tc.code), func(t *testing.T) {
			if got := tc.code.Category(); got != tc.want {
				t.Errorf("Category() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCodeHTTPStatus(t *testing.T) {
	if got := CodeInvalidDateInput.HTTPStatus(); got != 400 {
		t.Errorf("HTTPStatus() = %d, want 400", got)
	}
	if got := CodeUnknownPreset.HTTPStatus(); got != 404 {
		t.Errorf("HTTPStatus() = %d, want 404", got)
	}
	if got := CodeInternal.HTTPStatus(); got != 500 {
		t.Errorf("HTTPStatus() = %d, want 500", got)
	}
}

func TestIsValid(t *testing.T) {
	if !CodeInvalidTransferPayload.IsValid() {
		t.Error("CodeInvalidTransferPayload should be valid")
	}
	if Code("NOPE").IsValid() {
		t.Error("unknown code should not be valid")
	}
}

func TestStackTraceCaptured(t *testing.T) {
	err := New("boom")

	frames := err.StackTrace()
	if len(frames) == 0 {
		t.Fatal("expected at least one stack frame")
	}
	found := false
	for _, f := range frames {
		if strings.Contains(f.Function, "TestStackTraceCaptured") {
			found = true
		}
	}
	if !found {
		t.Error("stack trace should contain the calling test function")
	}
}
