// File: coerce.go
// Title: Date Input Coercion
// Description: Implements parsing of heterogeneous date inputs (time values,
//              strings, epoch numbers) into a canonical Instant. The textual
//              grammar is strict by policy: adversarial or ambiguous input is
//              rejected rather than recovered.
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation

package whenny

import (
	"fmt"
	"math"
	"strings"
	"time"

	werror "github.com/msto63/whenny/core/error"
	"github.com/msto63/whenny/utils/stringx"
)

// MaxDateStringLength guards against pathological inputs before any parsing
const MaxDateStringLength = 64

// Textual layouts accepted by ParseString, tried in order. Space-separated
// ISO-like inputs are normalized to 'T' form before this list applies, so
// only the canonical layouts and the supported regional forms appear here.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006",
	"1/2/2006",
	"02.01.2006 15:04:05",
	"02.01.2006",
	"2.1.2006",
}

// Coerce parses heterogeneous input into an Instant. Accepted kinds are
// resolved by a single exhaustive match: Instant (identity), time.Time and
// *time.Time, string (textual grammar), and int/int64/float64 epoch
// milliseconds. Everything else fails with INVALID_DATE_INPUT.
func Coerce(value interface{}) (Instant, error) {
	switch v := value.(type) {
	case Instant:
		return v, nil

	case time.Time:
		if v.IsZero() {
			return Instant{}, werror.New("zero time value is not a valid date").
				WithCode(werror.CodeInvalidDateInput).
				WithOperation("whenny.Coerce")
		}
		return FromTime(v), nil

	case *time.Time:
		if v == nil {
			return Instant{}, nilInputError()
		}
		return Coerce(*v)

	case string:
		return ParseString(v)

	case int:
		return FromUnixMilli(int64(v)), nil

	case int64:
		return FromUnixMilli(v), nil

	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Instant{}, werror.New("numeric date input must be finite").
				WithCode(werror.CodeInvalidDateInput).
				WithOperation("whenny.Coerce").
				WithDetail("value", v)
		}
		return FromUnixMilli(int64(v)), nil

	case nil:
		return Instant{}, nilInputError()

	default:
		return Instant{}, werror.New("unsupported date input type").
			WithCode(werror.CodeInvalidDateInput).
			WithOperation("whenny.Coerce").
			WithDetail("type", fmt.Sprintf("%T", value)).
			WithHint("pass an Instant, time.Time, string, or epoch milliseconds")
	}
}

// ParseString parses a textual date into an Instant. The accepted grammar is
// ISO-8601 with optional offset or 'Z' suffix, date-only ISO, space-separated
// ISO-like, and a small set of slash/dot-separated regional formats. Inputs
// without an explicit offset are interpreted as UTC.
func ParseString(s string) (Instant, error) {
	if stringx.IsBlank(s) {
		return Instant{}, werror.New("date string cannot be empty").
			WithCode(werror.CodeInvalidDateInput).
			WithOperation("whenny.ParseString")
	}

	s = strings.TrimSpace(s)

	if len(s) > MaxDateStringLength {
		return Instant{}, werror.New("date string exceeds maximum length").
			WithCode(werror.CodeInvalidDateInput).
			WithOperation("whenny.ParseString").
			WithDetail("length", len(s)).
			WithDetail("max", MaxDateStringLength)
	}

	// Precision over leniency: markup and non-ASCII calendar text are
	// rejected outright instead of attempting best-effort recovery.
	if !stringx.IsASCII(s) {
		return Instant{}, werror.New("date string contains non-ASCII characters").
			WithCode(werror.CodeInvalidDateInput).
			WithOperation("whenny.ParseString").
			WithDetail("input", stringx.Truncate(s, 32, "..."))
	}
	if strings.ContainsAny(s, "<>{}") {
		return Instant{}, werror.New("date string contains markup characters").
			WithCode(werror.CodeInvalidDateInput).
			WithOperation("whenny.ParseString")
	}

	// A single interior space before a time component is treated as ISO
	// with 'T' substituted for that space.
	candidate := s
	if strings.Count(s, " ") == 1 {
		idx := strings.IndexByte(s, ' ')
		if idx+1 < len(s) && s[idx+1] >= '0' && s[idx+1] <= '9' && strings.Contains(s[idx:], ":") {
			candidate = s[:idx] + "T" + s[idx+1:]
		}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, candidate); err == nil {
			return FromTime(t), nil
		}
	}

	// Regional formats keep their space-separated time component
	if candidate != s {
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return FromTime(t), nil
			}
		}
	}

	return Instant{}, werror.New("unable to parse date string").
		WithCode(werror.CodeInvalidDateInput).
		WithOperation("whenny.ParseString").
		WithDetail("input", s).
		WithHint("expected an ISO-8601 timestamp such as 2024-01-15T15:30:00Z, a date like 2024-01-15, or a regional form like 01/15/2024")
}

func nilInputError() *werror.Error {
	return werror.New("date input cannot be nil").
		WithCode(werror.CodeInvalidDateInput).
		WithOperation("whenny.Coerce")
}
