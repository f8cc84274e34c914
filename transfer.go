// File: transfer.go
// Title: Timezone Transfer Protocol
// Description: Implements the timezone-context-preserving serialization
//              payload: an ISO UTC timestamp, the origin IANA zone, and the
//              origin's UTC offset frozen at creation time. The received side
//              exposes origin-relative derived values without recomputing the
//              frozen offset.
// Version: v0.1.0
// Created: 2025-08-05
// Modified: 2025-08-09
//
// Change History:
// - 2025-08-05 v0.1.0: Initial implementation

package whenny

import (
	"encoding/json"
	"time"

	werror "github.com/msto63/whenny/core/error"
	"github.com/msto63/whenny/utils/stringx"
)

// maxOffsetMinutes bounds plausible UTC offsets; real zones stay within
// UTC-12:00 to UTC+14:00, the guard allows RFC 3339's full +/-18:00 range
const maxOffsetMinutes = 18 * 60

// TransferPayload is the flat, JSON-serializable triple that carries an
// instant across a serialization boundary together with its origin timezone
// context. OriginOffset is derived once at creation time from the instant
// and zone; it is never recomputed on the receiving side, so a payload stays
// internally consistent however far from its origin it is consumed.
type TransferPayload struct {
	ISO          string `json:"iso"`
	OriginZone   string `json:"originZone"`
	OriginOffset int    `json:"originOffset"`
}

// CreateTransfer builds a payload for the instant as seen from the origin
// zone, resolving and freezing the zone's UTC offset at this instant.
// Fails with INVALID_TIMEZONE when the host rejects the zone.
func CreateTransfer(i Instant, zone string) (TransferPayload, error) {
	return CreateTransferWith(defaultProvider, i, zone)
}

// CreateTransferWith is CreateTransfer against an explicit provider
func CreateTransferWith(provider TimezoneProvider, i Instant, zone string) (TransferPayload, error) {
	offset, err := provider.OffsetMinutes(zone, i)
	if err != nil {
		return TransferPayload{}, werror.Wrap(err, "createTransfer failed").
			WithOperation("whenny.CreateTransfer")
	}

	return TransferPayload{
		ISO:          i.ISO(),
		OriginZone:   zone,
		OriginOffset: offset,
	}, nil
}

// CreateTransferFrom coerces an arbitrary date input first, so malformed
// input fails with INVALID_DATE_INPUT before any zone work happens
func CreateTransferFrom(value interface{}, zone string) (TransferPayload, error) {
	i, err := Coerce(value)
	if err != nil {
		return TransferPayload{}, err
	}
	return CreateTransfer(i, zone)
}

// ReceivedTransfer is the deserialized view of a payload. The original
// payload is retained so Payload round-trips byte-for-byte through JSON.
type ReceivedTransfer struct {
	payload TransferPayload
	instant Instant
}

// FromTransfer validates a payload's shape and embedded timestamp and
// returns the received view. Structural or semantic problems fail with
// INVALID_TRANSFER_PAYLOAD.
func FromTransfer(payload TransferPayload) (*ReceivedTransfer, error) {
	if stringx.IsBlank(payload.ISO) {
		return nil, transferError("payload is missing the iso timestamp")
	}
	if stringx.IsBlank(payload.OriginZone) {
		return nil, transferError("payload is missing the origin zone")
	}
	if payload.OriginOffset < -maxOffsetMinutes || payload.OriginOffset > maxOffsetMinutes {
		return nil, transferError("payload offset is outside the plausible range").
			WithDetail("originOffset", payload.OriginOffset)
	}

	t, err := time.Parse(time.RFC3339Nano, payload.ISO)
	if err != nil {
		return nil, werror.Wrap(err, "payload iso timestamp does not parse").
			WithCode(werror.CodeInvalidTransferPayload).
			WithOperation("whenny.FromTransfer").
			WithDetail("iso", payload.ISO)
	}

	return &ReceivedTransfer{
		payload: payload,
		instant: FromTime(t),
	}, nil
}

// FromTransferJSON decodes raw JSON into a payload and validates it
func FromTransferJSON(data []byte) (*ReceivedTransfer, error) {
	var payload TransferPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, werror.Wrap(err, "payload is not valid JSON").
			WithCode(werror.CodeInvalidTransferPayload).
			WithOperation("whenny.FromTransferJSON")
	}
	return FromTransfer(payload)
}

func transferError(message string) *werror.Error {
	return werror.New(message).
		WithCode(werror.CodeInvalidTransferPayload).
		WithOperation("whenny.FromTransfer")
}

// Payload returns the payload exactly as received
func (r *ReceivedTransfer) Payload() TransferPayload {
	return r.payload
}

// OriginZone returns the origin IANA zone name
func (r *ReceivedTransfer) OriginZone() string {
	return r.payload.OriginZone
}

// OriginOffset returns the frozen origin UTC offset in minutes
func (r *ReceivedTransfer) OriginOffset() int {
	return r.payload.OriginOffset
}

// UTC returns the instant unchanged
func (r *ReceivedTransfer) UTC() Instant {
	return r.instant
}

// InOrigin returns the instant shifted by the frozen origin offset, for
// direct wall-clock field reads in the origin zone
func (r *ReceivedTransfer) InOrigin() Instant {
	return r.instant.AddMillis(int64(r.payload.OriginOffset) * millisPerMinute)
}

// InZone recomputes a fresh offset for a different target zone at this
// instant and returns the shifted instant. Unlike the frozen-offset paths,
// this can fail with INVALID_TIMEZONE.
func (r *ReceivedTransfer) InZone(zone string) (Instant, error) {
	offset, err := OffsetMinutes(zone, r.instant)
	if err != nil {
		return Instant{}, err
	}
	return r.instant.AddMillis(int64(offset) * millisPerMinute), nil
}

// StartOfDayInOrigin projects into origin wall-clock, takes the calendar-day
// start, and projects back to UTC using the same frozen offset. On DST
// transition days the frozen offset may differ from the zone's offset at the
// boundary instant, so the result can be off by the DST delta; the frozen
// behavior is kept deliberately so a payload renders identically everywhere.
func (r *ReceivedTransfer) StartOfDayInOrigin() Instant {
	shiftMillis := int64(r.payload.OriginOffset) * millisPerMinute

	origin := r.instant.AddMillis(shiftMillis).Time()
	dayStart := time.Date(origin.Year(), origin.Month(), origin.Day(), 0, 0, 0, 0, time.UTC)

	return FromTime(dayStart).AddMillis(-shiftMillis)
}

// EndOfDayInOrigin is the 23:59:59.999 counterpart of StartOfDayInOrigin,
// with the same frozen-offset approximation
func (r *ReceivedTransfer) EndOfDayInOrigin() Instant {
	shiftMillis := int64(r.payload.OriginOffset) * millisPerMinute

	origin := r.instant.AddMillis(shiftMillis).Time()
	dayEnd := time.Date(origin.Year(), origin.Month(), origin.Day(), 23, 59, 59, 999000000, time.UTC)

	return FromTime(dayEnd).AddMillis(-shiftMillis)
}

// DayBoundsInOrigin bundles both origin-day boundaries
func (r *ReceivedTransfer) DayBoundsInOrigin() (Instant, Instant) {
	return r.StartOfDayInOrigin(), r.EndOfDayInOrigin()
}

// IsTransferPayload performs structural validation without failing, for
// defensive call sites that need to distinguish a transfer payload from a
// bare date value before deciding how to parse. Accepted shapes are a
// TransferPayload value, a generic JSON-decoded map, or raw JSON bytes.
func IsTransferPayload(value interface{}) bool {
	switch v := value.(type) {
	case TransferPayload:
		_, err := FromTransfer(v)
		return err == nil

	case *TransferPayload:
		if v == nil {
			return false
		}
		_, err := FromTransfer(*v)
		return err == nil

	case map[string]interface{}:
		iso, hasISO := v["iso"].(string)
		zone, hasZone := v["originZone"].(string)
		offset, hasOffset := v["originOffset"].(float64)
		if !hasISO || !hasZone || !hasOffset {
			return false
		}
		_, err := FromTransfer(TransferPayload{ISO: iso, OriginZone: zone, OriginOffset: int(offset)})
		return err == nil

	case []byte:
		_, err := FromTransferJSON(v)
		return err == nil

	default:
		return false
	}
}
