// File: arith.go
// Title: Calendar and Time Arithmetic
// Description: Implements unit-based arithmetic on instants including the
//              month/year day-of-month clamp rule, start/end-of-unit
//              boundaries, unit differences, wall-clock predicates, and
//              business-day calculations.
// Version: v0.1.0
// Created: 2025-08-03
// Modified: 2025-08-09
//
// Change History:
// - 2025-08-03 v0.1.0: Initial implementation

package whenny

import (
	"strings"
	"time"

	werror "github.com/msto63/whenny/core/error"
)

// Unit is an enumerated calendar/time unit used as an argument tag
type Unit int

const (
	UnitMillisecond Unit = iota
	UnitSecond
	UnitMinute
	UnitHour
	UnitDay
	UnitWeek
	UnitMonth
	UnitYear
)

// String returns the singular lowercase name of the unit
func (u Unit) String() string {
	switch u {
	case UnitMillisecond:
		return "millisecond"
	case UnitSecond:
		return "second"
	case UnitMinute:
		return "minute"
	case UnitHour:
		return "hour"
	case UnitDay:
		return "day"
	case UnitWeek:
		return "week"
	case UnitMonth:
		return "month"
	case UnitYear:
		return "year"
	default:
		return "unknown"
	}
}

// ParseUnit parses a unit name; singular and plural forms are equivalent
func ParseUnit(name string) (Unit, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.TrimSuffix(normalized, "s")

	switch normalized {
	case "millisecond", "ms":
		return UnitMillisecond, nil
	case "second", "sec":
		return UnitSecond, nil
	case "minute", "min":
		return UnitMinute, nil
	case "hour", "hr":
		return UnitHour, nil
	case "day":
		return UnitDay, nil
	case "week":
		return UnitWeek, nil
	case "month":
		return UnitMonth, nil
	case "year":
		return UnitYear, nil
	default:
		return UnitMillisecond, werror.New("unrecognized time unit").
			WithCode(werror.CodeInvalidUnit).
			WithOperation("whenny.ParseUnit").
			WithDetail("unit", name).
			WithHint("use millisecond, second, minute, hour, day, week, month, or year")
	}
}

// Millisecond spans of the fixed-length units
const (
	millisPerSecond = int64(1000)
	millisPerMinute = 60 * millisPerSecond
	millisPerHour   = 60 * millisPerMinute
	millisPerDay    = 24 * millisPerHour
	millisPerWeek   = 7 * millisPerDay
)

// Add returns the instant shifted by the given amount of the unit.
// Sub-day units are pure millisecond arithmetic. Day and week move the
// calendar date. Month and year mutate the calendar field directly, clamping
// the day-of-month to the last valid day of the target month, so
// Jan 31 + 1 month lands on Feb 28 (or Feb 29 in a leap year) instead of
// overflowing into March.
func Add(i Instant, amount int, unit Unit) Instant {
	switch unit {
	case UnitMillisecond:
		return i.AddMillis(int64(amount))
	case UnitSecond:
		return i.AddMillis(int64(amount) * millisPerSecond)
	case UnitMinute:
		return i.AddMillis(int64(amount) * millisPerMinute)
	case UnitHour:
		return i.AddMillis(int64(amount) * millisPerHour)
	case UnitDay:
		return FromTime(i.Time().AddDate(0, 0, amount))
	case UnitWeek:
		return FromTime(i.Time().AddDate(0, 0, amount*7))
	case UnitMonth:
		return addMonths(i, amount)
	case UnitYear:
		return addMonths(i, amount*12)
	default:
		return i
	}
}

// Subtract is Add with a negated amount
func Subtract(i Instant, amount int, unit Unit) Instant {
	return Add(i, -amount, unit)
}

// addMonths shifts the month field with the day-of-month clamp rule
func addMonths(i Instant, months int) Instant {
	t := i.Time()

	year := t.Year()
	month := int(t.Month()) - 1 + months
	year += month / 12
	month = month % 12
	if month < 0 {
		month += 12
		year--
	}

	day := t.Day()
	if last := daysInMonth(year, time.Month(month+1)); day > last {
		day = last
	}

	shifted := time.Date(year, time.Month(month+1), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
	return FromTime(shifted)
}

// daysInMonth returns the number of days in the given month, leap-aware
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DiffIn returns the difference a - b expressed in whole units of the given
// unit. Sub-week units divide the millisecond difference; month and year use
// complete calendar periods, where a month completes only once the anniversary
// wall-clock time has been reached.
func DiffIn(unit Unit, a, b Instant) int64 {
	switch unit {
	case UnitMillisecond:
		return a.Sub(b)
	case UnitSecond:
		return a.Sub(b) / millisPerSecond
	case UnitMinute:
		return a.Sub(b) / millisPerMinute
	case UnitHour:
		return a.Sub(b) / millisPerHour
	case UnitDay:
		return a.Sub(b) / millisPerDay
	case UnitWeek:
		return a.Sub(b) / millisPerWeek
	case UnitMonth:
		return int64(monthsBetween(b.Time(), a.Time()))
	case UnitYear:
		return int64(monthsBetween(b.Time(), a.Time())) / 12
	default:
		return 0
	}
}

// monthsBetween counts complete calendar months from start to end. A month
// counts only once the anniversary day and wall-clock time have both passed.
func monthsBetween(start, end time.Time) int {
	if start.After(end) {
		return -monthsBetween(end, start)
	}

	years := end.Year() - start.Year()
	months := int(end.Month()) - int(start.Month())

	if end.Day() < start.Day() {
		months--
	} else if end.Day() == start.Day() && clockOf(end) < clockOf(start) {
		months--
	}

	return years*12 + months
}

// clockOf flattens a wall-clock time of day to nanoseconds since midnight
func clockOf(t time.Time) int64 {
	return int64(t.Hour())*int64(time.Hour) +
		int64(t.Minute())*int64(time.Minute) +
		int64(t.Second())*int64(time.Second) +
		int64(t.Nanosecond())
}

// StartOf returns the start of the unit boundary containing the instant,
// evaluated in the given location (host-local when loc is nil). Week
// boundaries respect the configured week start day.
func StartOf(i Instant, unit Unit, cfg Config, loc ...*time.Location) Instant {
	t := i.In(pickLocation(loc))

	switch unit {
	case UnitSecond:
		return FromTime(t.Truncate(time.Second))
	case UnitMinute:
		return FromTime(time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location()))
	case UnitHour:
		return FromTime(time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location()))
	case UnitDay:
		return FromTime(startOfDay(t))
	case UnitWeek:
		daysBack := (int(t.Weekday()) - int(cfg.Calendar.WeekStart) + 7) % 7
		return FromTime(startOfDay(t.AddDate(0, 0, -daysBack)))
	case UnitMonth:
		return FromTime(time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()))
	case UnitYear:
		return FromTime(time.Date(t.Year(), 1, 1, 0, 0, 0, 0, t.Location()))
	default:
		return i
	}
}

// EndOf returns the last representable millisecond of the unit boundary
// containing the instant, evaluated in the given location
func EndOf(i Instant, unit Unit, cfg Config, loc ...*time.Location) Instant {
	l := pickLocation(loc)

	switch unit {
	case UnitSecond, UnitMinute, UnitHour:
		next := Add(StartOf(i, unit, cfg, l), 1, unit)
		return next.AddMillis(-1)
	case UnitDay:
		return FromTime(endOfDay(i.In(l)))
	case UnitWeek:
		start := StartOf(i, UnitWeek, cfg, l)
		return FromTime(endOfDay(start.In(l).AddDate(0, 0, 6)))
	case UnitMonth:
		t := i.In(l)
		lastDay := daysInMonth(t.Year(), t.Month())
		return FromTime(endOfDay(time.Date(t.Year(), t.Month(), lastDay, 0, 0, 0, 0, t.Location())))
	case UnitYear:
		t := i.In(l)
		return FromTime(endOfDay(time.Date(t.Year(), 12, 31, 0, 0, 0, 0, t.Location())))
	default:
		return i
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999000000, t.Location())
}

// pickLocation resolves the optional location argument used across the
// arithmetic functions; the default is the host-local zone
func pickLocation(loc []*time.Location) *time.Location {
	if len(loc) > 0 && loc[0] != nil {
		return loc[0]
	}
	return time.Local
}

// sameCalendarDay reports whether both times fall on the same calendar date
func sameCalendarDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// ===============================
// Wall-Clock Predicates
// ===============================

// IsToday reports whether the instant falls on today's calendar date
func IsToday(i Instant, loc ...*time.Location) bool {
	return IsSameDay(i, Now(), loc...)
}

// IsYesterday reports whether the instant falls on yesterday's calendar date
func IsYesterday(i Instant, loc ...*time.Location) bool {
	l := pickLocation(loc)
	return sameCalendarDay(i.In(l), time.Now().In(l).AddDate(0, 0, -1))
}

// IsTomorrow reports whether the instant falls on tomorrow's calendar date
func IsTomorrow(i Instant, loc ...*time.Location) bool {
	l := pickLocation(loc)
	return sameCalendarDay(i.In(l), time.Now().In(l).AddDate(0, 0, 1))
}

// IsSameDay reports whether two instants fall on the same calendar date
func IsSameDay(a, b Instant, loc ...*time.Location) bool {
	l := pickLocation(loc)
	return sameCalendarDay(a.In(l), b.In(l))
}

// IsThisWeek reports whether the instant falls in the current week,
// honoring the configured week start
func IsThisWeek(i Instant, cfg Config, loc ...*time.Location) bool {
	l := pickLocation(loc)
	now := Now()
	return StartOf(i, UnitWeek, cfg, l).Equal(StartOf(now, UnitWeek, cfg, l))
}

// IsThisMonth reports whether the instant falls in the current calendar month
func IsThisMonth(i Instant, loc ...*time.Location) bool {
	l := pickLocation(loc)
	t, now := i.In(l), time.Now().In(l)
	return t.Year() == now.Year() && t.Month() == now.Month()
}

// IsThisYear reports whether the instant falls in the current calendar year
func IsThisYear(i Instant, loc ...*time.Location) bool {
	l := pickLocation(loc)
	return i.In(l).Year() == time.Now().In(l).Year()
}

// IsWeekend reports whether the instant falls on Saturday or Sunday
func IsWeekend(i Instant, loc ...*time.Location) bool {
	wd := i.In(pickLocation(loc)).Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsWeekday reports whether the instant falls on Monday through Friday
func IsWeekday(i Instant, loc ...*time.Location) bool {
	return !IsWeekend(i, loc...)
}

// IsPast reports whether the instant is before the current wall-clock time
func IsPast(i Instant) bool {
	return i.Before(Now())
}

// IsFuture reports whether the instant is after the current wall-clock time
func IsFuture(i Instant) bool {
	return i.After(Now())
}

// ===============================
// Business Day Functions
// ===============================

// IsBusinessDay reports whether the instant falls on a configured business
// day (default Monday through Friday)
func IsBusinessDay(i Instant, cfg Config, loc ...*time.Location) bool {
	wd := i.In(pickLocation(loc)).Weekday()
	for _, business := range cfg.Calendar.BusinessDays {
		if wd == business {
			return true
		}
	}
	return false
}

// AddBusinessDays advances the instant by the given count of business days,
// skipping non-business days one calendar day at a time. Horizons are
// expected to be small, so the O(n) walk is acceptable. An empty business-day
// set can never advance; Validate rejects such a configuration, and the
// guard here keeps a hand-built one from walking forever.
func AddBusinessDays(i Instant, days int, cfg Config, loc ...*time.Location) Instant {
	if days == 0 || len(cfg.Calendar.BusinessDays) == 0 {
		return i
	}

	step := 1
	remaining := days
	if days < 0 {
		step = -1
		remaining = -days
	}

	result := i
	for remaining > 0 {
		result = Add(result, step, UnitDay)
		if IsBusinessDay(result, cfg, loc...) {
			remaining--
		}
	}

	return result
}

// SubtractBusinessDays moves the instant back by the given count of business days
func SubtractBusinessDays(i Instant, days int, cfg Config, loc ...*time.Location) Instant {
	return AddBusinessDays(i, -days, cfg, loc...)
}

// NextBusinessDay returns the next business day after the instant
func NextBusinessDay(i Instant, cfg Config, loc ...*time.Location) Instant {
	return AddBusinessDays(i, 1, cfg, loc...)
}

// PrevBusinessDay returns the previous business day before the instant
func PrevBusinessDay(i Instant, cfg Config, loc ...*time.Location) Instant {
	return AddBusinessDays(i, -1, cfg, loc...)
}

// BusinessDaysBetween counts the business days from start to end inclusive
func BusinessDaysBetween(start, end Instant, cfg Config, loc ...*time.Location) int {
	if start.After(end) {
		return -BusinessDaysBetween(end, start, cfg, loc...)
	}

	count := 0
	current := StartOf(start, UnitDay, cfg, loc...)
	limit := StartOf(end, UnitDay, cfg, loc...)

	for !current.After(limit) {
		if IsBusinessDay(current, cfg, loc...) {
			count++
		}
		current = Add(current, 1, UnitDay)
	}

	return count
}
