/*
Package calendar provides pure date arithmetic over string-encoded calendar
days and months.

PURPOSE:
  Every date that crosses a package boundary in this system is a string:
  calendar days are "YYYY-MM-DD", months are "YYYY-MM". This package is the
  single place those strings are parsed, validated, compared, and enumerated.
  Everything else treats them as opaque keys.

KEY FUNCTIONS:
  Today / NowHHMM:  Current local day / wall-clock time
  MonthKey:         time.Time -> "YYYY-MM"
  ShiftMonth:       Month arithmetic with year rollover
  DaysInMonth:      Calendar length of a month (leap-aware)
  IsWeekend:        Saturday/Sunday test (locale-independent)
  EachDay:          Inclusive day-range enumeration

ERROR CONTRACT:
  Malformed input is a caller contract violation and fails LOUDLY with
  ErrInvalidDate. Silent wrong answers are worse than errors here: a mis-read
  date would flow straight into attendance statistics and salary deductions.

SEE ALSO:
  - hr/stats.go: The main consumer of EachDay and IsWeekend
*/
package calendar

import (
	"errors"
	"fmt"
	"time"
)

// Layouts for the two string encodings used across the system.
const (
	LayoutYMD   = "2006-01-02"
	LayoutMonth = "2006-01"
)

// ErrInvalidDate is returned when a date or month string cannot be parsed.
// Use with errors.Is().
var ErrInvalidDate = errors.New("invalid date")

// =============================================================================
// PARSING
// =============================================================================

// ParseYMD parses a "YYYY-MM-DD" string. Rejects non-canonical and
// out-of-range forms ("2026-2-3", "2026-02-30").
func ParseYMD(ymd string) (time.Time, error) {
	t, err := time.Parse(LayoutYMD, ymd)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, ymd)
	}
	return t, nil
}

// ParseMonth parses a "YYYY-MM" string.
func ParseMonth(ym string) (time.Time, error) {
	t, err := time.Parse(LayoutMonth, ym)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, ym)
	}
	return t, nil
}

// FormatYMD renders a time as a "YYYY-MM-DD" day key.
func FormatYMD(t time.Time) string { return t.Format(LayoutYMD) }

// =============================================================================
// CURRENT TIME
// =============================================================================

// Today returns the current local calendar day as "YYYY-MM-DD".
func Today() string { return time.Now().Format(LayoutYMD) }

// NowHHMM returns the current local wall-clock time as "HH:MM".
func NowHHMM() string { return time.Now().Format("15:04") }

// MonthKey returns the "YYYY-MM" key for a point in time.
func MonthKey(t time.Time) string { return t.Format(LayoutMonth) }

// ThisMonth returns the current local month key.
func ThisMonth() string { return MonthKey(time.Now()) }

// =============================================================================
// MONTH ARITHMETIC
// =============================================================================

// ShiftMonth returns the month key delta months from ym. Delta may be
// negative; year boundaries roll over correctly.
func ShiftMonth(ym string, delta int) (string, error) {
	t, err := ParseMonth(ym)
	if err != nil {
		return "", err
	}
	return MonthKey(t.AddDate(0, delta, 0)), nil
}

// DaysInMonth returns the number of calendar days in ym, accounting for
// leap years.
func DaysInMonth(ym string) (int, error) {
	t, err := ParseMonth(ym)
	if err != nil {
		return 0, err
	}
	// Day zero of the next month is the last day of this one.
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day(), nil
}

// DayInMonth renders the day-of-month key "YYYY-MM-DD" for day n of ym.
// n is 1-based and assumed within DaysInMonth(ym).
func DayInMonth(ym string, n int) string {
	return fmt.Sprintf("%s-%02d", ym, n)
}

// =============================================================================
// DAY PREDICATES AND ENUMERATION
// =============================================================================

// IsWeekend reports whether ymd falls on a Saturday or Sunday.
func IsWeekend(ymd string) (bool, error) {
	t, err := ParseYMD(ymd)
	if err != nil {
		return false, err
	}
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday, nil
}

// AddDays returns the day key n days after ymd (n may be negative).
func AddDays(ymd string, n int) (string, error) {
	t, err := ParseYMD(ymd)
	if err != nil {
		return "", err
	}
	return FormatYMD(t.AddDate(0, 0, n)), nil
}

// EachDay returns the ordered sequence of day keys from from to to,
// inclusive. Empty (nil) when from is after to. The result is a fresh slice;
// there is no shared iterator state.
func EachDay(from, to string) ([]string, error) {
	start, err := ParseYMD(from)
	if err != nil {
		return nil, err
	}
	end, err := ParseYMD(to)
	if err != nil {
		return nil, err
	}

	var days []string
	for cur := start; !cur.After(end); cur = cur.AddDate(0, 0, 1) {
		days = append(days, FormatYMD(cur))
	}
	return days, nil
}
