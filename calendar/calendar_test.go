package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emsdesk/hr-engine/calendar"
)

func TestShiftMonth(t *testing.T) {
	tests := []struct {
		ym    string
		delta int
		want  string
	}{
		{"2026-02", 0, "2026-02"},
		{"2026-02", 1, "2026-03"},
		{"2026-12", 1, "2027-01"},
		{"2026-01", -1, "2025-12"},
		{"2026-06", -18, "2024-12"},
		{"2026-06", 30, "2028-12"},
	}
	for _, tt := range tests {
		got, err := calendar.ShiftMonth(tt.ym, tt.delta)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "ShiftMonth(%q, %d)", tt.ym, tt.delta)
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		ym   string
		want int
	}{
		{"2026-02", 28}, // non-leap
		{"2024-02", 29}, // leap
		{"2000-02", 29}, // leap (divisible by 400)
		{"1900-02", 28}, // not leap (divisible by 100)
		{"2026-01", 31},
		{"2026-04", 30},
		{"2026-12", 31},
	}
	for _, tt := range tests {
		got, err := calendar.DaysInMonth(tt.ym)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "DaysInMonth(%q)", tt.ym)
	}
}

func TestIsWeekend(t *testing.T) {
	// 2026-02-01 is a Sunday.
	sun, err := calendar.IsWeekend("2026-02-01")
	require.NoError(t, err)
	assert.True(t, sun)

	sat, err := calendar.IsWeekend("2026-02-07")
	require.NoError(t, err)
	assert.True(t, sat)

	mon, err := calendar.IsWeekend("2026-02-02")
	require.NoError(t, err)
	assert.False(t, mon)

	fri, err := calendar.IsWeekend("2026-02-06")
	require.NoError(t, err)
	assert.False(t, fri)
}

func TestEachDay(t *testing.T) {
	days, err := calendar.EachDay("2026-02-27", "2026-03-02")
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-02-27", "2026-02-28", "2026-03-01", "2026-03-02"}, days)

	// Single-day range is inclusive on both ends.
	days, err = calendar.EachDay("2026-02-02", "2026-02-02")
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-02-02"}, days)

	// Inverted range is empty, not an error.
	days, err = calendar.EachDay("2026-02-05", "2026-02-02")
	require.NoError(t, err)
	assert.Empty(t, days)
}

func TestEachDay_Restartable(t *testing.T) {
	first, err := calendar.EachDay("2026-02-01", "2026-02-03")
	require.NoError(t, err)
	second, err := calendar.EachDay("2026-02-01", "2026-02-03")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Mutating one result must not affect a later enumeration.
	first[0] = "mutated"
	third, err := calendar.EachDay("2026-02-01", "2026-02-03")
	require.NoError(t, err)
	assert.Equal(t, "2026-02-01", third[0])
}

func TestAddDays(t *testing.T) {
	got, err := calendar.AddDays("2026-02-28", 1)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01", got)

	got, err = calendar.AddDays("2026-01-01", -1)
	require.NoError(t, err)
	assert.Equal(t, "2025-12-31", got)
}

func TestMalformedInputFailsLoudly(t *testing.T) {
	bad := []string{"", "2026-2-03", "2026-02-30", "02-03-2026", "garbage", "2026-13-01"}
	for _, s := range bad {
		_, err := calendar.ParseYMD(s)
		assert.ErrorIs(t, err, calendar.ErrInvalidDate, "ParseYMD(%q)", s)

		_, err = calendar.IsWeekend(s)
		assert.ErrorIs(t, err, calendar.ErrInvalidDate, "IsWeekend(%q)", s)
	}

	for _, s := range []string{"", "2026-2", "2026/02", "2026-13"} {
		_, err := calendar.DaysInMonth(s)
		assert.ErrorIs(t, err, calendar.ErrInvalidDate, "DaysInMonth(%q)", s)

		_, err = calendar.ShiftMonth(s, 1)
		assert.ErrorIs(t, err, calendar.ErrInvalidDate, "ShiftMonth(%q)", s)
	}
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2026-02", calendar.MonthKey(time.Date(2026, 2, 14, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-02-14", calendar.DayInMonth("2026-02", 14))
	assert.Equal(t, "2026-02-03", calendar.DayInMonth("2026-02", 3))
}
