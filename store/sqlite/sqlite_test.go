package sqlite_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emsdesk/hr-engine/hr"
	"github.com/emsdesk/hr-engine/store/sqlite"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func feb2026Clock() fixedClock {
	return fixedClock{t: time.Date(2026, 2, 2, 9, 0, 0, 0, time.Local)}
}

func newBackend(t *testing.T) *sqlite.Backend {
	t.Helper()
	b, err := sqlite.New(filepath.Join(t.TempDir(), "ems.db"))
	require.NoError(t, err)
	t.Cleanup(func() { b.Close() })
	return b
}

func TestLoad_EmptyDatabase(t *testing.T) {
	b := newBackend(t)

	snap, err := b.Load()
	require.NoError(t, err)
	assert.Nil(t, snap, "no snapshot saved yet")
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	b := newBackend(t)

	in := hr.SeedSnapshot(feb2026Clock())
	in.Attendance = append(in.Attendance, hr.AttendanceRecord{
		EmployeeID: "e102", Date: "2026-02-02", InTime: "09:00", OutTime: "18:01", Status: hr.StatusPresent,
	})
	require.NoError(t, b.Save(in))

	out, err := b.Load()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSave_ReplacesInFull(t *testing.T) {
	b := newBackend(t)

	first := hr.SeedSnapshot(feb2026Clock())
	require.NoError(t, b.Save(first))

	second := first.Clone()
	second.Holidays = append([]hr.Holiday{{ID: "hx", Date: "2026-02-02", Name: "Test", Type: hr.HolidayFull}}, second.Holidays...)
	require.NoError(t, b.Save(second))

	out, err := b.Load()
	require.NoError(t, err)
	assert.Equal(t, second, out)
	assert.Len(t, out.Holidays, 5)
}

func TestOpenStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ems.db")

	b, err := sqlite.New(path)
	require.NoError(t, err)
	s, err := hr.Open(b, feb2026Clock())
	require.NoError(t, err)
	require.NoError(t, s.ClockIn("e102", "2026-02-02", "09:00"))
	require.NoError(t, b.Close())

	b2, err := sqlite.New(path)
	require.NoError(t, err)
	defer b2.Close()
	s2, err := hr.Open(b2, feb2026Clock())
	require.NoError(t, err)

	rec, ok := s2.Snapshot().AttendanceFor("e102", "2026-02-02")
	require.True(t, ok)
	assert.Equal(t, "09:00", rec.InTime)
}
