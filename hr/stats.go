/*
stats.go - Month-statistics selector

The one computation with real branching. For each calendar day of the month,
precedence is strict:

  weekend  ->  skipped entirely (even if also a declared holiday)
  holiday  ->  counted as holiday, never as a working day
               (restricted holidays are NOT in this set)
  working  ->  approved leave wins over attendance; otherwise a present
               attendance record counts as present, anything else as absent

So present + onLeave + absent always partitions workingDays, and
workingDays + holiday + weekends always covers the whole month.
*/
package hr

import (
	"github.com/emsdesk/hr-engine/calendar"
)

// MonthStats is the per-employee breakdown of one month.
type MonthStats struct {
	WorkingDays int `json:"workingDays"`
	Present     int `json:"present"`
	Holiday     int `json:"holiday"`
	OnLeave     int `json:"onLeave"`
	Absent      int `json:"absent"`
}

// ComputeMonthStats derives the month breakdown for one employee from the
// raw collections. Read-only; the only failure mode is a malformed month or
// leave-date string, which propagates calendar.ErrInvalidDate.
func ComputeMonthStats(employeeID, ym string, attendance []AttendanceRecord, holidays []Holiday, leaves []LeaveRequest) (MonthStats, error) {
	daysCount, err := calendar.DaysInMonth(ym)
	if err != nil {
		return MonthStats{}, err
	}

	// Full holidays only; restricted holidays never reduce working days.
	holidaySet := make(map[string]bool)
	for _, h := range holidays {
		if h.Type == HolidayFull {
			holidaySet[h.Date] = true
		}
	}

	// Days covered by this employee's approved leaves.
	leaveDays := make(map[string]bool)
	for _, l := range leaves {
		if l.EmployeeID != employeeID || l.Status != LeaveApproved {
			continue
		}
		days, err := calendar.EachDay(l.From, l.To)
		if err != nil {
			return MonthStats{}, err
		}
		for _, d := range days {
			leaveDays[d] = true
		}
	}

	// Attendance index for this employee.
	byDate := make(map[string]AttendanceRecord)
	for _, r := range attendance {
		if r.EmployeeID == employeeID {
			byDate[r.Date] = r
		}
	}

	var stats MonthStats
	for day := 1; day <= daysCount; day++ {
		ymd := calendar.DayInMonth(ym, day)

		weekend, err := calendar.IsWeekend(ymd)
		if err != nil {
			return MonthStats{}, err
		}
		if weekend {
			continue
		}
		if holidaySet[ymd] {
			stats.Holiday++
			continue
		}
		stats.WorkingDays++
		if leaveDays[ymd] {
			stats.OnLeave++
			continue
		}
		if rec, ok := byDate[ymd]; ok && rec.Status == StatusPresent {
			stats.Present++
		} else {
			stats.Absent++
		}
	}
	return stats, nil
}

// MonthStatsFor is the snapshot-level convenience wrapper.
func (s *Snapshot) MonthStatsFor(employeeID, ym string) (MonthStats, error) {
	return ComputeMonthStats(employeeID, ym, s.Attendance, s.Holidays, s.Leaves)
}
