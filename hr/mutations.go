/*
mutations.go - The five write operations

Each operation is a pure transformation of the previous snapshot into the
next one, applied through Store.mutate (persist-then-install). Contracts:

  ClockIn:     in-time set only if unset (idempotent after the first call in
               a day); status always forced to present
  ClockOut:    out-time always overwritten; no prior clock-in required
  ApplyLeave:  fresh id, status pending, prepended
  ReviewLeave: idempotent overwrite of status + review metadata; silent no-op
               on unknown id
  AddHoliday:  fresh id, prepended; duplicate dates permitted

None of these check referential integrity: attendance for an unknown
employee id is still recorded.
*/
package hr

// upsertAttendance applies fn to the record for (employeeID, date), creating
// it first if absent. At most one record per key is maintained.
func upsertAttendance(next *Snapshot, employeeID, date string, fn func(*AttendanceRecord)) {
	for i := range next.Attendance {
		r := &next.Attendance[i]
		if r.EmployeeID == employeeID && r.Date == date {
			fn(r)
			return
		}
	}
	rec := AttendanceRecord{EmployeeID: employeeID, Date: date, Status: StatusPresent}
	fn(&rec)
	next.Attendance = append(next.Attendance, rec)
}

// ClockIn records an in-punch. Empty date/time default to today/now.
func (s *Store) ClockIn(employeeID, date, timeHHMM string) error {
	date, timeHHMM = s.defaults(date, timeHHMM)
	return s.mutate(func(next *Snapshot) bool {
		upsertAttendance(next, employeeID, date, func(r *AttendanceRecord) {
			if r.InTime == "" {
				r.InTime = timeHHMM
			}
			r.Status = StatusPresent
		})
		return true
	})
}

// ClockOut records an out-punch. Empty date/time default to today/now.
func (s *Store) ClockOut(employeeID, date, timeHHMM string) error {
	date, timeHHMM = s.defaults(date, timeHHMM)
	return s.mutate(func(next *Snapshot) bool {
		upsertAttendance(next, employeeID, date, func(r *AttendanceRecord) {
			r.OutTime = timeHHMM
			r.Status = StatusPresent
		})
		return true
	})
}

func (s *Store) defaults(date, timeHHMM string) (string, string) {
	now := s.clock.Now()
	if date == "" {
		date = now.Format("2006-01-02")
	}
	if timeHHMM == "" {
		timeHHMM = now.Format("15:04")
	}
	return date, timeHHMM
}

// ApplyLeave files a new leave request in pending status and returns it.
// Range validity (From <= To) is the caller's responsibility.
func (s *Store) ApplyLeave(draft LeaveDraft) (LeaveRequest, error) {
	req := LeaveRequest{
		ID:         newID("leave"),
		EmployeeID: draft.EmployeeID,
		From:       draft.From,
		To:         draft.To,
		Type:       draft.Type,
		Reason:     draft.Reason,
		Status:     LeavePending,
	}
	err := s.mutate(func(next *Snapshot) bool {
		next.Leaves = append([]LeaveRequest{req}, next.Leaves...)
		return true
	})
	if err != nil {
		return LeaveRequest{}, err
	}
	return req, nil
}

// ReviewLeave records a decision on a leave request. Re-reviewing an already
// decided request overwrites status and review metadata in place. Unknown
// ids are a silent no-op: the snapshot is unchanged and nothing is persisted.
func (s *Store) ReviewLeave(id string, status LeaveStatus, reviewer, comments string) error {
	reviewedAt := s.clock.Now().Format(reviewedAtLayout)
	return s.mutate(func(next *Snapshot) bool {
		for i := range next.Leaves {
			if next.Leaves[i].ID != id {
				continue
			}
			l := &next.Leaves[i]
			l.Status = status
			l.ReviewedBy = reviewer
			l.ReviewedAt = reviewedAt
			l.Comments = comments
			return true
		}
		return false
	})
}

// AddHoliday declares a new holiday and returns it. No uniqueness check on
// date: duplicate holiday dates are permitted.
func (s *Store) AddHoliday(draft HolidayDraft) (Holiday, error) {
	h := Holiday{
		ID:   newID("hol"),
		Date: draft.Date,
		Name: draft.Name,
		Type: draft.Type,
	}
	err := s.mutate(func(next *Snapshot) bool {
		next.Holidays = append([]Holiday{h}, next.Holidays...)
		return true
	})
	if err != nil {
		return Holiday{}, err
	}
	return h, nil
}
