/*
Package hr implements the attendance / leave / salary core.

PURPOSE:
  Holds the five record collections (employees, holidays, attendance, leaves,
  salaries) behind a snapshot-owning store, the mutation operations that
  produce new snapshots, and the derived computations consumed by every
  dashboard: month statistics and loss-of-pay payroll.

KEY CONCEPTS IN THIS FILE (types.go):
  - Snapshot: The complete value of all five collections at one point in time
  - AttendanceRecord: One row per (employee, day); absence is NEVER stored,
    only derived
  - LeaveRequest: pending -> approved/rejected, with review metadata
  - Holiday: "holiday" removes a working day, "restricted" does not

DESIGN PRINCIPLES:
  1. Snapshot replacement: writers build a whole new Snapshot; readers never
     see a partially-updated collection
  2. Derived state stays derived: absent days and LOP are computed on demand
     from stored facts, never persisted alongside them
  3. No referential integrity: collections reference employees by id and
     tolerate dangling ids

SEE ALSO:
  - store.go:     Snapshot ownership, load-or-seed, write-through persistence
  - mutations.go: The five write operations
  - stats.go:     Month-statistics selector
  - payroll.go:   Daily rate / LOP / net pay
*/
package hr

// =============================================================================
// ROLES
// =============================================================================

// Role identifies what a caller is allowed to do. Owner is a pseudo-identity
// (not an Employee row); team leads and employees are.
type Role string

const (
	RoleOwner    Role = "owner"
	RoleTeamLead Role = "team_lead"
	RoleEmployee Role = "employee"
)

// =============================================================================
// EMPLOYEES
// =============================================================================

// Employee is immutable reference data, seeded externally. The core never
// creates or destroys employees.
type Employee struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Role          Role   `json:"role"` // team_lead | employee
	TeamID        string `json:"teamId"`
	Designation   string `json:"designation"`
	Email         string `json:"email"`
	SalaryMonthly int64  `json:"salaryMonthly"`
}

// =============================================================================
// HOLIDAYS
// =============================================================================

type HolidayType string

const (
	// HolidayFull is a fully non-working day.
	HolidayFull HolidayType = "holiday"
	// HolidayRestricted is optional: marked on the calendar but it does NOT
	// reduce the working-day count.
	HolidayRestricted HolidayType = "restricted"
)

type Holiday struct {
	ID   string      `json:"id"`
	Date string      `json:"date"` // YYYY-MM-DD
	Name string      `json:"name"`
	Type HolidayType `json:"type"`
}

// HolidayDraft is a Holiday before the store assigns it an id.
type HolidayDraft struct {
	Date string      `json:"date"`
	Name string      `json:"name"`
	Type HolidayType `json:"type"`
}

// =============================================================================
// ATTENDANCE
// =============================================================================

type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusAbsent  AttendanceStatus = "absent"
	StatusLeave   AttendanceStatus = "leave"
	StatusHoliday AttendanceStatus = "holiday"
	StatusWeekend AttendanceStatus = "weekend"
)

// AttendanceRecord is keyed by (EmployeeID, Date); the store maintains at
// most one record per key. Only StatusPresent is ever written by mutations —
// the other statuses exist for derived presentation and are never stored.
type AttendanceRecord struct {
	EmployeeID string           `json:"employeeId"`
	Date       string           `json:"date"`              // YYYY-MM-DD
	InTime     string           `json:"inTime,omitempty"`  // HH:MM
	OutTime    string           `json:"outTime,omitempty"` // HH:MM
	Status     AttendanceStatus `json:"status"`
}

// =============================================================================
// LEAVE REQUESTS
// =============================================================================

type LeaveType string

const (
	LeaveCasual LeaveType = "casual"
	LeaveSick   LeaveType = "sick"
	LeaveEarned LeaveType = "earned"
	LeaveUnpaid LeaveType = "unpaid"
)

type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

// LeaveRequest covers the inclusive range [From, To]. Review metadata is set
// exactly when the request leaves pending; a re-review overwrites it.
type LeaveRequest struct {
	ID         string      `json:"id"`
	EmployeeID string      `json:"employeeId"`
	From       string      `json:"from"` // YYYY-MM-DD
	To         string      `json:"to"`   // YYYY-MM-DD
	Type       LeaveType   `json:"type"`
	Reason     string      `json:"reason"`
	Status     LeaveStatus `json:"status"`
	ReviewedBy string      `json:"reviewedBy,omitempty"`
	ReviewedAt string      `json:"reviewedAt,omitempty"` // RFC 3339
	Comments   string      `json:"comments,omitempty"`
}

// LeaveDraft is a LeaveRequest before the store assigns id and status.
// From <= To is the caller's responsibility; the store does not reject
// inverted ranges (they simply expand to zero days).
type LeaveDraft struct {
	EmployeeID string    `json:"employeeId"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	Type       LeaveType `json:"type"`
	Reason     string    `json:"reason"`
}

// =============================================================================
// SALARY
// =============================================================================

// Deductions groups the salary deduction heads. LOP here is a stored
// placeholder only: the authoritative figure is derived from attendance by
// payroll.go at read time.
type Deductions struct {
	PF  int64 `json:"pf"`
	Tax int64 `json:"tax"`
	LOP int64 `json:"lop"`
}

// SalaryMonth is one salary structure per (employee, month).
type SalaryMonth struct {
	EmployeeID string     `json:"employeeId"`
	Month      string     `json:"month"` // YYYY-MM
	Base       int64      `json:"base"`
	HRA        int64      `json:"hra"`
	Special    int64      `json:"special"`
	Deductions Deductions `json:"deductions"`
}

// Gross is base plus all allowances.
func (s SalaryMonth) Gross() int64 { return s.Base + s.HRA + s.Special }

// =============================================================================
// SNAPSHOT
// =============================================================================

// Snapshot is the complete value of the record store's five collections at
// one point in time. It is the unit of persistence: rewritten in full after
// every mutation.
type Snapshot struct {
	Employees  []Employee         `json:"employees"`
	Holidays   []Holiday          `json:"holidays"`
	Attendance []AttendanceRecord `json:"attendance"`
	Leaves     []LeaveRequest     `json:"leaves"`
	Salaries   []SalaryMonth      `json:"salaries"`
}

// Clone returns a deep copy. Snapshots cross the store boundary only as
// copies so no caller can alias the store's current state.
func (s *Snapshot) Clone() *Snapshot {
	c := &Snapshot{
		Employees:  append([]Employee(nil), s.Employees...),
		Holidays:   append([]Holiday(nil), s.Holidays...),
		Attendance: append([]AttendanceRecord(nil), s.Attendance...),
		Leaves:     append([]LeaveRequest(nil), s.Leaves...),
		Salaries:   append([]SalaryMonth(nil), s.Salaries...),
	}
	return c
}

// Employee finds an employee by id. Dangling references are expected; the
// second return reports whether the id resolved.
func (s *Snapshot) Employee(id string) (Employee, bool) {
	for _, e := range s.Employees {
		if e.ID == id {
			return e, true
		}
	}
	return Employee{}, false
}

// Attendance lookup for one (employee, day) pair.
func (s *Snapshot) AttendanceFor(employeeID, date string) (AttendanceRecord, bool) {
	for _, r := range s.Attendance {
		if r.EmployeeID == employeeID && r.Date == date {
			return r, true
		}
	}
	return AttendanceRecord{}, false
}

// Salary lookup for one (employee, month) pair.
func (s *Snapshot) SalaryFor(employeeID, month string) (SalaryMonth, bool) {
	for _, r := range s.Salaries {
		if r.EmployeeID == employeeID && r.Month == month {
			return r, true
		}
	}
	return SalaryMonth{}, false
}

// Leave finds a leave request by id.
func (s *Snapshot) Leave(id string) (LeaveRequest, bool) {
	for _, l := range s.Leaves {
		if l.ID == id {
			return l, true
		}
	}
	return LeaveRequest{}, false
}
