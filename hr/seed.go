package hr

import (
	"github.com/shopspring/decimal"

	"github.com/emsdesk/hr-engine/calendar"
)

// Seed data for first boot. The store falls back to this whenever no
// persisted snapshot exists (or the persisted one is structurally invalid).

// Teams maps team id to display name.
var Teams = map[string]string{
	"t1": "Platform",
	"t2": "Design",
	"t3": "Sales",
}

// TeamName resolves a team id, falling back to the raw id for unknown teams.
func TeamName(id string) string {
	if name, ok := Teams[id]; ok {
		return name
	}
	return id
}

func seedEmployees() []Employee {
	return []Employee{
		{ID: "e101", Name: "Ajay Kumar", Role: RoleTeamLead, TeamID: "t1", Designation: "Team Lead (Platform)", Email: "ajay.tl@ems.local", SalaryMonthly: 90000},
		{ID: "e102", Name: "Riya Sharma", Role: RoleEmployee, TeamID: "t1", Designation: "Frontend Developer", Email: "riya@ems.local", SalaryMonthly: 65000},
		{ID: "e103", Name: "Mohit Verma", Role: RoleEmployee, TeamID: "t1", Designation: "Backend Developer", Email: "mohit@ems.local", SalaryMonthly: 70000},
		{ID: "e201", Name: "Sara Khan", Role: RoleTeamLead, TeamID: "t2", Designation: "Team Lead (Design)", Email: "sara.tl@ems.local", SalaryMonthly: 88000},
		{ID: "e202", Name: "Aman Singh", Role: RoleEmployee, TeamID: "t2", Designation: "Product Designer", Email: "aman@ems.local", SalaryMonthly: 62000},
	}
}

func seedHolidays() []Holiday {
	return []Holiday{
		{ID: "h1", Date: "2026-01-26", Name: "Republic Day", Type: HolidayFull},
		{ID: "h2", Date: "2026-03-08", Name: "Holi", Type: HolidayFull},
		{ID: "h3", Date: "2026-08-15", Name: "Independence Day", Type: HolidayFull},
		{ID: "rh1", Date: "2026-02-14", Name: "Restricted Holiday: Family Day", Type: HolidayRestricted},
	}
}

func seedLeaves(clock Clock) []LeaveRequest {
	today := calendar.FormatYMD(clock.Now())
	return []LeaveRequest{
		{
			ID:         "l1",
			EmployeeID: "e102",
			From:       today,
			To:         today,
			Type:       LeaveCasual,
			Reason:     "Personal work",
			Status:     LeavePending,
		},
		{
			ID:         "l2",
			EmployeeID: "e103",
			From:       "2026-01-10",
			To:         "2026-01-12",
			Type:       LeaveSick,
			Reason:     "Fever",
			Status:     LeaveApproved,
			ReviewedBy: "owner",
			ReviewedAt: clock.Now().Format(reviewedAtLayout),
			Comments:   "Take care.",
		},
	}
}

// Seed salary structure: HRA 25% of base, special allowance 15%, PF 12%,
// tax 8%, LOP placeholder zero. Percentages are rounded to the nearest
// currency unit.
func buildSeedSalary(emp Employee, month string) SalaryMonth {
	base := decimal.NewFromInt(emp.SalaryMonthly)
	pct := func(p string) int64 {
		return base.Mul(decimal.RequireFromString(p)).Round(0).IntPart()
	}
	return SalaryMonth{
		EmployeeID: emp.ID,
		Month:      month,
		Base:       emp.SalaryMonthly,
		HRA:        pct("0.25"),
		Special:    pct("0.15"),
		Deductions: Deductions{
			PF:  pct("0.12"),
			Tax: pct("0.08"),
			LOP: 0,
		},
	}
}

// SeedSnapshot builds the initial store state: fixed employees and holidays,
// empty attendance, two seeded leaves, and one salary record per employee for
// the current month.
func SeedSnapshot(clock Clock) *Snapshot {
	employees := seedEmployees()
	month := calendar.MonthKey(clock.Now())

	salaries := make([]SalaryMonth, 0, len(employees))
	for _, e := range employees {
		salaries = append(salaries, buildSeedSalary(e, month))
	}

	return &Snapshot{
		Employees:  employees,
		Holidays:   seedHolidays(),
		Attendance: []AttendanceRecord{},
		Leaves:     seedLeaves(clock),
		Salaries:   salaries,
	}
}
