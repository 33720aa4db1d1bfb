package hr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emsdesk/hr-engine/hr"
)

func TestBuildPayslip_ReferenceFigures(t *testing.T) {
	// Gross 65000, 20 working days, 2 absent -> daily rate 3250, LOP 6500.
	emp := hr.Employee{ID: "e102", SalaryMonthly: 65000}
	stats := hr.MonthStats{WorkingDays: 20, Present: 18, Absent: 2}

	slip := hr.BuildPayslip(emp, nil, "2026-02", stats)

	assert.Equal(t, int64(3250), slip.DailyRate)
	assert.Equal(t, int64(6500), slip.LOP)
	// No salary record: gross line is zero and LOP is the only deduction.
	assert.Equal(t, int64(0), slip.Gross)
	assert.Equal(t, int64(6500), slip.Deductions)
	assert.Equal(t, int64(-6500), slip.NetPay)
}

func TestBuildPayslip_WithSalaryRecord(t *testing.T) {
	emp := hr.Employee{ID: "e102", SalaryMonthly: 65000}
	salary := &hr.SalaryMonth{
		EmployeeID: "e102", Month: "2026-02",
		Base: 65000, HRA: 16250, Special: 9750,
		Deductions: hr.Deductions{PF: 7800, Tax: 5200},
	}
	stats := hr.MonthStats{WorkingDays: 20, Present: 19, Absent: 1}

	slip := hr.BuildPayslip(emp, salary, "2026-02", stats)

	gross := int64(65000 + 16250 + 9750) // 91000
	assert.Equal(t, gross, slip.Gross)
	assert.Equal(t, int64(4550), slip.DailyRate) // 91000 / 20
	assert.Equal(t, int64(4550), slip.LOP)
	assert.Equal(t, int64(7800+5200+4550), slip.Deductions)
	assert.Equal(t, gross-(7800+5200+4550), slip.NetPay)
}

func TestBuildPayslip_RoundsLOPToNearestUnit(t *testing.T) {
	// 91000 / 21 working days = 4333.33..; 2 absent -> 8666.66.. -> 8667.
	emp := hr.Employee{ID: "e102", SalaryMonthly: 65000}
	salary := &hr.SalaryMonth{Base: 65000, HRA: 16250, Special: 9750}
	stats := hr.MonthStats{WorkingDays: 21, Absent: 2}

	slip := hr.BuildPayslip(emp, salary, "2026-03", stats)
	assert.Equal(t, int64(8667), slip.LOP)
	assert.Equal(t, int64(4333), slip.DailyRate)
}

func TestBuildPayslip_ZeroWorkingDays(t *testing.T) {
	emp := hr.Employee{ID: "e102", SalaryMonthly: 65000}
	stats := hr.MonthStats{}

	slip := hr.BuildPayslip(emp, nil, "2026-02", stats)
	assert.Zero(t, slip.DailyRate)
	assert.Zero(t, slip.LOP)
}

func TestBuildPayslip_NoAbsences(t *testing.T) {
	emp := hr.Employee{ID: "e102", SalaryMonthly: 65000}
	salary := &hr.SalaryMonth{Base: 65000, HRA: 16250, Special: 9750, Deductions: hr.Deductions{PF: 7800, Tax: 5200}}
	stats := hr.MonthStats{WorkingDays: 20, Present: 20}

	slip := hr.BuildPayslip(emp, salary, "2026-02", stats)
	assert.Zero(t, slip.LOP)
	assert.Equal(t, int64(91000-13000), slip.NetPay)
}

func TestPayslipFor_FromSnapshot(t *testing.T) {
	s, _ := newTestStore(t)

	// Mark every working day absent except one present punch and one
	// approved leave day; LOP covers the rest.
	require.NoError(t, s.ClockIn("e102", "2026-02-03", "09:00"))

	slip, err := s.Snapshot().PayslipFor("e102", "2026-02")
	require.NoError(t, err)

	assert.Equal(t, "e102", slip.EmployeeID)
	require.NotNil(t, slip.Salary)
	assert.Equal(t, int64(91000), slip.Gross)
	assert.Equal(t, 1, slip.Stats.Present)
	assert.Equal(t, 19, slip.Stats.Absent)
	// 91000/20 = 4550 per day, 19 absent days.
	assert.Equal(t, int64(4550*19), slip.LOP)
}

func TestPayslipFor_DanglingEmployee(t *testing.T) {
	s, _ := newTestStore(t)

	slip, err := s.Snapshot().PayslipFor("ghost", "2026-02")
	require.NoError(t, err)
	assert.Nil(t, slip.Salary)
	assert.Zero(t, slip.Gross)
	assert.Zero(t, slip.LOP, "no salary basis for an unknown employee")
}
