/*
payroll.go - Loss-of-pay salary derivation

Presentation-facing computation, not a store mutation. The stored LOP field
in SalaryMonth is a placeholder; the authoritative figure is derived here
from the month statistics:

  dailyRate = gross / workingDays      (0 when workingDays is 0)
  LOP       = round(absent * dailyRate) to the nearest currency unit
  net       = gross - (pf + tax + LOP)

decimal.Decimal keeps the division exact until the single LOP rounding, so
results match the reference outputs (gross 65000, 20 working days, 2 absent
-> daily rate 3250, LOP 6500).
*/
package hr

import (
	"github.com/shopspring/decimal"
)

// Payslip is the derived monthly salary view for one employee.
type Payslip struct {
	EmployeeID string       `json:"employeeId"`
	Month      string       `json:"month"`
	Salary     *SalaryMonth `json:"salary,omitempty"` // nil when no record for the month
	Stats      MonthStats   `json:"stats"`

	Gross      int64 `json:"gross"`
	DailyRate  int64 `json:"dailyRate"` // rounded, display only
	LOP        int64 `json:"lop"`
	Deductions int64 `json:"deductions"` // pf + tax + LOP
	NetPay     int64 `json:"netPay"`
}

// BuildPayslip derives the payslip for one employee and month. With no
// salary record the daily rate falls back to the employee's monthly salary,
// the gross line is zero, and the only deduction is LOP — mirroring how the
// salary view renders a missing record.
func BuildPayslip(emp Employee, salary *SalaryMonth, month string, stats MonthStats) Payslip {
	// Rate basis: salary gross when present, otherwise the employee's
	// monthly figure.
	rateGross := decimal.NewFromInt(emp.SalaryMonthly)
	if salary != nil {
		rateGross = decimal.NewFromInt(salary.Gross())
	}

	dailyRate := decimal.Zero
	if stats.WorkingDays > 0 {
		dailyRate = rateGross.Div(decimal.NewFromInt(int64(stats.WorkingDays)))
	}

	lop := dailyRate.Mul(decimal.NewFromInt(int64(stats.Absent))).Round(0).IntPart()

	var gross, deductions int64
	if salary != nil {
		gross = salary.Gross()
		deductions = salary.Deductions.PF + salary.Deductions.Tax + lop
	} else {
		deductions = lop
	}

	return Payslip{
		EmployeeID: emp.ID,
		Month:      month,
		Salary:     salary,
		Stats:      stats,
		Gross:      gross,
		DailyRate:  dailyRate.Round(0).IntPart(),
		LOP:        lop,
		Deductions: deductions,
		NetPay:     gross - deductions,
	}
}

// PayslipFor computes stats and derives the payslip from a snapshot.
func (s *Snapshot) PayslipFor(employeeID, month string) (Payslip, error) {
	stats, err := s.MonthStatsFor(employeeID, month)
	if err != nil {
		return Payslip{}, err
	}

	emp, _ := s.Employee(employeeID) // dangling ids tolerated: zero salary basis

	var salary *SalaryMonth
	if rec, ok := s.SalaryFor(employeeID, month); ok {
		salary = &rec
	}
	slip := BuildPayslip(emp, salary, month, stats)
	slip.EmployeeID = employeeID
	return slip, nil
}
