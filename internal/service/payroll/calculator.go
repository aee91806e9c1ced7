package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	attendancedomain "github.com/brewhr/brewhr-backend-go/internal/domain/attendance"
	"github.com/brewhr/brewhr-backend-go/internal/domain/employee"
	leavedomain "github.com/brewhr/brewhr-backend-go/internal/domain/leave"
	"github.com/brewhr/brewhr-backend-go/internal/domain/payroll"
	attendancesvc "github.com/brewhr/brewhr-backend-go/internal/service/attendance"
	leavesvc "github.com/brewhr/brewhr-backend-go/internal/service/leave"
	"github.com/brewhr/brewhr-backend-go/internal/service/shift"
)

// Calculator turns raw attendance and leave data into a payroll
// snapshot. It is pure; persistence and duplicate guarding live in the
// service.
type Calculator struct {
	Policy      *shift.Policy
	LatePenalty decimal.Decimal
	Loc         *time.Location
}

// Breakdown is the computed portion of a payroll record before tips and
// manual deductions exist.
type Breakdown struct {
	TotalWorkingDays      int
	ActualDaysWorked      int
	PerDaySalary          decimal.Decimal
	LateDays              int
	LateDeductions        decimal.Decimal
	UnpaidLeaveDays       int
	UnpaidLeaveDeductions decimal.Decimal
	PaidMadeUpLeaveDays   int
	FinalSalary           decimal.Decimal
}

// Calculate computes the payroll breakdown for one employee over the
// inclusive period [periodStart, periodEnd].
//
// PerDaySalary is rounded to two decimals once, and every downstream
// figure uses the rounded value, so recomputing FinalSalary from the
// stored snapshot always reproduces it exactly.
func (c *Calculator) Calculate(
	emp employee.Employee,
	periodStart, periodEnd time.Time,
	logs []attendancedomain.Log,
	leaves []leavedomain.Request,
) (Breakdown, error) {
	if !emp.HasPayrollConfig() {
		return Breakdown{}, payroll.ErrPayrollConfigMissing
	}

	offDay, err := shift.WeekdayIndex(emp.WeeklyOffDay)
	if err != nil {
		return Breakdown{}, err
	}

	totalWorkingDays := countWorkingDays(periodStart, periodEnd, offDay, c.Loc)
	if totalWorkingDays == 0 {
		return Breakdown{}, payroll.ErrNoWorkingDays
	}

	perDaySalary := emp.MonthlySalary.Div(decimal.NewFromInt(int64(totalWorkingDays))).Round(2)

	worked := attendancesvc.Aggregate(logs, periodStart, periodEnd.AddDate(0, 0, 1), c.Loc)

	lateDays := 0
	for _, day := range worked {
		late, err := c.Policy.IsLate(day.ClockIn.In(c.Loc), *emp.ShiftStartTime)
		if err != nil {
			return Breakdown{}, err
		}
		if late {
			lateDays++
		}
	}

	unpaidDays, paidMadeUpDays := leavesvc.CountLeaveDays(leaves, periodStart, periodEnd, c.Loc)

	actualDaysWorked := len(worked)
	lateDeductions := c.LatePenalty.Mul(decimal.NewFromInt(int64(lateDays)))
	unpaidLeaveDeductions := perDaySalary.Mul(decimal.NewFromInt(int64(unpaidDays)))

	finalSalary := perDaySalary.Mul(decimal.NewFromInt(int64(actualDaysWorked))).
		Sub(lateDeductions).
		Sub(unpaidLeaveDeductions)

	return Breakdown{
		TotalWorkingDays:      totalWorkingDays,
		ActualDaysWorked:      actualDaysWorked,
		PerDaySalary:          perDaySalary,
		LateDays:              lateDays,
		LateDeductions:        lateDeductions,
		UnpaidLeaveDays:       unpaidDays,
		UnpaidLeaveDeductions: unpaidLeaveDeductions,
		PaidMadeUpLeaveDays:   paidMadeUpDays,
		FinalSalary:           finalSalary,
	}, nil
}

// Recalculate recomputes the final salary of an existing record from
// its stored day counts and money fields. Attendance and leave are
// never re-read here.
func Recalculate(record payroll.Payroll) decimal.Decimal {
	return record.PerDaySalary.Mul(decimal.NewFromInt(int64(record.ActualDaysWorked))).
		Add(record.Tips).
		Sub(record.Deductions).
		Sub(record.LateDeductions).
		Sub(record.UnpaidLeaveDeductions)
}

// countWorkingDays counts the days in the inclusive range that do not
// fall on the weekly off day.
func countWorkingDays(from, to time.Time, offDay int, loc *time.Location) int {
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, loc)
	end := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, loc)

	count := 0
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if int(day.Weekday()) != offDay {
			count++
		}
	}
	return count
}
