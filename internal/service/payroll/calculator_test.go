package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewhr/brewhr-backend-go/internal/config"
	attendancedomain "github.com/brewhr/brewhr-backend-go/internal/domain/attendance"
	"github.com/brewhr/brewhr-backend-go/internal/domain/employee"
	leavedomain "github.com/brewhr/brewhr-backend-go/internal/domain/leave"
	"github.com/brewhr/brewhr-backend-go/internal/domain/payroll"
	"github.com/brewhr/brewhr-backend-go/internal/service/shift"
)

var kolkata = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		panic(err)
	}
	return loc
}()

func newTestCalculator(t *testing.T) *Calculator {
	t.Helper()
	policy, err := shift.NewPolicy(config.ShiftConfig{
		EarlyBirdCutoff:       "10:15",
		EarlyBirdReductionMin: 10,
		LateBufferMin:         10,
	})
	require.NoError(t, err)
	return &Calculator{
		Policy:      policy,
		LatePenalty: decimal.NewFromInt(50),
		Loc:         kolkata,
	}
}

func barista() employee.Employee {
	salary := decimal.NewFromInt(30000)
	shiftStart := "10:00"
	return employee.Employee{
		ID:                "emp-1",
		FullName:          "Asha Rao",
		WeeklyOffDay:      "Tuesday",
		StandardWorkHours: 8,
		ShiftStartTime:    &shiftStart,
		MonthlySalary:     &salary,
		PayFrequency:      employee.PayFrequencyMonthly,
	}
}

func aprilPeriod() (time.Time, time.Time) {
	return time.Date(2026, 4, 1, 0, 0, 0, 0, kolkata),
		time.Date(2026, 4, 30, 0, 0, 0, 0, kolkata)
}

func completedLog(day, inHour, inMin int) attendancedomain.Log {
	in := time.Date(2026, 4, day, inHour, inMin, 0, 0, kolkata)
	out := in.Add(8 * time.Hour)
	return attendancedomain.Log{EmployeeID: "emp-1", ClockIn: in, ClockOut: &out}
}

// aprilLogs builds a full month of attendance: every working day of
// April 2026 except the skipped ones, clocking in at 09:30, with day 10
// clocked in at 10:21 (past the 10:00 start plus 10 minute buffer).
func aprilLogs(skip ...int) []attendancedomain.Log {
	skipped := make(map[int]bool, len(skip))
	for _, d := range skip {
		skipped[d] = true
	}

	var logs []attendancedomain.Log
	for day := 1; day <= 30; day++ {
		date := time.Date(2026, 4, day, 0, 0, 0, 0, kolkata)
		if date.Weekday() == time.Tuesday || skipped[day] {
			continue
		}
		if day == 10 {
			logs = append(logs, completedLog(day, 10, 21))
			continue
		}
		logs = append(logs, completedLog(day, 9, 30))
	}
	return logs
}

func TestCalculate_FullMonth(t *testing.T) {
	calc := newTestCalculator(t)
	from, to := aprilPeriod()

	// 26 working days (30 days, 4 Tuesdays off). The employee misses
	// Apr 6 (unpaid leave) and Apr 30, works the other 24, and is late
	// once on Apr 10.
	logs := aprilLogs(6, 30)
	leaves := []leavedomain.Request{{
		EmployeeID: "emp-1",
		StartDate:  time.Date(2026, 4, 6, 0, 0, 0, 0, kolkata),
		EndDate:    time.Date(2026, 4, 6, 0, 0, 0, 0, kolkata),
		LeaveType:  leavedomain.LeaveTypeUnpaid,
		Status:     leavedomain.StatusApproved,
	}}

	breakdown, err := calc.Calculate(barista(), from, to, logs, leaves)
	require.NoError(t, err)

	assert.Equal(t, 26, breakdown.TotalWorkingDays)
	assert.Equal(t, 24, breakdown.ActualDaysWorked)
	assert.Equal(t, "1153.85", breakdown.PerDaySalary.StringFixed(2))
	assert.Equal(t, 1, breakdown.LateDays)
	assert.Equal(t, "50", breakdown.LateDeductions.String())
	assert.Equal(t, 1, breakdown.UnpaidLeaveDays)
	assert.Equal(t, "1153.85", breakdown.UnpaidLeaveDeductions.StringFixed(2))
	assert.Equal(t, 0, breakdown.PaidMadeUpLeaveDays)
	assert.Equal(t, "26488.55", breakdown.FinalSalary.StringFixed(2))
}

func TestCalculate_PaidMadeUpLeaveDoesNotDeduct(t *testing.T) {
	calc := newTestCalculator(t)
	from, to := aprilPeriod()

	logs := aprilLogs(6, 30)
	leaves := []leavedomain.Request{{
		EmployeeID: "emp-1",
		StartDate:  time.Date(2026, 4, 6, 0, 0, 0, 0, kolkata),
		EndDate:    time.Date(2026, 4, 6, 0, 0, 0, 0, kolkata),
		LeaveType:  leavedomain.LeaveTypePaidMadeUp,
		Status:     leavedomain.StatusApproved,
	}}

	breakdown, err := calc.Calculate(barista(), from, to, logs, leaves)
	require.NoError(t, err)

	assert.Equal(t, 0, breakdown.UnpaidLeaveDays)
	assert.True(t, breakdown.UnpaidLeaveDeductions.IsZero())
	assert.Equal(t, 1, breakdown.PaidMadeUpLeaveDays)
	// 1153.85 * 24 - 50
	assert.Equal(t, "27642.40", breakdown.FinalSalary.StringFixed(2))
}

func TestCalculate_MissingConfig(t *testing.T) {
	calc := newTestCalculator(t)
	from, to := aprilPeriod()

	emp := barista()
	emp.MonthlySalary = nil

	_, err := calc.Calculate(emp, from, to, nil, nil)
	assert.ErrorIs(t, err, payroll.ErrPayrollConfigMissing)
}

func TestCalculate_NoWorkingDays(t *testing.T) {
	calc := newTestCalculator(t)

	// A one-day period landing on the weekly off day.
	from := time.Date(2026, 4, 7, 0, 0, 0, 0, kolkata) // Tuesday
	to := from

	_, err := calc.Calculate(barista(), from, to, nil, nil)
	assert.ErrorIs(t, err, payroll.ErrNoWorkingDays)
}

func TestCalculate_OpenSessionContributesNothing(t *testing.T) {
	calc := newTestCalculator(t)
	from, to := aprilPeriod()

	open := attendancedomain.Log{
		EmployeeID: "emp-1",
		ClockIn:    time.Date(2026, 4, 2, 9, 30, 0, 0, kolkata),
	}

	breakdown, err := calc.Calculate(barista(), from, to, []attendancedomain.Log{open}, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, breakdown.ActualDaysWorked)
	assert.True(t, breakdown.FinalSalary.IsZero())
}

func TestRecalculate_ReproducesStoredFinalSalary(t *testing.T) {
	calc := newTestCalculator(t)
	from, to := aprilPeriod()

	logs := aprilLogs(6, 30)
	leaves := []leavedomain.Request{{
		EmployeeID: "emp-1",
		StartDate:  time.Date(2026, 4, 6, 0, 0, 0, 0, kolkata),
		EndDate:    time.Date(2026, 4, 6, 0, 0, 0, 0, kolkata),
		LeaveType:  leavedomain.LeaveTypeUnpaid,
		Status:     leavedomain.StatusApproved,
	}}

	breakdown, err := calc.Calculate(barista(), from, to, logs, leaves)
	require.NoError(t, err)

	record := payroll.Payroll{
		ActualDaysWorked:      breakdown.ActualDaysWorked,
		PerDaySalary:          breakdown.PerDaySalary,
		LateDeductions:        breakdown.LateDeductions,
		UnpaidLeaveDeductions: breakdown.UnpaidLeaveDeductions,
		Tips:                  decimal.Zero,
		Deductions:            decimal.Zero,
	}

	assert.True(t, Recalculate(record).Equal(breakdown.FinalSalary))

	record.Tips = decimal.NewFromInt(200)
	record.Deductions = decimal.NewFromInt(75)
	expected := breakdown.FinalSalary.Add(decimal.NewFromInt(125))
	assert.True(t, Recalculate(record).Equal(expected))
}
