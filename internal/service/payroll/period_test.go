package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewhr/brewhr-backend-go/internal/domain/employee"
	"github.com/brewhr/brewhr-backend-go/internal/domain/payroll"
)

func employeeWithPay(freq employee.PayFrequency, payStart time.Time) employee.Employee {
	emp := barista()
	emp.PayFrequency = freq
	emp.PayStartDate = &payStart
	return emp
}

func TestPeriodFor_Weekly(t *testing.T) {
	anchor := time.Date(2026, 4, 1, 0, 0, 0, 0, kolkata)
	emp := employeeWithPay(employee.PayFrequencyWeekly, anchor)

	start, end, err := PeriodFor(emp, time.Date(2026, 4, 17, 12, 0, 0, 0, kolkata), kolkata)
	require.NoError(t, err)

	assert.Equal(t, "2026-04-15", start.Format("2006-01-02"))
	assert.Equal(t, "2026-04-21", end.Format("2006-01-02"))
}

func TestPeriodFor_BiWeeklyOnAnchorDay(t *testing.T) {
	anchor := time.Date(2026, 4, 1, 0, 0, 0, 0, kolkata)
	emp := employeeWithPay(employee.PayFrequencyBiWeekly, anchor)

	start, end, err := PeriodFor(emp, anchor, kolkata)
	require.NoError(t, err)

	assert.Equal(t, "2026-04-01", start.Format("2006-01-02"))
	assert.Equal(t, "2026-04-14", end.Format("2006-01-02"))
}

func TestPeriodFor_RefBeforeAnchor(t *testing.T) {
	anchor := time.Date(2026, 4, 15, 0, 0, 0, 0, kolkata)
	emp := employeeWithPay(employee.PayFrequencyWeekly, anchor)

	start, end, err := PeriodFor(emp, time.Date(2026, 4, 10, 0, 0, 0, 0, kolkata), kolkata)
	require.NoError(t, err)

	assert.Equal(t, "2026-04-08", start.Format("2006-01-02"))
	assert.Equal(t, "2026-04-14", end.Format("2006-01-02"))
}

func TestPeriodFor_WeeklyAcrossDSTTransition(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// DST starts 2026-03-08 in New York, so the week after the anchor
	// spans only 167 wall-clock hours. The cycle boundary must still
	// land exactly seven calendar days after the anchor.
	anchor := time.Date(2026, 3, 4, 0, 0, 0, 0, newYork)
	emp := employeeWithPay(employee.PayFrequencyWeekly, anchor)

	start, end, err := PeriodFor(emp, time.Date(2026, 3, 11, 0, 0, 0, 0, newYork), newYork)
	require.NoError(t, err)

	assert.Equal(t, "2026-03-11", start.Format("2006-01-02"))
	assert.Equal(t, "2026-03-17", end.Format("2006-01-02"))
}

func TestPeriodFor_Monthly(t *testing.T) {
	anchor := time.Date(2026, 1, 15, 0, 0, 0, 0, kolkata)
	emp := employeeWithPay(employee.PayFrequencyMonthly, anchor)

	start, end, err := PeriodFor(emp, time.Date(2026, 4, 20, 0, 0, 0, 0, kolkata), kolkata)
	require.NoError(t, err)

	assert.Equal(t, "2026-04-15", start.Format("2006-01-02"))
	assert.Equal(t, "2026-05-14", end.Format("2006-01-02"))
}

func TestPeriodFor_MonthlyClampsShortMonths(t *testing.T) {
	anchor := time.Date(2026, 1, 31, 0, 0, 0, 0, kolkata)
	emp := employeeWithPay(employee.PayFrequencyMonthly, anchor)

	// February 2026 has 28 days; the cycle starting Jan 31 ends the day
	// before the clamped Feb 28 boundary.
	start, end, err := PeriodFor(emp, time.Date(2026, 2, 10, 0, 0, 0, 0, kolkata), kolkata)
	require.NoError(t, err)

	assert.Equal(t, "2026-01-31", start.Format("2006-01-02"))
	assert.Equal(t, "2026-02-27", end.Format("2006-01-02"))
}

func TestPeriodFor_MissingPayStartDate(t *testing.T) {
	emp := barista()
	emp.PayStartDate = nil

	_, _, err := PeriodFor(emp, time.Date(2026, 4, 1, 0, 0, 0, 0, kolkata), kolkata)
	assert.ErrorIs(t, err, payroll.ErrPayrollConfigMissing)
}
