package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID                string
	FullName          string
	WeeklyOffDay      string  // weekday name, e.g. "Tuesday"
	StandardWorkHours float64 // expected hours per shift
	ShiftStartTime    *string // "HH:MM" local wall clock
	ShiftEndTime      *string
	MonthlySalary     *decimal.Decimal
	PayFrequency      PayFrequency
	PayStartDate      *time.Time // anchor for pay-period boundaries
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         *time.Time
}

type PayFrequency string

const (
	PayFrequencyMonthly  PayFrequency = "monthly"
	PayFrequencyBiWeekly PayFrequency = "bi-weekly"
	PayFrequencyWeekly   PayFrequency = "weekly"
)

// HasPayrollConfig reports whether the employee carries the fields
// payroll generation requires. Absence is a hard precondition failure,
// never a silent default.
func (e Employee) HasPayrollConfig() bool {
	return e.MonthlySalary != nil && e.ShiftStartTime != nil && *e.ShiftStartTime != ""
}
