package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// Payroll is a generated snapshot for one employee and one inclusive pay
// period. Day counts and per-day salary are frozen at generation time;
// later edits only move Tips, Deductions, Status and PaymentDate, with
// FinalSalary recomputed from the stored fields.
type Payroll struct {
	ID                    string
	EmployeeID            string
	PayPeriodStart        time.Time // date only, local calendar
	PayPeriodEnd          time.Time // inclusive
	MonthlySalary         decimal.Decimal
	TotalWorkingDays      int
	ActualDaysWorked      int
	PerDaySalary          decimal.Decimal
	LateDays              int
	LateDeductions        decimal.Decimal
	UnpaidLeaveDays       int
	UnpaidLeaveDeductions decimal.Decimal
	PaidMadeUpLeaveDays   int
	Tips                  decimal.Decimal
	Deductions            decimal.Decimal
	FinalSalary           decimal.Decimal
	Status                Status
	GeneratedAt           time.Time
	PaymentDate           *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time

	// Joined fields
	EmployeeName *string
}
