package payroll

import (
	"context"
	"time"
)

// PayrollRepository defines data access methods for payroll records.
type PayrollRepository interface {
	Create(ctx context.Context, record Payroll) (Payroll, error)
	GetByID(ctx context.Context, id string) (Payroll, error)

	// GetByEmployeePeriod is the duplicate-generation guard lookup; the
	// period match is exact, not overlapping.
	GetByEmployeePeriod(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) (Payroll, error)

	List(ctx context.Context, filter ListFilter) ([]Payroll, int64, error)

	// UpdateMoneyFields persists tips, deductions, final salary, status
	// and payment date; everything else is immutable after generation.
	UpdateMoneyFields(ctx context.Context, record Payroll) (Payroll, error)

	Delete(ctx context.Context, id string) error
}
