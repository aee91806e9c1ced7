package payroll

import "context"

// PayrollService defines business logic for payroll records.
type PayrollService interface {
	// Generate produces one immutable payroll snapshot for an employee
	// and period, refusing duplicates for the exact same period.
	Generate(ctx context.Context, req GenerateRequest) (PayrollResponse, error)

	Get(ctx context.Context, id string) (PayrollResponse, error)
	List(ctx context.Context, filter ListFilter) (ListPayrollResponse, error)

	// Update edits tips/deductions and recomputes the final salary from
	// the stored day counts.
	Update(ctx context.Context, req UpdateRequest) (PayrollResponse, error)

	// MarkPaid moves pending → paid. There is no way back.
	MarkPaid(ctx context.Context, req MarkPaidRequest) (PayrollResponse, error)

	Delete(ctx context.Context, id string) error
}
