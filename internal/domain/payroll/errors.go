package payroll

import "errors"

var (
	// Configuration preconditions; surfaced verbatim, never retried.
	ErrPayrollConfigMissing = errors.New("employee is missing monthly salary or shift start time")
	ErrNoWorkingDays        = errors.New("pay period contains no working days")

	// Duplicate-period idempotence guard.
	ErrPayrollAlreadyExists = errors.New("a payroll already exists for this employee and period")

	ErrPayrollNotFound    = errors.New("payroll record not found")
	ErrPayrollAlreadyPaid = errors.New("payroll record already paid, cannot modify")
)
