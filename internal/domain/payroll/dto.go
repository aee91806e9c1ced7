package payroll

import (
	"github.com/brewhr/brewhr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type GenerateRequest struct {
	EmployeeID string `json:"employee_id"`
	// Optional explicit period; when omitted the period is derived from
	// the employee's pay frequency and pay start date.
	PeriodStart *string `json:"period_start,omitempty"` // YYYY-MM-DD
	PeriodEnd   *string `json:"period_end,omitempty"`   // YYYY-MM-DD, inclusive
}

func (r *GenerateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if (r.PeriodStart == nil) != (r.PeriodEnd == nil) {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "period_start and period_end must be provided together"})
	}
	if r.PeriodStart != nil && r.PeriodEnd != nil {
		start, startOK := validator.IsValidDate(*r.PeriodStart)
		if !startOK {
			errs = append(errs, validator.ValidationError{Field: "period_start", Message: "must be in YYYY-MM-DD format"})
		}
		end, endOK := validator.IsValidDate(*r.PeriodEnd)
		if !endOK {
			errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must be in YYYY-MM-DD format"})
		}
		if startOK && endOK && end.Before(start) {
			errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must not be before period_start"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateRequest edits the money fields of an existing record. Day counts
// are never re-derived here; only FinalSalary moves.
type UpdateRequest struct {
	ID         string           `json:"-"`
	Tips       *decimal.Decimal `json:"tips,omitempty"`
	Deductions *decimal.Decimal `json:"deductions,omitempty"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Tips != nil && r.Tips.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "tips", Message: "must be non-negative"})
	}
	if r.Deductions != nil && r.Deductions.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "deductions", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MarkPaidRequest struct {
	ID          string  `json:"-"`
	PaymentDate *string `json:"payment_date,omitempty"` // YYYY-MM-DD, defaults to today
}

func (r *MarkPaidRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.PaymentDate != nil {
		if _, ok := validator.IsValidDate(*r.PaymentDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "payment_date", Message: "must be in YYYY-MM-DD format"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListFilter struct {
	EmployeeID *string
	Status     *string
	Page       int
	Limit      int
}

type PayrollResponse struct {
	ID                    string          `json:"id"`
	EmployeeID            string          `json:"employee_id"`
	EmployeeName          string          `json:"employee_name,omitempty"`
	PayPeriodStart        string          `json:"pay_period_start"`
	PayPeriodEnd          string          `json:"pay_period_end"`
	MonthlySalary         decimal.Decimal `json:"monthly_salary"`
	TotalWorkingDays      int             `json:"total_working_days"`
	ActualDaysWorked      int             `json:"actual_days_worked"`
	PerDaySalary          decimal.Decimal `json:"per_day_salary"`
	LateDays              int             `json:"late_days"`
	LateDeductions        decimal.Decimal `json:"late_deductions"`
	UnpaidLeaveDays       int             `json:"unpaid_leave_days"`
	UnpaidLeaveDeductions decimal.Decimal `json:"unpaid_leave_deductions"`
	PaidMadeUpLeaveDays   int             `json:"paid_made_up_leave_days"`
	Tips                  decimal.Decimal `json:"tips"`
	Deductions            decimal.Decimal `json:"deductions"`
	FinalSalary           decimal.Decimal `json:"final_salary"`
	Status                string          `json:"status"`
	GeneratedAt           string          `json:"generated_at"`
	PaymentDate           *string         `json:"payment_date,omitempty"`
}

type ListPayrollResponse struct {
	Data       []PayrollResponse `json:"data"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}
