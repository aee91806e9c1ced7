package employee

import (
	"github.com/brewhr/brewhr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	FullName          string           `json:"full_name"`
	WeeklyOffDay      string           `json:"weekly_off_day"`
	StandardWorkHours float64          `json:"standard_work_hours"`
	ShiftStartTime    *string          `json:"shift_start_time,omitempty"`
	ShiftEndTime      *string          `json:"shift_end_time,omitempty"`
	MonthlySalary     *decimal.Decimal `json:"monthly_salary,omitempty"`
	PayFrequency      *string          `json:"pay_frequency,omitempty"`
	PayStartDate      *string          `json:"pay_start_date,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if _, ok := validator.ParseWeekday(r.WeeklyOffDay); !ok {
		errs = append(errs, validator.ValidationError{Field: "weekly_off_day", Message: "must be a weekday name (Sunday..Saturday)"})
	}
	if r.StandardWorkHours <= 0 || r.StandardWorkHours > 24 {
		errs = append(errs, validator.ValidationError{Field: "standard_work_hours", Message: "must be between 0 and 24"})
	}
	if r.ShiftStartTime != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.ShiftStartTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "shift_start_time", Message: "must be in HH:MM format"})
		}
	}
	if r.ShiftEndTime != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.ShiftEndTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "shift_end_time", Message: "must be in HH:MM format"})
		}
	}
	if r.MonthlySalary != nil && r.MonthlySalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "monthly_salary", Message: "must be non-negative"})
	}
	if r.PayFrequency != nil {
		switch PayFrequency(*r.PayFrequency) {
		case PayFrequencyMonthly, PayFrequencyBiWeekly, PayFrequencyWeekly:
		default:
			errs = append(errs, validator.ValidationError{Field: "pay_frequency", Message: "must be 'monthly', 'bi-weekly' or 'weekly'"})
		}
	}
	if r.PayStartDate != nil {
		if _, ok := validator.IsValidDate(*r.PayStartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "pay_start_date", Message: "must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID                string           `json:"-"`
	FullName          *string          `json:"full_name,omitempty"`
	WeeklyOffDay      *string          `json:"weekly_off_day,omitempty"`
	StandardWorkHours *float64         `json:"standard_work_hours,omitempty"`
	ShiftStartTime    *string          `json:"shift_start_time,omitempty"`
	ShiftEndTime      *string          `json:"shift_end_time,omitempty"`
	MonthlySalary     *decimal.Decimal `json:"monthly_salary,omitempty"`
	PayFrequency      *string          `json:"pay_frequency,omitempty"`
	PayStartDate      *string          `json:"pay_start_date,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "must not be empty"})
	}
	if r.WeeklyOffDay != nil {
		if _, ok := validator.ParseWeekday(*r.WeeklyOffDay); !ok {
			errs = append(errs, validator.ValidationError{Field: "weekly_off_day", Message: "must be a weekday name (Sunday..Saturday)"})
		}
	}
	if r.StandardWorkHours != nil && (*r.StandardWorkHours <= 0 || *r.StandardWorkHours > 24) {
		errs = append(errs, validator.ValidationError{Field: "standard_work_hours", Message: "must be between 0 and 24"})
	}
	if r.ShiftStartTime != nil && *r.ShiftStartTime != "" {
		if _, ok := validator.IsValidTimeOfDay(*r.ShiftStartTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "shift_start_time", Message: "must be in HH:MM format"})
		}
	}
	if r.ShiftEndTime != nil && *r.ShiftEndTime != "" {
		if _, ok := validator.IsValidTimeOfDay(*r.ShiftEndTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "shift_end_time", Message: "must be in HH:MM format"})
		}
	}
	if r.MonthlySalary != nil && r.MonthlySalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "monthly_salary", Message: "must be non-negative"})
	}
	if r.PayFrequency != nil {
		switch PayFrequency(*r.PayFrequency) {
		case PayFrequencyMonthly, PayFrequencyBiWeekly, PayFrequencyWeekly:
		default:
			errs = append(errs, validator.ValidationError{Field: "pay_frequency", Message: "must be 'monthly', 'bi-weekly' or 'weekly'"})
		}
	}
	if r.PayStartDate != nil {
		if _, ok := validator.IsValidDate(*r.PayStartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "pay_start_date", Message: "must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID                string           `json:"id"`
	FullName          string           `json:"full_name"`
	WeeklyOffDay      string           `json:"weekly_off_day"`
	StandardWorkHours float64          `json:"standard_work_hours"`
	ShiftStartTime    *string          `json:"shift_start_time,omitempty"`
	ShiftEndTime      *string          `json:"shift_end_time,omitempty"`
	MonthlySalary     *decimal.Decimal `json:"monthly_salary,omitempty"`
	PayFrequency      string           `json:"pay_frequency"`
	PayStartDate      *string          `json:"pay_start_date,omitempty"`
}

type ListEmployeeResponse struct {
	Data       []EmployeeResponse `json:"data"`
	TotalCount int64              `json:"total_count"`
}
