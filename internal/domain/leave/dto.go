package leave

import (
	"github.com/brewhr/brewhr-backend-go/internal/pkg/validator"
)

type CreateRequestRequest struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"` // YYYY-MM-DD
	EndDate    string `json:"end_date"`   // YYYY-MM-DD, inclusive
	LeaveType  string `json:"leave_type"`
	Reason     string `json:"reason"`
}

func (r *CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be in YYYY-MM-DD format"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be in YYYY-MM-DD format"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}
	switch LeaveType(r.LeaveType) {
	case LeaveTypeUnpaid, LeaveTypePaidMadeUp:
	default:
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "must be 'Unpaid' or 'Paid (Made Up)'"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
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

type RequestResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	LeaveType    string `json:"leave_type"`
	Reason       string `json:"reason"`
	Status       string `json:"status"`
}

type ListRequestResponse struct {
	Data       []RequestResponse `json:"data"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}
