package attendance

import (
	"time"

	"github.com/brewhr/brewhr-backend-go/internal/pkg/validator"
)

type ClockInRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClockOutRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateLogRequest is the manual admin edit of a raw log.
type UpdateLogRequest struct {
	ID       string  `json:"-"`
	ClockIn  *string `json:"clock_in,omitempty"`  // RFC3339
	ClockOut *string `json:"clock_out,omitempty"` // RFC3339; empty string reopens the session
}

func (r *UpdateLogRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.ClockIn != nil {
		if _, ok := validator.IsValidDateTime(*r.ClockIn); !ok {
			errs = append(errs, validator.ValidationError{Field: "clock_in", Message: "must be an RFC3339 timestamp"})
		}
	}
	if r.ClockOut != nil && *r.ClockOut != "" {
		if _, ok := validator.IsValidDateTime(*r.ClockOut); !ok {
			errs = append(errs, validator.ValidationError{Field: "clock_out", Message: "must be an RFC3339 timestamp"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListFilter struct {
	EmployeeID *string
	From       *time.Time
	To         *time.Time
	Page       int
	Limit      int
}

type LogResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	ClockIn      string  `json:"clock_in"`
	ClockOut     *string `json:"clock_out,omitempty"`
}

type ListLogResponse struct {
	Data       []LogResponse `json:"data"`
	TotalCount int64         `json:"total_count"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
}

// WorkedDayResponse is one aggregated calendar day.
type WorkedDayResponse struct {
	Date         string  `json:"date"`
	ClockIn      string  `json:"clock_in"`
	ClockOut     string  `json:"clock_out"`
	PreciseHours float64 `json:"hours_worked"`
}

// MonthSummaryResponse is the UI-facing month view; hours are fractional
// here, unlike the whole-hour figures feeding payroll.
type MonthSummaryResponse struct {
	EmployeeID string              `json:"employee_id"`
	Month      int                 `json:"month"`
	Year       int                 `json:"year"`
	DaysWorked int                 `json:"days_worked"`
	TotalHours float64             `json:"total_hours"`
	Days       []WorkedDayResponse `json:"days"`
}
