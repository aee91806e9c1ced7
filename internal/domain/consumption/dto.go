package consumption

import (
	"time"

	"github.com/brewhr/brewhr-backend-go/internal/pkg/validator"
)

type CreateLogRequest struct {
	EmployeeID string  `json:"employee_id"`
	ItemName   string  `json:"item_name"`
	LoggedAt   *string `json:"logged_at,omitempty"` // RFC3339, defaults to now
}

func (r *CreateLogRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.ItemName) {
		errs = append(errs, validator.ValidationError{Field: "item_name", Message: "is required"})
	}
	if r.LoggedAt != nil {
		if _, ok := validator.IsValidDateTime(*r.LoggedAt); !ok {
			errs = append(errs, validator.ValidationError{Field: "logged_at", Message: "must be an RFC3339 timestamp"})
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
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	ItemName     string `json:"item_name"`
	LoggedAt     string `json:"logged_at"`
}

type ListLogResponse struct {
	Data       []LogResponse `json:"data"`
	TotalCount int64         `json:"total_count"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
}

// AllowanceResponse reports remaining monthly quota per category.
// Negative values mean over allowance; the UI uses that to demand payment.
type AllowanceResponse struct {
	EmployeeID string `json:"employee_id"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
	Drinks     int    `json:"drinks"`
	Meals      int    `json:"meals"`
}
