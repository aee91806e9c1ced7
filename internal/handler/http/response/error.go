package response

import (
	"errors"
	"net/http"

	"github.com/brewhr/brewhr-backend-go/internal/domain/attendance"
	"github.com/brewhr/brewhr-backend-go/internal/domain/auth"
	"github.com/brewhr/brewhr-backend-go/internal/domain/consumption"
	"github.com/brewhr/brewhr-backend-go/internal/domain/employee"
	"github.com/brewhr/brewhr-backend-go/internal/domain/leave"
	"github.com/brewhr/brewhr-backend-go/internal/domain/payroll"
	"github.com/brewhr/brewhr-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")

	// Employee
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeNameExists):
		Conflict(w, "An employee with this name already exists")

	// Attendance
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Employee already has an open session")
	case errors.Is(err, attendance.ErrNotClockedIn):
		Conflict(w, "Employee has no open session")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance log not found")
	case errors.Is(err, attendance.ErrClockOutBeforeIn):
		BadRequest(w, "Clock-out must not be before clock-in", nil)

	// Leave
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrNotConvertible):
		Conflict(w, "Only approved paid made-up requests can be converted")

	// Payroll
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPayrollAlreadyExists):
		Conflict(w, "A payroll already exists for this employee and period")
	case errors.Is(err, payroll.ErrPayrollAlreadyPaid):
		Conflict(w, "Payroll record already paid")
	case errors.Is(err, payroll.ErrPayrollConfigMissing):
		BadRequest(w, "Employee is missing monthly salary or shift start time", nil)
	case errors.Is(err, payroll.ErrNoWorkingDays):
		BadRequest(w, "Pay period contains no working days", nil)

	// Consumption
	case errors.Is(err, consumption.ErrLogNotFound):
		NotFound(w, "Consumption log not found")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
