package attendance

import "context"

// AttendanceService defines business logic for attendance operations.
type AttendanceService interface {
	// ClockIn opens a session for the employee; rejects double clock-in.
	ClockIn(ctx context.Context, req ClockInRequest) (LogResponse, error)

	// ClockOut closes the employee's open session.
	ClockOut(ctx context.Context, req ClockOutRequest) (LogResponse, error)

	// List retrieves raw logs with filters (admin view).
	List(ctx context.Context, filter ListFilter) (ListLogResponse, error)

	// UpdateLog is the manual admin edit of a raw log.
	UpdateLog(ctx context.Context, req UpdateLogRequest) (LogResponse, error)

	// DeleteLog removes a raw log.
	DeleteLog(ctx context.Context, id string) error

	// MonthSummary aggregates one employee's month with fractional hours.
	MonthSummary(ctx context.Context, employeeID string, month, year int) (MonthSummaryResponse, error)
}
