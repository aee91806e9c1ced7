package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance logs.
type AttendanceRepository interface {
	Create(ctx context.Context, log Log) (Log, error)

	GetByID(ctx context.Context, id string) (Log, error)

	// GetOpenSession returns the employee's log without a clock-out, if any.
	GetOpenSession(ctx context.Context, employeeID string) (Log, error)

	// ListByEmployeeRange returns logs whose clock-in falls in [from, to),
	// ordered by clock-in then insertion order.
	ListByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]Log, error)

	// ListOpenSessionsBefore returns open logs whose clock-in is before the cutoff.
	ListOpenSessionsBefore(ctx context.Context, cutoff time.Time) ([]Log, error)

	List(ctx context.Context, filter ListFilter) ([]Log, int64, error)

	Update(ctx context.Context, log Log) (Log, error)

	Delete(ctx context.Context, id string) error
}
