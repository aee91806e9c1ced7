package attendance

import "time"

// Log is one clock-in event. ClockOut stays nil while the employee is
// still on shift; the matching clock-out mutates it exactly once.
// After that the record only changes through manual admin edits.
type Log struct {
	ID         string
	EmployeeID string
	ClockIn    time.Time
	ClockOut   *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
}
