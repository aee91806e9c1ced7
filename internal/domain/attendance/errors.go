package attendance

import "errors"

var (
	ErrAlreadyClockedIn   = errors.New("employee is already clocked in")
	ErrNotClockedIn       = errors.New("employee has no open attendance session")
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrClockOutBeforeIn   = errors.New("clock-out must not be before clock-in")
)
