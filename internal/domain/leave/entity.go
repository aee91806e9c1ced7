package leave

import "time"

type LeaveType string

const (
	LeaveTypeUnpaid     LeaveType = "Unpaid"
	LeaveTypePaidMadeUp LeaveType = "Paid (Made Up)"
)

type RequestStatus string

const (
	StatusPending  RequestStatus = "Pending"
	StatusApproved RequestStatus = "Approved"
	StatusDenied   RequestStatus = "Denied"
)

// Request is an inclusive date-range leave request. Only Approved+Unpaid
// requests reduce payable days; Approved+Paid (Made Up) requests are
// tracked separately and may be converted to Unpaid by an admin.
type Request struct {
	ID         string
	EmployeeID string
	StartDate  time.Time // date only, local calendar
	EndDate    time.Time // inclusive; never before StartDate
	LeaveType  LeaveType
	Reason     string
	Status     RequestStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
}
