package leave

import "context"

// LeaveRepository defines data access methods for leave requests.
type LeaveRepository interface {
	Create(ctx context.Context, req Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	List(ctx context.Context, filter ListFilter) ([]Request, int64, error)

	// ListApprovedByEmployee returns all approved requests for an employee.
	ListApprovedByEmployee(ctx context.Context, employeeID string) ([]Request, error)

	UpdateStatus(ctx context.Context, id string, status RequestStatus) (Request, error)
	UpdateLeaveType(ctx context.Context, id string, leaveType LeaveType) (Request, error)
	Delete(ctx context.Context, id string) error
}
