package leave

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewhr/brewhr-backend-go/internal/domain/employee"
	"github.com/brewhr/brewhr-backend-go/internal/domain/leave"
)

type fakeLeaveRepo struct {
	requests []leave.Request
	seq      int
}

func (f *fakeLeaveRepo) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	f.seq++
	req.ID = fmt.Sprintf("req-%d", f.seq)
	f.requests = append(f.requests, req)
	return req, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.Request, error) {
	for _, req := range f.requests {
		if req.ID == id {
			return req, nil
		}
	}
	return leave.Request{}, leave.ErrLeaveRequestNotFound
}

func (f *fakeLeaveRepo) List(ctx context.Context, filter leave.ListFilter) ([]leave.Request, int64, error) {
	return f.requests, int64(len(f.requests)), nil
}

func (f *fakeLeaveRepo) ListApprovedByEmployee(ctx context.Context, employeeID string) ([]leave.Request, error) {
	var out []leave.Request
	for _, req := range f.requests {
		if req.EmployeeID == employeeID && req.Status == leave.StatusApproved {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) UpdateStatus(ctx context.Context, id string, status leave.RequestStatus) (leave.Request, error) {
	for i := range f.requests {
		if f.requests[i].ID == id {
			f.requests[i].Status = status
			return f.requests[i], nil
		}
	}
	return leave.Request{}, leave.ErrLeaveRequestNotFound
}

func (f *fakeLeaveRepo) UpdateLeaveType(ctx context.Context, id string, leaveType leave.LeaveType) (leave.Request, error) {
	for i := range f.requests {
		if f.requests[i].ID == id {
			f.requests[i].LeaveType = leaveType
			return f.requests[i], nil
		}
	}
	return leave.Request{}, leave.ErrLeaveRequestNotFound
}

func (f *fakeLeaveRepo) Delete(ctx context.Context, id string) error {
	for i := range f.requests {
		if f.requests[i].ID == id {
			f.requests = append(f.requests[:i], f.requests[i+1:]...)
			return nil
		}
	}
	return leave.ErrLeaveRequestNotFound
}

type fakeEmployeeRepo struct{}

func (fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if id != "emp-1" {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return employee.Employee{ID: id, FullName: "Asha Rao"}, nil
}

func (fakeEmployeeRepo) GetByName(ctx context.Context, fullName string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) { return nil, nil }

func (fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (fakeEmployeeRepo) Delete(ctx context.Context, id string) error { return nil }

func seedRequest(t *testing.T, repo *fakeLeaveRepo, leaveType leave.LeaveType, status leave.RequestStatus) string {
	t.Helper()
	created, err := repo.Create(context.Background(), request(5, 7, leaveType, status))
	require.NoError(t, err)
	return created.ID
}

func TestSubmit_CreatesPendingRequest(t *testing.T) {
	repo := &fakeLeaveRepo{}
	svc := NewLeaveService(repo, fakeEmployeeRepo{}, kolkata)

	resp, err := svc.Submit(context.Background(), leave.CreateRequestRequest{
		EmployeeID: "emp-1",
		StartDate:  "2026-03-05",
		EndDate:    "2026-03-07",
		LeaveType:  string(leave.LeaveTypeUnpaid),
		Reason:     "family visit",
	})
	require.NoError(t, err)

	assert.Equal(t, string(leave.StatusPending), resp.Status)
	assert.Equal(t, "2026-03-05", resp.StartDate)
	require.Len(t, repo.requests, 1)
}

func TestApprove_PendingRequest(t *testing.T) {
	repo := &fakeLeaveRepo{}
	svc := NewLeaveService(repo, fakeEmployeeRepo{}, kolkata)
	id := seedRequest(t, repo, leave.LeaveTypeUnpaid, leave.StatusPending)

	resp, err := svc.Approve(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, string(leave.StatusApproved), resp.Status)
}

func TestApprove_AlreadyProcessed(t *testing.T) {
	repo := &fakeLeaveRepo{}
	svc := NewLeaveService(repo, fakeEmployeeRepo{}, kolkata)
	id := seedRequest(t, repo, leave.LeaveTypeUnpaid, leave.StatusApproved)

	_, err := svc.Approve(context.Background(), id)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
}

func TestDeny_AlreadyProcessed(t *testing.T) {
	repo := &fakeLeaveRepo{}
	svc := NewLeaveService(repo, fakeEmployeeRepo{}, kolkata)
	id := seedRequest(t, repo, leave.LeaveTypeUnpaid, leave.StatusDenied)

	_, err := svc.Deny(context.Background(), id)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
}

func TestConvertToUnpaid_ApprovedMadeUp(t *testing.T) {
	repo := &fakeLeaveRepo{}
	svc := NewLeaveService(repo, fakeEmployeeRepo{}, kolkata)
	id := seedRequest(t, repo, leave.LeaveTypePaidMadeUp, leave.StatusApproved)

	resp, err := svc.ConvertToUnpaid(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, string(leave.LeaveTypeUnpaid), resp.LeaveType)
	assert.Equal(t, leave.LeaveTypeUnpaid, repo.requests[0].LeaveType)
}

func TestConvertToUnpaid_PendingMadeUpRefused(t *testing.T) {
	repo := &fakeLeaveRepo{}
	svc := NewLeaveService(repo, fakeEmployeeRepo{}, kolkata)
	id := seedRequest(t, repo, leave.LeaveTypePaidMadeUp, leave.StatusPending)

	_, err := svc.ConvertToUnpaid(context.Background(), id)
	assert.ErrorIs(t, err, leave.ErrNotConvertible)
}

func TestConvertToUnpaid_ApprovedUnpaidRefused(t *testing.T) {
	repo := &fakeLeaveRepo{}
	svc := NewLeaveService(repo, fakeEmployeeRepo{}, kolkata)
	id := seedRequest(t, repo, leave.LeaveTypeUnpaid, leave.StatusApproved)

	_, err := svc.ConvertToUnpaid(context.Background(), id)
	assert.ErrorIs(t, err, leave.ErrNotConvertible)
}
