package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewhr/brewhr-backend-go/internal/domain/attendance"
	"github.com/brewhr/brewhr-backend-go/internal/domain/employee"
)

type fakeAttendanceRepo struct {
	logs []attendance.Log
	seq  int
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, entry attendance.Log) (attendance.Log, error) {
	f.seq++
	entry.ID = fmt.Sprintf("att-%d", f.seq)
	f.logs = append(f.logs, entry)
	return entry, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Log, error) {
	for _, entry := range f.logs {
		if entry.ID == id {
			return entry, nil
		}
	}
	return attendance.Log{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) GetOpenSession(ctx context.Context, employeeID string) (attendance.Log, error) {
	for _, entry := range f.logs {
		if entry.EmployeeID == employeeID && entry.ClockOut == nil {
			return entry, nil
		}
	}
	return attendance.Log{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) ListByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Log, error) {
	var out []attendance.Log
	for _, entry := range f.logs {
		if entry.EmployeeID != employeeID {
			continue
		}
		if entry.ClockIn.Before(from) || !entry.ClockIn.Before(to) {
			continue
		}
		out = append(out, entry)
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListOpenSessionsBefore(ctx context.Context, cutoff time.Time) ([]attendance.Log, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Log, int64, error) {
	return f.logs, int64(len(f.logs)), nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, entry attendance.Log) (attendance.Log, error) {
	for i := range f.logs {
		if f.logs[i].ID == entry.ID {
			f.logs[i] = entry
			return entry, nil
		}
	}
	return attendance.Log{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) Delete(ctx context.Context, id string) error {
	for i := range f.logs {
		if f.logs[i].ID == id {
			f.logs = append(f.logs[:i], f.logs[i+1:]...)
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
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

func newTestAttendanceService(repo *fakeAttendanceRepo) *AttendanceServiceImpl {
	svc := NewAttendanceService(repo, fakeEmployeeRepo{}, kolkata)
	return svc.(*AttendanceServiceImpl)
}

func TestClockIn_OpensSession(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := newTestAttendanceService(repo)
	svc.now = func() time.Time { return time.Date(2026, 3, 2, 9, 30, 0, 0, kolkata) }

	resp, err := svc.ClockIn(context.Background(), attendance.ClockInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Nil(t, resp.ClockOut)
	require.Len(t, repo.logs, 1)
}

func TestClockIn_RefusedWhileSessionOpen(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := newTestAttendanceService(repo)
	svc.now = func() time.Time { return time.Date(2026, 3, 2, 9, 30, 0, 0, kolkata) }

	_, err := svc.ClockIn(context.Background(), attendance.ClockInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	_, err = svc.ClockIn(context.Background(), attendance.ClockInRequest{EmployeeID: "emp-1"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
	assert.Len(t, repo.logs, 1)
}

func TestClockIn_UnknownEmployee(t *testing.T) {
	svc := newTestAttendanceService(&fakeAttendanceRepo{})

	_, err := svc.ClockIn(context.Background(), attendance.ClockInRequest{EmployeeID: "emp-9"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestClockOut_ClosesOpenSession(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := newTestAttendanceService(repo)
	svc.now = func() time.Time { return time.Date(2026, 3, 2, 9, 30, 0, 0, kolkata) }

	_, err := svc.ClockIn(context.Background(), attendance.ClockInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2026, 3, 2, 17, 30, 0, 0, kolkata) }
	resp, err := svc.ClockOut(context.Background(), attendance.ClockOutRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	require.NotNil(t, resp.ClockOut)
	require.NotNil(t, repo.logs[0].ClockOut)
	assert.Equal(t, 17, repo.logs[0].ClockOut.Hour())
}

func TestClockOut_WithoutOpenSession(t *testing.T) {
	svc := newTestAttendanceService(&fakeAttendanceRepo{})

	_, err := svc.ClockOut(context.Background(), attendance.ClockOutRequest{EmployeeID: "emp-1"})
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestClockOut_TwiceRefused(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := newTestAttendanceService(repo)
	svc.now = func() time.Time { return time.Date(2026, 3, 2, 9, 30, 0, 0, kolkata) }

	_, err := svc.ClockIn(context.Background(), attendance.ClockInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2026, 3, 2, 17, 30, 0, 0, kolkata) }
	_, err = svc.ClockOut(context.Background(), attendance.ClockOutRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	_, err = svc.ClockOut(context.Background(), attendance.ClockOutRequest{EmployeeID: "emp-1"})
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}
