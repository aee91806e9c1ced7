package payroll

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	attendancedomain "github.com/brewhr/brewhr-backend-go/internal/domain/attendance"
	"github.com/brewhr/brewhr-backend-go/internal/domain/employee"
	leavedomain "github.com/brewhr/brewhr-backend-go/internal/domain/leave"
	"github.com/brewhr/brewhr-backend-go/internal/domain/payroll"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByName(ctx context.Context, fullName string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.FullName == fullName {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		out = append(out, emp)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	delete(f.employees, id)
	return nil
}

type fakeAttendanceRepo struct {
	logs []attendancedomain.Log
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, log attendancedomain.Log) (attendancedomain.Log, error) {
	f.logs = append(f.logs, log)
	return log, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendancedomain.Log, error) {
	return attendancedomain.Log{}, attendancedomain.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) GetOpenSession(ctx context.Context, employeeID string) (attendancedomain.Log, error) {
	return attendancedomain.Log{}, attendancedomain.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) ListByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendancedomain.Log, error) {
	var out []attendancedomain.Log
	for _, log := range f.logs {
		if log.EmployeeID != employeeID {
			continue
		}
		if log.ClockIn.Before(from) || !log.ClockIn.Before(to) {
			continue
		}
		out = append(out, log)
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListOpenSessionsBefore(ctx context.Context, cutoff time.Time) ([]attendancedomain.Log, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendancedomain.ListFilter) ([]attendancedomain.Log, int64, error) {
	return f.logs, int64(len(f.logs)), nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, log attendancedomain.Log) (attendancedomain.Log, error) {
	return log, nil
}

func (f *fakeAttendanceRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeLeaveRepo struct {
	requests []leavedomain.Request
}

func (f *fakeLeaveRepo) Create(ctx context.Context, req leavedomain.Request) (leavedomain.Request, error) {
	f.requests = append(f.requests, req)
	return req, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leavedomain.Request, error) {
	return leavedomain.Request{}, leavedomain.ErrLeaveRequestNotFound
}

func (f *fakeLeaveRepo) List(ctx context.Context, filter leavedomain.ListFilter) ([]leavedomain.Request, int64, error) {
	return f.requests, int64(len(f.requests)), nil
}

func (f *fakeLeaveRepo) ListApprovedByEmployee(ctx context.Context, employeeID string) ([]leavedomain.Request, error) {
	var out []leavedomain.Request
	for _, req := range f.requests {
		if req.EmployeeID == employeeID && req.Status == leavedomain.StatusApproved {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) UpdateStatus(ctx context.Context, id string, status leavedomain.RequestStatus) (leavedomain.Request, error) {
	return leavedomain.Request{}, leavedomain.ErrLeaveRequestNotFound
}

func (f *fakeLeaveRepo) UpdateLeaveType(ctx context.Context, id string, leaveType leavedomain.LeaveType) (leavedomain.Request, error) {
	return leavedomain.Request{}, leavedomain.ErrLeaveRequestNotFound
}

func (f *fakeLeaveRepo) Delete(ctx context.Context, id string) error { return nil }

type fakePayrollRepo struct {
	records map[string]payroll.Payroll
	nextID  int
}

func (f *fakePayrollRepo) Create(ctx context.Context, record payroll.Payroll) (payroll.Payroll, error) {
	f.nextID++
	record.ID = fmt.Sprintf("pr-%d", f.nextID)
	f.records[record.ID] = record
	return record, nil
}

func (f *fakePayrollRepo) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	record, ok := f.records[id]
	if !ok {
		return payroll.Payroll{}, payroll.ErrPayrollNotFound
	}
	return record, nil
}

func (f *fakePayrollRepo) GetByEmployeePeriod(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) (payroll.Payroll, error) {
	for _, record := range f.records {
		if record.EmployeeID == employeeID &&
			record.PayPeriodStart.Equal(periodStart) &&
			record.PayPeriodEnd.Equal(periodEnd) {
			return record, nil
		}
	}
	return payroll.Payroll{}, payroll.ErrPayrollNotFound
}

func (f *fakePayrollRepo) List(ctx context.Context, filter payroll.ListFilter) ([]payroll.Payroll, int64, error) {
	var out []payroll.Payroll
	for _, record := range f.records {
		out = append(out, record)
	}
	return out, int64(len(out)), nil
}

func (f *fakePayrollRepo) UpdateMoneyFields(ctx context.Context, record payroll.Payroll) (payroll.Payroll, error) {
	stored, ok := f.records[record.ID]
	if !ok {
		return payroll.Payroll{}, payroll.ErrPayrollNotFound
	}
	stored.Tips = record.Tips
	stored.Deductions = record.Deductions
	stored.FinalSalary = record.FinalSalary
	stored.Status = record.Status
	stored.PaymentDate = record.PaymentDate
	f.records[record.ID] = stored
	return stored, nil
}

func (f *fakePayrollRepo) Delete(ctx context.Context, id string) error {
	delete(f.records, id)
	return nil
}

func newTestService(t *testing.T) (payroll.PayrollService, *fakePayrollRepo, *fakeAttendanceRepo, *fakeLeaveRepo) {
	t.Helper()

	emp := barista()
	payStart := time.Date(2026, 4, 1, 0, 0, 0, 0, kolkata)
	emp.PayStartDate = &payStart

	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{emp.ID: emp}}
	attendanceRepo := &fakeAttendanceRepo{logs: aprilLogs(6, 30)}
	leaveRepo := &fakeLeaveRepo{requests: []leavedomain.Request{{
		EmployeeID: "emp-1",
		StartDate:  time.Date(2026, 4, 6, 0, 0, 0, 0, kolkata),
		EndDate:    time.Date(2026, 4, 6, 0, 0, 0, 0, kolkata),
		LeaveType:  leavedomain.LeaveTypeUnpaid,
		Status:     leavedomain.StatusApproved,
	}}}
	payrollRepo := &fakePayrollRepo{records: map[string]payroll.Payroll{}}

	svc := NewPayrollService(payrollRepo, attendanceRepo, leaveRepo, employeeRepo, newTestCalculator(t), kolkata)
	svc.(*PayrollServiceImpl).now = func() time.Time {
		return time.Date(2026, 5, 2, 10, 0, 0, 0, kolkata)
	}
	return svc, payrollRepo, attendanceRepo, leaveRepo
}

func april() (string, string) { return "2026-04-01", "2026-04-30" }

func TestGenerate_FullMonthSnapshot(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	start, end := april()

	resp, err := svc.Generate(context.Background(), payroll.GenerateRequest{
		EmployeeID:  "emp-1",
		PeriodStart: &start,
		PeriodEnd:   &end,
	})
	require.NoError(t, err)

	assert.Equal(t, 26, resp.TotalWorkingDays)
	assert.Equal(t, 24, resp.ActualDaysWorked)
	assert.Equal(t, "26488.55", resp.FinalSalary.StringFixed(2))
	assert.Equal(t, string(payroll.StatusPending), resp.Status)
	assert.True(t, resp.Tips.IsZero())
	assert.True(t, resp.Deductions.IsZero())
}

func TestGenerate_DuplicatePeriodRefused(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	start, end := april()
	req := payroll.GenerateRequest{EmployeeID: "emp-1", PeriodStart: &start, PeriodEnd: &end}

	_, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Generate(context.Background(), req)
	assert.ErrorIs(t, err, payroll.ErrPayrollAlreadyExists)
}

func TestGenerate_PeriodDerivedFromPayFrequency(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	// now is fixed to 2026-05-02; the monthly cycle anchored at Apr 1
	// containing it is May.
	resp, err := svc.Generate(context.Background(), payroll.GenerateRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	assert.Equal(t, "2026-05-01", resp.PayPeriodStart)
	assert.Equal(t, "2026-05-31", resp.PayPeriodEnd)
}

func TestGenerate_MissingSalaryConfig(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	impl := svc.(*PayrollServiceImpl)
	emp, _ := impl.employeeRepo.GetByID(context.Background(), "emp-1")
	emp.MonthlySalary = nil
	_, err := impl.employeeRepo.Update(context.Background(), emp)
	require.NoError(t, err)

	start, end := april()
	_, err = svc.Generate(context.Background(), payroll.GenerateRequest{
		EmployeeID:  "emp-1",
		PeriodStart: &start,
		PeriodEnd:   &end,
	})
	assert.ErrorIs(t, err, payroll.ErrPayrollConfigMissing)
}

func TestUpdate_RecomputesFinalSalary(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	start, end := april()

	created, err := svc.Generate(context.Background(), payroll.GenerateRequest{
		EmployeeID:  "emp-1",
		PeriodStart: &start,
		PeriodEnd:   &end,
	})
	require.NoError(t, err)

	tips := decimal.NewFromInt(500)
	deductions := decimal.NewFromInt(100)
	updated, err := svc.Update(context.Background(), payroll.UpdateRequest{
		ID:         created.ID,
		Tips:       &tips,
		Deductions: &deductions,
	})
	require.NoError(t, err)

	// 26488.55 + 500 - 100
	assert.Equal(t, "26888.55", updated.FinalSalary.StringFixed(2))
	// Day counts are untouched.
	assert.Equal(t, created.ActualDaysWorked, updated.ActualDaysWorked)
	assert.Equal(t, created.PerDaySalary, updated.PerDaySalary)
}

func TestMarkPaid_IsOneWay(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	start, end := april()

	created, err := svc.Generate(context.Background(), payroll.GenerateRequest{
		EmployeeID:  "emp-1",
		PeriodStart: &start,
		PeriodEnd:   &end,
	})
	require.NoError(t, err)

	paid, err := svc.MarkPaid(context.Background(), payroll.MarkPaidRequest{ID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, string(payroll.StatusPaid), paid.Status)
	require.NotNil(t, paid.PaymentDate)
	assert.Equal(t, "2026-05-02", *paid.PaymentDate)

	_, err = svc.MarkPaid(context.Background(), payroll.MarkPaidRequest{ID: created.ID})
	assert.ErrorIs(t, err, payroll.ErrPayrollAlreadyPaid)

	tips := decimal.NewFromInt(10)
	_, err = svc.Update(context.Background(), payroll.UpdateRequest{ID: created.ID, Tips: &tips})
	assert.ErrorIs(t, err, payroll.ErrPayrollAlreadyPaid)
}

func TestDelete_PaidRecordIsDeletable(t *testing.T) {
	svc, repo, _, _ := newTestService(t)
	start, end := april()

	created, err := svc.Generate(context.Background(), payroll.GenerateRequest{
		EmployeeID:  "emp-1",
		PeriodStart: &start,
		PeriodEnd:   &end,
	})
	require.NoError(t, err)

	_, err = svc.MarkPaid(context.Background(), payroll.MarkPaidRequest{ID: created.ID})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Empty(t, repo.records)
}
