package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	attendancedomain "github.com/brewhr/brewhr-backend-go/internal/domain/attendance"
	"github.com/brewhr/brewhr-backend-go/internal/domain/employee"
	leavedomain "github.com/brewhr/brewhr-backend-go/internal/domain/leave"
	"github.com/brewhr/brewhr-backend-go/internal/domain/payroll"
	"github.com/brewhr/brewhr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	payrollRepo    payroll.PayrollRepository
	attendanceRepo attendancedomain.AttendanceRepository
	leaveRepo      leavedomain.LeaveRepository
	employeeRepo   employee.EmployeeRepository
	calculator     *Calculator
	loc            *time.Location
	now            func() time.Time
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	attendanceRepo attendancedomain.AttendanceRepository,
	leaveRepo leavedomain.LeaveRepository,
	employeeRepo employee.EmployeeRepository,
	calculator *Calculator,
	loc *time.Location,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:    payrollRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		employeeRepo:   employeeRepo,
		calculator:     calculator,
		loc:            loc,
		now:            time.Now,
	}
}

// Generate implements payroll.PayrollService.
func (s *PayrollServiceImpl) Generate(ctx context.Context, req payroll.GenerateRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	if !emp.HasPayrollConfig() {
		return payroll.PayrollResponse{}, payroll.ErrPayrollConfigMissing
	}

	var periodStart, periodEnd time.Time
	if req.PeriodStart != nil {
		start, _ := validator.IsValidDate(*req.PeriodStart)
		end, _ := validator.IsValidDate(*req.PeriodEnd)
		periodStart = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, s.loc)
		periodEnd = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, s.loc)
	} else {
		periodStart, periodEnd, err = PeriodFor(emp, s.now().In(s.loc), s.loc)
		if err != nil {
			return payroll.PayrollResponse{}, err
		}
	}

	// Duplicate guard. A unique index on (employee_id, period_start,
	// period_end) backs this up against concurrent generation.
	_, err = s.payrollRepo.GetByEmployeePeriod(ctx, emp.ID, periodStart, periodEnd)
	if err == nil {
		return payroll.PayrollResponse{}, payroll.ErrPayrollAlreadyExists
	}
	if !errors.Is(err, payroll.ErrPayrollNotFound) {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to check existing payroll: %w", err)
	}

	logs, err := s.attendanceRepo.ListByEmployeeRange(ctx, emp.ID, periodStart, periodEnd.AddDate(0, 0, 1))
	if err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to list attendance logs: %w", err)
	}
	leaves, err := s.leaveRepo.ListApprovedByEmployee(ctx, emp.ID)
	if err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	breakdown, err := s.calculator.Calculate(emp, periodStart, periodEnd, logs, leaves)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	created, err := s.payrollRepo.Create(ctx, payroll.Payroll{
		EmployeeID:            emp.ID,
		PayPeriodStart:        periodStart,
		PayPeriodEnd:          periodEnd,
		MonthlySalary:         *emp.MonthlySalary,
		TotalWorkingDays:      breakdown.TotalWorkingDays,
		ActualDaysWorked:      breakdown.ActualDaysWorked,
		PerDaySalary:          breakdown.PerDaySalary,
		LateDays:              breakdown.LateDays,
		LateDeductions:        breakdown.LateDeductions,
		UnpaidLeaveDays:       breakdown.UnpaidLeaveDays,
		UnpaidLeaveDeductions: breakdown.UnpaidLeaveDeductions,
		PaidMadeUpLeaveDays:   breakdown.PaidMadeUpLeaveDays,
		Tips:                  decimal.Zero,
		Deductions:            decimal.Zero,
		FinalSalary:           breakdown.FinalSalary,
		Status:                payroll.StatusPending,
		GeneratedAt:           s.now().In(s.loc),
	})
	if err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to create payroll: %w", err)
	}

	return s.mapToResponse(created), nil
}

// Get implements payroll.PayrollService.
func (s *PayrollServiceImpl) Get(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	record, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return s.mapToResponse(record), nil
}

// List implements payroll.PayrollService.
func (s *PayrollServiceImpl) List(ctx context.Context, filter payroll.ListFilter) (payroll.ListPayrollResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	records, total, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return payroll.ListPayrollResponse{}, err
	}

	result := make([]payroll.PayrollResponse, 0, len(records))
	for _, record := range records {
		result = append(result, s.mapToResponse(record))
	}

	return payroll.ListPayrollResponse{
		Data:       result,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// Update implements payroll.PayrollService.
func (s *PayrollServiceImpl) Update(ctx context.Context, req payroll.UpdateRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	record, err := s.payrollRepo.GetByID(ctx, req.ID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	if record.Status == payroll.StatusPaid {
		return payroll.PayrollResponse{}, payroll.ErrPayrollAlreadyPaid
	}

	if req.Tips != nil {
		record.Tips = *req.Tips
	}
	if req.Deductions != nil {
		record.Deductions = *req.Deductions
	}
	record.FinalSalary = Recalculate(record)

	updated, err := s.payrollRepo.UpdateMoneyFields(ctx, record)
	if err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to update payroll: %w", err)
	}

	return s.mapToResponse(updated), nil
}

// MarkPaid implements payroll.PayrollService.
func (s *PayrollServiceImpl) MarkPaid(ctx context.Context, req payroll.MarkPaidRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	record, err := s.payrollRepo.GetByID(ctx, req.ID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	if record.Status == payroll.StatusPaid {
		return payroll.PayrollResponse{}, payroll.ErrPayrollAlreadyPaid
	}

	paymentDate := s.now().In(s.loc)
	if req.PaymentDate != nil {
		d, _ := validator.IsValidDate(*req.PaymentDate)
		paymentDate = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, s.loc)
	}

	record.Status = payroll.StatusPaid
	record.PaymentDate = &paymentDate

	updated, err := s.payrollRepo.UpdateMoneyFields(ctx, record)
	if err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to mark payroll paid: %w", err)
	}

	return s.mapToResponse(updated), nil
}

// Delete implements payroll.PayrollService. Paid records can be deleted;
// only editing them is blocked.
func (s *PayrollServiceImpl) Delete(ctx context.Context, id string) error {
	return s.payrollRepo.Delete(ctx, id)
}

func (s *PayrollServiceImpl) mapToResponse(record payroll.Payroll) payroll.PayrollResponse {
	employeeName := ""
	if record.EmployeeName != nil {
		employeeName = *record.EmployeeName
	}

	var paymentDate *string
	if record.PaymentDate != nil {
		str := record.PaymentDate.In(s.loc).Format("2006-01-02")
		paymentDate = &str
	}

	return payroll.PayrollResponse{
		ID:                    record.ID,
		EmployeeID:            record.EmployeeID,
		EmployeeName:          employeeName,
		PayPeriodStart:        record.PayPeriodStart.Format("2006-01-02"),
		PayPeriodEnd:          record.PayPeriodEnd.Format("2006-01-02"),
		MonthlySalary:         record.MonthlySalary,
		TotalWorkingDays:      record.TotalWorkingDays,
		ActualDaysWorked:      record.ActualDaysWorked,
		PerDaySalary:          record.PerDaySalary,
		LateDays:              record.LateDays,
		LateDeductions:        record.LateDeductions,
		UnpaidLeaveDays:       record.UnpaidLeaveDays,
		UnpaidLeaveDeductions: record.UnpaidLeaveDeductions,
		PaidMadeUpLeaveDays:   record.PaidMadeUpLeaveDays,
		Tips:                  record.Tips,
		Deductions:            record.Deductions,
		FinalSalary:           record.FinalSalary,
		Status:                string(record.Status),
		GeneratedAt:           record.GeneratedAt.Format(time.RFC3339),
		PaymentDate:           paymentDate,
	}
}
