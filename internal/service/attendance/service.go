package attendance

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/brewhr/brewhr-backend-go/internal/domain/attendance"
	"github.com/brewhr/brewhr-backend-go/internal/domain/employee"
	"github.com/brewhr/brewhr-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	loc            *time.Location
	now            func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	loc *time.Location,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		loc:            loc,
		now:            time.Now,
	}
}

// ClockIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.LogResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.LogResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.LogResponse{}, err
	}

	_, err = s.attendanceRepo.GetOpenSession(ctx, emp.ID)
	if err == nil {
		return attendance.LogResponse{}, attendance.ErrAlreadyClockedIn
	}
	if !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.LogResponse{}, fmt.Errorf("failed to check open session: %w", err)
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Log{
		EmployeeID: emp.ID,
		ClockIn:    s.now().In(s.loc),
	})
	if err != nil {
		return attendance.LogResponse{}, fmt.Errorf("failed to create attendance log: %w", err)
	}

	return s.mapToResponse(created), nil
}

// ClockOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.LogResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.LogResponse{}, err
	}

	open, err := s.attendanceRepo.GetOpenSession(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.LogResponse{}, attendance.ErrNotClockedIn
		}
		return attendance.LogResponse{}, fmt.Errorf("failed to get open session: %w", err)
	}

	now := s.now().In(s.loc)
	open.ClockOut = &now

	updated, err := s.attendanceRepo.Update(ctx, open)
	if err != nil {
		return attendance.LogResponse{}, fmt.Errorf("failed to close attendance log: %w", err)
	}

	return s.mapToResponse(updated), nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.ListFilter) (attendance.ListLogResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	logs, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListLogResponse{}, err
	}

	result := make([]attendance.LogResponse, 0, len(logs))
	for _, log := range logs {
		result = append(result, s.mapToResponse(log))
	}

	return attendance.ListLogResponse{
		Data:       result,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// UpdateLog implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) UpdateLog(ctx context.Context, req attendance.UpdateLogRequest) (attendance.LogResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.LogResponse{}, err
	}

	log, err := s.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.LogResponse{}, err
	}

	if req.ClockIn != nil {
		t, _ := validator.IsValidDateTime(*req.ClockIn)
		log.ClockIn = t.In(s.loc)
	}
	if req.ClockOut != nil {
		if *req.ClockOut == "" {
			log.ClockOut = nil // reopen the session
		} else {
			t, _ := validator.IsValidDateTime(*req.ClockOut)
			local := t.In(s.loc)
			log.ClockOut = &local
		}
	}

	if log.ClockOut != nil && log.ClockOut.Before(log.ClockIn) {
		return attendance.LogResponse{}, attendance.ErrClockOutBeforeIn
	}

	updated, err := s.attendanceRepo.Update(ctx, log)
	if err != nil {
		return attendance.LogResponse{}, fmt.Errorf("failed to update attendance log: %w", err)
	}

	return s.mapToResponse(updated), nil
}

// DeleteLog implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteLog(ctx context.Context, id string) error {
	return s.attendanceRepo.Delete(ctx, id)
}

// MonthSummary implements attendance.AttendanceService. The summary uses
// precise fractional hours; payroll maths never reads this path.
func (s *AttendanceServiceImpl) MonthSummary(ctx context.Context, employeeID string, month, year int) (attendance.MonthSummaryResponse, error) {
	if month < 1 || month > 12 {
		return attendance.MonthSummaryResponse{}, validator.ValidationErrors{{Field: "month", Message: "must be between 1 and 12"}}
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.MonthSummaryResponse{}, err
	}

	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, s.loc)
	monthEnd := monthStart.AddDate(0, 1, 0)

	logs, err := s.attendanceRepo.ListByEmployeeRange(ctx, emp.ID, monthStart, monthEnd)
	if err != nil {
		return attendance.MonthSummaryResponse{}, fmt.Errorf("failed to list attendance logs: %w", err)
	}

	worked := Aggregate(logs, monthStart, monthEnd, s.loc)

	days := make([]attendance.WorkedDayResponse, 0, len(worked))
	var totalHours float64
	for date, day := range worked {
		totalHours += day.PreciseHours()
		days = append(days, attendance.WorkedDayResponse{
			Date:         date,
			ClockIn:      day.ClockIn.Format(time.RFC3339),
			ClockOut:     day.ClockOut.Format(time.RFC3339),
			PreciseHours: day.PreciseHours(),
		})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	return attendance.MonthSummaryResponse{
		EmployeeID: emp.ID,
		Month:      month,
		Year:       year,
		DaysWorked: len(worked),
		TotalHours: totalHours,
		Days:       days,
	}, nil
}

func (s *AttendanceServiceImpl) mapToResponse(log attendance.Log) attendance.LogResponse {
	var clockOut *string
	if log.ClockOut != nil {
		str := log.ClockOut.In(s.loc).Format(time.RFC3339)
		clockOut = &str
	}

	employeeName := ""
	if log.EmployeeName != nil {
		employeeName = *log.EmployeeName
	}

	return attendance.LogResponse{
		ID:           log.ID,
		EmployeeID:   log.EmployeeID,
		EmployeeName: employeeName,
		ClockIn:      log.ClockIn.In(s.loc).Format(time.RFC3339),
		ClockOut:     clockOut,
	}
}
