package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brewhr/brewhr-backend-go/internal/domain/employee"
	"github.com/brewhr/brewhr-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	loc          *time.Location
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, loc *time.Location) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		loc:          loc,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	_, err := s.employeeRepo.GetByName(ctx, req.FullName)
	if err == nil {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNameExists
	}
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee name: %w", err)
	}

	emp := employee.Employee{
		FullName:          req.FullName,
		WeeklyOffDay:      req.WeeklyOffDay,
		StandardWorkHours: req.StandardWorkHours,
		ShiftStartTime:    req.ShiftStartTime,
		ShiftEndTime:      req.ShiftEndTime,
		MonthlySalary:     req.MonthlySalary,
		PayFrequency:      employee.PayFrequencyMonthly,
	}
	if req.PayFrequency != nil {
		emp.PayFrequency = employee.PayFrequency(*req.PayFrequency)
	}
	if req.PayStartDate != nil {
		d, _ := validator.IsValidDate(*req.PayStartDate)
		payStart := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, s.loc)
		emp.PayStartDate = &payStart
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return mapToResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapToResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) (employee.ListEmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		result = append(result, mapToResponse(emp))
	}

	return employee.ListEmployeeResponse{
		Data:       result,
		TotalCount: int64(len(result)),
	}, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil && *req.FullName != emp.FullName {
		_, err := s.employeeRepo.GetByName(ctx, *req.FullName)
		if err == nil {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNameExists
		}
		if !errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee name: %w", err)
		}
		emp.FullName = *req.FullName
	}
	if req.WeeklyOffDay != nil {
		emp.WeeklyOffDay = *req.WeeklyOffDay
	}
	if req.StandardWorkHours != nil {
		emp.StandardWorkHours = *req.StandardWorkHours
	}
	if req.ShiftStartTime != nil {
		if *req.ShiftStartTime == "" {
			emp.ShiftStartTime = nil
		} else {
			emp.ShiftStartTime = req.ShiftStartTime
		}
	}
	if req.ShiftEndTime != nil {
		if *req.ShiftEndTime == "" {
			emp.ShiftEndTime = nil
		} else {
			emp.ShiftEndTime = req.ShiftEndTime
		}
	}
	if req.MonthlySalary != nil {
		emp.MonthlySalary = req.MonthlySalary
	}
	if req.PayFrequency != nil {
		emp.PayFrequency = employee.PayFrequency(*req.PayFrequency)
	}
	if req.PayStartDate != nil {
		d, _ := validator.IsValidDate(*req.PayStartDate)
		payStart := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, s.loc)
		emp.PayStartDate = &payStart
	}

	updated, err := s.employeeRepo.Update(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return mapToResponse(updated), nil
}

// Delete implements employee.EmployeeService. The row is soft-deleted;
// historical payroll and attendance keep referencing it.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}

func mapToResponse(emp employee.Employee) employee.EmployeeResponse {
	var payStartDate *string
	if emp.PayStartDate != nil {
		str := emp.PayStartDate.Format("2006-01-02")
		payStartDate = &str
	}

	return employee.EmployeeResponse{
		ID:                emp.ID,
		FullName:          emp.FullName,
		WeeklyOffDay:      emp.WeeklyOffDay,
		StandardWorkHours: emp.StandardWorkHours,
		ShiftStartTime:    emp.ShiftStartTime,
		ShiftEndTime:      emp.ShiftEndTime,
		MonthlySalary:     emp.MonthlySalary,
		PayFrequency:      string(emp.PayFrequency),
		PayStartDate:      payStartDate,
	}
}
