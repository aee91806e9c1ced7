package consumption

import (
	"context"
	"fmt"
	"time"

	"github.com/brewhr/brewhr-backend-go/internal/config"
	"github.com/brewhr/brewhr-backend-go/internal/domain/consumption"
	"github.com/brewhr/brewhr-backend-go/internal/domain/employee"
	"github.com/brewhr/brewhr-backend-go/internal/pkg/validator"
)

type ConsumptionServiceImpl struct {
	consumptionRepo consumption.ConsumptionRepository
	employeeRepo    employee.EmployeeRepository
	allowance       config.AllowanceConfig
	loc             *time.Location
	now             func() time.Time
}

func NewConsumptionService(
	consumptionRepo consumption.ConsumptionRepository,
	employeeRepo employee.EmployeeRepository,
	allowance config.AllowanceConfig,
	loc *time.Location,
) consumption.ConsumptionService {
	return &ConsumptionServiceImpl{
		consumptionRepo: consumptionRepo,
		employeeRepo:    employeeRepo,
		allowance:       allowance,
		loc:             loc,
		now:             time.Now,
	}
}

// Log implements consumption.ConsumptionService.
func (s *ConsumptionServiceImpl) Log(ctx context.Context, req consumption.CreateLogRequest) (consumption.LogResponse, error) {
	if err := req.Validate(); err != nil {
		return consumption.LogResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return consumption.LogResponse{}, err
	}

	loggedAt := s.now().In(s.loc)
	if req.LoggedAt != nil {
		t, _ := validator.IsValidDateTime(*req.LoggedAt)
		loggedAt = t.In(s.loc)
	}

	created, err := s.consumptionRepo.Create(ctx, consumption.Log{
		EmployeeID: emp.ID,
		ItemName:   req.ItemName,
		LoggedAt:   loggedAt,
	})
	if err != nil {
		return consumption.LogResponse{}, fmt.Errorf("failed to create consumption log: %w", err)
	}

	return mapToResponse(created), nil
}

// List implements consumption.ConsumptionService.
func (s *ConsumptionServiceImpl) List(ctx context.Context, filter consumption.ListFilter) (consumption.ListLogResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	logs, total, err := s.consumptionRepo.List(ctx, filter)
	if err != nil {
		return consumption.ListLogResponse{}, err
	}

	result := make([]consumption.LogResponse, 0, len(logs))
	for _, log := range logs {
		result = append(result, mapToResponse(log))
	}

	return consumption.ListLogResponse{
		Data:       result,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// Allowance implements consumption.ConsumptionService. Quotas reset by
// derivation: only logs inside the requested calendar month count, so
// no reset job exists.
func (s *ConsumptionServiceImpl) Allowance(ctx context.Context, employeeID string, month, year int) (consumption.AllowanceResponse, error) {
	if month < 1 || month > 12 {
		return consumption.AllowanceResponse{}, validator.ValidationErrors{{Field: "month", Message: "must be between 1 and 12"}}
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return consumption.AllowanceResponse{}, err
	}

	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, s.loc)
	monthEnd := monthStart.AddDate(0, 1, 0)

	logs, err := s.consumptionRepo.ListByEmployeeRange(ctx, emp.ID, monthStart, monthEnd)
	if err != nil {
		return consumption.AllowanceResponse{}, fmt.Errorf("failed to list consumption logs: %w", err)
	}

	drinks, meals := CountConsumed(logs, s.allowance)

	// Remaining quota may go negative; the caller settles the excess.
	return consumption.AllowanceResponse{
		EmployeeID: emp.ID,
		Month:      month,
		Year:       year,
		Drinks:     s.allowance.DrinkAllowance - drinks,
		Meals:      s.allowance.MealAllowance - meals,
	}, nil
}

func mapToResponse(log consumption.Log) consumption.LogResponse {
	employeeName := ""
	if log.EmployeeName != nil {
		employeeName = *log.EmployeeName
	}

	return consumption.LogResponse{
		ID:           log.ID,
		EmployeeID:   log.EmployeeID,
		EmployeeName: employeeName,
		ItemName:     log.ItemName,
		LoggedAt:     log.LoggedAt.Format(time.RFC3339),
	}
}
