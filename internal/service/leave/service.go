package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/brewhr/brewhr-backend-go/internal/domain/employee"
	"github.com/brewhr/brewhr-backend-go/internal/domain/leave"
	"github.com/brewhr/brewhr-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leaveRepo    leave.LeaveRepository
	employeeRepo employee.EmployeeRepository
	loc          *time.Location
}

func NewLeaveService(
	leaveRepo leave.LeaveRepository,
	employeeRepo employee.EmployeeRepository,
	loc *time.Location,
) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
		loc:          loc,
	}
}

// Submit implements leave.LeaveService.
func (s *LeaveServiceImpl) Submit(ctx context.Context, req leave.CreateRequestRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	created, err := s.leaveRepo.Create(ctx, leave.Request{
		EmployeeID: emp.ID,
		StartDate:  time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, s.loc),
		EndDate:    time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, s.loc),
		LeaveType:  leave.LeaveType(req.LeaveType),
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return mapToResponse(created), nil
}

// Get implements leave.LeaveService.
func (s *LeaveServiceImpl) Get(ctx context.Context, id string) (leave.RequestResponse, error) {
	req, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.RequestResponse{}, err
	}
	return mapToResponse(req), nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.ListFilter) (leave.ListRequestResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	requests, total, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return leave.ListRequestResponse{}, err
	}

	result := make([]leave.RequestResponse, 0, len(requests))
	for _, req := range requests {
		result = append(result, mapToResponse(req))
	}

	return leave.ListRequestResponse{
		Data:       result,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// Approve implements leave.LeaveService.
func (s *LeaveServiceImpl) Approve(ctx context.Context, id string) (leave.RequestResponse, error) {
	return s.finalize(ctx, id, leave.StatusApproved)
}

// Deny implements leave.LeaveService.
func (s *LeaveServiceImpl) Deny(ctx context.Context, id string) (leave.RequestResponse, error) {
	return s.finalize(ctx, id, leave.StatusDenied)
}

func (s *LeaveServiceImpl) finalize(ctx context.Context, id string, status leave.RequestStatus) (leave.RequestResponse, error) {
	req, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.RequestResponse{}, err
	}
	if req.Status != leave.StatusPending {
		return leave.RequestResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	updated, err := s.leaveRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to update leave request status: %w", err)
	}

	return mapToResponse(updated), nil
}

// ConvertToUnpaid implements leave.LeaveService. Only an approved
// Paid (Made Up) request can be converted; the conversion makes its
// days start reducing pay in subsequently generated payrolls.
func (s *LeaveServiceImpl) ConvertToUnpaid(ctx context.Context, id string) (leave.RequestResponse, error) {
	req, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.RequestResponse{}, err
	}
	if req.Status != leave.StatusApproved || req.LeaveType != leave.LeaveTypePaidMadeUp {
		return leave.RequestResponse{}, leave.ErrNotConvertible
	}

	updated, err := s.leaveRepo.UpdateLeaveType(ctx, id, leave.LeaveTypeUnpaid)
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to convert leave request: %w", err)
	}

	return mapToResponse(updated), nil
}

// Delete implements leave.LeaveService.
func (s *LeaveServiceImpl) Delete(ctx context.Context, id string) error {
	return s.leaveRepo.Delete(ctx, id)
}

func mapToResponse(req leave.Request) leave.RequestResponse {
	employeeName := ""
	if req.EmployeeName != nil {
		employeeName = *req.EmployeeName
	}

	return leave.RequestResponse{
		ID:           req.ID,
		EmployeeID:   req.EmployeeID,
		EmployeeName: employeeName,
		StartDate:    req.StartDate.Format("2006-01-02"),
		EndDate:      req.EndDate.Format("2006-01-02"),
		LeaveType:    string(req.LeaveType),
		Reason:       req.Reason,
		Status:       string(req.Status),
	}
}
