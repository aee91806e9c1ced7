package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/brewhr/brewhr-backend-go/internal/domain/leave"
	"github.com/brewhr/brewhr-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

func (r *leaveRepository) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	if req.ID == "" {
		req.ID = uuid.New().String()
	}

	query := `
		INSERT INTO leave_requests (id, employee_id, start_date, end_date, leave_type, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, employee_id, start_date, end_date, leave_type, reason, status, created_at, updated_at
	`

	var created leave.Request
	err := q.QueryRow(ctx, query,
		req.ID, req.EmployeeID, req.StartDate, req.EndDate, req.LeaveType, req.Reason, req.Status,
	).Scan(
		&created.ID, &created.EmployeeID, &created.StartDate, &created.EndDate,
		&created.LeaveType, &created.Reason, &created.Status, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return created, nil
}

func (r *leaveRepository) GetByID(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.id, l.employee_id, l.start_date, l.end_date, l.leave_type, l.reason, l.status,
			   l.created_at, l.updated_at, e.full_name
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.id = $1
	`

	var req leave.Request
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.StartDate, &req.EndDate,
		&req.LeaveType, &req.Reason, &req.Status,
		&req.CreatedAt, &req.UpdatedAt, &req.EmployeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Request{}, leave.ErrLeaveRequestNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return req, nil
}

func (r *leaveRepository) List(ctx context.Context, filter leave.ListFilter) ([]leave.Request, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != nil {
		where += fmt.Sprintf(" AND l.employee_id = $%d", argPos)
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND l.status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM leave_requests l " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT l.id, l.employee_id, l.start_date, l.end_date, l.leave_type, l.reason, l.status,
			   l.created_at, l.updated_at, e.full_name
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		%s
		ORDER BY l.created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		var req leave.Request
		if err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.StartDate, &req.EndDate,
			&req.LeaveType, &req.Reason, &req.Status,
			&req.CreatedAt, &req.UpdatedAt, &req.EmployeeName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, total, rows.Err()
}

func (r *leaveRepository) ListApprovedByEmployee(ctx context.Context, employeeID string) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, start_date, end_date, leave_type, reason, status, created_at, updated_at
		FROM leave_requests
		WHERE employee_id = $1 AND status = $2
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, employeeID, leave.StatusApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		var req leave.Request
		if err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.StartDate, &req.EndDate,
			&req.LeaveType, &req.Reason, &req.Status, &req.CreatedAt, &req.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

func (r *leaveRepository) UpdateStatus(ctx context.Context, id string, status leave.RequestStatus) (leave.Request, error) {
	return r.updateField(ctx, id, "status", string(status))
}

func (r *leaveRepository) UpdateLeaveType(ctx context.Context, id string, leaveType leave.LeaveType) (leave.Request, error) {
	return r.updateField(ctx, id, "leave_type", string(leaveType))
}

func (r *leaveRepository) updateField(ctx context.Context, id, column, value string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	// column is one of two compile-time constants, never user input.
	query := fmt.Sprintf(`
		UPDATE leave_requests
		SET %s = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, employee_id, start_date, end_date, leave_type, reason, status, created_at, updated_at
	`, column)

	var req leave.Request
	err := q.QueryRow(ctx, query, id, value).Scan(
		&req.ID, &req.EmployeeID, &req.StartDate, &req.EndDate,
		&req.LeaveType, &req.Reason, &req.Status, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Request{}, leave.ErrLeaveRequestNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	return req, nil
}

func (r *leaveRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leave_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete leave request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}

	return nil
}
