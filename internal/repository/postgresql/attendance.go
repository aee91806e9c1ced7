package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/brewhr/brewhr-backend-go/internal/domain/attendance"
	"github.com/brewhr/brewhr-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Create(ctx context.Context, log attendance.Log) (attendance.Log, error) {
	q := GetQuerier(ctx, r.db)

	if log.ID == "" {
		log.ID = uuid.New().String()
	}

	query := `
		INSERT INTO attendance_logs (id, employee_id, clock_in, clock_out)
		VALUES ($1, $2, $3, $4)
		RETURNING id, employee_id, clock_in, clock_out, created_at, updated_at
	`

	var created attendance.Log
	err := q.QueryRow(ctx, query, log.ID, log.EmployeeID, log.ClockIn, log.ClockOut).Scan(
		&created.ID, &created.EmployeeID, &created.ClockIn, &created.ClockOut,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return attendance.Log{}, fmt.Errorf("failed to create attendance log: %w", err)
	}

	return created, nil
}

func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Log, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.clock_in, a.clock_out, a.created_at, a.updated_at, e.full_name
		FROM attendance_logs a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`

	var log attendance.Log
	err := q.QueryRow(ctx, query, id).Scan(
		&log.ID, &log.EmployeeID, &log.ClockIn, &log.ClockOut,
		&log.CreatedAt, &log.UpdatedAt, &log.EmployeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Log{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Log{}, fmt.Errorf("failed to get attendance log: %w", err)
	}

	return log, nil
}

func (r *attendanceRepository) GetOpenSession(ctx context.Context, employeeID string) (attendance.Log, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, clock_in, clock_out, created_at, updated_at
		FROM attendance_logs
		WHERE employee_id = $1 AND clock_out IS NULL
		ORDER BY clock_in DESC
		LIMIT 1
	`

	var log attendance.Log
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&log.ID, &log.EmployeeID, &log.ClockIn, &log.ClockOut,
		&log.CreatedAt, &log.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Log{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Log{}, fmt.Errorf("failed to get open session: %w", err)
	}

	return log, nil
}

func (r *attendanceRepository) ListByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Log, error) {
	q := GetQuerier(ctx, r.db)

	// Ordered by clock_in then created_at so equal clock-ins keep
	// insertion order; id is a random UUID and only breaks exact ties.
	query := `
		SELECT id, employee_id, clock_in, clock_out, created_at, updated_at
		FROM attendance_logs
		WHERE employee_id = $1 AND clock_in >= $2 AND clock_in < $3
		ORDER BY clock_in, created_at, id
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance logs: %w", err)
	}
	defer rows.Close()

	return scanAttendanceLogs(rows, false)
}

func (r *attendanceRepository) ListOpenSessionsBefore(ctx context.Context, cutoff time.Time) ([]attendance.Log, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, clock_in, clock_out, created_at, updated_at
		FROM attendance_logs
		WHERE clock_out IS NULL AND clock_in < $1
		ORDER BY clock_in
	`

	rows, err := q.Query(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list open sessions: %w", err)
	}
	defer rows.Close()

	return scanAttendanceLogs(rows, false)
}

func (r *attendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Log, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != nil {
		where += fmt.Sprintf(" AND a.employee_id = $%d", argPos)
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.From != nil {
		where += fmt.Sprintf(" AND a.clock_in >= $%d", argPos)
		args = append(args, *filter.From)
		argPos++
	}
	if filter.To != nil {
		where += fmt.Sprintf(" AND a.clock_in < $%d", argPos)
		args = append(args, *filter.To)
		argPos++
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM attendance_logs a " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance logs: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT a.id, a.employee_id, a.clock_in, a.clock_out, a.created_at, a.updated_at, e.full_name
		FROM attendance_logs a
		JOIN employees e ON e.id = a.employee_id
		%s
		ORDER BY a.clock_in DESC
		LIMIT $%d OFFSET $%d
	`, where, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance logs: %w", err)
	}
	defer rows.Close()

	logs, err := scanAttendanceLogs(rows, true)
	if err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

func (r *attendanceRepository) Update(ctx context.Context, log attendance.Log) (attendance.Log, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_logs
		SET clock_in = $2, clock_out = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id, employee_id, clock_in, clock_out, created_at, updated_at
	`

	var updated attendance.Log
	err := q.QueryRow(ctx, query, log.ID, log.ClockIn, log.ClockOut).Scan(
		&updated.ID, &updated.EmployeeID, &updated.ClockIn, &updated.ClockOut,
		&updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Log{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Log{}, fmt.Errorf("failed to update attendance log: %w", err)
	}

	return updated, nil
}

func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_logs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

func scanAttendanceLogs(rows pgx.Rows, withName bool) ([]attendance.Log, error) {
	var logs []attendance.Log
	for rows.Next() {
		var log attendance.Log
		var err error
		if withName {
			err = rows.Scan(
				&log.ID, &log.EmployeeID, &log.ClockIn, &log.ClockOut,
				&log.CreatedAt, &log.UpdatedAt, &log.EmployeeName,
			)
		} else {
			err = rows.Scan(
				&log.ID, &log.EmployeeID, &log.ClockIn, &log.ClockOut,
				&log.CreatedAt, &log.UpdatedAt,
			)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance log: %w", err)
		}
		logs = append(logs, log)
	}
	return logs, rows.Err()
}
