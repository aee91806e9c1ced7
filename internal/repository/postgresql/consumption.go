package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/brewhr/brewhr-backend-go/internal/domain/consumption"
	"github.com/brewhr/brewhr-backend-go/internal/pkg/database"
)

type consumptionRepository struct {
	db *database.DB
}

func NewConsumptionRepository(db *database.DB) consumption.ConsumptionRepository {
	return &consumptionRepository{db: db}
}

func (r *consumptionRepository) Create(ctx context.Context, log consumption.Log) (consumption.Log, error) {
	q := GetQuerier(ctx, r.db)

	if log.ID == "" {
		log.ID = uuid.New().String()
	}

	query := `
		INSERT INTO consumption_logs (id, employee_id, item_name, logged_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, employee_id, item_name, logged_at, created_at
	`

	var created consumption.Log
	err := q.QueryRow(ctx, query, log.ID, log.EmployeeID, log.ItemName, log.LoggedAt).Scan(
		&created.ID, &created.EmployeeID, &created.ItemName, &created.LoggedAt, &created.CreatedAt,
	)
	if err != nil {
		return consumption.Log{}, fmt.Errorf("failed to create consumption log: %w", err)
	}

	return created, nil
}

func (r *consumptionRepository) ListByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]consumption.Log, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, item_name, logged_at, created_at
		FROM consumption_logs
		WHERE employee_id = $1 AND logged_at >= $2 AND logged_at < $3
		ORDER BY logged_at
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list consumption logs: %w", err)
	}
	defer rows.Close()

	var logs []consumption.Log
	for rows.Next() {
		var log consumption.Log
		if err := rows.Scan(&log.ID, &log.EmployeeID, &log.ItemName, &log.LoggedAt, &log.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan consumption log: %w", err)
		}
		logs = append(logs, log)
	}

	return logs, rows.Err()
}

func (r *consumptionRepository) List(ctx context.Context, filter consumption.ListFilter) ([]consumption.Log, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != nil {
		where += fmt.Sprintf(" AND c.employee_id = $%d", argPos)
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.From != nil {
		where += fmt.Sprintf(" AND c.logged_at >= $%d", argPos)
		args = append(args, *filter.From)
		argPos++
	}
	if filter.To != nil {
		where += fmt.Sprintf(" AND c.logged_at < $%d", argPos)
		args = append(args, *filter.To)
		argPos++
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM consumption_logs c " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count consumption logs: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT c.id, c.employee_id, c.item_name, c.logged_at, c.created_at, e.full_name
		FROM consumption_logs c
		JOIN employees e ON e.id = c.employee_id
		%s
		ORDER BY c.logged_at DESC
		LIMIT $%d OFFSET $%d
	`, where, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list consumption logs: %w", err)
	}
	defer rows.Close()

	var logs []consumption.Log
	for rows.Next() {
		var log consumption.Log
		if err := rows.Scan(&log.ID, &log.EmployeeID, &log.ItemName, &log.LoggedAt, &log.CreatedAt, &log.EmployeeName); err != nil {
			return nil, 0, fmt.Errorf("failed to scan consumption log: %w", err)
		}
		logs = append(logs, log)
	}

	return logs, total, rows.Err()
}
