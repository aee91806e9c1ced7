package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/brewhr/brewhr-backend-go/internal/domain/espresso"
	"github.com/brewhr/brewhr-backend-go/internal/pkg/database"
)

type espressoRepository struct {
	db *database.DB
}

func NewEspressoRepository(db *database.DB) espresso.EspressoRepository {
	return &espressoRepository{db: db}
}

func (r *espressoRepository) Create(ctx context.Context, log espresso.PullLog) (espresso.PullLog, error) {
	q := GetQuerier(ctx, r.db)

	if log.ID == "" {
		log.ID = uuid.New().String()
	}

	query := `
		INSERT INTO espresso_logs (id, employee_id, drink_type, pull_duration_sec, coffee_mass_grams, pulled_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, employee_id, drink_type, pull_duration_sec, coffee_mass_grams, pulled_at, created_at
	`

	var created espresso.PullLog
	err := q.QueryRow(ctx, query,
		log.ID, log.EmployeeID, log.DrinkType, log.PullDurationSec, log.CoffeeMassGrams, log.PulledAt,
	).Scan(
		&created.ID, &created.EmployeeID, &created.DrinkType,
		&created.PullDurationSec, &created.CoffeeMassGrams, &created.PulledAt, &created.CreatedAt,
	)
	if err != nil {
		return espresso.PullLog{}, fmt.Errorf("failed to create espresso log: %w", err)
	}

	return created, nil
}

func (r *espressoRepository) Leaderboard(ctx context.Context, limit int) ([]espresso.LeaderboardEntry, error) {
	q := GetQuerier(ctx, r.db)

	// Best ratio is grams per second; zero-duration pulls are excluded
	// from the ratio but still counted.
	query := `
		SELECT l.employee_id, e.full_name,
			   COUNT(*) AS pull_count,
			   AVG(l.pull_duration_sec) AS avg_duration_sec,
			   COALESCE(MAX(l.coffee_mass_grams / NULLIF(l.pull_duration_sec, 0)), 0) AS best_ratio
		FROM espresso_logs l
		JOIN employees e ON e.id = l.employee_id
		GROUP BY l.employee_id, e.full_name
		ORDER BY pull_count DESC, best_ratio DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []espresso.LeaderboardEntry
	for rows.Next() {
		var entry espresso.LeaderboardEntry
		if err := rows.Scan(
			&entry.EmployeeID, &entry.EmployeeName,
			&entry.PullCount, &entry.AvgDurationSec, &entry.BestRatio,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
