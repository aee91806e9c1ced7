package consumption

import (
	"context"
	"time"
)

// ConsumptionRepository defines data access methods for consumption logs.
type ConsumptionRepository interface {
	Create(ctx context.Context, log Log) (Log, error)

	// ListByEmployeeRange returns logs with logged_at in [from, to).
	ListByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]Log, error)

	List(ctx context.Context, filter ListFilter) ([]Log, int64, error)
}
