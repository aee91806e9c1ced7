package consumption

import "context"

// ConsumptionService defines business logic for consumption logs and
// the monthly allowance derived from them.
type ConsumptionService interface {
	Log(ctx context.Context, req CreateLogRequest) (LogResponse, error)
	List(ctx context.Context, filter ListFilter) (ListLogResponse, error)

	// Allowance reports the remaining drink and meal quota for the
	// month containing the given month/year pair.
	Allowance(ctx context.Context, employeeID string, month, year int) (AllowanceResponse, error)
}
