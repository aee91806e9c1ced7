package consumption

import "time"

// Log is one consumed item. Immutable once created; allowances are
// re-derived by counting logs inside the current calendar month, so
// there is no explicit monthly reset record.
type Log struct {
	ID         string
	EmployeeID string
	ItemName   string
	LoggedAt   time.Time
	CreatedAt  time.Time

	// Joined fields
	EmployeeName *string
}
