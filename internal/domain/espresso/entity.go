package espresso

import "time"

// PullLog is one espresso pull, feeding the leaderboard.
type PullLog struct {
	ID              string
	EmployeeID      string
	DrinkType       string
	PullDurationSec float64
	CoffeeMassGrams float64
	PulledAt        time.Time
	CreatedAt       time.Time

	// Joined fields
	EmployeeName *string
}
