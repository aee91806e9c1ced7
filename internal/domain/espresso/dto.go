package espresso

import (
	"github.com/brewhr/brewhr-backend-go/internal/pkg/validator"
)

type CreatePullRequest struct {
	EmployeeID      string  `json:"employee_id"`
	DrinkType       string  `json:"drink_type"`
	PullDurationSec float64 `json:"pull_duration_sec"`
	CoffeeMassGrams float64 `json:"coffee_mass_grams"`
	PulledAt        *string `json:"pulled_at,omitempty"` // RFC3339, defaults to now
}

func (r *CreatePullRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.DrinkType) {
		errs = append(errs, validator.ValidationError{Field: "drink_type", Message: "is required"})
	}
	if r.PullDurationSec < 0 {
		errs = append(errs, validator.ValidationError{Field: "pull_duration_sec", Message: "must be non-negative"})
	}
	if r.CoffeeMassGrams < 0 {
		errs = append(errs, validator.ValidationError{Field: "coffee_mass_grams", Message: "must be non-negative"})
	}
	if r.PulledAt != nil {
		if _, ok := validator.IsValidDateTime(*r.PulledAt); !ok {
			errs = append(errs, validator.ValidationError{Field: "pulled_at", Message: "must be an RFC3339 timestamp"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PullResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    string  `json:"employee_name,omitempty"`
	DrinkType       string  `json:"drink_type"`
	PullDurationSec float64 `json:"pull_duration_sec"`
	CoffeeMassGrams float64 `json:"coffee_mass_grams"`
	PulledAt        string  `json:"pulled_at"`
}

// LeaderboardEntry aggregates one employee's pulls.
type LeaderboardEntry struct {
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   string  `json:"employee_name"`
	PullCount      int64   `json:"pull_count"`
	AvgDurationSec float64 `json:"avg_duration_sec"`
	BestRatio      float64 `json:"best_ratio"` // grams per second
}

type LeaderboardResponse struct {
	Entries []LeaderboardEntry `json:"entries"`
}
