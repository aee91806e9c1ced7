package consumption

import (
	"strings"

	"github.com/brewhr/brewhr-backend-go/internal/config"
	"github.com/brewhr/brewhr-backend-go/internal/domain/consumption"
)

// CountConsumed buckets logs into drinks and meals by item name,
// case-insensitively. Items in neither list count against nothing;
// the log still exists for auditing.
func CountConsumed(logs []consumption.Log, cfg config.AllowanceConfig) (drinks, meals int) {
	drinkSet := nameSet(cfg.DrinkItems)
	mealSet := nameSet(cfg.MealItems)

	for _, log := range logs {
		name := strings.ToLower(strings.TrimSpace(log.ItemName))
		switch {
		case drinkSet[name]:
			drinks++
		case mealSet[name]:
			meals++
		}
	}
	return drinks, meals
}

func nameSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[strings.ToLower(strings.TrimSpace(item))] = true
	}
	return set
}
