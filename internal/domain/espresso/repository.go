package espresso

import "context"

// EspressoRepository defines data access methods for espresso pull logs.
type EspressoRepository interface {
	Create(ctx context.Context, log PullLog) (PullLog, error)
	Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error)
}
