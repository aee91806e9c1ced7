package espresso

import "context"

// EspressoService defines business logic for espresso pull logs.
type EspressoService interface {
	LogPull(ctx context.Context, req CreatePullRequest) (PullResponse, error)
	Leaderboard(ctx context.Context, limit int) (LeaderboardResponse, error)
}
