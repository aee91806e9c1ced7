package espresso

import (
	"context"
	"fmt"
	"time"

	"github.com/brewhr/brewhr-backend-go/internal/domain/employee"
	"github.com/brewhr/brewhr-backend-go/internal/domain/espresso"
	"github.com/brewhr/brewhr-backend-go/internal/pkg/sse"
	"github.com/brewhr/brewhr-backend-go/internal/pkg/validator"
)

// TopicLeaderboard is the SSE topic carrying leaderboard refreshes.
const TopicLeaderboard = "espresso:leaderboard"

const defaultLeaderboardLimit = 10

type EspressoServiceImpl struct {
	espressoRepo espresso.EspressoRepository
	employeeRepo employee.EmployeeRepository
	hub          *sse.Hub
	loc          *time.Location
	now          func() time.Time
}

func NewEspressoService(
	espressoRepo espresso.EspressoRepository,
	employeeRepo employee.EmployeeRepository,
	hub *sse.Hub,
	loc *time.Location,
) espresso.EspressoService {
	return &EspressoServiceImpl{
		espressoRepo: espressoRepo,
		employeeRepo: employeeRepo,
		hub:          hub,
		loc:          loc,
		now:          time.Now,
	}
}

// LogPull implements espresso.EspressoService. Every logged pull pushes
// a fresh leaderboard to dashboard subscribers.
func (s *EspressoServiceImpl) LogPull(ctx context.Context, req espresso.CreatePullRequest) (espresso.PullResponse, error) {
	if err := req.Validate(); err != nil {
		return espresso.PullResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return espresso.PullResponse{}, err
	}

	pulledAt := s.now().In(s.loc)
	if req.PulledAt != nil {
		t, _ := validator.IsValidDateTime(*req.PulledAt)
		pulledAt = t.In(s.loc)
	}

	created, err := s.espressoRepo.Create(ctx, espresso.PullLog{
		EmployeeID:      emp.ID,
		DrinkType:       req.DrinkType,
		PullDurationSec: req.PullDurationSec,
		CoffeeMassGrams: req.CoffeeMassGrams,
		PulledAt:        pulledAt,
	})
	if err != nil {
		return espresso.PullResponse{}, fmt.Errorf("failed to create espresso log: %w", err)
	}

	if s.hub != nil {
		if entries, err := s.espressoRepo.Leaderboard(ctx, defaultLeaderboardLimit); err == nil {
			s.hub.Publish(sse.Event{
				Topic: TopicLeaderboard,
				Event: "leaderboard_updated",
				Data:  espresso.LeaderboardResponse{Entries: entries},
			})
		}
	}

	return mapToResponse(created), nil
}

// Leaderboard implements espresso.EspressoService.
func (s *EspressoServiceImpl) Leaderboard(ctx context.Context, limit int) (espresso.LeaderboardResponse, error) {
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}

	entries, err := s.espressoRepo.Leaderboard(ctx, limit)
	if err != nil {
		return espresso.LeaderboardResponse{}, fmt.Errorf("failed to load leaderboard: %w", err)
	}
	if entries == nil {
		entries = []espresso.LeaderboardEntry{}
	}

	return espresso.LeaderboardResponse{Entries: entries}, nil
}

func mapToResponse(log espresso.PullLog) espresso.PullResponse {
	employeeName := ""
	if log.EmployeeName != nil {
		employeeName = *log.EmployeeName
	}

	return espresso.PullResponse{
		ID:              log.ID,
		EmployeeID:      log.EmployeeID,
		EmployeeName:    employeeName,
		DrinkType:       log.DrinkType,
		PullDurationSec: log.PullDurationSec,
		CoffeeMassGrams: log.CoffeeMassGrams,
		PulledAt:        log.PulledAt.Format(time.RFC3339),
	}
}
