package repositories

import (
	"context"

	"github.com/nwtrack/networth_backend/internal/core/domain"
)

// GoalReader defines read operations for goal data.
type GoalReader interface {
	// FindGoalByID retrieves a specific goal by its unique identifier.
	FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error)

	// ListGoals retrieves all goals for a user.
	ListGoals(ctx context.Context, userID string) ([]domain.Goal, error)
}

// GoalWriter defines write operations for goal data.
type GoalWriter interface {
	// SaveGoal persists a new goal.
	SaveGoal(ctx context.Context, goal domain.Goal) error

	// UpdateGoal updates an existing goal's details.
	UpdateGoal(ctx context.Context, goal domain.Goal) error

	// DeleteGoal removes a goal from the collection.
	DeleteGoal(ctx context.Context, goalID string) error
}

// GoalRepositoryFacade combines all goal-related repository interfaces.
type GoalRepositoryFacade interface {
	GoalReader
	GoalWriter
}
