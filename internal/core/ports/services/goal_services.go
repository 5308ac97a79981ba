package services

import (
	"context"

	"github.com/nwtrack/networth_backend/internal/core/domain"
	"github.com/nwtrack/networth_backend/internal/dto"
)

// GoalSvcFacade defines the business operations on savings goals.
type GoalSvcFacade interface {
	CreateGoal(ctx context.Context, userID string, req dto.CreateGoalRequest) (*domain.Goal, error)
	GetGoalByID(ctx context.Context, userID string, goalID string) (*domain.Goal, error)
	ListGoals(ctx context.Context, userID string) ([]domain.Goal, error)
	UpdateGoal(ctx context.Context, userID string, goalID string, req dto.UpdateGoalRequest) (*domain.Goal, error)
	DeleteGoal(ctx context.Context, userID string, goalID string) error

	// Progress computes the projection for a goal against its stored
	// current-amount snapshot.
	Progress(ctx context.Context, goal domain.Goal) domain.GoalProjection
}
