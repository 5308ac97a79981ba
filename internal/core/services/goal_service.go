package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nwtrack/networth_backend/internal/apperrors"
	"github.com/nwtrack/networth_backend/internal/core/domain"
	"github.com/nwtrack/networth_backend/internal/core/networth"
	portsrepo "github.com/nwtrack/networth_backend/internal/core/ports/repositories"
	portssvc "github.com/nwtrack/networth_backend/internal/core/ports/services"
	"github.com/nwtrack/networth_backend/internal/dto"
)

// goalService implements the GoalSvcFacade interface
type goalService struct {
	BaseService
	goalRepo    portsrepo.GoalRepositoryFacade
	accountRepo portsrepo.AccountReader
}

// NewGoalService creates a new goal service with the provided dependencies.
// The account reader backs the use-net-worth option, which pins a goal's
// current amount to the live net-worth figure at write time.
func NewGoalService(goalRepo portsrepo.GoalRepositoryFacade, accountRepo portsrepo.AccountReader) portssvc.GoalSvcFacade {
	return &goalService{
		goalRepo:    goalRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.GoalSvcFacade = (*goalService)(nil)

// CreateGoal creates a new savings goal for the user.
func (s *goalService) CreateGoal(ctx context.Context, userID string, req dto.CreateGoalRequest) (*domain.Goal, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	targetDate, err := time.Parse(dto.TargetDateLayout, req.TargetDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid target date: %s", apperrors.ErrValidation, req.TargetDate)
	}

	currentAmount := decimal.NewFromFloat(req.CurrentAmount)
	if req.UseNetWorth {
		currentAmount, err = s.currentNetWorth(ctx, userID)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now()
	goal := domain.Goal{
		GoalID:        uuid.NewString(),
		UserID:        userID,
		Name:          req.Name,
		Category:      req.Category,
		Description:   req.Description,
		TargetAmount:  decimal.NewFromFloat(req.TargetAmount),
		CurrentAmount: currentAmount,
		TargetDate:    targetDate,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.goalRepo.SaveGoal(ctx, goal); err != nil {
		s.LogError(ctx, err, "Failed to save goal",
			slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "Goal created",
		slog.String("goal_id", goal.GoalID),
		slog.String("category", string(goal.Category)))
	return &goal, nil
}

// GetGoalByID retrieves a goal, enforcing user ownership.
func (s *goalService) GetGoalByID(ctx context.Context, userID string, goalID string) (*domain.Goal, error) {
	goal, err := s.goalRepo.FindGoalByID(ctx, goalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find goal by ID",
				slog.String("goal_id", goalID))
		}
		return nil, err
	}
	if goal.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	return goal, nil
}

// ListGoals retrieves all goals for the user.
func (s *goalService) ListGoals(ctx context.Context, userID string) ([]domain.Goal, error) {
	goals, err := s.goalRepo.ListGoals(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list goals",
			slog.String("user_id", userID))
		return nil, err
	}
	if goals == nil {
		return []domain.Goal{}, nil
	}
	return goals, nil
}

// UpdateGoal applies the provided fields to an existing goal. When the
// request asks to use net worth, the current amount is re-pinned to the live
// figure regardless of any explicit amount in the payload.
func (s *goalService) UpdateGoal(ctx context.Context, userID string, goalID string, req dto.UpdateGoalRequest) (*domain.Goal, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	goal, err := s.GetGoalByID(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		goal.Name = *req.Name
	}
	if req.Category != nil {
		goal.Category = *req.Category
	}
	if req.Description != nil {
		goal.Description = *req.Description
	}
	if req.TargetAmount != nil {
		goal.TargetAmount = decimal.NewFromFloat(*req.TargetAmount)
	}
	if req.CurrentAmount != nil {
		goal.CurrentAmount = decimal.NewFromFloat(*req.CurrentAmount)
	}
	if req.TargetDate != nil {
		targetDate, err := time.Parse(dto.TargetDateLayout, *req.TargetDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid target date: %s", apperrors.ErrValidation, *req.TargetDate)
		}
		goal.TargetDate = targetDate
	}
	if req.UseNetWorth {
		netWorth, err := s.currentNetWorth(ctx, userID)
		if err != nil {
			return nil, err
		}
		goal.CurrentAmount = netWorth
	}
	goal.UpdatedAt = time.Now()

	if err := s.goalRepo.UpdateGoal(ctx, *goal); err != nil {
		s.LogError(ctx, err, "Failed to update goal",
			slog.String("goal_id", goalID))
		return nil, err
	}

	s.LogInfo(ctx, "Goal updated", slog.String("goal_id", goalID))
	return goal, nil
}

// DeleteGoal removes a goal.
func (s *goalService) DeleteGoal(ctx context.Context, userID string, goalID string) error {
	if _, err := s.GetGoalByID(ctx, userID, goalID); err != nil {
		return err
	}

	if err := s.goalRepo.DeleteGoal(ctx, goalID); err != nil {
		s.LogError(ctx, err, "Failed to delete goal",
			slog.String("goal_id", goalID))
		return err
	}

	s.LogInfo(ctx, "Goal deleted", slog.String("goal_id", goalID))
	return nil
}

// Progress computes the projection for a goal against its stored
// current-amount snapshot.
func (s *goalService) Progress(ctx context.Context, goal domain.Goal) domain.GoalProjection {
	return networth.GoalProgress(goal, time.Now())
}

func (s *goalService) currentNetWorth(ctx context.Context, userID string) (decimal.Decimal, error) {
	accounts, err := s.accountRepo.ListAllAccounts(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load accounts for net-worth pin",
			slog.String("user_id", userID))
		return decimal.Zero, err
	}
	return networth.ComputeSummary(accounts).NetWorth, nil
}
