package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nwtrack/networth_backend/internal/apperrors"
	"github.com/nwtrack/networth_backend/internal/core/domain"
	portsrepo "github.com/nwtrack/networth_backend/internal/core/ports/repositories"
)

type GoalRepository struct {
	db *pgxpool.Pool
}

func NewGoalRepository(db *pgxpool.Pool) *GoalRepository {
	return &GoalRepository{db: db}
}

var _ portsrepo.GoalRepositoryFacade = (*GoalRepository)(nil)

const goalColumns = `goal_id, user_id, name, category, description, target_amount, current_amount, target_date, created_at, updated_at`

func scanGoal(row pgx.Row) (*domain.Goal, error) {
	var goal domain.Goal
	err := row.Scan(
		&goal.GoalID,
		&goal.UserID,
		&goal.Name,
		&goal.Category,
		&goal.Description,
		&goal.TargetAmount,
		&goal.CurrentAmount,
		&goal.TargetDate,
		&goal.CreatedAt,
		&goal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *GoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	query := `
        INSERT INTO goals (goal_id, user_id, name, category, description, target_amount, current_amount, target_date, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.db.Exec(ctx, query,
		goal.GoalID,
		goal.UserID,
		goal.Name,
		goal.Category,
		goal.Description,
		goal.TargetAmount,
		goal.CurrentAmount,
		goal.TargetDate,
		goal.CreatedAt,
		goal.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save goal: %w", err)
	}
	return nil
}

func (r *GoalRepository) FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE goal_id = $1;`

	goal, err := scanGoal(r.db.QueryRow(ctx, query, goalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find goal by ID: %w", err)
	}
	return goal, nil
}

func (r *GoalRepository) ListGoals(ctx context.Context, userID string) ([]domain.Goal, error) {
	query := `
        SELECT ` + goalColumns + `
        FROM goals
        WHERE user_id = $1
        ORDER BY target_date ASC;
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer rows.Close()

	goals := []domain.Goal{}
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal row: %w", err)
		}
		goals = append(goals, *goal)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating goal rows: %w", rows.Err())
	}
	return goals, nil
}

func (r *GoalRepository) UpdateGoal(ctx context.Context, goal domain.Goal) error {
	query := `
        UPDATE goals
        SET name = $1, category = $2, description = $3, target_amount = $4, current_amount = $5, target_date = $6, updated_at = $7
        WHERE goal_id = $8;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		goal.Name,
		goal.Category,
		goal.Description,
		goal.TargetAmount,
		goal.CurrentAmount,
		goal.TargetDate,
		goal.UpdatedAt,
		goal.GoalID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update goal query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *GoalRepository) DeleteGoal(ctx context.Context, goalID string) error {
	query := `DELETE FROM goals WHERE goal_id = $1;`

	cmdTag, err := r.db.Exec(ctx, query, goalID)
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
