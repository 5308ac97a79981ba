package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nwtrack/networth_backend/internal/core/domain"
)

// TargetDateLayout is the wire format for goal target dates.
const TargetDateLayout = "2006-01-02"

// CreateGoalRequest defines the data needed to create a savings goal.
// UseNetWorth pins CurrentAmount to the live net-worth figure once, at
// creation time; the stored value is a snapshot, not a live binding.
type CreateGoalRequest struct {
	Name          string              `json:"name" binding:"required"`
	Category      domain.GoalCategory `json:"category" binding:"required,oneof=retirement emergency_fund house vacation debt_payoff other"`
	Description   string              `json:"description"`
	TargetAmount  float64             `json:"targetAmount" binding:"required,gt=0"`
	CurrentAmount float64             `json:"currentAmount" binding:"gte=0"`
	TargetDate    string              `json:"targetDate" binding:"required,datetime=2006-01-02"`
	UseNetWorth   bool                `json:"useNetWorth"`
}

// UpdateGoalRequest defines the fields allowed for updating a goal.
type UpdateGoalRequest struct {
	Name          *string              `json:"name" binding:"omitempty,min=1"`
	Category      *domain.GoalCategory `json:"category" binding:"omitempty,oneof=retirement emergency_fund house vacation debt_payoff other"`
	Description   *string              `json:"description"`
	TargetAmount  *float64             `json:"targetAmount" binding:"omitempty,gt=0"`
	CurrentAmount *float64             `json:"currentAmount" binding:"omitempty,gte=0"`
	TargetDate    *string              `json:"targetDate" binding:"omitempty,datetime=2006-01-02"`
	UseNetWorth   bool                 `json:"useNetWorth"`
}

// GoalProjectionResponse is the derived progress block returned per goal.
type GoalProjectionResponse struct {
	Percent       float64         `json:"percent"`
	TimeRemaining string          `json:"timeRemaining"`
	MonthlyTarget decimal.Decimal `json:"monthlyTarget"`
}

// GoalResponse defines the data returned for a goal, including its current
// projection.
type GoalResponse struct {
	GoalID        string                 `json:"goalID"`
	Name          string                 `json:"name"`
	Category      domain.GoalCategory    `json:"category"`
	Description   string                 `json:"description,omitempty"`
	TargetAmount  decimal.Decimal        `json:"targetAmount"`
	CurrentAmount decimal.Decimal        `json:"currentAmount"`
	TargetDate    string                 `json:"targetDate"`
	Projection    GoalProjectionResponse `json:"projection"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
}

// ListGoalsResponse wraps the list of goals.
type ListGoalsResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a domain.Goal and its projection to the response
// DTO. A negative monthly target (goal already overshot) is reported as
// zero: there is nothing left to save.
func ToGoalResponse(goal *domain.Goal, projection domain.GoalProjection) GoalResponse {
	monthlyTarget := projection.MonthlyTarget
	if monthlyTarget.IsNegative() {
		monthlyTarget = decimal.Zero
	}
	return GoalResponse{
		GoalID:        goal.GoalID,
		Name:          goal.Name,
		Category:      goal.Category,
		Description:   goal.Description,
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
		TargetDate:    goal.TargetDate.Format(TargetDateLayout),
		Projection: GoalProjectionResponse{
			Percent:       projection.Percent,
			TimeRemaining: projection.TimeRemaining,
			MonthlyTarget: monthlyTarget,
		},
		CreatedAt: goal.CreatedAt,
		UpdatedAt: goal.UpdatedAt,
	}
}
