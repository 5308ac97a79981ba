package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalCategory is the closed set of savings goal categories.
type GoalCategory string

const (
	GoalRetirement    GoalCategory = "retirement"
	GoalEmergencyFund GoalCategory = "emergency_fund"
	GoalHouse         GoalCategory = "house"
	GoalVacation      GoalCategory = "vacation"
	GoalDebtPayoff    GoalCategory = "debt_payoff"
	GoalOther         GoalCategory = "other"
)

// Goal represents a savings target to be reached by a target date.
// CurrentAmount is a snapshot: it may be pinned to the live net-worth figure
// at creation or edit time, but it never tracks net worth afterwards.
type Goal struct {
	GoalID        string          `json:"goalID"`
	UserID        string          `json:"userID"`
	Name          string          `json:"name"`
	Category      GoalCategory    `json:"category"`
	Description   string          `json:"description,omitempty"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	TargetDate    time.Time       `json:"targetDate"`
	AuditFields
}

// ValidGoalCategory reports whether c belongs to the closed enumeration.
func ValidGoalCategory(c GoalCategory) bool {
	switch c {
	case GoalRetirement, GoalEmergencyFund, GoalHouse, GoalVacation,
		GoalDebtPayoff, GoalOther:
		return true
	}
	return false
}
