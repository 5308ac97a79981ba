package domain

import (
	"github.com/shopspring/decimal"
)

// NetWorthSummary is a derived, ephemeral value; it is recomputed from the
// full account set on every read and never persisted.
type NetWorthSummary struct {
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	NetWorth         decimal.Decimal `json:"netWorth"`
	MonthlyChange    decimal.Decimal `json:"monthlyChange"`
	ChangePercentage float64         `json:"changePercentage"`
}

// GoalProjection is the per-goal derived value returned alongside a goal.
type GoalProjection struct {
	Percent       float64         `json:"percent"`
	TimeRemaining string          `json:"timeRemaining"`
	MonthlyTarget decimal.Decimal `json:"monthlyTarget"`
}
