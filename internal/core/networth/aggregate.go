// Package networth is the pure computation core of the application: the
// net-worth aggregator and the goal projection calculator. Every function is
// stateless and total over its inputs; callers pass full value snapshots and
// get derived values back. Nothing here touches storage or returns an error.
package networth

import (
	"github.com/shopspring/decimal"

	"github.com/nwtrack/networth_backend/internal/core/domain"
)

// ComputeSummary reduces a snapshot of accounts into summary metrics.
// Accounts are partitioned strictly on the IsAsset flag; no other
// classification rule applies. An empty input yields an all-zero summary.
// MonthlyChange and ChangePercentage are left at their neutral zero values;
// use ComputeSummaryWithPrior when a historical snapshot is available.
func ComputeSummary(accounts []domain.Account) domain.NetWorthSummary {
	totalAssets := decimal.Zero
	totalLiabilities := decimal.Zero

	for _, acc := range accounts {
		if acc.IsAsset {
			totalAssets = totalAssets.Add(acc.Balance)
		} else {
			totalLiabilities = totalLiabilities.Add(acc.Balance)
		}
	}

	return domain.NetWorthSummary{
		TotalAssets:      totalAssets,
		TotalLiabilities: totalLiabilities,
		NetWorth:         totalAssets.Sub(totalLiabilities),
	}
}

// ComputeSummaryWithPrior computes the summary and fills in the
// period-over-period change metrics against a prior snapshot. A nil prior
// leaves both change metrics at zero.
func ComputeSummaryWithPrior(accounts []domain.Account, prior *domain.NetWorthSnapshot) domain.NetWorthSummary {
	summary := ComputeSummary(accounts)
	if prior == nil {
		return summary
	}
	summary.MonthlyChange, summary.ChangePercentage = ChangeMetrics(summary.NetWorth, prior.NetWorth)
	return summary
}

// ChangeMetrics returns the absolute and relative change of current versus
// prior. A prior of zero yields a zero percentage rather than a division by
// zero; the absolute delta is still reported.
func ChangeMetrics(current, prior decimal.Decimal) (decimal.Decimal, float64) {
	change := current.Sub(prior)
	if prior.IsZero() {
		return change, 0
	}
	pct, _ := change.Div(prior.Abs()).Float64()
	return change, pct * 100
}
