package networth_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nwtrack/networth_backend/internal/core/domain"
	"github.com/nwtrack/networth_backend/internal/core/networth"
)

func account(balance float64, isAsset bool) domain.Account {
	return domain.Account{
		Balance: decimal.NewFromFloat(balance),
		IsAsset: isAsset,
	}
}

func TestComputeSummary_EmptyInput(t *testing.T) {
	summary := networth.ComputeSummary(nil)

	assert.True(t, summary.TotalAssets.IsZero())
	assert.True(t, summary.TotalLiabilities.IsZero())
	assert.True(t, summary.NetWorth.IsZero())
	assert.True(t, summary.MonthlyChange.IsZero())
	assert.Zero(t, summary.ChangePercentage)
}

func TestComputeSummary_SingleAsset(t *testing.T) {
	summary := networth.ComputeSummary([]domain.Account{account(500, true)})

	assert.True(t, summary.TotalAssets.Equal(decimal.NewFromInt(500)))
	assert.True(t, summary.TotalLiabilities.IsZero())
	assert.True(t, summary.NetWorth.Equal(decimal.NewFromInt(500)))
}

func TestComputeSummary_SingleLiability(t *testing.T) {
	summary := networth.ComputeSummary([]domain.Account{account(250, false)})

	assert.True(t, summary.TotalAssets.IsZero())
	assert.True(t, summary.TotalLiabilities.Equal(decimal.NewFromInt(250)))
	assert.True(t, summary.NetWorth.Equal(decimal.NewFromInt(-250)))
}

func TestComputeSummary_MixedAccounts(t *testing.T) {
	summary := networth.ComputeSummary([]domain.Account{
		account(1000, true),
		account(300, false),
	})

	assert.True(t, summary.NetWorth.Equal(decimal.NewFromInt(700)))
}

func TestComputeSummary_NetWorthIdentity(t *testing.T) {
	accounts := []domain.Account{
		account(1234.56, true),
		account(0.01, true),
		account(789.1, false),
		account(250, false),
		account(99999.99, true),
	}

	summary := networth.ComputeSummary(accounts)

	assert.True(t, summary.NetWorth.Equal(summary.TotalAssets.Sub(summary.TotalLiabilities)))
}

func TestComputeSummary_OrderIndependent(t *testing.T) {
	accounts := []domain.Account{
		account(100.1, true),
		account(200.2, false),
		account(300.3, true),
		account(400.4, false),
	}
	reversed := make([]domain.Account, len(accounts))
	for i, acc := range accounts {
		reversed[len(accounts)-1-i] = acc
	}

	a := networth.ComputeSummary(accounts)
	b := networth.ComputeSummary(reversed)

	assert.True(t, a.TotalAssets.Equal(b.TotalAssets))
	assert.True(t, a.TotalLiabilities.Equal(b.TotalLiabilities))
	assert.True(t, a.NetWorth.Equal(b.NetWorth))
}

func TestComputeSummary_ZeroBalanceContributesNothing(t *testing.T) {
	summary := networth.ComputeSummary([]domain.Account{
		account(500, true),
		{IsAsset: true}, // zero-value balance
	})

	assert.True(t, summary.TotalAssets.Equal(decimal.NewFromInt(500)))
}

func TestComputeSummaryWithPrior(t *testing.T) {
	accounts := []domain.Account{account(1100, true)}
	prior := &domain.NetWorthSnapshot{NetWorth: decimal.NewFromInt(1000)}

	summary := networth.ComputeSummaryWithPrior(accounts, prior)

	require.True(t, summary.NetWorth.Equal(decimal.NewFromInt(1100)))
	assert.True(t, summary.MonthlyChange.Equal(decimal.NewFromInt(100)))
	assert.InDelta(t, 10.0, summary.ChangePercentage, 1e-9)
}

func TestComputeSummaryWithPrior_NilPriorIsNeutral(t *testing.T) {
	summary := networth.ComputeSummaryWithPrior([]domain.Account{account(1100, true)}, nil)

	assert.True(t, summary.MonthlyChange.IsZero())
	assert.Zero(t, summary.ChangePercentage)
}

func TestChangeMetrics_ZeroPriorYieldsZeroPercentage(t *testing.T) {
	change, pct := networth.ChangeMetrics(decimal.NewFromInt(500), decimal.Zero)

	assert.True(t, change.Equal(decimal.NewFromInt(500)))
	assert.Zero(t, pct)
}

func TestChangeMetrics_NegativePriorUsesAbsoluteBase(t *testing.T) {
	change, pct := networth.ChangeMetrics(decimal.NewFromInt(-50), decimal.NewFromInt(-100))

	assert.True(t, change.Equal(decimal.NewFromInt(50)))
	assert.InDelta(t, 50.0, pct, 1e-9)
}
