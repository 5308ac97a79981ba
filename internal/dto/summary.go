package dto

import (
	"github.com/shopspring/decimal"

	"github.com/nwtrack/networth_backend/internal/core/domain"
	"github.com/nwtrack/networth_backend/internal/utils"
)

// NetWorthSummaryResponse is the aggregated summary returned to the UI,
// with display strings pre-rendered using the user's settings.
type NetWorthSummaryResponse struct {
	TotalAssets      decimal.Decimal          `json:"totalAssets"`
	TotalLiabilities decimal.Decimal          `json:"totalLiabilities"`
	NetWorth         decimal.Decimal          `json:"netWorth"`
	MonthlyChange    decimal.Decimal          `json:"monthlyChange"`
	ChangePercentage float64                  `json:"changePercentage"`
	Formatted        SummaryFormattedResponse `json:"formatted"`
}

// SummaryFormattedResponse carries locale/currency formatted display values.
type SummaryFormattedResponse struct {
	TotalAssets      string `json:"totalAssets"`
	TotalLiabilities string `json:"totalLiabilities"`
	NetWorth         string `json:"netWorth"`
	MonthlyChange    string `json:"monthlyChange"`
	ChangePercentage string `json:"changePercentage"`
}

// SnapshotResponse is one historical net-worth data point.
type SnapshotResponse struct {
	NetWorth decimal.Decimal `json:"netWorth"`
	AsOf     string          `json:"asOf"`
}

// HistoryResponse wraps the snapshot series, oldest first.
type HistoryResponse struct {
	Snapshots []SnapshotResponse `json:"snapshots"`
}

// ToNetWorthSummaryResponse renders a summary with the given settings.
func ToNetWorthSummaryResponse(summary *domain.NetWorthSummary, settings *domain.UserSettings) NetWorthSummaryResponse {
	return NetWorthSummaryResponse{
		TotalAssets:      summary.TotalAssets,
		TotalLiabilities: summary.TotalLiabilities,
		NetWorth:         summary.NetWorth,
		MonthlyChange:    summary.MonthlyChange,
		ChangePercentage: summary.ChangePercentage,
		Formatted: SummaryFormattedResponse{
			TotalAssets:      utils.FormatCurrency(summary.TotalAssets, settings),
			TotalLiabilities: utils.FormatCurrency(summary.TotalLiabilities, settings),
			NetWorth:         utils.FormatCurrency(summary.NetWorth, settings),
			MonthlyChange:    utils.FormatCurrency(summary.MonthlyChange.Abs(), settings),
			ChangePercentage: utils.FormatPercentage(summary.ChangePercentage),
		},
	}
}

// ToHistoryResponse converts a snapshot series to its response DTO.
func ToHistoryResponse(snapshots []domain.NetWorthSnapshot) HistoryResponse {
	res := make([]SnapshotResponse, len(snapshots))
	for i, s := range snapshots {
		res[i] = SnapshotResponse{
			NetWorth: s.NetWorth,
			AsOf:     s.AsOf.Format(TargetDateLayout),
		}
	}
	return HistoryResponse{Snapshots: res}
}
