package services

import (
	"context"

	"github.com/nwtrack/networth_backend/internal/core/domain"
)

// SummarySvcFacade computes the net-worth summary from the current account
// snapshot. The computation itself is pure; the service only supplies the
// fully loaded collection and the historical baseline.
type SummarySvcFacade interface {
	// GetSummary recomputes the summary from the user's full account set and
	// records today's net-worth snapshot for future change metrics.
	GetSummary(ctx context.Context, userID string) (*domain.NetWorthSummary, error)

	// GetHistory returns the recorded net-worth snapshots, oldest first.
	GetHistory(ctx context.Context, userID string) ([]domain.NetWorthSnapshot, error)
}
