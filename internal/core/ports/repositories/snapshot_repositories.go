package repositories

import (
	"context"
	"time"

	"github.com/nwtrack/networth_backend/internal/core/domain"
)

// SnapshotRepositoryFacade stores the net-worth history used for
// month-over-month change metrics.
type SnapshotRepositoryFacade interface {
	// SaveSnapshot persists a snapshot, replacing any existing snapshot for
	// the same user and calendar day.
	SaveSnapshot(ctx context.Context, snapshot domain.NetWorthSnapshot) error

	// FindLatestBefore returns the newest snapshot taken at or before cutoff,
	// or apperrors.ErrNotFound when the history does not reach back that far.
	FindLatestBefore(ctx context.Context, userID string, cutoff time.Time) (*domain.NetWorthSnapshot, error)

	// ListSnapshots returns a user's snapshots ordered oldest first.
	ListSnapshots(ctx context.Context, userID string) ([]domain.NetWorthSnapshot, error)
}
