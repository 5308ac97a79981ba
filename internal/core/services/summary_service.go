package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nwtrack/networth_backend/internal/apperrors"
	"github.com/nwtrack/networth_backend/internal/core/domain"
	"github.com/nwtrack/networth_backend/internal/core/networth"
	portsrepo "github.com/nwtrack/networth_backend/internal/core/ports/repositories"
	portssvc "github.com/nwtrack/networth_backend/internal/core/ports/services"
)

// changeBaseline is how far back the summary looks for a prior snapshot when
// computing the month-over-month change metrics.
const changeBaseline = 30 * 24 * time.Hour

// summaryService implements the SummarySvcFacade interface
type summaryService struct {
	BaseService
	accountRepo  portsrepo.AccountReader
	snapshotRepo portsrepo.SnapshotRepositoryFacade
}

// NewSummaryService creates a new summary service with the provided dependencies
func NewSummaryService(accountRepo portsrepo.AccountReader, snapshotRepo portsrepo.SnapshotRepositoryFacade) portssvc.SummarySvcFacade {
	return &summaryService{
		accountRepo:  accountRepo,
		snapshotRepo: snapshotRepo,
	}
}

var _ portssvc.SummarySvcFacade = (*summaryService)(nil)

// GetSummary recomputes the summary from the user's full account set. The
// change metrics compare against the newest snapshot at least the baseline
// period old; without one they stay at their neutral zeros. Each read also
// records today's snapshot so future reads have a baseline.
func (s *summaryService) GetSummary(ctx context.Context, userID string) (*domain.NetWorthSummary, error) {
	accounts, err := s.accountRepo.ListAllAccounts(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load accounts for summary",
			slog.String("user_id", userID))
		return nil, err
	}

	now := time.Now()
	prior, err := s.snapshotRepo.FindLatestBefore(ctx, userID, now.Add(-changeBaseline))
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to load prior snapshot",
			slog.String("user_id", userID))
		return nil, err
	}

	summary := networth.ComputeSummaryWithPrior(accounts, prior)

	snapshot := domain.NetWorthSnapshot{
		SnapshotID: uuid.NewString(),
		UserID:     userID,
		NetWorth:   summary.NetWorth,
		AsOf:       now,
	}
	if err := s.snapshotRepo.SaveSnapshot(ctx, snapshot); err != nil {
		// A failed snapshot write degrades future change metrics but must
		// not fail the current read.
		s.LogError(ctx, err, "Failed to record net-worth snapshot",
			slog.String("user_id", userID))
	}

	return &summary, nil
}

// GetHistory returns the recorded net-worth snapshots, oldest first.
func (s *summaryService) GetHistory(ctx context.Context, userID string) ([]domain.NetWorthSnapshot, error) {
	snapshots, err := s.snapshotRepo.ListSnapshots(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list snapshots",
			slog.String("user_id", userID))
		return nil, err
	}
	if snapshots == nil {
		return []domain.NetWorthSnapshot{}, nil
	}
	return snapshots, nil
}
