package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nwtrack/networth_backend/internal/apperrors"
	"github.com/nwtrack/networth_backend/internal/core/domain"
	portsrepo "github.com/nwtrack/networth_backend/internal/core/ports/repositories"
)

type SnapshotRepository struct {
	db *pgxpool.Pool
}

func NewSnapshotRepository(db *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

var _ portsrepo.SnapshotRepositoryFacade = (*SnapshotRepository)(nil)

// SaveSnapshot inserts a snapshot. The unique index on (user_id, as_of_date)
// makes repeat reads on the same day overwrite that day's record instead of
// growing the history.
func (r *SnapshotRepository) SaveSnapshot(ctx context.Context, snapshot domain.NetWorthSnapshot) error {
	query := `
        INSERT INTO net_worth_snapshots (snapshot_id, user_id, net_worth, as_of, as_of_date)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (user_id, as_of_date) DO UPDATE SET
            net_worth = EXCLUDED.net_worth,
            as_of = EXCLUDED.as_of;
    `
	_, err := r.db.Exec(ctx, query,
		snapshot.SnapshotID,
		snapshot.UserID,
		snapshot.NetWorth,
		snapshot.AsOf,
		snapshot.AsOf.Format("2006-01-02"),
	)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

func (r *SnapshotRepository) FindLatestBefore(ctx context.Context, userID string, cutoff time.Time) (*domain.NetWorthSnapshot, error) {
	query := `
        SELECT snapshot_id, user_id, net_worth, as_of
        FROM net_worth_snapshots
        WHERE user_id = $1 AND as_of <= $2
        ORDER BY as_of DESC
        LIMIT 1;
    `
	var snap domain.NetWorthSnapshot
	err := r.db.QueryRow(ctx, query, userID, cutoff).Scan(
		&snap.SnapshotID,
		&snap.UserID,
		&snap.NetWorth,
		&snap.AsOf,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find latest snapshot: %w", err)
	}
	return &snap, nil
}

func (r *SnapshotRepository) ListSnapshots(ctx context.Context, userID string) ([]domain.NetWorthSnapshot, error) {
	query := `
        SELECT snapshot_id, user_id, net_worth, as_of
        FROM net_worth_snapshots
        WHERE user_id = $1
        ORDER BY as_of ASC;
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer rows.Close()

	snapshots := []domain.NetWorthSnapshot{}
	for rows.Next() {
		var snap domain.NetWorthSnapshot
		if err := rows.Scan(&snap.SnapshotID, &snap.UserID, &snap.NetWorth, &snap.AsOf); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot row: %w", err)
		}
		snapshots = append(snapshots, snap)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating snapshot rows: %w", rows.Err())
	}
	return snapshots, nil
}
