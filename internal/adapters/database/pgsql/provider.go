package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/nwtrack/networth_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider builds the full repository set backed by a shared
// pgx connection pool.
func NewRepositoryProvider(db *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		AccountRepo:  NewAccountRepository(db),
		GoalRepo:     NewGoalRepository(db),
		SnapshotRepo: NewSnapshotRepository(db),
		SettingsRepo: NewSettingsRepository(db),
		UserRepo:     NewUserRepository(db),
	}
}
