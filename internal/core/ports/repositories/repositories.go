package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// Storage is always injected through this provider; there is no package-level
// singleton, so tests can swap in in-memory fixtures.
type RepositoryProvider struct {
	AccountRepo  AccountRepositoryFacade
	GoalRepo     GoalRepositoryFacade
	SnapshotRepo SnapshotRepositoryFacade
	SettingsRepo SettingsRepositoryFacade
	UserRepo     UserRepositoryFacade
}
