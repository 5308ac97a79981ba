// Package memory provides a map-backed implementation of the repository
// ports. It exists for local development and tests, selected with
// STORAGE_DRIVER=memory, and holds nothing across restarts.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/nwtrack/networth_backend/internal/apperrors"
	"github.com/nwtrack/networth_backend/internal/core/domain"
	portsrepo "github.com/nwtrack/networth_backend/internal/core/ports/repositories"
)

// Store implements every repository facade over in-process maps guarded by
// one RWMutex. Contention is irrelevant at the scale this driver serves.
type Store struct {
	mu        sync.RWMutex
	accounts  map[string]domain.Account
	goals     map[string]domain.Goal
	snapshots map[string]domain.NetWorthSnapshot
	settings  map[string]domain.UserSettings
	users     map[string]domain.User
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		accounts:  make(map[string]domain.Account),
		goals:     make(map[string]domain.Goal),
		snapshots: make(map[string]domain.NetWorthSnapshot),
		settings:  make(map[string]domain.UserSettings),
		users:     make(map[string]domain.User),
	}
}

// NewRepositoryProvider builds the full repository set backed by one store.
func NewRepositoryProvider() *portsrepo.RepositoryProvider {
	store := NewStore()
	return &portsrepo.RepositoryProvider{
		AccountRepo:  store,
		GoalRepo:     store,
		SnapshotRepo: store,
		SettingsRepo: store,
		UserRepo:     store,
	}
}

var (
	_ portsrepo.AccountRepositoryFacade  = (*Store)(nil)
	_ portsrepo.GoalRepositoryFacade     = (*Store)(nil)
	_ portsrepo.SnapshotRepositoryFacade = (*Store)(nil)
	_ portsrepo.SettingsRepositoryFacade = (*Store)(nil)
	_ portsrepo.UserRepositoryFacade     = (*Store)(nil)
)

// --- accounts ---

func (s *Store) SaveAccount(ctx context.Context, account domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[account.AccountID] = account
	return nil
}

func (s *Store) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acc, ok := s.accounts[accountID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &acc, nil
}

func (s *Store) ListAccounts(ctx context.Context, userID string, limit int, offset int) ([]domain.Account, error) {
	all, err := s.ListAllAccounts(ctx, userID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= len(all) {
		return []domain.Account{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (s *Store) ListAllAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	accounts := []domain.Account{}
	for _, acc := range s.accounts {
		if acc.UserID == userID {
			accounts = append(accounts, acc)
		}
	}
	sort.Slice(accounts, func(i, j int) bool {
		if accounts[i].CreatedAt.Equal(accounts[j].CreatedAt) {
			return accounts[i].AccountID < accounts[j].AccountID
		}
		return accounts[i].CreatedAt.Before(accounts[j].CreatedAt)
	})
	return accounts, nil
}

func (s *Store) UpdateAccount(ctx context.Context, account domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[account.AccountID]; !ok {
		return apperrors.ErrNotFound
	}
	s.accounts[account.AccountID] = account
	return nil
}

func (s *Store) DeleteAccount(ctx context.Context, accountID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[accountID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(s.accounts, accountID)
	return nil
}

// --- goals ---

func (s *Store) SaveGoal(ctx context.Context, goal domain.Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goals[goal.GoalID] = goal
	return nil
}

func (s *Store) FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	goal, ok := s.goals[goalID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &goal, nil
}

func (s *Store) ListGoals(ctx context.Context, userID string) ([]domain.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	goals := []domain.Goal{}
	for _, goal := range s.goals {
		if goal.UserID == userID {
			goals = append(goals, goal)
		}
	}
	sort.Slice(goals, func(i, j int) bool {
		if goals[i].TargetDate.Equal(goals[j].TargetDate) {
			return goals[i].GoalID < goals[j].GoalID
		}
		return goals[i].TargetDate.Before(goals[j].TargetDate)
	})
	return goals, nil
}

func (s *Store) UpdateGoal(ctx context.Context, goal domain.Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.goals[goal.GoalID]; !ok {
		return apperrors.ErrNotFound
	}
	s.goals[goal.GoalID] = goal
	return nil
}

func (s *Store) DeleteGoal(ctx context.Context, goalID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.goals[goalID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(s.goals, goalID)
	return nil
}

// --- snapshots ---

func snapshotDayKey(userID string, asOf time.Time) string {
	return strings.Join([]string{userID, asOf.Format("2006-01-02")}, "|")
}

func (s *Store) SaveSnapshot(ctx context.Context, snapshot domain.NetWorthSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Keyed per user per calendar day so repeat reads on the same day
	// overwrite that day's record.
	s.snapshots[snapshotDayKey(snapshot.UserID, snapshot.AsOf)] = snapshot
	return nil
}

func (s *Store) FindLatestBefore(ctx context.Context, userID string, cutoff time.Time) (*domain.NetWorthSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var latest *domain.NetWorthSnapshot
	for _, snap := range s.snapshots {
		if snap.UserID != userID || snap.AsOf.After(cutoff) {
			continue
		}
		if latest == nil || snap.AsOf.After(latest.AsOf) {
			snapCopy := snap
			latest = &snapCopy
		}
	}
	if latest == nil {
		return nil, apperrors.ErrNotFound
	}
	return latest, nil
}

func (s *Store) ListSnapshots(ctx context.Context, userID string) ([]domain.NetWorthSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshots := []domain.NetWorthSnapshot{}
	for _, snap := range s.snapshots {
		if snap.UserID == userID {
			snapshots = append(snapshots, snap)
		}
	}
	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].AsOf.Before(snapshots[j].AsOf)
	})
	return snapshots, nil
}

// --- settings ---

func (s *Store) FindSettings(ctx context.Context, userID string) (*domain.UserSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	settings, ok := s.settings[userID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &settings, nil
}

func (s *Store) SaveSettings(ctx context.Context, settings domain.UserSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings[settings.UserID] = settings
	return nil
}

// --- users ---

func (s *Store) SaveUser(ctx context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Username == user.Username && existing.UserID != user.UserID {
			return apperrors.ErrDuplicate
		}
	}
	s.users[user.UserID] = user
	return nil
}

func (s *Store) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[userID]
	if !ok || user.DeletedAt != nil {
		return nil, apperrors.ErrNotFound
	}
	return &user, nil
}

func (s *Store) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Username == username && user.DeletedAt == nil {
			userCopy := user
			return &userCopy, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *Store) FindUserByProviderID(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.AuthProvider == provider && user.ProviderUserID == providerUserID && user.DeletedAt == nil {
			userCopy := user
			return &userCopy, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *Store) FindUserByRefreshTokenHash(ctx context.Context, refreshTokenHash string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if refreshTokenHash == "" {
		return nil, apperrors.ErrNotFound
	}
	for _, user := range s.users {
		if user.RefreshTokenHash == refreshTokenHash && user.DeletedAt == nil {
			userCopy := user
			return &userCopy, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *Store) UpdateUser(ctx context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.UserID]; !ok {
		return apperrors.ErrNotFound
	}
	s.users[user.UserID] = user
	return nil
}

func (s *Store) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok || user.DeletedAt != nil {
		return apperrors.ErrNotFound
	}
	user.RefreshTokenHash = refreshTokenHash
	user.RefreshTokenExpiresAt = &expiresAt
	user.UpdatedAt = time.Now()
	s.users[userID] = user
	return nil
}
