package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nwtrack/networth_backend/internal/adapters/database/memory"
	"github.com/nwtrack/networth_backend/internal/apperrors"
	"github.com/nwtrack/networth_backend/internal/core/domain"
)

func TestStore_AccountLifecycle(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	acc := domain.Account{
		AccountID: "acc-1",
		UserID:    "user-1",
		Name:      "Main Checking",
		Type:      domain.AccountChecking,
		Balance:   decimal.NewFromInt(500),
		IsAsset:   true,
	}
	require.NoError(t, store.SaveAccount(ctx, acc))

	found, err := store.FindAccountByID(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "Main Checking", found.Name)

	acc.Balance = decimal.NewFromInt(750)
	require.NoError(t, store.UpdateAccount(ctx, acc))

	found, err = store.FindAccountByID(ctx, "acc-1")
	require.NoError(t, err)
	assert.True(t, found.Balance.Equal(decimal.NewFromInt(750)))

	require.NoError(t, store.DeleteAccount(ctx, "acc-1"))

	_, err = store.FindAccountByID(ctx, "acc-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStore_ListAccountsIsolatesUsers(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	base := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i, userID := range []string{"user-1", "user-2", "user-1"} {
		acc := domain.Account{
			AccountID: string(rune('a' + i)),
			UserID:    userID,
			Type:      domain.AccountSavings,
			Balance:   decimal.NewFromInt(int64(i * 100)),
			IsAsset:   true,
		}
		acc.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, store.SaveAccount(ctx, acc))
	}

	accounts, err := store.ListAllAccounts(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.True(t, accounts[0].CreatedAt.Before(accounts[1].CreatedAt))

	page, err := store.ListAccounts(ctx, "user-1", 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, accounts[1].AccountID, page[0].AccountID)
}

func TestStore_DeleteMissingAccount(t *testing.T) {
	store := memory.NewStore()
	err := store.DeleteAccount(context.Background(), "nope")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStore_SnapshotPerDayOverwrite(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	morning := time.Date(2026, time.February, 10, 9, 0, 0, 0, time.UTC)
	evening := morning.Add(8 * time.Hour)

	require.NoError(t, store.SaveSnapshot(ctx, domain.NetWorthSnapshot{
		SnapshotID: "s1", UserID: "user-1", NetWorth: decimal.NewFromInt(1000), AsOf: morning,
	}))
	require.NoError(t, store.SaveSnapshot(ctx, domain.NetWorthSnapshot{
		SnapshotID: "s2", UserID: "user-1", NetWorth: decimal.NewFromInt(1100), AsOf: evening,
	}))

	snapshots, err := store.ListSnapshots(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, snapshots, 1)
	assert.True(t, snapshots[0].NetWorth.Equal(decimal.NewFromInt(1100)))
}

func TestStore_FindLatestBefore(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	day := func(d int) time.Time {
		return time.Date(2026, time.January, d, 12, 0, 0, 0, time.UTC)
	}
	for i, d := range []int{1, 10, 20} {
		require.NoError(t, store.SaveSnapshot(ctx, domain.NetWorthSnapshot{
			SnapshotID: string(rune('a' + i)),
			UserID:     "user-1",
			NetWorth:   decimal.NewFromInt(int64(d * 100)),
			AsOf:       day(d),
		}))
	}

	snap, err := store.FindLatestBefore(ctx, "user-1", day(15))
	require.NoError(t, err)
	assert.True(t, snap.NetWorth.Equal(decimal.NewFromInt(1000)))

	_, err = store.FindLatestBefore(ctx, "user-1", day(1).Add(-time.Hour))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStore_UserDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	require.NoError(t, store.SaveUser(ctx, domain.User{UserID: "u1", Username: "alice"}))

	err := store.SaveUser(ctx, domain.User{UserID: "u2", Username: "alice"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestStore_SettingsUpsert(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	_, err := store.FindSettings(ctx, "user-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, store.SaveSettings(ctx, domain.UserSettings{
		UserID: "user-1", Currency: "EUR", CurrencySymbol: "€", Locale: "de-DE",
	}))
	require.NoError(t, store.SaveSettings(ctx, domain.UserSettings{
		UserID: "user-1", Currency: "GBP", CurrencySymbol: "£", Locale: "en-GB",
	}))

	settings, err := store.FindSettings(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "GBP", settings.Currency)
}

func TestStore_RefreshTokenRotation(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	require.NoError(t, store.SaveUser(ctx, domain.User{UserID: "u1", Username: "alice"}))

	expiry := time.Now().Add(time.Hour)
	require.NoError(t, store.UpdateRefreshToken(ctx, "u1", "hash-1", expiry))

	found, err := store.FindUserByRefreshTokenHash(ctx, "hash-1")
	require.NoError(t, err)
	assert.Equal(t, "u1", found.UserID)

	// Rotation invalidates the previous hash.
	require.NoError(t, store.UpdateRefreshToken(ctx, "u1", "hash-2", expiry))

	_, err = store.FindUserByRefreshTokenHash(ctx, "hash-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = store.FindUserByRefreshTokenHash(ctx, "")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = store.UpdateRefreshToken(ctx, "missing", "hash-3", expiry)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
