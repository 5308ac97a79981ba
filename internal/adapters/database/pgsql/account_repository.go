package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nwtrack/networth_backend/internal/apperrors"
	"github.com/nwtrack/networth_backend/internal/core/domain"
	portsrepo "github.com/nwtrack/networth_backend/internal/core/ports/repositories"
)

type AccountRepository struct {
	db *pgxpool.Pool
}

func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{db: db}
}

var _ portsrepo.AccountRepositoryFacade = (*AccountRepository)(nil)

const accountColumns = `account_id, user_id, name, account_type, balance, is_asset, category, created_at, updated_at`

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var acc domain.Account
	err := row.Scan(
		&acc.AccountID,
		&acc.UserID,
		&acc.Name,
		&acc.Type,
		&acc.Balance,
		&acc.IsAsset,
		&acc.Category,
		&acc.CreatedAt,
		&acc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

func (r *AccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	query := `
        INSERT INTO accounts (account_id, user_id, name, account_type, balance, is_asset, category, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		account.AccountID,
		account.UserID,
		account.Name,
		account.Type,
		account.Balance,
		account.IsAsset,
		account.Category,
		account.CreatedAt,
		account.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save account: %w", err)
	}
	return nil
}

func (r *AccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`

	acc, err := scanAccount(r.db.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by ID: %w", err)
	}
	return acc, nil
}

func (r *AccountRepository) ListAccounts(ctx context.Context, userID string, limit int, offset int) ([]domain.Account, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT ` + accountColumns + `
        FROM accounts
        WHERE user_id = $1
        ORDER BY created_at ASC
        LIMIT $2 OFFSET $3;
    `
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	return collectAccounts(rows)
}

func (r *AccountRepository) ListAllAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM accounts
        WHERE user_id = $1
        ORDER BY created_at ASC;
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	return collectAccounts(rows)
}

func collectAccounts(rows pgx.Rows) ([]domain.Account, error) {
	accounts := []domain.Account{}
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, *acc)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", rows.Err())
	}
	return accounts, nil
}

func (r *AccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	query := `
        UPDATE accounts
        SET name = $1, account_type = $2, balance = $3, is_asset = $4, category = $5, updated_at = $6
        WHERE account_id = $7;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		account.Name,
		account.Type,
		account.Balance,
		account.IsAsset,
		account.Category,
		account.UpdatedAt,
		account.AccountID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update account query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *AccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	query := `DELETE FROM accounts WHERE account_id = $1;`

	cmdTag, err := r.db.Exec(ctx, query, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
