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

type SettingsRepository struct {
	db *pgxpool.Pool
}

func NewSettingsRepository(db *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{db: db}
}

var _ portsrepo.SettingsRepositoryFacade = (*SettingsRepository)(nil)

func (r *SettingsRepository) FindSettings(ctx context.Context, userID string) (*domain.UserSettings, error) {
	query := `
        SELECT user_id, currency, currency_symbol, locale
        FROM user_settings
        WHERE user_id = $1;
    `
	var settings domain.UserSettings
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&settings.UserID,
		&settings.Currency,
		&settings.CurrencySymbol,
		&settings.Locale,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find settings: %w", err)
	}
	return &settings, nil
}

func (r *SettingsRepository) SaveSettings(ctx context.Context, settings domain.UserSettings) error {
	query := `
        INSERT INTO user_settings (user_id, currency, currency_symbol, locale)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (user_id) DO UPDATE SET
            currency = EXCLUDED.currency,
            currency_symbol = EXCLUDED.currency_symbol,
            locale = EXCLUDED.locale;
    `
	_, err := r.db.Exec(ctx, query,
		settings.UserID,
		settings.Currency,
		settings.CurrencySymbol,
		settings.Locale,
	)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
