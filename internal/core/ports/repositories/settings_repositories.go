package repositories

import (
	"context"

	"github.com/nwtrack/networth_backend/internal/core/domain"
)

// SettingsRepositoryFacade stores per-user display settings.
type SettingsRepositoryFacade interface {
	// FindSettings returns the stored settings for a user, or
	// apperrors.ErrNotFound when the user has never saved any.
	FindSettings(ctx context.Context, userID string) (*domain.UserSettings, error)

	// SaveSettings inserts or replaces a user's settings.
	SaveSettings(ctx context.Context, settings domain.UserSettings) error
}
