package services

import (
	"context"

	"github.com/nwtrack/networth_backend/internal/core/domain"
	"github.com/nwtrack/networth_backend/internal/dto"
)

// SettingsSvcFacade manages per-user display settings.
type SettingsSvcFacade interface {
	// GetSettings returns the user's settings, falling back to defaults when
	// none have been saved.
	GetSettings(ctx context.Context, userID string) (*domain.UserSettings, error)
	UpdateSettings(ctx context.Context, userID string, req dto.UpdateSettingsRequest) (*domain.UserSettings, error)
}
