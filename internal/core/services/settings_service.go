package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/nwtrack/networth_backend/internal/apperrors"
	"github.com/nwtrack/networth_backend/internal/core/domain"
	portsrepo "github.com/nwtrack/networth_backend/internal/core/ports/repositories"
	portssvc "github.com/nwtrack/networth_backend/internal/core/ports/services"
	"github.com/nwtrack/networth_backend/internal/dto"
)

// settingsService implements the SettingsSvcFacade interface
type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepositoryFacade
}

// NewSettingsService creates a new settings service with the provided dependencies
func NewSettingsService(settingsRepo portsrepo.SettingsRepositoryFacade) portssvc.SettingsSvcFacade {
	return &settingsService{
		settingsRepo: settingsRepo,
	}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

// GetSettings returns the user's settings, falling back to defaults when
// none have been saved yet.
func (s *settingsService) GetSettings(ctx context.Context, userID string) (*domain.UserSettings, error) {
	settings, err := s.settingsRepo.FindSettings(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			def := domain.DefaultSettings(userID)
			return &def, nil
		}
		s.LogError(ctx, err, "Failed to load settings",
			slog.String("user_id", userID))
		return nil, err
	}
	return settings, nil
}

// UpdateSettings replaces the user's display settings.
func (s *settingsService) UpdateSettings(ctx context.Context, userID string, req dto.UpdateSettingsRequest) (*domain.UserSettings, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	settings := domain.UserSettings{
		UserID:         userID,
		Currency:       req.Currency,
		CurrencySymbol: req.CurrencySymbol,
		Locale:         req.Locale,
	}

	if err := s.settingsRepo.SaveSettings(ctx, settings); err != nil {
		s.LogError(ctx, err, "Failed to save settings",
			slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "Settings updated",
		slog.String("user_id", userID),
		slog.String("currency", settings.Currency))
	return &settings, nil
}
