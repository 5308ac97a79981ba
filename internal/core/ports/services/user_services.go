package services

import (
	"context"
	"time"

	"github.com/nwtrack/networth_backend/internal/core/domain"
	"github.com/nwtrack/networth_backend/internal/dto"
)

// UserSvcFacade defines user management operations.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// CreateOAuthUser finds or creates the local user for an external
	// identity verified by an OAuth provider.
	CreateOAuthUser(ctx context.Context, name, email string, provider domain.AuthProvider, providerUserID string) (*domain.User, error)

	// StoreRefreshToken persists the hash of a newly issued refresh token,
	// replacing any previous one.
	StoreRefreshToken(ctx context.Context, userID string, refreshToken string, expiresAt time.Time) error

	// GetUserByRefreshToken resolves an unexpired refresh token to its user.
	// An unknown or expired token yields apperrors.ErrUnauthorized.
	GetUserByRefreshToken(ctx context.Context, refreshToken string) (*domain.User, error)
}
