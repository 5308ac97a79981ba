package services

import (
	"context"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"

	"github.com/nwtrack/networth_backend/internal/core/domain"
)

// TokenSvcFacade issues access and refresh tokens for authenticated users.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// GenerateRefreshToken returns a new opaque refresh token and its expiry.
	// The caller is responsible for persisting its hash.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}

// GoogleOAuthHandlerSvcFacade wraps the Google OAuth code-exchange flow.
type GoogleOAuthHandlerSvcFacade interface {
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
