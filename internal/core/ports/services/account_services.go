package services

import (
	"context"

	"github.com/nwtrack/networth_backend/internal/core/domain"
	"github.com/nwtrack/networth_backend/internal/dto"
)

// AccountSvcFacade defines the business operations on accounts. All
// operations are scoped to the authenticated user.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error)
	GetAccountByID(ctx context.Context, userID string, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, userID string, limit int, offset int) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, userID string, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)
	DeleteAccount(ctx context.Context, userID string, accountID string) error
}
