package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nwtrack/networth_backend/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
// Balance arrives as a plain non-negative number and is converted to decimal
// at this boundary; the sign of its net-worth contribution comes from
// IsAsset. When IsAsset is omitted the canonical polarity of the account
// type applies.
type CreateAccountRequest struct {
	Name     string             `json:"name" binding:"required"`
	Type     domain.AccountType `json:"type" binding:"required,oneof=checking savings investment retirement property vehicle crypto cash credit_card loan mortgage other"`
	Balance  float64            `json:"balance" binding:"gte=0"`
	IsAsset  *bool              `json:"isAsset"`
	Category string             `json:"category"`
}

// UpdateAccountRequest defines the fields allowed for updating an account.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateAccountRequest struct {
	Name     *string             `json:"name" binding:"omitempty,min=1"`
	Type     *domain.AccountType `json:"type" binding:"omitempty,oneof=checking savings investment retirement property vehicle crypto cash credit_card loan mortgage other"`
	Balance  *float64            `json:"balance" binding:"omitempty,gte=0"`
	IsAsset  *bool               `json:"isAsset"`
	Category *string             `json:"category"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID string             `json:"accountID"`
	Name      string             `json:"name"`
	Type      domain.AccountType `json:"type"`
	TypeLabel string             `json:"typeLabel"`
	Balance   decimal.Decimal    `json:"balance"`
	IsAsset   bool               `json:"isAsset"`
	Category  string             `json:"category"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain.Account to its response DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID: acc.AccountID,
		Name:      acc.Name,
		Type:      acc.Type,
		TypeLabel: domain.AccountTypeLabel(acc.Type),
		Balance:   acc.Balance,
		IsAsset:   acc.IsAsset,
		Category:  acc.Category,
		CreatedAt: acc.CreatedAt,
		UpdatedAt: acc.UpdatedAt,
	}
}

// ToListAccountsResponse converts a slice of domain accounts to the list DTO.
func ToListAccountsResponse(accounts []domain.Account) ListAccountsResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return ListAccountsResponse{Accounts: res}
}
