package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType is the closed set of account subtypes a user can record.
type AccountType string

const (
	AccountChecking   AccountType = "checking"
	AccountSavings    AccountType = "savings"
	AccountInvestment AccountType = "investment"
	AccountRetirement AccountType = "retirement"
	AccountProperty   AccountType = "property"
	AccountVehicle    AccountType = "vehicle"
	AccountCrypto     AccountType = "crypto"
	AccountCash       AccountType = "cash"
	AccountCreditCard AccountType = "credit_card"
	AccountLoan       AccountType = "loan"
	AccountMortgage   AccountType = "mortgage"
	AccountOther      AccountType = "other"
)

// Account represents one financial holding or obligation.
// Balance is always non-negative; the sign of its contribution to net worth
// comes from IsAsset, never from a negative balance.
type Account struct {
	AccountID string          `json:"accountID"`
	UserID    string          `json:"userID"`
	Name      string          `json:"name"`
	Type      AccountType     `json:"type"`
	Balance   decimal.Decimal `json:"balance"`
	IsAsset   bool            `json:"isAsset"`
	Category  string          `json:"category"`
	AuditFields
}

// DefaultIsAsset returns the canonical asset/liability polarity for a type.
// The aggregator trusts the stored IsAsset flag as given; this helper only
// backs form defaults and consistency checks at the creation boundary.
func DefaultIsAsset(t AccountType) bool {
	switch t {
	case AccountCreditCard, AccountLoan, AccountMortgage:
		return false
	default:
		return true
	}
}

// AccountTypeLabel returns the display label for an account type.
func AccountTypeLabel(t AccountType) string {
	labels := map[AccountType]string{
		AccountChecking:   "Checking Account",
		AccountSavings:    "Savings Account",
		AccountInvestment: "Investment Account",
		AccountRetirement: "Retirement Account",
		AccountProperty:   "Real Estate",
		AccountVehicle:    "Vehicle",
		AccountCrypto:     "Cryptocurrency",
		AccountCash:       "Cash",
		AccountCreditCard: "Credit Card",
		AccountLoan:       "Loan",
		AccountMortgage:   "Mortgage",
		AccountOther:      "Other",
	}
	if label, ok := labels[t]; ok {
		return label
	}
	return string(t)
}

// ValidAccountType reports whether t belongs to the closed enumeration.
func ValidAccountType(t AccountType) bool {
	switch t {
	case AccountChecking, AccountSavings, AccountInvestment, AccountRetirement,
		AccountProperty, AccountVehicle, AccountCrypto, AccountCash,
		AccountCreditCard, AccountLoan, AccountMortgage, AccountOther:
		return true
	}
	return false
}
