package dto

import (
	"github.com/nwtrack/networth_backend/internal/core/domain"
)

// UpdateSettingsRequest defines the data for replacing a user's display
// settings. Currency must be a valid ISO 4217 code.
type UpdateSettingsRequest struct {
	Currency       string `json:"currency" binding:"required,iso4217"`
	CurrencySymbol string `json:"currencySymbol" binding:"required"`
	Locale         string `json:"locale" binding:"required,bcp47_language_tag"`
}

// SettingsResponse defines the data returned for user settings.
type SettingsResponse struct {
	Currency       string `json:"currency"`
	CurrencySymbol string `json:"currencySymbol"`
	Locale         string `json:"locale"`
}

// CurrencyResponse describes one supported display currency.
type CurrencyResponse struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// ListCurrenciesResponse wraps the static currency table.
type ListCurrenciesResponse struct {
	Currencies []CurrencyResponse `json:"currencies"`
}

// ToSettingsResponse converts domain settings to the response DTO.
func ToSettingsResponse(settings *domain.UserSettings) SettingsResponse {
	return SettingsResponse{
		Currency:       settings.Currency,
		CurrencySymbol: settings.CurrencySymbol,
		Locale:         settings.Locale,
	}
}

// ToListCurrenciesResponse converts the currency table to its response DTO.
func ToListCurrenciesResponse(currencies []domain.Currency) ListCurrenciesResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, c := range currencies {
		res[i] = CurrencyResponse{Code: c.Code, Symbol: c.Symbol, Name: c.Name}
	}
	return ListCurrenciesResponse{Currencies: res}
}
