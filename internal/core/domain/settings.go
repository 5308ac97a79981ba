package domain

// UserSettings holds display preferences. They affect formatting only, never
// computation.
type UserSettings struct {
	UserID         string `json:"userID"`
	Currency       string `json:"currency"`
	CurrencySymbol string `json:"currencySymbol"`
	Locale         string `json:"locale"`
}

// DefaultSettings returns the settings applied to a user with no stored row.
func DefaultSettings(userID string) UserSettings {
	return UserSettings{
		UserID:         userID,
		Currency:       "USD",
		CurrencySymbol: "$",
		Locale:         "en-US",
	}
}

// Currency describes one supported display currency.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// SupportedCurrencies is the static table offered in the settings dialog.
var SupportedCurrencies = []Currency{
	{Code: "USD", Symbol: "$", Name: "US Dollar"},
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "GBP", Symbol: "£", Name: "British Pound"},
	{Code: "CAD", Symbol: "C$", Name: "Canadian Dollar"},
	{Code: "AUD", Symbol: "A$", Name: "Australian Dollar"},
	{Code: "CHF", Symbol: "CHF", Name: "Swiss Franc"},
	{Code: "CNY", Symbol: "¥", Name: "Chinese Yuan"},
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee"},
	{Code: "BRL", Symbol: "R$", Name: "Brazilian Real"},
	{Code: "ILS", Symbol: "₪", Name: "Israeli New Shekel"},
}
