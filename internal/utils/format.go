package utils

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/nwtrack/networth_backend/internal/core/domain"
)

// FormatCurrency renders an amount for display using the user's currency
// settings. Formatting is display-only; it never feeds back into
// computation. Unknown currency codes fall back to a plain symbol prefix.
func FormatCurrency(amount decimal.Decimal, settings *domain.UserSettings) string {
	if settings == nil {
		def := domain.DefaultSettings("")
		settings = &def
	}

	currency := money.GetCurrency(settings.Currency)
	if currency == nil {
		return settings.CurrencySymbol + amount.StringFixed(2)
	}

	minor := amount.Shift(int32(currency.Fraction)).Round(0).IntPart()
	return money.New(minor, currency.Code).Display()
}

// FormatPercentage renders a percentage with an explicit sign and one
// decimal place, e.g. "+4.2%" or "-1.3%".
func FormatPercentage(value float64) string {
	return fmt.Sprintf("%+.1f%%", value)
}
