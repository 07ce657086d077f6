// Package currencypkg provides common currency related functionality for apps.
package currencypkg

// Constants for all supported currencies.
const (
	USD = "USD"
	EUR = "EUR"
	RMB = "RMB"
)

// SupportedCurrencies holds all the supported currencies.
var SupportedCurrencies = []string{
	USD,
	EUR,
	RMB,
}

var symbols = map[string]string{
	USD: "$",
	EUR: "€",
	RMB: "¥",
}

// IsSupportedCurrency returns true if the currency is supported.
func IsSupportedCurrency(currency string) bool {
	_, ok := symbols[currency]
	return ok
}

// Symbol returns the sign printed in front of amounts of the currency.
// Unsupported currencies fall back to the dollar sign.
func Symbol(currency string) string {
	if s, ok := symbols[currency]; ok {
		return s
	}

	return symbols[USD]
}
