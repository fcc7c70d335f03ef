// Package quote resolves market prices and the foreign exchange rate
// needed to value a portfolio.
package quote

import "github.com/shopspring/decimal"

// Service supplies prices for a valuation. Implementations degrade
// rather than fail: a symbol without a price is simply absent from the
// result, and the fx rate always resolves to something usable.
type Service interface {
	// Prices returns the latest price per symbol. Symbols that could not
	// be priced are left out of the map.
	Prices(symbols []string) map[string]decimal.Decimal

	// FxRate returns the foreign-to-reporting exchange rate.
	FxRate() decimal.Decimal
}
