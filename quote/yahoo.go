package quote

import (
	"log"
	"net/http"
	"time"

	finance "github.com/piquette/finance-go"
	fq "github.com/piquette/finance-go/quote"
	"github.com/shopspring/decimal"
)

// DefaultFxSymbol is Yahoo Finance's ticker for the USD to TWD rate.
const DefaultFxSymbol = "TWD=X"

// Yahoo fetches prices from Yahoo Finance. Zero value is not usable,
// build it with NewYahoo.
type Yahoo struct {
	fxSymbol string
	fallback decimal.Decimal // fx rate used when the live quote fails
}

// NewYahoo returns a Yahoo service converting through fxSymbol and
// falling back to fallbackRate when the fx quote cannot be fetched.
// An empty fxSymbol means DefaultFxSymbol. A positive timeout replaces
// the finance-go default HTTP client.
func NewYahoo(fxSymbol string, fallbackRate decimal.Decimal, timeout time.Duration) *Yahoo {
	if fxSymbol == "" {
		fxSymbol = DefaultFxSymbol
	}
	if timeout > 0 {
		finance.SetHTTPClient(&http.Client{Timeout: timeout})
	}
	return &Yahoo{fxSymbol: fxSymbol, fallback: fallbackRate}
}

// Prices fetches the regular market price for each symbol. Failures are
// logged and skipped so one delisted ticker does not sink the whole
// valuation.
func (y *Yahoo) Prices(symbols []string) map[string]decimal.Decimal {
	prices := make(map[string]decimal.Decimal, len(symbols))
	for _, symbol := range symbols {
		q, err := fq.Get(symbol)
		if err != nil || q == nil {
			log.Printf("warning: no quote for %s: %v", symbol, err)
			continue
		}
		if q.RegularMarketPrice <= 0 {
			log.Printf("warning: non-positive quote for %s, skipping", symbol)
			continue
		}
		prices[symbol] = decimal.NewFromFloat(q.RegularMarketPrice)
	}
	return prices
}

// FxRate fetches the exchange rate, falling back to the configured
// default when Yahoo is unreachable.
func (y *Yahoo) FxRate() decimal.Decimal {
	q, err := fq.Get(y.fxSymbol)
	if err != nil || q == nil || q.RegularMarketPrice <= 0 {
		log.Printf("warning: no fx quote for %s, using fallback %s", y.fxSymbol, y.fallback)
		return y.fallback
	}
	return decimal.NewFromFloat(q.RegularMarketPrice)
}
