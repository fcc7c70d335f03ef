package quote

import "github.com/shopspring/decimal"

// Static serves prices from a fixed table. Useful offline and in tests.
type Static struct {
	Table map[string]decimal.Decimal
	Rate  decimal.Decimal
}

func (s *Static) Prices(symbols []string) map[string]decimal.Decimal {
	prices := make(map[string]decimal.Decimal, len(symbols))
	for _, symbol := range symbols {
		if p, ok := s.Table[symbol]; ok {
			prices[symbol] = p
		}
	}
	return prices
}

func (s *Static) FxRate() decimal.Decimal { return s.Rate }
