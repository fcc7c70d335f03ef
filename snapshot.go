package warroom

import (
	"github.com/shopspring/decimal"
)

// defaultEpsilon is the share count under which a position is considered
// fully closed. Fractional dust left by decimal division stays invisible.
var defaultEpsilon = decimal.NewFromFloat(1e-6)

// SnapshotOptions configures the materialization of a snapshot.
type SnapshotOptions struct {
	// ReportingCurrency is the currency all totals are expressed in.
	ReportingCurrency string
	// Epsilon is the closed-position threshold, defaultEpsilon when zero.
	Epsilon decimal.Decimal
	// EquityOnly restricts the realized P&L total to stock instruments.
	// Per-holding and per-trade figures are never filtered.
	EquityOnly bool
}

// Holding is one presentation-ready row of the snapshot.
type Holding struct {
	Symbol   string
	Name     string
	Kind     Kind
	Currency string

	Shares      Quantity
	AverageCost Money // native currency
	CostBasis   Money // native currency
	Price       Money // native currency, zero when the quote was unavailable
	MarketValue Money // reporting currency
}

// Snapshot is the materialized holdings table of one replay pass, with live
// valuation joined in. It is derived data: recomputed from the ledger on
// every request, never persisted.
type Snapshot struct {
	ReportingCurrency string
	FxRate            decimal.Decimal // 1 foreign unit in reporting currency
	Funds             Funds

	Holdings []Holding

	TotalMarketValue Money // reporting currency
	TotalRealized    Money // reporting currency, subject to EquityOnly
	NetWorth         Money // reporting currency
}

// NewSnapshot joins a replayed book with live prices and the funds record.
// prices maps canonical symbols to their last price in native currency,
// fxRate is the value of one foreign currency unit in the reporting currency.
// Symbols without a price value at zero rather than failing: valuation is
// additive and must not take the holdings table down with it.
func NewSnapshot(book *Book, prices map[string]decimal.Decimal, fxRate decimal.Decimal, funds Funds, opts SnapshotOptions) *Snapshot {
	epsilon := opts.Epsilon
	if epsilon.IsZero() {
		epsilon = defaultEpsilon
	}
	reporting := opts.ReportingCurrency

	snap := &Snapshot{
		ReportingCurrency: reporting,
		FxRate:            fxRate,
		Funds:             funds,
		TotalMarketValue:  M(0, reporting),
		TotalRealized:     M(0, reporting),
	}

	for pos := range book.Positions() {
		if pos.Shares.Decimal().LessThan(epsilon) {
			continue // fully closed
		}
		price := M(prices[pos.Symbol], pos.Currency)
		value := price.Mul(pos.Shares).In(reporting, fxRate)

		snap.Holdings = append(snap.Holdings, Holding{
			Symbol:      pos.Symbol,
			Name:        pos.Name,
			Kind:        pos.Kind,
			Currency:    pos.Currency,
			Shares:      pos.Shares,
			AverageCost: pos.AverageCost(),
			CostBasis:   pos.CostBasis,
			Price:       price,
			MarketValue: value,
		})
		snap.TotalMarketValue = snap.TotalMarketValue.Add(value)
	}

	for _, a := range book.Annotations() {
		if !a.Realized {
			continue
		}
		if opts.EquityOnly && a.Kind != Stock {
			continue
		}
		snap.TotalRealized = snap.TotalRealized.Add(a.RealizedPnL.In(reporting, fxRate))
	}

	snap.NetWorth = snap.netWorth()
	return snap
}

// netWorth applies the reporting formula:
// domestic cash + settlement cash + foreign cash * fx + market value - liabilities.
func (s *Snapshot) netWorth() Money {
	cur := s.ReportingCurrency
	return M(s.Funds.DomesticCash, cur).
		Add(M(s.Funds.SettlementCash, cur)).
		Add(M(s.Funds.ForeignCash.Mul(s.FxRate), cur)).
		Add(s.TotalMarketValue).
		Sub(M(s.Funds.Liabilities, cur))
}
