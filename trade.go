package warroom

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Side is the direction of a trade event.
type Side string

const (
	Buy  Side = "buy"
	Sell Side = "sell"
)

// ParseSide parses a side string, tolerating case and a few broker spellings.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy", "b":
		return Buy, nil
	case "sell", "s":
		return Sell, nil
	default:
		return "", fmt.Errorf("unknown trade side: %q", s)
	}
}

// Kind classifies the instrument of a trade. It only matters for the realized
// P&L aggregation policy, the replay itself treats all kinds alike.
type Kind string

const (
	Stock  Kind = "stock"
	Bond   Kind = "bond"
	Fund   Kind = "fund"
	Crypto Kind = "crypto"
)

// ParseKind parses an instrument kind, defaulting to Stock for empty input.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "stock", "equity":
		return Stock, nil
	case "bond":
		return Bond, nil
	case "fund", "etf":
		return Fund, nil
	case "crypto":
		return Crypto, nil
	default:
		return "", fmt.Errorf("unknown instrument kind: %q", s)
	}
}

// TradeEvent is one submitted transaction. Events are immutable once appended
// to the ledger: corrections are new events, not edits.
type TradeEvent struct {
	Date     Date
	Side     Side
	Symbol   string // canonical, see Normalize
	Name     string // display name, carried to the position
	Kind     Kind
	Quantity Quantity
	Price    Money // unit price in the instrument's native currency
	Fee      Money
	Tax      Money

	// Gross, when positive, replaces Quantity*Price as the transaction's gross
	// value. Brokerage statements frequently state a principal that differs
	// from price*qty by rounding or batched fees.
	Gross Money
	// Cost, when positive on a Sell, replaces the computed average-cost
	// withdrawal.
	Cost Money

	// CreatedAt is assigned by the store on append.
	CreatedAt time.Time
}

// Currency returns the event's native currency.
func (t TradeEvent) Currency() string { return t.Price.Currency() }

// GrossValue returns the transaction's gross value: the manual override when
// positive, otherwise quantity times unit price.
func (t TradeEvent) GrossValue() Money {
	if t.Gross.IsPositive() {
		return t.Gross
	}
	return t.Price.Mul(t.Quantity)
}

// NetReceivable returns the cash effect of the event in native currency:
// gross plus fee for a Buy (total paid), gross minus fee and tax for a Sell
// (net received).
func (t TradeEvent) NetReceivable() Money {
	if t.Side == Buy {
		return t.GrossValue().Add(t.Fee)
	}
	return t.GrossValue().Sub(t.Fee).Sub(t.Tax)
}

// Validate checks a candidate event and applies quick fixes (symbol
// normalization, currency inference, default kind and date). It returns the
// fixed event or an error listing the first failure. This is front-end
// validation: events already in the ledger are replayed as-is.
func (t TradeEvent) Validate(book *Book) (TradeEvent, error) {
	if t.Date.IsZero() {
		t.Date = Today()
	}
	if t.Side != Buy && t.Side != Sell {
		return t, fmt.Errorf("unknown trade side: %q", t.Side)
	}

	t.Symbol = Normalize(t.Symbol)
	if t.Symbol == "" {
		return t, errors.New("instrument symbol is missing")
	}
	if t.Kind == "" {
		t.Kind = Stock
	}

	if !t.Quantity.IsPositive() {
		return t, fmt.Errorf("%s quantity must be positive, got %s", t.Side, t.Quantity)
	}
	if !t.Price.IsPositive() && !t.Gross.IsPositive() {
		return t, fmt.Errorf("%s price must be positive, got %v", t.Side, t.Price)
	}
	if t.Fee.IsNegative() || t.Tax.IsNegative() {
		return t, errors.New("fee and tax cannot be negative")
	}

	// Quick fix the currency from the symbol when not explicit.
	currency := t.Currency()
	if currency == "" {
		currency = InferCurrency(t.Symbol)
	}
	t.Price = M(t.Price.Decimal(), currency)
	t.Fee = M(t.Fee.Decimal(), currency)
	t.Tax = M(t.Tax.Decimal(), currency)
	if !t.Gross.IsZero() {
		t.Gross = M(t.Gross.Decimal(), currency)
	}
	if !t.Cost.IsZero() {
		t.Cost = M(t.Cost.Decimal(), currency)
	}

	// A sell against an empty position has no average cost to withdraw: the
	// replay would book the full proceeds as profit. Require the override.
	if t.Side == Sell && book != nil {
		pos := book.Position(t.Symbol)
		if (pos == nil || !pos.Shares.IsPositive()) && !t.Cost.IsPositive() {
			return t, fmt.Errorf("selling %s with no recorded position requires an explicit cost basis", t.Symbol)
		}
	}

	return t, nil
}

// Lot is a pre-ledger opening position injected before replay to represent
// holdings that predate the trade log.
type Lot struct {
	Symbol       string
	Name         string
	Kind         Kind
	Quantity     Quantity
	CostPerShare Money
}

// Annotation carries the realized economics of a single event. The P&L fields
// are only meaningful when Realized is true, which happens on Sell events.
type Annotation struct {
	Date   Date
	Side   Side
	Symbol string
	Kind   Kind

	Gross         Money // gross value actually used by the replay
	NetReceivable Money
	AvgCostBefore Money // average cost per share before the event
	CostWithdrawn Money
	RealizedPnL   Money
	ROI           Percent

	Realized bool
}
