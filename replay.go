package warroom

import (
	"iter"
)

// Position is the derived inventory of one instrument. It is recomputed on
// every replay, never persisted.
type Position struct {
	Symbol   string
	Name     string // carried from the first-seen event
	Kind     Kind
	Currency string // carried from the first-seen event

	Shares    Quantity // never negative, oversell clamps to zero
	CostBasis Money    // never negative
}

// AverageCost returns the moving-average cost per share, zero when the
// position is empty.
func (p *Position) AverageCost() Money {
	if !p.Shares.IsPositive() {
		return M(0, p.Currency)
	}
	return p.CostBasis.Div(p.Shares)
}

// Book is the result of one replay pass: the per-instrument positions and one
// annotation per trade event, in event order.
type Book struct {
	positions   map[string]*Position
	order       []string // symbols in first-seen order
	annotations []Annotation
}

// NewBook returns an empty book.
func NewBook() *Book {
	return &Book{positions: make(map[string]*Position)}
}

// Position returns the position for a canonical symbol, or nil if the symbol
// never appeared.
func (b *Book) Position(symbol string) *Position {
	return b.positions[symbol]
}

// Positions iterates positions in first-seen order.
func (b *Book) Positions() iter.Seq[*Position] {
	return func(yield func(*Position) bool) {
		for _, symbol := range b.order {
			if !yield(b.positions[symbol]) {
				return
			}
		}
	}
}

// Annotations returns the per-event annotations in event order. Seed lots are
// not annotated.
func (b *Book) Annotations() []Annotation {
	return b.annotations
}

// at returns the position for symbol, creating an empty one carrying the given
// display name, kind and currency on first sight.
func (b *Book) at(symbol, name string, kind Kind, currency string) *Position {
	if pos, ok := b.positions[symbol]; ok {
		return pos
	}
	if kind == "" {
		kind = Stock
	}
	pos := &Position{
		Symbol:    symbol,
		Name:      name,
		Kind:      kind,
		Currency:  currency,
		CostBasis: M(0, currency),
	}
	b.positions[symbol] = pos
	b.order = append(b.order, symbol)
	return pos
}

// Replay folds seed lots and an ordered trade log into a Book using
// moving-average costing. It is a pure function: no I/O, deterministic, one
// pass over the events in their ledger order.
//
// The fold never raises a domain error. Overselling clamps the position to
// zero, a sell against an unknown symbol starts from an empty position, and a
// zero-cost sell reports an ROI of zero. Those are data-quality signals the
// caller may surface, not failures.
func Replay(seeds []Lot, events []TradeEvent) *Book {
	book := NewBook()

	for _, l := range seeds {
		symbol := Normalize(l.Symbol)
		if symbol == "" {
			continue
		}
		currency := l.CostPerShare.Currency()
		if currency == "" {
			currency = InferCurrency(symbol)
		}
		pos := book.at(symbol, l.Name, l.Kind, currency)
		pos.Shares = pos.Shares.Add(l.Quantity)
		pos.CostBasis = pos.CostBasis.Add(rebase(l.CostPerShare.Mul(l.Quantity), pos.Currency))
	}

	for _, e := range events {
		symbol := Normalize(e.Symbol)
		currency := e.Currency()
		if currency == "" {
			currency = InferCurrency(symbol)
		}
		pos := book.at(symbol, e.Name, e.Kind, currency)

		gross := rebase(e.GrossValue(), pos.Currency)
		net := rebase(e.NetReceivable(), pos.Currency)

		a := Annotation{
			Date:          e.Date,
			Side:          e.Side,
			Symbol:        symbol,
			Kind:          pos.Kind,
			Gross:         gross,
			NetReceivable: net,
		}

		switch e.Side {
		case Sell:
			avgBefore := pos.AverageCost()
			costWithdrawn := avgBefore.Mul(e.Quantity)
			if e.Cost.IsPositive() {
				costWithdrawn = rebase(e.Cost, pos.Currency)
			}

			pos.Shares = clampQuantity(pos.Shares.Sub(e.Quantity))
			pos.CostBasis = clampMoney(pos.CostBasis.Sub(costWithdrawn))

			a.AvgCostBefore = avgBefore
			a.CostWithdrawn = costWithdrawn
			a.RealizedPnL = net.Sub(costWithdrawn)
			a.ROI = roi(a.RealizedPnL, costWithdrawn)
			a.Realized = true

		default: // Buy, and anything unrecognized the codec let through
			pos.Shares = pos.Shares.Add(e.Quantity)
			pos.CostBasis = pos.CostBasis.Add(gross).Add(rebase(e.Fee, pos.Currency))
		}

		book.annotations = append(book.annotations, a)
	}

	return book
}

// rebase restates an amount in the position's currency without conversion.
// Mixed-currency rows for one instrument are a data-quality problem, the
// replay keeps folding rather than failing.
func rebase(m Money, currency string) Money {
	return M(m.Decimal(), currency)
}

func clampQuantity(q Quantity) Quantity {
	if q.IsNegative() {
		return Q(0)
	}
	return q
}

func clampMoney(m Money) Money {
	if m.IsNegative() {
		return M(0, m.Currency())
	}
	return m
}

// roi returns pnl relative to the withdrawn cost, zero for a zero-cost sale to
// keep downstream display total.
func roi(pnl, costWithdrawn Money) Percent {
	if !costWithdrawn.IsPositive() {
		return 0
	}
	ratio := pnl.Decimal().Div(costWithdrawn.Decimal())
	return Percent(ratio.InexactFloat64() * 100)
}
