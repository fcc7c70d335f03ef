package warroom

import "iter"

// Ledger is the ordered, append-only trade log. Events are kept strictly in
// insertion order: the replay's correctness depends on processing order, so
// ordering is an explicit contract of this type, not a property of the backing
// file. The ledger never reorders by date.
type Ledger struct {
	events []TradeEvent
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{events: make([]TradeEvent, 0)}
}

// Append adds events at the end of the ledger.
func (l *Ledger) Append(events ...TradeEvent) {
	l.events = append(l.events, events...)
}

// Len returns the number of events.
func (l *Ledger) Len() int { return len(l.events) }

// Events returns the events in sequence order. The returned slice is the
// ledger's backing storage, callers must not mutate it.
func (l *Ledger) Events() []TradeEvent { return l.events }

// All iterates events with their sequence index, optionally filtered.
func (l *Ledger) All(filters ...func(TradeEvent) bool) iter.Seq2[int, TradeEvent] {
	return func(yield func(int, TradeEvent) bool) {
		for i, e := range l.events {
			accept := len(filters) == 0
			for _, filter := range filters {
				if filter(e) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, e) {
				return
			}
		}
	}
}

// BySymbol returns a predicate that filters events by canonical symbol.
func BySymbol(symbol string) func(TradeEvent) bool {
	symbol = Normalize(symbol)
	return func(e TradeEvent) bool { return Normalize(e.Symbol) == symbol }
}

// Replay folds the ledger into a Book, optionally seeded with pre-ledger lots.
func (l *Ledger) Replay(seeds []Lot) *Book {
	return Replay(seeds, l.events)
}
