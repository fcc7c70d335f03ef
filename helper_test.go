package warroom

// TWD is a helper for tests to create Taiwanese dollar money from const
func TWD(v float64) Money { return M(v, "TWD") }

// USD is a helper for tests to create us dollar money from const
func USD(v float64) Money { return M(v, "USD") }

// day is a helper for tests, we only care about the calendar date
func day(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func buyEvent(date, symbol string, qty, price, fee float64) TradeEvent {
	currency := InferCurrency(Normalize(symbol))
	return TradeEvent{
		Date:     day(date),
		Side:     Buy,
		Symbol:   symbol,
		Quantity: Q(qty),
		Price:    M(price, currency),
		Fee:      M(fee, currency),
	}
}

func sellEvent(date, symbol string, qty, price, fee, tax float64) TradeEvent {
	currency := InferCurrency(Normalize(symbol))
	return TradeEvent{
		Date:     day(date),
		Side:     Sell,
		Symbol:   symbol,
		Quantity: Q(qty),
		Price:    M(price, currency),
		Fee:      M(fee, currency),
		Tax:      M(tax, currency),
	}
}
