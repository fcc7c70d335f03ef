package cmd

import (
	"context"
	"flag"
	"strings"

	"github.com/google/subcommands"

	"github.com/hsiangz/warroom"
)

// --- Buy Command ---

type buyCmd struct {
	date     string
	symbol   string
	name     string
	kind     string
	currency string
	quantity float64
	price    float64
	fee      float64
	gross    float64
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a purchase, opening or growing a position" }
func (*buyCmd) Usage() string {
	return `wrs buy -s <symbol> -q <quantity> -p <price> [-d <date>] [-n <name>] [-k <kind>] [-cur <currency>] [-f <fee>] [-g <gross>]

  Records a buy. The symbol is normalized (bare Taiwanese codes get their
  market suffix) and the cost basis grows by gross value plus fee.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Trade date (YYYY-MM-DD), defaults to today")
	f.StringVar(&c.symbol, "s", "", "Instrument symbol")
	f.StringVar(&c.name, "n", "", "Display name for the instrument")
	f.StringVar(&c.kind, "k", "", "Instrument kind (stock, bond, fund, crypto)")
	f.StringVar(&c.currency, "cur", "", "Trade currency, overrides the symbol inference")
	f.Float64Var(&c.quantity, "q", 0, "Number of shares")
	f.Float64Var(&c.price, "p", 0, "Price per share")
	f.Float64Var(&c.fee, "f", 0, "Transaction fee")
	f.Float64Var(&c.gross, "g", 0, "Gross amount override, replaces price times quantity")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, status := buildTrade(f, warroom.Buy, c.date, c.symbol, c.name, c.kind, c.currency, c.quantity, c.price, c.fee, 0, c.gross, 0)
	if status != subcommands.ExitSuccess {
		return status
	}
	return appendTrade(e)
}

// --- Sell Command ---

type sellCmd struct {
	date     string
	symbol   string
	name     string
	kind     string
	currency string
	quantity float64
	price    float64
	fee      float64
	tax      float64
	gross    float64
	cost     float64
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale, trimming or closing a position" }
func (*sellCmd) Usage() string {
	return `wrs sell -s <symbol> -q <quantity> -p <price> [-d <date>] [-cur <currency>] [-f <fee>] [-t <tax>] [-g <gross>] [-c <cost>]

  Records a sell and realizes profit against the moving average cost.
  Pass -c to override the withdrawn cost, for example when selling shares
  acquired outside the ledger.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Trade date (YYYY-MM-DD), defaults to today")
	f.StringVar(&c.symbol, "s", "", "Instrument symbol")
	f.StringVar(&c.name, "n", "", "Display name for the instrument")
	f.StringVar(&c.kind, "k", "", "Instrument kind (stock, bond, fund, crypto)")
	f.StringVar(&c.currency, "cur", "", "Trade currency, overrides the symbol inference")
	f.Float64Var(&c.quantity, "q", 0, "Number of shares")
	f.Float64Var(&c.price, "p", 0, "Price per share")
	f.Float64Var(&c.fee, "f", 0, "Transaction fee")
	f.Float64Var(&c.tax, "t", 0, "Transaction tax")
	f.Float64Var(&c.gross, "g", 0, "Gross amount override, replaces price times quantity")
	f.Float64Var(&c.cost, "c", 0, "Withdrawn cost override, replaces average cost times quantity")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, status := buildTrade(f, warroom.Sell, c.date, c.symbol, c.name, c.kind, c.currency, c.quantity, c.price, c.fee, c.tax, c.gross, c.cost)
	if status != subcommands.ExitSuccess {
		return status
	}
	return appendTrade(e)
}

func buildTrade(f *flag.FlagSet, side warroom.Side, date, symbol, name, kind, currency string, quantity, price, fee, tax, gross, cost float64) (warroom.TradeEvent, subcommands.ExitStatus) {
	if symbol == "" || quantity <= 0 || (price <= 0 && gross <= 0) {
		f.Usage()
		return warroom.TradeEvent{}, subcommands.ExitUsageError
	}
	k, err := warroom.ParseKind(kind)
	if err != nil {
		f.Usage()
		return warroom.TradeEvent{}, subcommands.ExitUsageError
	}
	day := warroom.Today()
	if date != "" {
		if day, err = warroom.ParseDate(date); err != nil {
			f.Usage()
			return warroom.TradeEvent{}, subcommands.ExitUsageError
		}
	}
	if currency == "" {
		currency = warroom.InferCurrency(warroom.Normalize(symbol))
	}
	currency = strings.ToUpper(currency)
	return warroom.TradeEvent{
		Date:     day,
		Side:     side,
		Symbol:   symbol,
		Name:     name,
		Kind:     k,
		Quantity: warroom.Q(quantity),
		Price:    warroom.M(price, currency),
		Fee:      warroom.M(fee, currency),
		Tax:      warroom.M(tax, currency),
		Gross:    warroom.M(gross, currency),
		Cost:     warroom.M(cost, currency),
	}, subcommands.ExitSuccess
}
