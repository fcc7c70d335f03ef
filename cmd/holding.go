package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/hsiangz/warroom"
	"github.com/hsiangz/warroom/quote"
	"github.com/hsiangz/warroom/renderer"
)

type holdingCmd struct {
	offline bool
}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "show open positions with live market values" }
func (*holdingCmd) Usage() string {
	return `wrs holding [-offline]

  Replays the ledger and prints every open position with its average
  cost and current market value.
`
}

func (c *holdingCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.offline, "offline", false, "Skip market quotes, prices show as zero")
}

func (c *holdingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	book, _, err := loadBook(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	snapshot := takeSnapshot(cfg, book, c.offline)
	printMarkdown(renderer.HoldingsMarkdown(snapshot))
	return subcommands.ExitSuccess
}

// takeSnapshot values the book with the configured quote service and
// funds record.
func takeSnapshot(cfg *warroom.Config, book *warroom.Book, offline bool) *warroom.Snapshot {
	funds, err := (warroom.FundsStore{Path: cfg.FundsPath}).Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		funds = warroom.Funds{}
	}
	service := quoteService(cfg, offline)
	symbols := make([]string, 0)
	for p := range book.Positions() {
		symbols = append(symbols, p.Symbol)
	}
	return warroom.NewSnapshot(book, service.Prices(symbols), service.FxRate(), funds, warroom.SnapshotOptions{
		ReportingCurrency: cfg.ReportingCurrency,
		Epsilon:           decimal.NewFromFloat(cfg.PositionEpsilon),
		EquityOnly:        cfg.EquityOnlyRealized,
	})
}

func quoteService(cfg *warroom.Config, offline bool) quote.Service {
	fallback := decimal.NewFromFloat(cfg.DefaultFxRate)
	if offline {
		return &quote.Static{Rate: fallback}
	}
	return quote.NewYahoo(quote.DefaultFxSymbol, fallback, time.Duration(cfg.QuoteTimeoutSeconds)*time.Second)
}
