package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/hsiangz/warroom"
	"github.com/hsiangz/warroom/renderer"
)

type fundsCmd struct {
	domestic   float64
	settlement float64
	foreign    float64
	loan       float64
}

func (*fundsCmd) Name() string     { return "funds" }
func (*fundsCmd) Synopsis() string { return "show or update cash balances and liabilities" }
func (*fundsCmd) Usage() string {
	return `wrs funds [-cash <amount>] [-settle <amount>] [-fcash <amount>] [-loan <amount>]

  Without flags, prints the funds record. Each flag replaces one balance:
  domestic cash, settlement cash, foreign cash or outstanding liabilities.
`
}

func (c *fundsCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.domestic, "cash", 0, "Domestic cash balance")
	f.Float64Var(&c.settlement, "settle", 0, "Settlement cash balance")
	f.Float64Var(&c.foreign, "fcash", 0, "Foreign cash balance")
	f.Float64Var(&c.loan, "loan", 0, "Outstanding liabilities")
}

func (c *fundsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	store := warroom.FundsStore{Path: cfg.FundsPath}
	funds, err := store.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// Only balances whose flag was passed are replaced, so setting one
	// does not zero the others.
	changed := false
	f.Visit(func(fl *flag.Flag) {
		changed = true
		switch fl.Name {
		case "cash":
			funds.DomesticCash = decimal.NewFromFloat(c.domestic)
		case "settle":
			funds.SettlementCash = decimal.NewFromFloat(c.settlement)
		case "fcash":
			funds.ForeignCash = decimal.NewFromFloat(c.foreign)
		case "loan":
			funds.Liabilities = decimal.NewFromFloat(c.loan)
		}
	})
	if changed {
		if err := store.Save(funds); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.FundsMarkdown(funds, cfg.ReportingCurrency, cfg.ForeignCurrency))
	return subcommands.ExitSuccess
}
