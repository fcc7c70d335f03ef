// Package cmd implements the CLI application to manage the dashboard
// ledger and reports.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/hsiangz/warroom"
)

// Commands lists every subcommand. A main package registers them on a
// commander and calls Execute on the user-selected one.
var Commands = []subcommands.Command{
	&buyCmd{},
	&sellCmd{},
	&holdingCmd{},
	&summaryCmd{},
	&txCmd{},
	&fundsCmd{},
	&fmtCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok
// to use global variables.

var configFile = flag.String("config", "warroom.yaml", "Path to the YAML configuration file")
var plain = flag.Bool("plain", false, "Print raw markdown instead of styled output")

func loadConfig() (*warroom.Config, error) {
	return warroom.LoadConfig(*configFile)
}

// loadBook loads seed lots and the ledger, then replays it.
func loadBook(cfg *warroom.Config) (*warroom.Book, *warroom.Ledger, error) {
	lots, err := warroom.LoadLots(cfg.LotsPath)
	if err != nil {
		return nil, nil, err
	}
	store := warroom.LedgerStore{Path: cfg.LedgerPath}
	ledger, err := store.Load()
	if err != nil {
		return nil, nil, err
	}
	return ledger.Replay(lots), ledger, nil
}

// appendTrade validates the trade against the current book and appends
// it to the ledger file.
func appendTrade(e warroom.TradeEvent) subcommands.ExitStatus {
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
	e, err = e.Validate(book)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	store := warroom.LedgerStore{Path: cfg.LedgerPath}
	if e, err = store.Append(e); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %s %s x %s on %s\n", e.Side, e.Symbol, e.Quantity, e.Date)
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown for the terminal, falling back to the
// raw text when styling fails.
func printMarkdown(md string) {
	if *plain {
		fmt.Print(md)
		return
	}
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
