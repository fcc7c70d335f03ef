package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/hsiangz/warroom"
	"github.com/hsiangz/warroom/renderer"
)

type txCmd struct {
	symbol string
	head   int
	tail   int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list annotated trades from the ledger" }
func (*txCmd) Usage() string {
	return `wrs tx [-s <symbol>] [-head <n> | -tail <n>]

  Lists the trades in record order with the replay annotations: gross
  and net amounts, the average cost before the trade and, for sells,
  the realized profit and return.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Only show trades for this symbol")
	f.IntVar(&c.head, "head", 0, "Show only the first N trades")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N trades")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	book, ledger, err := loadBook(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// Annotations are parallel to the ledger, so filtering the ledger by
	// symbol selects the matching annotations by index.
	annotations := book.Annotations()
	if c.symbol != "" {
		kept := annotations[:0:0]
		for i := range ledger.All(warroom.BySymbol(c.symbol)) {
			kept = append(kept, annotations[i])
		}
		annotations = kept
	}
	if c.head > 0 && c.head < len(annotations) {
		annotations = annotations[:c.head]
	}
	if c.tail > 0 && c.tail < len(annotations) {
		annotations = annotations[len(annotations)-c.tail:]
	}

	printMarkdown(renderer.TransactionsMarkdown(annotations))
	return subcommands.ExitSuccess
}
