package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/hsiangz/warroom/renderer"
)

type summaryCmd struct {
	offline bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show the net worth breakdown" }
func (*summaryCmd) Usage() string {
	return `wrs summary [-offline]

  Prints the net worth breakdown: cash, converted foreign cash, market
  value of the holdings, liabilities and total realized profit.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.offline, "offline", false, "Skip market quotes, prices show as zero")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.SummaryMarkdown(snapshot))
	return subcommands.ExitSuccess
}
