package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/hsiangz/warroom"
)

type fmtCmd struct {
	write bool
}

func (*fmtCmd) Name() string     { return "fmt" }
func (*fmtCmd) Synopsis() string { return "rewrite the ledger in canonical form" }
func (*fmtCmd) Usage() string {
	return `wrs fmt [-w]

  Prints the ledger in canonical CSV form: normalized symbols, inferred
  currencies and a fixed column order. With -w the ledger file is
  rewritten in place.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.write, "w", false, "Write the canonical form back to the ledger file")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	store := warroom.LedgerStore{Path: cfg.LedgerPath}
	ledger, err := store.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.write {
		if err := store.Rewrite(ledger); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Rewrote %d trades to %s\n", ledger.Len(), cfg.LedgerPath)
		return subcommands.ExitSuccess
	}

	if err := warroom.EncodeLedger(os.Stdout, ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
