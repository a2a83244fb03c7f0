package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/marcusplumb/folio"
)

type updateCmd struct{}

func (*updateCmd) Name() string { return "update" }
func (*updateCmd) Synopsis() string {
	return "update security prices from the Alpha Vantage provider"
}
func (*updateCmd) Usage() string              { return "pfr update\n" }
func (c *updateCmd) SetFlags(f *flag.FlagSet) {}
func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Println("no arguments expected")
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	provider := folio.NewAlphaVantage()
	snap := folio.NewSnapshot()
	hist := folio.LoadHistory(*historyFile)

	updater := folio.NewUpdater(provider)
	if err := updater.Update(ledger, snap, hist); err != nil {
		fmt.Fprintln(os.Stderr, "some symbols failed to update:", err)
	}

	if err := folio.SaveSnapshot(*pricesFile, snap); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := folio.SaveHistory(*historyFile, hist); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated %d symbol(s) into %s\n", len(snap.Symbols), *pricesFile)
	return subcommands.ExitSuccess
}
