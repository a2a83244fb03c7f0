package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/marcusplumb/folio"
	"github.com/marcusplumb/folio/date"
	"github.com/marcusplumb/folio/renderer"
	"github.com/shopspring/decimal"
)

// rebalanceCmd holds the flags for the 'rebalance' subcommand.
type rebalanceCmd struct {
	maxWeight float64
	dryRun    bool
}

func (*rebalanceCmd) Name() string     { return "rebalance" }
func (*rebalanceCmd) Synopsis() string { return "trim positions exceeding the maximum weight" }
func (*rebalanceCmd) Usage() string {
	return `pfr rebalance [-max-weight <fraction>] [-n]

  Replays the ledger, computes each position's weight against the total NAV,
  and derives the minimal trades bringing every over-weight position back to
  the ceiling. The trades are appended to the portfolio file dated today,
  unless -n is given.

Usage Examples:
# Trim every position above 15% (the default) and record the trades.
$ pfr rebalance

# Preview the trades for a 10% ceiling without touching the ledger.
$ pfr rebalance -max-weight 0.10 -n

`
}

func (c *rebalanceCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.maxWeight, "max-weight", 0.15, "Maximum absolute weight per position, as a fraction")
	f.BoolVar(&c.dryRun, "n", false, "Dry run: print the proposed trades without recording them")
}

func (c *rebalanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.maxWeight <= 0 || c.maxWeight > 1 {
		fmt.Fprintf(os.Stderr, "Error: -max-weight must be in (0, 1], got %v\n", c.maxWeight)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	holdings, cashCents := ledger.Replay(date.Date{})
	if holdings.Len() == 0 {
		fmt.Println("No holdings found, nothing to rebalance.")
		return subcommands.ExitSuccess
	}

	snap, err := folio.LoadSnapshot(*pricesFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v (run 'pfr update' first)\n", err)
		return subcommands.ExitFailure
	}

	maxAbsWeight := decimal.NewFromFloat(c.maxWeight)
	rebalancer := folio.NewRebalancer(maxAbsWeight)

	trades, err := rebalancer.BuildTrades(holdings, cashCents, snap.PriceMap())
	if err != nil {
		if errors.Is(err, folio.ErrNonPositiveNAV) {
			fmt.Fprintf(os.Stderr, "Error: cannot rebalance: %v\n", err)
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		return subcommands.ExitFailure
	}

	if len(trades) == 0 {
		printMarkdown(renderer.NoTrades(maxAbsWeight))
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.Trades(trades))

	if c.dryRun {
		fmt.Println("Dry run: no transactions were recorded.")
		return subcommands.ExitSuccess
	}

	today := date.Today()
	txs := make([]folio.Transaction, 0, len(trades))
	for _, trade := range trades {
		txs = append(txs, trade.Transaction(today))
	}
	return appendTransactions(ledger, txs...)
}
