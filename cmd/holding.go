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
)

// holdingCmd holds the flags for the 'holding' subcommand.
type holdingCmd struct {
	date string
}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "display holdings, cash and weights for a date" }
func (*holdingCmd) Usage() string {
	return `pfr holding [-d <date>]

  Replays the ledger up to the given date and displays the resulting
  positions and cash balance. When a price snapshot is available, position
  values and weights are shown too.
`
}

func (c *holdingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Date for the holdings report (YYYY-MM-DD)")
}

func (c *holdingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	holdings, cashCents := ledger.Replay(on)

	report := renderer.Holding{
		On:        on,
		Holdings:  holdings,
		CashCents: cashCents,
	}

	// Prices are optional for this report: without a snapshot the positions
	// are listed unvalued.
	if snap, err := folio.LoadSnapshot(*pricesFile); err == nil {
		report.Prices = snap.PriceMap()
		weights, totalNav, _, err := folio.ComputeWeights(holdings, cashCents, report.Prices)
		if err != nil && !errors.Is(err, folio.ErrNonPositiveNAV) {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		report.Weights = weights
		report.TotalNav = totalNav
	}

	printMarkdown(renderer.HoldingMarkdown(report))
	return subcommands.ExitSuccess
}
