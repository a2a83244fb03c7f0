package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/marcusplumb/folio"
	"github.com/marcusplumb/folio/agent"
	"github.com/marcusplumb/folio/date"
	"github.com/marcusplumb/folio/renderer"
	"github.com/shopspring/decimal"
	"google.golang.org/genai"
)

// assistCmd sends the current holdings and the proposed rebalance trades to
// the AI analyst for a review.
type assistCmd struct {
	maxWeight float64
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "ask the AI analyst to review the portfolio" }
func (*assistCmd) Usage() string {
	return `pfr assist [-max-weight <fraction>] [question...]

  Builds the holdings report and the rebalance proposal, sends both to the
  AI analyst, and prints its commentary. An optional question is appended to
  the report.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.maxWeight, "max-weight", 0.15, "Maximum absolute weight per position, as a fraction")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	snap, err := folio.LoadSnapshot(*pricesFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v (run 'pfr update' first)\n", err)
		return subcommands.ExitFailure
	}
	prices := snap.PriceMap()

	today := date.Today()
	holdings, cashCents := ledger.Replay(date.Date{})
	weights, totalNav, _, err := folio.ComputeWeights(holdings, cashCents, prices)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	maxAbsWeight := decimal.NewFromFloat(c.maxWeight)
	trades, err := folio.NewRebalancer(maxAbsWeight).BuildTrades(holdings, cashCents, prices)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	var report strings.Builder
	report.WriteString(renderer.HoldingMarkdown(renderer.Holding{
		On:        today,
		Holdings:  holdings,
		CashCents: cashCents,
		Prices:    prices,
		Weights:   weights,
		TotalNav:  totalNav,
	}))
	report.WriteString("\n")
	if len(trades) == 0 {
		report.WriteString(renderer.NoTrades(maxAbsWeight))
	} else {
		report.WriteString(renderer.Trades(trades))
	}
	if f.NArg() > 0 {
		fmt.Fprintf(&report, "\n%s\n", strings.Join(f.Args(), " "))
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	analyst := agent.NewAnalyst()
	review, err := analyst.Review(ctx, client, report.String())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Analyst failed:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(review)

	return subcommands.ExitSuccess
}
