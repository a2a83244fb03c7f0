package cmd

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/google/subcommands"
	"github.com/marcusplumb/folio"
	"github.com/marcusplumb/folio/date"
)

// parseCents converts a price in major units (e.g. 227.52) to cents.
func parseCents(price float64) int64 {
	return int64(math.Round(price * 100))
}

// --- Buy Command ---

type buyCmd struct {
	date     string
	ticker   string
	quantity int64
	price    float64
	note     string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "purchase shares to open or add to a position" }
func (*buyCmd) Usage() string {
	return `pfr buy -t <ticker> -q <quantity> -p <price> [-d <date>] [-note <note>]

  Purchases shares of a security. The total cost is debited from the cash
  balance on replay.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.ticker, "t", "", "Security ticker")
	f.Int64Var(&c.quantity, "q", 0, "Number of shares")
	f.Float64Var(&c.price, "p", 0, "Price per share")
	f.StringVar(&c.note, "note", "", "An optional rationale for the transaction")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" || c.quantity <= 0 || c.price <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	tx := folio.NewBuy(day, c.ticker, c.quantity, parseCents(c.price), c.note)
	return appendTransactions(ledger, tx)
}

// --- Sell Command ---

type sellCmd struct {
	date     string
	ticker   string
	quantity int64
	price    float64
	note     string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell shares to trim or close a position" }
func (*sellCmd) Usage() string {
	return `pfr sell -t <ticker> -q <quantity> -p <price> [-d <date>] [-note <note>]

  Sells shares of a security. The proceeds are credited to the cash balance
  on replay. Selling more shares than held opens a short position.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.ticker, "t", "", "Security ticker")
	f.Int64Var(&c.quantity, "q", 0, "Number of shares")
	f.Float64Var(&c.price, "p", 0, "Price per share")
	f.StringVar(&c.note, "note", "", "An optional rationale for the transaction")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" || c.quantity <= 0 || c.price < 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	tx := folio.NewSell(day, c.ticker, c.quantity, parseCents(c.price), c.note)
	return appendTransactions(ledger, tx)
}
