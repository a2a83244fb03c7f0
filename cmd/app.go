// Package cmd implements the CLI application to manage a portfolio.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/marcusplumb/folio"
)

// Register the subcommands.
// A main package calls Register() to declare the subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&updateCmd{}, "prices")

	c.Register(&buyCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")

	c.Register(&holdingCmd{}, "reports")
	c.Register(&rebalanceCmd{}, "reports")
	c.Register(&assistCmd{}, "reports")

	c.Register(&topicCmd{}, "")
}

// Names returns the subcommand names, for shell completion.
func Names() []string {
	return []string{
		"update",
		"buy", "sell", "tx",
		"holding", "rebalance", "assist",
		"topic",
		"help", "flags", "commands",
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var portfolioFile = flag.String("portfolio-file", "portfolio_config.json", "Path to the portfolio file (starting cash and transactions)")
var pricesFile = flag.String("prices-file", "prices.json", "Path to the latest prices snapshot file")
var historyFile = flag.String("history-file", "prices_history.json", "Path to the daily price history file")

// DecodeLedger loads the ledger from the app default portfolio file.
func DecodeLedger() (*folio.Ledger, error) {
	return folio.LoadLedger(*portfolioFile)
}

// EncodeLedger writes the ledger back to the app default portfolio file.
func EncodeLedger(ledger *folio.Ledger) error {
	return folio.SaveLedger(*portfolioFile, ledger)
}

// appendTransactions appends transactions to the ledger and saves it.
func appendTransactions(ledger *folio.Ledger, txs ...folio.Transaction) subcommands.ExitStatus {
	for _, tx := range txs {
		ledger.Append(tx)
	}
	if err := folio.SaveLedger(*portfolioFile, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing portfolio file %q: %v\n", *portfolioFile, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully appended %d transaction(s) to %s\n", len(txs), *portfolioFile)
	return subcommands.ExitSuccess
}
