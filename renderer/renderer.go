// Package renderer turns folio domain values into markdown reports.
package renderer

import (
	"fmt"
	"strings"

	"github.com/marcusplumb/folio"
	"github.com/shopspring/decimal"
)

// percent renders a decimal fraction (0.15) as a percentage ("15.00%").
func percent(d decimal.Decimal) string {
	return folio.Percent(d.InexactFloat64() * 100).String()
}

// signedPercent renders a decimal fraction with an explicit sign.
func signedPercent(d decimal.Decimal) string {
	return folio.Percent(d.InexactFloat64() * 100).SignedString()
}

// table renders a markdown table with the given header and rows.
func table(b *strings.Builder, header []string, rows [][]string) {
	b.WriteString("| " + strings.Join(header, " | ") + " |\n")
	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	b.WriteString("| " + strings.Join(sep, " | ") + " |\n")
	for _, row := range rows {
		b.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}
}

// Transaction renders a single ledger record to a string.
func Transaction(tx folio.Transaction) string {
	price := folio.FormatCents(tx.PriceCents, "USD")
	switch tx.Type {
	case folio.Buy:
		return fmt.Sprintf("Bought %d %s @ %s", tx.Shares, tx.Ticker, price)
	case folio.Sell:
		return fmt.Sprintf("Sold %d %s @ %s", tx.Shares, tx.Ticker, price)
	default:
		return fmt.Sprintf("Ignored %q %d %s", string(tx.Type), tx.Shares, tx.Ticker)
	}
}

// Transactions renders the ledger records as a markdown table.
func Transactions(txs []folio.Transaction) string {
	var b strings.Builder
	b.WriteString("# Transactions\n\n")
	if len(txs) == 0 {
		b.WriteString("The ledger is empty.\n")
		return b.String()
	}

	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, []string{
			tx.Date.String(),
			tx.Ticker,
			string(tx.Type),
			fmt.Sprintf("%d", tx.Shares),
			folio.FormatCents(tx.PriceCents, "USD"),
			tx.Note,
		})
	}
	table(&b, []string{"Date", "Ticker", "Type", "Shares", "Price", "Note"}, rows)
	return b.String()
}
