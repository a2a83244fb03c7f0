package renderer

import (
	"fmt"
	"strings"

	"github.com/marcusplumb/folio"
	"github.com/shopspring/decimal"
)

// NoTrades is the message shown when every position is already within the
// weight ceiling.
func NoTrades(maxAbsWeight decimal.Decimal) string {
	return fmt.Sprintf("Portfolio already within the max absolute weight of %s for all positions. No trades needed.\n",
		percent(maxAbsWeight))
}

// Trades renders the proposed trims as a markdown report: ticker, direction,
// quantity, reference price, prior weight and the target ceiling.
func Trades(trades []folio.TradeProposal) string {
	var b strings.Builder
	b.WriteString("# Proposed rebalance trades\n\n")

	rows := make([][]string, 0, len(trades))
	for _, t := range trades {
		rows = append(rows, []string{
			string(t.Type),
			fmt.Sprintf("%d", t.Shares),
			t.Ticker,
			folio.FormatCents(t.PriceCents, "USD"),
			signedPercent(t.OldWeight),
			"≤ " + percent(t.TargetAbsWeight),
		})
	}
	table(&b, []string{"Action", "Shares", "Ticker", "Price", "Old weight", "Target"}, rows)
	return b.String()
}
