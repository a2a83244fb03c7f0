package renderer

import (
	"fmt"
	"strings"

	"github.com/marcusplumb/folio"
	"github.com/marcusplumb/folio/date"
)

// Holding is the view of the portfolio state on a given day, as rebuilt by
// replaying the ledger.
type Holding struct {
	On        date.Date
	Holdings  *folio.Holdings
	CashCents int64
	Prices    folio.PriceMap // may be empty when no snapshot is available
	Weights   folio.Weights  // nil when NAV could not be computed
	TotalNav  int64
}

// HoldingMarkdown renders the holdings report: per-ticker net shares, and
// when prices are known the position values and weights, then cash and NAV.
func HoldingMarkdown(h Holding) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Holdings on %s\n\n", h.On)

	if h.Holdings.Len() == 0 {
		b.WriteString("No holdings found.\n")
		return b.String()
	}

	rows := make([][]string, 0, h.Holdings.Len())
	for ticker := range h.Holdings.Tickers() {
		shares := h.Holdings.Shares(ticker)
		if shares == 0 {
			continue
		}
		value, weight := "unpriced", "-"
		if price, ok := h.Prices[ticker]; ok {
			value = folio.FormatCents(price*shares, "USD")
			if w, ok := h.Weights[ticker]; ok {
				weight = signedPercent(w)
			}
		}
		rows = append(rows, []string{ticker, fmt.Sprintf("%d", shares), value, weight})
	}
	table(&b, []string{"Ticker", "Shares", "Value", "Weight"}, rows)

	fmt.Fprintf(&b, "\nCash: %s\n", folio.FormatCents(h.CashCents, "USD"))
	if h.Weights != nil {
		fmt.Fprintf(&b, "\nTotal NAV: %s\n", folio.FormatCents(h.TotalNav, "USD"))
	}
	return b.String()
}
