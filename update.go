package folio

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"time"

	"github.com/marcusplumb/folio/date"
)

// QuoteProvider fetches the latest price of a symbol in minor currency units.
type QuoteProvider interface {
	Latest(symbol string) (int64, error)
}

// DefaultThrottle is the pause between consecutive quote requests. The free
// Alpha Vantage tier allows 5 calls per minute.
const DefaultThrottle = 15 * time.Second

// Benchmarks are tracked even when they are not held, so reports can compare
// the portfolio against an index.
var Benchmarks = []string{"SPY"}

// Updater walks every tracked symbol sequentially, fetching its latest quote
// into the snapshot and the history. The walk is deliberately slow: Throttle
// separates consecutive requests to respect the provider's quota. A failure
// on one symbol is logged and must not abort the fetch of subsequent symbols.
type Updater struct {
	Provider QuoteProvider
	Throttle time.Duration
	Extras   []string // symbols tracked beyond the ledger, e.g. Benchmarks
	Currency string   // currency recorded on fetched quotes
}

// NewUpdater returns an updater with the default throttle, benchmark extras
// and USD quotes.
func NewUpdater(provider QuoteProvider) Updater {
	return Updater{
		Provider: provider,
		Throttle: DefaultThrottle,
		Extras:   Benchmarks,
		Currency: "USD",
	}
}

// symbols returns the sorted union of the ledger's tickers and the extras.
func (u Updater) symbols(ledger *Ledger) []string {
	visited := make(map[string]struct{})
	for ticker := range ledger.Tickers() {
		visited[ticker] = struct{}{}
	}
	for _, extra := range u.Extras {
		visited[extra] = struct{}{}
	}
	symbols := make([]string, 0, len(visited))
	for symbol := range visited {
		symbols = append(symbols, symbol)
	}
	slices.Sort(symbols)
	return symbols
}

// Update fetches a fresh quote for every tracked symbol into snap and hist.
// Failed symbols are skipped and reported in the joined error; successfully
// fetched quotes are recorded regardless, so a partial update is still an
// update.
func (u Updater) Update(ledger *Ledger, snap *Snapshot, hist *History) error {
	symbols := u.symbols(ledger)
	today := date.Today()

	var errs error
	for i, symbol := range symbols {
		if i > 0 && u.Throttle > 0 {
			time.Sleep(u.Throttle)
		}
		cents, err := u.Provider.Latest(symbol)
		if err != nil {
			log.Printf("error fetching %s (skipped): %v", symbol, err)
			errs = errors.Join(errs, fmt.Errorf("could not fetch %s: %w", symbol, err))
			continue
		}
		snap.Symbols[symbol] = Quote{PriceCents: cents, Currency: u.Currency}
		hist.Record(symbol, today, cents)
	}
	snap.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return errs
}
