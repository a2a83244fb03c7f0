package folio

import (
	"github.com/marcusplumb/folio/date"
)

// Quote is the latest known price of a symbol in minor currency units.
type Quote struct {
	PriceCents int64  `json:"priceCents"`
	Currency   string `json:"currency"`
}

// Snapshot is the live price picture consumed by the rebalancer, as written
// by the price updater. UpdatedAt is an RFC 3339 UTC timestamp.
type Snapshot struct {
	UpdatedAt string           `json:"updatedAt"`
	Symbols   map[string]Quote `json:"symbols"`
}

// NewSnapshot creates an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{Symbols: make(map[string]Quote)}
}

// PriceMap flattens the snapshot into the ticker → priceCents mapping used by
// valuation. Negative prices never come from the updater but are dropped here
// anyway so a hand-edited snapshot cannot corrupt a computation.
func (s *Snapshot) PriceMap() PriceMap {
	prices := make(PriceMap, len(s.Symbols))
	for ticker, quote := range s.Symbols {
		if quote.PriceCents < 0 {
			continue
		}
		prices[ticker] = quote.PriceCents
	}
	return prices
}

// PricePoint is one day of a symbol's price series.
type PricePoint struct {
	Date       date.Date `json:"date"`
	PriceCents int64     `json:"priceCents"`
}

// History keeps an append-only daily price series per symbol, one point per
// day at most.
type History struct {
	Symbols map[string][]PricePoint `json:"symbols"`
}

// NewHistory creates an empty price history.
func NewHistory() *History {
	return &History{Symbols: make(map[string][]PricePoint)}
}

// Record appends a price point for a symbol. If the series already ends on
// the same day the price is overwritten in place, so re-running the updater
// within a day updates rather than duplicates.
func (h *History) Record(symbol string, on date.Date, priceCents int64) {
	if h.Symbols == nil {
		h.Symbols = make(map[string][]PricePoint)
	}
	series := h.Symbols[symbol]
	if n := len(series); n > 0 && series[n-1].Date == on {
		series[n-1].PriceCents = priceCents
	} else {
		series = append(series, PricePoint{Date: on, PriceCents: priceCents})
	}
	h.Symbols[symbol] = series
}

// Series returns the recorded price points for a symbol, oldest first.
func (h *History) Series(symbol string) []PricePoint {
	return h.Symbols[symbol]
}
