package folio

import (
	"errors"
	"fmt"

	"github.com/marcusplumb/folio/date"
	"github.com/shopspring/decimal"
)

// PriceMap maps a ticker to its latest known price in minor currency units.
// A ticker absent from the map has no price and is excluded from valuation.
type PriceMap map[string]int64

// Weights maps a ticker to its signed portfolio weight, position NAV over
// total NAV. Shorts carry negative weights, and a magnitude can exceed 1 when
// the portfolio is leveraged through short positions elsewhere.
type Weights map[string]decimal.Decimal

// ErrNonPositiveNAV is returned when the portfolio's total net asset value is
// zero or negative. Weights are undefined against such a baseline, so the
// rebalance must not proceed.
var ErrNonPositiveNAV = errors.New("total NAV is non-positive")

// ComputeWeights values every priced position against the total net asset
// value and returns the signed weight per ticker, along with the total NAV
// and the positions-only NAV, both in minor units.
//
// Tickers without a price are excluded entirely: they contribute neither to
// NAV nor to the returned weights.
func ComputeWeights(holdings *Holdings, cashCents int64, prices PriceMap) (Weights, int64, int64, error) {
	var positionsNav int64
	for ticker := range holdings.Tickers() {
		price, ok := prices[ticker]
		if !ok {
			continue
		}
		positionsNav += price * holdings.Shares(ticker) // shares can be negative
	}

	totalNav := positionsNav + cashCents
	if totalNav <= 0 {
		return nil, totalNav, positionsNav, fmt.Errorf("%w: got %d¢", ErrNonPositiveNAV, totalNav)
	}

	weights := make(Weights)
	total := decimal.NewFromInt(totalNav)
	for ticker := range holdings.Tickers() {
		price, ok := prices[ticker]
		if !ok {
			continue
		}
		posNav := decimal.NewFromInt(price * holdings.Shares(ticker))
		weights[ticker] = posNav.Div(total)
	}
	return weights, totalNav, positionsNav, nil
}

// TradeProposal is a trim derived by the rebalancer. It is ephemeral: either
// discarded, or serialized into a new ledger transaction via Transaction.
type TradeProposal struct {
	Ticker          string
	Type            Side
	Shares          int64 // always positive; Type carries the direction
	PriceCents      int64 // reference price used for the computation
	OldWeight       decimal.Decimal
	TargetAbsWeight decimal.Decimal
}

// Transaction converts the proposal into a ledger record dated on the given
// day and marked as automated.
func (p TradeProposal) Transaction(on date.Date) Transaction {
	return Transaction{
		Date:       on,
		Ticker:     p.Ticker,
		Type:       p.Type,
		Shares:     p.Shares,
		PriceCents: p.PriceCents,
		Note:       AutomatedNote,
	}
}

// Rebalancer trims positions whose absolute weight exceeds MaxAbsWeight.
// It is an explicit configuration object rather than process-wide state, so
// callers (and tests) can run with arbitrary ceilings.
type Rebalancer struct {
	// MaxAbsWeight is the maximum absolute weight allowed per position,
	// as a fraction (0.15 for 15%).
	MaxAbsWeight decimal.Decimal
}

// NewRebalancer returns a rebalancer enforcing the given absolute weight
// ceiling.
func NewRebalancer(maxAbsWeight decimal.Decimal) Rebalancer {
	return Rebalancer{MaxAbsWeight: maxAbsWeight}
}

// BuildTrades derives the minimal trim for every over-weight position.
//
// For each ticker with nonzero holdings and a known price, in ledger order:
// positions within the ceiling are left alone; otherwise the target NAV at
// the boundary is floor(MaxAbsWeight × totalNAV) with the position's sign,
// and the desired share count floor(|targetNAV| / price), so the trimmed
// weight never lands back above the ceiling. A long is reduced with a SELL,
// a short covered with a BUY; a trim always moves the position toward zero
// and never flips its sign. Underweight positions are never topped up.
func (r Rebalancer) BuildTrades(holdings *Holdings, cashCents int64, prices PriceMap) ([]TradeProposal, error) {
	weights, totalNav, _, err := ComputeWeights(holdings, cashCents, prices)
	if err != nil {
		return nil, err
	}

	boundary := r.MaxAbsWeight.Mul(decimal.NewFromInt(totalNav)).Floor().IntPart()

	var trades []TradeProposal
	for ticker := range holdings.Tickers() {
		netShares := holdings.Shares(ticker)
		if netShares == 0 {
			continue
		}
		price, ok := prices[ticker]
		if !ok {
			continue
		}

		weight := weights[ticker]
		if weight.Abs().LessThanOrEqual(r.MaxAbsWeight) {
			continue // within limit
		}

		// price > 0 here: a zero price means a zero weight, filtered above.
		desiredAbsShares := boundary / price

		currentAbsShares := netShares
		if currentAbsShares < 0 {
			currentAbsShares = -currentAbsShares
		}

		// Guard against rounding producing a no-op or inverted trim.
		if desiredAbsShares >= currentAbsShares {
			continue
		}

		side := Sell // long position: sell to reduce
		if netShares < 0 {
			side = Buy // short position: buy to cover
		}

		trades = append(trades, TradeProposal{
			Ticker:          ticker,
			Type:            side,
			Shares:          currentAbsShares - desiredAbsShares,
			PriceCents:      price,
			OldWeight:       weight,
			TargetAbsWeight: r.MaxAbsWeight,
		})
	}
	return trades, nil
}
