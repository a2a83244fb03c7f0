package folio

import (
	"iter"
	"slices"
	"sort"

	"github.com/marcusplumb/folio/date"
)

// Ledger is the append-only transaction history, together with the starting
// cash balance it folds from. It is the sole source of truth: holdings and
// cash are always recomputed by Replay, never cached across invocations.
type Ledger struct {
	StartingCashCents int64
	transactions      []Transaction
}

// NewLedger creates a ledger with a starting cash balance and no transactions.
func NewLedger(startingCashCents int64) *Ledger {
	return &Ledger{StartingCashCents: startingCashCents}
}

// Append appends transactions to this ledger and maintains the chronological
// order of transactions.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
	l.stableSort()
}

// stableSort sorts the ledger by transaction date. The sort is stable, meaning
// transactions on the same day maintain their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].Date.Before(l.transactions[j].Date)
	})
}

// Len returns the number of recorded transactions, applicable or not.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions returns an iterator that yields each transaction in ledger order.
func (l *Ledger) Transactions() iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			if !yield(i, tx) {
				return
			}
		}
	}
}

// Tickers iterates over the unique tickers appearing in the ledger, sorted.
func (l *Ledger) Tickers() iter.Seq[string] {
	return func(yield func(string) bool) {
		visited := make(map[string]struct{})
		for _, tx := range l.transactions {
			if tx.Ticker == "" {
				continue
			}
			visited[tx.Ticker] = struct{}{}
		}
		tickers := make([]string, 0, len(visited))
		for ticker := range visited {
			tickers = append(tickers, ticker)
		}
		slices.Sort(tickers)
		for _, ticker := range tickers {
			if !yield(ticker) {
				return
			}
		}
	}
}

// Replay folds the starting cash and every applicable transaction into net
// holdings and a net cash balance. A zero `through` date means the entire
// ledger; otherwise transactions dated strictly after it are skipped.
// Malformed records (empty ticker, non-positive shares, negative price,
// unrecognized type) are silently dropped. Selling beyond the current
// position is permitted and produces a short (negative) holding.
//
// Replay is pure: it never mutates the ledger and is deterministic, so it can
// be re-run with different cutoffs against the same ledger.
func (l *Ledger) Replay(through date.Date) (*Holdings, int64) {
	cash := l.StartingCashCents
	holdings := newHoldings()

	for _, tx := range l.transactions {
		if !through.IsZero() && tx.Date.After(through) {
			continue
		}
		if !tx.applicable() {
			continue
		}
		side, _ := ParseSide(string(tx.Type))
		switch side {
		case Buy:
			holdings.add(tx.Ticker, tx.Shares)
			cash -= tx.AmountCents()
		case Sell:
			holdings.add(tx.Ticker, -tx.Shares)
			cash += tx.AmountCents()
		}
	}
	return holdings, cash
}

// Holdings maps tickers to net signed share counts. It remembers the order
// tickers first appeared in the ledger, so downstream iteration (and the
// trades derived from it) is stable across runs.
type Holdings struct {
	shares map[string]int64
	order  []string
}

func newHoldings() *Holdings {
	return &Holdings{shares: make(map[string]int64)}
}

func (h *Holdings) add(ticker string, qty int64) {
	if _, seen := h.shares[ticker]; !seen {
		h.order = append(h.order, ticker)
	}
	h.shares[ticker] += qty
}

// Shares returns the net signed share count for a ticker, zero if unknown.
func (h *Holdings) Shares(ticker string) int64 { return h.shares[ticker] }

// Len returns the number of tickers ever touched by an applicable transaction.
func (h *Holdings) Len() int { return len(h.order) }

// Tickers iterates tickers in the order they first appeared in the ledger.
func (h *Holdings) Tickers() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, ticker := range h.order {
			if !yield(ticker) {
				return
			}
		}
	}
}
