package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/marcusplumb/folio"
	"github.com/marcusplumb/folio/date"
	"github.com/shopspring/decimal"
)

func day(y, m, d int) date.Date { return date.New(y, time.Month(m), d) }

func TestTransaction(t *testing.T) {
	buy := folio.NewBuy(day(2025, 1, 10), "AAPL", 100, 15_000, "")
	if got, want := Transaction(buy), "Bought 100 AAPL @ $150.00"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	sell := folio.NewSell(day(2025, 2, 1), "AAPL", 40, 18_000, "")
	if got, want := Transaction(sell), "Sold 40 AAPL @ $180.00"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTransactionsTable(t *testing.T) {
	txs := []folio.Transaction{
		folio.NewBuy(day(2025, 1, 10), "AAPL", 100, 15_000, ""),
		folio.NewSell(day(2025, 6, 1), "AAPL", 85, 20_000, folio.AutomatedNote),
	}
	got := Transactions(txs)

	for _, want := range []string{
		"| Date | Ticker | Type | Shares | Price | Note |",
		"| 2025-01-10 | AAPL | BUY | 100 | $150.00 |  |",
		"| 2025-06-01 | AAPL | SELL | 85 | $200.00 | Automated portfolio rebalance |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestTransactionsEmpty(t *testing.T) {
	if got := Transactions(nil); !strings.Contains(got, "The ledger is empty.") {
		t.Errorf("empty ledger message missing:\n%s", got)
	}
}

func TestNoTrades(t *testing.T) {
	got := NoTrades(decimal.NewFromFloat(0.15))
	want := "Portfolio already within the max absolute weight of 15.00% for all positions. No trades needed.\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTrades(t *testing.T) {
	trades := []folio.TradeProposal{{
		Ticker:          "AAPL",
		Type:            folio.Sell,
		Shares:          85,
		PriceCents:      20_000,
		OldWeight:       decimal.NewFromInt(1),
		TargetAbsWeight: decimal.NewFromFloat(0.15),
	}}
	got := Trades(trades)

	for _, want := range []string{
		"# Proposed rebalance trades",
		"| Action | Shares | Ticker | Price | Old weight | Target |",
		"| SELL | 85 | AAPL | $200.00 | +100.00% | ≤ 15.00% |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestHoldingMarkdown(t *testing.T) {
	ledger := folio.NewLedger(2_000_000)
	ledger.Append(
		folio.NewBuy(day(2025, 1, 1), "AAPL", 100, 15_000, ""),
		folio.NewBuy(day(2025, 1, 2), "DARK", 5, 1_000, ""),
	)
	holdings, cash := ledger.Replay(date.Date{})
	prices := folio.PriceMap{"AAPL": 15_000}
	weights, totalNav, _, err := folio.ComputeWeights(holdings, cash, prices)
	if err != nil {
		t.Fatal(err)
	}

	got := HoldingMarkdown(Holding{
		On:        day(2025, 8, 31),
		Holdings:  holdings,
		CashCents: cash,
		Prices:    prices,
		Weights:   weights,
		TotalNav:  totalNav,
	})

	for _, want := range []string{
		"# Holdings on 2025-08-31",
		"| AAPL | 100 | $15,000.00 |",
		"| DARK | 5 | unpriced | - |",
		"Cash: $4,950.00",
		"Total NAV: $19,950.00",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestHoldingMarkdownEmpty(t *testing.T) {
	ledger := folio.NewLedger(0)
	holdings, cash := ledger.Replay(date.Date{})
	got := HoldingMarkdown(Holding{On: day(2025, 8, 31), Holdings: holdings, CashCents: cash})
	if !strings.Contains(got, "No holdings found.") {
		t.Errorf("empty message missing:\n%s", got)
	}
}
