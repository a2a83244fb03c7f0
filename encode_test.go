package folio

import (
	"bytes"
	"strings"
	"testing"
)

func TestDecodeLedger(t *testing.T) {
	doc := `{
  "startingCashCents": 1000000,
  "transactions": [
    {"date": "2025-02-01", "ticker": "MSFT", "type": "buy", "shares": 10, "priceCents": 30000},
    {"date": "2025-01-10", "ticker": "AAPL", "type": "BUY", "shares": 100, "priceCents": 15000}
  ]
}`
	ledger, err := DecodeLedger(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeLedger() error: %v", err)
	}
	if ledger.StartingCashCents != 1_000_000 {
		t.Errorf("StartingCashCents = %d, want 1000000", ledger.StartingCashCents)
	}
	if ledger.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", ledger.Len())
	}
	var first Transaction
	for i, tx := range ledger.Transactions() {
		if i == 0 {
			first = tx
		}
	}
	if first.Ticker != "AAPL" {
		t.Errorf("first transaction = %s, want AAPL: decode must sort by date", first.Ticker)
	}
}

func TestDecodeLedgerRejectsGarbage(t *testing.T) {
	if _, err := DecodeLedger(strings.NewReader("not json")); err == nil {
		t.Error("DecodeLedger(garbage) returned no error")
	}
}

func TestEncodeLedgerStable(t *testing.T) {
	ledger := NewLedger(1_000_000)
	ledger.Append(
		NewBuy(day(2025, 1, 10), "AAPL", 100, 15_000, ""),
		NewSell(day(2025, 2, 1), "AAPL", 40, 18_000, "take profits"),
	)

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, ledger); err != nil {
		t.Fatalf("EncodeLedger() error: %v", err)
	}
	got := buf.String()

	// Keys keep their document order so ledgers diff cleanly.
	if !strings.Contains(got, `"date": "2025-01-10"`) {
		t.Errorf("output missing first date:\n%s", got)
	}
	dateIdx := strings.Index(got, `"date"`)
	tickerIdx := strings.Index(got, `"ticker"`)
	typeIdx := strings.Index(got, `"type"`)
	if !(dateIdx < tickerIdx && tickerIdx < typeIdx) {
		t.Errorf("key order not date < ticker < type:\n%s", got)
	}
	if strings.Count(got, `"note"`) != 1 {
		t.Errorf("empty notes must be omitted, non-empty kept:\n%s", got)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Error("output must end with a newline")
	}

	// Round trip.
	back, err := DecodeLedger(&buf)
	if err != nil {
		t.Fatalf("DecodeLedger(round trip) error: %v", err)
	}
	if back.StartingCashCents != ledger.StartingCashCents || back.Len() != ledger.Len() {
		t.Errorf("round trip lost data: %+v", back)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	snap := NewSnapshot()
	snap.UpdatedAt = "2025-08-31T10:00:00Z"
	snap.Symbols["AAPL"] = Quote{PriceCents: 22_752, Currency: "USD"}

	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, snap); err != nil {
		t.Fatalf("EncodeSnapshot() error: %v", err)
	}
	back, err := DecodeSnapshot(&buf)
	if err != nil {
		t.Fatalf("DecodeSnapshot() error: %v", err)
	}
	if back.UpdatedAt != snap.UpdatedAt {
		t.Errorf("UpdatedAt = %q, want %q", back.UpdatedAt, snap.UpdatedAt)
	}
	if back.Symbols["AAPL"] != snap.Symbols["AAPL"] {
		t.Errorf("AAPL quote = %+v, want %+v", back.Symbols["AAPL"], snap.Symbols["AAPL"])
	}
}

func TestDecodeSnapshotEmptyObject(t *testing.T) {
	snap, err := DecodeSnapshot(strings.NewReader("{}"))
	if err != nil {
		t.Fatalf("DecodeSnapshot({}) error: %v", err)
	}
	if snap.Symbols == nil {
		t.Error("Symbols map must be non-nil after decode")
	}
}

func TestHistoryRoundTrip(t *testing.T) {
	hist := NewHistory()
	hist.Record("AAPL", day(2025, 8, 30), 22_000)
	hist.Record("AAPL", day(2025, 8, 31), 22_752)

	var buf bytes.Buffer
	if err := EncodeHistory(&buf, hist); err != nil {
		t.Fatalf("EncodeHistory() error: %v", err)
	}
	back, err := DecodeHistory(&buf)
	if err != nil {
		t.Fatalf("DecodeHistory() error: %v", err)
	}
	series := back.Series("AAPL")
	if len(series) != 2 || series[1].PriceCents != 22_752 || series[1].Date != day(2025, 8, 31) {
		t.Errorf("series = %+v", series)
	}
}
