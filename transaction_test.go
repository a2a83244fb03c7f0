package folio

import (
	"encoding/json"
	"testing"
)

func TestParseSide(t *testing.T) {
	tests := []struct {
		in     string
		want   Side
		wantOk bool
	}{
		{"BUY", Buy, true},
		{"buy", Buy, true},
		{"Sell", Sell, true},
		{"SELL", Sell, true},
		{"split", "split", false},
		{"", "", false},
	}
	for _, test := range tests {
		got, ok := ParseSide(test.in)
		if got != test.want || ok != test.wantOk {
			t.Errorf("ParseSide(%q) = (%q, %v), want (%q, %v)", test.in, got, ok, test.want, test.wantOk)
		}
	}
}

func TestTransactionMarshalKeyOrder(t *testing.T) {
	tx := NewBuy(day(2025, 1, 10), "AAPL", 100, 15_000, "")
	data, err := json.Marshal(tx)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	want := `{"date":"2025-01-10","ticker":"AAPL","type":"BUY","shares":100,"priceCents":15000}`
	if string(data) != want {
		t.Errorf("got  %s\nwant %s", data, want)
	}
}

func TestTransactionMarshalWithNote(t *testing.T) {
	tx := NewSell(day(2025, 6, 1), "AAPL", 85, 20_000, AutomatedNote)
	data, err := json.Marshal(tx)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	want := `{"date":"2025-06-01","ticker":"AAPL","type":"SELL","shares":85,"priceCents":20000,"note":"Automated portfolio rebalance"}`
	if string(data) != want {
		t.Errorf("got  %s\nwant %s", data, want)
	}
}

func TestTransactionUnmarshalNormalizesSide(t *testing.T) {
	var tx Transaction
	doc := `{"date":"2025-01-10","ticker":"AAPL","type":"buy","shares":100,"priceCents":15000}`
	if err := json.Unmarshal([]byte(doc), &tx); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if tx.Type != Buy {
		t.Errorf("Type = %q, want normalized BUY", tx.Type)
	}
	if !tx.applicable() {
		t.Error("well-formed transaction reported not applicable")
	}
}

func TestTransactionUnmarshalKeepsUnknownSide(t *testing.T) {
	var tx Transaction
	doc := `{"date":"2025-01-10","ticker":"AAPL","type":"dividend","shares":1,"priceCents":100}`
	if err := json.Unmarshal([]byte(doc), &tx); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if tx.applicable() {
		t.Error("unknown side must not be applicable on replay")
	}
}

func TestAmountCents(t *testing.T) {
	tx := NewBuy(day(2025, 1, 1), "AAPL", 100, 15_000, "")
	if got := tx.AmountCents(); got != 1_500_000 {
		t.Errorf("AmountCents() = %d, want 1500000", got)
	}
}
