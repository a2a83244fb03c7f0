package folio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// ledgerDoc mirrors the persisted portfolio document:
//
//	{"startingCashCents": 1000000, "transactions": [...]}
type ledgerDoc struct {
	StartingCashCents int64         `json:"startingCashCents"`
	Transactions      []Transaction `json:"transactions"`
}

// DecodeLedger reads the portfolio document from r and returns the ledger,
// transactions sorted chronologically.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	var doc ledgerDoc
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("could not decode portfolio document: %w", err)
	}
	ledger := NewLedger(doc.StartingCashCents)
	ledger.Append(doc.Transactions...)
	return ledger, nil
}

// EncodeLedger writes the ledger to w as an indented, newline-terminated JSON
// document. Transactions keep their chronological order and a stable key
// order, so successive writes diff cleanly.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	doc := ledgerDoc{
		StartingCashCents: ledger.StartingCashCents,
		Transactions:      make([]Transaction, 0, ledger.Len()),
	}
	for _, tx := range ledger.Transactions() {
		doc.Transactions = append(doc.Transactions, tx)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode portfolio document: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("could not write portfolio document: %w", err)
	}
	return nil
}

// DecodeSnapshot reads a price snapshot from r.
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	snap := NewSnapshot()
	if err := json.NewDecoder(r).Decode(snap); err != nil {
		return nil, fmt.Errorf("could not decode price snapshot: %w", err)
	}
	if snap.Symbols == nil {
		snap.Symbols = make(map[string]Quote)
	}
	return snap, nil
}

// EncodeSnapshot writes the price snapshot to w, indented and
// newline-terminated.
func EncodeSnapshot(w io.Writer, snap *Snapshot) error {
	return encodeIndented(w, snap, "price snapshot")
}

// DecodeHistory reads a price history from r. A corrupt document yields an
// error; the caller decides whether to start fresh.
func DecodeHistory(r io.Reader) (*History, error) {
	hist := NewHistory()
	if err := json.NewDecoder(r).Decode(hist); err != nil {
		return nil, fmt.Errorf("could not decode price history: %w", err)
	}
	if hist.Symbols == nil {
		hist.Symbols = make(map[string][]PricePoint)
	}
	return hist, nil
}

// EncodeHistory writes the price history to w, indented and
// newline-terminated.
func EncodeHistory(w io.Writer, hist *History) error {
	return encodeIndented(w, hist, "price history")
}

func encodeIndented(w io.Writer, v any, what string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("could not encode %s: %w", what, err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("could not write %s: %w", what, err)
	}
	return nil
}
