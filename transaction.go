package folio

import (
	"encoding/json"
	"strings"

	"github.com/marcusplumb/folio/date"
)

// Side identifies the direction of a transaction.
type Side string

// Transaction sides recorded in the ledger.
const (
	Buy  Side = "BUY"
	Sell Side = "SELL"
)

// ParseSide normalizes a raw transaction type string. It is case-insensitive;
// ok is false for anything other than a buy or a sell.
func ParseSide(s string) (Side, bool) {
	switch Side(strings.ToUpper(s)) {
	case Buy:
		return Buy, true
	case Sell:
		return Sell, true
	default:
		return Side(s), false
	}
}

// AutomatedNote marks transactions appended by the rebalancer rather than
// entered by hand.
const AutomatedNote = "Automated portfolio rebalance"

// Transaction is a single ledger record. Once recorded it is immutable: the
// ledger only ever appends, never edits or deletes.
type Transaction struct {
	Date       date.Date // calendar day of the trade
	Ticker     string    // security symbol, non-empty to be applied
	Type       Side      // BUY or SELL; anything else is ignored on replay
	Shares     int64     // share count, must be > 0 to be applied
	PriceCents int64     // price per share in minor currency units, >= 0
	Note       string    // optional rationale; AutomatedNote for rebalancer trims
}

// NewBuy creates a buy transaction.
func NewBuy(day date.Date, ticker string, shares, priceCents int64, note string) Transaction {
	return Transaction{Date: day, Ticker: ticker, Type: Buy, Shares: shares, PriceCents: priceCents, Note: note}
}

// NewSell creates a sell transaction.
func NewSell(day date.Date, ticker string, shares, priceCents int64, note string) Transaction {
	return Transaction{Date: day, Ticker: ticker, Type: Sell, Shares: shares, PriceCents: priceCents, Note: note}
}

// AmountCents returns the total value of the transaction in minor units.
func (t Transaction) AmountCents() int64 { return t.Shares * t.PriceCents }

// applicable reports whether the record survives the replay leniency policy:
// malformed records are silently dropped, not errors.
func (t Transaction) applicable() bool {
	if t.Ticker == "" || t.Shares <= 0 || t.PriceCents < 0 {
		return false
	}
	_, ok := ParseSide(string(t.Type))
	return ok
}

// MarshalJSON implements the json.Marshaler interface with a stable key
// order, so the persisted ledger diffs cleanly under version control.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", t.Date)
	w.Append("ticker", t.Ticker)
	w.Append("type", t.Type)
	w.Append("shares", t.Shares)
	w.Append("priceCents", t.PriceCents)
	w.Optional("note", t.Note)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface. Recognized sides
// are normalized to their canonical upper-case form; unrecognized ones are
// kept as-is and skipped during replay.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		Date       date.Date `json:"date"`
		Ticker     string    `json:"ticker"`
		Type       string    `json:"type"`
		Shares     int64     `json:"shares"`
		PriceCents int64     `json:"priceCents"`
		Note       string    `json:"note"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	side, _ := ParseSide(temp.Type)
	t.Date = temp.Date
	t.Ticker = temp.Ticker
	t.Type = side
	t.Shares = temp.Shares
	t.PriceCents = temp.PriceCents
	t.Note = temp.Note
	return nil
}
