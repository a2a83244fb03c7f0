// Package folio maintains a personal investment portfolio from an append-only
// transaction ledger and proposes trim trades that keep every position under a
// configured concentration ceiling.
//
// The core functionalities include:
//   - Ledger Replay: folding a starting cash balance and an ordered list of
//     buy/sell transactions into net per-ticker share counts and a net cash
//     balance. Holdings are always derived, never stored.
//   - Weight Computation: valuing each priced position against the total net
//     asset value (positions plus cash) as a signed weight, negative for
//     short positions.
//   - Trade Derivation: for every position whose absolute weight exceeds the
//     ceiling, the minimal number of shares to trade to bring it back to the
//     boundary, always moving the position toward zero.
//   - Market Data Integration: a rate-limited Alpha Vantage fetcher feeding a
//     price snapshot and a per-symbol price history file.
//   - Data Persistence: encoding and decoding the ledger document and price
//     files to and from human-readable JSON.
//
// This package serves as the foundational logic for the `pfr` command-line
// tool; proposed trims are appended back into the same ledger, so today's
// rebalance becomes tomorrow's replay input.
package folio
