package folio

import (
	"fmt"
	"log"
	"os"
)

// LoadLedger reads the portfolio document at path. The ledger is the source
// of truth, so a missing file is an error rather than an empty default.
func LoadLedger(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open portfolio file %q: %w", path, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode portfolio file %q: %w", path, err)
	}
	return ledger, nil
}

// SaveLedger writes the ledger to path, replacing the previous document.
func SaveLedger(path string, ledger *Ledger) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not open portfolio file %q for writing: %w", path, err)
	}
	defer f.Close()
	return EncodeLedger(f, ledger)
}

// LoadSnapshot reads the price snapshot at path.
func LoadSnapshot(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open prices file %q: %w", path, err)
	}
	defer f.Close()

	snap, err := DecodeSnapshot(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode prices file %q: %w", path, err)
	}
	return snap, nil
}

// SaveSnapshot writes the price snapshot to path.
func SaveSnapshot(path string, snap *Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not open prices file %q for writing: %w", path, err)
	}
	defer f.Close()
	return EncodeSnapshot(f, snap)
}

// LoadHistory reads the price history at path. A missing or corrupt history
// is not fatal: the series is a convenience, so we warn and start fresh
// instead of crashing.
func LoadHistory(path string) *History {
	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: could not open history file %q, starting fresh: %v", path, err)
		}
		return NewHistory()
	}
	defer f.Close()

	hist, err := DecodeHistory(f)
	if err != nil {
		log.Printf("warning: history file %q is invalid, starting fresh: %v", path, err)
		return NewHistory()
	}
	return hist
}

// SaveHistory writes the price history to path.
func SaveHistory(path string, hist *History) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not open history file %q for writing: %w", path, err)
	}
	defer f.Close()
	return EncodeHistory(f, hist)
}
