package warroom

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// File-backed stores. The stores only read and append, they never edit
// historical rows. Serializing writes (append, then re-read, then recompute)
// is the calling application's job: the CLI is single-shot so each invocation
// is naturally serialized.

// LedgerStore persists the trade log in one CSV file.
type LedgerStore struct {
	Path string
}

// Load reads the full ledger. A missing file is an empty ledger, not an
// error: a fresh setup has no trades yet.
func (s LedgerStore) Load() (*Ledger, error) {
	f, err := os.Open(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger %q: %w", s.Path, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger %q: %w", s.Path, err)
	}
	return ledger, nil
}

// Append appends one event to the ledger file, stamping it with the creation
// time. It returns the stamped event.
func (s LedgerStore) Append(e TradeEvent) (TradeEvent, error) {
	e.CreatedAt = time.Now()

	f, err := os.OpenFile(s.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return e, fmt.Errorf("could not open ledger %q: %w", s.Path, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return e, fmt.Errorf("could not stat ledger %q: %w", s.Path, err)
	}
	if st.Size() == 0 {
		if err := EncodeHeader(f); err != nil {
			return e, err
		}
	}
	if err := EncodeTrade(f, e); err != nil {
		return e, err
	}
	return e, nil
}

// Rewrite replaces the ledger file with the canonical encoding of the given
// ledger. Used by the fmt command, never by trade submission.
func (s LedgerStore) Rewrite(ledger *Ledger) error {
	f, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("could not create ledger %q: %w", s.Path, err)
	}
	defer f.Close()
	return EncodeLedger(f, ledger)
}

// FundsStore persists the funds record in one key-value CSV file.
type FundsStore struct {
	Path string
}

// Load reads the funds record. A missing file is a zero record.
func (s FundsStore) Load() (Funds, error) {
	f, err := os.Open(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return Funds{}, nil
	}
	if err != nil {
		return Funds{}, fmt.Errorf("could not open funds %q: %w", s.Path, err)
	}
	defer f.Close()
	return DecodeFunds(f)
}

// Save writes the funds record.
func (s FundsStore) Save(funds Funds) error {
	f, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("could not create funds %q: %w", s.Path, err)
	}
	defer f.Close()
	return EncodeFunds(f, funds)
}

// LoadLots reads seed lots from a CSV file. A missing file means no
// pre-ledger holdings.
func LoadLots(path string) ([]Lot, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open lots %q: %w", path, err)
	}
	defer f.Close()
	return DecodeLots(f)
}
