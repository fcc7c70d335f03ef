package warroom

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestLedgerStore_MissingFileIsEmptyLedger(t *testing.T) {
	store := LedgerStore{Path: filepath.Join(t.TempDir(), "trades.csv")}
	ledger, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if ledger.Len() != 0 {
		t.Errorf("Len() = %d, want 0", ledger.Len())
	}
}

func TestLedgerStore_AppendThenLoad(t *testing.T) {
	store := LedgerStore{Path: filepath.Join(t.TempDir(), "trades.csv")}

	stamped, err := store.Append(buyEvent("2025-01-10", "2330", 100, 10, 5))
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if stamped.CreatedAt.IsZero() {
		t.Error("Append() did not stamp CreatedAt")
	}
	if _, err := store.Append(sellEvent("2025-02-01", "2330", 40, 12, 2, 1)); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	ledger, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if ledger.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", ledger.Len())
	}
	// Appends never reorder: record order is replay order.
	if ledger.Events()[0].Side != Buy || ledger.Events()[1].Side != Sell {
		t.Errorf("event order = %s,%s, want buy,sell", ledger.Events()[0].Side, ledger.Events()[1].Side)
	}
	if ledger.Events()[0].CreatedAt.IsZero() {
		t.Error("CreatedAt lost in the round trip")
	}
}

func TestLedgerStore_Rewrite(t *testing.T) {
	store := LedgerStore{Path: filepath.Join(t.TempDir(), "trades.csv")}
	if _, err := store.Append(buyEvent("2025-01-10", "2330", 100, 10, 5)); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	ledger, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := store.Rewrite(ledger); err != nil {
		t.Fatalf("Rewrite() error = %v", err)
	}

	again, err := store.Load()
	if err != nil {
		t.Fatalf("Load() after Rewrite() error = %v", err)
	}
	if again.Len() != 1 {
		t.Errorf("Len() = %d, want 1", again.Len())
	}
	if got := again.Events()[0].Symbol; got != "2330.TW" {
		t.Errorf("Symbol = %q, want canonical 2330.TW", got)
	}
}

func TestFundsStore_RoundTrip(t *testing.T) {
	store := FundsStore{Path: filepath.Join(t.TempDir(), "funds.csv")}

	zero, err := store.Load()
	if err != nil {
		t.Fatalf("Load() on missing file error = %v", err)
	}
	if !zero.DomesticCash.IsZero() || !zero.Liabilities.IsZero() {
		t.Errorf("missing file = %+v, want zero record", zero)
	}

	want := Funds{
		DomesticCash:   decimal.NewFromInt(1000),
		SettlementCash: decimal.NewFromInt(500),
		ForeignCash:    decimal.NewFromFloat(123.45),
		Liabilities:    decimal.NewFromInt(300),
	}
	if err := store.Save(want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !got.DomesticCash.Equal(want.DomesticCash) ||
		!got.SettlementCash.Equal(want.SettlementCash) ||
		!got.ForeignCash.Equal(want.ForeignCash) ||
		!got.Liabilities.Equal(want.Liabilities) {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestDecodeFunds_ToleratesUnknownKeysAndJunk(t *testing.T) {
	csv := `domestic_cash,"1,000"
exchange_rate,31.5
foreign_cash,n/a
liabilities,300
`
	funds, err := DecodeFunds(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("DecodeFunds() error = %v", err)
	}
	if !funds.DomesticCash.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("DomesticCash = %s, want 1000", funds.DomesticCash)
	}
	if !funds.ForeignCash.IsZero() {
		t.Errorf("ForeignCash = %s, want 0 for a malformed cell", funds.ForeignCash)
	}
	if !funds.Liabilities.Equal(decimal.NewFromInt(300)) {
		t.Errorf("Liabilities = %s, want 300", funds.Liabilities)
	}
}

func TestLoadLots_MissingOrBlankPath(t *testing.T) {
	if lots, err := LoadLots(""); err != nil || lots != nil {
		t.Errorf("LoadLots(\"\") = %v, %v, want nil, nil", lots, err)
	}
	if lots, err := LoadLots(filepath.Join(t.TempDir(), "lots.csv")); err != nil || lots != nil {
		t.Errorf("LoadLots(missing) = %v, %v, want nil, nil", lots, err)
	}
}
