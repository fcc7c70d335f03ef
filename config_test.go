package warroom

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "warroom.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.ReportingCurrency != "TWD" || cfg.ForeignCurrency != "USD" {
		t.Errorf("currencies = %s/%s, want TWD/USD", cfg.ReportingCurrency, cfg.ForeignCurrency)
	}
	if cfg.DefaultFxRate != 31.65 {
		t.Errorf("DefaultFxRate = %v, want 31.65", cfg.DefaultFxRate)
	}
	if cfg.LedgerPath == "" || cfg.FundsPath == "" {
		t.Error("default paths missing")
	}
}

func TestLoadConfig_ReadsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warroom.yaml")
	yaml := `ledger_path: /data/trades.csv
reporting_currency: EUR
foreign_currency: USD
default_fx_rate: 0.92
equity_only_realized: true
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.LedgerPath != "/data/trades.csv" {
		t.Errorf("LedgerPath = %q", cfg.LedgerPath)
	}
	if cfg.ReportingCurrency != "EUR" || cfg.DefaultFxRate != 0.92 {
		t.Errorf("got %s at %v, want EUR at 0.92", cfg.ReportingCurrency, cfg.DefaultFxRate)
	}
	if !cfg.EquityOnlyRealized {
		t.Error("EquityOnlyRealized = false, want true")
	}
	// Unset fields still get defaults.
	if cfg.FundsPath == "" {
		t.Error("FundsPath default missing")
	}
}

func TestLoadConfig_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad currency", "reporting_currency: taiwan-dollar\n"},
		{"same currencies", "reporting_currency: USD\nforeign_currency: USD\n"},
		{"negative rate", "default_fx_rate: -1\n"},
		{"negative epsilon", "position_epsilon: -0.1\n"},
	}
	for _, tc := range tests {
		path := filepath.Join(t.TempDir(), "warroom.yaml")
		if err := os.WriteFile(path, []byte(tc.yaml), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Errorf("%s: LoadConfig() accepted invalid config", tc.name)
		}
	}
}
