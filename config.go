package warroom

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Config holds the application settings. Everything has a default so a
// missing config file is a valid setup.
type Config struct {
	LedgerPath string `yaml:"ledger_path"`
	FundsPath  string `yaml:"funds_path"`
	LotsPath   string `yaml:"lots_path"` // optional seed lots file

	ReportingCurrency string  `yaml:"reporting_currency"`
	ForeignCurrency   string  `yaml:"foreign_currency"`
	DefaultFxRate     float64 `yaml:"default_fx_rate"` // used when the live rate is unavailable
	PositionEpsilon   float64 `yaml:"position_epsilon"`

	// EquityOnlyRealized restricts the realized P&L total to stocks. Broker
	// statements disagree on whether bond and crypto sales belong in that
	// metric, so it is a setting, not a rule.
	EquityOnlyRealized bool `yaml:"equity_only_realized"`

	QuoteTimeoutSeconds int `yaml:"quote_timeout_seconds"`
}

var currencyCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// LoadConfig reads the YAML config at path. A missing file yields the
// defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not read config %q: %w", path, err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("could not parse config %q: %w", path, err)
		}
	}
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.LedgerPath == "" {
		c.LedgerPath = "trades.csv"
	}
	if c.FundsPath == "" {
		c.FundsPath = "funds.csv"
	}
	if c.ReportingCurrency == "" {
		c.ReportingCurrency = "TWD"
	}
	if c.ForeignCurrency == "" {
		c.ForeignCurrency = "USD"
	}
	if c.DefaultFxRate == 0 {
		c.DefaultFxRate = 31.65
	}
	if c.QuoteTimeoutSeconds == 0 {
		c.QuoteTimeoutSeconds = 30
	}
}

// Validate checks the config invariants.
func (c *Config) Validate() error {
	if !currencyCodeRegex.MatchString(c.ReportingCurrency) {
		return fmt.Errorf("reporting currency must be a 3-letter code, got %q", c.ReportingCurrency)
	}
	if !currencyCodeRegex.MatchString(c.ForeignCurrency) {
		return fmt.Errorf("foreign currency must be a 3-letter code, got %q", c.ForeignCurrency)
	}
	if c.ReportingCurrency == c.ForeignCurrency {
		return errors.New("reporting and foreign currency must differ")
	}
	if c.DefaultFxRate <= 0 {
		return fmt.Errorf("default fx rate must be positive, got %v", c.DefaultFxRate)
	}
	if c.PositionEpsilon < 0 {
		return fmt.Errorf("position epsilon cannot be negative, got %v", c.PositionEpsilon)
	}
	return nil
}
