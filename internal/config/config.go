package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kashmir-carpentry/kcbooks/internal/currency"
	"github.com/kashmir-carpentry/kcbooks/internal/model"
)

// FileName is the config file created by `kcbooks init`.
const FileName = "kcbooks.yaml"

// Config represents the top-level kcbooks.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Currency CurrencyConfig `yaml:"currency"`
	Invoice  InvoiceConfig  `yaml:"invoice"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// BusinessConfig identifies the business entity.
type BusinessConfig struct {
	Name string `yaml:"name"`
	TRN  string `yaml:"trn,omitempty"` // VAT tax registration number
}

// CurrencyConfig controls how amounts are displayed.
type CurrencyConfig struct {
	Code string `yaml:"code"`
}

// DeductionConfig is the default for a retention or discount.
type DeductionConfig struct {
	Enabled bool    `yaml:"enabled"`
	Kind    string  `yaml:"kind"` // "percentage" or "amount"
	Value   float64 `yaml:"value"`
}

// InvoiceConfig holds the financial control defaults applied to new invoices.
type InvoiceConfig struct {
	VATOrder  string          `yaml:"vat_order"` // "before" or "after"
	Retention DeductionConfig `yaml:"retention"`
	Discount  DeductionConfig `yaml:"discount"`
}

// LoggingConfig controls diagnostic output.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Controls returns the invoice defaults as financial controls. Advance payment
// and custom deduction are per-invoice and always start disabled.
func (c InvoiceConfig) Controls() model.FinancialControls {
	return model.FinancialControls{
		Retention: model.Deduction{
			Enabled: c.Retention.Enabled,
			Kind:    model.DeductionKind(c.Retention.Kind),
			Value:   c.Retention.Value,
		},
		Discount: model.Deduction{
			Enabled: c.Discount.Enabled,
			Kind:    model.DeductionKind(c.Discount.Kind),
			Value:   c.Discount.Value,
		},
		VATOrder: model.VATOrder(c.VATOrder),
	}
}

// Load reads a kcbooks.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default("")
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault reads path, returning Default when the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(""), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new workbook.
func Default(businessName string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name: businessName,
		},
		Currency: CurrencyConfig{
			Code: currency.DefaultCode,
		},
		Invoice: InvoiceConfig{
			VATOrder: string(model.VATAfter),
			Retention: DeductionConfig{
				Kind:  string(model.DeductionPercentage),
				Value: 10,
			},
			Discount: DeductionConfig{
				Kind: string(model.DeductionPercentage),
			},
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}
