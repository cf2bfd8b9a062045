// Package config loads generator configuration from YAML.
//
// Raw YAML is validated against an embedded CUE schema before decoding,
// so type and range errors surface with schema positions instead of
// half-decoded structs. Absent fields take the canonical defaults, which
// reproduce the reference dataset (seed 42, 500 customers, 120 products,
// 2500 orders).
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/roach88/shopgen/internal/dataset"
)

// Config holds everything a generation run depends on. Two runs with
// equal Config values produce byte-identical output.
type Config struct {
	Seed      uint64
	Customers int
	Products  int
	Orders    int
	OutDir    string

	// Transactional window: order and payment dates land in
	// [OrdersFrom, OrdersTo]. Signup window is wider:
	// [SignupFrom, OrdersTo].
	OrdersFrom time.Time
	OrdersTo   time.Time
	SignupFrom time.Time
}

// rawConfig mirrors the YAML document. Pointer fields distinguish
// "absent" from zero values so an explicit seed: 0 is honored.
type rawConfig struct {
	Seed       *uint64 `yaml:"seed"`
	Customers  *int    `yaml:"customers"`
	Products   *int    `yaml:"products"`
	Orders     *int    `yaml:"orders"`
	OutDir     *string `yaml:"out_dir"`
	OrdersFrom *string `yaml:"orders_from"`
	OrdersTo   *string `yaml:"orders_to"`
	SignupFrom *string `yaml:"signup_from"`
}

// Default returns the canonical configuration.
func Default() Config {
	return Config{
		Seed:       42,
		Customers:  500,
		Products:   120,
		Orders:     2500,
		OutDir:     "data",
		OrdersFrom: mustDate("2023-01-01"),
		OrdersTo:   mustDate("2025-12-01"),
		SignupFrom: mustDate("2022-01-01"),
	}
}

// Load reads and parses a YAML config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse validates raw YAML against the schema, decodes it, and merges it
// over the defaults.
func Parse(data []byte) (Config, error) {
	if err := validateSchema(data); err != nil {
		return Config{}, err
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg := Default()
	if raw.Seed != nil {
		cfg.Seed = *raw.Seed
	}
	if raw.Customers != nil {
		cfg.Customers = *raw.Customers
	}
	if raw.Products != nil {
		cfg.Products = *raw.Products
	}
	if raw.Orders != nil {
		cfg.Orders = *raw.Orders
	}
	if raw.OutDir != nil {
		cfg.OutDir = *raw.OutDir
	}

	var err error
	if cfg.OrdersFrom, err = mergeDate(raw.OrdersFrom, cfg.OrdersFrom); err != nil {
		return Config{}, fmt.Errorf("orders_from: %w", err)
	}
	if cfg.OrdersTo, err = mergeDate(raw.OrdersTo, cfg.OrdersTo); err != nil {
		return Config{}, fmt.Errorf("orders_to: %w", err)
	}
	if cfg.SignupFrom, err = mergeDate(raw.SignupFrom, cfg.SignupFrom); err != nil {
		return Config{}, fmt.Errorf("signup_from: %w", err)
	}

	if err := cfg.checkWindows(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// checkWindows enforces the window ordering the generator assumes:
// signup_from <= orders_from < orders_to.
func (c Config) checkWindows() error {
	if !c.OrdersFrom.Before(c.OrdersTo) {
		return fmt.Errorf("orders_from %s must precede orders_to %s",
			c.OrdersFrom.Format(dataset.DateFormat), c.OrdersTo.Format(dataset.DateFormat))
	}
	if c.SignupFrom.After(c.OrdersFrom) {
		return fmt.Errorf("signup_from %s must not be after orders_from %s",
			c.SignupFrom.Format(dataset.DateFormat), c.OrdersFrom.Format(dataset.DateFormat))
	}
	return nil
}

func mergeDate(raw *string, def time.Time) (time.Time, error) {
	if raw == nil {
		return def, nil
	}
	d, err := time.ParseInLocation(dataset.DateFormat, *raw, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", *raw, err)
	}
	return d, nil
}

func mustDate(s string) time.Time {
	d, err := time.ParseInLocation(dataset.DateFormat, s, time.UTC)
	if err != nil {
		panic(err)
	}
	return d
}
