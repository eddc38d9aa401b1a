// Package config loads the dashboard configuration.
//
// Values come from a YAML file, then from the environment (a .env file in the
// working directory is loaded first), so that the environment always wins.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file used when none is given.
const DefaultFile = "dash.yaml"

// Config is the dashboard configuration.
type Config struct {
	Currency  string      `yaml:"currency"`
	Ledger    string      `yaml:"ledger"`    // trades JSONL
	Positions string      `yaml:"positions"` // positions JSONL
	History   string      `yaml:"history"`   // SQLite daily results
	Names     string      `yaml:"names"`     // symbol to display name JSON, optional
	Log       LogConfig   `yaml:"log"`
	Quote     QuoteConfig `yaml:"quote"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json or console
}

// QuoteConfig configures the live quote source. Quotes are disabled without a URL.
type QuoteConfig struct {
	URL     string        `yaml:"url"`  // "{symbol}" is replaced by the symbol
	Path    string        `yaml:"path"` // JSONPath of the last price
	TTL     time.Duration `yaml:"ttl"`
	Retries int           `yaml:"retries"`
}

// Default returns the configuration used when there is no file.
func Default() *Config {
	return &Config{
		Currency:  "USD",
		Ledger:    "trades.jsonl",
		Positions: "positions.jsonl",
		History:   "history.db",
		Log:       LogConfig{Level: "info", Format: "console"},
		Quote: QuoteConfig{
			Path:    "$.last",
			TTL:     30 * time.Second,
			Retries: 2,
		},
	}
}

// ErrNoFile is returned, along with a usable default configuration, when the
// configuration file does not exist.
var ErrNoFile = errors.New("no configuration file")

// Load reads the configuration file at path and applies the environment overrides.
//
// When the file does not exist, Load returns the defaults, overridden by the
// environment, and an error wrapping ErrNoFile that callers may only warn about.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()
	var missing error
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		missing = fmt.Errorf("%w: %s", ErrNoFile, path)
	case err != nil:
		return nil, fmt.Errorf("read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, missing
}

// applyEnv overrides values with the DASH_* environment variables.
func (c *Config) applyEnv() error {
	strs := map[string]*string{
		"DASH_CURRENCY":   &c.Currency,
		"DASH_LEDGER":     &c.Ledger,
		"DASH_POSITIONS":  &c.Positions,
		"DASH_HISTORY":    &c.History,
		"DASH_NAMES":      &c.Names,
		"DASH_LOG_LEVEL":  &c.Log.Level,
		"DASH_QUOTE_URL":  &c.Quote.URL,
		"DASH_QUOTE_PATH": &c.Quote.Path,
	}
	for key, dst := range strs {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}
	if v, ok := os.LookupEnv("DASH_QUOTE_TTL"); ok {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("DASH_QUOTE_TTL: %w", err)
		}
		c.Quote.TTL = ttl
	}
	c.Currency = strings.ToUpper(strings.TrimSpace(c.Currency))
	return nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	var errs []error
	if money.GetCurrency(c.Currency) == nil {
		errs = append(errs, fmt.Errorf("currency %q is not an ISO 4217 code", c.Currency))
	}
	if c.Ledger == "" {
		errs = append(errs, errors.New("ledger is required"))
	}
	if c.Positions == "" {
		errs = append(errs, errors.New("positions is required"))
	}
	if c.History == "" {
		errs = append(errs, errors.New("history is required"))
	}
	if c.Quote.URL != "" && !strings.Contains(c.Quote.URL, "{symbol}") {
		errs = append(errs, fmt.Errorf("quote.url %q has no {symbol} placeholder", c.Quote.URL))
	}
	if c.Quote.TTL < 0 {
		errs = append(errs, fmt.Errorf("quote.ttl must not be negative, got %v", c.Quote.TTL))
	}
	if c.Quote.Retries < 0 {
		errs = append(errs, fmt.Errorf("quote.retries must not be negative, got %d", c.Quote.Retries))
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("log.format %q, want json or console", c.Log.Format))
	}
	return errors.Join(errs...)
}

// QuotesEnabled reports whether a quote source is configured.
func (c *Config) QuotesEnabled() bool { return c.Quote.URL != "" }
