// Package config loads process configuration for the lottery tools.
//
// Configuration is loaded explicitly and passed into constructors, so the
// core stays testable without environment mutation.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix namespaces the environment variables, e.g. LOTTERY_TICKET_NUMBER.
const envPrefix = "LOTTERY_"

// configPathVar names an optional YAML config file.
const configPathVar = "LOTTERY_CONFIG"

// Config contains process configuration for both commands.
type Config struct {
	// TicketNumber is the fixed number checked against each draw.
	TicketNumber string `koanf:"ticket_number"`

	// WebhookURL is the Discord webhook for notifications.
	WebhookURL string `koanf:"webhook_url"`

	// Stake overrides the per-draw ticket cost; 0 uses the standard price.
	Stake float64 `koanf:"stake"`

	// OutputDir receives generated report files.
	OutputDir string `koanf:"output_dir"`

	// PostgresDSN enables the optional archival stores when non-empty.
	PostgresDSN string `koanf:"postgres_dsn"`

	// RequestDelayMS spaces out requests to the results site.
	RequestDelayMS int `koanf:"request_delay_ms"`

	// MaxConsecutiveNoData stops a bounded range scan early.
	MaxConsecutiveNoData int `koanf:"max_consecutive_no_data"`

	// StartDate and EndDate bound historical analysis (YYYY-MM-DD; both
	// optional).
	StartDate string `koanf:"start_date"`
	EndDate   string `koanf:"end_date"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		OutputDir:      "reports",
		RequestDelayMS: 500,
	}
}

// Load builds a Config by layering defaults, an optional YAML file, and
// environment variables. Precedence, low to high:
//  1. Default()
//  2. YAML file named by LOTTERY_CONFIG
//  3. environment (LOTTERY_ prefix)
func Load() (*Config, error) {
	k := koanf.New(".")

	if path := os.Getenv(configPathVar); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	// LOTTERY_TICKET_NUMBER -> ticket_number, keeping underscores to match
	// the koanf tags.
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load env config: %w", err)
	}

	cfg := *Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// RequestDelay returns the inter-request delay as a duration. Negative
// values disable pacing.
func (c *Config) RequestDelay() time.Duration {
	return time.Duration(c.RequestDelayMS) * time.Millisecond
}

// ValidateCheck verifies the fields the weekly check needs.
func (c *Config) ValidateCheck() error {
	if c.TicketNumber == "" {
		return errors.New("ticket_number is required")
	}
	if c.WebhookURL == "" {
		return errors.New("webhook_url is required")
	}
	return nil
}

// ValidateAnalyze verifies the fields historical analysis needs.
func (c *Config) ValidateAnalyze() error {
	if c.TicketNumber == "" {
		return errors.New("ticket_number is required")
	}
	if c.OutputDir == "" {
		return errors.New("output_dir is required")
	}
	return nil
}
