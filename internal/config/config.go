// =============================================================================
// Inventory Sync - Configuration Module
// =============================================================================
//
// This module loads and validates the application configuration.
//
// CONFIGURATION SOURCES (later wins):
//   1. Built-in defaults
//   2. config.yaml (path from the --config flag)
//   3. A .env file in the working directory, if present
//   4. Process environment variables (MONGO_URI, MONGO_DB_NAME)
//
// The Mongo URI is never stored in config.yaml; it carries credentials and
// comes from the environment or the .env file only.
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the full application configuration.
type Config struct {
	// DataDir is the directory holding the spreadsheet exports and the JSON
	// output files.
	// Default: "./data"
	DataDir string `yaml:"data_dir"`

	// Files names the five spreadsheet exports inside DataDir.
	Files Files `yaml:"files"`

	// Mongo configures the document store.
	Mongo Mongo `yaml:"mongo"`

	// Scraper configures the carrier tracking-site scraper.
	Scraper Scraper `yaml:"scraper"`
}

// Files names the spreadsheet exports and JSON files inside DataDir.
type Files struct {
	Products       string `yaml:"products"`
	PurchaseOrders string `yaml:"purchase_orders"`
	Shipping       string `yaml:"shipping"`
	Stats          string `yaml:"stats"`
	IncomingOrders string `yaml:"incoming_orders"`

	// ShippingJSON is the exported shipment list the scraper updates in
	// place.
	ShippingJSON string `yaml:"shipping_json"`
}

// Mongo configures the document-store connection.
type Mongo struct {
	// URI is the connection string. Environment only (MONGO_URI); never set
	// this in config.yaml.
	URI string `yaml:"-"`

	// Database is the database name.
	// Default: "tracking_db", overridable via MONGO_DB_NAME.
	Database string `yaml:"database"`

	// InsecureTLS skips certificate verification. The hosted cluster's
	// certificate chain is not always resolvable from the warehouse network.
	InsecureTLS bool `yaml:"insecure_tls"`
}

// Scraper configures the carrier tracking-site scraper.
type Scraper struct {
	// BaseURL is the carrier site root.
	// Default: "https://www.junanex.com"
	BaseURL string `yaml:"base_url"`

	// Delay is the pause between requests, to stay polite to the carrier.
	// Default: 1s
	Delay time.Duration `yaml:"delay"`

	// Timeout is the per-request timeout.
	// Default: 10s
	Timeout time.Duration `yaml:"timeout"`
}

// UnmarshalYAML parses the scraper section, accepting durations in their
// human form ("250ms", "1s"). The yaml decoder would otherwise reject those
// strings for time.Duration fields.
func (s *Scraper) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		BaseURL string `yaml:"base_url"`
		Delay   string `yaml:"delay"`
		Timeout string `yaml:"timeout"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	s.BaseURL = raw.BaseURL
	if raw.Delay != "" {
		d, err := time.ParseDuration(raw.Delay)
		if err != nil {
			return fmt.Errorf("invalid scraper delay: %w", err)
		}
		s.Delay = d
	}
	if raw.Timeout != "" {
		d, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return fmt.Errorf("invalid scraper timeout: %w", err)
		}
		s.Timeout = d
	}
	return nil
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration file and applies the environment overlay.
// A missing config file is not an error: defaults apply.
func Load(configPath string) (*Config, error) {
	var config Config

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case os.IsNotExist(err):
		// Defaults only.
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	applyDefaults(&config)

	// .env overlay for local development; absence is fine.
	_ = godotenv.Load()

	if uri := os.Getenv("MONGO_URI"); uri != "" {
		config.Mongo.URI = uri
	}
	if db := os.Getenv("MONGO_DB_NAME"); db != "" {
		config.Mongo.Database = db
	}

	return &config, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(config *Config) {
	if config.DataDir == "" {
		config.DataDir = "./data"
	}
	if config.Files.Products == "" {
		config.Files.Products = "products_data.xlsx"
	}
	if config.Files.PurchaseOrders == "" {
		config.Files.PurchaseOrders = "purchase_orders_data.xlsx"
	}
	if config.Files.Shipping == "" {
		config.Files.Shipping = "shipping_data.xlsx"
	}
	if config.Files.Stats == "" {
		config.Files.Stats = "inventory_stats_data.xlsx"
	}
	if config.Files.IncomingOrders == "" {
		config.Files.IncomingOrders = "incoming_orders_data.xlsx"
	}
	if config.Files.ShippingJSON == "" {
		config.Files.ShippingJSON = "shipping.json"
	}
	if config.Mongo.Database == "" {
		config.Mongo.Database = "tracking_db"
	}
	if config.Scraper.BaseURL == "" {
		config.Scraper.BaseURL = "https://www.junanex.com"
	}
	if config.Scraper.Delay == 0 {
		config.Scraper.Delay = time.Second
	}
	if config.Scraper.Timeout == 0 {
		config.Scraper.Timeout = 10 * time.Second
	}
}

// =============================================================================
// PATH HELPERS
// =============================================================================

// DataPath joins a file name onto the data directory.
func (c *Config) DataPath(name string) string {
	return filepath.Join(c.DataDir, name)
}

// RequireMongo verifies that a Mongo URI is configured. Commands that touch
// the document store call this up front so the failure is immediate and
// explicit.
func (c *Config) RequireMongo() error {
	if c.Mongo.URI == "" {
		return fmt.Errorf("MONGO_URI is not set (export it or put it in .env)")
	}
	return nil
}
