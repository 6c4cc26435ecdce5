package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	t.Setenv("MONGO_DB_NAME", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, "products_data.xlsx", cfg.Files.Products)
	assert.Equal(t, "purchase_orders_data.xlsx", cfg.Files.PurchaseOrders)
	assert.Equal(t, "shipping_data.xlsx", cfg.Files.Shipping)
	assert.Equal(t, "inventory_stats_data.xlsx", cfg.Files.Stats)
	assert.Equal(t, "incoming_orders_data.xlsx", cfg.Files.IncomingOrders)
	assert.Equal(t, "shipping.json", cfg.Files.ShippingJSON)
	assert.Equal(t, "tracking_db", cfg.Mongo.Database)
	assert.Equal(t, "https://www.junanex.com", cfg.Scraper.BaseURL)
	assert.Equal(t, time.Second, cfg.Scraper.Delay)
	assert.Equal(t, 10*time.Second, cfg.Scraper.Timeout)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	t.Setenv("MONGO_DB_NAME", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
data_dir: /srv/exports
files:
  products: p.xlsx
mongo:
  database: staging_db
scraper:
  delay: 250ms
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/exports", cfg.DataDir)
	assert.Equal(t, "p.xlsx", cfg.Files.Products)
	// Unset entries still get defaults.
	assert.Equal(t, "shipping_data.xlsx", cfg.Files.Shipping)
	assert.Equal(t, "staging_db", cfg.Mongo.Database)
	assert.Equal(t, 250*time.Millisecond, cfg.Scraper.Delay)
}

func TestLoad_EnvironmentOverlay(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://env-host:27017")
	t.Setenv("MONGO_DB_NAME", "env_db")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "mongodb://env-host:27017", cfg.Mongo.URI)
	assert.Equal(t, "env_db", cfg.Mongo.Database)
}

func TestLoad_MongoURINeverFromYAML(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	t.Setenv("MONGO_DB_NAME", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mongo:\n  database: d\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.Mongo.URI)
	assert.Error(t, cfg.RequireMongo())
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDataPath(t *testing.T) {
	cfg := &Config{DataDir: "/srv/exports"}
	assert.Equal(t, filepath.Join("/srv/exports", "shipping.json"), cfg.DataPath("shipping.json"))
}
