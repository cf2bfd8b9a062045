package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 500, cfg.Customers)
	assert.Equal(t, 120, cfg.Products)
	assert.Equal(t, 2500, cfg.Orders)
	assert.Equal(t, "data", cfg.OutDir)
	assert.Equal(t, "2023-01-01", cfg.OrdersFrom.Format("2006-01-02"))
	assert.Equal(t, "2025-12-01", cfg.OrdersTo.Format("2006-01-02"))
	assert.Equal(t, "2022-01-01", cfg.SignupFrom.Format("2006-01-02"))
	require.NoError(t, cfg.checkWindows())
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_PartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("customers: 50\nseed: 7\n"))
	require.NoError(t, err)

	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, 50, cfg.Customers)
	// Untouched fields keep defaults.
	assert.Equal(t, 120, cfg.Products)
	assert.Equal(t, 2500, cfg.Orders)
}

func TestParse_ExplicitZeroSeed(t *testing.T) {
	cfg, err := Parse([]byte("seed: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, uint64(0), cfg.Seed)
}

func TestParse_Dates(t *testing.T) {
	cfg, err := Parse([]byte(`
orders_from: 2024-06-01
orders_to: 2024-12-31
signup_from: 2024-01-01
`))
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), cfg.OrdersFrom)
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), cfg.OrdersTo)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), cfg.SignupFrom)
}

func TestParse_SchemaRejections(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"negative customers", "customers: -5\n"},
		{"zero orders", "orders: 0\n"},
		{"too few products", "products: 3\n"},
		{"non-integer seed", "seed: banana\n"},
		{"bad date format", "orders_from: 01/02/2023\n"},
		{"empty out_dir", "out_dir: \"\"\n"},
		{"unknown field", "costumers: 10\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			require.Error(t, err)
		})
	}
}

func TestParse_WindowOrdering(t *testing.T) {
	_, err := Parse([]byte("orders_from: 2025-01-01\norders_to: 2024-01-01\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "orders_from")

	_, err = Parse([]byte("signup_from: 2024-01-01\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "signup_from")
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shopgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("orders: 10\nout_dir: out\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Orders)
	assert.Equal(t, "out", cfg.OutDir)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
