package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultTier, cfg.Tier)
	assert.False(t, cfg.LockEnergyType)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "Test case 1: Defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:    "Test case 2: Negative tier",
			mutate:  func(c *Config) { c.Tier = -1 },
			wantErr: true,
		},
		{
			name:    "Test case 3: Tier above maximum",
			mutate:  func(c *Config) { c.Tier = MaxTier + 1 },
			wantErr: true,
		},
		{
			name:    "Test case 4: Unsupported log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name:   "Test case 5: Maximum tier is valid",
			mutate: func(c *Config) { c.Tier = MaxTier },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
tier: 4
lockEnergyType: true
manifestPath: /data/manifest.json
logging:
  level: debug
  format: console
`), 0o600))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Tier)
	assert.True(t, cfg.LockEnergyType)
	assert.Equal(t, "/data/manifest.json", cfg.ManifestPath)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultTier, cfg.Tier)
	assert.False(t, cfg.LockEnergyType)
}

func TestLoadFlagOverrides(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("tier", DefaultTier, "")
	flags.Bool("lock-energy-type", false, "")
	flags.String("manifest-path", "", "")
	require.NoError(t, flags.Parse([]string{"--tier=5", "--lock-energy-type"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Tier)
	assert.True(t, cfg.LockEnergyType)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	require.Error(t, err)
}

func TestLoadInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tier: 42\n"), 0o600))

	_, err := Load(path, nil)
	require.Error(t, err)
}
