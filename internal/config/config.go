// Package config provides configuration management for the mod assigner.
//
// Configuration sources, highest priority first: command-line flags,
// environment variables (prefix MOD_ASSIGNER), the configuration file,
// built-in defaults. All values are validated at load time.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/loadoutkit/mod-assigner/internal/logging"
)

const (
	// DefaultTier is the capacity upgrade tier assumed when none is
	// configured. Tier 0 leaves every slot at its declared capacity.
	DefaultTier = 0

	// MaxTier is the highest supported capacity upgrade tier.
	MaxTier = 10

	// envPrefix namespaces the environment variables read by Load.
	envPrefix = "MOD_ASSIGNER"
)

// Config holds the engine settings threaded into every assignment.
type Config struct {
	// Tier is the capacity upgrade tier passed to the capacity model.
	Tier int `yaml:"tier" json:"tier"`

	// LockEnergyType pins each slot's derived energy type to its declared
	// type so the search never changes slot affinities.
	LockEnergyType bool `yaml:"lockEnergyType" json:"lockEnergyType"`

	// ManifestPath locates the JSON definitions manifest.
	ManifestPath string `yaml:"manifestPath" json:"manifestPath"`

	// Logging configures the structured logger.
	Logging logging.Config `yaml:"logging" json:"logging"`
}

// Validate checks for invalid configuration values.
func (c *Config) Validate() error {
	if c.Tier < 0 || c.Tier > MaxTier {
		return fmt.Errorf("tier must be between 0 and %d, got %d", MaxTier, c.Tier)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("invalid logging config: %w", err)
	}
	return nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Tier: DefaultTier,
		Logging: logging.Config{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load builds the effective configuration from the optional file at path,
// the environment, and the given flag set. An empty path skips file loading
// entirely; a missing file at an explicit path is an error.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault("tier", DefaultTier)
	v.SetDefault("lockEnergyType", false)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if flags != nil {
		for key, name := range map[string]string{
			"tier":           "tier",
			"lockEnergyType": "lock-energy-type",
			"manifestPath":   "manifest-path",
		} {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	cfg := &Config{
		Tier:           v.GetInt("tier"),
		LockEnergyType: v.GetBool("lockEnergyType"),
		ManifestPath:   v.GetString("manifestPath"),
		Logging: logging.Config{
			Level:  v.GetString("logging.level"),
			Format: v.GetString("logging.format"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
