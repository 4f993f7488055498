// Package config loads opticode settings from defaults, an optional YAML
// file, OPTICODE_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment variable names: OPTICODE_LOGGING_LEVEL=debug.
const EnvPrefix = "OPTICODE"

// Settings is the typed view of the loaded configuration.
type Settings struct {
	Logging   LoggingSettings   `mapstructure:"logging"`
	Output    OutputSettings    `mapstructure:"output"`
	Inventory InventorySettings `mapstructure:"inventory"`
	Metrics   MetricsSettings   `mapstructure:"metrics"`
}

type LoggingSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type OutputSettings struct {
	Format string `mapstructure:"format"`
}

type InventorySettings struct {
	Concurrency int `mapstructure:"concurrency"`
}

type MetricsSettings struct {
	// Textfile is a node-exporter textfile collector path; empty disables it.
	Textfile string `mapstructure:"textfile"`
}

// flagKeys maps command-line flag names to configuration keys. Flags that
// are not registered on a given FlagSet are skipped.
var flagKeys = map[string]string{
	"log-level":    "logging.level",
	"log-format":   "logging.format",
	"format":       "output.format",
	"concurrency":  "inventory.concurrency",
	"metrics-file": "metrics.textfile",
}

// Load reads configuration from file, environment and flags, in increasing
// order of precedence. A missing default config file is not an error; a
// missing explicit configPath is.
func Load(configPath string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("output.format", "json")
	v.SetDefault("inventory.concurrency", 8)
	v.SetDefault("metrics.textfile", "")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("opticode")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/opticode")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding flag --%s: %w", name, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// Config file not found is fine -- use defaults
	}

	return v, nil
}

// Decode unmarshals v into Settings and validates it.
func Decode(v *viper.Viper) (*Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if s.Inventory.Concurrency < 1 {
		return nil, fmt.Errorf("inventory.concurrency must be at least 1, got %d", s.Inventory.Concurrency)
	}
	return &s, nil
}
