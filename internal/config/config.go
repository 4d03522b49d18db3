// Package config holds the iocap CLI configuration, loaded through
// viper from a config file, environment variables (IOCAP_ prefix) and
// flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/nevermoreT/io-capture/internal/logging"
)

// Config represents the complete iocap configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Demo    DemoConfig    `mapstructure:"demo"`
}

// LoggingConfig controls capture debug logging.
type LoggingConfig struct {
	// Dir is the directory the debug log is written to. Empty disables
	// logging entirely.
	Dir string `mapstructure:"dir"`
	// Level is the minimum level written to the log (debug/info/warn/error).
	Level string `mapstructure:"level"`
}

// DemoConfig controls the demo command's sample output.
type DemoConfig struct {
	// OutLines are written to stdout inside the demo's capture scope.
	OutLines []string `mapstructure:"out_lines"`
	// ErrLines are written to stderr inside the demo's capture scope.
	ErrLines []string `mapstructure:"err_lines"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Dir:   "",
			Level: logging.LevelInfo,
		},
		Demo: DemoConfig{
			OutLines: []string{"hello", "world"},
			ErrLines: []string{"hello world again"},
		},
	}
}

// SetDefaults registers defaults with viper so they are available even
// without a config file.
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("logging.dir", defaults.Logging.Dir)
	viper.SetDefault("logging.level", defaults.Logging.Level)

	viper.SetDefault("demo.out_lines", defaults.Demo.OutLines)
	viper.SetDefault("demo.err_lines", defaults.Demo.ErrLines)
}

// Load unmarshals the current viper state into a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	level := strings.ToUpper(c.Logging.Level)
	for _, valid := range logging.ValidLevels() {
		if level == valid {
			return nil
		}
	}
	return fmt.Errorf("logging.level %q is not one of %s",
		c.Logging.Level, strings.Join(logging.ValidLevels(), ", "))
}

// ConfigDir returns the path to the user's config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "iocap")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".iocap"
	}
	return filepath.Join(home, ".config", "iocap")
}

// ConfigFile returns the path to the config file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
