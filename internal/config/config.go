package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	DomainsFile string       `mapstructure:"domains_file" yaml:"domains_file"`
	Workers     int          `mapstructure:"workers" yaml:"workers"`
	LogLevel    string       `mapstructure:"log_level" yaml:"log_level"`
	ReportDir   string       `mapstructure:"report_dir" yaml:"report_dir"`
	Output      OutputConfig `mapstructure:"output" yaml:"output"`
}

// OutputConfig controls how results are rendered
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"`
	Color  string `mapstructure:"color" yaml:"color"`
}

var (
	validFormats   = map[string]bool{"text": true, "json": true}
	validColors    = map[string]bool{"auto": true, "always": true, "never": true}
	validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
)

// Load reads and parses configuration from a YAML file.
// If path is empty, searches for fahis.yaml in the current directory, ./configs
// and ~/.config/fahis/, falling back to the defaults when none is found.
// Values can be overridden with FAHIS_* environment variables.
func Load(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		// Use explicit path
		v.SetConfigFile(path)
	} else {
		// Search for config in default locations
		v.SetConfigName("fahis")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")

		homeDir, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(homeDir, ".config", "fahis"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("fahis")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, DefaultConfig())
	return v
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("domains_file", d.DomainsFile)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("report_dir", d.ReportDir)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.color", d.Output.Color)
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	if c.Workers < 0 {
		errs = append(errs, errors.New("workers cannot be negative"))
	}

	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		errs = append(errs, fmt.Errorf("log_level %q must be one of debug, info, warn, error", c.LogLevel))
	}

	if !validFormats[c.Output.Format] {
		errs = append(errs, fmt.Errorf("output.format %q must be text or json", c.Output.Format))
	}

	if !validColors[c.Output.Color] {
		errs = append(errs, fmt.Errorf("output.color %q must be auto, always or never", c.Output.Color))
	}

	if c.ReportDir == "" {
		errs = append(errs, errors.New("report_dir cannot be empty"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}
