package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hakim/fahis/internal/registry"
	"gopkg.in/yaml.v3"
)

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		DomainsFile: filepath.Join("data", "domains.json"),
		Workers:     0,
		LogLevel:    "info",
		ReportDir:   "reports",
		Output: OutputConfig{
			Format: "text",
			Color:  "auto",
		},
	}
}

// WriteDefault writes a default configuration to the specified path
func WriteDefault(path string) error {
	cfg := DefaultConfig()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// WriteSampleDomains writes an example domain list file with empty safe and
// phishing arrays, creating parent directories as needed.
func WriteSampleDomains(path string) error {
	sample := registry.Lists{
		Safe:     []string{},
		Phishing: []string{},
	}

	data, err := json.MarshalIndent(sample, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal sample domain list: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write domain list: %w", err)
	}

	return nil
}
