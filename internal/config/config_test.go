package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hakim/fahis/internal/registry"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "fahis.yaml", `
domains_file: lists/custom.json
workers: 4
log_level: debug
report_dir: out
output:
  format: json
  color: never
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.DomainsFile != "lists/custom.json" {
		t.Errorf("DomainsFile = %q", cfg.DomainsFile)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
	if cfg.LogLevel != "debug" || cfg.ReportDir != "out" {
		t.Errorf("LogLevel = %q, ReportDir = %q", cfg.LogLevel, cfg.ReportDir)
	}
	if cfg.Output.Format != "json" || cfg.Output.Color != "never" {
		t.Errorf("Output = %+v", cfg.Output)
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "fahis.yaml", "workers: 2\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	def := DefaultConfig()
	if cfg.Workers != 2 {
		t.Errorf("Workers = %d, want 2", cfg.Workers)
	}
	if cfg.Output != def.Output || cfg.LogLevel != def.LogLevel || cfg.DomainsFile != def.DomainsFile {
		t.Errorf("missing keys should fall back to defaults, got %+v", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() of missing file should fail")
	}
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "fahis.yaml", `
workers: -1
log_level: loud
output:
  format: xml
  color: rainbow
`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() should reject invalid config")
	}
	for _, want := range []string{"workers", "log_level", "output.format", "output.color"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestLoadSearchFallsBackToDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("FAHIS_WORKERS", "6")
	t.Setenv("FAHIS_OUTPUT_FORMAT", "json")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg.Workers != 6 {
		t.Errorf("Workers = %d, want 6", cfg.Workers)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %q, want json", cfg.Output.Format)
	}
	if cfg.Output.Color != "auto" {
		t.Errorf("Output.Color = %q, want default auto", cfg.Output.Color)
	}
}

func TestLoadSearchFindsConfigsDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())

	if err := os.MkdirAll(filepath.Join(dir, "configs"), 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "configs"), "fahis.yaml", "log_level: debug\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestWriteDefaultLoadsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fahis.yaml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault() error: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("loaded %+v, want %+v", cfg, DefaultConfig())
	}
}

func TestWriteSampleDomains(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "domains.json")
	if err := WriteSampleDomains(path); err != nil {
		t.Fatalf("WriteSampleDomains() error: %v", err)
	}

	lists, err := registry.ReadLists(path)
	if err != nil {
		t.Fatalf("ReadLists() error: %v", err)
	}
	if len(lists.Safe) != 0 || len(lists.Phishing) != 0 {
		t.Errorf("sample lists should be empty, got %+v", lists)
	}
}
