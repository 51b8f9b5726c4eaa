package registry

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

// ReadLists parses a domain list file of the form {"safe": [...], "phishing": [...]}
func ReadLists(path string) (Lists, error) {
	var lists Lists

	data, err := os.ReadFile(path)
	if err != nil {
		return lists, fmt.Errorf("reading domain list: %w", err)
	}

	if err := json.Unmarshal(data, &lists); err != nil {
		return lists, fmt.Errorf("parsing domain list %s: %w", path, err)
	}

	return lists, nil
}

// Load builds a registry from the built-in lists plus the file at path.
// Failing to read or parse the file is not fatal: a warning is logged and
// the built-in lists are used alone. An empty path skips the file.
func Load(path string, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}

	if path == "" {
		return New()
	}

	lists, err := ReadLists(path)
	if err != nil {
		logger.Warn("could not load domain list, using built-in defaults", "path", path, "error", err)
		return New()
	}

	reg := New(lists)
	safe, phishing := reg.Counts()
	logger.Debug("domain list loaded", "path", path, "safe", safe, "phishing", phishing)

	return reg
}
