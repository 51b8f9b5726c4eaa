package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.\-]+`)

// SanitizeName replaces characters unsafe for filesystem paths
// Allows alphanumeric, dots, and hyphens. Replaces everything else with underscore.
func SanitizeName(name string) string {
	return unsafeChars.ReplaceAllString(name, "_")
}

// ReportFilePath generates a consistent file path for a batch report
// Format: {baseDir}/{label}_{YYYYMMDD}_{HHMMSS}.{ext}
func ReportFilePath(baseDir, label string, startedAt time.Time, ext string) string {
	timestamp := startedAt.Format("20060102_150405")
	name := fmt.Sprintf("%s_%s.%s", SanitizeName(label), timestamp, ext)
	return filepath.Join(baseDir, name)
}

// WriteReport writes data to a timestamped file under baseDir and returns its path
func WriteReport(baseDir, label string, startedAt time.Time, ext string, data []byte) (string, error) {
	if err := EnsureDir(baseDir); err != nil {
		return "", fmt.Errorf("creating report directory: %w", err)
	}

	path := ReportFilePath(baseDir, label, startedAt, ext)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	return path, nil
}

// EnsureDir creates a directory and all parent directories if they don't exist
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
