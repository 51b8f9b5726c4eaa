package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSanitizeName(t *testing.T) {
	tests := map[string]string{
		"urls.txt":          "urls.txt",
		"my urls/list?.txt": "my_urls_list_.txt",
		"a--b":              "a--b",
	}
	for in, want := range tests {
		if got := SanitizeName(in); got != want {
			t.Errorf("SanitizeName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWriteReport(t *testing.T) {
	base := filepath.Join(t.TempDir(), "reports")
	started := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	path, err := WriteReport(base, "batch urls", started, "md", []byte("# Report\n"))
	if err != nil {
		t.Fatalf("WriteReport() error: %v", err)
	}

	want := filepath.Join(base, "batch_urls_20260304_050607.md")
	if path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "# Report\n" {
		t.Errorf("content = %q", data)
	}
}
