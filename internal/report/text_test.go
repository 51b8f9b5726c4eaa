package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hakim/fahis/internal/models"
)

func sampleResult() models.AnalysisResult {
	res := models.NewAnalysisResult("http://googIe.com/login")
	res.IsSafe = false
	res.RiskLevel = models.RiskMedium
	res.Score = 68
	res.Warnings = []string{"URL does not use HTTPS (insecure)", "Domain contains look-alike characters (homoglyphs)"}
	res.Recommendations = []string{"Be cautious with this link - medium risk"}
	res.Features = models.URLFeatures{URLLength: 23, Domain: "googIe.com", Suffix: "com", SuspiciousKeywordsCount: 1}
	return res
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false).PrintResult(sampleResult(), false)
	out := buf.String()

	for _, want := range []string{
		"Results:",
		"Unsafe",
		"medium",
		"68/100",
		"Warnings:",
		"• URL does not use HTTPS (insecure)",
		"Recommendations:",
		"• Be cautious with this link - medium risk",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Extracted features:") {
		t.Error("features should only be printed in verbose mode")
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("color disabled but output contains escape codes")
	}
}

func TestPrintResultVerbose(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false).PrintResult(sampleResult(), true)
	out := buf.String()

	for _, want := range []string{"Extracted features:", "• domain: googIe.com", "• suspicious_keywords_count: 1", "• url_length: 23"} {
		if !strings.Contains(out, want) {
			t.Errorf("verbose output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintCompact(t *testing.T) {
	var buf bytes.Buffer
	res := models.NewAnalysisResult("https://www.google.com")
	res.Score = 5

	NewPrinter(&buf, false).PrintCompact(res)
	out := buf.String()

	if strings.Count(out, "\n") != 1 {
		t.Errorf("compact output should be one line, got %q", out)
	}
	for _, want := range []string{"Safe", "low", "5/100"} {
		if !strings.Contains(out, want) {
			t.Errorf("compact output missing %q: %q", want, out)
		}
	}
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false).PrintSummary(models.BatchSummary{Total: 3, Safe: 1, Unsafe: 2, Low: 1, Medium: 1, High: 1})
	out := buf.String()

	for _, want := range []string{"Total: 3", "Safe: 1", "Unsafe: 2", "high: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestColorEnabled(t *testing.T) {
	if !ColorEnabled("always", nil) {
		t.Error("always should enable color")
	}
	if ColorEnabled("never", nil) {
		t.Error("never should disable color")
	}
	if ColorEnabled("auto", nil) {
		t.Error("auto without a terminal should disable color")
	}
}

func TestFeatureRowsCoverAllFields(t *testing.T) {
	rows := FeatureRows(models.URLFeatures{})
	seen := map[string]bool{}
	for _, r := range rows {
		if seen[r[0]] {
			t.Errorf("duplicate row %q", r[0])
		}
		seen[r[0]] = true
	}
	if len(rows) != 15 {
		t.Errorf("got %d rows, want 15", len(rows))
	}
}
