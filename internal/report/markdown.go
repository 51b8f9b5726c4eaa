package report

import (
	"fmt"
	"strings"

	"github.com/hakim/fahis/internal/models"
)

// RenderBatchMarkdown builds a markdown report for a batch of analysis results.
// source names where the URLs came from (usually the input file).
func RenderBatchMarkdown(report *models.BatchReport, source string) string {
	var b strings.Builder

	// Header
	b.WriteString("# URL Analysis Report\n\n")
	b.WriteString(fmt.Sprintf("**Source:** %s\n", source))
	b.WriteString(fmt.Sprintf("**Report ID:** %s\n", report.ID))
	b.WriteString(fmt.Sprintf("**Date:** %s\n", report.StartedAt.UTC().Format("2006-01-02 15:04:05")))
	b.WriteString(fmt.Sprintf("**Total URLs:** %d | **Safe:** %d | **Unsafe:** %d\n\n",
		report.Summary.Total, report.Summary.Safe, report.Summary.Unsafe))

	// Summary section
	b.WriteString("## Risk Levels\n\n")
	b.WriteString("| Level | Count |\n")
	b.WriteString("|-------|-------|\n")
	b.WriteString(fmt.Sprintf("| high | %d |\n", report.Summary.High))
	b.WriteString(fmt.Sprintf("| medium | %d |\n", report.Summary.Medium))
	b.WriteString(fmt.Sprintf("| low | %d |\n", report.Summary.Low))
	b.WriteString("\n")

	writeLevelSection(&b, "High Risk", filterByLevel(report.Results, models.RiskHigh))
	writeLevelSection(&b, "Medium Risk", filterByLevel(report.Results, models.RiskMedium))
	writeLevelSection(&b, "Low Risk", filterByLevel(report.Results, models.RiskLow))

	return b.String()
}

// writeLevelSection writes one table of results sharing a risk level
func writeLevelSection(b *strings.Builder, title string, results []models.AnalysisResult) {
	b.WriteString(fmt.Sprintf("## %s\n\n", title))
	if len(results) == 0 {
		b.WriteString("None found.\n\n")
		return
	}

	b.WriteString("| URL | Domain | Score | Warnings |\n")
	b.WriteString("|-----|--------|-------|----------|\n")
	for _, res := range results {
		domain := res.Features.Domain
		if domain == "" {
			domain = "-"
		}
		b.WriteString(fmt.Sprintf("| %s | %s | %d | %s |\n",
			escapeCell(res.URL), escapeCell(domain), res.Score, formatWarnings(res.Warnings)))
	}
	b.WriteString("\n")
}

// filterByLevel returns results with the given risk level, in input order
func filterByLevel(results []models.AnalysisResult, level models.RiskLevel) []models.AnalysisResult {
	var out []models.AnalysisResult
	for _, res := range results {
		if res.RiskLevel == level {
			out = append(out, res)
		}
	}
	return out
}

// formatWarnings joins warnings into a single table cell
func formatWarnings(warnings []string) string {
	if len(warnings) == 0 {
		return "-"
	}
	escaped := make([]string, len(warnings))
	for i, w := range warnings {
		escaped[i] = escapeCell(w)
	}
	return strings.Join(escaped, "<br>")
}

// escapeCell keeps pipes in URLs from breaking the table layout
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
