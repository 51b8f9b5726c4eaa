package report

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/hakim/fahis/internal/models"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorEnabled resolves a color mode ("auto", "always", "never") for f.
// auto colors only a terminal and honors NO_COLOR.
func ColorEnabled(mode string, f *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// Printer renders analysis results as human-readable text
type Printer struct {
	w io.Writer

	bold   lipgloss.Style
	green  lipgloss.Style
	yellow lipgloss.Style
	red    lipgloss.Style
	cyan   lipgloss.Style
	purple lipgloss.Style
}

// NewPrinter returns a Printer writing to w, with ANSI colors when color is true
func NewPrinter(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Printer{
		w:      w,
		bold:   r.NewStyle().Bold(true),
		green:  r.NewStyle().Foreground(lipgloss.Color("10")),
		yellow: r.NewStyle().Foreground(lipgloss.Color("11")),
		red:    r.NewStyle().Foreground(lipgloss.Color("9")),
		cyan:   r.NewStyle().Foreground(lipgloss.Color("14")),
		purple: r.NewStyle().Foreground(lipgloss.Color("13")),
	}
}

// PrintResult writes the detailed view of a result. verbose adds the features.
func (p *Printer) PrintResult(res models.AnalysisResult, verbose bool) {
	fmt.Fprintf(p.w, "\n%s\n", p.bold.Render("Results:"))
	fmt.Fprintf(p.w, "  Status:     %s\n", p.safety(res))
	fmt.Fprintf(p.w, "  Risk level: %s\n", p.level(res.RiskLevel))
	fmt.Fprintf(p.w, "  Risk score: %s\n", p.score(res.Score))

	if len(res.Warnings) > 0 {
		fmt.Fprintf(p.w, "\n%s\n", p.yellow.Render("Warnings:"))
		for _, w := range res.Warnings {
			fmt.Fprintf(p.w, "  • %s\n", w)
		}
	}

	if len(res.Recommendations) > 0 {
		fmt.Fprintf(p.w, "\n%s\n", p.cyan.Render("Recommendations:"))
		for _, r := range res.Recommendations {
			fmt.Fprintf(p.w, "  • %s\n", r)
		}
	}

	if verbose {
		fmt.Fprintf(p.w, "\n%s\n", p.purple.Render("Extracted features:"))
		for _, row := range FeatureRows(res.Features) {
			fmt.Fprintf(p.w, "  • %s: %s\n", row[0], row[1])
		}
	}
}

// PrintCompact writes a one-line verdict for a result
func (p *Printer) PrintCompact(res models.AnalysisResult) {
	fmt.Fprintf(p.w, "  %s | %s | %s\n", p.safety(res), p.level(res.RiskLevel), p.score(res.Score))
}

// PrintSummary writes the verdict counts of a batch
func (p *Printer) PrintSummary(s models.BatchSummary) {
	fmt.Fprintf(p.w, "\n%s\n", p.bold.Render("Summary:"))
	fmt.Fprintf(p.w, "  Total: %d | %s | %s\n", s.Total,
		p.green.Render(fmt.Sprintf("Safe: %d", s.Safe)),
		p.red.Render(fmt.Sprintf("Unsafe: %d", s.Unsafe)))
	fmt.Fprintf(p.w, "  %s | %s | %s\n",
		p.level(models.RiskLow)+fmt.Sprintf(": %d", s.Low),
		p.level(models.RiskMedium)+fmt.Sprintf(": %d", s.Medium),
		p.level(models.RiskHigh)+fmt.Sprintf(": %d", s.High))
}

// Heading writes a highlighted line, used for prompts and progress
func (p *Printer) Heading(format string, args ...any) {
	fmt.Fprintln(p.w, p.cyan.Render(fmt.Sprintf(format, args...)))
}

func (p *Printer) safety(res models.AnalysisResult) string {
	if res.IsSafe {
		return p.green.Render("✅ Safe")
	}
	return p.red.Render("⚠️  Unsafe")
}

func (p *Printer) level(level models.RiskLevel) string {
	switch level {
	case models.RiskLow:
		return p.green.Render("🟢 " + string(level))
	case models.RiskMedium:
		return p.yellow.Render("🟡 " + string(level))
	case models.RiskHigh:
		return p.red.Render("🔴 " + string(level))
	default:
		return "⚪ " + string(level)
	}
}

func (p *Printer) score(score int) string {
	text := fmt.Sprintf("%d/100", score)
	switch {
	case score < models.MediumRiskThreshold:
		return p.green.Render(text)
	case score < models.HighRiskThreshold:
		return p.yellow.Render(text)
	default:
		return p.red.Render(text)
	}
}

// FeatureRows lists features as name/value pairs in a stable order
func FeatureRows(f models.URLFeatures) [][2]string {
	return [][2]string{
		{"url_length", fmt.Sprint(f.URLLength)},
		{"has_https", fmt.Sprint(f.HasHTTPS)},
		{"has_ip", fmt.Sprint(f.HasIP)},
		{"domain", f.Domain},
		{"subdomain", f.Subdomain},
		{"suffix", f.Suffix},
		{"subdomain_count", fmt.Sprint(f.SubdomainCount)},
		{"special_chars_count", fmt.Sprintf("%d (@ %d, - %d, _ %d)", f.SpecialCharsCount, f.AtCount, f.HyphenCount, f.UnderscoreCount)},
		{"dots_count", fmt.Sprint(f.DotsCount)},
		{"slashes_count", fmt.Sprint(f.SlashesCount)},
		{"suspicious_keywords_count", fmt.Sprint(f.SuspiciousKeywordsCount)},
		{"domain_length", fmt.Sprint(f.DomainLength)},
		{"path_length", fmt.Sprint(f.PathLength)},
		{"query_length", fmt.Sprint(f.QueryLength)},
		{"is_idn", fmt.Sprint(f.IsIDN)},
	}
}
