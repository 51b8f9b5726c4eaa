package main

import (
	"fmt"
	"os"

	"github.com/hakim/fahis/internal/analyzer"
	"github.com/hakim/fahis/internal/models"
	"github.com/hakim/fahis/internal/report"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze URL [URL...]",
	Short: "Analyze one or more URLs",
	Long: `Analyze URLs for phishing indicators and print a verdict for each.

Inputs without an http://, https:// or ftp:// prefix are treated as http://.
A single URL gets the detailed view; several URLs get one line each.

Examples:
  fahis analyze https://example.com
  fahis analyze https://example.com -v
  fahis analyze https://example.com --json
  fahis analyze site1.com site2.com`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON := jsonOutput(cmd)

		if len(args) == 1 {
			res := analyzeOne(args[0], !asJSON)
			if asJSON {
				return report.WriteJSON(os.Stdout, res)
			}
			printer.PrintResult(res, verbose)
			return nil
		}

		results := make([]models.AnalysisResult, 0, len(args))
		if !asJSON {
			printer.Heading("\n[*] Analyzing %d URLs...", len(args))
		}
		for i, arg := range args {
			if !asJSON {
				fmt.Printf("\n[%d/%d] %s\n", i+1, len(args), arg)
			}
			res := classifier.Analyze(analyzer.EnsureScheme(arg))
			results = append(results, res)
			if !asJSON {
				printer.PrintCompact(res)
			}
		}

		if asJSON {
			return report.WriteJSON(os.Stdout, results)
		}
		printer.PrintSummary(models.Summarize(results))
		return nil
	},
}

func init() {
	analyzeCmd.Flags().Bool("json", false, "print results as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

// analyzeOne normalizes input, optionally announces it, and analyzes it
func analyzeOne(input string, announce bool) models.AnalysisResult {
	target := analyzer.EnsureScheme(input)
	if announce {
		fmt.Printf("\n[*] Analyzing: %s\n", target)
	}
	return classifier.Analyze(target)
}
