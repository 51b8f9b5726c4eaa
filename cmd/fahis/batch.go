package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hakim/fahis/internal/analyzer"
	"github.com/hakim/fahis/internal/report"
	"github.com/hakim/fahis/internal/storage"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch FILE",
	Short: "Analyze URLs listed in a file",
	Long: `Analyze every URL in FILE (one per line, blank lines ignored) using a
pool of workers. Results keep the order of the file.

With --report, a markdown summary is written to the configured report_dir as
{report_dir}/{file}_{YYYYMMDD}_{HHMMSS}.md

Examples:
  fahis batch urls.txt
  fahis batch urls.txt --workers 8 --report
  fahis batch urls.txt --json > results.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		workers, _ := cmd.Flags().GetInt("workers")
		writeReport, _ := cmd.Flags().GetBool("report")
		asJSON := jsonOutput(cmd)

		if !cmd.Flags().Changed("workers") {
			workers = cfg.Workers
		}

		urls, err := readURLFile(path)
		if err != nil {
			return err
		}

		if !asJSON {
			fmt.Printf("[+] Loaded %d URLs from %s\n", len(urls), path)
		}

		batch := classifier.AnalyzeBatch(urls, workers)

		if asJSON {
			if err := report.WriteJSON(os.Stdout, batch); err != nil {
				return err
			}
		} else {
			for i, res := range batch.Results {
				fmt.Printf("\n[%d/%d] %s\n", i+1, len(batch.Results), res.URL)
				if verbose {
					printer.PrintResult(res, true)
				} else {
					printer.PrintCompact(res)
				}
			}
			printer.PrintSummary(batch.Summary)
		}

		if writeReport {
			source := filepath.Base(path)
			md := report.RenderBatchMarkdown(batch, source)
			out, err := storage.WriteReport(cfg.ReportDir, source, batch.StartedAt, "md", []byte(md))
			if err != nil {
				return fmt.Errorf("saving batch report: %w", err)
			}
			fmt.Fprintf(os.Stderr, "[+] Report written to %s\n", out)
		}

		return nil
	},
}

func init() {
	batchCmd.Flags().Bool("json", false, "print the batch report as JSON")
	batchCmd.Flags().Int("workers", 0, "number of concurrent workers (0 = one per CPU)")
	batchCmd.Flags().Bool("report", false, "write a markdown report to report_dir")
	rootCmd.AddCommand(batchCmd)
}

// readURLFile returns the non-blank lines of path with schemes normalized
func readURLFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening URL file: %w", err)
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		urls = append(urls, analyzer.EnsureScheme(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading URL file %s: %w", path, err)
	}

	return urls, nil
}
