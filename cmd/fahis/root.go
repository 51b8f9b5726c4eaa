package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/hakim/fahis/internal/analyzer"
	"github.com/hakim/fahis/internal/config"
	"github.com/hakim/fahis/internal/registry"
	"github.com/hakim/fahis/internal/report"
	"github.com/spf13/cobra"
)

var (
	cfgFile     string
	domainsFile string
	verbose     bool
	noColor     bool
	cfg         *config.Config
	domains     *registry.Registry
	classifier  *analyzer.Analyzer
	printer     *report.Printer
)

var rootCmd = &cobra.Command{
	Use:   "fahis",
	Short: "Heuristic phishing URL analyzer",
	Long: `Fahis inspects URLs for phishing indicators without fetching them.

It extracts lexical and structural features from each URL, checks the
registrable domain against known-safe and known-phishing lists, looks for
homoglyph substitution and typosquatting, and combines the signals into a
0-100 risk score with a low, medium or high verdict.

Run without arguments to start the interactive prompt.`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip setup for commands that don't need it
		skipSetup := map[string]bool{
			"init":    true,
			"help":    true,
			"version": true,
		}

		if skipSetup[cmd.Name()] {
			return nil
		}

		var err error
		cfg, err = loadConfig()
		if err != nil {
			return err
		}

		slog.SetDefault(newLogger(cfg.LogLevel))

		if cmd.Flags().Changed("domains") {
			cfg.DomainsFile = domainsFile
		}

		domains = registry.Load(cfg.DomainsFile, slog.Default())
		classifier = analyzer.New(domains, analyzer.WithLogger(slog.Default()))

		colorMode := cfg.Output.Color
		if noColor {
			colorMode = "never"
		}
		printer = report.NewPrinter(os.Stdout, report.ColorEnabled(colorMode, os.Stdout))

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(os.Stdin)
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (default: search ., ./configs, ~/.config/fahis)")
	rootCmd.PersistentFlags().StringVar(&domainsFile, "domains", "", "domain list JSON file (overrides domains_file)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show extracted features")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Version flag
	rootCmd.Version = "1.0.0"
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the --config file, or searches the default locations
// when none was given
func loadConfig() (*config.Config, error) {
	c, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return c, nil
}

// newLogger builds the stderr text logger for the configured level
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// jsonOutput reports whether results should be printed as JSON
func jsonOutput(cmd *cobra.Command) bool {
	if cmd.Flags().Lookup("json") != nil {
		if v, _ := cmd.Flags().GetBool("json"); v {
			return true
		}
	}
	return cfg != nil && cfg.Output.Format == "json"
}
