package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hakim/fahis/internal/config"
	"github.com/spf13/cobra"
)

var (
	initForce bool
	initDir   string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize fahis with default configuration",
	Long: `Creates a default configuration file (fahis.yaml) and an empty domain list
file (data/domains.json) that you can fill with your own safe and phishing
domains.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := filepath.Join(initDir, "fahis.yaml")

		// Check if config already exists
		if _, err := os.Stat(configPath); err == nil && !initForce {
			return fmt.Errorf("config file already exists at %s. Use --force to overwrite", configPath)
		}

		if err := os.MkdirAll(initDir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", initDir, err)
		}

		// Create default config
		if err := config.WriteDefault(configPath); err != nil {
			return fmt.Errorf("failed to create config file: %w", err)
		}
		fmt.Printf("Created %s with default configuration\n", configPath)

		// Create the domain list file unless one is already there
		domainsPath := filepath.Join(initDir, config.DefaultConfig().DomainsFile)
		if _, err := os.Stat(domainsPath); err == nil && !initForce {
			fmt.Printf("Keeping existing domain list: %s\n", domainsPath)
		} else {
			if err := config.WriteSampleDomains(domainsPath); err != nil {
				return fmt.Errorf("failed to create domain list: %w", err)
			}
			fmt.Printf("Created domain list: %s\n", domainsPath)
		}

		fmt.Println()
		fmt.Println("Fahis initialized successfully!")
		fmt.Println("Run 'fahis analyze <url>' to check a link.")

		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing files")
	initCmd.Flags().StringVar(&initDir, "dir", ".", "output directory")
	rootCmd.AddCommand(initCmd)
}
