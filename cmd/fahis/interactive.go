package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i"},
	Short:   "Analyze URLs typed at a prompt",
	Long: `Start a prompt that analyzes each URL you enter.

Type "exit" or "quit" (or press Ctrl-D) to leave.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd.InOrStdin())
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

// runInteractive reads URLs from in until exit, quit or EOF
func runInteractive(in io.Reader) error {
	reader := bufio.NewReader(in)

	printer.Heading("Fahis - phishing URL analyzer")
	printer.Heading("Interactive mode - type \"exit\" to quit")

	for {
		line, ok := prompt(reader, "\n[?] Enter URL: ")
		if !ok {
			fmt.Println()
			return nil
		}

		switch strings.ToLower(line) {
		case "":
			continue
		case "exit", "quit":
			fmt.Println("[+] Thanks for using Fahis!")
			return nil
		}

		res := analyzeOne(line, true)
		printer.PrintResult(res, verbose)
	}
}

// prompt prints label and returns the trimmed line. ok is false on EOF or read error.
func prompt(reader *bufio.Reader, label string) (string, bool) {
	fmt.Print(label)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSpace(line), true
}
