package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkamenov/eduquest/internal/games/quiz/banks"
)

var flagBanksDir string

var banksCmd = &cobra.Command{
	Use:   "banks",
	Short: "List installed quiz banks",
	Long: `Shows the quiz question banks available to the quiz game.

Banks are YAML files scanned from ~/.eduquest/banks (or --dir).
The embedded starter bank is always available.

Examples:
  eduquest banks
  eduquest banks --dir ./my-banks
  eduquest play quiz --bank arithmetic-1`,
	Run: runBanks,
}

func init() {
	banksCmd.Flags().StringVar(&flagBanksDir, "dir", "", "Directory to scan for bank files")
}

func runBanks(cmd *cobra.Command, args []string) {
	root := flagBanksDir
	if root == "" {
		root = banks.DefaultRoot()
	}

	installed := []banks.Bank{banks.DefaultBank()}
	if _, err := os.Stat(root); err == nil {
		loaded, err := banks.NewLoader(root).LoadAll()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error scanning %s: %v\n", root, err)
			os.Exit(1)
		}
		installed = append(installed, loaded...)
	}

	fmt.Println("Available quiz banks:")
	fmt.Println()

	maxIDLen := 2
	for _, b := range installed {
		if len(b.ID) > maxIDLen {
			maxIDLen = len(b.ID)
		}
	}

	fmt.Printf("  %-*s  %-9s  %s\n", maxIDLen, "ID", "Questions", "Title")
	fmt.Printf("  %-*s  %-9s  %s\n", maxIDLen, "--", "---------", "-----")
	for _, b := range installed {
		fmt.Printf("  %-*s  %-9d  %s\n", maxIDLen, b.ID, len(b.Questions), b.Title)
	}

	fmt.Println()
	fmt.Println("Run 'eduquest play quiz --bank <id>' to play a bank.")
}
