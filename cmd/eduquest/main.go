// eduquest is a TUI learning platform with educational mini-games.
//
// Usage:
//
//	eduquest list              - List available games
//	eduquest play <game>       - Play a game
//	eduquest menu              - Start menu to pick games interactively
//	eduquest serve             - Start SSH server for remote play
//	eduquest scores <game>     - Show high scores for a game
//	eduquest banks             - List installed quiz banks
//	eduquest badges            - Show the badge catalog
//	eduquest stats             - Show play statistics
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.eduquest/eduquest.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/mkamenov/eduquest/internal/games/fishing"
	_ "github.com/mkamenov/eduquest/internal/games/quiz"
	_ "github.com/mkamenov/eduquest/internal/games/shapes"
	_ "github.com/mkamenov/eduquest/internal/games/stocks"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "eduquest",
	Short: "EduQuest - Learn through mini-games in your terminal",
	Long: `EduQuest is a terminal-based learning platform where kids play
educational mini-games and earn XP, levels and badges as they go.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  banks    - List installed quiz banks
  badges   - Show the badge catalog
  stats    - Show play statistics

Examples:
  eduquest list
  eduquest play fishing
  eduquest menu
  eduquest serve --ssh :2222
  eduquest scores quiz`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.eduquest/eduquest.db", "Path to database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(banksCmd)
	rootCmd.AddCommand(badgesCmd)
	rootCmd.AddCommand(statsCmd)
}
