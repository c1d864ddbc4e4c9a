package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkamenov/eduquest/internal/core"
	"github.com/mkamenov/eduquest/internal/games/fishing"
	"github.com/mkamenov/eduquest/internal/games/quiz"
	"github.com/mkamenov/eduquest/internal/games/shapes"
	"github.com/mkamenov/eduquest/internal/games/stocks"
	"github.com/mkamenov/eduquest/internal/narration"
	"github.com/mkamenov/eduquest/internal/platform/tui"
	"github.com/mkamenov/eduquest/internal/progression"
	"github.com/mkamenov/eduquest/internal/registry"
	"github.com/mkamenov/eduquest/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagBank       string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Move cursor
  Enter/Space  - Select / catch / answer / buy
  X            - Sell (stocks)
  P/Esc        - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower pace, fewer targets to clear
  normal - Standard pace
  hard   - Faster pace, more targets to clear

Examples:
  eduquest play fishing
  eduquest play shapes --difficulty easy
  eduquest play quiz --bank arithmetic-1
  eduquest play fishing --config ./my-fishing.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagBank, "bank", "", "Quiz bank ID or path to a bank YAML file")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable narration sound (captions only)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'eduquest list' to see available games.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty for games before creation
	applyGameFlags(gameID)

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	prog := progression.NewStore()
	narr := newNarrator()
	tui.NarrateProgress(prog, narr)

	// Run the game
	runErr := tui.Run(game, store, prog, narr, cfg)

	narr.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// applyGameFlags forwards the play flags to the matching game package.
func applyGameFlags(gameID string) {
	switch gameID {
	case "fishing":
		fishing.SetConfigPath(flagConfig)
		fishing.SetDifficultyPreset(flagDifficulty)
	case "shapes":
		shapes.SetConfigPath(flagConfig)
		shapes.SetDifficultyPreset(flagDifficulty)
	case "quiz":
		quiz.SetConfigPath(flagConfig)
		quiz.SetBankPath(flagBank)
	case "stocks":
		stocks.SetConfigPath(flagConfig)
	}
}

func newNarrator() narration.Narrator {
	if flagMute {
		return narration.NewCaptions()
	}
	return narration.NewSpeaker()
}
