package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkamenov/eduquest/internal/core"
	"github.com/mkamenov/eduquest/internal/platform/tui"
	"github.com/mkamenov/eduquest/internal/progression"
	"github.com/mkamenov/eduquest/internal/registry"
	"github.com/mkamenov/eduquest/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start EduQuest with a game picker menu",
	Long: `Start EduQuest in interactive menu mode.

Use arrow keys or w/s to navigate, Enter to select a game.
After a game ends, you return to the menu to play again.
XP, levels and badges carry over between games in one session.

Controls:
  Up/Down/w/s  - Navigate menu
  Enter/Space  - Select game
  Tab          - Scoreboard
  V            - Badges
  Q            - Quit

Examples:
  eduquest menu
  eduquest menu --fps 30
  eduquest menu --db ./eduquest.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	menuCmd.Flags().StringVar(&flagBank, "bank", "", "Quiz bank ID or path to a bank YAML file")
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable narration sound (captions only)")
}

func runMenu(_ *cobra.Command, _ []string) {
	// Open storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
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

	// Progression and narration are shared across games so XP and
	// badges accumulate over the whole sitting.
	prog := progression.NewStore()
	narr := newNarrator()
	tui.NarrateProgress(prog, narr)

	// Menu loop
	for {
		// Show menu and get selection
		menuResult, err := tui.RunMenu(store, prog, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		// Check if user quit
		if menuResult.Quit {
			break
		}

		// Check if user wants scoreboard
		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		// Check if user wants the badge gallery
		if menuResult.WantsBadges {
			goBack, bErr := tui.RunBadges(prog, cfg.ScreenW, cfg.ScreenH)
			if bErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", bErr)
			}
			if goBack {
				continue
			}
			break
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		// Set config path, difficulty and bank before creation
		applyGameFlags(gameID)

		// Create game instance
		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Update seed for each game
		cfg.Seed = time.Now().UnixNano()

		// Run the game
		if err := tui.Run(game, store, prog, narr, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}

	// Cleanup
	narr.Close()
	if store != nil {
		store.Close()
	}
}
