package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkamenov/eduquest/internal/games/quiz/banks"
	"github.com/mkamenov/eduquest/internal/registry"
	"github.com/mkamenov/eduquest/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top 10 high scores for the specified game.

For the quiz, recent graded submissions are shown as well.

Examples:
  eduquest scores fishing
  eduquest scores quiz
  eduquest scores shapes --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all recorded scores for the game")
	scoresCmd.Flags().StringVar(&flagBank, "bank", "", "Quiz bank ID for submission history")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'eduquest list' to see available games.")
		os.Exit(1)
	}

	// Get game title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all scores for %s.\n", title)
		return
	}

	// Get top scores
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'eduquest play %s' to set the first high score!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "Rank", "Score", "Result", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "----", "-----", "------", "----")

	// Print scores
	for i, entry := range scores {
		result := "lost"
		if entry.Won {
			result = "won"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6s  %s\n", i+1, entry.Score, result, dateStr)
	}

	// Show high score
	fmt.Println()
	highScore, err := store.HighScore(gameID)
	if err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}

	if gameID == "quiz" {
		printSubmissions(store)
	}
}

// printSubmissions shows recent graded quiz attempts for the selected
// bank (the embedded default when --bank is not given).
func printSubmissions(store *storage.Store) {
	bankID := flagBank
	if bankID == "" {
		bankID = banks.DefaultBank().ID
	}

	subs, err := store.Submissions(bankID, 10)
	if err != nil || len(subs) == 0 {
		return
	}

	fmt.Println()
	fmt.Printf("Recent submissions - %s\n", bankID)
	for _, sub := range subs {
		dateStr := sub.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %2d/%d correct  %-10d  %s\n", sub.Correct, sub.Total, sub.Score, dateStr)
	}
}
