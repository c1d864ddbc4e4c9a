package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mkamenov/eduquest/internal/registry"
	"github.com/mkamenov/eduquest/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show play statistics across all games",
	Long: `Display aggregated statistics for every game: rounds played,
wins, best and average score, and when it was last played.

Examples:
  eduquest stats
  eduquest stats --db ./eduquest.db`,
	Run: runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving statistics: %v\n", err)
		os.Exit(1)
	}

	if len(stats) == 0 {
		fmt.Println("No games played yet.")
		return
	}

	// Map registered IDs to titles; unregistered IDs still show
	titles := make(map[string]string)
	for _, g := range registry.List() {
		titles[g.ID] = g.Title
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-20s  %-7s  %-5s  %-6s  %-6s  %s\n", "Game", "Played", "Wins", "Best", "Avg", "Last played")
	fmt.Printf("  %-20s  %-7s  %-5s  %-6s  %-6s  %s\n", "----", "------", "----", "----", "---", "-----------")

	for _, id := range ids {
		s := stats[id]
		name := titles[id]
		if name == "" {
			name = id
		}
		fmt.Printf("  %-20s  %-7d  %-5d  %-6d  %-6.0f  %s\n",
			name, s.GamesCount, s.Wins, s.HighScore, s.AvgScore,
			s.LastPlayed.Format("2006-01-02 15:04"))
	}
}
