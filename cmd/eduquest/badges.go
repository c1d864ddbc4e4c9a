package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkamenov/eduquest/internal/progression"
)

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "Show the badge catalog",
	Long: `Lists every badge that can be earned and how to earn it.

Badges unlock during a play session; the in-session gallery (press V in
the menu) shows which ones you have earned so far.`,
	Run: runBadges,
}

func runBadges(cmd *cobra.Command, args []string) {
	badges := progression.NewStore().Badges()

	fmt.Println("Badges:")
	fmt.Println()

	maxNameLen := 4
	for _, b := range badges {
		if len(b.Name) > maxNameLen {
			maxNameLen = len(b.Name)
		}
	}

	for _, b := range badges {
		fmt.Printf("  %s  %-*s  %s\n", b.Icon, maxNameLen, b.Name, b.Description)
	}
}
