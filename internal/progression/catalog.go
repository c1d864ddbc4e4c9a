package progression

// winBadges maps game IDs to the badge unlocked by winning that game.
var winBadges = map[string]string{
	"fishing": "word-angler",
	"shapes":  "sharp-eye",
	"quiz":    "quiz-whiz",
	"stocks":  "market-mogul",
}

// defaultCatalog returns the fixed badge catalog every store starts with.
func defaultCatalog() []Badge {
	return []Badge{
		{
			ID:          "first-win",
			Name:        "First Victory",
			Description: "Win any game for the first time",
			Icon:        "★",
		},
		{
			ID:          "word-angler",
			Name:        "Word Angler",
			Description: "Complete a round of Alphabet Fishing",
			Icon:        "🎣",
		},
		{
			ID:          "sharp-eye",
			Name:        "Sharp Eye",
			Description: "Complete a round of Counting Shapes",
			Icon:        "◉",
		},
		{
			ID:          "quiz-whiz",
			Name:        "Quiz Whiz",
			Description: "Finish a quiz before the clock runs out",
			Icon:        "✓",
		},
		{
			ID:          "market-mogul",
			Name:        "Market Mogul",
			Description: "Close a trading session in profit",
			Icon:        "$",
		},
		{
			ID:          "centurion",
			Name:        "Centurion",
			Description: "Score 100 or more in a single session",
			Icon:        "Ⅽ",
		},
		{
			ID:          "scholar",
			Name:        "Scholar",
			Description: "Reach level 5",
			Icon:        "🎓",
		},
	}
}
