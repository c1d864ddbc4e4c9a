package config

import (
	_ "embed"
)

//go:embed defaults/fishing.yaml
var defaultFishingYAML []byte

//go:embed defaults/shapes.yaml
var defaultShapesYAML []byte

//go:embed defaults/quiz.yaml
var defaultQuizYAML []byte

//go:embed defaults/stocks.yaml
var defaultStocksYAML []byte

// DefaultFishingConfig returns the default Alphabet Fishing configuration.
func DefaultFishingConfig() FishingConfig {
	return FishingConfig{
		Pond: FishingPond{
			MaxFish:    8,
			SpawnEvery: 90,
			MinSpeed:   0.1,
			MaxSpeed:   0.35,
		},
		Gameplay: FishingGameplay{
			TargetCount:   10,
			CorrectPoints: 10,
			Penalty:       5,
			TimerSec:      120,
			XPPerCatch:    10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 80,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				SpawnReduction:  40,
			},
		},
	}
}

// DefaultShapesConfig returns the default Counting Shapes configuration.
func DefaultShapesConfig() ShapesConfig {
	return ShapesConfig{
		Board: ShapesBoard{
			MaxShapes:  10,
			SpawnEvery: 75,
			MinSpeed:   0.08,
			MaxSpeed:   0.3,
		},
		Gameplay: ShapesGameplay{
			TargetTaps:    20,
			CorrectPoints: 10,
			Penalty:       5,
			TimerSec:      150,
			XPPerTap:      5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 150,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.2,
				SpawnReduction:  30,
			},
		},
	}
}

// DefaultQuizConfig returns the default Quiz Player configuration.
func DefaultQuizConfig() QuizConfig {
	return QuizConfig{
		Gameplay: QuizGameplay{
			PointsPerCorrect: 10,
			DurationMinutes:  0, // Use the bank's own duration
			XPPerCorrect:     15,
		},
	}
}

// DefaultStocksConfig returns the default Stock Market configuration.
func DefaultStocksConfig() StocksConfig {
	return StocksConfig{
		Market: StocksMarket{
			TickEvery:  30,
			Volatility: 0.04,
			Symbols: []StockSymbol{
				{Symbol: "LMND", Name: "Lemonade Stand Co.", StartPrice: 150},
				{Symbol: "BOOK", Name: "Book Fair Inc.", StartPrice: 85},
				{Symbol: "PZZA", Name: "Pizza Day Corp.", StartPrice: 42},
				{Symbol: "ROBO", Name: "Robotics Club Ltd.", StartPrice: 230},
			},
		},
		Gameplay: StocksGameplay{
			StartingCash: 10000,
			LotSize:      10,
			SessionSec:   180,
			XPPerProfit:  20,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "fishing":
		return defaultFishingYAML
	case "shapes":
		return defaultShapesYAML
	case "quiz":
		return defaultQuizYAML
	case "stocks":
		return defaultStocksYAML
	default:
		return nil
	}
}
