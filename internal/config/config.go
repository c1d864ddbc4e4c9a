// Package config provides YAML-based game configuration loading and
// difficulty management for the EduQuest platform.
package config

// FishingConfig contains all configuration for Alphabet Fishing.
type FishingConfig struct {
	Pond       FishingPond      `yaml:"pond"`
	Gameplay   FishingGameplay  `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FishingPond defines the fish population parameters.
type FishingPond struct {
	MaxFish    int     `yaml:"max_fish"`    // Density cap
	SpawnEvery int     `yaml:"spawn_every"` // Ticks between spawns
	MinSpeed   float64 `yaml:"min_speed"`   // Cells per tick
	MaxSpeed   float64 `yaml:"max_speed"`   // Cells per tick
}

// FishingGameplay defines scoring and win conditions.
type FishingGameplay struct {
	TargetCount   int `yaml:"target_count"`   // Correct catches to win
	CorrectPoints int `yaml:"correct_points"` // Score for a correct catch
	Penalty       int `yaml:"penalty"`        // Score deducted for a wrong catch
	TimerSec      int `yaml:"timer_sec"`      // Session time limit, 0 disables
	XPPerCatch    int `yaml:"xp_per_catch"`   // Experience per correct catch
}

// ShapesConfig contains all configuration for Counting Shapes.
type ShapesConfig struct {
	Board      ShapesBoard      `yaml:"board"`
	Gameplay   ShapesGameplay   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ShapesBoard defines the shape population parameters.
type ShapesBoard struct {
	MaxShapes  int     `yaml:"max_shapes"`
	SpawnEvery int     `yaml:"spawn_every"`
	MinSpeed   float64 `yaml:"min_speed"`
	MaxSpeed   float64 `yaml:"max_speed"`
}

// ShapesGameplay defines scoring and win conditions.
type ShapesGameplay struct {
	TargetTaps    int `yaml:"target_taps"`
	CorrectPoints int `yaml:"correct_points"`
	Penalty       int `yaml:"penalty"`
	TimerSec      int `yaml:"timer_sec"`
	XPPerTap      int `yaml:"xp_per_tap"`
}

// QuizConfig contains all configuration for the Quiz Player.
type QuizConfig struct {
	Gameplay QuizGameplay `yaml:"gameplay"`
}

// QuizGameplay defines scoring and timing.
type QuizGameplay struct {
	PointsPerCorrect int `yaml:"points_per_correct"`
	DurationMinutes  int `yaml:"duration_minutes"` // Overrides bank duration when > 0
	XPPerCorrect     int `yaml:"xp_per_correct"`
}

// StocksConfig contains all configuration for the Stock Market game.
type StocksConfig struct {
	Market   StocksMarket   `yaml:"market"`
	Gameplay StocksGameplay `yaml:"gameplay"`
}

// StocksMarket defines the simulated market.
type StocksMarket struct {
	Symbols    []StockSymbol `yaml:"symbols"`
	TickEvery  int           `yaml:"tick_every"` // Ticks between price updates
	Volatility float64       `yaml:"volatility"` // Max fractional move per update
}

// StockSymbol is one tradable instrument.
type StockSymbol struct {
	Symbol     string  `yaml:"symbol"`
	Name       string  `yaml:"name"`
	StartPrice float64 `yaml:"start_price"`
}

// StocksGameplay defines session parameters.
type StocksGameplay struct {
	StartingCash float64 `yaml:"starting_cash"`
	LotSize      int     `yaml:"lot_size"`    // Shares per buy/sell action
	SessionSec   int     `yaml:"session_sec"` // Trading session length
	XPPerProfit  int     `yaml:"xp_per_profit"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to entity speed at max difficulty
	SpawnReduction  int     `yaml:"spawn_reduction"`  // Spawn interval reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies a difficulty config based on a preset name.
func ApplyPreset(cfg *DifficultyConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Enabled = false
		return
	}
	cfg.Enabled = true
	cfg.InitialLevel = InitialLevelForPreset(preset)
}
