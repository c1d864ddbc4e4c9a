// Package fishing implements Alphabet Fishing: lettered fish swim across
// the pond and the player hooks the one carrying the announced letter.
// Correct catches score and advance the target; wrong catches cost points.
package fishing

import (
	"fmt"

	"github.com/mkamenov/eduquest/internal/config"
	"github.com/mkamenov/eduquest/internal/core"
	"github.com/mkamenov/eduquest/internal/engine"
	"github.com/mkamenov/eduquest/internal/registry"
	"github.com/mkamenov/eduquest/internal/shell"
)

var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets a custom config file path for the next game instance.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for the next game instance.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// Game implements the Alphabet Fishing game logic.
type Game struct {
	config  core.RuntimeConfig
	gameCfg config.FishingConfig
	diff    *config.DifficultyManager
	sh      *shell.Shell
	field   *engine.Field

	cursorX int
	cursorY int
	target  string
	caught  int
}

// New creates a new Alphabet Fishing game instance.
func New() *Game {
	gameCfg, err := config.LoadFishing(configPath)
	if err != nil {
		gameCfg = config.DefaultFishingConfig()
	}
	config.ApplyPreset(&gameCfg.Difficulty, config.DifficultyPreset(difficultyPreset))

	return &Game{
		gameCfg: gameCfg,
		diff:    config.NewDifficultyManager(gameCfg.Difficulty),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "fishing"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Alphabet Fishing"
}

// pondBounds returns the playable water area: below the chrome and the
// target line, above the bottom help line.
func (g *Game) pondBounds() core.Rect {
	return core.NewRect(0, 3, g.config.ScreenW, core.Max(g.config.ScreenH-5, 1))
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg

	if g.sh == nil {
		g.sh = shell.New(g.Title(), cfg, g.gameCfg.Gameplay.TimerSec)
	} else {
		g.sh.Reset(cfg, g.gameCfg.Gameplay.TimerSec)
	}

	bounds := g.pondBounds()
	if g.field == nil {
		g.field = engine.NewField(engine.Config{
			Bounds:      bounds,
			MaxEntities: g.gameCfg.Pond.MaxFish,
			SpawnEvery:  g.gameCfg.Pond.SpawnEvery,
			Boundary:    engine.WrapX,
			Spawn:       g.spawnFish,
			Move:        g.moveFish,
		}, cfg.Seed)
	} else {
		g.field.SetBounds(bounds)
		g.field.Reset(cfg.Seed)
	}
	g.field.Fill()

	g.cursorX = cfg.ScreenW / 2
	g.cursorY = bounds.Y + bounds.H/2
	g.caught = 0
	g.target = ""
	g.nextTarget()
	g.ensureTargetPresent()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events []core.Event

	sig := g.sh.Step(in)
	if !sig.Run {
		if in.Has(core.ActionRestart) && g.sh.Phase() == shell.PhaseGameOver {
			g.Reset(g.config)
		}
		return core.StepResult{State: g.State()}
	}

	if sig.TimedOut {
		// Time up before the target count: the session ends as a loss.
		g.sh.SetGameOver(false)
		events = append(events, core.Event{Kind: core.EventLoss, Text: "Time's up!"})
		return core.StepResult{State: g.State(), Events: events}
	}

	g.moveCursor(in)

	if in.Has(core.ActionSelect) {
		events = append(events, g.tryCatch()...)
	}

	g.field.Step()
	g.ensureTargetPresent()

	return core.StepResult{State: g.State(), Events: events}
}

// moveCursor moves the hook cursor, clamped to the pond.
func (g *Game) moveCursor(in core.InputFrame) {
	bounds := g.pondBounds()
	step := 2
	if in.Has(core.ActionLeft) {
		g.cursorX -= step
	}
	if in.Has(core.ActionRight) {
		g.cursorX += step
	}
	if in.Has(core.ActionUp) {
		g.cursorY--
	}
	if in.Has(core.ActionDown) {
		g.cursorY++
	}
	g.cursorX = core.Clamp(g.cursorX, bounds.X, bounds.Right()-1)
	g.cursorY = core.Clamp(g.cursorY, bounds.Y, bounds.Bottom()-1)
}

// tryCatch hooks the fish under the cursor, if any.
func (g *Game) tryCatch() []core.Event {
	fish, ok := g.field.At(g.cursorX, g.cursorY)
	if !ok {
		return nil
	}

	if fish.Tag == g.target {
		g.sh.AddScore(g.gameCfg.Gameplay.CorrectPoints)
		g.field.Remove(fish.ID)
		g.caught++

		events := []core.Event{{
			Kind: core.EventCorrect,
			Text: fmt.Sprintf("Great catch! %s is right!", fish.Tag),
			XP:   g.gameCfg.Gameplay.XPPerCatch,
		}}

		if g.caught >= g.gameCfg.Gameplay.TargetCount {
			g.sh.SetGameOver(true)
			return append(events, core.Event{Kind: core.EventWin, Text: "You caught them all!"})
		}

		g.nextTarget()
		g.ensureTargetPresent()
		return append(events, core.Event{
			Kind: core.EventTarget,
			Text: fmt.Sprintf("Find the letter %s", g.target),
		})
	}

	// Wrong fish: penalty, target stays, the fish swims on.
	g.sh.AddScore(-g.gameCfg.Gameplay.Penalty)
	return []core.Event{{
		Kind: core.EventIncorrect,
		Text: fmt.Sprintf("That was %s, not %s", fish.Tag, g.target),
	}}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.sh.RenderChrome(dst)

	targetText := fmt.Sprintf("Find the letter: %s   Caught: %d/%d",
		g.target, g.caught, g.gameCfg.Gameplay.TargetCount)
	dst.DrawTextColored(2, 1, targetText, core.ColorBrightYellow)

	// Water surface
	bounds := g.pondBounds()
	dst.DrawHLine(0, bounds.Y-1, dst.Width(), '~')

	// Fish
	for _, fish := range g.field.Entities() {
		glyph := fishRight
		if fish.VX < 0 {
			glyph = fishLeft
		}
		x, y := int(fish.X), int(fish.Y)
		dst.SetCell(x, y, glyph, core.ColorBrightBlue)
		dst.SetCell(x+2, y, rune(fish.Tag[0]), core.ColorBrightWhite)
	}

	// Hook cursor on top
	dst.SetCell(g.cursorX, g.cursorY, '+', core.ColorBrightRed)

	dst.DrawTextColored(2, dst.Height()-1,
		"arrows move hook · enter catch · p pause", core.ColorGray)

	g.sh.RenderOverlays(dst)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.sh.State()
}

// Register the game with the registry
func init() {
	registry.Register("fishing", func() registry.Game {
		return New()
	})
}
