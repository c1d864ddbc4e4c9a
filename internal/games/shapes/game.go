// Package shapes implements Counting Shapes: colored shapes drift across
// the board and the player taps the ones matching the announced kind.
package shapes

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

// Game implements the Counting Shapes game logic.
type Game struct {
	config  core.RuntimeConfig
	gameCfg config.ShapesConfig
	diff    *config.DifficultyManager
	sh      *shell.Shell
	field   *engine.Field

	cursorX int
	cursorY int
	target  string
	tapped  int
}

// New creates a new Counting Shapes game instance.
func New() *Game {
	gameCfg, err := config.LoadShapes(configPath)
	if err != nil {
		gameCfg = config.DefaultShapesConfig()
	}
	config.ApplyPreset(&gameCfg.Difficulty, config.DifficultyPreset(difficultyPreset))

	return &Game{
		gameCfg: gameCfg,
		diff:    config.NewDifficultyManager(gameCfg.Difficulty),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "shapes"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Counting Shapes"
}

// boardBounds returns the playable area below the chrome and target line.
func (g *Game) boardBounds() core.Rect {
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

	bounds := g.boardBounds()
	if g.field == nil {
		g.field = engine.NewField(engine.Config{
			Bounds:      bounds,
			MaxEntities: g.gameCfg.Board.MaxShapes,
			SpawnEvery:  g.gameCfg.Board.SpawnEvery,
			Boundary:    engine.WrapX,
			Spawn:       g.spawnShape,
			Move:        g.moveShape,
		}, cfg.Seed)
	} else {
		g.field.SetBounds(bounds)
		g.field.Reset(cfg.Seed)
	}
	g.field.Fill()

	g.cursorX = cfg.ScreenW / 2
	g.cursorY = bounds.Y + bounds.H/2
	g.tapped = 0
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
		g.sh.SetGameOver(false)
		events = append(events, core.Event{Kind: core.EventLoss, Text: "Time's up!"})
		return core.StepResult{State: g.State(), Events: events}
	}

	g.moveCursor(in)

	if in.Has(core.ActionSelect) {
		events = append(events, g.tryTap()...)
	}

	g.field.Step()
	g.ensureTargetPresent()

	return core.StepResult{State: g.State(), Events: events}
}

// moveCursor moves the tap cursor, clamped to the board.
func (g *Game) moveCursor(in core.InputFrame) {
	bounds := g.boardBounds()
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

// tryTap taps the shape under the cursor, if any.
func (g *Game) tryTap() []core.Event {
	shape, ok := g.field.At(g.cursorX, g.cursorY)
	if !ok {
		return nil
	}

	if shape.Tag == g.target {
		g.sh.AddScore(g.gameCfg.Gameplay.CorrectPoints)
		g.field.Remove(shape.ID)
		g.tapped++

		events := []core.Event{{
			Kind: core.EventCorrect,
			Text: fmt.Sprintf("Yes! That is a %s!", shape.Tag),
			XP:   g.gameCfg.Gameplay.XPPerTap,
		}}

		if g.tapped >= g.gameCfg.Gameplay.TargetTaps {
			g.sh.SetGameOver(true)
			return append(events, core.Event{Kind: core.EventWin, Text: "All shapes found!"})
		}

		g.nextTarget()
		g.ensureTargetPresent()
		return append(events, core.Event{
			Kind: core.EventTarget,
			Text: fmt.Sprintf("Tap every %s", g.target),
		})
	}

	g.sh.AddScore(-g.gameCfg.Gameplay.Penalty)
	return []core.Event{{
		Kind: core.EventIncorrect,
		Text: fmt.Sprintf("That is a %s, not a %s", shape.Tag, g.target),
	}}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.sh.RenderChrome(dst)

	targetText := fmt.Sprintf("Tap the shape: %s   Found: %d/%d",
		g.target, g.tapped, g.gameCfg.Gameplay.TargetTaps)
	dst.DrawTextColored(2, 1, targetText, core.ColorBrightYellow)

	for _, shape := range g.field.Entities() {
		k, ok := kindByName(shape.Tag)
		if !ok {
			continue
		}
		dst.SetCell(int(shape.X), int(shape.Y), k.glyph, k.color)
	}

	dst.SetCell(g.cursorX, g.cursorY, '+', core.ColorBrightWhite)

	dst.DrawTextColored(2, dst.Height()-1,
		"arrows move · enter tap · p pause", core.ColorGray)

	g.sh.RenderOverlays(dst)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.sh.State()
}

// Register the game with the registry
func init() {
	registry.Register("shapes", func() registry.Game {
		return New()
	})
}
