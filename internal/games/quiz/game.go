// Package quiz implements the Quiz Player: a timed multiple-choice quiz
// loaded from a YAML question bank. Answers are collected as the player
// moves through the questions and graded on submit; when the countdown
// expires the quiz submits itself with whatever has been answered.
package quiz

import (
	"fmt"
	"os"

	"github.com/mkamenov/eduquest/internal/config"
	"github.com/mkamenov/eduquest/internal/core"
	"github.com/mkamenov/eduquest/internal/games/quiz/banks"
	"github.com/mkamenov/eduquest/internal/registry"
	"github.com/mkamenov/eduquest/internal/shell"
)

var (
	configPath string
	bankPath   string
)

// SetConfigPath sets a custom config file path for the next game instance.
func SetConfigPath(path string) {
	configPath = path
}

// SetBankPath sets a question bank file for the next game instance.
// Empty means the embedded default bank.
func SetBankPath(path string) {
	bankPath = path
}

// Game implements the Quiz Player game logic.
type Game struct {
	config  core.RuntimeConfig
	gameCfg config.QuizConfig
	bank    banks.Bank
	sh      *shell.Shell

	index     int   // Current question
	cursor    int   // Highlighted choice
	answers   []int // Chosen index per question, -1 when unanswered
	submitted bool
	correct   int
}

// New creates a new Quiz Player game instance.
func New() *Game {
	gameCfg, err := config.LoadQuiz(configPath)
	if err != nil {
		gameCfg = config.DefaultQuizConfig()
	}

	return &Game{
		gameCfg: gameCfg,
		bank:    resolveBank(bankPath),
	}
}

// resolveBank maps the bank flag to a question bank. A path to a YAML
// file loads that file; anything else is looked up by ID among the
// installed banks. Unresolved values fall back to the embedded default.
func resolveBank(ref string) banks.Bank {
	if ref == "" {
		return banks.DefaultBank()
	}

	loader := banks.NewLoader(banks.DefaultRoot())
	if _, err := os.Stat(ref); err == nil {
		if bank, err := loader.LoadFile(ref); err == nil {
			return bank
		}
	}
	if bank, err := loader.LoadByID(ref); err == nil {
		return bank
	}
	return banks.DefaultBank()
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "quiz"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.bank.Title
}

// durationSec returns the session length: config override wins over the
// bank's own duration.
func (g *Game) durationSec() int {
	minutes := g.bank.DurationMinutes
	if g.gameCfg.Gameplay.DurationMinutes > 0 {
		minutes = g.gameCfg.Gameplay.DurationMinutes
	}
	return minutes * 60
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg

	if g.sh == nil {
		g.sh = shell.New(g.Title(), cfg, g.durationSec())
	} else {
		g.sh.Reset(cfg, g.durationSec())
	}

	g.index = 0
	g.cursor = 0
	g.submitted = false
	g.correct = 0
	g.answers = make([]int, len(g.bank.Questions))
	for i := range g.answers {
		g.answers[i] = -1
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	sig := g.sh.Step(in)
	if !sig.Run {
		if in.Has(core.ActionRestart) && g.sh.Phase() == shell.PhaseGameOver {
			g.Reset(g.config)
		}
		return core.StepResult{State: g.State()}
	}

	if sig.TimedOut {
		return core.StepResult{State: g.State(), Events: g.submit()}
	}

	q := g.bank.Questions[g.index]

	if in.Has(core.ActionUp) && g.cursor > 0 {
		g.cursor--
	}
	if in.Has(core.ActionDown) && g.cursor < len(q.Choices)-1 {
		g.cursor++
	}
	if in.Has(core.ActionLeft) {
		g.gotoQuestion(g.index - 1)
	}
	if in.Has(core.ActionRight) {
		g.gotoQuestion(g.index + 1)
	}

	if in.Has(core.ActionSelect) {
		g.answers[g.index] = g.cursor
		if g.allAnswered() {
			return core.StepResult{State: g.State(), Events: g.submit()}
		}
		g.advance()
	}

	return core.StepResult{State: g.State()}
}

// gotoQuestion moves to a question, restoring its recorded answer as the
// cursor position.
func (g *Game) gotoQuestion(i int) {
	if i < 0 || i >= len(g.bank.Questions) {
		return
	}
	g.index = i
	g.cursor = 0
	if g.answers[i] >= 0 {
		g.cursor = g.answers[i]
	}
}

// advance moves to the next unanswered question, wrapping around.
func (g *Game) advance() {
	n := len(g.bank.Questions)
	for step := 1; step <= n; step++ {
		i := (g.index + step) % n
		if g.answers[i] < 0 {
			g.gotoQuestion(i)
			return
		}
	}
}

// allAnswered reports whether every question has a recorded answer.
func (g *Game) allAnswered() bool {
	for _, a := range g.answers {
		if a < 0 {
			return false
		}
	}
	return true
}

// submit grades the quiz and ends the session. Safe to call more than
// once; only the first call has any effect.
func (g *Game) submit() []core.Event {
	if g.submitted {
		return nil
	}
	g.submitted = true

	g.correct = g.bank.Grade(g.answers)
	g.sh.AddScore(g.correct * g.gameCfg.Gameplay.PointsPerCorrect)

	total := len(g.bank.Questions)
	won := g.correct*2 >= total
	g.sh.SetGameOver(won)

	kind := core.EventLoss
	if won {
		kind = core.EventWin
	}
	return []core.Event{{
		Kind: kind,
		Text: fmt.Sprintf("Quiz complete: %d/%d correct", g.correct, total),
		XP:   g.correct * g.gameCfg.Gameplay.XPPerCorrect,
	}}
}

// Submission reports the graded attempt for persistence. Only
// meaningful once the session is over.
func (g *Game) Submission() (bankID string, correct, total int) {
	return g.bank.ID, g.correct, len(g.bank.Questions)
}

// Render draws the current question and choices.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.sh.RenderChrome(dst)

	q := g.bank.Questions[g.index]

	header := fmt.Sprintf("Question %d of %d", g.index+1, len(g.bank.Questions))
	dst.DrawTextColored(2, 2, header, core.ColorBrightYellow)
	dst.DrawText(2, 4, q.Prompt)

	for i, choice := range q.Choices {
		y := 6 + i
		marker := "  "
		color := core.ColorDefault
		if i == g.cursor {
			marker = "> "
			color = core.ColorBrightCyan
		}
		line := fmt.Sprintf("%s%c) %s", marker, 'A'+i, choice)
		if g.answers[g.index] == i {
			line += "  *"
		}
		dst.DrawTextColored(4, y, line, color)
	}

	answered := 0
	for _, a := range g.answers {
		if a >= 0 {
			answered++
		}
	}
	status := fmt.Sprintf("Answered: %d/%d", answered, len(g.answers))
	dst.DrawTextColored(2, dst.Height()-2, status, core.ColorGray)
	dst.DrawTextColored(2, dst.Height()-1,
		"up/down choose · enter answer · left/right browse · p pause", core.ColorGray)

	g.sh.RenderOverlays(dst)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.sh.State()
}

// Register the game with the registry
func init() {
	registry.Register("quiz", func() registry.Game {
		return New()
	})
}
