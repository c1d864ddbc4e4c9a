// Package shell provides the uniform session lifecycle every mini-game
// composes with: start/playing/paused/game-over phases, score keeping,
// an optional countdown, and the shared chrome (header and overlays).
// Games keep their own rules; the shell owns everything generic.
package shell

import (
	"fmt"

	"github.com/mkamenov/eduquest/internal/core"
	"github.com/mkamenov/eduquest/internal/engine"
)

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

// Signal tells the hosting game what to do for the current tick.
type Signal struct {
	// Run is true when game logic should advance this tick.
	Run bool
	// TimedOut is true exactly once, on the tick the countdown expired.
	// The game decides whether expiry means auto-submit, win, or loss.
	TimedOut bool
}

// Shell wraps a single game session.
type Shell struct {
	title    string
	phase    Phase
	score    int
	won      bool
	clock    *engine.Countdown
	cfg      core.RuntimeConfig
	timerSec int
}

// New creates a shell for a session. timerSeconds <= 0 disables the
// countdown display and expiry.
func New(title string, cfg core.RuntimeConfig, timerSeconds int) *Shell {
	s := &Shell{title: title}
	s.Reset(cfg, timerSeconds)
	return s
}

// Reset restarts the session at the start screen with a fresh clock.
func (s *Shell) Reset(cfg core.RuntimeConfig, timerSeconds int) {
	s.cfg = cfg
	s.phase = PhaseStart
	s.score = 0
	s.won = false
	s.timerSec = timerSeconds
	s.clock = engine.NewCountdown(timerSeconds, cfg.TickRate)
}

// Step advances the session lifecycle by one tick. It consumes start,
// pause, and countdown concerns; the returned signal says whether the
// game's own logic should run.
func (s *Shell) Step(in core.InputFrame) Signal {
	switch s.phase {
	case PhaseStart:
		if in.Has(core.ActionSelect) {
			s.phase = PhasePlaying
		}
		return Signal{}

	case PhaseGameOver:
		return Signal{}

	case PhasePaused:
		if in.Has(core.ActionPause) {
			s.phase = PhasePlaying
		}
		return Signal{}
	}

	// PhasePlaying
	if in.Has(core.ActionPause) {
		s.phase = PhasePaused
		return Signal{}
	}

	// The countdown only runs while playing; pausing stops it.
	timedOut := s.clock.Tick()
	return Signal{Run: true, TimedOut: timedOut}
}

// AddScore applies a score delta, clamping the total at zero.
func (s *Shell) AddScore(delta int) {
	s.score += delta
	if s.score < 0 {
		s.score = 0
	}
}

// Score returns the current score.
func (s *Shell) Score() int {
	return s.score
}

// SetGameOver moves the session to its terminal state.
func (s *Shell) SetGameOver(won bool) {
	if s.phase == PhaseGameOver {
		return
	}
	s.phase = PhaseGameOver
	s.won = won
}

// Phase returns the current lifecycle phase.
func (s *Shell) Phase() Phase {
	return s.phase
}

// SecondsLeft returns the remaining countdown seconds, 0 when disabled.
func (s *Shell) SecondsLeft() int {
	return s.clock.SecondsLeft()
}

// TimerEnabled reports whether this session has a countdown.
func (s *Shell) TimerEnabled() bool {
	return s.timerSec > 0
}

// State folds the shell into the platform-facing game state.
func (s *Shell) State() core.GameState {
	return core.GameState{
		Score:    s.score,
		GameOver: s.phase == PhaseGameOver,
		Won:      s.won,
		Paused:   s.phase == PhasePaused,
	}
}

// RenderChrome draws the header line: title, score, and countdown.
func (s *Shell) RenderChrome(dst *core.Screen) {
	dst.DrawTextColored(2, 0, " "+s.title+" ", core.ColorBrightCyan)

	scoreText := fmt.Sprintf(" Score: %d ", s.score)
	dst.DrawText(dst.Width()-len(scoreText)-2, 0, scoreText)

	if s.TimerEnabled() {
		secs := s.SecondsLeft()
		timeText := fmt.Sprintf(" Time %d:%02d ", secs/60, secs%60)
		color := core.ColorDefault
		if secs <= 10 {
			color = core.ColorBrightRed
		}
		dst.DrawTextColored((dst.Width()-len(timeText))/2, 0, timeText, color)
	}
}

// RenderOverlays draws the start, pause, and terminal overlays on top of
// the game's play surface.
func (s *Shell) RenderOverlays(dst *core.Screen) {
	switch s.phase {
	case PhaseStart:
		drawCenteredMessage(dst, s.title, "Press Enter to start")
	case PhasePaused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case PhaseGameOver:
		title := "GAME OVER"
		if s.won {
			title = "VICTORY!"
		}
		subtitle := fmt.Sprintf("Score: %d  |  R restart, B back", s.score)
		drawCenteredMessage(dst, title, subtitle)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
