package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkamenov/eduquest/internal/core"
	"github.com/mkamenov/eduquest/internal/narration"
	"github.com/mkamenov/eduquest/internal/progression"
	"github.com/mkamenov/eduquest/internal/registry"
	"github.com/mkamenov/eduquest/internal/storage"
)

// SubmissionReporter is implemented by games that produce a graded
// submission at the end of a session, such as the quiz player.
type SubmissionReporter interface {
	Submission() (bankID string, correct, total int)
}

// toneFor maps a gameplay event to a narration tone.
func toneFor(kind core.EventKind) narration.Tone {
	switch kind {
	case core.EventCorrect, core.EventTrade:
		return narration.ToneSuccess
	case core.EventIncorrect, core.EventLoss:
		return narration.ToneFailure
	case core.EventWin, core.EventLevelUp:
		return narration.ToneFanfare
	default:
		return narration.ToneNeutral
	}
}

// GameModel runs a single game session: it feeds input frames to the
// game, reacts to gameplay events with narration and progression, and
// persists the result when the session ends.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	prog       *progression.Store
	narrator   narration.Narrator
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitting   bool
	backToMenu bool
	saved      bool // Whether the result has been persisted for this game over
}

// NewGameModel creates a model for one game session.
func NewGameModel(game registry.Game, store *storage.Store, prog *progression.Store, narr narration.Narrator, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if narr == nil {
		narr = narration.Noop{}
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		prog:       prog,
		narrator:   narr,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu when the session is over or paused
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, nil
	}

	return m, nil
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Games lay out against the screen, so a resize restarts the session
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.saved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, ev := range result.Events {
		if ev.Text != "" {
			m.narrator.Say(ev.Text, toneFor(ev.Kind))
		}
		if ev.XP > 0 && m.prog != nil {
			m.prog.AddXP(ev.XP)
		}
	}

	if m.gameState.GameOver && !m.saved {
		m.persistResult()
		m.saved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// persistResult records the finished session in the progression store
// and the database. Saves are best effort.
func (m *GameModel) persistResult() {
	if m.prog != nil {
		m.prog.RecordResult(m.game.ID(), m.gameState.Score, m.gameState.Won)
	}

	if m.store == nil {
		return
	}
	if m.gameState.Score > 0 || m.gameState.Won {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveScore(m.game.ID(), m.gameState.Score, m.gameState.Won)
	}
	if rep, ok := m.game.(SubmissionReporter); ok {
		bankID, correct, total := rep.Submission()
		//nolint:errcheck // Best-effort save
		m.store.SaveSubmission(storage.Submission{
			BankID:  bankID,
			Score:   m.gameState.Score,
			Correct: correct,
			Total:   total,
		})
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	// Narration caption rides on top of whatever the game drew
	if caption := m.narrator.Caption(); caption != "" {
		m.screen.DrawTextCentered(m.screen.Height()-3, caption)
	}

	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// NarrateProgress celebrates level-ups and badge unlocks out loud.
// The store keeps listeners for its whole lifetime, so call this once
// per store, not once per game.
func NarrateProgress(prog *progression.Store, narr narration.Narrator) {
	if prog == nil || narr == nil {
		return
	}
	prog.Subscribe(func(n progression.Notification) {
		switch n.Kind {
		case progression.NotifyLevelUp:
			narr.Say("Level up!", narration.ToneFanfare)
		case progression.NotifyBadge:
			narr.Say("Badge unlocked: "+n.Badge.Name, narration.ToneFanfare)
		}
	})
}

// Run starts a standalone Bubble Tea program for one game.
func Run(game registry.Game, store *storage.Store, prog *progression.Store, narr narration.Narrator, cfg core.RuntimeConfig) error {
	if narr == nil {
		narr = narration.Noop{}
	}

	model := NewGameModel(game, store, prog, narr, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
