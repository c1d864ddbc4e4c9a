package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Won      bool // Whether the terminal state is a win (valid when GameOver)
	Paused   bool // Whether the game is paused
}

// EventKind classifies a gameplay event emitted during a tick.
type EventKind int

const (
	EventNone       EventKind = iota
	EventTarget               // A new target was announced (letter, shape, question)
	EventCorrect              // Player answered/tapped correctly
	EventIncorrect            // Player answered/tapped incorrectly
	EventLevelUp              // Game-internal stage advanced
	EventWin                  // Terminal win state reached
	EventLoss                 // Terminal loss state reached
	EventTrade                // A trade was executed (trading games)
)

// Event is a gameplay occurrence the platform reacts to: narration cues,
// experience awards, and badge checks all key off these. Games stay pure and
// never talk to the narrator or the progression store directly.
type Event struct {
	Kind EventKind
	Text string // Caption to narrate, empty for silent events
	XP   int    // Experience points to award, 0 for none
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
