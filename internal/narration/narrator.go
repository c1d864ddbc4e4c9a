// Package narration provides audio and caption feedback for gameplay
// events. A new announcement always cancels the one still playing, and a
// narrator that cannot reach an audio device degrades to captions only:
// games never fail on inability to speak.
package narration

import (
	"sync"
	"time"

	"github.com/gopxl/beep/speaker"
)

// Narrator announces gameplay events.
type Narrator interface {
	// Say cancels any in-flight announcement and starts a new one.
	Say(text string, tone Tone)
	// Caption returns the text of the current announcement, or "" once it
	// has gone stale.
	Caption() string
	// Close releases the audio device, if any.
	Close()
}

// captionTTL is how long an announcement stays on screen.
const captionTTL = 3 * time.Second

var (
	initOnce sync.Once
	initErr  error
)

// Speaker is a beep-backed narrator. The zero value is not usable; use
// NewSpeaker.
type Speaker struct {
	mu      sync.Mutex
	audio   bool // Whether the audio device initialized
	caption string
	saidAt  time.Time
	now     func() time.Time
}

// NewSpeaker creates a narrator backed by the system audio device.
// If the device cannot be initialized the narrator still works, with
// captions only. It never returns an error.
func NewSpeaker() *Speaker {
	initOnce.Do(func() {
		initErr = speaker.Init(sampleRate, sampleRate.N(time.Second/20))
	})
	return &Speaker{
		audio: initErr == nil,
		now:   time.Now,
	}
}

// NewCaptions creates a narrator that shows captions but never plays
// audio. Used for SSH sessions, where sound would come out of the
// server host instead of the player's machine.
func NewCaptions() *Speaker {
	return &Speaker{now: time.Now}
}

// Say cancels the in-flight cue and plays a new one for the given tone,
// updating the caption. Audio failures are silently swallowed.
func (s *Speaker) Say(text string, tone Tone) {
	s.mu.Lock()
	s.caption = text
	s.saidAt = s.now()
	audio := s.audio
	s.mu.Unlock()

	if !audio {
		return
	}
	// Cancel before play so cues never overlap.
	speaker.Clear()
	speaker.Play(generateCue(tone))
}

// Caption returns the current announcement text, expiring stale ones.
func (s *Speaker) Caption() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.caption == "" || s.now().Sub(s.saidAt) > captionTTL {
		return ""
	}
	return s.caption
}

// Close stops any playing cue. The shared audio device stays initialized
// for the process lifetime.
func (s *Speaker) Close() {
	s.mu.Lock()
	audio := s.audio
	s.caption = ""
	s.mu.Unlock()

	if audio {
		speaker.Clear()
	}
}

// Noop is a narrator that does nothing. Used in tests and headless runs.
type Noop struct{}

func (Noop) Say(string, Tone) {}
func (Noop) Caption() string  { return "" }
func (Noop) Close()           {}
