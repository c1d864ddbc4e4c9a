// Package progression tracks experience points, levels, and badge unlocks
// shared by every game for the lifetime of the process. Nothing here is
// persisted: a restart resets XP and unlock timestamps by design.
package progression

import (
	"sync"
	"time"
)

// XPPerLevel is the amount of experience needed to advance one level.
const XPPerLevel = 100

// Badge is an unlockable award. UnlockedAt is nil while locked and is
// stamped at most once.
type Badge struct {
	ID          string
	Name        string
	Description string
	Icon        string
	UnlockedAt  *time.Time
}

// Unlocked reports whether the badge has been earned.
func (b Badge) Unlocked() bool {
	return b.UnlockedAt != nil
}

// NotificationKind classifies a celebratory notification.
type NotificationKind int

const (
	NotifyLevelUp NotificationKind = iota
	NotifyBadge
)

// Notification is a one-time celebratory event emitted by the store.
type Notification struct {
	Kind  NotificationKind
	Level int   // New level, for NotifyLevelUp
	Badge Badge // Unlocked badge, for NotifyBadge
}

// Listener receives store notifications. Listeners are invoked
// synchronously after the triggering mutation and must not call back
// into the store.
type Listener func(Notification)

// Store accumulates XP and badge unlocks across all games. It is shared by
// every session the process serves, so all access is mutex-guarded.
type Store struct {
	mu        sync.RWMutex
	xp        int
	badges    []Badge
	byID      map[string]int
	listeners []Listener
	now       func() time.Time
	results   map[string]gameRecord
}

// gameRecord tracks per-game outcomes used for badge conditions.
type gameRecord struct {
	plays    int
	wins     int
	topScore int
}

// NewStore creates a store initialized with the default badge catalog.
func NewStore() *Store {
	return newStoreWithClock(time.Now)
}

func newStoreWithClock(now func() time.Time) *Store {
	s := &Store{
		byID:    make(map[string]int),
		now:     now,
		results: make(map[string]gameRecord),
	}
	for _, b := range defaultCatalog() {
		s.byID[b.ID] = len(s.badges)
		s.badges = append(s.badges, b)
	}
	return s
}

// Subscribe registers a listener for level-up and badge notifications.
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// XP returns the accumulated experience points.
func (s *Store) XP() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.xp
}

// Level returns the current level, always a pure function of XP.
func (s *Store) Level() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return levelFor(s.xp)
}

// levelFor computes the level for a given XP total.
func levelFor(xp int) int {
	return xp/XPPerLevel + 1
}

// AddXP adds experience points. On a level increase it emits a one-time
// level-up notification. Callers only ever add positive amounts; negative
// amounts are ignored.
func (s *Store) AddXP(amount int) {
	if amount <= 0 {
		return
	}

	s.mu.Lock()
	before := levelFor(s.xp)
	s.xp += amount
	after := levelFor(s.xp)

	var pending []Notification
	if after > before {
		pending = append(pending, Notification{Kind: NotifyLevelUp, Level: after})
		pending = append(pending, s.unlockLocked("scholar", func() bool { return after >= 5 })...)
	}
	listeners := s.listeners
	s.mu.Unlock()

	notify(listeners, pending)
}

// UnlockBadge unlocks the badge with the given id and emits a one-time
// notification. Unlocking an already-unlocked or unknown badge id is a
// silent no-op.
func (s *Store) UnlockBadge(id string) {
	s.mu.Lock()
	pending := s.unlockLocked(id, nil)
	listeners := s.listeners
	s.mu.Unlock()

	notify(listeners, pending)
}

// unlockLocked stamps a badge if it exists, is still locked, and the
// optional condition holds. Caller must hold s.mu.
func (s *Store) unlockLocked(id string, cond func() bool) []Notification {
	i, ok := s.byID[id]
	if !ok {
		return nil
	}
	if s.badges[i].UnlockedAt != nil {
		return nil
	}
	if cond != nil && !cond() {
		return nil
	}
	ts := s.now()
	s.badges[i].UnlockedAt = &ts
	return []Notification{{Kind: NotifyBadge, Badge: s.badges[i]}}
}

// Badges returns a copy of the catalog in display order.
func (s *Store) Badges() []Badge {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Badge, len(s.badges))
	copy(out, s.badges)
	return out
}

// Badge returns the badge with the given id.
func (s *Store) Badge(id string) (Badge, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return Badge{}, false
	}
	return s.badges[i], true
}

// RecordResult records a finished game session and unlocks any badges
// whose conditions are now met.
func (s *Store) RecordResult(gameID string, score int, won bool) {
	s.mu.Lock()
	rec := s.results[gameID]
	rec.plays++
	if won {
		rec.wins++
	}
	if score > rec.topScore {
		rec.topScore = score
	}
	s.results[gameID] = rec

	var pending []Notification
	if won {
		pending = append(pending, s.unlockLocked("first-win", nil)...)
		if id, ok := winBadges[gameID]; ok {
			pending = append(pending, s.unlockLocked(id, nil)...)
		}
	}
	if score >= 100 {
		pending = append(pending, s.unlockLocked("centurion", nil)...)
	}
	listeners := s.listeners
	s.mu.Unlock()

	notify(listeners, pending)
}

func notify(listeners []Listener, pending []Notification) {
	for _, n := range pending {
		for _, l := range listeners {
			l(n)
		}
	}
}
