// Package engine provides a generic entity simulation shared by all
// mini-games: spawning, movement, boundary handling, and hit-testing.
// Each game supplies only its rules (spawn policy, movement, win
// conditions) instead of reimplementing its own loops.
package engine

import (
	"math/rand"

	"github.com/mkamenov/eduquest/internal/core"
)

// Entity is a transient, positioned, interactive object within a game
// session. Tag carries the game's discriminator: a letter, a shape kind,
// a ticker symbol.
type Entity struct {
	ID   int
	X, Y float64 // Position in screen cells (top-left of hitbox)
	VX   float64 // Horizontal velocity in cells per tick
	VY   float64 // Vertical velocity in cells per tick
	W, H int     // Hitbox size in cells
	Tag  string
}

// Rect returns the entity's collision rectangle.
func (e Entity) Rect() core.Rect {
	return core.NewRect(int(e.X), int(e.Y), e.W, e.H)
}

// BoundsPolicy controls what happens when an entity crosses the field edge.
type BoundsPolicy int

const (
	// Despawn removes entities that leave the field entirely.
	Despawn BoundsPolicy = iota
	// WrapX re-enters entities on the opposite horizontal edge.
	WrapX
)

// SpawnFunc produces a new entity with randomized position, velocity, and
// tag within the given bounds. The entity's ID is assigned by the field.
type SpawnFunc func(rng *rand.Rand, bounds core.Rect) Entity

// MoveFunc advances an entity by one tick. The default is linear motion
// (position += velocity); games override it for drifting or bobbing.
type MoveFunc func(e *Entity, tick int)

// Config parameterizes a Field.
type Config struct {
	Bounds      core.Rect    // Playable area entities live in
	MaxEntities int          // Density cap: spawning pauses at this count
	SpawnEvery  int          // Ticks between spawn attempts
	Boundary     BoundsPolicy // Boundary behavior
	Spawn       SpawnFunc    // Required
	Move        MoveFunc     // Optional, defaults to linear motion
}

// Field runs the spawn and move loops for a set of entities.
// It is pure logic: deterministic for a given seed and call sequence.
type Field struct {
	cfg      Config
	rng      *rand.Rand
	entities []Entity
	nextID   int
	tick     int
}

// NewField creates a field with the given configuration and RNG seed.
func NewField(cfg Config, seed int64) *Field {
	f := &Field{cfg: cfg}
	f.Reset(seed)
	return f
}

// Reset clears all entities and reseeds the RNG.
func (f *Field) Reset(seed int64) {
	f.entities = f.entities[:0]
	f.rng = rand.New(rand.NewSource(seed))
	f.nextID = 1
	f.tick = 0
}

// SetBounds updates the playable area (screen resize).
func (f *Field) SetBounds(b core.Rect) {
	f.cfg.Bounds = b
}

// Bounds returns the current playable area.
func (f *Field) Bounds() core.Rect {
	return f.cfg.Bounds
}

// Step advances the simulation by one tick: moves every entity, applies
// the boundary policy, and spawns a new entity when the cadence allows
// and the density cap is not reached.
func (f *Field) Step() {
	f.tick++

	// Move loop
	for i := range f.entities {
		if f.cfg.Move != nil {
			f.cfg.Move(&f.entities[i], f.tick)
		} else {
			f.entities[i].X += f.entities[i].VX
			f.entities[i].Y += f.entities[i].VY
		}
	}

	// Boundary handling
	switch f.cfg.Boundary {
	case WrapX:
		left := float64(f.cfg.Bounds.X)
		right := float64(f.cfg.Bounds.Right())
		for i := range f.entities {
			e := &f.entities[i]
			if e.X+float64(e.W) < left {
				e.X = right
			} else if e.X > right {
				e.X = left - float64(e.W)
			}
		}
	default:
		kept := f.entities[:0]
		for _, e := range f.entities {
			if e.Rect().Intersects(f.cfg.Bounds) {
				kept = append(kept, e)
			}
		}
		f.entities = kept
	}

	// Spawn loop
	if f.cfg.SpawnEvery > 0 && f.tick%f.cfg.SpawnEvery == 0 {
		f.SpawnOne()
	}
}

// SpawnOne spawns a single entity immediately, honoring the density cap.
// Returns false if the field is full.
func (f *Field) SpawnOne() bool {
	if f.cfg.MaxEntities > 0 && len(f.entities) >= f.cfg.MaxEntities {
		return false
	}
	e := f.cfg.Spawn(f.rng, f.cfg.Bounds)
	e.ID = f.nextID
	f.nextID++
	f.entities = append(f.entities, e)
	return true
}

// Fill spawns entities until the density cap is reached.
// Used to populate the field at game start.
func (f *Field) Fill() {
	for f.SpawnOne() {
	}
}

// Entities returns the live entity list. Callers must not retain the slice
// across Step calls.
func (f *Field) Entities() []Entity {
	return f.entities
}

// Len returns the number of live entities.
func (f *Field) Len() int {
	return len(f.entities)
}

// Tick returns the number of ticks stepped since the last reset.
func (f *Field) Tick() int {
	return f.tick
}

// At returns the first entity whose hitbox contains the point (x, y).
// Returns false if no entity is there.
func (f *Field) At(x, y int) (Entity, bool) {
	for _, e := range f.entities {
		if e.Rect().Contains(x, y) {
			return e, true
		}
	}
	return Entity{}, false
}

// Find returns the first entity matching the predicate.
func (f *Field) Find(pred func(Entity) bool) (Entity, bool) {
	for _, e := range f.entities {
		if pred(e) {
			return e, true
		}
	}
	return Entity{}, false
}

// Count returns the number of entities matching the predicate.
func (f *Field) Count(pred func(Entity) bool) int {
	n := 0
	for _, e := range f.entities {
		if pred(e) {
			n++
		}
	}
	return n
}

// Remove deletes the entity with the given ID.
// Returns false if no such entity exists.
func (f *Field) Remove(id int) bool {
	for i, e := range f.entities {
		if e.ID == id {
			f.entities = append(f.entities[:i], f.entities[i+1:]...)
			return true
		}
	}
	return false
}

// Retag changes the tag of the entity with the given ID. Games use this to
// guarantee an answerable field, e.g. forcing one fish to carry the current
// target letter.
func (f *Field) Retag(id int, tag string) bool {
	for i := range f.entities {
		if f.entities[i].ID == id {
			f.entities[i].Tag = tag
			return true
		}
	}
	return false
}

// Rand exposes the field's RNG so games share one deterministic stream.
func (f *Field) Rand() *rand.Rand {
	return f.rng
}
