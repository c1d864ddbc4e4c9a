package engine

import (
	"math/rand"
	"testing"

	"github.com/mkamenov/eduquest/internal/core"
)

func testSpawn(rng *rand.Rand, bounds core.Rect) Entity {
	return Entity{
		X:   float64(bounds.X + rng.Intn(bounds.W)),
		Y:   float64(bounds.Y + rng.Intn(bounds.H)),
		VX:  1,
		W:   2,
		H:   1,
		Tag: "a",
	}
}

func newTestField(policy BoundsPolicy) *Field {
	return NewField(Config{
		Bounds:      core.NewRect(0, 0, 40, 20),
		MaxEntities: 5,
		SpawnEvery:  10,
		Boundary:    policy,
		Spawn:       testSpawn,
	}, 42)
}

func TestFieldSpawnCadenceAndCap(t *testing.T) {
	f := newTestField(WrapX)

	// No spawns before the first cadence boundary
	for i := 0; i < 9; i++ {
		f.Step()
	}
	if f.Len() != 0 {
		t.Errorf("expected 0 entities after 9 ticks, got %d", f.Len())
	}

	f.Step() // Tick 10: first spawn
	if f.Len() != 1 {
		t.Errorf("expected 1 entity after 10 ticks, got %d", f.Len())
	}

	// Cap at MaxEntities no matter how long we run
	for i := 0; i < 200; i++ {
		f.Step()
	}
	if f.Len() != 5 {
		t.Errorf("expected density cap of 5, got %d", f.Len())
	}
}

func TestFieldLinearMotion(t *testing.T) {
	f := NewField(Config{
		Bounds:   core.NewRect(0, 0, 40, 20),
		Boundary: WrapX,
		Spawn:    testSpawn,
	}, 1)
	f.SpawnOne()

	start := f.Entities()[0].X
	f.Step()
	got := f.Entities()[0].X
	if got != start+1 {
		t.Errorf("entity should advance by VX per tick: was %f, now %f", start, got)
	}
}

func TestFieldWrapX(t *testing.T) {
	f := NewField(Config{
		Bounds:   core.NewRect(0, 0, 40, 20),
		Boundary: WrapX,
		Spawn: func(rng *rand.Rand, bounds core.Rect) Entity {
			return Entity{X: 39, Y: 5, VX: 3, W: 2, H: 1, Tag: "a"}
		},
	}, 1)
	f.SpawnOne()

	f.Step() // X = 42, past the right edge
	e := f.Entities()[0]
	if e.X > 0 {
		t.Errorf("entity should wrap to the left edge, got X=%f", e.X)
	}
	if f.Len() != 1 {
		t.Errorf("wrapped entity should not despawn, len=%d", f.Len())
	}
}

func TestFieldDespawn(t *testing.T) {
	f := NewField(Config{
		Bounds:   core.NewRect(0, 0, 40, 20),
		Boundary: Despawn,
		Spawn: func(rng *rand.Rand, bounds core.Rect) Entity {
			return Entity{X: 39, Y: 5, VX: 5, W: 2, H: 1, Tag: "a"}
		},
	}, 1)
	f.SpawnOne()

	f.Step() // Leaves the bounds entirely
	if f.Len() != 0 {
		t.Errorf("entity outside bounds should despawn, len=%d", f.Len())
	}
}

func TestFieldDeterminism(t *testing.T) {
	f1 := newTestField(WrapX)
	f2 := newTestField(WrapX)

	for i := 0; i < 100; i++ {
		f1.Step()
		f2.Step()
	}

	if f1.Len() != f2.Len() {
		t.Fatalf("entity counts differ: %d vs %d", f1.Len(), f2.Len())
	}
	for i := range f1.Entities() {
		a, b := f1.Entities()[i], f2.Entities()[i]
		if a.X != b.X || a.Y != b.Y || a.Tag != b.Tag {
			t.Errorf("entity %d differs: %+v vs %+v", i, a, b)
		}
	}
}

func TestFieldHitTest(t *testing.T) {
	f := newTestField(WrapX)
	f.SpawnOne()
	e := f.Entities()[0]

	got, ok := f.At(int(e.X), int(e.Y))
	if !ok || got.ID != e.ID {
		t.Error("At should find the entity under its own position")
	}

	if _, ok := f.At(-5, -5); ok {
		t.Error("At should miss outside any hitbox")
	}
}

func TestFieldRemoveRetag(t *testing.T) {
	f := newTestField(WrapX)
	f.SpawnOne()
	f.SpawnOne()
	id := f.Entities()[0].ID

	if !f.Retag(id, "z") {
		t.Fatal("Retag should find the entity")
	}
	if e, ok := f.Find(func(e Entity) bool { return e.Tag == "z" }); !ok || e.ID != id {
		t.Error("Find should locate the retagged entity")
	}

	if !f.Remove(id) {
		t.Fatal("Remove should delete the entity")
	}
	if f.Remove(id) {
		t.Error("second Remove of the same ID should report false")
	}
	if f.Len() != 1 {
		t.Errorf("expected 1 entity after removal, got %d", f.Len())
	}
}

func TestFieldFill(t *testing.T) {
	f := newTestField(WrapX)
	f.Fill()
	if f.Len() != 5 {
		t.Errorf("Fill should reach the density cap, got %d", f.Len())
	}
}

func TestCountdownFiresOnce(t *testing.T) {
	c := NewCountdown(1, 60) // 1 second at 60 ticks/sec

	fired := 0
	for i := 0; i < 180; i++ {
		if c.Tick() {
			fired++
		}
	}

	if fired != 1 {
		t.Errorf("countdown should fire exactly once, fired %d times", fired)
	}
	if !c.Expired() {
		t.Error("countdown should be expired")
	}
}

func TestCountdownSecondsLeft(t *testing.T) {
	c := NewCountdown(2, 60)

	if c.SecondsLeft() != 2 {
		t.Errorf("SecondsLeft = %d, expected 2", c.SecondsLeft())
	}

	for i := 0; i < 60; i++ {
		c.Tick()
	}
	if c.SecondsLeft() != 1 {
		t.Errorf("SecondsLeft after 60 ticks = %d, expected 1", c.SecondsLeft())
	}
}

func TestCountdownInactive(t *testing.T) {
	c := NewCountdown(0, 60)

	if c.Active() {
		t.Error("zero-duration countdown should be inactive")
	}
	for i := 0; i < 1000; i++ {
		if c.Tick() {
			t.Fatal("inactive countdown should never fire")
		}
	}
}

func TestCountdownReset(t *testing.T) {
	c := NewCountdown(1, 60)
	for i := 0; i < 120; i++ {
		c.Tick()
	}

	c.Reset(1)
	if c.Expired() {
		t.Error("Reset should clear expiry")
	}

	fired := 0
	for i := 0; i < 120; i++ {
		if c.Tick() {
			fired++
		}
	}
	if fired != 1 {
		t.Errorf("countdown should fire once after reset, fired %d times", fired)
	}
}
