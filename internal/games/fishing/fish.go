package fishing

import (
	"math/rand"

	"github.com/mkamenov/eduquest/internal/core"
	"github.com/mkamenov/eduquest/internal/engine"
)

// letters is the pool of target letters.
const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Fish glyphs by swim direction.
const (
	fishRight = '»'
	fishLeft  = '«'
)

// spawnFish produces a fish on a random row with a random letter, speed,
// and direction. Speeds are in cells per tick before difficulty scaling.
func (g *Game) spawnFish(rng *rand.Rand, bounds core.Rect) engine.Entity {
	speed := g.gameCfg.Pond.MinSpeed +
		rng.Float64()*(g.gameCfg.Pond.MaxSpeed-g.gameCfg.Pond.MinSpeed)
	if rng.Intn(2) == 0 {
		speed = -speed
	}

	x := bounds.X
	if speed < 0 {
		x = bounds.Right() - fishWidth
	}

	return engine.Entity{
		X:   float64(x),
		Y:   float64(bounds.Y + rng.Intn(core.Max(bounds.H, 1))),
		VX:  speed,
		W:   fishWidth,
		H:   1,
		Tag: string(letters[rng.Intn(len(letters))]),
	}
}

// fishWidth is the hitbox width: glyph, space, letter.
const fishWidth = 3

// moveFish advances a fish by its velocity scaled by current difficulty.
func (g *Game) moveFish(e *engine.Entity, tick int) {
	scale := g.diff.Speed(1.0, g.sh.Score(), tick)
	e.X += e.VX * scale
}

// ensureTargetPresent guarantees at least one fish carries the current
// target letter, retagging a random fish when none does.
func (g *Game) ensureTargetPresent() {
	if g.field.Len() == 0 {
		return
	}
	if g.field.Count(func(e engine.Entity) bool { return e.Tag == g.target }) > 0 {
		return
	}
	pick := g.field.Entities()[g.field.Rand().Intn(g.field.Len())]
	g.field.Retag(pick.ID, g.target)
}

// nextTarget picks a new target letter, avoiding an immediate repeat.
func (g *Game) nextTarget() {
	for {
		next := string(letters[g.field.Rand().Intn(len(letters))])
		if next != g.target {
			g.target = next
			return
		}
	}
}
