package shapes

import (
	"math/rand"

	"github.com/mkamenov/eduquest/internal/core"
	"github.com/mkamenov/eduquest/internal/engine"
)

// kind is a shape family a board piece can belong to.
type kind struct {
	name  string
	glyph rune
	color core.Color
}

var kinds = []kind{
	{"circle", '●', core.ColorBrightYellow},
	{"square", '■', core.ColorBrightBlue},
	{"triangle", '▲', core.ColorBrightGreen},
	{"star", '★', core.ColorBrightMagenta},
	{"heart", '♥', core.ColorBrightRed},
}

// kindByName returns the display data for a shape kind.
func kindByName(name string) (kind, bool) {
	for _, k := range kinds {
		if k.name == name {
			return k, true
		}
	}
	return kind{}, false
}

// spawnShape produces a drifting shape of a random kind on a random row.
func (g *Game) spawnShape(rng *rand.Rand, bounds core.Rect) engine.Entity {
	speed := g.gameCfg.Board.MinSpeed +
		rng.Float64()*(g.gameCfg.Board.MaxSpeed-g.gameCfg.Board.MinSpeed)
	if rng.Intn(2) == 0 {
		speed = -speed
	}

	x := bounds.X
	if speed < 0 {
		x = bounds.Right() - 1
	}

	return engine.Entity{
		X:   float64(x),
		Y:   float64(bounds.Y + rng.Intn(core.Max(bounds.H, 1))),
		VX:  speed,
		W:   1,
		H:   1,
		Tag: kinds[rng.Intn(len(kinds))].name,
	}
}

// moveShape advances a shape by its velocity scaled by current difficulty.
func (g *Game) moveShape(e *engine.Entity, tick int) {
	scale := g.diff.Speed(1.0, g.sh.Score(), tick)
	e.X += e.VX * scale
}

// ensureTargetPresent guarantees at least one shape of the target kind is
// on the board, retagging a random shape when none is.
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

// nextTarget picks a new target kind, avoiding an immediate repeat.
func (g *Game) nextTarget() {
	for {
		next := kinds[g.field.Rand().Intn(len(kinds))].name
		if next != g.target {
			g.target = next
			return
		}
	}
}
