package shapes

import (
	"testing"

	"github.com/mkamenov/eduquest/internal/core"
	"github.com/mkamenov/eduquest/internal/engine"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     777,
	}
}

func startGame(g *Game) {
	in := core.NewInputFrame()
	in.Set(core.ActionSelect)
	g.Step(in)
}

// tapShape points the cursor at a specific shape and presses select.
func tapShape(g *Game, shape engine.Entity) []core.Event {
	g.cursorX = int(shape.X)
	g.cursorY = int(shape.Y)
	in := core.NewInputFrame()
	in.Set(core.ActionSelect)
	return g.Step(in).Events
}

// tapCorrect retags a shape to the current target and taps it.
func tapCorrect(g *Game) []core.Event {
	if g.field.Len() == 0 {
		g.field.SpawnOne()
	}
	shape := g.field.Entities()[0]
	g.field.Retag(shape.ID, g.target)
	return tapShape(g, shape)
}

// tapWrong retags a shape to a non-target kind and taps it.
func tapWrong(g *Game) []core.Event {
	if g.field.Len() == 0 {
		g.field.SpawnOne()
	}
	shape := g.field.Entities()[0]
	for _, k := range kinds {
		if k.name != g.target {
			g.field.Retag(shape.ID, k.name)
			break
		}
	}
	shape, _ = g.field.Find(func(e engine.Entity) bool { return e.ID == shape.ID })
	return tapShape(g, shape)
}

func TestDeterminism(t *testing.T) {
	cfg := testConfig()

	g1 := New()
	g1.Reset(cfg)
	g2 := New()
	g2.Reset(cfg)

	startGame(g1)
	startGame(g2)

	in := core.NewInputFrame()
	for i := 0; i < 200; i++ {
		in.Clear()
		if i%13 == 0 {
			in.Set(core.ActionSelect)
		}
		g1.Step(in)
		g2.Step(in)
	}

	if g1.sh.Score() != g2.sh.Score() {
		t.Errorf("score mismatch: %d vs %d", g1.sh.Score(), g2.sh.Score())
	}
	if g1.target != g2.target {
		t.Errorf("target mismatch: %q vs %q", g1.target, g2.target)
	}
	if g1.field.Len() != g2.field.Len() {
		t.Errorf("shape count mismatch: %d vs %d", g1.field.Len(), g2.field.Len())
	}
}

func TestScoringSequence(t *testing.T) {
	// 20 correct taps and 5 wrong taps interleaved should land on
	// 20*10 - 5*5 = 175 with the default config.
	g := New()
	g.Reset(testConfig())
	startGame(g)

	wrong := 0
	for i := 0; i < 19; i++ {
		tapCorrect(g)
		if wrong < 5 {
			tapWrong(g)
			wrong++
		}
	}
	tapCorrect(g) // 20th correct tap ends the session

	want := 20*g.gameCfg.Gameplay.CorrectPoints - 5*g.gameCfg.Gameplay.Penalty
	if got := g.sh.Score(); got != want {
		t.Errorf("score = %d, want %d", got, want)
	}
	if st := g.State(); !st.GameOver || !st.Won {
		t.Errorf("state = %+v, want won game over after %d taps", st, g.gameCfg.Gameplay.TargetTaps)
	}
}

func TestCorrectTapAdvancesTarget(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	startGame(g)

	before := g.target
	events := tapCorrect(g)

	if g.target == before {
		t.Error("target did not advance after a correct tap")
	}
	var sawCorrect bool
	for _, ev := range events {
		if ev.Kind == core.EventCorrect {
			sawCorrect = true
			if ev.XP != g.gameCfg.Gameplay.XPPerTap {
				t.Errorf("XP = %d, want %d", ev.XP, g.gameCfg.Gameplay.XPPerTap)
			}
		}
	}
	if !sawCorrect {
		t.Errorf("events = %+v, want a correct event", events)
	}
}

func TestWrongTapKeepsTarget(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	startGame(g)

	g.sh.AddScore(30)
	before := g.target
	events := tapWrong(g)

	if g.target != before {
		t.Errorf("target advanced from %q to %q after a wrong tap", before, g.target)
	}
	if got, want := g.sh.Score(), 30-g.gameCfg.Gameplay.Penalty; got != want {
		t.Errorf("score = %d, want %d", got, want)
	}
	if len(events) != 1 || events[0].Kind != core.EventIncorrect {
		t.Errorf("events = %+v, want a single incorrect event", events)
	}
}

func TestPenaltyClampsAtZero(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	startGame(g)

	for i := 0; i < 4; i++ {
		tapWrong(g)
	}
	if g.sh.Score() != 0 {
		t.Errorf("score = %d, want 0", g.sh.Score())
	}
}

func TestTargetAlwaysPresentOnBoard(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	startGame(g)

	in := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		g.Step(in)
		found := g.field.Count(func(e engine.Entity) bool { return e.Tag == g.target })
		if g.field.Len() > 0 && found == 0 {
			t.Fatalf("tick %d: target %q missing from board", i, g.target)
		}
	}
}

func TestTimerExpiryEndsSessionAsLoss(t *testing.T) {
	g := New()
	g.gameCfg.Gameplay.TimerSec = 1
	g.Reset(testConfig())
	startGame(g)

	in := core.NewInputFrame()
	for i := 0; i <= testConfig().TickRate; i++ {
		g.Step(in)
	}

	if st := g.State(); !st.GameOver || st.Won {
		t.Errorf("state = %+v, want lost game over after timeout", st)
	}
}
