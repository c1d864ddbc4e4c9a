// Package stocks implements the Stock Market game: a timed trading
// session against a simulated market. The player buys and sells fixed
// lots and tries to end the session above the starting cash.
package stocks

import (
	"fmt"
	"math"

	"github.com/mkamenov/eduquest/internal/config"
	"github.com/mkamenov/eduquest/internal/core"
	"github.com/mkamenov/eduquest/internal/registry"
	"github.com/mkamenov/eduquest/internal/shell"
)

var configPath string

// SetConfigPath sets a custom config file path for the next game instance.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the Stock Market game logic.
type Game struct {
	config  core.RuntimeConfig
	gameCfg config.StocksConfig
	sh      *shell.Shell
	mkt     *market

	cash   float64
	cursor int // Selected instrument row
	tick   int
}

// New creates a new Stock Market game instance.
func New() *Game {
	gameCfg, err := config.LoadStocks(configPath)
	if err != nil {
		gameCfg = config.DefaultStocksConfig()
	}
	return &Game{gameCfg: gameCfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "stocks"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Stock Market"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg

	if g.sh == nil {
		g.sh = shell.New(g.Title(), cfg, g.gameCfg.Gameplay.SessionSec)
	} else {
		g.sh.Reset(cfg, g.gameCfg.Gameplay.SessionSec)
	}

	g.mkt = newMarket(g.gameCfg.Market, cfg.Seed)
	g.cash = g.gameCfg.Gameplay.StartingCash
	g.cursor = 0
	g.tick = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events []core.Event

	sig := g.sh.Step(in)
	if !sig.Run {
		if in.Has(core.ActionRestart) && g.sh.Phase() == shell.PhaseGameOver {
			g.Reset(g.config)
		}
		return core.StepResult{State: g.State()}
	}

	if sig.TimedOut {
		return core.StepResult{State: g.State(), Events: g.closeSession()}
	}

	if in.Has(core.ActionUp) && g.cursor > 0 {
		g.cursor--
	}
	if in.Has(core.ActionDown) && g.cursor < len(g.mkt.holdings)-1 {
		g.cursor++
	}

	if in.Has(core.ActionSelect) {
		events = append(events, g.tryBuy()...)
	}
	if in.Has(core.ActionSell) {
		events = append(events, g.trySell()...)
	}

	g.tick++
	g.mkt.step(g.tick)
	g.syncScore()

	return core.StepResult{State: g.State(), Events: events}
}

// tryBuy buys one lot of the selected instrument.
func (g *Game) tryBuy() []core.Event {
	h := &g.mkt.holdings[g.cursor]
	lot := g.gameCfg.Gameplay.LotSize
	if !h.buy(lot, &g.cash) {
		return []core.Event{{
			Kind: core.EventIncorrect,
			Text: fmt.Sprintf("Not enough cash for %d %s", lot, h.Symbol),
		}}
	}
	return []core.Event{{
		Kind: core.EventTrade,
		Text: fmt.Sprintf("Bought %d %s at %.2f", lot, h.Symbol, h.Price),
	}}
}

// trySell sells up to one lot of the selected instrument.
func (g *Game) trySell() []core.Event {
	h := &g.mkt.holdings[g.cursor]
	price := h.Price
	profitable := price > h.AvgCost

	n := h.sell(g.gameCfg.Gameplay.LotSize, &g.cash)
	if n == 0 {
		return []core.Event{{
			Kind: core.EventIncorrect,
			Text: fmt.Sprintf("No %s shares to sell", h.Symbol),
		}}
	}

	ev := core.Event{
		Kind: core.EventTrade,
		Text: fmt.Sprintf("Sold %d %s at %.2f", n, h.Symbol, price),
	}
	if profitable {
		ev.XP = g.gameCfg.Gameplay.XPPerProfit
	}
	return []core.Event{ev}
}

// portfolioValue is cash plus all holdings at current market prices.
func (g *Game) portfolioValue() float64 {
	v := g.cash
	for _, h := range g.mkt.holdings {
		v += h.Price * float64(h.Shares)
	}
	return v
}

// syncScore mirrors the session profit into the shell score.
func (g *Game) syncScore() {
	profit := int(math.Round(g.portfolioValue() - g.gameCfg.Gameplay.StartingCash))
	if profit < 0 {
		profit = 0
	}
	g.sh.AddScore(profit - g.sh.Score())
}

// closeSession ends the trading session and settles the outcome.
func (g *Game) closeSession() []core.Event {
	value := g.portfolioValue()
	profit := value - g.gameCfg.Gameplay.StartingCash
	g.syncScore()
	g.sh.SetGameOver(profit > 0)

	if profit > 0 {
		return []core.Event{{
			Kind: core.EventWin,
			Text: fmt.Sprintf("Market closed: you made %.2f!", profit),
			XP:   g.gameCfg.Gameplay.XPPerProfit,
		}}
	}
	return []core.Event{{
		Kind: core.EventLoss,
		Text: fmt.Sprintf("Market closed: down %.2f", -profit),
	}}
}

// Render draws the market table and portfolio summary.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.sh.RenderChrome(dst)

	dst.DrawTextColored(2, 2,
		fmt.Sprintf("Cash: %.2f   Portfolio: %.2f", g.cash, g.portfolioValue()),
		core.ColorBrightYellow)

	header := fmt.Sprintf("  %-6s %-22s %10s %8s %10s", "SYM", "NAME", "PRICE", "SHARES", "AVG COST")
	dst.DrawTextColored(2, 4, header, core.ColorGray)

	for i, h := range g.mkt.holdings {
		y := 5 + i
		marker := "  "
		color := core.ColorDefault
		if i == g.cursor {
			marker = "> "
			color = core.ColorBrightCyan
		} else if h.Price > h.Prev {
			color = core.ColorBrightGreen
		} else if h.Price < h.Prev {
			color = core.ColorBrightRed
		}

		avg := "-"
		if h.Shares > 0 {
			avg = fmt.Sprintf("%.2f", h.AvgCost)
		}
		line := fmt.Sprintf("%s%-6s %-22s %10.2f %8d %10s",
			marker, h.Symbol, h.Name, h.Price, h.Shares, avg)
		dst.DrawTextColored(2, y, line, color)
	}

	dst.DrawTextColored(2, dst.Height()-1,
		"up/down pick stock · enter buy · s sell · p pause", core.ColorGray)

	g.sh.RenderOverlays(dst)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.sh.State()
}

// Register the game with the registry
func init() {
	registry.Register("stocks", func() registry.Game {
		return New()
	})
}
