package stocks

import (
	"math/rand"

	"github.com/mkamenov/eduquest/internal/config"
)

// holding is one tradable instrument plus the player's position in it.
type holding struct {
	Symbol  string
	Name    string
	Price   float64
	Prev    float64 // Price before the last market update
	Shares  int
	AvgCost float64
}

// market simulates prices with a bounded random walk.
type market struct {
	holdings   []holding
	tickEvery  int
	volatility float64
	rng        *rand.Rand
}

func newMarket(cfg config.StocksMarket, seed int64) *market {
	m := &market{
		tickEvery:  cfg.TickEvery,
		volatility: cfg.Volatility,
		rng:        rand.New(rand.NewSource(seed)),
	}
	for _, s := range cfg.Symbols {
		m.holdings = append(m.holdings, holding{
			Symbol: s.Symbol,
			Name:   s.Name,
			Price:  s.StartPrice,
			Prev:   s.StartPrice,
		})
	}
	return m
}

// step advances the market by one tick, updating prices every tickEvery
// ticks. Prices never drop below 1.0.
func (m *market) step(tick int) bool {
	if m.tickEvery <= 0 || tick%m.tickEvery != 0 {
		return false
	}
	for i := range m.holdings {
		h := &m.holdings[i]
		h.Prev = h.Price
		move := (m.rng.Float64()*2 - 1) * m.volatility
		h.Price *= 1 + move
		if h.Price < 1 {
			h.Price = 1
		}
	}
	return true
}

// buy adds a lot to a position at the current price, updating the
// average cost basis. Returns false when cash does not cover the lot.
func (h *holding) buy(lot int, cash *float64) bool {
	cost := h.Price * float64(lot)
	if cost > *cash {
		return false
	}
	*cash -= cost
	total := h.AvgCost*float64(h.Shares) + cost
	h.Shares += lot
	h.AvgCost = total / float64(h.Shares)
	return true
}

// sell closes up to one lot at the current price. Returns the number of
// shares sold, zero when there is no position.
func (h *holding) sell(lot int, cash *float64) int {
	if h.Shares == 0 {
		return 0
	}
	n := lot
	if n > h.Shares {
		n = h.Shares
	}
	*cash += h.Price * float64(n)
	h.Shares -= n
	if h.Shares == 0 {
		h.AvgCost = 0
	}
	return n
}
