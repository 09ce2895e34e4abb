// Package fallback produces synthetic market data used when the provider
// cannot serve a request. Output is plausible, not realistic.
package fallback

import (
	"math"
	"strings"
	"time"

	"StockPulse/internal/domain/models"
	"StockPulse/pkg/util"

	"github.com/shopspring/decimal"
)

// Generator builds synthetic history, quote info and search rows.
type Generator struct {
	rnd RandomSource
}

// NewGenerator returns a Generator drawing from rnd. A nil rnd uses
// NewRandomSource.
func NewGenerator(rnd RandomSource) *Generator {
	if rnd == nil {
		rnd = NewRandomSource()
	}
	return &Generator{rnd: rnd}
}

// History walks a random price path over the weekdays in [now-days, now].
// Dates are calendar days in now's location.
func (g *Generator) History(symbol string, days int, now time.Time) []models.Bar {
	if days < 0 {
		days = 0
	}
	start, _ := util.Lookback(now, days)
	price := BasePrice(symbol) * 0.95

	bars := make([]models.Bar, 0, days*5/7+2)
	for d := 0; d <= days; d++ {
		day := start.AddDate(0, 0, d)
		if !util.IsWeekday(day) {
			continue
		}

		price *= 1 + uniform(g.rnd, -0.02, 0.02)
		open := price * uniform(g.rnd, 0.99, 1.01)
		high := math.Max(open, price) * uniform(g.rnd, 1.0, 1.015)
		low := math.Min(open, price) * uniform(g.rnd, 0.985, 1.0)
		volume := randInt(g.rnd, 10_000_000, 60_000_000)

		bars = append(bars, models.Bar{
			Date:   time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location()),
			Open:   round2(open),
			High:   round2(high),
			Low:    round2(low),
			Close:  round2(price),
			Volume: int64(volume),
		})
	}
	return bars
}

// Info returns a synthetic quote snapshot. Unlike live data it also
// carries Change and ChangePercent.
func (g *Generator) Info(symbol string) models.QuoteInfo {
	sym := strings.ToUpper(symbol)
	profile := Profile(sym)
	price := BasePrice(sym)

	change := round2(uniform(g.rnd, -5, 5))
	changePct := round2(uniform(g.rnd, -2, 2))

	return models.QuoteInfo{
		Symbol:        sym,
		Name:          profile.Name,
		Sector:        profile.Sector,
		Industry:      profile.Industry,
		CurrentPrice:  price,
		MarketCap:     price * float64(randInt(g.rnd, 1, 50)) * 1e9,
		PERatio:       profile.PERatio,
		PBRatio:       profile.PBRatio,
		DividendYield: uniform(g.rnd, 0, 2),
		High52Week:    price * uniform(g.rnd, 1.1, 1.3),
		Low52Week:     price * uniform(g.rnd, 0.7, 0.9),
		AvgVolume:     int64(randInt(g.rnd, 10_000_000, 50_000_000)),
		Beta:          round2(uniform(g.rnd, 0.5, 2.0)),
		Change:        &change,
		ChangePercent: &changePct,
	}
}

// Search returns the universe entries whose symbol contains query,
// case-insensitively, in universe order. The result is never nil.
func (g *Generator) Search(query string) []models.SearchResult {
	q := strings.ToUpper(query)
	out := make([]models.SearchResult, 0)
	for _, e := range SearchUniverse() {
		if !strings.Contains(e.Symbol, q) {
			continue
		}
		change := round2(uniform(g.rnd, -5, 5))
		out = append(out, models.SearchResult{
			Symbol:        e.Symbol,
			Name:          e.Name,
			Price:         e.Price,
			Change:        change,
			ChangePercent: round2(change / e.Price * 100),
			MarketCap:     e.Price * float64(randInt(g.rnd, 1, 50)) * 1e9,
		})
	}
	return out
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
