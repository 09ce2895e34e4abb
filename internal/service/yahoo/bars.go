// Package yahoo implements repository.MarketDataProvider against Yahoo
// Finance, either through piquette/finance-go or the raw JSON endpoints.
package yahoo

import (
	"sort"
	"time"

	"StockPulse/internal/domain/models"
)

// normalizeBars orders bars by day, keeps the last bar seen for each
// calendar day (UTC) and drops bars without a usable close.
func normalizeBars(in []models.Bar) []models.Bar {
	byDay := make(map[time.Time]models.Bar, len(in))
	for _, b := range in {
		if b.Close <= 0 {
			continue
		}
		d := b.Date.UTC()
		b.Date = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		byDay[b.Date] = b
	}

	out := make([]models.Bar, 0, len(byDay))
	for _, b := range byDay {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}
