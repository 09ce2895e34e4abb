// Package series assembles a bar series and its indicators into the
// payload served by the history endpoint.
package series

import (
	"strings"

	"StockPulse/internal/domain/models"
	"StockPulse/internal/services/indicators"
	"StockPulse/pkg/util"
)

// Summarize merges bars with their indicators. Bars must be ascending by
// date. Change and ChangePercent stay zero for fewer than two bars.
func Summarize(symbol string, bars []models.Bar) models.SeriesSummary {
	sets := indicators.Compute(bars)

	history := make([]models.HistoryBar, len(bars))
	for i, b := range bars {
		history[i] = models.HistoryBar{
			Date:         util.FormatDate(b.Date),
			Open:         b.Open,
			High:         b.High,
			Low:          b.Low,
			Close:        b.Close,
			Volume:       b.Volume,
			IndicatorSet: sets[i],
		}
	}

	out := models.SeriesSummary{
		Symbol:  strings.ToUpper(symbol),
		History: history,
	}
	if n := len(bars); n > 0 {
		out.CurrentPrice = bars[n-1].Close
		if n >= 2 {
			prev := bars[n-2].Close
			out.Change = out.CurrentPrice - prev
			if prev != 0 {
				out.ChangePercent = out.Change / prev * 100
			}
		}
	}
	return out
}
