// Package indicators computes per-bar technical indicators over a daily
// OHLCV series. Every function is causal: the value at index i only looks
// at closes[0..i].
package indicators

import "StockPulse/internal/domain/models"

// Compute returns one IndicatorSet per bar, in the same order.
func Compute(bars []models.Bar) []models.IndicatorSet {
	return ComputeCloses(models.Closes(bars))
}

// ComputeCloses is Compute over a bare close series.
func ComputeCloses(closes []float64) []models.IndicatorSet {
	out := make([]models.IndicatorSet, len(closes))
	for i := range closes {
		out[i] = models.IndicatorSet{
			MA5:  TrailingMean(closes, i, 5),
			MA10: TrailingMean(closes, i, 10),
			MA20: TrailingMean(closes, i, 20),
			RSI:  RSI(closes, i),
			MACD: MACD(closes, i),
		}
	}
	return out
}
