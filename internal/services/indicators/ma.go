package indicators

import "gonum.org/v1/gonum/stat"

// TrailingMean is the simple moving average of closes[i-n+1..i]. Until n
// closes exist it returns closes[i] itself.
func TrailingMean(closes []float64, i, n int) float64 {
	if i < n-1 {
		return closes[i]
	}
	return stat.Mean(closes[i-n+1:i+1], nil)
}
