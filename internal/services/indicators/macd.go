package indicators

const (
	MACDFast = 12
	MACDSlow = 26
)

// MACD is EMA(12) - EMA(26) of close at index i, or 0 before index 12.
//
// Both EMAs are recomputed from scratch on each call. While fewer than 26
// bars exist they run over the whole prefix [0, i]; afterwards over the
// trailing 26-bar window [i-25, i]. The value is therefore not a carried
// forward EMA and jumps when the window starts sliding.
func MACD(closes []float64, i int) float64 {
	if i < MACDFast {
		return 0
	}
	start := 0
	if i >= MACDSlow-1 {
		start = i - MACDSlow + 1
	}
	window := closes[start : i+1]
	return EMA(window, MACDFast) - EMA(window, MACDSlow)
}

// EMA returns the last value of the exponential moving average of values
// with smoothing 2/(span+1), seeded with the first value.
func EMA(values []float64, span int) float64 {
	if len(values) == 0 {
		return 0
	}
	alpha := 2.0 / float64(span+1)
	ema := values[0]
	for _, v := range values[1:] {
		ema = alpha*v + (1-alpha)*ema
	}
	return ema
}
