package indicators

const (
	RSIPeriod = 14

	rsiNeutral = 50.0
)

// RSI is the 14-period relative strength index at index i.
//
// The window is the 14 closes [i-13, i]; its first slot has no predecessor
// inside the window, so only 13 differences contribute while both averages
// still divide by the full period. A window without losses uses RS = 1.
// Before index 14 the neutral value 50 is returned.
func RSI(closes []float64, i int) float64 {
	if i < RSIPeriod {
		return rsiNeutral
	}

	var gain, loss float64
	for j := i - RSIPeriod + 2; j <= i; j++ {
		d := closes[j] - closes[j-1]
		if d > 0 {
			gain += d
		} else {
			loss -= d
		}
	}
	avgGain := gain / RSIPeriod
	avgLoss := loss / RSIPeriod

	rs := 1.0
	if avgLoss != 0 {
		rs = avgGain / avgLoss
	}
	return 100 - 100/(1+rs)
}
