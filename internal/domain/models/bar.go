package models

import "time"

// Bar is one trading day's OHLCV summary.
type Bar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// IndicatorSet holds the technical indicators attached to a bar. Every
// field is always populated; warm-up bars carry fallback values.
type IndicatorSet struct {
	MA5  float64 `json:"ma5"`
	MA10 float64 `json:"ma10"`
	MA20 float64 `json:"ma20"`
	RSI  float64 `json:"rsi"`
	MACD float64 `json:"macd"`
}

// HistoryBar is a bar merged with its indicators, as served to clients.
type HistoryBar struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
	IndicatorSet
}

// SeriesSummary is the history endpoint payload.
type SeriesSummary struct {
	Symbol        string       `json:"symbol"`
	CurrentPrice  float64      `json:"currentPrice"`
	Change        float64      `json:"change"`
	ChangePercent float64      `json:"changePercent"`
	History       []HistoryBar `json:"history"`
}

// Closes extracts closing prices in order.
func Closes(bars []Bar) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Close
	}
	return out
}
