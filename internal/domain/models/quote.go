package models

// QuoteInfo is the descriptive and valuation snapshot of one symbol.
// Change and ChangePercent are only set by the fallback source.
type QuoteInfo struct {
	Symbol        string   `json:"symbol"`
	Name          string   `json:"name"`
	Sector        string   `json:"sector"`
	Industry      string   `json:"industry"`
	CurrentPrice  float64  `json:"currentPrice"`
	MarketCap     float64  `json:"marketCap"`
	PERatio       float64  `json:"peRatio"`
	PBRatio       float64  `json:"pbRatio"`
	DividendYield float64  `json:"dividendYield"`
	High52Week    float64  `json:"52WeekHigh"`
	Low52Week     float64  `json:"52WeekLow"`
	AvgVolume     int64    `json:"avgVolume"`
	Beta          float64  `json:"beta"`
	Change        *float64 `json:"change,omitempty"`
	ChangePercent *float64 `json:"changePercent,omitempty"`
}

// SearchResult is one row of the symbol search.
type SearchResult struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	MarketCap     float64 `json:"marketCap"`
}
