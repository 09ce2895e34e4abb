package fallback

import "strings"

// DefaultBasePrice is used for symbols missing from the reference table.
const DefaultBasePrice = 150.00

// CompanyProfile is the curated descriptive data of a known symbol.
type CompanyProfile struct {
	Name     string
	Sector   string
	Industry string
	PERatio  float64
	PBRatio  float64
}

// SearchEntry is one row of the search universe.
type SearchEntry struct {
	Symbol string
	Name   string
	Price  float64
}

var basePrices = map[string]float64{
	"AAPL":  185.92,
	"MSFT":  378.85,
	"GOOGL": 140.87,
	"AMZN":  155.33,
	"TSLA":  248.50,
	"NVDA":  495.22,
	"META":  474.99,
	"NFLX":  485.23,
}

var profiles = map[string]CompanyProfile{
	"AAPL":  {Name: "Apple Inc.", Sector: "Technology", Industry: "Consumer Electronics", PERatio: 28.5, PBRatio: 45.2},
	"MSFT":  {Name: "Microsoft Corporation", Sector: "Technology", Industry: "Software", PERatio: 35.2, PBRatio: 12.8},
	"GOOGL": {Name: "Alphabet Inc.", Sector: "Technology", Industry: "Internet Services", PERatio: 24.5, PBRatio: 5.8},
	"AMZN":  {Name: "Amazon.com Inc.", Sector: "Consumer Cyclical", Industry: "Internet Retail", PERatio: 62.3, PBRatio: 8.9},
	"TSLA":  {Name: "Tesla Inc.", Sector: "Consumer Cyclical", Industry: "Auto Manufacturers", PERatio: 72.5, PBRatio: 10.2},
	"NVDA":  {Name: "NVIDIA Corporation", Sector: "Technology", Industry: "Semiconductors", PERatio: 65.3, PBRatio: 38.5},
	"META":  {Name: "Meta Platforms Inc.", Sector: "Technology", Industry: "Internet Services", PERatio: 33.2, PBRatio: 6.8},
	"NFLX":  {Name: "Netflix Inc.", Sector: "Communication", Industry: "Entertainment", PERatio: 45.0, PBRatio: 12.5},
}

// Order matters: search results follow it.
var searchUniverse = []SearchEntry{
	{Symbol: "AAPL", Name: "Apple Inc.", Price: 185.92},
	{Symbol: "MSFT", Name: "Microsoft Corporation", Price: 378.85},
	{Symbol: "GOOGL", Name: "Alphabet Inc.", Price: 140.87},
	{Symbol: "AMZN", Name: "Amazon.com Inc.", Price: 155.33},
	{Symbol: "TSLA", Name: "Tesla Inc.", Price: 248.50},
	{Symbol: "META", Name: "Meta Platforms Inc.", Price: 474.99},
	{Symbol: "NVDA", Name: "NVIDIA Corporation", Price: 495.22},
	{Symbol: "NFLX", Name: "Netflix Inc.", Price: 485.23},
	{Symbol: "AMD", Name: "Advanced Micro Devices", Price: 125.43},
	{Symbol: "INTC", Name: "Intel Corporation", Price: 45.67},
}

// BasePrice returns the reference price of symbol, case-insensitively.
func BasePrice(symbol string) float64 {
	if p, ok := basePrices[strings.ToUpper(symbol)]; ok {
		return p
	}
	return DefaultBasePrice
}

// Profile returns the curated profile of symbol, or a generic one built
// from the symbol itself.
func Profile(symbol string) CompanyProfile {
	sym := strings.ToUpper(symbol)
	if p, ok := profiles[sym]; ok {
		return p
	}
	return CompanyProfile{
		Name:     sym + " Corporation",
		Sector:   "Technology",
		Industry: "General",
		PERatio:  25.0,
		PBRatio:  3.5,
	}
}

// SearchUniverse returns a copy of the searchable symbols in display order.
func SearchUniverse() []SearchEntry {
	out := make([]SearchEntry, len(searchUniverse))
	copy(out, searchUniverse)
	return out
}
