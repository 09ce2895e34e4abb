package repository

import (
	"context"
	"time"

	"StockPulse/internal/domain/models"
)

// MarketDataProvider is the external market-data source. Implementations
// return an error (never a silent empty value) when they cannot serve.
type MarketDataProvider interface {
	Name() string
	FetchQuoteInfo(ctx context.Context, symbol string) (*models.QuoteInfo, error)
	FetchHistory(ctx context.Context, symbol string, start, end time.Time) ([]models.Bar, error)
}

type Metrics interface {
	RecordProviderCall(op, outcome string, seconds float64)
	RecordFallback(op string)
	RecordLastPrice(symbol, source string, price float64)
}
