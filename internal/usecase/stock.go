package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"StockPulse/internal/domain/models"
	domrepo "StockPulse/internal/domain/repository"
	"StockPulse/internal/services/fallback"
	"StockPulse/internal/services/series"
	applogger "StockPulse/pkg/logger"
	"StockPulse/pkg/util"
)

const (
	opInfo    = "info"
	opHistory = "history"
	opSearch  = "search"

	// MinQueryLength is the shortest accepted search query.
	MinQueryLength = 2
)

// ErrQueryTooShort is returned by Search for queries under MinQueryLength.
var ErrQueryTooShort = errors.New("query too short")

// StockUseCase serves quote info, indicator history and symbol search. A
// provider failure never surfaces: the result switches to the fallback
// branch with synthetic data.
type StockUseCase struct {
	provider    domrepo.MarketDataProvider
	generator   *fallback.Generator
	metrics     domrepo.Metrics
	logger      *applogger.Logger
	now         func() time.Time
	defaultDays int
	maxDays     int
}

// StockOption configures StockUseCase.
type StockOption func(*StockUseCase)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) StockOption {
	return func(uc *StockUseCase) { uc.now = now }
}

// WithHistoryLimits sets the days used when none is given and the upper bound.
func WithHistoryLimits(defaultDays, maxDays int) StockOption {
	return func(uc *StockUseCase) {
		uc.defaultDays = defaultDays
		uc.maxDays = maxDays
	}
}

// WithLogger sets the logger used for fallback warnings.
func WithLogger(l *applogger.Logger) StockOption {
	return func(uc *StockUseCase) { uc.logger = l }
}

func NewStockUseCase(provider domrepo.MarketDataProvider, gen *fallback.Generator, metrics domrepo.Metrics, opts ...StockOption) *StockUseCase {
	uc := &StockUseCase{
		provider:    provider,
		generator:   gen,
		metrics:     metrics,
		logger:      applogger.Nop(),
		now:         time.Now,
		defaultDays: 90,
		maxDays:     3650,
	}
	for _, opt := range opts {
		opt(uc)
	}
	if uc.generator == nil {
		uc.generator = fallback.NewGenerator(nil)
	}
	if uc.metrics == nil {
		uc.metrics = nopMetrics{}
	}
	return uc
}

// ProviderName reports the configured provider.
func (uc *StockUseCase) ProviderName() string {
	if uc.provider == nil {
		return "none"
	}
	return uc.provider.Name()
}

// Days resolves the requested lookback: non-positive means default, and
// anything above the limit is capped.
func (uc *StockUseCase) Days(days int) int {
	if days <= 0 {
		return uc.defaultDays
	}
	return util.ClampInt(days, 1, uc.maxDays)
}

// Info returns the quote snapshot of symbol.
func (uc *StockUseCase) Info(ctx context.Context, symbol string) models.Result[models.QuoteInfo] {
	sym := strings.ToUpper(symbol)

	info, err := uc.fetchInfo(ctx, sym)
	if err != nil {
		uc.fellBack(opInfo, sym, err)
		data := uc.generator.Info(sym)
		uc.metrics.RecordLastPrice(sym, models.SourceMock, data.CurrentPrice)
		return models.Fallback(data, err)
	}

	info.Symbol = sym
	uc.servedLive(opInfo, sym, info.CurrentPrice)
	return models.Live(*info)
}

// History returns the last days calendar days of bars with indicators.
func (uc *StockUseCase) History(ctx context.Context, symbol string, days int) models.Result[models.SeriesSummary] {
	sym := strings.ToUpper(symbol)
	days = uc.Days(days)
	now := uc.now().UTC()

	bars, err := uc.fetchHistory(ctx, sym, days, now)
	if err != nil {
		uc.fellBack(opHistory, sym, err, applogger.Int("days", days))
		summary := series.Summarize(sym, uc.generator.History(sym, days, now))
		uc.metrics.RecordLastPrice(sym, models.SourceMock, summary.CurrentPrice)
		return models.Fallback(summary, err)
	}

	summary := series.Summarize(sym, bars)
	uc.servedLive(opHistory, sym, summary.CurrentPrice, applogger.Int("bars", len(bars)))
	return models.Live(summary)
}

// Search matches query against the fixed symbol universe. Results are always
// synthetic.
func (uc *StockUseCase) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	if utf8.RuneCountInString(query) < MinQueryLength {
		return nil, ErrQueryTooShort
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	uc.metrics.RecordFallback(opSearch)
	return uc.generator.Search(query), nil
}

func (uc *StockUseCase) fetchInfo(ctx context.Context, sym string) (*models.QuoteInfo, error) {
	if uc.provider == nil {
		return nil, errNoProvider
	}
	start := time.Now()
	info, err := uc.provider.FetchQuoteInfo(ctx, sym)
	if err == nil && info == nil {
		err = domrepo.ErrNoData
	}
	uc.record(opInfo, start, err)
	return info, err
}

func (uc *StockUseCase) fetchHistory(ctx context.Context, sym string, days int, now time.Time) ([]models.Bar, error) {
	if uc.provider == nil {
		return nil, errNoProvider
	}
	from, to := util.Lookback(now, days)
	start := time.Now()
	bars, err := uc.provider.FetchHistory(ctx, sym, from, to)
	if err == nil && len(bars) == 0 {
		err = domrepo.ErrNoData
	}
	uc.record(opHistory, start, err)
	return bars, err
}

func (uc *StockUseCase) record(op string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	uc.metrics.RecordProviderCall(op, outcome, time.Since(start).Seconds())
}

func (uc *StockUseCase) fellBack(op, sym string, cause error, extra ...applogger.Field) {
	uc.metrics.RecordFallback(op)
	fields := append([]applogger.Field{
		applogger.String("operation", op),
		applogger.String("symbol", sym),
		applogger.Error(cause),
	}, extra...)
	uc.logger.Warn("provider unavailable, serving synthetic data", fields...)
}

func (uc *StockUseCase) servedLive(op, sym string, price float64, extra ...applogger.Field) {
	uc.metrics.RecordLastPrice(sym, models.OriginLive.String(), price)
	fields := append([]applogger.Field{
		applogger.String("operation", op),
		applogger.String("symbol", sym),
		applogger.Float64("price", price),
	}, extra...)
	uc.logger.Debug("served live data", fields...)
}

var errNoProvider = errors.New("no market-data provider configured")

type nopMetrics struct{}

func (nopMetrics) RecordProviderCall(string, string, float64) {}
func (nopMetrics) RecordFallback(string)                      {}
func (nopMetrics) RecordLastPrice(string, string, float64)    {}
