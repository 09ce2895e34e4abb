package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"StockPulse/internal/domain/models"
	domrepo "StockPulse/internal/domain/repository"
	"StockPulse/internal/services/fallback"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 14, 12, 0, 0, 0, time.UTC)

type fakeProvider struct {
	info    *models.QuoteInfo
	infoErr error
	bars    []models.Bar
	barsErr error

	gotStart, gotEnd time.Time
	gotSymbol        string
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) FetchQuoteInfo(_ context.Context, symbol string) (*models.QuoteInfo, error) {
	f.gotSymbol = symbol
	return f.info, f.infoErr
}

func (f *fakeProvider) FetchHistory(_ context.Context, symbol string, start, end time.Time) ([]models.Bar, error) {
	f.gotSymbol, f.gotStart, f.gotEnd = symbol, start, end
	return f.bars, f.barsErr
}

type call struct {
	op, outcome string
}

type fakeMetrics struct {
	mu        sync.Mutex
	calls     []call
	fallbacks []string
	prices    map[string]float64
}

func (m *fakeMetrics) RecordProviderCall(op, outcome string, _ float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call{op, outcome})
}

func (m *fakeMetrics) RecordFallback(op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fallbacks = append(m.fallbacks, op)
}

func (m *fakeMetrics) RecordLastPrice(symbol, source string, price float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.prices == nil {
		m.prices = map[string]float64{}
	}
	m.prices[symbol+"/"+source] = price
}

func newUseCase(p domrepo.MarketDataProvider, m *fakeMetrics) *StockUseCase {
	return NewStockUseCase(p, fallback.NewGenerator(fallback.NewSeededSource(1)), m,
		WithClock(func() time.Time { return testNow }),
		WithHistoryLimits(90, 365),
	)
}

func liveBars(n int) []models.Bar {
	bars := make([]models.Bar, n)
	for i := range bars {
		c := 100 + float64(i)
		bars[i] = models.Bar{Date: testNow.AddDate(0, 0, i-n), Open: c, High: c + 1, Low: c - 1, Close: c, Volume: 10}
	}
	return bars
}

func TestInfoLive(t *testing.T) {
	p := &fakeProvider{info: &models.QuoteInfo{Name: "Apple Inc.", CurrentPrice: 190.1}}
	m := &fakeMetrics{}
	res := newUseCase(p, m).Info(context.Background(), "aapl")

	require.False(t, res.IsFallback())
	assert.Equal(t, "", res.Source())
	assert.NoError(t, res.Cause)
	assert.Equal(t, "AAPL", p.gotSymbol)
	assert.Equal(t, "AAPL", res.Data.Symbol)
	assert.Equal(t, 190.1, res.Data.CurrentPrice)
	assert.Nil(t, res.Data.Change)
	assert.Equal(t, []call{{"info", "ok"}}, m.calls)
	assert.Empty(t, m.fallbacks)
	assert.Equal(t, 190.1, m.prices["AAPL/live"])
}

func TestInfoFallback(t *testing.T) {
	boom := errors.New("yahoo down")
	tests := []struct {
		name string
		p    *fakeProvider
		want error
	}{
		{name: "error", p: &fakeProvider{infoErr: boom}, want: boom},
		{name: "nil info", p: &fakeProvider{}, want: domrepo.ErrNoData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &fakeMetrics{}
			res := newUseCase(tt.p, m).Info(context.Background(), "nflx")

			require.True(t, res.IsFallback())
			assert.Equal(t, models.SourceMock, res.Source())
			assert.ErrorIs(t, res.Cause, tt.want)
			assert.Equal(t, "NFLX", res.Data.Symbol)
			assert.Equal(t, "Netflix Inc.", res.Data.Name)
			assert.Equal(t, 485.23, res.Data.CurrentPrice)
			assert.NotNil(t, res.Data.Change)
			assert.Equal(t, []call{{"info", "error"}}, m.calls)
			assert.Equal(t, []string{"info"}, m.fallbacks)
			assert.Equal(t, 485.23, m.prices["NFLX/mock"])
		})
	}
}

func TestHistoryLive(t *testing.T) {
	p := &fakeProvider{bars: liveBars(30)}
	m := &fakeMetrics{}
	res := newUseCase(p, m).History(context.Background(), "msft", 30)

	require.False(t, res.IsFallback())
	assert.Equal(t, "MSFT", res.Data.Symbol)
	require.Len(t, res.Data.History, 30)
	assert.Equal(t, 129.0, res.Data.CurrentPrice)
	assert.InDelta(t, 1.0, res.Data.Change, 1e-9)
	assert.Equal(t, testNow, p.gotEnd)
	assert.Equal(t, testNow.AddDate(0, 0, -30), p.gotStart)
	assert.Equal(t, []call{{"history", "ok"}}, m.calls)
}

func TestHistoryFallback(t *testing.T) {
	tests := []struct {
		name string
		p    *fakeProvider
	}{
		{name: "error", p: &fakeProvider{barsErr: errors.New("timeout")}},
		{name: "empty", p: &fakeProvider{bars: []models.Bar{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &fakeMetrics{}
			res := newUseCase(tt.p, m).History(context.Background(), "tsla", 30)

			require.True(t, res.IsFallback())
			assert.Error(t, res.Cause)
			assert.Equal(t, "TSLA", res.Data.Symbol)
			// 2024-05-15 .. 2024-06-14 has 23 weekdays.
			require.Len(t, res.Data.History, 23)
			last := res.Data.History[len(res.Data.History)-1]
			assert.Equal(t, "2024-06-14", last.Date)
			assert.Equal(t, last.Close, res.Data.CurrentPrice)
			assert.Equal(t, []string{"history"}, m.fallbacks)
		})
	}
}

func TestHistoryDays(t *testing.T) {
	p := &fakeProvider{bars: liveBars(5)}
	uc := newUseCase(p, &fakeMetrics{})

	uc.History(context.Background(), "AAPL", 0)
	assert.Equal(t, testNow.AddDate(0, 0, -90), p.gotStart)

	uc.History(context.Background(), "AAPL", -4)
	assert.Equal(t, testNow.AddDate(0, 0, -90), p.gotStart)

	uc.History(context.Background(), "AAPL", 10000)
	assert.Equal(t, testNow.AddDate(0, 0, -365), p.gotStart)
}

func TestNilProviderFallsBack(t *testing.T) {
	uc := NewStockUseCase(nil, nil, nil)
	assert.Equal(t, "none", uc.ProviderName())

	res := uc.History(context.Background(), "AAPL", 10)
	assert.True(t, res.IsFallback())
	assert.NotEmpty(t, res.Data.History)

	info := uc.Info(context.Background(), "AAPL")
	assert.True(t, info.IsFallback())
}

func TestSearch(t *testing.T) {
	m := &fakeMetrics{}
	uc := newUseCase(&fakeProvider{}, m)

	rows, err := uc.Search(context.Background(), "aa")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "AAPL", rows[0].Symbol)
	assert.Equal(t, []string{"search"}, m.fallbacks)

	rows, err = uc.Search(context.Background(), "zzz")
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)

	for _, q := range []string{"", "A"} {
		_, err = uc.Search(context.Background(), q)
		assert.ErrorIs(t, err, ErrQueryTooShort, "query %q", q)
	}
}

func TestSearchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newUseCase(&fakeProvider{}, &fakeMetrics{}).Search(ctx, "AAPL")
	assert.ErrorIs(t, err, context.Canceled)
}
