package yahoo

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"StockPulse/internal/domain/models"
	"StockPulse/internal/domain/repository"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/equity"
)

// FinanceGo is a provider backed by github.com/piquette/finance-go.
type FinanceGo struct{}

// NewFinanceGo configures the finance-go backend with the given request
// timeout. finance-go keeps its HTTP client in package state, so the last
// call wins.
func NewFinanceGo(timeout time.Duration) *FinanceGo {
	finance.SetHTTPClient(&http.Client{Timeout: timeout})
	return &FinanceGo{}
}

func (p *FinanceGo) Name() string { return "financego" }

// FetchQuoteInfo reads the equity quote of symbol. Sector, industry and
// beta are not part of the quote endpoint and stay empty.
func (p *FinanceGo) FetchQuoteInfo(ctx context.Context, symbol string) (*models.QuoteInfo, error) {
	sym := strings.ToUpper(symbol)
	q, err := await(ctx, func() (*finance.Equity, error) { return equity.Get(sym) })
	if err != nil {
		return nil, fmt.Errorf("financego equity %s: %w", sym, err)
	}
	if q == nil {
		return nil, fmt.Errorf("financego equity %s: %w", sym, repository.ErrNoData)
	}

	name := q.LongName
	if name == "" {
		name = q.ShortName
	}
	return &models.QuoteInfo{
		Symbol:        sym,
		Name:          name,
		CurrentPrice:  q.RegularMarketPrice,
		MarketCap:     float64(q.MarketCap),
		PERatio:       q.TrailingPE,
		PBRatio:       q.PriceToBook,
		DividendYield: q.TrailingAnnualDividendYield,
		High52Week:    q.FiftyTwoWeekHigh,
		Low52Week:     q.FiftyTwoWeekLow,
		AvgVolume:     int64(q.AverageDailyVolume3Month),
	}, nil
}

// FetchHistory reads daily bars in [start, end].
func (p *FinanceGo) FetchHistory(ctx context.Context, symbol string, start, end time.Time) ([]models.Bar, error) {
	sym := strings.ToUpper(symbol)
	bars, err := await(ctx, func() ([]models.Bar, error) {
		iter := chart.Get(&chart.Params{
			Symbol:   sym,
			Start:    datetime.New(&start),
			End:      datetime.New(&end),
			Interval: datetime.OneDay,
		})

		var out []models.Bar
		for iter.Next() {
			b := iter.Bar()
			out = append(out, models.Bar{
				Date:   time.Unix(int64(b.Timestamp), 0),
				Open:   b.Open.InexactFloat64(),
				High:   b.High.InexactFloat64(),
				Low:    b.Low.InexactFloat64(),
				Close:  b.Close.InexactFloat64(),
				Volume: int64(b.Volume),
			})
		}
		return out, iter.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("financego chart %s: %w", sym, err)
	}

	bars = normalizeBars(bars)
	if len(bars) == 0 {
		return nil, fmt.Errorf("financego chart %s: %w", sym, repository.ErrNoData)
	}
	return bars, nil
}

// await runs fn, which cannot be cancelled, and stops waiting for it once
// ctx is done.
func await[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	type result struct {
		v   T
		err error
	}
	ch := make(chan result, 1)
	go func() {
		v, err := fn()
		ch <- result{v: v, err: err}
	}()

	select {
	case r := <-ch:
		return r.v, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
