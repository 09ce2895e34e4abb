package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"StockPulse/internal/domain/models"
	"StockPulse/internal/domain/repository"
	xhttp "StockPulse/pkg/http"
)

// REST is a provider speaking to the Yahoo v8 chart and v7 quote JSON
// endpoints directly.
type REST struct {
	baseURL   string
	userAgent string
	client    *xhttp.Client
}

// NewREST creates a provider rooted at baseURL, e.g.
// https://query1.finance.yahoo.com.
func NewREST(baseURL, userAgent string, client *xhttp.Client) *REST {
	if client == nil {
		client = xhttp.NewClient()
	}
	return &REST{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		client:    client,
	}
}

func (p *REST) Name() string { return "rest" }

type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *apiError `json:"error"`
	} `json:"chart"`
}

type quoteResponse struct {
	QuoteResponse struct {
		Result []struct {
			Symbol                      string  `json:"symbol"`
			ShortName                   string  `json:"shortName"`
			LongName                    string  `json:"longName"`
			RegularMarketPrice          float64 `json:"regularMarketPrice"`
			MarketCap                   float64 `json:"marketCap"`
			TrailingPE                  float64 `json:"trailingPE"`
			PriceToBook                 float64 `json:"priceToBook"`
			TrailingAnnualDividendYield float64 `json:"trailingAnnualDividendYield"`
			FiftyTwoWeekHigh            float64 `json:"fiftyTwoWeekHigh"`
			FiftyTwoWeekLow             float64 `json:"fiftyTwoWeekLow"`
			AverageDailyVolume3Month    int64   `json:"averageDailyVolume3Month"`
			Beta                        float64 `json:"beta"`
		} `json:"result"`
		Error *apiError `json:"error"`
	} `json:"quoteResponse"`
}

type apiError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

func (e *apiError) Error() string {
	return fmt.Sprintf("yahoo api error %s: %s", e.Code, e.Description)
}

// FetchQuoteInfo reads the v7 quote of symbol. Sector and industry are not
// part of that payload and stay empty.
func (p *REST) FetchQuoteInfo(ctx context.Context, symbol string) (*models.QuoteInfo, error) {
	sym := strings.ToUpper(symbol)

	var resp quoteResponse
	err := p.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:      xhttp.MethodGet,
		URL:         p.baseURL + "/v7/finance/quote",
		Headers:     p.headers(),
		QueryParams: map[string][]string{"symbols": {sym}},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("yahoo quote %s: %w", sym, err)
	}
	if resp.QuoteResponse.Error != nil {
		return nil, fmt.Errorf("yahoo quote %s: %w", sym, resp.QuoteResponse.Error)
	}
	if len(resp.QuoteResponse.Result) == 0 {
		return nil, fmt.Errorf("yahoo quote %s: %w", sym, repository.ErrNoData)
	}

	q := resp.QuoteResponse.Result[0]
	name := q.LongName
	if name == "" {
		name = q.ShortName
	}
	return &models.QuoteInfo{
		Symbol:        sym,
		Name:          name,
		CurrentPrice:  q.RegularMarketPrice,
		MarketCap:     q.MarketCap,
		PERatio:       q.TrailingPE,
		PBRatio:       q.PriceToBook,
		DividendYield: q.TrailingAnnualDividendYield,
		High52Week:    q.FiftyTwoWeekHigh,
		Low52Week:     q.FiftyTwoWeekLow,
		AvgVolume:     q.AverageDailyVolume3Month,
		Beta:          q.Beta,
	}, nil
}

// FetchHistory reads daily v8 chart bars in [start, end].
func (p *REST) FetchHistory(ctx context.Context, symbol string, start, end time.Time) ([]models.Bar, error) {
	sym := strings.ToUpper(symbol)

	var resp chartResponse
	err := p.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:  xhttp.MethodGet,
		URL:     p.baseURL + "/v8/finance/chart/" + url.PathEscape(sym),
		Headers: p.headers(),
		QueryParams: map[string][]string{
			"period1":  {strconv.FormatInt(start.Unix(), 10)},
			"period2":  {strconv.FormatInt(end.Unix(), 10)},
			"interval": {"1d"},
		},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("yahoo chart %s: %w", sym, err)
	}
	if resp.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo chart %s: %w", sym, resp.Chart.Error)
	}
	if len(resp.Chart.Result) == 0 || len(resp.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo chart %s: %w", sym, repository.ErrNoData)
	}

	result := resp.Chart.Result[0]
	q := result.Indicators.Quote[0]
	bars := make([]models.Bar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		c := at(q.Close, i)
		if c == nil {
			continue // holidays and halted sessions
		}
		b := models.Bar{
			Date:  time.Unix(ts, 0),
			Open:  deref(at(q.Open, i), *c),
			High:  deref(at(q.High, i), *c),
			Low:   deref(at(q.Low, i), *c),
			Close: *c,
		}
		if v := at(q.Volume, i); v != nil {
			b.Volume = *v
		}
		bars = append(bars, b)
	}

	bars = normalizeBars(bars)
	if len(bars) == 0 {
		return nil, fmt.Errorf("yahoo chart %s: %w", sym, repository.ErrNoData)
	}
	return bars, nil
}

func (p *REST) headers() map[string]string {
	if p.userAgent == "" {
		return nil
	}
	return map[string]string{"User-Agent": p.userAgent}
}

func at[T any](s []*T, i int) *T {
	if i < len(s) {
		return s[i]
	}
	return nil
}

func deref(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
