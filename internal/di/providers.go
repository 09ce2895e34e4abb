package di

import (
	"fmt"

	"StockPulse/internal/domain/repository"
	"StockPulse/internal/handler/api"
	"StockPulse/internal/service/yahoo"
	"StockPulse/internal/services/fallback"
	"StockPulse/internal/usecase"
	"StockPulse/pkg/config"
	xhttp "StockPulse/pkg/http"
	applogger "StockPulse/pkg/logger"
	"StockPulse/pkg/metrics"
	"StockPulse/pkg/server"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l.With(applogger.String("env", cfg.Environment)), nil
}

// ProvideRegistry creates the Prometheus registry shared by the HTTP and
// provider metrics.
func ProvideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics(reg *prometheus.Registry) repository.Metrics {
	return metrics.New(reg)
}

// ProvideMarketDataProvider selects the Yahoo backend named in config.
func ProvideMarketDataProvider(cfg *config.Config) (repository.MarketDataProvider, error) {
	switch cfg.Provider.Kind {
	case config.ProviderFinanceGo:
		return yahoo.NewFinanceGo(cfg.Provider.Timeout), nil
	case config.ProviderREST:
		client := xhttp.NewClient(xhttp.WithTimeout(cfg.Provider.Timeout))
		return yahoo.NewREST(cfg.Provider.BaseURL, cfg.Provider.UserAgent, client), nil
	default:
		return nil, fmt.Errorf("unknown provider kind %q", cfg.Provider.Kind)
	}
}

// ProvideGenerator creates the fallback generator with a process-wide
// random source.
func ProvideGenerator() *fallback.Generator {
	return fallback.NewGenerator(fallback.NewRandomSource())
}

// ProvideStockUseCase creates the stock use case.
func ProvideStockUseCase(
	cfg *config.Config,
	provider repository.MarketDataProvider,
	gen *fallback.Generator,
	m repository.Metrics,
	l *applogger.Logger,
) *usecase.StockUseCase {
	return usecase.NewStockUseCase(provider, gen, m,
		usecase.WithHistoryLimits(cfg.History.DefaultDays, cfg.History.MaxDays),
		usecase.WithLogger(l.With(applogger.String("component", "stocks"))),
	)
}

// ProvideHTTPHandler creates the Echo route handler.
func ProvideHTTPHandler(l *applogger.Logger, uc *usecase.StockUseCase) xhttp.Handler {
	return api.NewStockEchoHandler(l, uc)
}

// ProvideHTTPServer creates the HTTP server.
func ProvideHTTPServer(cfg *config.Config, h xhttp.Handler, reg *prometheus.Registry, l *applogger.Logger) *xhttp.Server {
	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}
	return xhttp.NewServer(h,
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithCORSOrigins(cfg.Server.CORSOrigins),
		xhttp.WithMetrics(metricsPath, reg, reg),
		xhttp.WithLogger(l),
	)
}

// ProvideApp creates the application server.
func ProvideApp(srv *xhttp.Server, l *applogger.Logger) *server.App {
	return server.New(srv, l)
}
