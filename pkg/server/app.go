package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	xhttp "StockPulse/pkg/http"
	applogger "StockPulse/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// App encapsulates the application lifecycle.
type App struct {
	httpServer *xhttp.Server
	logger     *applogger.Logger
}

// New creates a new App around an HTTP server.
func New(httpServer *xhttp.Server, logger *applogger.Logger) *App {
	if logger == nil {
		logger = applogger.Nop()
	}
	return &App{httpServer: httpServer, logger: logger}
}

// Run serves until ctx is cancelled or SIGINT/SIGTERM arrives, then shuts
// the server down within its shutdown timeout.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return a.httpServer.ListenAndServe()
	})

	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.httpServer.ShutdownTimeout())
		defer cancel()
		if err := a.httpServer.Stop(shutdownCtx); err != nil {
			a.logger.Error("http shutdown error", applogger.Error(err))
			return err
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	a.logger.Info("shutdown complete")
	return nil
}
