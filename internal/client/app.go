package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-employee-registry/internal/logger"
	"github.com/MKhiriev/go-employee-registry/internal/tui"
	"github.com/MKhiriev/go-employee-registry/internal/workers"
)

var ErrNoUI = errors.New("client ui is not provided")

var _ Client = (*App)(nil)

// UI is the interactive front of the client.
type UI interface {
	// Run blocks until the user quits or ctx is cancelled.
	Run(ctx context.Context) error
}

// App owns the client process lifecycle: background workers start before
// the UI and are drained after it exits, then local storages are closed.
type App struct {
	ui       UI
	workers  *workers.Workers
	storages io.Closer
	logger   *logger.Logger
}

// NewApp assembles the application. bg and storages may be nil.
func NewApp(ui UI, bg *workers.Workers, storages io.Closer, log *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, ErrNoUI
	}
	if bg == nil {
		bg = workers.NewWorkers()
	}
	if log == nil {
		log = logger.Nop()
	}

	return &App{ui: ui, workers: bg, storages: storages, logger: log}, nil
}

// Run implements [Client]. SIGINT and SIGTERM cancel the UI context.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.logger.Info().Msg("starting client")
	a.workers.Run()
	defer a.shutdown()

	err := a.ui.Run(ctx)
	if err == nil || errors.Is(err, tui.ErrUserQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return fmt.Errorf("ui: %w", err)
}

func (a *App) shutdown() {
	// незаписанные действия дописываются до закрытия хранилищ
	a.workers.Stop()

	if a.storages != nil {
		if err := a.storages.Close(); err != nil {
			a.logger.Err(err).Str("func", "App.shutdown").Msg("failed to close client storages")
		}
	}
	a.logger.Info().Msg("client stopped")
}
