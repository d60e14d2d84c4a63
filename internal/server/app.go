// Package server initializes and runs the application: it selects a storage
// backend, wires the service layer, and serves the HTTP API until an OS
// signal asks for shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/GURUTIKI/presently/internal/logging"
	"github.com/GURUTIKI/presently/internal/server/config"
	"github.com/GURUTIKI/presently/internal/server/httpapi"
	"github.com/GURUTIKI/presently/internal/server/repositories/repomanager"
	"github.com/GURUTIKI/presently/internal/server/services"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	manager repomanager.RepositoryManager
	server  *httpapi.Server
}

func NewApp(c *config.Config) (*App, error) {

	slog := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slog)

	m, err := repomanager.New(c)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	us := services.NewUserService(m)
	ls := services.NewListService(m)
	is := services.NewItemService(m)
	ims := services.NewImageService(c)

	srv := httpapi.NewServer(c.EndpointAddr, c.CORSOrigin, logger, us, ls, is, ims)

	return &App{config: c, logger: logger, manager: m, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	if err := app.manager.Init(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		return
	}
	defer func() {
		if err := app.manager.Close(context.Background()); err != nil {
			app.logger.Error(ctx, err.Error())
		}
	}()

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
