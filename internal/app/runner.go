package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"go.uber.org/dig"

	"delivery-dispatch/internal/logx"
	"delivery-dispatch/internal/transport/kafka"
)

const shutdownTimeout = 15 * time.Second

// Runner runs the HTTP API
type Runner struct {
	runFn func(*dig.Container) error
	exit  func(int)
}

// NewRunner returns a new Runner
func NewRunner() *Runner {
	return &Runner{runFn: run, exit: os.Exit}
}

// MustRun starts the HTTP servers using the provided DI container and blocks until shutdown
func (r *Runner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil {
		return
	}
	logger := containerLogger(container)
	switch {
	case errors.Is(err, context.Canceled):
		logger.Info("shutdown requested, exiting")
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("startup aborted: startup timeout exceeded")
	default:
		logger.Error("run error", logx.Err(err))
		if r.exit != nil {
			r.exit(1)
		}
	}
}

func containerLogger(container *dig.Container) logx.Logger {
	var logger logx.Logger
	if err := container.Invoke(func(l logx.Logger) { logger = l }); err != nil || logger == nil {
		return logx.Nop()
	}
	return logger
}

type appIn struct {
	dig.In

	Ctx    context.Context
	Logger logx.Logger
	Server *http.Server
	Debug  *http.Server `name:"debug_server" optional:"true"`
	Stores *Stores
	Sink   *kafka.FeedSink
}

func run(container *dig.Container) error {
	return container.Invoke(appRun)
}

func appRun(in appIn) error {
	errCh := make(chan error, 2)
	startServer(in.Server, in.Logger, "api", errCh)
	if in.Debug != nil {
		startServer(in.Debug, in.Logger, "debug", errCh)
	}

	var runErr error
	select {
	case <-in.Ctx.Done():
		in.Logger.Info("shutting down dispatch-api")
		runErr = in.Ctx.Err()
	case err := <-errCh:
		runErr = err
	}

	gracefulShutdown(in.Server, in.Logger, shutdownTimeout)
	if in.Debug != nil {
		gracefulShutdown(in.Debug, in.Logger, shutdownTimeout)
	}
	closeResources(in.Stores, in.Sink, in.Logger)
	return runErr
}

func startServer(server *http.Server, logger logx.Logger, name string, errCh chan<- error) {
	go func() {
		logger.Info("listening", logx.String("server", name), logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("%s server: %w", name, err)
		}
	}()
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Warn("graceful shutdown error", logx.String("addr", srv.Addr), logx.Err(err))
	}
}

func closeResources(stores *Stores, sink *kafka.FeedSink, logger logx.Logger) {
	if err := sink.Close(); err != nil {
		logger.Error("feed sink close error", logx.Err(err))
	}
	stores.Close()
	_ = logger.Sync()
}
