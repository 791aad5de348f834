// Package bootstrap builds the application's components from configuration and manages their lifecycle.
package bootstrap

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

const shutdownTimeout = 10 * time.Second

// App runs a long-lived function and calls shutdown hooks when it is interrupted.
type App struct {
	mu    sync.Mutex
	hooks []func(ctx context.Context) error
}

func NewApp() *App {
	return &App{}
}

// AddShutdownHook registers fn to run on shutdown. Hooks run in reverse registration order.
func (a *App) AddShutdownHook(fn func(ctx context.Context) error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hooks = append(a.hooks, fn)
}

// Run executes run until it returns or the process receives SIGINT or SIGTERM.
// Shutdown hooks run once either happens, and their errors are joined with the error from run.
func (a *App) Run(ctx context.Context, run func(ctx context.Context) error) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(ctx)
	}()

	select {
	case <-ctx.Done():
		return a.shutdown()
	case err := <-errCh:
		return errors.Join(err, a.shutdown())
	}
}

func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	a.mu.Lock()
	hooks := make([]func(ctx context.Context) error, len(a.hooks))
	copy(hooks, a.hooks)
	a.mu.Unlock()

	var errs []error
	for i := len(hooks) - 1; i >= 0; i-- {
		if err := hooks[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
