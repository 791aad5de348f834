package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/at-ishikawa/vocabstudy/internal/config"
	"github.com/at-ishikawa/vocabstudy/internal/server"
)

// RunServer serves the HTTP API on cfg.Server.Port until ctx ends or the process is interrupted.
func RunServer(ctx context.Context, cfg *config.Config) error {
	app := NewApp()

	vocab, err := NewVocabulary(cfg)
	if err != nil {
		return fmt.Errorf("NewVocabulary() > %w", err)
	}
	app.AddShutdownHook(func(context.Context) error {
		return vocab.Close()
	})

	var opts []server.Option
	users, err := NewUsers(ctx, cfg)
	if err != nil {
		_ = vocab.Close()
		return fmt.Errorf("NewUsers() > %w", err)
	}
	if users != nil {
		opts = append(opts, server.WithUsers(users.Service, users.Sessions))
		app.AddShutdownHook(func(context.Context) error {
			return users.Close()
		})
	} else {
		slog.Default().Info("no database is configured, account routes are disabled")
	}

	srv := server.NewHTTPServer(
		fmt.Sprintf(":%d", cfg.Server.Port),
		server.NewServer(cfg, vocab.Service, opts...).Handler(),
	)
	app.AddShutdownHook(srv.Shutdown)

	return app.Run(ctx, func(ctx context.Context) error {
		slog.Default().Info("starting server", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("srv.ListenAndServe() > %w", err)
		}
		return nil
	})
}
