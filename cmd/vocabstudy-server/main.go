package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/vocabstudy/internal/bootstrap"
	"github.com/at-ishikawa/vocabstudy/internal/config"
)

const configEnv = "VOCABSTUDY_CONFIG"

var configFile string

func main() {
	rootCmd := &cobra.Command{
		Use:           "vocabstudy-server",
		Short:         "Vocabulary study HTTP API server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path. Defaults to $VOCABSTUDY_CONFIG")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}
	return bootstrap.RunServer(ctx, cfg)
}

func loadConfig() (*config.Config, error) {
	path := configFile
	if path == "" {
		path = os.Getenv(configEnv)
	}
	loader, err := config.NewConfigLoader(path)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}
