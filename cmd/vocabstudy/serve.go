package main

import (
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/vocabstudy/internal/bootstrap"
)

func newServeCommand() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Server.Port = port
			}
			return bootstrap.RunServer(cmd.Context(), cfg)
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "Port to listen on. Defaults to server.port")
	return cmd
}
