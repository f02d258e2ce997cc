package root

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Shubham12sharma/Assign-Alert/internal/server"
	"github.com/Shubham12sharma/Assign-Alert/internal/store"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API (one endpoint per command)",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
			slog.SetDefault(logger)

			svc, cfg, err := openService(cmd)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}

			slog.Info("starting server", "addr", addr, "user", svc.User())
			return server.New(svc, store.Members()).Run(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")

	return cmd
}
