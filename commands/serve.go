package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"arcadetracker/api"
	"arcadetracker/telemetry"
)

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8000, or :$PORT)")
	v.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve [--addr <host:port>]",
	Short: "Runs the HTTP API.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		shutdown, err := telemetry.Setup(ctx, cfg.Otel.Endpoint, cfg.Otel.ServiceName, logger)
		if err != nil {
			return err
		}
		defer shutdown(context.Background())

		handler := api.NewHandler(newService(false), logger.Named("api"))
		router := api.NewRouter(handler, logger.Named("http"), cfg.Server.CORSOrigins)
		srv := api.NewServer(cfg.Server.Addr, router, cfg.Fetch.Timeout)
		return api.Serve(ctx, srv, logger)
	},
}
