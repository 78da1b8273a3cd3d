package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/psinghania/packadvisor/internal/webserver"
)

func newServeCommand() *cobra.Command {
	var catalogPath string
	var port int
	var noBrowser bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the catalog dashboard and JSON API",
		Long: `Start the catalog dashboard and JSON API.

Serves a browser dashboard on localhost plus a JSON API:

  GET  /api/health              Health check
  GET  /api/materials           List packaging materials
  GET  /api/products            List saved products (q= search, category= filter)
  POST /api/recommend           Rank materials for a product
  GET  /api/report/{product}    HTML recommendation report for a saved product
  GET  /api/summary             Catalog counts and categories

The server binds to 127.0.0.1 only.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, cfg, err := resolveStore(catalogPath)
			if err != nil {
				return err
			}

			if port == 0 {
				port = cfg.Server.Port
			}
			if !noBrowser && cfg.Server.NoBrowser != nil {
				noBrowser = *cfg.Server.NoBrowser
			}

			srv, err := webserver.New(webserver.Config{
				Port:        port,
				CatalogPath: store.Path,
				NoBrowser:   noBrowser,
				Logger:      slog.Default(),
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog file (default: from .packadvisor.yaml)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default: from config)")
	cmd.Flags().BoolVar(&noBrowser, "no-browser", false, "Do not open the dashboard in a browser")

	return cmd
}
