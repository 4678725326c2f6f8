package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/toshiksharma271/collab-insight-engine/internal/config"
	"github.com/toshiksharma271/collab-insight-engine/internal/dataset"
	"github.com/toshiksharma271/collab-insight-engine/internal/logging"
	"github.com/toshiksharma271/collab-insight-engine/internal/metrics"
	"github.com/toshiksharma271/collab-insight-engine/internal/server"
	"github.com/toshiksharma271/collab-insight-engine/internal/ui"
)

func serveCmd() *cobra.Command {
	var (
		addr  string
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard over HTTP",
		Long: `Serve the network drawing, the analytics views, and metrics.

  insight serve                       # http://127.0.0.1:8088
  insight serve --addr :9000
  insight serve --watch               # reload when files in the data dir change`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg := config.Load()
			if addr == "" {
				addr = cfg.Serve.Addr
			}

			srv, err := server.New(server.Options{
				Addr:           addr,
				Width:          cfg.Canvas.Width,
				Height:         cfg.Canvas.Height,
				Style:          cfg.GraphStyle(),
				Baseline:       cfg.Scenario,
				AllowedOrigins: cfg.Serve.AllowedOrigins,
			}, func() (*dataset.Dataset, error) {
				return readDataset(cfg)
			}, metrics.NewCollector("insight"), logging.Named("server").Desugar())
			if err != nil {
				fail("Cannot start server", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			ui.Banner("serve")
			fmt.Printf("  Dashboard  %s\n", ui.Brand.Sprintf("http://%s/", addr))
			fmt.Printf("  Metrics    %s\n", ui.Subtle.Sprintf("http://%s/metrics", addr))
			if watch {
				fmt.Printf("  Watching   %s\n", ui.Subtle.Sprint(overrideDir(cfg)))
			}
			fmt.Println()

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error { return srv.Run(gctx) })
			if watch {
				g.Go(func() error { return srv.Watch(gctx, overrideDir(cfg)) })
			}
			if err := g.Wait(); err != nil {
				fail("Server stopped", err)
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")
	cmd.Flags().BoolVar(&watch, "watch", false, "Reload the dataset when override files change")
	return cmd
}
