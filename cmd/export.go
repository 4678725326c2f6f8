package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/toshiksharma271/collab-insight-engine/internal/analytics"
	"github.com/toshiksharma271/collab-insight-engine/internal/config"
	"github.com/toshiksharma271/collab-insight-engine/internal/dataset"
	"github.com/toshiksharma271/collab-insight-engine/internal/graph"
	"github.com/toshiksharma271/collab-insight-engine/internal/parallel"
	"github.com/toshiksharma271/collab-insight-engine/internal/scenario"
	"github.com/toshiksharma271/collab-insight-engine/internal/ui"
)

// Manifest describes one export run.
type Manifest struct {
	RunID     string    `json:"run_id"`
	CreatedAt time.Time `json:"created_at"`
	Version   string    `json:"version"`
	Width     float64   `json:"width"`
	Height    float64   `json:"height"`
	People    int       `json:"people"`
	Links     int       `json:"links"`
	Dropped   int       `json:"dropped_links"`
	Files     []string  `json:"files"`
}

// exportTasks builds one task per exported view, each writing into dir.
func exportTasks(dir string, ds *dataset.Dataset, sc graph.Scene, style graph.Style, base scenario.Baseline) []parallel.Task {
	write := func(name string, data []byte) (string, error) {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			return "", err
		}
		return fmt.Sprintf("%d bytes", len(data)), nil
	}
	writeJSON := func(name string, v any) (string, error) {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", errors.Wrapf(err, "encoding %s", name)
		}
		return write(name, append(data, '\n'))
	}

	return []parallel.Task{
		{Name: "network.svg", Fn: func(context.Context) (string, error) {
			return write("network.svg", sc.SVG(style))
		}},
		{Name: "network.html", Fn: func(context.Context) (string, error) {
			return write("network.html", []byte(sc.ExportHTML("Collaboration network", style)))
		}},
		{Name: "network.dot", Fn: func(context.Context) (string, error) {
			return write("network.dot", []byte(sc.ExportDOT()))
		}},
		{Name: "overview.json", Fn: func(context.Context) (string, error) {
			return writeJSON("overview.json", analytics.OverviewOf(ds))
		}},
		{Name: "roi.json", Fn: func(context.Context) (string, error) {
			return writeJSON("roi.json", analytics.ROIOf(ds))
		}},
		{Name: "collaboration.json", Fn: func(context.Context) (string, error) {
			return writeJSON("collaboration.json", analytics.CollaborationOf(ds))
		}},
		{Name: "scenario.json", Fn: func(context.Context) (string, error) {
			report, err := scenario.Run(base, scenario.DefaultControls())
			if err != nil {
				return "", err
			}
			return writeJSON("scenario.json", report)
		}},
	}
}

// writeManifest records the files that were written successfully.
func writeManifest(dir string, m Manifest, results []parallel.Result) (Manifest, error) {
	for _, r := range results {
		if r.OK {
			m.Files = append(m.Files, r.Name)
		}
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return m, err
	}
	return m, os.WriteFile(filepath.Join(dir, "manifest.json"), append(data, '\n'), 0o644)
}

func exportCmd() *cobra.Command {
	var concurrency int

	cmd := &cobra.Command{
		Use:   "export <dir>",
		Short: "Write every view to a directory",
		Long: `Write the network drawing and every analytics view to dir, in parallel.

  insight export ./report
  insight export ./report --concurrency 2`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			dir := args[0]
			cfg := config.Load()
			if !cmd.Flags().Changed("concurrency") {
				concurrency = cfg.Parallel.Concurrency
			}

			if err := os.MkdirAll(dir, 0o755); err != nil {
				fail("Cannot create output dir", err)
			}

			ds := loadDataset(cfg)
			if err := graph.CheckDimensions(cfg.Canvas.Width, cfg.Canvas.Height); err != nil {
				fail("Invalid canvas in config", err)
			}
			sc := buildScene(ds, cfg.Canvas.Width, cfg.Canvas.Height)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			ui.Banner("export")
			fmt.Printf("  Writing to %s\n\n", ui.Brand.Sprint(dir))

			results := parallel.Run(ctx, exportTasks(dir, ds, sc, cfg.GraphStyle(), cfg.Scenario), concurrency)

			m, err := writeManifest(dir, Manifest{
				RunID:     uuid.NewString(),
				CreatedAt: time.Now().UTC(),
				Version:   version,
				Width:     sc.Width,
				Height:    sc.Height,
				People:    len(ds.People),
				Links:     len(ds.Links),
				Dropped:   sc.Dropped,
			}, results)
			if err != nil {
				fail("Failed to write manifest", err)
			}

			fmt.Println()
			failed := parallel.Failed(results)
			if len(failed) > 0 {
				ui.Bad.Printf("  %d of %d view(s) failed\n", len(failed), len(results))
				os.Exit(1)
			}
			ui.Good.Printf("  %s Exported %d files %s\n", ui.StatusIcon(true), len(m.Files)+1, ui.Subtle.Sprintf("(run %s)", m.RunID))
		},
	}

	cmd.Flags().IntVarP(&concurrency, "concurrency", "c", 4, "Views written at once (default from config)")
	return cmd
}
