package cmd

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/toshiksharma271/collab-insight-engine/internal/config"
	"github.com/toshiksharma271/collab-insight-engine/internal/dataset"
	"github.com/toshiksharma271/collab-insight-engine/internal/graph"
	"github.com/toshiksharma271/collab-insight-engine/internal/logging"
	"github.com/toshiksharma271/collab-insight-engine/internal/ui"
)

var version = "0.3.0"

var (
	dataFS  fs.FS
	dataDir string
	logJSON bool
	verbose bool
)

// SetDataFS sets the embedded filesystem containing the bundled dataset.
func SetDataFS(fsys fs.FS) {
	dataFS = fsys
}

// overrideDir is the user dataset directory: --data-dir, then config.
func overrideDir(cfg *config.Config) string {
	if dataDir != "" {
		return dataDir
	}
	return cfg.DataDir()
}

// readDataset loads and validates the merged dataset.
func readDataset(cfg *config.Config) (*dataset.Dataset, error) {
	if dataFS == nil {
		return nil, errors.New("no embedded dataset")
	}
	ds, err := dataset.LoadAll(dataFS, "data", overrideDir(cfg))
	if err != nil {
		return nil, err
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return ds, nil
}

// loadDataset is readDataset for commands: it reports the failure and exits.
func loadDataset(cfg *config.Config) *dataset.Dataset {
	ds, err := readDataset(cfg)
	if err != nil {
		fail("Failed to load dataset", err)
	}
	return ds
}

// fail prints err with its hints and exits.
func fail(msg string, err error) {
	ui.Bad.Printf("  %s: %v\n", msg, err)
	if hint := errors.FlattenHints(err); hint != "" {
		ui.Subtle.Printf("  %s\n", hint)
	}
	os.Exit(1)
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fail("Failed to encode output", err)
	}
	fmt.Println(string(data))
}

// buildScene lays out the network and logs the links it had to skip.
func buildScene(ds *dataset.Dataset, width, height float64) graph.Scene {
	sc := graph.Build(ds.People, ds.Links, width, height)
	log := logging.Named("render")
	if sc.Dropped > 0 {
		ids := make([]string, 0, len(sc.DroppedLinks))
		for _, e := range sc.DroppedLinks {
			ids = append(ids, e.Source+"->"+e.Target)
		}
		log.Warnw("links reference unknown people", "dropped", sc.Dropped, "links", ids)
	}
	log.Debugw("scene built",
		"nodes", len(sc.Circles),
		"lines", len(sc.Lines),
		"dropped", sc.Dropped,
		"width", width,
		"height", height,
	)
	return sc
}

var rootCmd = &cobra.Command{
	Use:   "insight",
	Short: "insight — team collaboration analytics",
	Long: ui.Brand.Sprint(ui.Mark+" insight") + " — how your teams work together, and what it is worth\n" +
		ui.Subtle.Sprint("Collaboration network, project ROI, and what-if investment scenarios"),
	Version:      version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		level := cfg.Log.Level
		if verbose {
			level = "debug"
		}
		return logging.Initialize(logJSON || cfg.Log.JSON, level)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

func init() {
	rootCmd.SetVersionTemplate("insight {{ .Version }}\n")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory of dataset overrides (default: <config dir>/data)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Write diagnostic logs as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		overviewCmd(),
		networkCmd(),
		collabCmd(),
		roiCmd(),
		scenarioCmd(),
		exportCmd(),
		serveCmd(),
		configCmd(),
		validateCmd(),
		completionCmd(),
	)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
