package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/toshiksharma271/collab-insight-engine/internal/config"
	"github.com/toshiksharma271/collab-insight-engine/internal/dataset"
	"github.com/toshiksharma271/collab-insight-engine/internal/ui"
)

func validateCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:     "validate",
		Aliases: []string{"check"},
		Short:   "Check the dataset and report links to unknown people",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := config.Load()
			dir := overrideDir(cfg)

			ui.Banner("validate")
			fmt.Printf("  %s  %s\n", ui.Brand.Sprintf("%-12s", "Overrides"), dir)
			fmt.Println()

			if dataFS == nil {
				ui.Bad.Println("  No embedded dataset")
				os.Exit(1)
			}
			ds, err := dataset.LoadAll(dataFS, "data", dir)
			if err != nil {
				fmt.Printf("  %s load\n", ui.StatusIcon(false))
				fail("Failed to load dataset", err)
			}
			fmt.Printf("  %s load %s\n", ui.StatusIcon(true), ui.Subtle.Sprintf("(%d people, %d links, %d projects, %d months)",
				len(ds.People), len(ds.Links), len(ds.Projects), len(ds.Timeline)))

			if err := ds.Validate(); err != nil {
				fmt.Printf("  %s fields\n", ui.StatusIcon(false))
				fail("Dataset is invalid", err)
			}
			fmt.Printf("  %s fields\n", ui.StatusIcon(true))

			dangling := ds.DanglingLinks()
			if len(dangling) == 0 {
				fmt.Printf("  %s links\n", ui.StatusIcon(true))
				return
			}

			fmt.Printf("  %s links %s\n", ui.WarnIcon(), ui.Subtle.Sprint("(skipped when drawing)"))
			for _, e := range dangling {
				missing := e.Target
				if ds.Person(e.Source) == nil {
					missing = e.Source
				}
				fmt.Printf("      %s -> %s %s\n", e.Source, e.Target,
					ui.Warn.Sprintf("[%s] unknown person %q", e.Channel, missing))
			}
			fmt.Println()
			fmt.Printf("  %d link(s) reference unknown people\n", len(dangling))
			if strict {
				os.Exit(1)
			}
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when links reference unknown people")
	return cmd
}
