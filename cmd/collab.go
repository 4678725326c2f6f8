package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toshiksharma271/collab-insight-engine/internal/analytics"
	"github.com/toshiksharma271/collab-insight-engine/internal/config"
	"github.com/toshiksharma271/collab-insight-engine/internal/ui"
)

func collabCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "collab",
		Short:   "How collaboration relates to project success",
		Aliases: []string{"impact"},
		Run: func(cmd *cobra.Command, args []string) {
			ds := loadDataset(config.Load())
			r := analytics.CollaborationOf(ds)

			if jsonOutput {
				printJSON(r)
				return
			}

			ui.Banner("collaboration impact")
			fmt.Printf("  %s  %.3f %s\n", ui.Brand.Sprintf("%-24s", "Correlation"), r.Correlation,
				ui.Subtle.Sprintf("(%s)", analytics.Strength(r.Correlation)))
			fmt.Printf("  %s  %.1f %s\n", ui.Brand.Sprintf("%-24s", "Success, high collab"), r.AvgSuccessHigh,
				ui.Subtle.Sprintf("(%d project(s) above %d)", r.HighCount, analytics.HighCollaborationThreshold))
			fmt.Printf("  %s  %.1f %s\n", ui.Brand.Sprintf("%-24s", "Success, low collab"), r.AvgSuccessLow,
				ui.Subtle.Sprintf("(%d project(s))", r.LowCount))
			fmt.Println()

			var rows [][]string
			for _, p := range r.Points {
				rows = append(rows, []string{
					p.Name,
					fmt.Sprintf("%.0f", p.Collaboration),
					fmt.Sprintf("%.0f", p.Success),
					fmt.Sprintf("%.0f%%", p.ROI),
					ui.Bar(p.Success, 100, 20),
				})
			}
			ui.Table([]string{"PROJECT", "COLLAB", "SUCCESS", "ROI", ""}, rows)

			if r.HighCount > 0 && r.LowCount > 0 && r.AvgSuccessHigh > r.AvgSuccessLow {
				fmt.Println()
				ui.Good.Printf("  High-collaboration projects score %.1f points higher on success\n",
					r.AvgSuccessHigh-r.AvgSuccessLow)
			}
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
