package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toshiksharma271/collab-insight-engine/internal/analytics"
	"github.com/toshiksharma271/collab-insight-engine/internal/config"
	"github.com/toshiksharma271/collab-insight-engine/internal/ui"
)

func roiCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "roi",
		Short: "Cost and return of each project and team",
		Run: func(cmd *cobra.Command, args []string) {
			ds := loadDataset(config.Load())
			r := analytics.ROIOf(ds)

			if jsonOutput {
				printJSON(r)
				return
			}

			ui.Banner("roi analysis")
			ui.Metric("Total investment", ui.Money(r.TotalInvestment), "", true)
			ui.Metric("Total returns", ui.Money(r.TotalReturns), "", r.TotalReturns >= r.TotalInvestment)
			ui.Metric("Avg ROI", fmt.Sprintf("%.0f%%", r.AvgROI), "", r.AvgROI >= 0)
			if r.BestPerformer != nil {
				ui.Metric("Best performer", r.BestPerformer.Project, fmt.Sprintf("%.0f%%", r.BestPerformer.ROI), true)
			}
			fmt.Println()

			var rows [][]string
			for _, row := range r.Rows {
				rows = append(rows, []string{
					row.Project,
					row.Team,
					ui.Money(row.Costs),
					ui.Money(row.Benefits),
					fmt.Sprintf("%.0f%%", row.ROI),
					fmt.Sprintf("%.0f", row.CollaborationScore),
				})
			}
			ui.Table([]string{"PROJECT", "TEAM", "COST", "RETURN", "ROI", "COLLAB"}, rows)
			fmt.Println()

			fmt.Println(ui.Brand.Sprint("  By team"))
			rows = rows[:0]
			for _, t := range r.Teams {
				rows = append(rows, []string{t.Team, fmt.Sprintf("%d", t.ProjectCount), fmt.Sprintf("%.0f%%", t.AvgROI)})
			}
			ui.Table([]string{"TEAM", "PROJECTS", "AVG ROI"}, rows)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
