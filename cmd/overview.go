package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toshiksharma271/collab-insight-engine/internal/analytics"
	"github.com/toshiksharma271/collab-insight-engine/internal/config"
	"github.com/toshiksharma271/collab-insight-engine/internal/dataset"
	"github.com/toshiksharma271/collab-insight-engine/internal/ui"
)

func overviewCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "overview",
		Short:   "Headline collaboration and ROI numbers",
		Aliases: []string{"ov"},
		Run: func(cmd *cobra.Command, args []string) {
			ds := loadDataset(config.Load())
			o := analytics.OverviewOf(ds)

			if jsonOutput {
				printJSON(o)
				return
			}

			ui.Banner("overview")
			first, last, ok := trendEnds(ds.Timeline)

			roiChange, collabChange := "", ""
			if ok {
				roiChange = percentChange(first.ROI, last.ROI)
				collabChange = percentChange(first.Collaboration, last.Collaboration)
			}
			ui.Metric("Avg ROI", fmt.Sprintf("%.2f%%", o.AvgROI), roiChange, last.ROI >= first.ROI)
			ui.Metric("Avg Collaboration", fmt.Sprintf("%.0f", o.AvgCollaboration), collabChange, last.Collaboration >= first.Collaboration)
			ui.Metric("Projects", fmt.Sprintf("%d", o.TotalProjects), "", true)
			ui.Metric("Net Benefit", ui.Money(o.NetBenefit), "", o.NetBenefit >= 0)
			fmt.Println()

			if len(ds.Timeline) == 0 {
				return
			}
			fmt.Println(ui.Brand.Sprint("  Monthly trend"))
			var rows [][]string
			for _, m := range ds.Timeline {
				rows = append(rows, []string{
					m.Month,
					fmt.Sprintf("%.0f", m.Collaboration),
					fmt.Sprintf("%.0f", m.Success),
					fmt.Sprintf("%.0f%%", m.ROI),
					ui.Bar(m.Collaboration, 100, 20),
				})
			}
			ui.Table([]string{"MONTH", "COLLAB", "SUCCESS", "ROI", ""}, rows)
			if ok {
				fmt.Println()
				fmt.Printf("  %s\n", ui.Subtle.Sprintf("%s to %s", first.Month, last.Month))
			}
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func trendEnds(points []dataset.MonthPoint) (first, last dataset.MonthPoint, ok bool) {
	if len(points) < 2 {
		return first, last, false
	}
	return points[0], points[len(points)-1], true
}

// percentChange formats the relative change from a to b, e.g. "+12.5%".
func percentChange(a, b float64) string {
	if a == 0 {
		return ""
	}
	return fmt.Sprintf("%+.1f%%", (b-a)/a*100)
}
