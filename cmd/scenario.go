package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toshiksharma271/collab-insight-engine/internal/config"
	"github.com/toshiksharma271/collab-insight-engine/internal/scenario"
	"github.com/toshiksharma271/collab-insight-engine/internal/ui"
)

func scenarioCmd() *cobra.Command {
	var (
		c          = scenario.DefaultControls()
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:     "scenario",
		Short:   "Project the payoff of investing in collaboration",
		Aliases: []string{"whatif"},
		Long: `Project what raising collaboration would return over the next year.

  insight scenario                          # default: +20 points, $50K tools, $25K training
  insight scenario --increase 35 --tools 120000
  insight scenario --json`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg := config.Load()
			report, err := scenario.Run(cfg.Scenario, c)
			if err != nil {
				fail("Invalid scenario", err)
			}

			if jsonOutput {
				printJSON(report)
				return
			}

			printScenario(report)
		},
	}

	cmd.Flags().Float64Var(&c.CollaborationIncrease, "increase", c.CollaborationIncrease,
		fmt.Sprintf("Collaboration score increase, %g-%g", scenario.IncreaseBounds.Min, scenario.IncreaseBounds.Max))
	cmd.Flags().Float64Var(&c.ToolsInvestment, "tools", c.ToolsInvestment,
		fmt.Sprintf("Tools investment in dollars, %g-%g", scenario.ToolsBounds.Min, scenario.ToolsBounds.Max))
	cmd.Flags().Float64Var(&c.TrainingInvestment, "training", c.TrainingInvestment,
		fmt.Sprintf("Training investment in dollars, %g-%g", scenario.TrainingBounds.Min, scenario.TrainingBounds.Max))
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func printScenario(r *scenario.Report) {
	b, p := r.Baseline, r.Projection

	ui.Banner("what-if scenario")
	fmt.Printf("  %s\n\n", ui.Subtle.Sprintf("+%.0f collaboration points, %s tools, %s training",
		r.Controls.CollaborationIncrease, ui.Money(r.Controls.ToolsInvestment), ui.Money(r.Controls.TrainingInvestment)))

	ui.Metric("Projected collaboration", fmt.Sprintf("%.0f", p.Collaboration),
		fmt.Sprintf("%+.0f", p.Collaboration-b.AvgCollaboration), true)
	ui.Metric("Projected success", fmt.Sprintf("%.1f%%", p.Success),
		fmt.Sprintf("%+.1f%%", p.Success-b.AvgSuccess), true)
	ui.Metric("Additional revenue", ui.Money(p.AdditionalRevenue),
		fmt.Sprintf("%+.1f%%", p.RevenueUplift), true)
	netNote := "Negative ROI"
	if p.Positive() {
		netNote = "Positive ROI"
	}
	ui.Metric("Net benefit", ui.Money(p.NetBenefit), netNote, p.Positive())
	fmt.Println()

	var rows [][]string
	for _, bar := range r.Comparison {
		rows = append(rows, []string{bar.Metric, fmt.Sprintf("%.1f", bar.Base), fmt.Sprintf("%.1f", bar.Scenario)})
	}
	ui.Table([]string{"METRIC", "CURRENT", "SCENARIO"}, rows)
	fmt.Println()

	fmt.Println(ui.Brand.Sprint("  12-month ROI projection (ROI/10)"))
	rows = rows[:0]
	for _, m := range r.Timeline {
		rows = append(rows, []string{
			m.Label,
			fmt.Sprintf("%.1f", m.Baseline),
			fmt.Sprintf("%.1f", m.Projected),
			fmt.Sprintf("%.0f%%", m.Ramp*100),
			fmt.Sprintf("$%.2fK", m.Investment),
		})
	}
	ui.Table([]string{"MONTH", "BASELINE", "PROJECTED", "RAMP", "SPEND"}, rows)
	fmt.Println()

	fmt.Println(ui.Brand.Sprint("  Rollout"))
	for _, ph := range r.Phases {
		fmt.Printf("  %s  %s\n", ui.Info.Sprintf("%-12s", "Months "+ph.Months), ph.Focus)
	}
	fmt.Println()

	if p.Positive() {
		ui.Good.Printf("  %s Recommended: returns %s on a %s investment\n",
			ui.StatusIcon(true), ui.Money(p.AdditionalRevenue), ui.Money(p.TotalInvestment))
	} else {
		ui.Warn.Printf("  %s Not recommended: costs exceed returns by %s\n",
			ui.WarnIcon(), ui.Money(-p.NetBenefit))
	}
}
