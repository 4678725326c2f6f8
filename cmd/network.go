package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/toshiksharma271/collab-insight-engine/internal/config"
	"github.com/toshiksharma271/collab-insight-engine/internal/graph"
	"github.com/toshiksharma271/collab-insight-engine/internal/ui"
)

func networkCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "network",
		Short:   "Collaboration network statistics",
		Aliases: []string{"net"},
		Run: func(cmd *cobra.Command, args []string) {
			ds := loadDataset(config.Load())
			st := graph.Analyze(ds)

			if jsonOutput {
				printJSON(st)
				return
			}

			ui.Banner("collaboration network")
			fmt.Printf("  %s  %d\n", ui.Brand.Sprintf("%-20s", "People"), st.People)
			fmt.Printf("  %s  %d\n", ui.Brand.Sprintf("%-20s", "Connections"), st.TotalConnections)
			fmt.Printf("  %s  %d\n", ui.Brand.Sprintf("%-20s", "Cross-team"), st.CrossTeam)
			fmt.Printf("  %s  %.2f\n", ui.Brand.Sprintf("%-20s", "Avg centrality"), st.AvgCentrality)
			if st.TopCollaborator != nil {
				fmt.Printf("  %s  %s %s\n", ui.Brand.Sprintf("%-20s", "Top collaborator"),
					st.TopCollaborator.Name, ui.Subtle.Sprintf("(%.0f)", st.TopCollaborator.CollaborationScore))
			}
			fmt.Println()

			var rows [][]string
			for _, ch := range st.Channels {
				rows = append(rows, []string{string(ch.Channel), fmt.Sprintf("%d", ch.Links), fmt.Sprintf("%.0f", ch.Weight)})
			}
			ui.Table([]string{"CHANNEL", "LINKS", "WEIGHT"}, rows)

			if st.Dangling > 0 {
				fmt.Println()
				fmt.Printf("  %s %d link(s) reference unknown people; run %s\n",
					ui.WarnIcon(), st.Dangling, ui.Info.Sprint("insight validate"))
			}
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	cmd.AddCommand(
		networkRenderCmd(),
		networkShowCmd(),
		networkPeopleCmd(),
	)
	return cmd
}

// renderFormats maps output formats to the file extension they imply.
var renderFormats = map[string]string{
	"svg":  ".svg",
	"json": ".json",
	"dot":  ".dot",
	"html": ".html",
}

// formatFor picks the output format: an explicit --format wins, then the
// extension of --output, then svg.
func formatFor(format, output string) (string, error) {
	if format != "" {
		format = strings.ToLower(format)
		if _, ok := renderFormats[format]; !ok {
			return "", errors.WithHint(
				errors.Newf("unknown format: %s", format),
				"use svg, json, dot, or html")
		}
		return format, nil
	}
	ext := strings.ToLower(filepath.Ext(output))
	for f, e := range renderFormats {
		if e == ext {
			return f, nil
		}
	}
	return "svg", nil
}

// renderScene encodes sc in the given format.
func renderScene(sc graph.Scene, format string, style graph.Style) ([]byte, error) {
	switch format {
	case "svg":
		return sc.SVG(style), nil
	case "json":
		return sc.ExportJSON()
	case "dot":
		return []byte(sc.ExportDOT()), nil
	case "html":
		return []byte(sc.ExportHTML("Collaboration network", style)), nil
	}
	return nil, errors.Newf("unknown format: %s", format)
}

func networkRenderCmd() *cobra.Command {
	var (
		width, height float64
		format        string
		output        string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw the network (svg, json, dot, or html)",
		Long: `Lay the people out on a circle and draw their links.

  insight network render > network.svg
  insight network render -o team.html
  insight network render --format dot | dot -Tpng > network.png
  insight network render --width 1200 --height 800 --format json`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg := config.Load()
			if !cmd.Flags().Changed("width") {
				width = cfg.Canvas.Width
			}
			if !cmd.Flags().Changed("height") {
				height = cfg.Canvas.Height
			}
			if err := graph.CheckDimensions(width, height); err != nil {
				fail("Cannot render", err)
			}

			f, err := formatFor(format, output)
			if err != nil {
				fail("Cannot render", err)
			}

			ds := loadDataset(cfg)
			sc := buildScene(ds, width, height)
			data, err := renderScene(sc, f, cfg.GraphStyle())
			if err != nil {
				fail("Render failed", err)
			}

			if output == "" || output == "-" {
				_, _ = os.Stdout.Write(data)
				return
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				fail("Failed to write output", err)
			}
			fmt.Fprintf(os.Stderr, "  %s Wrote %s %s\n", ui.StatusIcon(true), ui.Brand.Sprint(output),
				ui.Subtle.Sprintf("(%d people, %d links, %s)", len(sc.Circles), len(sc.Lines), f))
			if sc.Dropped > 0 {
				fmt.Fprintf(os.Stderr, "  %s %d link(s) skipped: unknown people\n", ui.WarnIcon(), sc.Dropped)
			}
		},
	}

	cmd.Flags().Float64Var(&width, "width", 800, "Canvas width in pixels (default from config)")
	cmd.Flags().Float64Var(&height, "height", 400, "Canvas height in pixels (default from config)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: svg, json, dot, or html (default: from -o extension, else svg)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")
	return cmd
}

func networkShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:               "show <id>",
		Short:             "Show a person and their links",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: personCompletionFunc,
		Run: func(cmd *cobra.Command, args []string) {
			ds := loadDataset(config.Load())
			n, err := graph.NeighboursOf(ds, args[0])
			if err != nil {
				fail("Lookup failed", err)
			}

			if jsonOutput {
				printJSON(n)
				return
			}

			fmt.Println()
			fmt.Print(graph.RenderNeighbours(n,
				func(s string) string { return ui.Brand.Sprint(s) },
				func(s string) string { return ui.Subtle.Sprint(s) },
				func(s string) string { return ui.Info.Sprint(s) },
			))
			fmt.Println()
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func networkPeopleCmd() *cobra.Command {
	var (
		team       string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "people",
		Short: "List the people in the network",
		Run: func(cmd *cobra.Command, args []string) {
			ds := loadDataset(config.Load())

			people := ds.People[:0:0]
			for _, p := range ds.People {
				if team == "" || strings.EqualFold(p.Team, team) {
					people = append(people, p)
				}
			}

			if jsonOutput {
				printJSON(people)
				return
			}

			if len(people) == 0 {
				ui.Warn.Printf("  No people found for team %q\n", team)
				return
			}

			ui.Banner("people")
			var rows [][]string
			for _, p := range people {
				rows = append(rows, []string{
					p.ID, p.Name, p.Team, p.Role,
					fmt.Sprintf("%.0f", p.CollaborationScore),
					fmt.Sprintf("%.2f", p.Centrality),
				})
			}
			ui.Table([]string{"ID", "NAME", "TEAM", "ROLE", "SCORE", "CENTRALITY"}, rows)
		},
	}

	cmd.Flags().StringVar(&team, "team", "", "Only show one team")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	_ = cmd.RegisterFlagCompletionFunc("team", teamCompletionFunc)
	return cmd
}
