package graph

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/toshiksharma271/collab-insight-engine/internal/dataset"
)

// ExportJSON returns the scene as pretty-printed JSON.
func (s *Scene) ExportJSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// ExportDOT returns the scene in Graphviz DOT format with every node pinned
// to its circular position. Render with `neato -n2`.
func (s *Scene) ExportDOT() string {
	var b strings.Builder
	b.WriteString("graph collaboration {\n")
	fmt.Fprintf(&b, "  graph [bb=\"0,0,%s,%s\"];\n", num(s.Width), num(s.Height))
	b.WriteString("  node [shape=circle, style=filled, fixedsize=true];\n\n")

	for i, c := range s.Circles {
		// Graphviz puts the origin bottom-left; flip y.
		fmt.Fprintf(&b, "  %q [label=%q, pos=\"%s,%s!\", width=%s, group=%q];\n",
			c.ID, s.Labels[i].Text, num(c.X), num(s.Height-c.Y), num(2*c.R/72), c.Team)
	}

	b.WriteString("\n")
	for _, l := range s.Lines {
		fmt.Fprintf(&b, "  %q -- %q [penwidth=%s, label=%q];\n", l.Source, l.Target, num(l.Width), string(l.Channel))
	}

	b.WriteString("}\n")
	return b.String()
}

// ExportHTML returns a self-contained HTML page showing the rendered network
// with a channel legend.
func (s *Scene) ExportHTML(title string, style Style) string {
	var legend strings.Builder
	for _, ch := range dataset.Channels {
		fmt.Fprintf(&legend, `<span class="badge"><span class="dot" style="background:%s"></span>%s</span>`,
			html.EscapeString(style.edgeColor(ch)), html.EscapeString(channelTitle(ch)))
	}

	note := "Node size represents centrality score. Edge thickness shows collaboration intensity."
	if s.Dropped > 0 {
		note += fmt.Sprintf(" %d link(s) reference unknown people and are not drawn.", s.Dropped)
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s</title>
<style>
*{margin:0;padding:0;box-sizing:border-box}
body{background:%s;color:#e0e0e0;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',sans-serif;padding:24px}
h2{color:#2DB682;font-size:18px;margin-bottom:12px;display:flex;justify-content:space-between;align-items:center}
.card{border:1px solid rgba(255,255,255,0.08);border-radius:12px;padding:16px 20px;max-width:%spx}
.badge{display:inline-flex;align-items:center;gap:6px;border:1px solid rgba(255,255,255,0.15);border-radius:999px;padding:2px 10px;font-size:11px;margin-left:6px}
.dot{width:8px;height:8px;border-radius:50%%;display:inline-block}
.note{margin-top:12px;font-size:13px;color:#888}
</style>
</head>
<body>
<div class="card">
<h2>%s<span>%s</span></h2>
%s
<div class="note">%s</div>
</div>
</body>
</html>
`, html.EscapeString(title), html.EscapeString(style.Background), num(s.Width+40),
		html.EscapeString(title), legend.String(), string(s.SVG(style)), html.EscapeString(note))
}

func channelTitle(ch dataset.Channel) string {
	switch ch {
	case dataset.ChannelGitHub:
		return "GitHub"
	case dataset.ChannelSlack:
		return "Slack"
	case dataset.ChannelJira:
		return "Jira"
	default:
		return string(ch)
	}
}
