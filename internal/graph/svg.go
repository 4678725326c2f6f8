package graph

import (
	"bytes"
	"html"
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo/float"
	"github.com/toshiksharma271/collab-insight-engine/internal/dataset"
)

// Style holds the colors used when drawing a scene.
type Style struct {
	Background string
	NodeFill   string
	NodeStroke string
	EdgeStroke string
	LabelFill  string
	// ChannelColors overrides EdgeStroke per channel when set.
	ChannelColors map[dataset.Channel]string
}

// DefaultStyle returns the dashboard's dark palette.
func DefaultStyle() Style {
	return Style{
		Background: "#0a0e17",
		NodeFill:   "#2DB682",
		NodeStroke: "#0a0e17",
		EdgeStroke: "#3a4255",
		LabelFill:  "#e0e0e0",
	}
}

func (s Style) edgeColor(ch dataset.Channel) string {
	if c, ok := s.ChannelColors[ch]; ok && c != "" {
		return c
	}
	return s.EdgeStroke
}

// WriteSVG draws the scene as a standalone SVG document. Links are drawn
// first so nodes and labels sit on top of them.
func (s *Scene) WriteSVG(w io.Writer, style Style) {
	canvas := svg.New(w)
	canvas.Start(s.Width, s.Height)
	canvas.Title("Collaboration Network")
	if style.Background != "" {
		canvas.Rect(0, 0, s.Width, s.Height, attr("fill", style.Background))
	}

	canvas.Gid("edges")
	for _, l := range s.Lines {
		canvas.Line(l.X1, l.Y1, l.X2, l.Y2,
			attr("stroke", style.edgeColor(l.Channel)),
			attr("stroke-width", num(l.Width)),
			attr("opacity", num(l.Opacity)),
			attr("data-channel", string(l.Channel)),
		)
	}
	canvas.Gend()

	canvas.Gid("nodes")
	for i, c := range s.Circles {
		canvas.Circle(c.X, c.Y, c.R,
			attr("fill", style.NodeFill),
			attr("opacity", "0.8"),
			attr("stroke", style.NodeStroke),
			attr("stroke-width", "2"),
			attr("data-id", c.ID),
		)
		lbl := s.Labels[i]
		canvas.Text(lbl.X, lbl.Y, lbl.Text,
			attr("text-anchor", "middle"),
			attr("fill", style.LabelFill),
			attr("font-size", "10"),
			attr("font-weight", "500"),
		)
	}
	canvas.Gend()
	canvas.End()
}

// SVG returns the scene rendered with WriteSVG.
func (s *Scene) SVG(style Style) []byte {
	var buf bytes.Buffer
	s.WriteSVG(&buf, style)
	return buf.Bytes()
}

func attr(name, value string) string {
	return name + `="` + html.EscapeString(value) + `"`
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
