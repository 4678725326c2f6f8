package graph

import (
	"strings"

	"github.com/toshiksharma271/collab-insight-engine/internal/dataset"
)

const (
	// EdgeOpacity is applied to every drawn link.
	EdgeOpacity = 0.6
	// LabelOffset is how far below a node's center its label sits.
	LabelOffset = 25
)

// Line is a drawn link between two positioned nodes.
type Line struct {
	Source  string          `json:"source"`
	Target  string          `json:"target"`
	X1      float64         `json:"x1"`
	Y1      float64         `json:"y1"`
	X2      float64         `json:"x2"`
	Y2      float64         `json:"y2"`
	Width   float64         `json:"width"`
	Opacity float64         `json:"opacity"`
	Channel dataset.Channel `json:"channel"`
}

// Circle is a drawn node.
type Circle struct {
	ID   string  `json:"id"`
	Team string  `json:"team"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	R    float64 `json:"r"`
}

// Label is the text drawn beneath a node, anchored at its middle.
type Label struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Text string  `json:"text"`
}

// Scene is one complete rendering of the network. It is rebuilt from scratch
// on every call to Build.
type Scene struct {
	Width   float64      `json:"width"`
	Height  float64      `json:"height"`
	Nodes   []Positioned `json:"nodes"`
	Lines   []Line       `json:"lines"`
	Circles []Circle     `json:"circles"`
	Labels  []Label      `json:"labels"`
	// Dropped counts links skipped because an endpoint did not resolve.
	Dropped      int            `json:"dropped"`
	DroppedLinks []dataset.Edge `json:"dropped_links,omitempty"`
}

// Empty reports whether the scene draws nothing.
func (s *Scene) Empty() bool {
	return len(s.Lines) == 0 && len(s.Circles) == 0 && len(s.Labels) == 0
}

// LineWidth is the stroke width for a link of the given weight.
func LineWidth(weight float64) float64 {
	return weight / 5
}

// NodeRadius is the circle radius for a node of the given centrality.
func NodeRadius(centrality float64) float64 {
	return 8 + centrality*12
}

// ShortName returns the first whitespace-delimited token of a display name.
func ShortName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Build lays out nodes on a circle and produces the lines, circles and labels
// to draw. Links whose source or target is not among nodes are skipped and
// counted in Scene.Dropped. An empty node list or an unusable canvas yields
// an empty scene whose slices are empty, never nil.
func Build(nodes []dataset.Node, edges []dataset.Edge, width, height float64) Scene {
	positioned := Circular(nodes, width, height)
	if positioned == nil {
		positioned = []Positioned{}
	}
	scene := Scene{
		Width:   width,
		Height:  height,
		Nodes:   positioned,
		Lines:   make([]Line, 0, len(edges)),
		Circles: make([]Circle, 0, len(positioned)),
		Labels:  make([]Label, 0, len(positioned)),
	}
	byID := make(map[string]*Positioned, len(positioned))
	for i := range positioned {
		byID[positioned[i].ID] = &positioned[i]
	}

	for _, e := range edges {
		src, ok := byID[e.Source]
		if !ok {
			scene.drop(e)
			continue
		}
		dst, ok := byID[e.Target]
		if !ok {
			scene.drop(e)
			continue
		}
		scene.Lines = append(scene.Lines, Line{
			Source:  e.Source,
			Target:  e.Target,
			X1:      src.X,
			Y1:      src.Y,
			X2:      dst.X,
			Y2:      dst.Y,
			Width:   LineWidth(e.Weight),
			Opacity: EdgeOpacity,
			Channel: e.Channel,
		})
	}

	for _, p := range positioned {
		scene.Circles = append(scene.Circles, Circle{
			ID:   p.ID,
			Team: p.Team,
			X:    p.X,
			Y:    p.Y,
			R:    NodeRadius(p.Centrality),
		})
		scene.Labels = append(scene.Labels, Label{
			X:    p.X,
			Y:    p.Y + LabelOffset,
			Text: ShortName(p.Name),
		})
	}
	return scene
}

func (s *Scene) drop(e dataset.Edge) {
	s.Dropped++
	s.DroppedLinks = append(s.DroppedLinks, e)
}
