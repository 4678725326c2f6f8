package graph

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/toshiksharma271/collab-insight-engine/internal/dataset"
)

// Neighbour is one link seen from a given person.
type Neighbour struct {
	Channel dataset.Channel `json:"channel"`
	Weight  float64         `json:"weight"`
	Person  *dataset.Node   `json:"person,omitempty"`
	// ID is set even when the other end is not a known person.
	ID string `json:"id"`
}

// Neighbours holds a person and the links touching them.
type Neighbours struct {
	Person   *dataset.Node `json:"person"`
	Outgoing []Neighbour   `json:"outgoing"`
	Incoming []Neighbour   `json:"incoming"`
}

// NeighboursOf collects the outgoing and incoming links of a person.
func NeighboursOf(ds *dataset.Dataset, id string) (*Neighbours, error) {
	p := ds.Person(id)
	if p == nil {
		return nil, errors.Newf("person not found: %s", id)
	}

	result := &Neighbours{Person: p}
	for _, e := range ds.Links {
		if e.Source == id {
			result.Outgoing = append(result.Outgoing, Neighbour{Channel: e.Channel, Weight: e.Weight, Person: ds.Person(e.Target), ID: e.Target})
		}
		if e.Target == id {
			result.Incoming = append(result.Incoming, Neighbour{Channel: e.Channel, Weight: e.Weight, Person: ds.Person(e.Source), ID: e.Source})
		}
	}
	return result, nil
}

// RenderNeighbours produces a terminal tree view of a person and their links.
func RenderNeighbours(n *Neighbours, brandFn, subtleFn, infoFn func(string) string) string {
	var b strings.Builder

	for i, edge := range n.Incoming {
		prefix := "  ├── "
		if i == len(n.Incoming)-1 && len(n.Outgoing) == 0 {
			prefix = "  └── "
		}
		b.WriteString(fmt.Sprintf("%s%s %s %s\n", prefix, subtleFn(edgeLabel(edge)), subtleFn("──"), brandFn(neighbourName(edge))))
		if edge.Person != nil && edge.Person.Team != "" {
			b.WriteString(fmt.Sprintf("  │           %s\n", subtleFn(edge.Person.Team)))
		}
		b.WriteString("  │\n")
	}

	b.WriteString(fmt.Sprintf("  ● %s\n", brandFn(n.Person.Name)))
	if n.Person.Team != "" || n.Person.Role != "" {
		b.WriteString(fmt.Sprintf("  │  %s\n", subtleFn(strings.Trim(n.Person.Role+" · "+n.Person.Team, " ·"))))
	}
	b.WriteString(fmt.Sprintf("  │  %s\n", infoFn(fmt.Sprintf("centrality %.2f, collaboration %.0f", n.Person.Centrality, n.Person.CollaborationScore))))

	if len(n.Outgoing) > 0 {
		b.WriteString("  │\n")
	}
	for i, edge := range n.Outgoing {
		prefix := "  ├── "
		if i == len(n.Outgoing)-1 {
			prefix = "  └── "
		}
		b.WriteString(fmt.Sprintf("%s%s %s %s\n", prefix, subtleFn(edgeLabel(edge)), subtleFn("──"), brandFn(neighbourName(edge))))
		if edge.Person != nil && edge.Person.Team != "" {
			b.WriteString(fmt.Sprintf("              %s\n", subtleFn(edge.Person.Team)))
		}
	}

	return b.String()
}

func edgeLabel(n Neighbour) string {
	return fmt.Sprintf("%s(%s)", n.Channel, num(n.Weight))
}

func neighbourName(n Neighbour) string {
	if n.Person == nil {
		return n.ID + " (unknown)"
	}
	return n.Person.Name
}
