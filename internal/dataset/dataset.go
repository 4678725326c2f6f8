package dataset

import (
	"github.com/cockroachdb/errors"
)

// ErrDuplicateID is returned by Validate when two people share an id.
var ErrDuplicateID = errors.New("duplicate node id")

// Dataset is the full set of tables the views are rendered from.
// It is built once per load and treated as read-only afterwards.
type Dataset struct {
	People   []Node       `json:"people"`
	Links    []Edge       `json:"links"`
	Projects []Project    `json:"projects"`
	Timeline []MonthPoint `json:"timeline"`
}

// Person returns the node with the given id, or nil if not found.
func (d *Dataset) Person(id string) *Node {
	for i := range d.People {
		if d.People[i].ID == id {
			return &d.People[i]
		}
	}
	return nil
}

// Teams returns the distinct team labels of all people, in first-seen order.
func (d *Dataset) Teams() []string {
	seen := make(map[string]bool)
	var teams []string
	for _, n := range d.People {
		if !seen[n.Team] {
			seen[n.Team] = true
			teams = append(teams, n.Team)
		}
	}
	return teams
}

// DanglingLinks returns the links that reference a person not in the dataset.
func (d *Dataset) DanglingLinks() []Edge {
	ids := make(map[string]bool, len(d.People))
	for _, n := range d.People {
		ids[n.ID] = true
	}
	var out []Edge
	for _, e := range d.Links {
		if !ids[e.Source] || !ids[e.Target] {
			out = append(out, e)
		}
	}
	return out
}

// ROIRows projects every project onto its cost/benefit view.
func (d *Dataset) ROIRows() []ROIRow {
	rows := make([]ROIRow, 0, len(d.Projects))
	for _, p := range d.Projects {
		rows = append(rows, ROIRow{
			Costs:              p.Cost,
			Benefits:           p.Revenue,
			ROI:                p.ROI,
			CollaborationScore: p.CollaborationIndex,
			Project:            p.Name,
			Team:               p.Team,
		})
	}
	return rows
}

// merge overlays f onto d. Records with a known key replace the existing one
// in place; new records are appended.
func (d *Dataset) merge(f file) {
	d.People = upsert(d.People, f.People, func(n Node) string { return n.ID })
	d.Links = upsert(d.Links, f.Links, Edge.key)
	d.Projects = upsert(d.Projects, f.Projects, func(p Project) string { return p.ID })
	d.Timeline = upsert(d.Timeline, f.Timeline, func(m MonthPoint) string { return m.Month })
}

func upsert[T any](dst, src []T, key func(T) string) []T {
	if len(src) == 0 {
		return dst
	}
	index := make(map[string]int, len(dst))
	for i, v := range dst {
		index[key(v)] = i
	}
	for _, v := range src {
		k := key(v)
		if i, ok := index[k]; ok {
			dst[i] = v
			continue
		}
		index[k] = len(dst)
		dst = append(dst, v)
	}
	return dst
}
