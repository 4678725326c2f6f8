package graph

import (
	"github.com/toshiksharma271/collab-insight-engine/internal/dataset"
)

// ChannelStats aggregates the links seen on one channel.
type ChannelStats struct {
	Channel dataset.Channel `json:"channel"`
	Links   int             `json:"links"`
	Weight  float64         `json:"weight"`
}

// NetworkStats summarizes the collaboration network.
type NetworkStats struct {
	People           int            `json:"people"`
	TotalConnections int            `json:"total_connections"`
	AvgCentrality    float64        `json:"avg_centrality"`
	TopCollaborator  *dataset.Node  `json:"top_collaborator,omitempty"`
	CrossTeam        int            `json:"cross_team_connections"`
	Dangling         int            `json:"dangling_links"`
	Channels         []ChannelStats `json:"channels"`
}

// Analyze computes summary statistics for the network in ds.
func Analyze(ds *dataset.Dataset) NetworkStats {
	st := NetworkStats{
		People:           len(ds.People),
		TotalConnections: len(ds.Links),
	}

	byID := make(map[string]*dataset.Node, len(ds.People))
	var sum float64
	for i := range ds.People {
		n := &ds.People[i]
		byID[n.ID] = n
		sum += n.Centrality
		if st.TopCollaborator == nil || n.CollaborationScore > st.TopCollaborator.CollaborationScore {
			st.TopCollaborator = n
		}
	}
	if len(ds.People) > 0 {
		st.AvgCentrality = sum / float64(len(ds.People))
	}

	perChannel := make(map[dataset.Channel]*ChannelStats)
	var order []dataset.Channel
	for _, ch := range dataset.Channels {
		perChannel[ch] = &ChannelStats{Channel: ch}
		order = append(order, ch)
	}

	for _, e := range ds.Links {
		cs, ok := perChannel[e.Channel]
		if !ok {
			cs = &ChannelStats{Channel: e.Channel}
			perChannel[e.Channel] = cs
			order = append(order, e.Channel)
		}
		cs.Links++
		cs.Weight += e.Weight

		src, dst := byID[e.Source], byID[e.Target]
		if src == nil || dst == nil {
			st.Dangling++
			continue
		}
		if src.Team != dst.Team {
			st.CrossTeam++
		}
	}

	for _, ch := range order {
		st.Channels = append(st.Channels, *perChannel[ch])
	}
	return st
}
