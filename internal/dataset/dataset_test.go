package dataset

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *Dataset {
	return &Dataset{
		People: []Node{
			{ID: "a", Name: "Ada Lovelace", Team: "Engineering", CollaborationScore: 80, Centrality: 0.2},
			{ID: "b", Name: "Brian Kernighan", Team: "Product", CollaborationScore: 90, Centrality: 0.9},
		},
		Links: []Edge{
			{Source: "a", Target: "b", Weight: 10, Channel: ChannelGitHub},
			{Source: "a", Target: "ghost", Weight: 5, Channel: ChannelSlack},
		},
		Projects: []Project{
			{ID: "p1", Name: "Portal", CollaborationIndex: 85, SuccessScore: 90, Revenue: 1000, Cost: 100, ROI: 900, Team: "Engineering"},
		},
		Timeline: []MonthPoint{{Month: "Jan", Collaboration: 60, Success: 70, ROI: 500}},
	}
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, sample().Validate())
}

func TestValidate_FieldErrors(t *testing.T) {
	ds := sample()
	ds.People[0].Centrality = 1.5
	ds.Links[0].Weight = 0
	ds.Links[0].Channel = "email"

	err := ds.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "centrality must be at most 1")
	assert.Contains(t, err.Error(), "weight must be greater than 0")
	assert.Contains(t, err.Error(), "channel must be one of: github slack jira")
}

func TestValidate_DuplicateID(t *testing.T) {
	ds := sample()
	ds.People = append(ds.People, Node{ID: "a", Name: "Another Ada", CollaborationScore: 1, Centrality: 0.1})

	err := ds.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateID))
}

func TestValidate_DuplicateIDKeepsFieldErrors(t *testing.T) {
	ds := sample()
	ds.People[0].Centrality = 5
	ds.People = append(ds.People, Node{ID: "a", Name: "Another Ada", CollaborationScore: 1, Centrality: 0.1})

	err := ds.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateID))
	assert.Contains(t, err.Error(), "centrality must be at most 1")
	assert.Contains(t, err.Error(), "people[2] a: duplicate node id")
}

func TestValidate_RejectsNonFinite(t *testing.T) {
	ds := sample()
	ds.Links[0].Weight = math.Inf(1)
	ds.Projects[0].Revenue = math.Inf(1)
	ds.Projects[0].Cost = math.NaN()
	ds.Projects[0].ROI = math.Inf(-1)
	ds.Timeline[0].ROI = math.NaN()

	err := ds.Validate()
	require.Error(t, err)
	msg := err.Error()
	for _, field := range []string{"weight", "revenue", "cost", "roi"} {
		assert.Contains(t, msg, field+" must be a finite number")
	}
	assert.Contains(t, msg, "timeline[0]: roi must be a finite number")
	assert.False(t, errors.Is(err, ErrDuplicateID))
}

func TestValidate_DanglingLinkIsNotAnError(t *testing.T) {
	ds := sample()
	require.NoError(t, ds.Validate())

	dangling := ds.DanglingLinks()
	require.Len(t, dangling, 1)
	assert.Equal(t, "ghost", dangling[0].Target)
}

func TestTeams(t *testing.T) {
	ds := sample()
	ds.People = append(ds.People, Node{ID: "c", Name: "Cy", Team: "Engineering"})
	assert.Equal(t, []string{"Engineering", "Product"}, ds.Teams())
}

func TestROIRows(t *testing.T) {
	rows := sample().ROIRows()
	require.Len(t, rows, 1)
	assert.Equal(t, ROIRow{
		Costs:              100,
		Benefits:           1000,
		ROI:                900,
		CollaborationScore: 85,
		Project:            "Portal",
		Team:               "Engineering",
	}, rows[0])
}

func TestMergeReplacesInPlace(t *testing.T) {
	ds := sample()
	ds.merge(file{
		People: []Node{{ID: "a", Name: "Ada King"}},
		Links:  []Edge{{Source: "a", Target: "b", Weight: 2, Channel: ChannelGitHub}},
	})

	assert.Equal(t, "Ada King", ds.People[0].Name)
	assert.Len(t, ds.People, 2)
	assert.Len(t, ds.Links, 2)
	assert.Equal(t, 2.0, ds.Links[0].Weight)
}
