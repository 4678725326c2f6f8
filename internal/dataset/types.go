package dataset

// Channel is the medium a collaboration link was observed on.
type Channel string

const (
	ChannelGitHub Channel = "github"
	ChannelSlack  Channel = "slack"
	ChannelJira   Channel = "jira"
)

// Channels lists the known channels in display order.
var Channels = []Channel{ChannelGitHub, ChannelSlack, ChannelJira}

// Node is a person in the collaboration network.
type Node struct {
	ID                 string  `toml:"id" yaml:"id" json:"id" validate:"required"`
	Name               string  `toml:"name" yaml:"name" json:"name" validate:"required"`
	Team               string  `toml:"team" yaml:"team" json:"team"`
	Role               string  `toml:"role" yaml:"role" json:"role"`
	CollaborationScore float64 `toml:"collaboration_score" yaml:"collaboration_score" json:"collaboration_score" validate:"finite,gte=0,lte=100"`
	Centrality         float64 `toml:"centrality" yaml:"centrality" json:"centrality" validate:"finite,gte=0,lte=1"`
}

// Edge is a weighted link between two people on one channel.
type Edge struct {
	Source  string  `toml:"source" yaml:"source" json:"source" validate:"required"`
	Target  string  `toml:"target" yaml:"target" json:"target" validate:"required"`
	Weight  float64 `toml:"weight" yaml:"weight" json:"weight" validate:"finite,gt=0"`
	Channel Channel `toml:"channel" yaml:"channel" json:"channel" validate:"oneof=github slack jira"`
}

func (e Edge) key() string {
	return e.Source + "\x00" + e.Target + "\x00" + string(e.Channel)
}

// Project holds the delivery and financial outcome of one project.
type Project struct {
	ID                 string  `toml:"id" yaml:"id" json:"id" validate:"required"`
	Name               string  `toml:"name" yaml:"name" json:"name" validate:"required"`
	CollaborationIndex float64 `toml:"collaboration_index" yaml:"collaboration_index" json:"collaboration_index" validate:"finite,gte=0,lte=100"`
	SuccessScore       float64 `toml:"success_score" yaml:"success_score" json:"success_score" validate:"finite,gte=0,lte=100"`
	CompletionDays     int     `toml:"completion_days" yaml:"completion_days" json:"completion_days" validate:"gte=0"`
	Defects            int     `toml:"defects" yaml:"defects" json:"defects" validate:"gte=0"`
	Revenue            float64 `toml:"revenue" yaml:"revenue" json:"revenue" validate:"finite,gte=0"`
	Cost               float64 `toml:"cost" yaml:"cost" json:"cost" validate:"finite,gte=0"`
	ROI                float64 `toml:"roi" yaml:"roi" json:"roi" validate:"finite"`
	Team               string  `toml:"team" yaml:"team" json:"team"`
}

// MonthPoint is one entry of the monthly trend.
type MonthPoint struct {
	Month         string  `toml:"month" yaml:"month" json:"month" validate:"required"`
	Collaboration float64 `toml:"collaboration" yaml:"collaboration" json:"collaboration" validate:"finite"`
	Success       float64 `toml:"success" yaml:"success" json:"success" validate:"finite"`
	ROI           float64 `toml:"roi" yaml:"roi" json:"roi" validate:"finite"`
}

// ROIRow is a project seen through the cost/benefit lens.
type ROIRow struct {
	Costs              float64 `json:"costs"`
	Benefits           float64 `json:"benefits"`
	ROI                float64 `json:"roi"`
	CollaborationScore float64 `json:"collaboration_score"`
	Project            string  `json:"project"`
	Team               string  `json:"team"`
}

// file is the on-disk shape shared by every dataset file. Any table may be absent.
type file struct {
	People   []Node       `toml:"people" yaml:"people" json:"people"`
	Links    []Edge       `toml:"links" yaml:"links" json:"links"`
	Projects []Project    `toml:"projects" yaml:"projects" json:"projects"`
	Timeline []MonthPoint `toml:"timeline" yaml:"timeline" json:"timeline"`
}
