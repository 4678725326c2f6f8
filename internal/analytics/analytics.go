package analytics

import (
	"math"
	"sort"

	"github.com/toshiksharma271/collab-insight-engine/internal/dataset"
	"gonum.org/v1/gonum/stat"
)

// HighCollaborationThreshold splits projects into high and low collaboration.
const HighCollaborationThreshold = 80

// Overview holds the portfolio headline numbers.
type Overview struct {
	TotalProjects    int     `json:"total_projects"`
	AvgROI           float64 `json:"avg_roi"`
	AvgCollaboration float64 `json:"avg_collaboration"`
	TotalRevenue     float64 `json:"total_revenue"`
	TotalCosts       float64 `json:"total_costs"`
	NetBenefit       float64 `json:"net_benefit"`
}

// OverviewOf computes headline numbers. Average ROI is rounded to cents and
// average collaboration to a whole point.
func OverviewOf(ds *dataset.Dataset) Overview {
	o := Overview{TotalProjects: len(ds.Projects)}
	var roi, collab float64
	for _, p := range ds.Projects {
		roi += p.ROI
		collab += p.CollaborationIndex
		o.TotalRevenue += p.Revenue
		o.TotalCosts += p.Cost
	}
	if o.TotalProjects > 0 {
		o.AvgROI = math.Round(roi/float64(o.TotalProjects)*100) / 100
		o.AvgCollaboration = math.Round(collab / float64(o.TotalProjects))
	}
	o.NetBenefit = o.TotalRevenue - o.TotalCosts
	return o
}

// TeamROI is the average ROI of one team's projects.
type TeamROI struct {
	Team         string   `json:"team"`
	AvgROI       float64  `json:"avg_roi"`
	ProjectCount int      `json:"project_count"`
	Projects     []string `json:"projects"`
}

// ROIReport is the cost/benefit analysis of the portfolio.
type ROIReport struct {
	TotalInvestment float64          `json:"total_investment"`
	TotalReturns    float64          `json:"total_returns"`
	AvgROI          float64          `json:"avg_roi"`
	BestPerformer   *dataset.ROIRow  `json:"best_performer,omitempty"`
	Rows            []dataset.ROIRow `json:"rows"`
	Teams           []TeamROI        `json:"teams"`
}

// ROIOf builds the ROI report. Teams are sorted by name.
func ROIOf(ds *dataset.Dataset) ROIReport {
	rows := ds.ROIRows()
	r := ROIReport{Rows: rows, Teams: []TeamROI{}}

	var sum float64
	for i := range rows {
		r.TotalInvestment += rows[i].Costs
		r.TotalReturns += rows[i].Benefits
		sum += rows[i].ROI
		if r.BestPerformer == nil || rows[i].ROI > r.BestPerformer.ROI {
			r.BestPerformer = &rows[i]
		}
	}
	if len(rows) > 0 {
		r.AvgROI = sum / float64(len(rows))
	}

	byTeam := make(map[string]*TeamROI)
	for _, p := range ds.Projects {
		t, ok := byTeam[p.Team]
		if !ok {
			t = &TeamROI{Team: p.Team}
			byTeam[p.Team] = t
		}
		t.AvgROI += p.ROI
		t.ProjectCount++
		t.Projects = append(t.Projects, p.Name)
	}
	for _, t := range byTeam {
		t.AvgROI /= float64(t.ProjectCount)
		r.Teams = append(r.Teams, *t)
	}
	sort.Slice(r.Teams, func(i, j int) bool { return r.Teams[i].Team < r.Teams[j].Team })
	return r
}

// ScatterPoint pairs a project's collaboration with its outcome.
type ScatterPoint struct {
	Name          string  `json:"name"`
	Collaboration float64 `json:"collaboration"`
	Success       float64 `json:"success"`
	ROI           float64 `json:"roi"`
}

// CollaborationReport relates collaboration to project success.
type CollaborationReport struct {
	Correlation    float64              `json:"correlation"`
	HighCount      int                  `json:"high_collaboration_projects"`
	LowCount       int                  `json:"low_collaboration_projects"`
	AvgSuccessHigh float64              `json:"avg_success_high"`
	AvgSuccessLow  float64              `json:"avg_success_low"`
	Points         []ScatterPoint       `json:"points"`
	Trend          []dataset.MonthPoint `json:"trend"`
}

// CollaborationOf computes the collaboration/success relationship. The
// correlation is Pearson's r over all projects, or 0 when it is undefined.
func CollaborationOf(ds *dataset.Dataset) CollaborationReport {
	r := CollaborationReport{
		Points: make([]ScatterPoint, 0, len(ds.Projects)),
		Trend:  ds.Timeline,
	}
	if r.Trend == nil {
		r.Trend = []dataset.MonthPoint{}
	}

	xs := make([]float64, 0, len(ds.Projects))
	ys := make([]float64, 0, len(ds.Projects))
	var highSum, lowSum float64
	for _, p := range ds.Projects {
		xs = append(xs, p.CollaborationIndex)
		ys = append(ys, p.SuccessScore)
		r.Points = append(r.Points, ScatterPoint{Name: p.Name, Collaboration: p.CollaborationIndex, Success: p.SuccessScore, ROI: p.ROI})
		if p.CollaborationIndex > HighCollaborationThreshold {
			r.HighCount++
			highSum += p.SuccessScore
		} else {
			r.LowCount++
			lowSum += p.SuccessScore
		}
	}
	if r.HighCount > 0 {
		r.AvgSuccessHigh = highSum / float64(r.HighCount)
	}
	if r.LowCount > 0 {
		r.AvgSuccessLow = lowSum / float64(r.LowCount)
	}

	if len(xs) >= 2 {
		if c := stat.Correlation(xs, ys, nil); !math.IsNaN(c) && !math.IsInf(c, 0) {
			r.Correlation = c
		}
	}
	return r
}

// Strength describes a correlation coefficient in words.
func Strength(r float64) string {
	a := math.Abs(r)
	switch {
	case a >= 0.7:
		return "strong"
	case a >= 0.4:
		return "moderate"
	case a >= 0.2:
		return "weak"
	default:
		return "negligible"
	}
}
