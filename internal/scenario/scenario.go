// Package scenario projects collaboration, success and ROI metrics from a
// baseline under a what-if collaboration improvement and investment plan.
//
// Everything here is closed-form: the controls are plain values owned by the
// caller and no state is kept between calls.
package scenario

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
)

// ErrOutOfRange is returned by Controls.Validate for a value outside its bounds.
var ErrOutOfRange = errors.New("scenario control out of range")

const (
	// ROIPerPoint is the ROI gain per point of collaboration increase.
	ROIPerPoint = 15.0
	// SuccessPerPoint is the success-rate gain per point of collaboration increase.
	SuccessPerPoint = 0.6
	// RampMonths is how long improvements take to reach full effect.
	RampMonths = 6
	// Months is the length of the projected timeline.
	Months = 12
)

// Baseline is the current state the scenario is projected from.
type Baseline struct {
	AvgCollaboration float64 `toml:"avg_collaboration" json:"avg_collaboration"`
	AvgSuccess       float64 `toml:"avg_success" json:"avg_success"`
	AvgROI           float64 `toml:"avg_roi" json:"avg_roi"`
	TotalRevenue     float64 `toml:"total_revenue" json:"total_revenue"`
	TotalCosts       float64 `toml:"total_costs" json:"total_costs"`
}

// DefaultBaseline returns the reference portfolio figures.
func DefaultBaseline() Baseline {
	return Baseline{
		AvgCollaboration: 79,
		AvgSuccess:       84,
		AvgROI:           892,
		TotalRevenue:     9_500_000,
		TotalCosts:       995_000,
	}
}

// Bounds describes the allowed range and suggested step of one control.
type Bounds struct {
	Min, Max, Step float64
}

var (
	IncreaseBounds = Bounds{Min: 0, Max: 50, Step: 5}
	ToolsBounds    = Bounds{Min: 10_000, Max: 200_000, Step: 10_000}
	TrainingBounds = Bounds{Min: 5_000, Max: 100_000, Step: 5_000}
)

// Controls are the three what-if inputs.
type Controls struct {
	CollaborationIncrease float64 `json:"collaboration_increase"`
	ToolsInvestment       float64 `json:"tools_investment"`
	TrainingInvestment    float64 `json:"training_investment"`
}

// DefaultControls returns the starting (and reset) scenario.
func DefaultControls() Controls {
	return Controls{CollaborationIncrease: 20, ToolsInvestment: 50_000, TrainingInvestment: 25_000}
}

// Validate checks each control against its bounds.
func (c Controls) Validate() error {
	if err := check("collaboration increase", c.CollaborationIncrease, IncreaseBounds); err != nil {
		return err
	}
	if err := check("tools investment", c.ToolsInvestment, ToolsBounds); err != nil {
		return err
	}
	return check("training investment", c.TrainingInvestment, TrainingBounds)
}

func check(name string, v float64, b Bounds) error {
	if math.IsNaN(v) || v < b.Min || v > b.Max {
		return errors.WithHintf(
			errors.Wrapf(ErrOutOfRange, "%s %v", name, v),
			"%s must be between %s and %s", name, formatBound(b.Min), formatBound(b.Max))
	}
	return nil
}

func formatBound(v float64) string {
	return fmt.Sprintf("%.0f", v)
}

// TotalInvestment is the combined tools and training spend.
func (c Controls) TotalInvestment() float64 {
	return c.ToolsInvestment + c.TrainingInvestment
}

// Projection is the steady-state outcome of a scenario.
type Projection struct {
	Collaboration     float64 `json:"collaboration"`
	Success           float64 `json:"success"`
	ROI               float64 `json:"roi"`
	AdditionalRevenue float64 `json:"additional_revenue"`
	TotalInvestment   float64 `json:"total_investment"`
	NetBenefit        float64 `json:"net_benefit"`
	// RevenueUplift is AdditionalRevenue as a percentage of baseline revenue.
	RevenueUplift float64 `json:"revenue_uplift"`
}

// Positive reports whether the scenario pays for itself.
func (p Projection) Positive() bool {
	return p.NetBenefit > 0
}

// Project computes the steady-state projection for c against b.
func Project(b Baseline, c Controls) Projection {
	inc := c.CollaborationIncrease
	p := Projection{
		Collaboration:   math.Min(b.AvgCollaboration+inc, 100),
		Success:         math.Min(b.AvgSuccess+inc*SuccessPerPoint, 100),
		ROI:             b.AvgROI + inc*ROIPerPoint,
		TotalInvestment: c.TotalInvestment(),
	}
	p.AdditionalRevenue = (p.ROI - b.AvgROI) * b.TotalCosts / 100
	p.NetBenefit = p.AdditionalRevenue - p.TotalInvestment
	if b.TotalRevenue != 0 {
		p.RevenueUplift = p.AdditionalRevenue / b.TotalRevenue * 100
	}
	return p
}

// Bar is one baseline-vs-scenario comparison row.
type Bar struct {
	Metric   string  `json:"metric"`
	Base     float64 `json:"base"`
	Scenario float64 `json:"scenario"`
}

// Comparison lists the headline metrics side by side. ROI is scaled by 1/10
// so the three rows share an axis.
func Comparison(b Baseline, p Projection) []Bar {
	return []Bar{
		{Metric: "Collaboration Score", Base: b.AvgCollaboration, Scenario: p.Collaboration},
		{Metric: "Success Rate", Base: b.AvgSuccess, Scenario: p.Success},
		{Metric: "ROI %", Base: b.AvgROI / 10, Scenario: p.ROI / 10},
	}
}

// Month is one point of the projected timeline.
type Month struct {
	Label     string  `json:"month"`
	Ramp      float64 `json:"ramp"`
	Baseline  float64 `json:"baseline"`
	Projected float64 `json:"projected"`
	// Investment is the monthly spend in thousands.
	Investment float64 `json:"investment"`
}

// Ramp is the fraction of the full improvement realised by month m (1-based).
func Ramp(m int) float64 {
	if m <= 0 {
		return 0
	}
	return math.Min(float64(m)/RampMonths, 1)
}

// Timeline projects ROI/10 month by month with a linear ramp-up.
func Timeline(b Baseline, c Controls) []Month {
	months := make([]Month, 0, Months)
	monthly := c.TotalInvestment() / Months / 1000
	for m := 1; m <= Months; m++ {
		ramp := Ramp(m)
		months = append(months, Month{
			Label:      fmt.Sprintf("M%d", m),
			Ramp:       ramp,
			Baseline:   b.AvgROI / 10,
			Projected:  (b.AvgROI + c.CollaborationIncrease*ramp*ROIPerPoint) / 10,
			Investment: monthly,
		})
	}
	return months
}

// Phase is a stage of the rollout plan.
type Phase struct {
	Months string `json:"months"`
	Focus  string `json:"focus"`
}

// Phases returns the expected rollout timeline.
func Phases() []Phase {
	return []Phase{
		{Months: "1-2", Focus: "Tool setup & initial training"},
		{Months: "3-4", Focus: "Adoption & early improvements"},
		{Months: "5-6", Focus: "Full implementation"},
		{Months: "7-12", Focus: "ROI realization & optimization"},
	}
}

// Report bundles everything shown for one scenario.
type Report struct {
	Baseline   Baseline   `json:"baseline"`
	Controls   Controls   `json:"controls"`
	Projection Projection `json:"projection"`
	Comparison []Bar      `json:"comparison"`
	Timeline   []Month    `json:"timeline"`
	Phases     []Phase    `json:"phases"`
}

// Run validates c and builds the full report.
func Run(b Baseline, c Controls) (*Report, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	p := Project(b, c)
	return &Report{
		Baseline:   b,
		Controls:   c,
		Projection: p,
		Comparison: Comparison(b, p),
		Timeline:   Timeline(b, c),
		Phases:     Phases(),
	}, nil
}
