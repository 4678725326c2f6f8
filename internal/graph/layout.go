package graph

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/toshiksharma271/collab-insight-engine/internal/dataset"
	"gonum.org/v1/gonum/spatial/r2"
)

// RadiusFactor is the layout radius as a fraction of the shorter canvas side.
const RadiusFactor = 0.3

// ErrBadDimensions is returned by CheckDimensions for a canvas that cannot hold a layout.
var ErrBadDimensions = errors.New("canvas width and height must be positive")

// Positioned is a node with its computed canvas coordinates.
type Positioned struct {
	dataset.Node
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// CheckDimensions validates a canvas size.
func CheckDimensions(width, height float64) error {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return errors.WithHintf(errors.Wrapf(ErrBadDimensions, "got %vx%v", width, height),
			"pass a canvas size such as --width 800 --height 400")
	}
	return nil
}

// Center returns the canvas midpoint.
func Center(width, height float64) r2.Vec {
	return r2.Vec{X: width / 2, Y: height / 2}
}

// Radius returns the radius of the layout circle for a canvas.
func Radius(width, height float64) float64 {
	return RadiusFactor * math.Min(width, height)
}

// Circular places nodes evenly on a circle around the canvas center, in input
// order starting at angle 0. It returns nil for an empty node list or a
// canvas that fails CheckDimensions.
func Circular(nodes []dataset.Node, width, height float64) []Positioned {
	n := len(nodes)
	if n == 0 || CheckDimensions(width, height) != nil {
		return nil
	}

	c := Center(width, height)
	r := Radius(width, height)

	out := make([]Positioned, n)
	for i, node := range nodes {
		theta := float64(i) / float64(n) * 2 * math.Pi
		p := r2.Add(c, r2.Scale(r, r2.Vec{X: math.Cos(theta), Y: math.Sin(theta)}))
		out[i] = Positioned{Node: node, X: p.X, Y: p.Y}
	}
	return out
}
