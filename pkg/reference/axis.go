// Package reference describes the geometry of sampled grids: named,
// bounded axes and the coordinate systems built from them.
package reference

import (
	"fmt"
	"math"
)

// axisKind distinguishes the flavours of Axis
type axisKind int

const (
	genericAxis axisKind = iota
	regularAxis
	voxelAxis
)

// Axis is a single named dimension of a sampled grid. An Axis may carry a
// start, a step and a length; which of these are present depends on how it
// was constructed. Axis values are immutable and comparable with ==.
type Axis struct {
	name   string
	kind   axisKind
	start  float64
	step   float64
	length int
	// bounded reports whether length is meaningful
	bounded bool
}

// NewAxis creates an unbounded axis carrying only a name
func NewAxis(name string) Axis {
	return Axis{name: name, kind: genericAxis}
}

// NewRegularAxis creates an axis sampled at start, start+step, ... with
// length samples. A length of zero or less leaves the axis unbounded.
func NewRegularAxis(name string, start, step float64, length int) Axis {
	return Axis{
		name:    name,
		kind:    regularAxis,
		start:   start,
		step:    step,
		length:  length,
		bounded: length > 0,
	}
}

// NewVoxelAxis creates an integer index axis covering [0, length)
func NewVoxelAxis(name string, length int) Axis {
	return Axis{
		name:    name,
		kind:    voxelAxis,
		start:   0,
		step:    1,
		length:  length,
		bounded: true,
	}
}

// Name returns the axis name
func (a Axis) Name() string { return a.name }

// Length returns the number of samples and whether the axis is bounded
func (a Axis) Length() (int, bool) { return a.length, a.bounded }

// Start returns the first sample position, if the axis has one
func (a Axis) Start() (float64, bool) { return a.start, a.kind != genericAxis }

// Step returns the sample spacing, if the axis has one
func (a Axis) Step() (float64, bool) { return a.step, a.kind != genericAxis }

// IsVoxel reports whether the axis indexes voxels
func (a Axis) IsVoxel() bool { return a.kind == voxelAxis }

// Valid reports whether x is a valid coordinate along the axis.
func (a Axis) Valid(x float64) bool {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return false
	}

	switch a.kind {
	case voxelAxis:
		return x == math.Trunc(x) && x >= 0 && x < float64(a.length)
	case regularAxis:
		if !a.bounded {
			return true
		}
		end := a.start + a.step*float64(a.length)
		if a.step < 0 {
			return x <= a.start && x > end
		}
		return x >= a.start && x < end
	default:
		return true
	}
}

func (a Axis) String() string {
	switch a.kind {
	case voxelAxis:
		return fmt.Sprintf("VoxelAxis(%s, length=%d)", a.name, a.length)
	case regularAxis:
		if !a.bounded {
			return fmt.Sprintf("RegularAxis(%s, start=%g, step=%g)", a.name, a.start, a.step)
		}
		return fmt.Sprintf("RegularAxis(%s, start=%g, step=%g, length=%d)", a.name, a.start, a.step, a.length)
	default:
		return fmt.Sprintf("Axis(%s)", a.name)
	}
}
