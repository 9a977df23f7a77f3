package models

import "fmt"

// Volume is an N-dimensional sampled image
type Volume struct {
	// Data holds the samples in row-major order
	Data []float64

	// Shape is the number of samples along each axis, slowest first
	Shape []int

	// Spacing is the physical distance between samples along each axis in mm
	Spacing []float64

	// Origin is the physical position of the first sample along each axis
	Origin []float64

	// AxisNames names each axis, e.g. zspace, yspace, xspace
	AxisNames []string
}

// NewVolume creates a zero-filled volume with unit spacing, zero origin and
// default axis names.
func NewVolume(shape ...int) *Volume {
	n := 1
	for _, s := range shape {
		n *= s
	}

	v := &Volume{
		Data:      make([]float64, n),
		Shape:     append([]int(nil), shape...),
		Spacing:   make([]float64, len(shape)),
		Origin:    make([]float64, len(shape)),
		AxisNames: DefaultAxisNames(len(shape)),
	}
	for i := range v.Spacing {
		v.Spacing[i] = 1
	}
	return v
}

// DefaultAxisNames returns the conventional names for an n-dimensional image:
// xspace, yspace, zspace and time, slowest axis first.
func DefaultAxisNames(n int) []string {
	spatial := []string{"time", "zspace", "yspace", "xspace"}
	if n <= len(spatial) {
		return append([]string(nil), spatial[len(spatial)-n:]...)
	}
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("axis%d", i)
	}
	return names
}

// Validate checks that every per-axis field matches the shape and that the
// data fills it.
func (v *Volume) Validate() error {
	ndim := len(v.Shape)
	if ndim == 0 {
		return fmt.Errorf("volume has no axes")
	}
	if len(v.Spacing) != ndim || len(v.Origin) != ndim || len(v.AxisNames) != ndim {
		return fmt.Errorf("volume has %d axes but %d spacings, %d origins and %d names",
			ndim, len(v.Spacing), len(v.Origin), len(v.AxisNames))
	}
	if n := v.Len(); n != len(v.Data) {
		return fmt.Errorf("volume shape %v holds %d samples, got %d", v.Shape, n, len(v.Data))
	}
	return nil
}

// Len returns the number of samples the shape holds
func (v *Volume) Len() int {
	n := 1
	for _, s := range v.Shape {
		n *= s
	}
	return n
}

// Strides returns the row-major stride of each axis
func (v *Volume) Strides() []int {
	strides := make([]int, len(v.Shape))
	acc := 1
	for i := len(v.Shape) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= v.Shape[i]
	}
	return strides
}
