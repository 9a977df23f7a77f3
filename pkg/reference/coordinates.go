package reference

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrAxisNotFound is returned when an axis name is not part of a
	// coordinate system.
	ErrAxisNotFound = errors.New("axis not found")

	// ErrDuplicateAxis is returned when two axes share a name
	ErrDuplicateAxis = errors.New("duplicate axis name")

	// ErrInvalidOrder is returned when a reordering is not a permutation
	ErrInvalidOrder = errors.New("order is not a permutation of the axes")

	// ErrDimensionMismatch is returned when a coordinate tuple does not
	// have one entry per axis.
	ErrDimensionMismatch = errors.New("coordinate dimension mismatch")

	// ErrShapeMismatch is returned when a shape does not pair with the axes
	ErrShapeMismatch = errors.New("shape does not match axes")

	// ErrMissingGeometry is returned when an axis lacks the length, start or
	// step a coordinate system needs.
	ErrMissingGeometry = errors.New("axis is missing geometry")
)

// CoordinateSystem is implemented by every coordinate system variant.
// Two coordinate systems are equal when their names and their axes, in
// order, are equal.
type CoordinateSystem interface {
	Name() string
	Axes() []Axis
	Equal(other CoordinateSystem) bool
}

// Coordinates is an ordered, immutable collection of uniquely named axes.
// Reorder and Reverse return new instances; nothing modifies an existing one.
type Coordinates struct {
	name string
	axes axisMap
}

// NewCoordinates creates a coordinate system from a name and ordered axes.
// Axis names must be unique.
func NewCoordinates(name string, axes []Axis) (*Coordinates, error) {
	m, err := newAxisMap(axes)
	if err != nil {
		return nil, fmt.Errorf("coordinate system %q: %w", name, err)
	}
	return &Coordinates{name: name, axes: m}, nil
}

// Name returns the coordinate system name
func (c *Coordinates) Name() string { return c.name }

// Axes returns a copy of the axes in order
func (c *Coordinates) Axes() []Axis { return c.axes.values() }

// AxisNames returns the axis names in order
func (c *Coordinates) AxisNames() []string { return c.axes.names() }

// NDim returns the number of axes
func (c *Coordinates) NDim() int { return c.axes.len() }

// Axis returns the named axis. The error lists the available names.
func (c *Coordinates) Axis(name string) (Axis, error) {
	ax, ok := c.axes.get(name)
	if !ok {
		return Axis{}, fmt.Errorf("%w: %q, names are %v", ErrAxisNotFound, name, c.AxisNames())
	}
	return ax, nil
}

// GetAxis returns the named axis and whether it exists
func (c *Coordinates) GetAxis(name string) (Axis, bool) { return c.axes.get(name) }

// HasAxis reports whether the named axis exists
func (c *Coordinates) HasAxis(name string) bool {
	_, ok := c.axes.get(name)
	return ok
}

// Reorder returns a coordinate system whose i-th axis is the order[i]-th
// axis of c. An empty name keeps the current one.
func (c *Coordinates) Reorder(name string, order []int) (*Coordinates, error) {
	if name == "" {
		name = c.name
	}
	if len(order) != c.NDim() {
		return nil, fmt.Errorf("%w: got %d entries for %d axes", ErrInvalidOrder, len(order), c.NDim())
	}

	seen := make([]bool, len(order))
	axes := make([]Axis, len(order))
	for i, j := range order {
		if j < 0 || j >= len(order) || seen[j] {
			return nil, fmt.Errorf("%w: %v", ErrInvalidOrder, order)
		}
		seen[j] = true
		axes[i] = c.axes.axes[j]
	}
	return NewCoordinates(name, axes)
}

// Reverse returns a coordinate system with the axes in reverse order. An
// empty name keeps the current one.
func (c *Coordinates) Reverse(name string) *Coordinates {
	if name == "" {
		name = c.name
	}
	axes := c.Axes()
	slices.Reverse(axes)
	// names are already unique
	m, _ := newAxisMap(axes)
	return &Coordinates{name: name, axes: m}
}

// IsValid reports whether every entry of x is valid along its axis
func (c *Coordinates) IsValid(x []float64) (bool, error) {
	if len(x) != c.NDim() {
		return false, fmt.Errorf("%w: got %d values for %d axes", ErrDimensionMismatch, len(x), c.NDim())
	}
	for i, ax := range c.axes.axes {
		if !ax.Valid(x[i]) {
			return false, nil
		}
	}
	return true, nil
}

// Equal reports whether other has the same name and axes
func (c *Coordinates) Equal(other CoordinateSystem) bool {
	return Equal(c, other)
}

func (c *Coordinates) String() string {
	parts := make([]string, c.NDim())
	for i, ax := range c.axes.axes {
		parts[i] = ax.String()
	}
	return fmt.Sprintf("{name: %q, axes: [%s]}", c.name, strings.Join(parts, ", "))
}

// Equal reports whether two coordinate systems have the same name and the
// same axes in the same order. A nil system is equal to nothing.
func Equal(a, b CoordinateSystem) bool {
	if isNil(a) || isNil(b) {
		return false
	}
	return a.Name() == b.Name() && slices.Equal(a.Axes(), b.Axes())
}

func isNil(c CoordinateSystem) bool {
	if c == nil {
		return true
	}
	switch v := c.(type) {
	case *Coordinates:
		return v == nil
	case *VoxelCoordinates:
		return v == nil || v.Coordinates == nil
	case *DiagonalCoordinates:
		return v == nil || v.Coordinates == nil
	}
	return false
}
