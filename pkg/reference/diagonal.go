package reference

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// DiagonalCoordinates is a coordinate system whose axes are regularly
// sampled, so that the start and step of each axis fully determine an
// orthogonal affine map from voxel indices to positions.
type DiagonalCoordinates struct {
	*Coordinates
	shape []int
}

// UnboundedLength marks a Shape entry for an axis without a length
const UnboundedLength = -1

// NewDiagonalCoordinates creates a diagonal coordinate system. Every axis
// must carry a start and a step; a length is optional.
func NewDiagonalCoordinates(name string, axes []Axis) (*DiagonalCoordinates, error) {
	shape := make([]int, len(axes))
	for i, ax := range axes {
		if _, ok := ax.Start(); !ok {
			return nil, fmt.Errorf("%w: axis %q has no start", ErrMissingGeometry, ax.Name())
		}
		if _, ok := ax.Step(); !ok {
			return nil, fmt.Errorf("%w: axis %q has no step", ErrMissingGeometry, ax.Name())
		}
		n, ok := ax.Length()
		if !ok {
			n = UnboundedLength
		}
		shape[i] = n
	}

	c, err := NewCoordinates(name, axes)
	if err != nil {
		return nil, err
	}
	return &DiagonalCoordinates{Coordinates: c, shape: shape}, nil
}

// Shape returns the axis lengths. Axes without a length report
// UnboundedLength.
func (d *DiagonalCoordinates) Shape() []int {
	return append([]int(nil), d.shape...)
}

// Transform returns the (ndim+1)x(ndim+1) homogeneous transform with the
// axis steps on the diagonal and the axis starts in the last column.
func (d *DiagonalCoordinates) Transform() *mat.Dense {
	n := d.NDim()
	t := mat.NewDense(n+1, n+1, nil)
	t.Set(n, n, 1)
	for i, ax := range d.axes.axes {
		t.Set(i, i, ax.step)
		t.Set(i, n, ax.start)
	}
	return t
}

// Map applies the transform to a voxel index and returns the position
func (d *DiagonalCoordinates) Map(index []float64) ([]float64, error) {
	return d.apply(d.Transform(), index)
}

// Unmap applies the inverse transform to a position and returns the
// (possibly fractional) voxel index.
func (d *DiagonalCoordinates) Unmap(point []float64) ([]float64, error) {
	var inv mat.Dense
	if err := inv.Inverse(d.Transform()); err != nil {
		return nil, fmt.Errorf("inverting transform of %q: %w", d.Name(), err)
	}
	return d.apply(&inv, point)
}

func (d *DiagonalCoordinates) apply(t mat.Matrix, x []float64) ([]float64, error) {
	n := d.NDim()
	if len(x) != n {
		return nil, fmt.Errorf("%w: got %d values for %d axes", ErrDimensionMismatch, len(x), n)
	}

	h := mat.NewVecDense(n+1, nil)
	for i, v := range x {
		h.SetVec(i, v)
	}
	h.SetVec(n, 1)

	var out mat.VecDense
	out.MulVec(t, h)

	res := make([]float64, n)
	for i := range res {
		res[i] = out.AtVec(i)
	}
	return res, nil
}
