package reference

import "fmt"

// VoxelCoordinates is a coordinate system over an integer voxel grid. With
// shape [3,4,5] the valid indices are [0,2] x [0,3] x [0,4].
type VoxelCoordinates struct {
	*Coordinates
	shape []int
}

// NewVoxelCoordinates creates a voxel coordinate system. If shape is nil it
// is taken from the axis lengths; otherwise it must have one entry per axis.
// Each axis is replaced by a voxel axis of the same name bound to its length.
func NewVoxelCoordinates(name string, axes []Axis, shape []int) (*VoxelCoordinates, error) {
	if shape == nil {
		shape = make([]int, len(axes))
		for i, ax := range axes {
			n, ok := ax.Length()
			if !ok {
				return nil, fmt.Errorf("%w: axis %q has no length", ErrMissingGeometry, ax.Name())
			}
			shape[i] = n
		}
	} else {
		if len(shape) != len(axes) {
			return nil, fmt.Errorf("%w: %d lengths for %d axes", ErrShapeMismatch, len(shape), len(axes))
		}
		shape = append([]int(nil), shape...)
	}

	voxelAxes := make([]Axis, len(axes))
	for i, ax := range axes {
		if shape[i] < 0 {
			return nil, fmt.Errorf("%w: negative length %d for axis %q", ErrShapeMismatch, shape[i], ax.Name())
		}
		voxelAxes[i] = NewVoxelAxis(ax.Name(), shape[i])
	}

	c, err := NewCoordinates(name, voxelAxes)
	if err != nil {
		return nil, err
	}
	return &VoxelCoordinates{Coordinates: c, shape: shape}, nil
}

// Shape returns the number of voxels along each axis
func (v *VoxelCoordinates) Shape() []int {
	return append([]int(nil), v.shape...)
}

// Size returns the total number of voxels
func (v *VoxelCoordinates) Size() int {
	n := 1
	for _, s := range v.shape {
		n *= s
	}
	return n
}
