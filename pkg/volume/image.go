// Package volume wraps raw voxel data with its grid geometry and
// materialises the slabs and parcels described by the iterators package.
package volume

import (
	"fmt"

	"volumegrid/internal/models"
	"volumegrid/pkg/iterators"
	"volumegrid/pkg/reference"
)

// Image is a sampled volume together with its voxel and world grids
type Image struct {
	vol    *models.Volume
	grid   *reference.DiagonalCoordinates
	voxels *reference.VoxelCoordinates
}

// NewImage validates vol and builds its coordinate systems. The world grid
// places sample i of axis k at Origin[k] + i*Spacing[k].
func NewImage(vol *models.Volume) (*Image, error) {
	if err := vol.Validate(); err != nil {
		return nil, err
	}

	axes := make([]reference.Axis, len(vol.Shape))
	for i, name := range vol.AxisNames {
		axes[i] = reference.NewRegularAxis(name, vol.Origin[i], vol.Spacing[i], vol.Shape[i])
	}

	grid, err := reference.NewDiagonalCoordinates("world", axes)
	if err != nil {
		return nil, fmt.Errorf("failed to build world grid: %w", err)
	}
	voxels, err := reference.NewVoxelCoordinates("voxel", axes, vol.Shape)
	if err != nil {
		return nil, fmt.Errorf("failed to build voxel grid: %w", err)
	}

	return &Image{vol: vol, grid: grid, voxels: voxels}, nil
}

// Grid returns the world coordinate system
func (im *Image) Grid() *reference.DiagonalCoordinates { return im.grid }

// Voxels returns the voxel coordinate system
func (im *Image) Voxels() *reference.VoxelCoordinates { return im.voxels }

// Shape returns the number of samples along each axis
func (im *Image) Shape() []int { return im.voxels.Shape() }

// Data returns the samples in row-major order
func (im *Image) Data() []float64 { return im.vol.Data }

// Slices returns an iterator over slabs of the image
func (im *Image) Slices(opts iterators.SlicerOptions) (*iterators.SliceIterator, error) {
	return iterators.NewSliceIterator(im.vol.Shape, opts)
}

// AllSlices returns an iterator yielding the whole image as one slab
func (im *Image) AllSlices() (*iterators.AllSliceIterator, error) {
	return iterators.NewAllSliceIterator(im.vol.Shape)
}

// Extract copies the samples selected by ranges. Ranges apply to the
// leading axes and are clamped to the image; trailing axes are taken in
// full. It returns the samples in row-major order and their shape.
func (im *Image) Extract(ranges []iterators.Range) ([]float64, []int, error) {
	shape := im.vol.Shape
	if len(ranges) > len(shape) {
		return nil, nil, fmt.Errorf("%d ranges for %d axes", len(ranges), len(shape))
	}

	sel := make([]iterators.Range, len(shape))
	outShape := make([]int, len(shape))
	total := 1
	for i := range shape {
		r := iterators.Range{Start: 0, Stop: shape[i], Step: 1}
		if i < len(ranges) {
			if ranges[i].Step <= 0 {
				return nil, nil, fmt.Errorf("range %v on axis %d must have a positive step", ranges[i], i)
			}
			r = ranges[i].Clamp(shape[i])
		}
		sel[i] = r
		outShape[i] = r.Len()
		total *= outShape[i]
	}

	out := make([]float64, 0, total)
	if total == 0 {
		return out, outShape, nil
	}

	strides := im.vol.Strides()
	counter := make([]int, len(shape))
	for {
		offset := 0
		for i, c := range counter {
			offset += (sel[i].Start + c*sel[i].Step) * strides[i]
		}
		out = append(out, im.vol.Data[offset])

		// odometer increment, last axis fastest
		k := len(counter) - 1
		for ; k >= 0; k-- {
			counter[k]++
			if counter[k] < outShape[k] {
				break
			}
			counter[k] = 0
		}
		if k < 0 {
			break
		}
	}
	return out, outShape, nil
}

// Select returns the samples where mask is set. The mask must cover the
// whole image.
func (im *Image) Select(mask iterators.Mask) ([]float64, error) {
	if len(mask) != len(im.vol.Data) {
		return nil, fmt.Errorf("mask covers %d samples, image has %d", len(mask), len(im.vol.Data))
	}
	out := make([]float64, 0, mask.Count())
	for i, sel := range mask {
		if sel {
			out = append(out, im.vol.Data[i])
		}
	}
	return out, nil
}
