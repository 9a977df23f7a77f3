package volume

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/floats"

	"volumegrid/internal/monitoring"
	"volumegrid/pkg/iterators"
)

// SliceImage renders the slab described by rec as a 16-bit grayscale image.
// The slab must reduce to a single plane over the last two axes. Intensities
// are scaled so the image minimum maps to black and the maximum to white.
func (im *Image) SliceImage(rec iterators.SliceRecord) (*image.Gray16, error) {
	if len(im.vol.Shape) < 2 {
		return nil, fmt.Errorf("cannot render a %d-dimensional image", len(im.vol.Shape))
	}

	data, shape, err := im.Extract(rec.Slice)
	if err != nil {
		return nil, err
	}

	ndim := len(shape)
	for i := 0; i < ndim-2; i++ {
		if shape[i] != 1 {
			return nil, fmt.Errorf("slab %v is not a single plane: shape %v", rec.Slice, shape)
		}
	}
	height, width := shape[ndim-2], shape[ndim-1]

	lo, hi := 0.0, 1.0
	if len(im.vol.Data) > 0 {
		lo, hi = floats.Min(im.vol.Data), floats.Max(im.vol.Data)
	}
	scale := 0.0
	if hi > lo {
		scale = 65535 / (hi - lo)
	}

	img := image.NewGray16(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := (data[y*width+x] - lo) * scale
			img.SetGray16(x, y, color.Gray16{Y: uint16(v + 0.5)})
		}
	}
	return img, nil
}

// SaveSlice saves a rendered slice as a JPEG image
func SaveSlice(img image.Image, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return jpeg.Encode(file, img, &jpeg.Options{Quality: 90})
}

// SaveSliceSequence walks the image with a slice iterator configured by
// opts and writes every slab as slice_NNN.jpg under outputDir. It returns
// the number of files written.
func (im *Image) SaveSliceSequence(outputDir string, opts iterators.SlicerOptions) (int, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create slice directory: %w", err)
	}

	it, err := im.Slices(opts)
	if err != nil {
		return 0, err
	}

	n := 0
	for {
		rec, ok := it.NextSlice()
		if !ok {
			break
		}
		img, err := im.SliceImage(rec)
		if err != nil {
			return n, err
		}

		filename := filepath.Join(outputDir, fmt.Sprintf("slice_%03d.jpg", n))
		if err := SaveSlice(img, filename); err != nil {
			return n, fmt.Errorf("failed to save %s: %w", filename, err)
		}
		n++
	}

	monitoring.Logf("saved %d slices to %s", n, outputDir)
	return n, nil
}
