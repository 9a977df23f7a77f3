package iterators

import "fmt"

// SliceIterator walks a grid of the given shape one slab at a time
type SliceIterator struct {
	slicer   *Slicer
	allslice []Range
}

// NewSliceIterator creates a SliceIterator over shape
func NewSliceIterator(shape []int, opts SlicerOptions) (*SliceIterator, error) {
	s, err := NewSlicer(shape, opts)
	if err != nil {
		return nil, err
	}

	all := make([]Range, s.nslicedim)
	for i := range all {
		all[i] = Range{Start: s.start[i], Stop: s.end[i], Step: s.step[i]}
	}
	return &SliceIterator{slicer: s, allslice: all}, nil
}

// Kind returns KindSlice
func (it *SliceIterator) Kind() Kind { return KindSlice }

// AllSlice returns the ranges covering every participating dimension in full
func (it *SliceIterator) AllSlice() []Range {
	return append([]Range(nil), it.allslice...)
}

// Reset restarts the traversal
func (it *SliceIterator) Reset() { it.slicer.Reset() }

// NextSlice returns the next slab, or false when the traversal is over
func (it *SliceIterator) NextSlice() (SliceRecord, bool) {
	ranges, _, err := it.slicer.Next()
	if err != nil {
		return SliceRecord{}, false
	}
	return SliceRecord{Slice: ranges}, true
}

// Next implements Iterator
func (it *SliceIterator) Next() (Record, bool) {
	rec, ok := it.NextSlice()
	if !ok {
		return nil, false
	}
	return rec, true
}

// AllSliceIterator yields a single record covering the whole first axis
type AllSliceIterator struct {
	extent int
	done   bool
}

// NewAllSliceIterator creates an AllSliceIterator over shape
func NewAllSliceIterator(shape []int) (*AllSliceIterator, error) {
	if len(shape) == 0 {
		return nil, fmt.Errorf("%w: empty shape", ErrInvalidSlicer)
	}
	return &AllSliceIterator{extent: shape[0]}, nil
}

// Kind returns KindAll
func (it *AllSliceIterator) Kind() Kind { return KindAll }

// Reset restarts the traversal
func (it *AllSliceIterator) Reset() { it.done = false }

// NextSlice returns the one record [0, shape[0], 1], then false
func (it *AllSliceIterator) NextSlice() (SliceRecord, bool) {
	if it.done {
		return SliceRecord{}, false
	}
	it.done = true
	return SliceRecord{Slice: []Range{{Start: 0, Stop: it.extent, Step: 1}}}, true
}

// Next implements Iterator
func (it *AllSliceIterator) Next() (Record, bool) {
	rec, ok := it.NextSlice()
	if !ok {
		return nil, false
	}
	return rec, true
}

// compile-time interface checks
var (
	_ Iterator = (*SliceIterator)(nil)
	_ Iterator = (*AllSliceIterator)(nil)
)
