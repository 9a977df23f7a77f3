package iterators

import (
	"errors"
	"fmt"
)

// ErrInvalidSlicer is returned when slicer options do not fit the shape
var ErrInvalidSlicer = errors.New("invalid slicer options")

// SlicerOptions configures a Slicer. The zero value steps one element at a
// time along axis 0 starting at index 0.
type SlicerOptions struct {
	// Axis is the dimension being stepped
	Axis int

	// NSliceDim is the number of leading dimensions described by each
	// step. It is raised to at least Axis+1.
	NSliceDim int

	// NSlice is the number of Axis elements consumed per step (default 1)
	NSlice int

	// Start and Step give the first index and stride of each participating
	// dimension. They default to 0 and 1; if set they must have at least
	// NSliceDim entries.
	Start []int
	Step  []int
}

// Slicer steps through an N-dimensional shape along one axis. Each step
// describes the leading NSliceDim dimensions: fixed ranges on every
// dimension except Axis, which advances by NSlice*Step[Axis] per step.
//
// The last step is flagged as such when it is returned, so callers never
// need to make an extra call to discover the end.
type Slicer struct {
	end       []int
	start     []int
	step      []int
	axis      int
	nslicedim int
	nslice    int

	cursor int
	done   bool
}

// NewSlicer creates a Slicer over a grid whose exclusive bound along each
// dimension is given by end. The returned Slicer is ready to step.
// If Start[Axis] is already at or past end[Axis] the Slicer starts out
// exhausted and Next never returns a step, rather than returning one
// empty step flagged as last.
func NewSlicer(end []int, opts SlicerOptions) (*Slicer, error) {
	ndim := len(end)
	if opts.Axis < 0 || opts.Axis >= ndim {
		return nil, fmt.Errorf("%w: axis %d out of range for %d dimensions", ErrInvalidSlicer, opts.Axis, ndim)
	}

	nslicedim := max(opts.NSliceDim, opts.Axis+1)
	if nslicedim > ndim {
		return nil, fmt.Errorf("%w: nslicedim %d exceeds %d dimensions", ErrInvalidSlicer, nslicedim, ndim)
	}

	nslice := opts.NSlice
	if nslice == 0 {
		nslice = 1
	}
	if nslice < 0 {
		return nil, fmt.Errorf("%w: nslice must be positive, got %d", ErrInvalidSlicer, nslice)
	}

	start, err := fillDefault(opts.Start, nslicedim, 0, "start")
	if err != nil {
		return nil, err
	}
	step, err := fillDefault(opts.Step, nslicedim, 1, "step")
	if err != nil {
		return nil, err
	}
	if step[opts.Axis] <= 0 {
		return nil, fmt.Errorf("%w: step along axis %d must be positive, got %d", ErrInvalidSlicer, opts.Axis, step[opts.Axis])
	}

	s := &Slicer{
		end:       append([]int(nil), end...),
		start:     start,
		step:      step,
		axis:      opts.Axis,
		nslicedim: nslicedim,
		nslice:    nslice,
	}
	s.Reset()
	return s, nil
}

func fillDefault(v []int, n, def int, what string) ([]int, error) {
	if v == nil {
		out := make([]int, n)
		for i := range out {
			out[i] = def
		}
		return out, nil
	}
	if len(v) < n {
		return nil, fmt.Errorf("%w: %s has %d entries, need %d", ErrInvalidSlicer, what, len(v), n)
	}
	return append([]int(nil), v[:n]...), nil
}

// Reset rewinds the Slicer to the start of the stepped axis
func (s *Slicer) Reset() {
	s.cursor = s.start[s.axis]
	s.done = s.cursor >= s.end[s.axis]
}

// Axis returns the stepped dimension
func (s *Slicer) Axis() int { return s.axis }

// NDim returns the number of dimensions of the underlying shape
func (s *Slicer) NDim() int { return len(s.end) }

// NSliceDim returns the number of dimensions described per step
func (s *Slicer) NSliceDim() int { return s.nslicedim }

// Done reports whether the last step has been returned
func (s *Slicer) Done() bool { return s.done }

// Next returns the ranges of the next step and whether it is the last one.
// Once the last step has been returned, Next fails with ErrExhausted.
func (s *Slicer) Next() ([]Range, bool, error) {
	if s.done {
		return nil, true, ErrExhausted
	}

	ranges := make([]Range, s.nslicedim)
	for i := range ranges {
		if i != s.axis {
			ranges[i] = Range{Start: s.start[i], Stop: s.end[i], Step: s.step[i]}
			continue
		}
		advance := s.nslice * s.step[i]
		ranges[i] = Range{Start: s.cursor, Stop: s.cursor + advance, Step: s.step[i]}
		s.cursor += advance
	}

	if s.cursor >= s.end[s.axis] {
		s.done = true
	}
	return ranges, s.done, nil
}
