// Package iterators walks N-dimensional grids. Iterators yield descriptors
// of what to read (slice ranges, boolean masks), never the data itself.
//
// Four traversals are provided:
//   - SliceIterator steps along one axis, a slab at a time
//   - AllSliceIterator yields the whole first axis in one step
//   - ParcelIterator yields one mask per label of a label array
//   - SliceParcelIterator yields one mask per label within each row
//
// Iterators are not safe for concurrent use.
package iterators

import (
	"errors"
	"fmt"
	"iter"
)

// ErrExhausted is returned when a Slicer is advanced past its last step
var ErrExhausted = errors.New("iterator exhausted")

// Kind tags iterators and the records they produce
type Kind string

const (
	KindSlice       Kind = "slice"
	KindParcel      Kind = "parcel"
	KindSliceParcel Kind = "slice/parcel"
	KindAll         Kind = "all"
)

// Range selects Start, Start+Step, ... up to but excluding Stop along one
// dimension.
type Range struct {
	Start, Stop, Step int
}

// Len returns the number of indices selected, ignoring any array bound
func (r Range) Len() int {
	if r.Step == 0 {
		return 0
	}
	if r.Step > 0 {
		if r.Stop <= r.Start {
			return 0
		}
		return (r.Stop - r.Start + r.Step - 1) / r.Step
	}
	if r.Stop >= r.Start {
		return 0
	}
	return (r.Start - r.Stop - r.Step - 1) / -r.Step
}

// Clamp limits the range to an axis of length n
func (r Range) Clamp(n int) Range {
	clampTo := func(v int) int {
		if v < 0 {
			return 0
		}
		if v > n {
			return n
		}
		return v
	}
	return Range{Start: clampTo(r.Start), Stop: clampTo(r.Stop), Step: r.Step}
}

func (r Range) String() string {
	return fmt.Sprintf("%d:%d:%d", r.Start, r.Stop, r.Step)
}

// Record is one step of a traversal. It is one of SliceRecord,
// ParcelRecord or SliceParcelRecord.
type Record interface {
	Kind() Kind
	isRecord()
}

// SliceRecord describes a slab: one Range per participating dimension
type SliceRecord struct {
	Slice []Range
}

func (SliceRecord) Kind() Kind { return KindSlice }
func (SliceRecord) isRecord()  {}

// ParcelRecord selects the elements carrying Label
type ParcelRecord[L Label] struct {
	Label Key[L]
	Where Mask
}

func (ParcelRecord[L]) Kind() Kind { return KindParcel }
func (ParcelRecord[L]) isRecord()  {}

// SliceParcelRecord selects the elements of row Slice carrying Label
type SliceParcelRecord[L Label] struct {
	Label L
	Where Mask
	Slice int
}

func (SliceParcelRecord[L]) Kind() Kind { return KindSliceParcel }
func (SliceParcelRecord[L]) isRecord()  {}

// Iterator is a pull-based traversal. Next returns false once the
// traversal is finished; Reset starts it again.
type Iterator interface {
	Kind() Kind
	Next() (Record, bool)
	Reset()
}

// All returns a sequence over the remaining records of it
func All(it Iterator) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for {
			rec, ok := it.Next()
			if !ok || !yield(rec) {
				return
			}
		}
	}
}

// Mask is a boolean selection over flattened elements
type Mask []bool

// Count returns the number of selected elements
func (m Mask) Count() int {
	n := 0
	for _, v := range m {
		if v {
			n++
		}
	}
	return n
}

// Indices returns the positions of the selected elements
func (m Mask) Indices() []int {
	out := make([]int, 0, m.Count())
	for i, v := range m {
		if v {
			out = append(out, i)
		}
	}
	return out
}
