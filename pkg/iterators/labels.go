package iterators

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrInvalidShape is returned when label data does not fill its shape
	ErrInvalidShape = errors.New("invalid label shape")

	// ErrLengthMismatch is returned when labels and keys cannot be paired
	ErrLengthMismatch = errors.New("labels and keys do not have the same length")

	// ErrInvalidKey is returned when a compound key does not have one
	// component per label row.
	ErrInvalidKey = errors.New("invalid label key")

	// ErrMixedKeys is returned when scalar and compound keys are mixed
	ErrMixedKeys = errors.New("scalar and compound keys cannot be mixed")
)

// Label is the element type of a label array
type Label interface {
	cmp.Ordered
}

// LabelArray is a row-major N-dimensional array of labels
type LabelArray[L Label] struct {
	data  []L
	shape []int
}

// NewLabelArray copies data into an array of the given shape. Without a
// shape the array is one-dimensional.
func NewLabelArray[L Label](data []L, shape ...int) (LabelArray[L], error) {
	if len(shape) == 0 {
		shape = []int{len(data)}
	}
	n := 1
	for _, s := range shape {
		if s < 0 {
			return LabelArray[L]{}, fmt.Errorf("%w: negative dimension in %v", ErrInvalidShape, shape)
		}
		n *= s
	}
	if n != len(data) {
		return LabelArray[L]{}, fmt.Errorf("%w: shape %v holds %d elements, got %d", ErrInvalidShape, shape, n, len(data))
	}
	return LabelArray[L]{data: append([]L(nil), data...), shape: append([]int(nil), shape...)}, nil
}

// Shape returns the array shape
func (a LabelArray[L]) Shape() []int { return append([]int(nil), a.shape...) }

// Len returns the number of elements
func (a LabelArray[L]) Len() int { return len(a.data) }

// Flat returns a copy of the elements in row-major order
func (a LabelArray[L]) Flat() []L { return append([]L(nil), a.data...) }

// Rows returns the length of the first dimension
func (a LabelArray[L]) Rows() int {
	if len(a.shape) == 0 {
		return 0
	}
	return a.shape[0]
}

// Row returns a copy of row i flattened to one dimension
func (a LabelArray[L]) Row(i int) []L {
	rows := a.Rows()
	if rows == 0 {
		return nil
	}
	width := len(a.data) / rows
	return append([]L(nil), a.data[i*width:(i+1)*width]...)
}

// Unique returns the distinct labels in ascending order
func (a LabelArray[L]) Unique() []L {
	return Unique(a.data)
}

// Unique returns the distinct values of v in ascending order
func Unique[L Label](v []L) []L {
	out := append([]L(nil), v...)
	slices.Sort(out)
	return slices.Compact(out)
}

// uniqueOrdered drops repeated values, keeping first occurrences in order
func uniqueOrdered[L Label](v []L) []L {
	seen := make(map[L]struct{}, len(v))
	out := make([]L, 0, len(v))
	for _, x := range v {
		if _, ok := seen[x]; ok {
			continue
		}
		seen[x] = struct{}{}
		out = append(out, x)
	}
	return out
}

// Key identifies a parcel: either a single label compared against every
// element, or a compound label with one component per row.
type Key[L Label] struct {
	values   []L
	compound bool
}

// ScalarKey returns a key matching elements equal to v
func ScalarKey[L Label](v L) Key[L] {
	return Key[L]{values: []L{v}}
}

// CompoundKey returns a key matching columns whose i-th row equals v[i]
func CompoundKey[L Label](v ...L) Key[L] {
	return Key[L]{values: append([]L(nil), v...), compound: true}
}

// ScalarKeys returns one scalar key per value
func ScalarKeys[L Label](v ...L) []Key[L] {
	keys := make([]Key[L], len(v))
	for i, x := range v {
		keys[i] = ScalarKey(x)
	}
	return keys
}

// IsCompound reports whether k has one component per row
func (k Key[L]) IsCompound() bool { return k.compound }

// Scalar returns the label of a scalar key
func (k Key[L]) Scalar() L {
	var zero L
	if k.compound || len(k.values) == 0 {
		return zero
	}
	return k.values[0]
}

// Values returns the key components
func (k Key[L]) Values() []L { return append([]L(nil), k.values...) }

// Equal reports whether two keys match the same elements
func (k Key[L]) Equal(o Key[L]) bool {
	return k.compound == o.compound && slices.Equal(k.values, o.values)
}

func (k Key[L]) String() string {
	if k.compound {
		return fmt.Sprint(k.values)
	}
	return fmt.Sprint(k.Scalar())
}
