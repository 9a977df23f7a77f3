package iterators

import (
	"fmt"
	"slices"
)

// ParcelIterator yields one mask per label. With scalar keys the mask
// covers every element of the flattened label array; with compound keys
// the labels are read as rows and the mask covers one row's width, true
// where every row matches its component of the key.
type ParcelIterator[L Label] struct {
	labels   LabelArray[L]
	labelset []Key[L]
	compound bool
	pos      int
}

// NewParcelIterator creates a ParcelIterator. If keys is nil the label set
// is every distinct value of labels, in ascending order. Explicit keys are
// visited in the given order with repeats dropped.
func NewParcelIterator[L Label](labels LabelArray[L], keys []Key[L]) (*ParcelIterator[L], error) {
	it := &ParcelIterator[L]{labels: labels}

	if keys == nil {
		it.labelset = ScalarKeys(labels.Unique()...)
		return it, nil
	}

	for _, k := range keys {
		if slices.ContainsFunc(it.labelset, k.Equal) {
			continue
		}
		it.labelset = append(it.labelset, k)
	}
	if len(it.labelset) == 0 {
		return it, nil
	}

	it.compound = it.labelset[0].IsCompound()
	for _, k := range it.labelset {
		if k.IsCompound() != it.compound {
			return nil, ErrMixedKeys
		}
		if !k.IsCompound() {
			if len(k.values) != 1 {
				return nil, fmt.Errorf("%w: scalar key has %d values", ErrInvalidKey, len(k.values))
			}
			continue
		}
		if len(labels.shape) == 0 || len(k.values) != labels.Rows() {
			return nil, fmt.Errorf("%w: key %v has %d components for %d rows", ErrInvalidKey, k, len(k.values), labels.Rows())
		}
	}
	return it, nil
}

// Kind returns KindParcel
func (it *ParcelIterator[L]) Kind() Kind { return KindParcel }

// Labels returns the keys in traversal order
func (it *ParcelIterator[L]) Labels() []Key[L] {
	return append([]Key[L](nil), it.labelset...)
}

// Reset restarts the traversal
func (it *ParcelIterator[L]) Reset() { it.pos = 0 }

// NextParcel returns the mask for the next label, or false when every
// label has been visited.
func (it *ParcelIterator[L]) NextParcel() (ParcelRecord[L], bool) {
	if it.pos >= len(it.labelset) {
		return ParcelRecord[L]{}, false
	}
	key := it.labelset[it.pos]
	it.pos++

	if !key.IsCompound() {
		return ParcelRecord[L]{Label: key, Where: equalMask(it.labels.data, key.values[0])}, true
	}

	var where Mask
	for r, v := range key.values {
		rowMask := equalMask(it.labels.Row(r), v)
		if where == nil {
			where = rowMask
			continue
		}
		for i := range where {
			where[i] = where[i] && rowMask[i]
		}
	}
	return ParcelRecord[L]{Label: key, Where: where}, true
}

// Next implements Iterator
func (it *ParcelIterator[L]) Next() (Record, bool) {
	rec, ok := it.NextParcel()
	if !ok {
		return nil, false
	}
	return rec, true
}

func equalMask[L Label](data []L, v L) Mask {
	m := make(Mask, len(data))
	for i, x := range data {
		m[i] = x == v
	}
	return m
}
