package iterators

import "fmt"

// SliceParcelIterator walks rows of labels and, within each row, the
// labels listed for that row. Row i is paired with keys[i]; rows whose key
// list is empty are skipped.
type SliceParcelIterator[L Label] struct {
	rows [][]L
	keys [][]L

	slice int
	pos   int
}

// NewSliceParcelIterator pairs each row of labels (flattened) with the
// corresponding entry of keys.
func NewSliceParcelIterator[L Label](labels LabelArray[L], keys [][]L) (*SliceParcelIterator[L], error) {
	rows := make([][]L, labels.Rows())
	for i := range rows {
		rows[i] = labels.Row(i)
	}
	return NewSliceParcelIteratorFromRows(rows, keys)
}

// NewSliceParcelIteratorFromRows is like NewSliceParcelIterator for rows
// that need not share a length.
func NewSliceParcelIteratorFromRows[L Label](rows [][]L, keys [][]L) (*SliceParcelIterator[L], error) {
	if len(rows) != len(keys) {
		return nil, fmt.Errorf("%w: %d rows, %d key lists", ErrLengthMismatch, len(rows), len(keys))
	}

	it := &SliceParcelIterator[L]{
		rows: rows,
		keys: make([][]L, len(keys)),
	}
	for i, k := range keys {
		it.keys[i] = uniqueOrdered(k)
	}
	return it, nil
}

// Kind returns KindSliceParcel
func (it *SliceParcelIterator[L]) Kind() Kind { return KindSliceParcel }

// Reset restarts the traversal
func (it *SliceParcelIterator[L]) Reset() {
	it.slice = 0
	it.pos = 0
}

// NextSliceParcel returns the mask of the next label in the current row,
// moving to the next row when the current one runs out.
func (it *SliceParcelIterator[L]) NextSliceParcel() (SliceParcelRecord[L], bool) {
	for it.slice < len(it.rows) && it.pos >= len(it.keys[it.slice]) {
		it.slice++
		it.pos = 0
	}
	if it.slice >= len(it.rows) {
		return SliceParcelRecord[L]{}, false
	}

	label := it.keys[it.slice][it.pos]
	it.pos++
	return SliceParcelRecord[L]{
		Label: label,
		Where: equalMask(it.rows[it.slice], label),
		Slice: it.slice,
	}, true
}

// Next implements Iterator
func (it *SliceParcelIterator[L]) Next() (Record, bool) {
	rec, ok := it.NextSliceParcel()
	if !ok {
		return nil, false
	}
	return rec, true
}

var (
	_ Iterator = (*ParcelIterator[int])(nil)
	_ Iterator = (*SliceParcelIterator[int])(nil)
)
