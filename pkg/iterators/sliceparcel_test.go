package iterators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceParcelIterator(t *testing.T) {
	// two slices of a 2x3 label image
	labels := mustLabels(t, []int{
		1, 1, 2,
		3, 1, 2,

		4, 4, 4,
		5, 5, 4,
	}, 2, 2, 3)

	it, err := NewSliceParcelIterator(labels, [][]int{{1, 2, 3}, {5, 4, 5}})
	require.NoError(t, err)
	assert.Equal(t, KindSliceParcel, it.Kind())

	type step struct {
		label int
		slice int
		where []int
	}
	var got []step
	for rec := range All(it) {
		sp, ok := rec.(SliceParcelRecord[int])
		require.True(t, ok, "record is %T", rec)
		require.Len(t, sp.Where, 6)
		got = append(got, step{sp.Label, sp.Slice, sp.Where.Indices()})
	}

	want := []step{
		{1, 0, []int{0, 1, 4}},
		{2, 0, []int{2, 5}},
		{3, 0, []int{3}},
		{5, 1, []int{3, 4}},
		{4, 1, []int{0, 1, 2, 5}},
	}
	assert.Equal(t, want, got)
}

func TestSliceParcelIteratorLengthMismatch(t *testing.T) {
	labels := mustLabels(t, []int{1, 2, 3, 4}, 2, 2)

	it, err := NewSliceParcelIterator(labels, [][]int{{1}, {2}, {3}})
	assert.Nil(t, it)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestSliceParcelIteratorRaggedRows(t *testing.T) {
	rows := [][]string{
		{"a", "b"},
		{},
		{"c", "a", "c", "c"},
	}
	it, err := NewSliceParcelIteratorFromRows(rows, [][]string{{"a"}, {"z"}, {"c"}})
	require.NoError(t, err)

	rec, ok := it.NextSliceParcel()
	require.True(t, ok)
	assert.Equal(t, SliceParcelRecord[string]{Label: "a", Where: Mask{true, false}, Slice: 0}, rec)

	rec, ok = it.NextSliceParcel()
	require.True(t, ok)
	assert.Equal(t, 1, rec.Slice)
	assert.Empty(t, rec.Where)

	rec, ok = it.NextSliceParcel()
	require.True(t, ok)
	assert.Equal(t, SliceParcelRecord[string]{Label: "c", Where: Mask{true, false, true, true}, Slice: 2}, rec)

	_, ok = it.NextSliceParcel()
	assert.False(t, ok)
}

func TestSliceParcelIteratorSkipsEmptyKeyRows(t *testing.T) {
	labels := mustLabels(t, []int{1, 2, 3, 4, 5, 6}, 3, 2)
	it, err := NewSliceParcelIterator(labels, [][]int{{}, nil, {6}})
	require.NoError(t, err)

	rec, ok := it.NextSliceParcel()
	require.True(t, ok)
	assert.Equal(t, 2, rec.Slice)
	assert.Equal(t, Mask{false, true}, rec.Where)

	_, ok = it.Next()
	assert.False(t, ok)

	it.Reset()
	rec, ok = it.NextSliceParcel()
	require.True(t, ok)
	assert.Equal(t, 6, rec.Label)
}
