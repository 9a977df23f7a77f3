package iterators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLabels[L Label](t *testing.T, data []L, shape ...int) LabelArray[L] {
	t.Helper()
	a, err := NewLabelArray(data, shape...)
	require.NoError(t, err)
	return a
}

func TestParcelIteratorPartition(t *testing.T) {
	labels := mustLabels(t, []int32{
		2, 0, 1, 1,
		0, 2, 2, 1,
		1, 0, 0, 2,
	}, 3, 4)

	it, err := NewParcelIterator(labels, nil)
	require.NoError(t, err)
	assert.Equal(t, KindParcel, it.Kind())

	var got []int32
	covered := make([]int, labels.Len())
	for {
		rec, ok := it.NextParcel()
		if !ok {
			break
		}
		assert.False(t, rec.Label.IsCompound())
		got = append(got, rec.Label.Scalar())
		require.Len(t, rec.Where, labels.Len())
		for i, sel := range rec.Where {
			if sel {
				covered[i]++
				assert.Equal(t, rec.Label.Scalar(), labels.Flat()[i])
			}
		}
	}

	assert.Equal(t, []int32{0, 1, 2}, got)
	for i, n := range covered {
		assert.Equal(t, 1, n, "element %d selected %d times", i, n)
	}

	_, ok := it.Next()
	assert.False(t, ok)
}

func TestParcelIteratorExplicitKeys(t *testing.T) {
	labels := mustLabels(t, []int{5, 3, 5, 9, 3})

	it, err := NewParcelIterator(labels, ScalarKeys(9, 5, 9, 4))
	require.NoError(t, err)
	assert.Len(t, it.Labels(), 3)

	rec, ok := it.NextParcel()
	require.True(t, ok)
	assert.Equal(t, 9, rec.Label.Scalar())
	assert.Equal(t, Mask{false, false, false, true, false}, rec.Where)

	rec, ok = it.NextParcel()
	require.True(t, ok)
	assert.Equal(t, 5, rec.Label.Scalar())
	assert.Equal(t, []int{0, 2}, rec.Where.Indices())

	rec, ok = it.NextParcel()
	require.True(t, ok)
	assert.Equal(t, 4, rec.Label.Scalar())
	assert.Equal(t, 0, rec.Where.Count())

	_, ok = it.NextParcel()
	assert.False(t, ok)

	it.Reset()
	rec, ok = it.NextParcel()
	require.True(t, ok)
	assert.Equal(t, 9, rec.Label.Scalar())
}

func TestParcelIteratorCompoundKeys(t *testing.T) {
	// two label maps over the same five voxels
	labels := mustLabels(t, []int{
		1, 1, 2, 2, 1,
		7, 8, 7, 8, 7,
	}, 2, 5)

	it, err := NewParcelIterator(labels, []Key[int]{CompoundKey(1, 7), CompoundKey(2, 8)})
	require.NoError(t, err)

	rec, ok := it.NextParcel()
	require.True(t, ok)
	assert.True(t, rec.Label.IsCompound())
	assert.Equal(t, []int{1, 7}, rec.Label.Values())
	assert.Equal(t, Mask{true, false, false, false, true}, rec.Where)

	rec, ok = it.NextParcel()
	require.True(t, ok)
	assert.Equal(t, Mask{false, false, false, true, false}, rec.Where)

	_, ok = it.NextParcel()
	assert.False(t, ok)
}

func TestParcelIteratorKeyErrors(t *testing.T) {
	labels := mustLabels(t, []int{1, 2, 3, 4}, 2, 2)

	_, err := NewParcelIterator(labels, []Key[int]{CompoundKey(1, 2, 3)})
	assert.ErrorIs(t, err, ErrInvalidKey)

	_, err = NewParcelIterator(labels, []Key[int]{CompoundKey(1, 3), ScalarKey(2)})
	assert.ErrorIs(t, err, ErrMixedKeys)

	// keys allocated but never filled in
	it, err := NewParcelIterator(labels, make([]Key[int], 1))
	assert.Nil(t, it)
	assert.ErrorIs(t, err, ErrInvalidKey)

	_, err = NewParcelIterator(labels, []Key[int]{ScalarKey(1), {}})
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestParcelIteratorStringLabels(t *testing.T) {
	labels := mustLabels(t, []string{"wm", "gm", "csf", "gm"})
	it, err := NewParcelIterator(labels, nil)
	require.NoError(t, err)

	var names []string
	for rec := range All(it) {
		names = append(names, rec.(ParcelRecord[string]).Label.String())
	}
	assert.Equal(t, []string{"csf", "gm", "wm"}, names)
}

func TestNewLabelArray(t *testing.T) {
	a, err := NewLabelArray([]int{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, a.Shape())
	assert.Equal(t, 2, a.Rows())
	assert.Equal(t, []int{4, 5, 6}, a.Row(1))

	_, err = NewLabelArray([]int{1, 2, 3}, 2, 2)
	assert.ErrorIs(t, err, ErrInvalidShape)

	_, err = NewLabelArray([]int{}, -1)
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestLabelArrayOwnsData(t *testing.T) {
	data := []int{1, 2, 1, 2}
	labels := mustLabels(t, data, 2, 2)
	it, err := NewParcelIterator(labels, nil)
	require.NoError(t, err)

	data[0], data[1] = 9, 9
	assert.Equal(t, []int{1, 2, 1, 2}, labels.Flat())
	assert.Equal(t, []int{1, 2}, labels.Unique())

	flat := labels.Flat()
	flat[0] = 7
	row := labels.Row(0)
	row[1] = 7
	assert.Equal(t, []int{1, 2, 1, 2}, labels.Flat())

	rec, ok := it.NextParcel()
	require.True(t, ok)
	assert.Equal(t, 1, rec.Label.Scalar())
	assert.Equal(t, Mask{true, false, true, false}, rec.Where)
}

func TestUnique(t *testing.T) {
	in := []int32{4, 1, 4, 0, 1}
	assert.Equal(t, []int32{0, 1, 4}, Unique(in))
	assert.Equal(t, []int32{4, 1, 4, 0, 1}, in)
	assert.Empty(t, Unique([]string(nil)))
	assert.Equal(t, []string{"a", "b"}, Unique([]string{"b", "a", "b"}))
}
