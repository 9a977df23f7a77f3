package reference

import (
	"math"
	"testing"
)

// TestAxisValid checks the validity predicate of each axis kind
func TestAxisValid(t *testing.T) {
	testCases := []struct {
		name string
		axis Axis
		x    float64
		want bool
	}{
		{"generic any", NewAxis("t"), -1e9, true},
		{"generic nan", NewAxis("t"), math.NaN(), false},
		{"voxel first", NewVoxelAxis("i", 4), 0, true},
		{"voxel last", NewVoxelAxis("i", 4), 3, true},
		{"voxel past end", NewVoxelAxis("i", 4), 4, false},
		{"voxel negative", NewVoxelAxis("i", 4), -1, false},
		{"voxel fractional", NewVoxelAxis("i", 4), 1.5, false},
		{"regular inside", NewRegularAxis("x", 10, 2, 5), 19.5, true},
		{"regular end", NewRegularAxis("x", 10, 2, 5), 20, false},
		{"regular before", NewRegularAxis("x", 10, 2, 5), 9.9, false},
		{"regular negative step", NewRegularAxis("x", 10, -2, 5), 0.5, true},
		{"regular negative step end", NewRegularAxis("x", 10, -2, 5), 0, false},
		{"regular unbounded", NewRegularAxis("x", 10, 2, 0), 1e6, true},
		{"regular inf", NewRegularAxis("x", 10, 2, 0), math.Inf(1), false},
	}

	for _, tc := range testCases {
		if got := tc.axis.Valid(tc.x); got != tc.want {
			t.Errorf("%s: Valid(%g) = %v, expected %v", tc.name, tc.x, got, tc.want)
		}
	}
}

// TestAxisAccessors verifies which geometry each axis kind carries
func TestAxisAccessors(t *testing.T) {
	generic := NewAxis("t")
	if _, ok := generic.Length(); ok {
		t.Errorf("generic axis should be unbounded")
	}
	if _, ok := generic.Step(); ok {
		t.Errorf("generic axis should have no step")
	}

	voxel := NewVoxelAxis("i", 7)
	if n, ok := voxel.Length(); !ok || n != 7 {
		t.Errorf("Expected voxel length 7, got %d (%v)", n, ok)
	}
	if s, ok := voxel.Step(); !ok || s != 1 {
		t.Errorf("Expected voxel step 1, got %g (%v)", s, ok)
	}
	if !voxel.IsVoxel() {
		t.Errorf("voxel axis should report IsVoxel")
	}

	regular := NewRegularAxis("x", -3, 0.5, 10)
	if s, ok := regular.Start(); !ok || s != -3 {
		t.Errorf("Expected start -3, got %g (%v)", s, ok)
	}
	if regular != NewRegularAxis("x", -3, 0.5, 10) {
		t.Errorf("identical axes should compare equal")
	}
	if regular == NewRegularAxis("x", -3, 0.5, 11) {
		t.Errorf("axes with different lengths should differ")
	}
}
