package reference

import "fmt"

// axisMap is an ordered, name-keyed association of axes. It has no
// mutators: once built it can only be read or used to build a new one.
type axisMap struct {
	axes  []Axis
	index map[string]int
}

func newAxisMap(axes []Axis) (axisMap, error) {
	m := axisMap{
		axes:  make([]Axis, len(axes)),
		index: make(map[string]int, len(axes)),
	}
	for i, ax := range axes {
		if _, dup := m.index[ax.Name()]; dup {
			return axisMap{}, fmt.Errorf("%w: %q", ErrDuplicateAxis, ax.Name())
		}
		m.axes[i] = ax
		m.index[ax.Name()] = i
	}
	return m, nil
}

func (m axisMap) len() int { return len(m.axes) }

func (m axisMap) get(name string) (Axis, bool) {
	i, ok := m.index[name]
	if !ok {
		return Axis{}, false
	}
	return m.axes[i], true
}

// values returns a copy of the axes in order
func (m axisMap) values() []Axis {
	out := make([]Axis, len(m.axes))
	copy(out, m.axes)
	return out
}

func (m axisMap) names() []string {
	out := make([]string, len(m.axes))
	for i, ax := range m.axes {
		out[i] = ax.Name()
	}
	return out
}
