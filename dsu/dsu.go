package dsu

import "github.com/katalvlaran/proximity/distgraph"

// Merger is a union-find partition of the indices [0, n).
type Merger struct {
	parent []int
	size   []int
	count  int
}

// New returns a Merger with n singleton components.
func New(n int) *Merger {
	m := &Merger{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range m.parent {
		m.parent[i] = i
		m.size[i] = 1
	}

	return m
}

// Len returns the number of indices tracked.
func (m *Merger) Len() int {
	return len(m.parent)
}

// Count returns the current number of components.
func (m *Merger) Count() int {
	return m.count
}

// Find returns the representative of the component containing i.
func (m *Merger) Find(i int) int {
	for m.parent[i] != i {
		m.parent[i] = m.parent[m.parent[i]]
		i = m.parent[i]
	}

	return i
}

// Union joins the components containing a and b.
// It returns false when they already share a component.
func (m *Merger) Union(a, b int) bool {
	ra, rb := m.Find(a), m.Find(b)
	if ra == rb {
		return false
	}
	if m.size[ra] < m.size[rb] {
		ra, rb = rb, ra
	}
	m.parent[rb] = ra
	m.size[ra] += m.size[rb]
	m.count--

	return true
}

// Merge unifies the endpoints of e; see Union.
func (m *Merger) Merge(e distgraph.Edge) bool {
	return m.Union(e.From, e.To)
}

// Connected reports whether a and b share a component.
func (m *Merger) Connected(a, b int) bool {
	return m.Find(a) == m.Find(b)
}

// Size returns the size of the component containing i.
func (m *Merger) Size(i int) int {
	return m.size[m.Find(i)]
}

// Components returns the current partition. Members are ascending within
// each component and components are ordered by their smallest member.
func (m *Merger) Components() [][]int {
	slot := make(map[int]int, m.count)
	out := make([][]int, 0, m.count)
	for i := range m.parent {
		r := m.Find(i)
		k, ok := slot[r]
		if !ok {
			k = len(out)
			slot[r] = k
			out = append(out, make([]int, 0, m.size[r]))
		}
		out[k] = append(out[k], i)
	}

	return out
}

// Sizes returns the component sizes in the order Components would list them.
func (m *Merger) Sizes() []int {
	seen := make(map[int]bool, m.count)
	out := make([]int, 0, m.count)
	for i := range m.parent {
		if r := m.Find(i); !seen[r] {
			seen[r] = true
			out = append(out, m.size[r])
		}
	}

	return out
}
