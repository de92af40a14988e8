package dsu_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/proximity/distgraph"
	"github.com/katalvlaran/proximity/dsu"
)

// randomEdges returns m random pairs over [0, n) with From < To.
func randomEdges(n, m int, seed int64) []distgraph.Edge {
	r := rand.New(rand.NewSource(seed))
	edges := make([]distgraph.Edge, 0, m)
	for len(edges) < m {
		a, b := r.Intn(n), r.Intn(n)
		if a == b {
			continue
		}
		edges = append(edges, distgraph.Edge{From: min(a, b), To: max(a, b)})
	}

	return edges
}

// assertPartition checks that comps are disjoint, non-empty and cover [0, n).
func assertPartition(t *testing.T, comps [][]int, n int) {
	t.Helper()
	owner := make([]int, n)
	for i := range owner {
		owner[i] = -1
	}
	for k, c := range comps {
		assert.NotEmpty(t, c)
		for _, v := range c {
			require.GreaterOrEqual(t, v, 0)
			require.Less(t, v, n)
			assert.Equal(t, -1, owner[v], "index %d appears in two components", v)
			owner[v] = k
		}
	}
	for v, k := range owner {
		assert.NotEqual(t, -1, k, "index %d is in no component", v)
	}
}

// TestNew_Singletons verifies the initial state.
func TestNew_Singletons(t *testing.T) {
	m := dsu.New(4)
	assert.Equal(t, 4, m.Len())
	assert.Equal(t, 4, m.Count())
	assert.Equal(t, [][]int{{0}, {1}, {2}, {3}}, m.Components())
	for i := 0; i < 4; i++ {
		assert.Equal(t, i, m.Find(i))
		assert.Equal(t, 1, m.Size(i))
	}

	empty := dsu.New(0)
	assert.Zero(t, empty.Count())
	assert.Empty(t, empty.Components())
}

// TestMerge_Idempotent verifies that re-merging an edge is a no-op returning false.
func TestMerge_Idempotent(t *testing.T) {
	m := dsu.New(3)
	e := distgraph.Edge{From: 0, To: 2}

	assert.True(t, m.Merge(e))
	before := m.Components()
	assert.False(t, m.Merge(e))
	assert.Equal(t, before, m.Components())
	assert.Equal(t, 2, m.Count())
	assert.True(t, m.Connected(0, 2))
	assert.False(t, m.Connected(0, 1))
	assert.Equal(t, 2, m.Size(2))
}

// TestMerge_PartitionAndMonotonicCount applies random edges and checks after
// every step that the partition holds and that Count drops exactly on true merges.
func TestMerge_PartitionAndMonotonicCount(t *testing.T) {
	const n = 60
	m := dsu.New(n)
	for _, e := range randomEdges(n, 120, 5) {
		before := m.Count()
		merged := m.Merge(e)
		if merged {
			assert.Equal(t, before-1, m.Count())
		} else {
			assert.Equal(t, before, m.Count())
		}
		assert.True(t, m.Connected(e.From, e.To))

		comps := m.Components()
		assertPartition(t, comps, n)
		assert.Len(t, comps, m.Count())
	}

	total := 0
	for _, s := range m.Sizes() {
		total += s
	}
	assert.Equal(t, n, total)
}

// TestMerge_OrderIndependent shuffles the same edge set and expects the same partition.
func TestMerge_OrderIndependent(t *testing.T) {
	const n = 40
	edges := randomEdges(n, 35, 9)

	ref := dsu.New(n)
	for _, e := range edges {
		ref.Merge(e)
	}
	want := ref.Components()

	r := rand.New(rand.NewSource(1))
	for trial := 0; trial < 10; trial++ {
		shuffled := append([]distgraph.Edge(nil), edges...)
		r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		m := dsu.New(n)
		for _, e := range shuffled {
			m.Merge(e)
		}
		assert.Equal(t, want, m.Components(), "trial %d", trial)
	}
}

// TestComponents_MatchGonum cross-checks the partition against gonum's topo package.
func TestComponents_MatchGonum(t *testing.T) {
	const n = 50
	edges := randomEdges(n, 40, 21)

	m := dsu.New(n)
	g := simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(int64(i)))
	}
	for _, e := range edges {
		m.Merge(e)
		g.SetEdge(g.NewEdge(simple.Node(int64(e.From)), simple.Node(int64(e.To))))
	}

	var want [][]int
	for _, cc := range topo.ConnectedComponents(g) {
		ids := make([]int, len(cc))
		for i, node := range cc {
			ids[i] = int(node.ID())
		}
		sort.Ints(ids)
		want = append(want, ids)
	}
	sort.Slice(want, func(i, j int) bool { return want[i][0] < want[j][0] })

	assert.Equal(t, want, m.Components())
}

// TestUnion_BySize keeps the larger component's root.
func TestUnion_BySize(t *testing.T) {
	m := dsu.New(5)
	m.Union(0, 1)
	m.Union(0, 2)
	root := m.Find(0)
	m.Union(4, 3)
	require.True(t, m.Union(3, 1))
	assert.Equal(t, root, m.Find(4))
	assert.Equal(t, 5, m.Size(3))
	assert.Equal(t, 1, m.Count())
}
