package dag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddNodeAssignsDenseIDs(t *testing.T) {
	g := New[int]()
	for i := range 5 {
		assert.Equal(t, NodeID(i), g.AddNode(i*10))
	}
	assert.Equal(t, 5, g.NodeCount())

	w, ok := g.Node(3)
	require.True(t, ok)
	assert.Equal(t, 30, w)

	_, ok = g.Node(5)
	assert.False(t, ok)
	_, ok = g.Node(-1)
	assert.False(t, ok)
}

func TestAddEdgeErrors(t *testing.T) {
	g := New[string]()
	a := g.AddNode("a")

	tests := []struct {
		name     string
		from, to NodeID
		want     error
	}{
		{"unknown source", 7, a, ErrUnknownSourceNode},
		{"unknown target", a, 7, ErrUnknownTargetNode},
		{"self loop", a, a, ErrSelfLoop},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, g.AddEdge(tt.from, tt.to), tt.want)
		})
	}
	assert.Zero(t, g.EdgeCount())
}

func TestChildrenInsertionOrder(t *testing.T) {
	g := New[string]()
	p := g.AddNode("p")
	c1 := g.AddNode("c1")
	c2 := g.AddNode("c2")
	c3 := g.AddNode("c3")
	require.NoError(t, g.AddEdge(p, c3))
	require.NoError(t, g.AddEdge(p, c1))
	require.NoError(t, g.AddEdge(p, c2))

	assert.Equal(t, []NodeID{c3, c1, c2}, g.Children(p))
	assert.Equal(t, []NodeID{p}, g.Parents(c1))
	assert.Equal(t, 1, g.InDegree(c2))
	assert.Nil(t, g.Children(99))
	assert.Equal(t, []NodeID{p}, g.Sources())
	assert.Equal(t, []NodeID{c1, c2, c3}, g.Sinks())
}

func TestValidateDetectsCycle(t *testing.T) {
	g := New[string]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	c := g.AddNode("c")
	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.AddEdge(b, c))
	require.NoError(t, g.Validate())

	require.NoError(t, g.AddEdge(c, a))
	assert.ErrorIs(t, g.Validate(), ErrGraphHasCycle)

	_, err := g.TopologicalOrder()
	assert.ErrorIs(t, err, ErrGraphHasCycle)
	_, err = g.ReverseTopologicalOrder()
	assert.ErrorIs(t, err, ErrGraphHasCycle)
}

func TestReverseTopologicalOrderChildrenFirst(t *testing.T) {
	g := New[string]()
	root := g.AddNode("root")
	f1 := g.AddNode("f1")
	f2 := g.AddNode("f2")
	v1 := g.AddNode("v1")
	v2 := g.AddNode("v2")
	require.NoError(t, g.AddEdge(root, f1))
	require.NoError(t, g.AddEdge(root, f2))
	require.NoError(t, g.AddEdge(f1, v1))
	require.NoError(t, g.AddEdge(f2, v2))

	order, err := g.ReverseTopologicalOrder()
	require.NoError(t, err)
	require.Len(t, order, 5)

	pos := make(map[NodeID]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	for _, e := range g.Edges() {
		assert.Less(t, pos[e.To], pos[e.From], "edge %d->%d", e.From, e.To)
	}
	assert.Equal(t, root, order[len(order)-1])
}

func TestZeroValueUsable(t *testing.T) {
	var g DAG[int]
	order, err := g.TopologicalOrder()
	require.NoError(t, err)
	assert.Empty(t, order)
	id := g.AddNode(1)
	assert.Equal(t, NodeID(0), id)
}
