package dag

import (
	"errors"
	"slices"
)

var (
	// ErrUnknownSourceNode is returned by [DAG.AddEdge] when the From node
	// does not exist in the graph.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [DAG.AddEdge] when the To node
	// does not exist in the graph.
	ErrUnknownTargetNode = errors.New("unknown target node")

	// ErrSelfLoop is returned by [DAG.AddEdge] when From and To are the same
	// node. A self loop is the smallest possible cycle.
	ErrSelfLoop = errors.New("edge must not point to its own source")

	// ErrGraphHasCycle is returned by [DAG.Validate] and the topological
	// order functions when a cycle is detected. Cycles are detected using
	// depth-first search with white/gray/black coloring.
	ErrGraphHasCycle = errors.New("graph contains a cycle")
)

// NodeID is the arena index of a node. IDs are assigned densely in
// insertion order starting at 0, so the first node added is always node 0.
type NodeID int

// Edge represents a directed connection between two nodes.
type Edge struct {
	From NodeID // Source node
	To   NodeID // Target node
}

// DAG is an arena-backed directed acyclic graph whose node weights have
// type T. Nodes are addressed by their [NodeID] and are never removed, so
// an ID stays valid for the lifetime of the graph.
//
// Children and parents are reported in edge insertion order. Callers that
// care about a stable ordering of successors should add edges in that order.
//
// The zero value is an empty graph ready to use.
// DAG is not safe for concurrent use without external synchronization.
type DAG[T any] struct {
	nodes    []T
	edges    []Edge
	outgoing [][]NodeID
	incoming [][]NodeID
}

// New creates an empty DAG.
func New[T any]() *DAG[T] {
	return &DAG[T]{}
}

// AddNode appends a node with the given weight and returns its ID.
func (d *DAG[T]) AddNode(weight T) NodeID {
	id := NodeID(len(d.nodes))
	d.nodes = append(d.nodes, weight)
	d.outgoing = append(d.outgoing, nil)
	d.incoming = append(d.incoming, nil)
	return id
}

// AddEdge adds a directed edge between two existing nodes.
// Returns ErrUnknownSourceNode or ErrUnknownTargetNode when an endpoint is
// missing, and ErrSelfLoop when both endpoints are the same node.
//
// AddEdge does not check for longer cycles. Use Validate after building the
// graph if the construction could have introduced one.
func (d *DAG[T]) AddEdge(from, to NodeID) error {
	if !d.Contains(from) {
		return ErrUnknownSourceNode
	}
	if !d.Contains(to) {
		return ErrUnknownTargetNode
	}
	if from == to {
		return ErrSelfLoop
	}
	d.edges = append(d.edges, Edge{From: from, To: to})
	d.outgoing[from] = append(d.outgoing[from], to)
	d.incoming[to] = append(d.incoming[to], from)
	return nil
}

// Contains reports whether id refers to a node of this graph.
func (d *DAG[T]) Contains(id NodeID) bool {
	return id >= 0 && int(id) < len(d.nodes)
}

// Node returns the weight stored at id and true, or the zero value and
// false if the node does not exist.
func (d *DAG[T]) Node(id NodeID) (T, bool) {
	if !d.Contains(id) {
		var zero T
		return zero, false
	}
	return d.nodes[id], true
}

// Nodes returns a copy of all node weights indexed by NodeID.
func (d *DAG[T]) Nodes() []T { return slices.Clone(d.nodes) }

// Edges returns a copy of all edges in insertion order.
func (d *DAG[T]) Edges() []Edge { return slices.Clone(d.edges) }

// NodeCount returns the number of nodes in the graph.
func (d *DAG[T]) NodeCount() int { return len(d.nodes) }

// EdgeCount returns the number of edges in the graph.
func (d *DAG[T]) EdgeCount() int { return len(d.edges) }

// Children returns the targets of the node's outgoing edges in insertion
// order. Returns nil if the node has no children or doesn't exist. The
// returned slice should not be modified.
func (d *DAG[T]) Children(id NodeID) []NodeID {
	if !d.Contains(id) {
		return nil
	}
	return d.outgoing[id]
}

// Parents returns the sources of the node's incoming edges in insertion
// order. Returns nil if the node has no parents or doesn't exist.
func (d *DAG[T]) Parents(id NodeID) []NodeID {
	if !d.Contains(id) {
		return nil
	}
	return d.incoming[id]
}

// OutDegree returns the number of outgoing edges from the node.
func (d *DAG[T]) OutDegree(id NodeID) int { return len(d.Children(id)) }

// InDegree returns the number of incoming edges to the node.
func (d *DAG[T]) InDegree(id NodeID) int { return len(d.Parents(id)) }

// Sources returns the nodes with no incoming edges in ID order.
func (d *DAG[T]) Sources() []NodeID {
	var sources []NodeID
	for i := range d.nodes {
		if len(d.incoming[i]) == 0 {
			sources = append(sources, NodeID(i))
		}
	}
	return sources
}

// Sinks returns the nodes with no outgoing edges in ID order.
func (d *DAG[T]) Sinks() []NodeID {
	var sinks []NodeID
	for i := range d.nodes {
		if len(d.outgoing[i]) == 0 {
			sinks = append(sinks, NodeID(i))
		}
	}
	return sinks
}

// Validate returns ErrGraphHasCycle if the graph contains a directed cycle
// and nil otherwise. Detection runs in O(N+E).
func (d *DAG[T]) Validate() error {
	const (
		white = iota
		gray
		black
	)

	color := make([]int, len(d.nodes))
	var hasCycle bool

	var dfs func(id NodeID)
	dfs = func(id NodeID) {
		color[id] = gray
		for _, child := range d.outgoing[id] {
			switch color[child] {
			case white:
				dfs(child)
			case gray:
				hasCycle = true
			}
			if hasCycle {
				return
			}
		}
		color[id] = black
	}

	for i := range d.nodes {
		if color[i] == white {
			dfs(NodeID(i))
			if hasCycle {
				return ErrGraphHasCycle
			}
		}
	}
	return nil
}

// TopologicalOrder returns every node such that each node appears before
// all of its children. Ties are broken by NodeID, so the order is
// deterministic. Returns ErrGraphHasCycle if no such order exists.
func (d *DAG[T]) TopologicalOrder() ([]NodeID, error) {
	indeg := make([]int, len(d.nodes))
	for i := range d.nodes {
		indeg[i] = len(d.incoming[i])
	}

	queue := make([]NodeID, 0, len(d.nodes))
	for i, n := range indeg {
		if n == 0 {
			queue = append(queue, NodeID(i))
		}
	}

	order := make([]NodeID, 0, len(d.nodes))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)
		for _, child := range d.outgoing[id] {
			indeg[child]--
			if indeg[child] == 0 {
				queue = append(queue, child)
			}
		}
	}

	if len(order) != len(d.nodes) {
		return nil, ErrGraphHasCycle
	}
	return order, nil
}

// ReverseTopologicalOrder returns every node such that each node appears
// after all of its children. It is the reverse of [DAG.TopologicalOrder].
func (d *DAG[T]) ReverseTopologicalOrder() ([]NodeID, error) {
	order, err := d.TopologicalOrder()
	if err != nil {
		return nil, err
	}
	slices.Reverse(order)
	return order, nil
}
