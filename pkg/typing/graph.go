package typing

import (
	"github.com/matzehuels/jsontypings/pkg/dag"
)

// Root is the ID of the root Object of every Graph.
const Root dag.NodeID = 0

// Graph is an inferred typing graph. Node [Root] is the root Object.
// Every other node has exactly one parent, so the graph is a tree whose
// Array and ObjectField nodes additionally refer back to their owning
// Object by ID.
//
// A Graph is immutable once returned by [Build].
type Graph struct {
	name string
	dag  *dag.DAG[Node]
}

// Name returns the root name passed to [Build].
func (g *Graph) Name() string { return g.name }

// Node returns the shape node at id.
func (g *Graph) Node(id dag.NodeID) (Node, bool) { return g.dag.Node(id) }

// Children returns the children of id in insertion order. For objects and
// fields this is the order in which fields and values were first observed.
func (g *Graph) Children(id dag.NodeID) []dag.NodeID { return g.dag.Children(id) }

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []dag.Edge { return g.dag.Edges() }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return g.dag.NodeCount() }

// RenderOrder returns every node with children before their parents.
func (g *Graph) RenderOrder() ([]dag.NodeID, error) { return g.dag.ReverseTopologicalOrder() }

// ObjectName returns the name of the Object at id, or false if id is not an
// Object node.
func (g *Graph) ObjectName(id dag.NodeID) (string, bool) {
	n, ok := g.dag.Node(id)
	if !ok {
		return "", false
	}
	obj, ok := n.(Object)
	return obj.Name, ok
}

// Stats counts nodes by their shape.
type Stats struct {
	Nodes    int `json:"nodes"`
	Edges    int `json:"edges"`
	Objects  int `json:"objects"`
	Fields   int `json:"fields"`
	Arrays   int `json:"arrays"`
	Literals int `json:"literals"`
	Scalars  int `json:"scalars"`
}

// Stats returns node counts for logging and diagnostics.
func (g *Graph) Stats() Stats {
	s := Stats{Nodes: g.dag.NodeCount(), Edges: g.dag.EdgeCount()}
	for _, n := range g.dag.Nodes() {
		switch n.(type) {
		case Object:
			s.Objects++
		case ObjectField:
			s.Fields++
		case Array:
			s.Arrays++
		case LiteralType:
			s.Literals++
		default:
			s.Scalars++
		}
	}
	return s
}
