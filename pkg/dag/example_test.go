package dag_test

import (
	"fmt"

	"github.com/matzehuels/jsontypings/pkg/dag"
)

func ExampleDAG_basic() {
	// Build a small chain: root → field → value
	g := dag.New[string]()
	root := g.AddNode("root")
	field := g.AddNode("field")
	value := g.AddNode("value")
	_ = g.AddEdge(root, field)
	_ = g.AddEdge(field, value)

	fmt.Println("Nodes:", g.NodeCount())
	fmt.Println("Edges:", g.EdgeCount())
	fmt.Println("Root ID:", root)
	// Output:
	// Nodes: 3
	// Edges: 2
	// Root ID: 0
}

func ExampleDAG_traversal() {
	// Fan-out keeps insertion order
	g := dag.New[string]()
	obj := g.AddNode("object")
	a := g.AddNode("a")
	b := g.AddNode("b")
	_ = g.AddEdge(obj, b)
	_ = g.AddEdge(obj, a)

	fmt.Println("Children of object:", g.Children(obj))
	fmt.Println("Parents of a:", g.Parents(a))
	fmt.Println("Out-degree of object:", g.OutDegree(obj))
	// Output:
	// Children of object: [2 1]
	// Parents of a: [0]
	// Out-degree of object: 2
}

func ExampleDAG_ReverseTopologicalOrder() {
	// Children always come before their parents
	g := dag.New[string]()
	root := g.AddNode("root")
	mid := g.AddNode("mid")
	leaf := g.AddNode("leaf")
	_ = g.AddEdge(root, mid)
	_ = g.AddEdge(mid, leaf)

	order, _ := g.ReverseTopologicalOrder()
	for _, id := range order {
		w, _ := g.Node(id)
		fmt.Println(w)
	}
	// Output:
	// leaf
	// mid
	// root
}
