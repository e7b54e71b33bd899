// Package dag provides a small arena-backed directed acyclic graph.
//
// # Overview
//
// Nodes carry a weight of any type and are addressed by dense integer
// [NodeID] values assigned in insertion order. Nodes are never removed, so
// an ID handed out by [DAG.AddNode] remains valid for the lifetime of the
// graph. This makes IDs safe to store inside other node weights as plain
// back-references that are not themselves edges.
//
// # Basic Usage
//
//	g := dag.New[string]()
//	root := g.AddNode("root")
//	leaf := g.AddNode("leaf")
//	_ = g.AddEdge(root, leaf)
//
// Query the graph structure with [DAG.Children], [DAG.Parents],
// [DAG.Sources] and [DAG.Sinks]. Children are reported in edge insertion
// order, which lets builders encode a meaningful ordering of successors.
//
// # Ordering
//
// [DAG.TopologicalOrder] uses Kahn's algorithm with ties broken by NodeID.
// [DAG.ReverseTopologicalOrder] yields children before parents, which is the
// order in which bottom-up passes such as renderers resolve nodes.
//
// # Concurrency
//
// DAG instances are not safe for concurrent use. Read-only access from
// several goroutines is fine once construction has finished.
package dag
