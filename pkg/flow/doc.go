// Package flow implements a directed capacitated graph together with two
// classical maximum-flow algorithms: Dinic's blocking-flow method and the
// Goldberg-Tarjan push-relabel method with a FIFO active-vertex queue.
//
// The Network facade owns a Graph plus the designated source and sink.
// Mutations (vertex and edge CRUD, source/sink assignment, reset,
// save/load) record a human-readable status message, maintain the dirty
// flags external views consume, and notify subscribers with exactly one
// change event per call. After either algorithm runs, every edge carries
// a concrete flow realizing the returned maximum.
//
// Both algorithms share one residual-graph representation: there is a
// single Edge object per directed pair, referenced forward from its start
// vertex and backward from its end vertex, so a residual arc is the same
// edge traversed against its direction.
//
// The package is single-threaded by design; callers that need concurrent
// access must serialize externally.
//
// # Example
//
//	n := flow.NewNetwork()
//	n.AddVertex(0)
//	n.AddVertex(1)
//	n.AddVertex(2)
//	n.AddEdge(0, 1, 10)
//	n.AddEdge(1, 2, 5)
//	n.SetSource(0)
//	n.SetSink(2)
//
//	value := n.Dinic() // 5
package flow
