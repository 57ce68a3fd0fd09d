package flow

import (
	"maxflow/pkg/apperror"
)

// ExcessSource is the excess value marking the source vertex during
// push-relabel. It is treated as an infinite supply: pushes out of the
// source saturate the edge and never decrement the source's excess.
const ExcessSource int64 = -1

// Edge is a directed edge between two vertices with an immutable capacity
// and a mutable flow.
//
// An Edge is owned by the neighbors list of its start vertex; the end
// vertex references the same Edge through its resNeighbors list. There is
// exactly one Edge per ordered (u, v) pair: a "residual edge" is not a
// separate record but the same Edge traversed backward. A traversal is
// residual iff the current vertex is the edge's end vertex.
type Edge struct {
	start *Vertex
	end   *Vertex

	capacity int64
	flow     int64

	// blocked marks the edge as removed from the current layered network.
	blocked bool
}

// newEdge creates an edge. Capacity validation happens at the call sites.
func newEdge(start, end *Vertex, capacity int64) *Edge {
	return &Edge{start: start, end: end, capacity: capacity}
}

// Start returns the tail vertex of the edge.
func (e *Edge) Start() *Vertex {
	return e.start
}

// End returns the head vertex of the edge.
func (e *Edge) End() *Vertex {
	return e.end
}

// Capacity returns the immutable capacity of the edge.
func (e *Edge) Capacity() int64 {
	return e.capacity
}

// Flow returns the current flow on the edge.
func (e *Edge) Flow() int64 {
	return e.flow
}

// Blocked reports whether the edge is excluded from the current layered network.
func (e *Edge) Blocked() bool {
	return e.blocked
}

// ResidualCapacity returns the remaining forward capacity.
func (e *Edge) ResidualCapacity() int64 {
	return e.capacity - e.flow
}

// Saturated reports whether the edge carries its full capacity.
func (e *Edge) Saturated() bool {
	return e.flow == e.capacity
}

// SetFlow sets the flow, rejecting values outside [0, capacity].
func (e *Edge) SetFlow(flow int64) error {
	if flow < 0 || flow > e.capacity {
		return apperror.Newf(apperror.CodeInvalidFlow,
			"flow %d outside [0, %d] on edge (%d,%d)", flow, e.capacity, e.start.id, e.end.id)
	}
	e.flow = flow
	return nil
}

// PushForward pushes excess from the start vertex along the edge's natural
// direction. The pushed amount is min(residual capacity, excess(start));
// for the source sentinel the full residual capacity is pushed and the
// source's excess is left untouched. A push that leaves excess at the
// start vertex rewinds its cursor so the edge is offered again.
//
// Returns the end vertex iff its excess transitioned from zero to
// positive, with its deadEnd flag cleared; otherwise nil.
func (e *Edge) PushForward() *Vertex {
	excess := e.start.excess

	var delta int64
	if excess == ExcessSource {
		delta = e.capacity - e.flow
	} else {
		delta = min64(e.capacity-e.flow, excess)
	}

	e.flow += delta

	if excess != ExcessSource {
		e.start.excess -= delta
		if delta < excess {
			// Excess remains at the start vertex: offer the edge again.
			e.start.StepBack()
		}
	}

	if e.end.excess == ExcessSource {
		return nil
	}
	before := e.end.excess
	e.end.excess += delta
	if before == 0 && e.end.excess > 0 {
		e.end.deadEnd = false
		return e.end
	}
	return nil
}

// PushBackward pushes excess from the end vertex against the edge's
// direction, cancelling flow. The pushed amount is min(flow, excess(end)).
// Cursor rewind and activation mirror PushForward.
func (e *Edge) PushBackward() *Vertex {
	excess := e.end.excess

	var delta int64
	if excess == ExcessSource {
		delta = e.flow
	} else {
		delta = min64(e.flow, excess)
	}

	e.flow -= delta

	if excess != ExcessSource {
		e.end.excess -= delta
		if delta < excess {
			e.end.StepBack()
		}
	}

	if e.start.excess == ExcessSource {
		return nil
	}
	before := e.start.excess
	e.start.excess += delta
	if before == 0 && e.start.excess > 0 {
		e.start.deadEnd = false
		return e.start
	}
	return nil
}

// min64 returns the smaller of two int64 values.
func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
