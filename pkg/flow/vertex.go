package flow

// Vertex is a node of the flow graph, identified by a non-negative id
// unique within its graph.
//
// neighbors holds the outgoing edges in insertion order; resNeighbors
// holds the edges ending at this vertex and is rebuilt by
// Graph.BuildResidualGraph. The remaining fields are per-algorithm
// working state: layer is Dinic's BFS layer (-1 when outside the current
// layered network), label and excess belong to push-relabel, and cursor
// is the shared iterator over neighbors ++ resNeighbors.
type Vertex struct {
	id int64

	neighbors    []*Edge
	resNeighbors []*Edge

	label  int
	layer  int
	excess int64

	deadEnd        bool
	increasedLabel bool

	// cursor encodes the iteration position: 0 is "before first",
	// 1..len(neighbors) is the forward edge at index cursor-1,
	// -1..-len(resNeighbors) is the residual edge at index -cursor-1.
	cursor int
}

// newVertex creates a vertex with the given id.
func newVertex(id int64) *Vertex {
	return &Vertex{id: id, layer: -1}
}

// ID returns the vertex identifier.
func (v *Vertex) ID() int64 {
	return v.id
}

// Label returns the push-relabel label (height) of the vertex.
func (v *Vertex) Label() int {
	return v.label
}

// Layer returns the Dinic BFS layer, -1 when the vertex is not part of
// the current layered network.
func (v *Vertex) Layer() int {
	return v.layer
}

// Excess returns the push-relabel excess of the vertex.
func (v *Vertex) Excess() int64 {
	return v.excess
}

// Edges returns the outgoing edges in insertion order. The returned
// slice is shared and must not be modified.
func (v *Vertex) Edges() []*Edge {
	return v.neighbors
}

// Degree returns the number of outgoing edges.
func (v *Vertex) Degree() int {
	return len(v.neighbors)
}

// =============================================================================
// Adjacency
// =============================================================================

// AddEdge inserts an outgoing edge to end with the given capacity.
// Duplicate (v, end) pairs are rejected; returns the new edge or nil.
func (v *Vertex) AddEdge(end *Vertex, capacity int64) *Edge {
	if v.ContainsEdge(end) {
		return nil
	}
	e := newEdge(v, end, capacity)
	v.neighbors = append(v.neighbors, e)
	return e
}

// ContainsEdge reports whether an outgoing edge to end exists.
func (v *Vertex) ContainsEdge(end *Vertex) bool {
	for _, e := range v.neighbors {
		if e.end == end {
			return true
		}
	}
	return false
}

// EdgeTo returns the outgoing edge to end, or nil.
func (v *Vertex) EdgeTo(end *Vertex) *Edge {
	for _, e := range v.neighbors {
		if e.end == end {
			return e
		}
	}
	return nil
}

// RemoveEdge removes the outgoing edge to end. Returns the removed edge
// or nil when no such edge exists.
func (v *Vertex) RemoveEdge(end *Vertex) *Edge {
	for i, e := range v.neighbors {
		if e.end == end {
			v.neighbors = append(v.neighbors[:i], v.neighbors[i+1:]...)
			return e
		}
	}
	return nil
}

// RemoveResEdge removes the reverse-adjacency entry for the edge arriving
// from start.
func (v *Vertex) RemoveResEdge(start *Vertex) {
	for i, e := range v.resNeighbors {
		if e.start == start {
			v.resNeighbors = append(v.resNeighbors[:i], v.resNeighbors[i+1:]...)
			return
		}
	}
}

// ClearResNeighbors drops the reverse adjacency list.
func (v *Vertex) ClearResNeighbors() {
	v.resNeighbors = v.resNeighbors[:0]
}

// AddEdgesToResGraph installs every outgoing edge into the end vertex's
// reverse adjacency list.
func (v *Vertex) AddEdgesToResGraph() {
	for _, e := range v.neighbors {
		e.end.resNeighbors = append(e.end.resNeighbors, e)
	}
}

// =============================================================================
// Cursor
// =============================================================================

// ResetCursor rewinds the cursor to "before first".
func (v *Vertex) ResetCursor() {
	v.cursor = 0
}

// NextEdge advances the cursor and returns the edge it lands on: forward
// edges in insertion order, then residual edges in insertion order. When
// the sequence is exhausted it marks the vertex deadEnd and returns nil.
func (v *Vertex) NextEdge() *Edge {
	switch {
	case v.cursor == 0:
		if len(v.neighbors) > 0 {
			v.cursor = 1
			return v.neighbors[0]
		}
		if len(v.resNeighbors) > 0 {
			v.cursor = -1
			return v.resNeighbors[0]
		}
	case v.cursor > 0:
		if v.cursor < len(v.neighbors) {
			v.cursor++
			return v.neighbors[v.cursor-1]
		}
		if len(v.resNeighbors) > 0 {
			v.cursor = -1
			return v.resNeighbors[0]
		}
	default:
		k := -v.cursor
		if k < len(v.resNeighbors) {
			v.cursor = -(k + 1)
			return v.resNeighbors[k]
		}
	}

	v.deadEnd = true
	return nil
}

// StepBack retreats the cursor by one position so the last edge is
// offered again by the next NextEdge call.
func (v *Vertex) StepBack() {
	switch {
	case v.cursor > 0:
		v.cursor--
	case v.cursor == -1:
		// Back across the boundary onto the last forward position.
		v.cursor = len(v.neighbors)
	case v.cursor < -1:
		v.cursor++
	}
}

// =============================================================================
// Push-relabel steps
// =============================================================================

// Relabel raises the label to one above the smallest label reachable over
// a residual arc: a forward edge with spare capacity or an incoming edge
// with positive flow. Without any residual arc the label stays unchanged
// and increasedLabel is not set.
func (v *Vertex) Relabel() {
	minLabel := -1

	for _, e := range v.neighbors {
		if e.flow < e.capacity && (minLabel < 0 || e.end.label < minLabel) {
			minLabel = e.end.label
		}
	}
	for _, e := range v.resNeighbors {
		if e.flow > 0 && (minLabel < 0 || e.start.label < minLabel) {
			minLabel = e.start.label
		}
	}

	if minLabel < 0 {
		return
	}
	v.label = minLabel + 1
	v.increasedLabel = true
}

// PushRelabelStep performs one push-relabel step for this vertex: fetch
// the next edge via the cursor; with the sequence exhausted, relabel and
// clear deadEnd; with an admissible edge, push; with an inadmissible edge
// on a deadEnd vertex, relabel and clear the flag; otherwise advance
// silently.
//
// Returns the vertex a push newly activated, or nil.
func (v *Vertex) PushRelabelStep() *Vertex {
	e := v.NextEdge()
	if e == nil {
		v.Relabel()
		v.deadEnd = false
		return nil
	}

	if e.start == v {
		// Forward arc: admissible when downhill with spare capacity.
		if e.flow < e.capacity && v.label == e.end.label+1 {
			return e.PushForward()
		}
	} else {
		// Residual arc: admissible when downhill with flow to cancel.
		if e.flow > 0 && v.label == e.start.label+1 {
			return e.PushBackward()
		}
	}

	if v.deadEnd {
		v.Relabel()
		v.deadEnd = false
	}
	return nil
}
