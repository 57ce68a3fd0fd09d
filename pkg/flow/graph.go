package flow

import "math"

// =============================================================================
// Graph
// =============================================================================

// Graph owns the vertices of a flow network, keyed by id with
// deterministic iteration in insertion order.
//
// # Determinism
//
// Max-flow algorithms can find different valid flow assignments depending
// on traversal order. Adjacency lists keep insertion order and vertex
// iteration follows insertion order, so repeated runs on the same input
// produce identical flows.
//
// The transient fields carry state across algorithm steps: the augmenting
// path being built by Dinic's DFS (with the traversal direction of each
// step) and the FIFO queue of active vertices for push-relabel.
type Graph struct {
	vertices map[int64]*Vertex
	order    []int64

	augmentingPath []*Edge
	pathForward    []bool

	queue      []*Vertex
	pushSource *Vertex
	pushSink   *Vertex
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		vertices: make(map[int64]*Vertex),
	}
}

// AddVertex inserts a vertex with the given id. Returns the new vertex,
// or nil when the id is already present.
func (g *Graph) AddVertex(id int64) *Vertex {
	if _, ok := g.vertices[id]; ok {
		return nil
	}
	v := newVertex(id)
	g.vertices[id] = v
	g.order = append(g.order, id)
	return v
}

// Vertex returns the vertex with the given id, or nil.
func (g *Graph) Vertex(id int64) *Vertex {
	return g.vertices[id]
}

// ContainsVertex reports whether a vertex with the given id exists.
func (g *Graph) ContainsVertex(id int64) bool {
	_, ok := g.vertices[id]
	return ok
}

// RemoveVertex removes the vertex with the given id together with all its
// incident edges: its outgoing edges disappear from the end vertices'
// reverse adjacency, its incoming edges from the start vertices'
// adjacency. Returns false when no such vertex exists.
func (g *Graph) RemoveVertex(id int64) bool {
	v, ok := g.vertices[id]
	if !ok {
		return false
	}

	for _, e := range v.neighbors {
		e.end.RemoveResEdge(v)
	}
	v.neighbors = nil

	for _, otherID := range g.order {
		if otherID == id {
			continue
		}
		if e := g.vertices[otherID].RemoveEdge(v); e != nil {
			v.RemoveResEdge(e.start)
		}
	}

	delete(g.vertices, id)
	for i, otherID := range g.order {
		if otherID == id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
	return true
}

// Vertices returns the vertices in insertion order.
func (g *Graph) Vertices() []*Vertex {
	result := make([]*Vertex, 0, len(g.order))
	for _, id := range g.order {
		result = append(result, g.vertices[id])
	}
	return result
}

// VertexIDs returns the vertex ids in insertion order.
func (g *Graph) VertexIDs() []int64 {
	ids := make([]int64, len(g.order))
	copy(ids, g.order)
	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	return len(g.vertices)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	count := 0
	for _, id := range g.order {
		count += len(g.vertices[id].neighbors)
	}
	return count
}

// Edge returns the edge (from, to), or nil.
func (g *Graph) Edge(from, to int64) *Edge {
	u := g.vertices[from]
	v := g.vertices[to]
	if u == nil || v == nil {
		return nil
	}
	return u.EdgeTo(v)
}

// OutFlow returns the total flow leaving the vertex.
func (g *Graph) OutFlow(id int64) int64 {
	v := g.vertices[id]
	if v == nil {
		return 0
	}
	var total int64
	for _, e := range v.neighbors {
		total += e.flow
	}
	return total
}

// InFlow returns the total flow entering the vertex.
func (g *Graph) InFlow(id int64) int64 {
	var total int64
	for _, otherID := range g.order {
		for _, e := range g.vertices[otherID].neighbors {
			if e.end.id == id {
				total += e.flow
			}
		}
	}
	return total
}

// =============================================================================
// Shared algorithm primitives
// =============================================================================

// ResetFlow zeroes the flow on every edge.
func (g *Graph) ResetFlow() {
	for _, id := range g.order {
		for _, e := range g.vertices[id].neighbors {
			e.flow = 0
		}
	}
}

// BuildResidualGraph rebuilds every vertex's reverse adjacency from the
// outgoing edges and clears the per-vertex working flags.
func (g *Graph) BuildResidualGraph() {
	for _, id := range g.order {
		v := g.vertices[id]
		v.ClearResNeighbors()
		v.deadEnd = false
		v.increasedLabel = false
		v.ResetCursor()
	}
	for _, id := range g.order {
		g.vertices[id].AddEdgesToResGraph()
	}
}

// ResetExcess zeroes the excess of every vertex and installs the source
// sentinel recognized by PushForward.
func (g *Graph) ResetExcess(sourceID int64) {
	for _, id := range g.order {
		v := g.vertices[id]
		v.excess = 0
		v.increasedLabel = false
	}
	if source := g.vertices[sourceID]; source != nil {
		source.excess = ExcessSource
	}
}

// InitializeLabels zeroes every label and raises the source label to the
// vertex count, which blocks back-flow into the source.
func (g *Graph) InitializeLabels(sourceID int64) {
	for _, id := range g.order {
		g.vertices[id].label = 0
	}
	if source := g.vertices[sourceID]; source != nil {
		source.label = len(g.vertices)
	}
}

// =============================================================================
// Dinic primitives
// =============================================================================

// BuildLayeredNetwork runs a BFS over the residual graph from the source
// and assigns layers. Every edge starts blocked; the edge over which a
// vertex is first discovered is unblocked. The BFS stops once the sink's
// layer is complete; vertices that entered the sink's layer alongside it
// are pushed back out of the layered network.
//
// Returns the sink's layer (>= 1), or -1 when the sink is unreachable.
func (g *Graph) BuildLayeredNetwork(sourceID, sinkID int64) int {
	source := g.vertices[sourceID]
	sink := g.vertices[sinkID]
	if source == nil || sink == nil {
		return -1
	}

	for _, id := range g.order {
		v := g.vertices[id]
		v.layer = -1
		v.deadEnd = false
		v.ResetCursor()
		for _, e := range v.neighbors {
			e.blocked = true
		}
	}
	g.augmentingPath = g.augmentingPath[:0]
	g.pathForward = g.pathForward[:0]

	source.layer = 0
	queue := make([]*Vertex, 0, len(g.vertices))
	queue = append(queue, source)
	sinkLayer := -1

	for head := 0; head < len(queue); head++ {
		u := queue[head]
		if sinkLayer >= 0 && u.layer >= sinkLayer {
			break
		}

		for _, e := range u.neighbors {
			if e.flow < e.capacity && e.end.layer == -1 && e.end != source {
				e.end.layer = u.layer + 1
				e.end.deadEnd = false
				e.blocked = false
				queue = append(queue, e.end)
				if e.end == sink {
					sinkLayer = e.end.layer
				}
			}
		}
		for _, e := range u.resNeighbors {
			if e.flow > 0 && e.start.layer == -1 && e.start != source {
				e.start.layer = u.layer + 1
				e.start.deadEnd = false
				e.blocked = false
				queue = append(queue, e.start)
				if e.start == sink {
					sinkLayer = e.start.layer
				}
			}
		}
	}

	if sinkLayer < 0 {
		return -1
	}

	// Siblings that entered the sink's layer cannot reach the sink inside
	// the layered network.
	for _, id := range g.order {
		v := g.vertices[id]
		if v != sink && v.layer == sinkLayer {
			v.layer = -1
		}
	}

	return sinkLayer
}

// SearchAugmentingPath runs a DFS from the source inside the layered
// network, using the per-vertex cursors to resume partial exploration
// across calls. The path of edges is accumulated in augmentingPath.
// Dead ends pop their entering edge and block it.
//
// Returns true when the sink was reached.
func (g *Graph) SearchAugmentingPath(sourceID, sinkID int64) bool {
	source := g.vertices[sourceID]
	sink := g.vertices[sinkID]
	if source == nil || sink == nil {
		return false
	}

	v := source
	for {
		if v == sink {
			return true
		}

		if v.deadEnd {
			if v == source {
				return false
			}
			// Retreat: drop the entering edge from the layered network.
			last := len(g.augmentingPath) - 1
			e := g.augmentingPath[last]
			g.augmentingPath = g.augmentingPath[:last]
			forward := g.pathForward[last]
			g.pathForward = g.pathForward[:last]
			e.blocked = true
			if forward {
				v = e.start
			} else {
				v = e.end
			}
			continue
		}

		e := v.NextEdge()
		if e == nil || e.blocked {
			continue
		}

		if e.start == v {
			if e.end.layer == v.layer+1 && e.flow < e.capacity {
				g.augmentingPath = append(g.augmentingPath, e)
				g.pathForward = append(g.pathForward, true)
				v = e.end
			}
			continue
		}

		if e.start.layer == v.layer+1 && e.flow > 0 {
			g.augmentingPath = append(g.augmentingPath, e)
			g.pathForward = append(g.pathForward, false)
			v = e.start
		}
	}
}

// UpdateMinFlowIncrement applies the bottleneck of the current augmenting
// path: forward steps gain the bottleneck, backward steps lose it. A step
// edge that saturates (or empties, on the reverse side) is blocked; for
// the rest, the cursor of the vertex the step originated from is rewound
// so the edge is reused by the next DFS pass.
//
// Returns the bottleneck, 0 for an empty path.
func (g *Graph) UpdateMinFlowIncrement() int64 {
	if len(g.augmentingPath) == 0 {
		return 0
	}

	var delta int64 = math.MaxInt64
	for i, e := range g.augmentingPath {
		var residual int64
		if g.pathForward[i] {
			residual = e.capacity - e.flow
		} else {
			residual = e.flow
		}
		if residual < delta {
			delta = residual
		}
	}

	for i, e := range g.augmentingPath {
		if g.pathForward[i] {
			e.flow += delta
			if e.flow == e.capacity {
				e.blocked = true
			} else {
				e.start.StepBack()
			}
		} else {
			e.flow -= delta
			if e.flow == 0 {
				e.blocked = true
			} else {
				e.end.StepBack()
			}
		}
	}

	g.augmentingPath = g.augmentingPath[:0]
	g.pathForward = g.pathForward[:0]
	return delta
}

// =============================================================================
// Push-relabel primitives
// =============================================================================

// InitialPush saturates every outgoing edge of the source. Because the
// source carries the excess sentinel, each push moves the full capacity.
// Newly activated vertices other than source and sink enter the FIFO
// queue.
//
// Returns the queue length.
func (g *Graph) InitialPush(sourceID, sinkID int64) int {
	source := g.vertices[sourceID]
	sink := g.vertices[sinkID]
	g.pushSource = source
	g.pushSink = sink
	g.queue = g.queue[:0]
	if source == nil || sink == nil {
		return 0
	}

	for _, e := range source.neighbors {
		activated := e.PushForward()
		if activated != nil && activated != source && activated != sink {
			g.queue = append(g.queue, activated)
		}
	}
	return len(g.queue)
}

// DischargeQueue discharges the head of the FIFO queue: push-relabel
// steps run until the vertex's excess is exhausted or a relabel fired.
// A vertex left with excess re-enters the queue with a fresh relabel
// flag. Vertices a push activates are enqueued as they appear.
//
// Returns the queue length.
func (g *Graph) DischargeQueue() int {
	if len(g.queue) == 0 {
		return 0
	}

	h := g.queue[0]
	g.queue = g.queue[1:]
	h.ResetCursor()

	for h.excess > 0 && !h.increasedLabel {
		activated := h.PushRelabelStep()
		if activated != nil && activated != g.pushSource && activated != g.pushSink {
			g.queue = append(g.queue, activated)
		}
	}

	if h.excess > 0 {
		h.increasedLabel = false
		g.queue = append(g.queue, h)
	}

	return len(g.queue)
}
