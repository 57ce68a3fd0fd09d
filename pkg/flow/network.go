package flow

import (
	"fmt"
	"log/slog"

	"maxflow/pkg/logger"
)

// Unset обозначает неназначенный источник или сток
const Unset int64 = -1

// MaxCapacity верхняя граница пропускной способности ребра.
// Гарантирует, что n * MaxCapacity не переполняет int64 при числе
// вершин n меньше 2^23.
const MaxCapacity int64 = 1 << 40

// EdgeData описание ребра для внешних представлений
type EdgeData struct {
	U        int64 `json:"u"`
	V        int64 `json:"v"`
	Capacity int64 `json:"capacity"`
	Flow     int64 `json:"flow"`
}

// Network фасад потоковой сети: граф, источник, сток, значение
// последнего вычисленного максимального потока и статусное сообщение
// для внешних представлений
type Network struct {
	graph *Graph

	sourceID int64
	sinkID   int64
	maxFlow  int64

	prompt      string
	updateGraph bool
	drawGraph   bool

	subscribers []func(Event)
	log         *slog.Logger
}

// NewNetwork создаёт пустую сеть без источника и стока
func NewNetwork() *Network {
	return &Network{
		graph:    NewGraph(),
		sourceID: Unset,
		sinkID:   Unset,
		prompt:   "Empty flow network created.",
		log:      logger.WithComponent("flow"),
	}
}

// Graph возвращает граф сети
func (n *Network) Graph() *Graph {
	return n.graph
}

// Source возвращает id источника или Unset
func (n *Network) Source() int64 {
	return n.sourceID
}

// Sink возвращает id стока или Unset
func (n *Network) Sink() int64 {
	return n.sinkID
}

// MaxFlow возвращает значение последнего вычисленного максимального потока
func (n *Network) MaxFlow() int64 {
	return n.maxFlow
}

// Prompt возвращает статусное сообщение последней операции
func (n *Network) Prompt() string {
	return n.prompt
}

// IsUpdateGraph возвращает флаг "текстовое представление устарело"
func (n *Network) IsUpdateGraph() bool {
	return n.updateGraph
}

// IsDrawGraph возвращает флаг "отрисованное представление устарело"
func (n *Network) IsDrawGraph() bool {
	return n.drawGraph
}

// UpdateGraph взводит флаг обновления и рассылает событие
func (n *Network) UpdateGraph() {
	n.updateGraph = true
	n.emit("updateGraph")
}

// DrawGraph взводит флаг перерисовки и рассылает событие
func (n *Network) DrawGraph() {
	n.drawGraph = true
	n.emit("drawGraph")
}

// setFlags выставляет оба флага согласно контракту операции
func (n *Network) setFlags(updateGraph, drawGraph bool) {
	n.updateGraph = updateGraph
	n.drawGraph = drawGraph
}

// AddVertex добавляет вершину. Возвращает false при отказе валидации
func (n *Network) AddVertex(id int64) bool {
	defer n.emit("addVertex")
	n.setFlags(true, true)

	if id < 0 {
		n.prompt = fmt.Sprintf("Cannot add vertex %d: identifiers must be non-negative.", id)
		return false
	}
	if n.graph.AddVertex(id) == nil {
		n.prompt = fmt.Sprintf("Vertex %d already exists.", id)
		return false
	}
	n.prompt = fmt.Sprintf("Vertex %d added.", id)
	return true
}

// RemoveVertex удаляет вершину со всеми инцидентными рёбрами.
// Снимает назначение источника/стока, если оно указывало на вершину
func (n *Network) RemoveVertex(id int64) bool {
	defer n.emit("removeVertex")
	n.setFlags(true, true)

	if !n.graph.RemoveVertex(id) {
		n.prompt = fmt.Sprintf("Vertex %d does not exist.", id)
		return false
	}
	if n.sourceID == id {
		n.sourceID = Unset
	}
	if n.sinkID == id {
		n.sinkID = Unset
	}
	n.prompt = fmt.Sprintf("Vertex %d removed.", id)
	return true
}

// AddEdge добавляет ребро (u, v) с заданной пропускной способностью
func (n *Network) AddEdge(u, v, capacity int64) bool {
	defer n.emit("addEdge")
	n.setFlags(true, true)

	switch {
	case u < 0 || v < 0:
		n.prompt = fmt.Sprintf("Cannot add edge (%d,%d): identifiers must be non-negative.", u, v)
		return false
	case capacity < 1:
		n.prompt = fmt.Sprintf("Cannot add edge (%d,%d): capacity must be at least 1.", u, v)
		return false
	case capacity > MaxCapacity:
		n.prompt = fmt.Sprintf("Cannot add edge (%d,%d): capacity exceeds the supported maximum.", u, v)
		return false
	case u == v:
		n.prompt = fmt.Sprintf("Cannot add edge (%d,%d): self-loops are not allowed.", u, v)
		return false
	}

	start := n.graph.Vertex(u)
	end := n.graph.Vertex(v)
	if start == nil || end == nil {
		n.prompt = fmt.Sprintf("Cannot add edge (%d,%d): both vertices must exist.", u, v)
		return false
	}
	if start.AddEdge(end, capacity) == nil {
		n.prompt = fmt.Sprintf("Edge (%d,%d) already exists.", u, v)
		return false
	}
	n.prompt = fmt.Sprintf("Edge (%d,%d) with capacity %d added.", u, v, capacity)
	return true
}

// RemoveEdge удаляет ребро (u, v)
func (n *Network) RemoveEdge(u, v int64) bool {
	defer n.emit("removeEdge")
	n.setFlags(true, true)

	start := n.graph.Vertex(u)
	end := n.graph.Vertex(v)
	if start == nil || end == nil || start.RemoveEdge(end) == nil {
		n.prompt = fmt.Sprintf("Edge (%d,%d) does not exist.", u, v)
		return false
	}
	end.RemoveResEdge(start)
	n.prompt = fmt.Sprintf("Edge (%d,%d) removed.", u, v)
	return true
}

// SetSource назначает источник. Назначение на текущий сток снимает сток
func (n *Network) SetSource(id int64) bool {
	defer n.emit("setSource")
	n.setFlags(true, true)

	if id < 0 || !n.graph.ContainsVertex(id) {
		n.prompt = fmt.Sprintf("Cannot set source: vertex %d does not exist.", id)
		return false
	}
	if n.sinkID == id {
		n.sinkID = Unset
	}
	n.sourceID = id
	n.prompt = fmt.Sprintf("Source set to vertex %d.", id)
	return true
}

// SetSink назначает сток. Назначение на текущий источник снимает источник
func (n *Network) SetSink(id int64) bool {
	defer n.emit("setSink")
	n.setFlags(true, true)

	if id < 0 || !n.graph.ContainsVertex(id) {
		n.prompt = fmt.Sprintf("Cannot set sink: vertex %d does not exist.", id)
		return false
	}
	if n.sourceID == id {
		n.sourceID = Unset
	}
	n.sinkID = id
	n.prompt = fmt.Sprintf("Sink set to vertex %d.", id)
	return true
}

// ResetNetwork очищает сеть полностью
func (n *Network) ResetNetwork() {
	defer n.emit("resetNetwork")
	n.setFlags(true, true)

	n.graph = NewGraph()
	n.sourceID = Unset
	n.sinkID = Unset
	n.maxFlow = 0
	n.prompt = "Flow network reset."
}

// GetGraphData возвращает рёбра в порядке вставки вершин и, внутри
// вершины, в порядке вставки рёбер
func (n *Network) GetGraphData() []EdgeData {
	var data []EdgeData
	for _, v := range n.graph.Vertices() {
		for _, e := range v.Edges() {
			data = append(data, EdgeData{
				U:        e.start.id,
				V:        e.end.id,
				Capacity: e.capacity,
				Flow:     e.flow,
			})
		}
	}
	return data
}

// GetVertexIndices возвращает id вершин в порядке вставки
func (n *Network) GetVertexIndices() []int64 {
	return n.graph.VertexIDs()
}
