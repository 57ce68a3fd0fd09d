package flow

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"maxflow/pkg/apperror"
	"maxflow/pkg/logger"
)

// snapshotVersion версия формата снимка, стабильная в пределах мажорной версии
const snapshotVersion = 1

// snapshot сериализуемое представление полной модели сети
type snapshot struct {
	Version  int            `json:"version"`
	SourceID int64          `json:"source_id"`
	SinkID   int64          `json:"sink_id"`
	MaxFlow  int64          `json:"max_flow"`
	Vertices []int64        `json:"vertices"`
	Edges    []snapshotEdge `json:"edges"`
}

// snapshotEdge ребро снимка
type snapshotEdge struct {
	From     int64 `json:"from"`
	To       int64 `json:"to"`
	Capacity int64 `json:"capacity"`
	Flow     int64 `json:"flow"`
}

// makeSnapshot строит снимок текущего состояния
func (n *Network) makeSnapshot() *snapshot {
	s := &snapshot{
		Version:  snapshotVersion,
		SourceID: n.sourceID,
		SinkID:   n.sinkID,
		MaxFlow:  n.maxFlow,
		Vertices: n.graph.VertexIDs(),
	}
	for _, v := range n.graph.Vertices() {
		for _, e := range v.neighbors {
			s.Edges = append(s.Edges, snapshotEdge{
				From:     e.start.id,
				To:       e.end.id,
				Capacity: e.capacity,
				Flow:     e.flow,
			})
		}
	}
	return s
}

// validate проверяет согласованность снимка перед восстановлением
func (s *snapshot) validate() error {
	if s.Version != snapshotVersion {
		return apperror.Newf(apperror.CodeSnapshotCorrupt, "unsupported snapshot version %d", s.Version)
	}

	seen := make(map[int64]bool, len(s.Vertices))
	for _, id := range s.Vertices {
		if id < 0 {
			return apperror.Newf(apperror.CodeSnapshotCorrupt, "negative vertex id %d", id)
		}
		if seen[id] {
			return apperror.Newf(apperror.CodeSnapshotCorrupt, "duplicate vertex id %d", id)
		}
		seen[id] = true
	}

	edges := make(map[[2]int64]bool, len(s.Edges))
	for _, e := range s.Edges {
		if !seen[e.From] || !seen[e.To] {
			return apperror.Newf(apperror.CodeSnapshotCorrupt, "edge (%d,%d) references unknown vertex", e.From, e.To)
		}
		if e.From == e.To {
			return apperror.Newf(apperror.CodeSnapshotCorrupt, "self-loop (%d,%d)", e.From, e.To)
		}
		if e.Capacity < 1 || e.Capacity > MaxCapacity {
			return apperror.Newf(apperror.CodeSnapshotCorrupt, "edge (%d,%d) has invalid capacity %d", e.From, e.To, e.Capacity)
		}
		if e.Flow < 0 || e.Flow > e.Capacity {
			return apperror.Newf(apperror.CodeSnapshotCorrupt, "edge (%d,%d) has invalid flow %d", e.From, e.To, e.Flow)
		}
		key := [2]int64{e.From, e.To}
		if edges[key] {
			return apperror.Newf(apperror.CodeSnapshotCorrupt, "duplicate edge (%d,%d)", e.From, e.To)
		}
		edges[key] = true
	}

	if s.SourceID != Unset && !seen[s.SourceID] {
		return apperror.Newf(apperror.CodeSnapshotCorrupt, "source %d not among vertices", s.SourceID)
	}
	if s.SinkID != Unset && !seen[s.SinkID] {
		return apperror.Newf(apperror.CodeSnapshotCorrupt, "sink %d not among vertices", s.SinkID)
	}
	if s.SourceID != Unset && s.SourceID == s.SinkID {
		return apperror.Newf(apperror.CodeSnapshotCorrupt, "source and sink are both %d", s.SourceID)
	}

	return nil
}

// restore замещает состояние сети содержимым снимка
func (n *Network) restore(s *snapshot) {
	g := NewGraph()
	for _, id := range s.Vertices {
		g.AddVertex(id)
	}
	for _, e := range s.Edges {
		edge := g.Vertex(e.From).AddEdge(g.Vertex(e.To), e.Capacity)
		edge.flow = e.Flow
	}
	n.graph = g
	n.sourceID = s.SourceID
	n.sinkID = s.SinkID
	n.maxFlow = s.MaxFlow
}

// SaveNetwork сохраняет сеть в файл. Запись атомарна: снимок пишется во
// временный файл и переименовывается. При ошибке сеть не изменяется
func (n *Network) SaveNetwork(path string) error {
	defer n.emit("saveNetwork")
	n.setFlags(false, false)

	data, err := json.MarshalIndent(n.makeSnapshot(), "", "  ")
	if err != nil {
		n.prompt = fmt.Sprintf("Cannot save network: %v.", err)
		return apperror.Wrap(apperror.CodeSnapshotWrite, "marshal snapshot", err)
	}

	tmp := path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		n.prompt = fmt.Sprintf("Cannot save network to %s: %v.", path, err)
		return apperror.Wrap(apperror.CodeSnapshotWrite, "create directory", err)
	}
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		n.prompt = fmt.Sprintf("Cannot save network to %s: %v.", path, err)
		return apperror.Wrap(apperror.CodeSnapshotWrite, "write snapshot", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		n.prompt = fmt.Sprintf("Cannot save network to %s: %v.", path, err)
		return apperror.Wrap(apperror.CodeSnapshotWrite, "rename snapshot", err)
	}

	n.prompt = fmt.Sprintf("Flow network saved to %s.", path)
	return nil
}

// LoadNetwork загружает сеть из файла. При любой ошибке сеть остаётся
// неизменной, а причина записывается в статусное сообщение
func (n *Network) LoadNetwork(path string) error {
	defer n.emit("loadNetwork")

	data, err := os.ReadFile(path)
	if err != nil {
		n.setFlags(false, false)
		n.prompt = fmt.Sprintf("Cannot load network from %s: %v.", path, err)
		return apperror.Wrap(apperror.CodeSnapshotRead, "read snapshot", err)
	}

	var s snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		n.setFlags(false, false)
		n.prompt = fmt.Sprintf("Cannot load network from %s: %v.", path, err)
		return apperror.Wrap(apperror.CodeSnapshotCorrupt, "unmarshal snapshot", err)
	}
	if err := s.validate(); err != nil {
		n.setFlags(false, false)
		n.prompt = fmt.Sprintf("Cannot load network from %s: %v.", path, err)
		return err
	}

	n.restore(&s)
	n.setFlags(true, true)
	n.prompt = fmt.Sprintf("Flow network loaded from %s.", path)
	logger.WithNetwork(n.sourceID, n.sinkID).Info("flow network loaded",
		"path", path,
		"vertices", n.graph.VertexCount(),
		"edges", n.graph.EdgeCount(),
	)
	return nil
}
