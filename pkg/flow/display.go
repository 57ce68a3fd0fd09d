package flow

import (
	"fmt"
	"strings"
)

// DisplayFlowNetwork возвращает текстовый дамп сети: заголовок с
// источником, стоком и максимальным потоком, затем по строке на вершину
// в порядке вставки с перечислением исходящих рёбер
func (n *Network) DisplayFlowNetwork() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Source: %d\n", n.sourceID)
	fmt.Fprintf(&b, "Sink: %d\n", n.sinkID)
	fmt.Fprintf(&b, "MaxFlow: %d\n", n.maxFlow)

	for _, v := range n.graph.Vertices() {
		fmt.Fprintf(&b, "Vertex %d (label %d): ", v.id, v.label)
		for _, e := range v.neighbors {
			fmt.Fprintf(&b, " (%d,%d,c:%d,f:%d) ", e.start.id, e.end.id, e.capacity, e.flow)
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// String реализует fmt.Stringer
func (n *Network) String() string {
	return n.DisplayFlowNetwork()
}
