package flow

// Готовые сети для примеров, тестов и бенчмарков.

// ExampleSixVertexNetwork шестивершинная демонстрационная сеть, максимальный поток 11
func ExampleSixVertexNetwork() *Network {
	n := NewNetwork()
	for id := int64(0); id <= 5; id++ {
		n.AddVertex(id)
	}
	n.AddEdge(0, 1, 7)
	n.AddEdge(0, 2, 4)
	n.AddEdge(1, 3, 5)
	n.AddEdge(1, 4, 3)
	n.AddEdge(2, 4, 2)
	n.AddEdge(2, 5, 4)
	n.AddEdge(3, 5, 8)
	n.AddEdge(4, 5, 3)
	n.SetSource(0)
	n.SetSink(5)
	return n
}

// ExampleParallelPaths два независимых пути, максимальный поток 20
func ExampleParallelPaths() *Network {
	n := NewNetwork()
	for id := int64(0); id <= 3; id++ {
		n.AddVertex(id)
	}
	n.AddEdge(0, 1, 10)
	n.AddEdge(0, 2, 10)
	n.AddEdge(1, 3, 10)
	n.AddEdge(2, 3, 10)
	n.SetSource(0)
	n.SetSink(3)
	return n
}

// ExampleBottleneck цепочка с узким местом, максимальный поток 1
func ExampleBottleneck() *Network {
	n := NewNetwork()
	for id := int64(0); id <= 3; id++ {
		n.AddVertex(id)
	}
	n.AddEdge(0, 1, 100)
	n.AddEdge(1, 2, 1)
	n.AddEdge(2, 3, 100)
	n.SetSource(0)
	n.SetSink(3)
	return n
}

// ExampleAntiparallel сеть, где оптимум требует отмены потока по
// остаточному ребру, максимальный поток 6
func ExampleAntiparallel() *Network {
	n := NewNetwork()
	for id := int64(0); id <= 3; id++ {
		n.AddVertex(id)
	}
	n.AddEdge(0, 1, 3)
	n.AddEdge(0, 2, 3)
	n.AddEdge(1, 2, 2)
	n.AddEdge(1, 3, 3)
	n.AddEdge(2, 3, 3)
	n.SetSource(0)
	n.SetSink(3)
	return n
}
