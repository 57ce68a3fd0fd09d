package flow

import "testing"

// benchNetwork строит слоистую сеть: levels слоёв по width вершин,
// полный двудольный переход между соседними слоями
func benchNetwork(levels, width int) *Network {
	n := NewNetwork()

	source := int64(0)
	n.AddVertex(source)

	id := int64(1)
	layers := make([][]int64, levels)
	for l := 0; l < levels; l++ {
		for w := 0; w < width; w++ {
			n.AddVertex(id)
			layers[l] = append(layers[l], id)
			id++
		}
	}
	sink := id
	n.AddVertex(sink)

	for _, v := range layers[0] {
		n.AddEdge(source, v, 10)
	}
	for l := 0; l+1 < levels; l++ {
		for i, u := range layers[l] {
			for j, v := range layers[l+1] {
				n.AddEdge(u, v, int64(1+(i+j)%5))
			}
		}
	}
	for _, v := range layers[levels-1] {
		n.AddEdge(v, sink, 10)
	}

	n.SetSource(source)
	n.SetSink(sink)
	return n
}

func BenchmarkDinic(b *testing.B) {
	n := benchNetwork(6, 10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n.Dinic()
	}
}

func BenchmarkGoldbergTarjan(b *testing.B) {
	n := benchNetwork(6, 10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n.GoldbergTarjan()
	}
}

func BenchmarkDinicSmall(b *testing.B) {
	n := ExampleSixVertexNetwork()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n.Dinic()
	}
}
