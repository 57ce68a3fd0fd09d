package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkFlowInvariants проверяет границы потока и закон сохранения
func checkFlowInvariants(t *testing.T, n *Network) {
	t.Helper()

	for _, e := range n.GetGraphData() {
		assert.GreaterOrEqual(t, e.Flow, int64(0), "flow below zero on (%d,%d)", e.U, e.V)
		assert.LessOrEqual(t, e.Flow, e.Capacity, "flow above capacity on (%d,%d)", e.U, e.V)
	}

	for _, id := range n.GetVertexIndices() {
		if id == n.Source() || id == n.Sink() {
			continue
		}
		in := n.Graph().InFlow(id)
		out := n.Graph().OutFlow(id)
		assert.Equal(t, in, out, "conservation violated at vertex %d", id)
	}
}

// minCutValue перебирает все s-t разрезы и возвращает минимальную ёмкость
func minCutValue(n *Network) int64 {
	ids := n.GetVertexIndices()
	var middle []int64
	for _, id := range ids {
		if id != n.Source() && id != n.Sink() {
			middle = append(middle, id)
		}
	}

	edges := n.GetGraphData()
	best := int64(-1)
	for mask := 0; mask < 1<<len(middle); mask++ {
		inS := map[int64]bool{n.Source(): true}
		for i, id := range middle {
			if mask&(1<<i) != 0 {
				inS[id] = true
			}
		}
		var cut int64
		for _, e := range edges {
			if inS[e.U] && !inS[e.V] {
				cut += e.Capacity
			}
		}
		if best < 0 || cut < best {
			best = cut
		}
	}
	return best
}

func TestMaxFlowScenarios(t *testing.T) {
	tests := []struct {
		name         string
		buildNetwork func() *Network
		wantMaxFlow  int64
	}{
		{
			name:         "six_vertex_demo",
			buildNetwork: ExampleSixVertexNetwork,
			wantMaxFlow:  11,
		},
		{
			name:         "parallel_paths",
			buildNetwork: ExampleParallelPaths,
			wantMaxFlow:  20,
		},
		{
			name:         "bottleneck_chain",
			buildNetwork: ExampleBottleneck,
			wantMaxFlow:  1,
		},
		{
			name:         "antiparallel_residual_use",
			buildNetwork: ExampleAntiparallel,
			wantMaxFlow:  6,
		},
		{
			name: "single_edge",
			buildNetwork: func() *Network {
				n := NewNetwork()
				n.AddVertex(0)
				n.AddVertex(1)
				n.AddEdge(0, 1, 10)
				n.SetSource(0)
				n.SetSink(1)
				return n
			},
			wantMaxFlow: 10,
		},
		{
			name: "complex_network_cormen",
			buildNetwork: func() *Network {
				// Пример из CLRS (Cormen)
				n := NewNetwork()
				for id := int64(0); id <= 5; id++ {
					n.AddVertex(id)
				}
				n.AddEdge(0, 1, 16)
				n.AddEdge(0, 2, 13)
				n.AddEdge(1, 2, 10)
				n.AddEdge(1, 3, 12)
				n.AddEdge(2, 1, 4)
				n.AddEdge(2, 4, 14)
				n.AddEdge(3, 2, 9)
				n.AddEdge(3, 5, 20)
				n.AddEdge(4, 3, 7)
				n.AddEdge(4, 5, 4)
				n.SetSource(0)
				n.SetSink(5)
				return n
			},
			wantMaxFlow: 23,
		},
		{
			name: "sink_unreachable",
			buildNetwork: func() *Network {
				n := NewNetwork()
				n.AddVertex(0)
				n.AddVertex(1)
				n.AddVertex(2)
				n.AddEdge(0, 1, 5)
				n.SetSource(0)
				n.SetSink(2)
				return n
			},
			wantMaxFlow: 0,
		},
		{
			name: "unit_capacities",
			buildNetwork: func() *Network {
				n := NewNetwork()
				for id := int64(1); id <= 4; id++ {
					n.AddVertex(id)
				}
				n.AddEdge(1, 2, 1)
				n.AddEdge(1, 3, 1)
				n.AddEdge(2, 3, 1)
				n.AddEdge(2, 4, 1)
				n.AddEdge(3, 4, 1)
				n.SetSource(1)
				n.SetSink(4)
				return n
			},
			wantMaxFlow: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/dinic", func(t *testing.T) {
			n := tt.buildNetwork()
			got := n.Dinic()
			assert.Equal(t, tt.wantMaxFlow, got)
			assert.Equal(t, tt.wantMaxFlow, n.MaxFlow())
			checkFlowInvariants(t, n)
		})

		t.Run(tt.name+"/goldberg_tarjan", func(t *testing.T) {
			n := tt.buildNetwork()
			got := n.GoldbergTarjan()
			assert.Equal(t, tt.wantMaxFlow, got)
			assert.Equal(t, tt.wantMaxFlow, n.MaxFlow())
			checkFlowInvariants(t, n)
		})

		t.Run(tt.name+"/algorithms_agree", func(t *testing.T) {
			n := tt.buildNetwork()
			assert.Equal(t, n.Dinic(), n.GoldbergTarjan())
		})

		t.Run(tt.name+"/min_cut", func(t *testing.T) {
			n := tt.buildNetwork()
			got := n.Dinic()
			assert.Equal(t, minCutValue(n), got)
		})
	}
}

func TestAlgorithmsIdempotent(t *testing.T) {
	for _, algorithm := range []Algorithm{AlgorithmDinic, AlgorithmGoldbergTarjan} {
		t.Run(string(algorithm), func(t *testing.T) {
			n := ExampleSixVertexNetwork()

			first, err := n.Run(algorithm)
			require.NoError(t, err)
			flowsAfterFirst := n.GetGraphData()

			second, err := n.Run(algorithm)
			require.NoError(t, err)

			assert.Equal(t, first, second)
			assert.Equal(t, flowsAfterFirst, n.GetGraphData())
		})
	}
}

func TestAlgorithmsWithoutSourceAndSink(t *testing.T) {
	build := func() *Network {
		n := NewNetwork()
		n.AddVertex(0)
		n.AddVertex(1)
		n.AddEdge(0, 1, 5)
		return n
	}

	t.Run("dinic", func(t *testing.T) {
		n := build()
		assert.Equal(t, int64(0), n.Dinic())
		for _, e := range n.GetGraphData() {
			assert.Equal(t, int64(0), e.Flow)
		}
	})

	t.Run("goldberg_tarjan", func(t *testing.T) {
		n := build()
		assert.Equal(t, int64(0), n.GoldbergTarjan())
		for _, e := range n.GetGraphData() {
			assert.Equal(t, int64(0), e.Flow)
		}
	})

	t.Run("only_source_set", func(t *testing.T) {
		n := build()
		n.SetSource(0)
		assert.Equal(t, int64(0), n.Dinic())
		assert.Equal(t, int64(0), n.GoldbergTarjan())
	})
}

func TestRunUnknownAlgorithm(t *testing.T) {
	n := ExampleSixVertexNetwork()
	_, err := n.Run(Algorithm("simplex"))
	require.Error(t, err)
}

func TestParseAlgorithm(t *testing.T) {
	a, err := ParseAlgorithm("dinic")
	require.NoError(t, err)
	assert.Equal(t, AlgorithmDinic, a)

	a, err = ParseAlgorithm("goldberg_tarjan")
	require.NoError(t, err)
	assert.Equal(t, AlgorithmGoldbergTarjan, a)

	_, err = ParseAlgorithm("edmonds_karp")
	require.Error(t, err)
}

func TestAlgorithmsAgreeOnRerunAfterMutation(t *testing.T) {
	n := ExampleParallelPaths()
	assert.Equal(t, int64(20), n.Dinic())

	// Сужаем один путь и пересчитываем
	require.True(t, n.RemoveEdge(1, 3))
	require.True(t, n.AddEdge(1, 3, 4))

	dinic := n.Dinic()
	goldberg := n.GoldbergTarjan()
	assert.Equal(t, int64(14), dinic)
	assert.Equal(t, dinic, goldberg)
	checkFlowInvariants(t, n)
}
