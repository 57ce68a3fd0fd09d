package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNetworkHashDeterministic(t *testing.T) {
	edges := []EdgeData{
		{From: 0, To: 1, Capacity: 7},
		{From: 0, To: 2, Capacity: 4},
	}

	first := NetworkHash(0, 2, []int64{0, 1, 2}, edges)
	second := NetworkHash(0, 2, []int64{0, 1, 2}, edges)

	assert.Equal(t, first, second)
	assert.Len(t, first, 32)
}

func TestNetworkHashOrderInsensitive(t *testing.T) {
	forward := NetworkHash(0, 2, []int64{0, 1, 2}, []EdgeData{
		{From: 0, To: 1, Capacity: 7},
		{From: 0, To: 2, Capacity: 4},
	})
	reversed := NetworkHash(0, 2, []int64{2, 1, 0}, []EdgeData{
		{From: 0, To: 2, Capacity: 4},
		{From: 0, To: 1, Capacity: 7},
	})

	// Канонизация убирает зависимость от порядка перечисления
	assert.Equal(t, forward, reversed)
}

func TestNetworkHashSensitivity(t *testing.T) {
	base := NetworkHash(0, 2, []int64{0, 1, 2}, []EdgeData{{From: 0, To: 1, Capacity: 7}})

	differentCapacity := NetworkHash(0, 2, []int64{0, 1, 2}, []EdgeData{{From: 0, To: 1, Capacity: 8}})
	differentSink := NetworkHash(0, 1, []int64{0, 1, 2}, []EdgeData{{From: 0, To: 1, Capacity: 7}})
	extraVertex := NetworkHash(0, 2, []int64{0, 1, 2, 3}, []EdgeData{{From: 0, To: 1, Capacity: 7}})

	assert.NotEqual(t, base, differentCapacity)
	assert.NotEqual(t, base, differentSink)
	assert.NotEqual(t, base, extraVertex)
}

func TestBuildSolveKey(t *testing.T) {
	assert.Equal(t, "solve:dinic:abc", BuildSolveKey("abc", "dinic"))
}
