package flow

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "network.json")

	original := ExampleSixVertexNetwork()
	original.Dinic()
	require.NoError(t, original.SaveNetwork(path))

	restored := NewNetwork()
	require.NoError(t, restored.LoadNetwork(path))

	// Покомпонентное совпадение: вершины, рёбра, потоки, источник,
	// сток и значение максимального потока
	assert.Equal(t, original.GetVertexIndices(), restored.GetVertexIndices())
	assert.Equal(t, original.GetGraphData(), restored.GetGraphData())
	assert.Equal(t, original.Source(), restored.Source())
	assert.Equal(t, original.Sink(), restored.Sink())
	assert.Equal(t, original.MaxFlow(), restored.MaxFlow())

	assert.True(t, restored.IsUpdateGraph())
	assert.True(t, restored.IsDrawGraph())
}

func TestSnapshotRoundTripEmptyNetwork(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")

	original := NewNetwork()
	require.NoError(t, original.SaveNetwork(path))

	restored := NewNetwork()
	require.NoError(t, restored.LoadNetwork(path))

	assert.Empty(t, restored.GetVertexIndices())
	assert.Equal(t, Unset, restored.Source())
	assert.Equal(t, Unset, restored.Sink())
}

func TestLoadNetworkMissingFile(t *testing.T) {
	n := ExampleSixVertexNetwork()
	before := n.GetGraphData()

	err := n.LoadNetwork(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)

	// Сеть не изменилась, причина в статусном сообщении
	assert.Equal(t, before, n.GetGraphData())
	assert.Contains(t, n.Prompt(), "Cannot load")
	assert.False(t, n.IsUpdateGraph())
	assert.False(t, n.IsDrawGraph())
}

func TestLoadNetworkCorruptFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not_json", content: "not a snapshot"},
		{name: "self_loop", content: `{"version":1,"source_id":-1,"sink_id":-1,"vertices":[0],"edges":[{"from":0,"to":0,"capacity":1,"flow":0}]}`},
		{name: "flow_above_capacity", content: `{"version":1,"source_id":-1,"sink_id":-1,"vertices":[0,1],"edges":[{"from":0,"to":1,"capacity":1,"flow":2}]}`},
		{name: "unknown_vertex", content: `{"version":1,"source_id":-1,"sink_id":-1,"vertices":[0],"edges":[{"from":0,"to":7,"capacity":1,"flow":0}]}`},
		{name: "duplicate_edge", content: `{"version":1,"source_id":-1,"sink_id":-1,"vertices":[0,1],"edges":[{"from":0,"to":1,"capacity":1,"flow":0},{"from":0,"to":1,"capacity":2,"flow":0}]}`},
		{name: "source_missing", content: `{"version":1,"source_id":9,"sink_id":-1,"vertices":[0],"edges":[]}`},
		{name: "bad_version", content: `{"version":99,"source_id":-1,"sink_id":-1,"vertices":[],"edges":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			n := ExampleBottleneck()
			before := n.GetGraphData()

			require.Error(t, n.LoadNetwork(path))
			assert.Equal(t, before, n.GetGraphData())
			assert.Equal(t, int64(0), n.Source())
		})
	}
}

func TestSaveNetworkBadPath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	n := ExampleBottleneck()

	// Родительский путь занят обычным файлом
	err := n.SaveNetwork(filepath.Join(blocker, "net.json"))
	require.Error(t, err)
	assert.Contains(t, n.Prompt(), "Cannot save")
}
