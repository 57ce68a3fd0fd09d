package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testData() *Data {
	return &Data{
		Algorithm: "dinic",
		Source:    0,
		Sink:      3,
		MaxFlow:   11,
		Edges: []EdgeRow{
			{From: 0, To: 1, Capacity: 10, Flow: 10},
			{From: 1, To: 3, Capacity: 10, Flow: 10},
			{From: 0, To: 2, Capacity: 4, Flow: 1},
			{From: 2, To: 3, Capacity: 10, Flow: 1},
		},
	}
}

func TestNewGenerator(t *testing.T) {
	g, err := New(FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, g.Format())

	g, err = New(FormatExcel)
	require.NoError(t, err)
	assert.Equal(t, FormatExcel, g.Format())

	_, err = New(Format("pdf"))
	require.Error(t, err)
}

func TestCSVGenerator(t *testing.T) {
	data, err := NewCSVGenerator().Generate(context.Background(), testData())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)

	// Шапка: 5 строк сводки, заголовок таблицы, 4 ребра
	require.Len(t, records, 10)
	assert.Equal(t, []string{"max_flow", "11"}, records[4])
	assert.Equal(t, []string{"from", "to", "capacity", "flow", "utilization", "saturated"}, records[5])
	assert.Equal(t, []string{"0", "1", "10", "10", "1.0000", "true"}, records[6])
	assert.Equal(t, []string{"0", "2", "4", "1", "0.2500", "false"}, records[8])
}

func TestExcelGenerator(t *testing.T) {
	data, err := NewExcelGenerator().Generate(context.Background(), testData())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("Flow Results", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Maximum Flow Report", title)

	maxFlow, err := f.GetCellValue("Flow Results", "B7")
	require.NoError(t, err)
	assert.Equal(t, "11", maxFlow)
}

func TestEdgeRowUtilization(t *testing.T) {
	row := EdgeRow{From: 0, To: 1, Capacity: 4, Flow: 1}
	assert.InDelta(t, 0.25, row.Utilization(), 1e-9)
	assert.False(t, row.Saturated())

	full := EdgeRow{From: 0, To: 1, Capacity: 4, Flow: 4}
	assert.InDelta(t, 1.0, full.Utilization(), 1e-9)
	assert.True(t, full.Saturated())

	zero := EdgeRow{From: 0, To: 1, Capacity: 0, Flow: 0}
	assert.Zero(t, zero.Utilization())
}
