package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
)

// CSVGenerator генератор CSV отчётов
type CSVGenerator struct{}

// NewCSVGenerator создаёт новый генератор
func NewCSVGenerator() *CSVGenerator {
	return &CSVGenerator{}
}

// Format возвращает формат генератора
func (g *CSVGenerator) Format() Format {
	return FormatCSV
}

// Generate генерирует CSV отчёт
func (g *CSVGenerator) Generate(ctx context.Context, data *Data) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{
		{"report", title(data)},
		{"algorithm", data.Algorithm},
		{"source", fmt.Sprintf("%d", data.Source)},
		{"sink", fmt.Sprintf("%d", data.Sink)},
		{"max_flow", fmt.Sprintf("%d", data.MaxFlow)},
		{"from", "to", "capacity", "flow", "utilization", "saturated"},
	}

	for _, e := range data.Edges {
		records = append(records, []string{
			fmt.Sprintf("%d", e.From),
			fmt.Sprintf("%d", e.To),
			fmt.Sprintf("%d", e.Capacity),
			fmt.Sprintf("%d", e.Flow),
			fmt.Sprintf("%.4f", e.Utilization()),
			fmt.Sprintf("%t", e.Saturated()),
		})
	}

	if err := w.WriteAll(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
