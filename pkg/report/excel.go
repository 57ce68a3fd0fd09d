package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExcelGenerator генератор Excel отчётов
type ExcelGenerator struct{}

// NewExcelGenerator создаёт новый генератор
func NewExcelGenerator() *ExcelGenerator {
	return &ExcelGenerator{}
}

// Format возвращает формат генератора
func (g *ExcelGenerator) Format() Format {
	return FormatExcel
}

// Generate генерирует Excel отчёт
func (g *ExcelGenerator) Generate(ctx context.Context, data *Data) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Flow Results"
	if _, err := f.NewSheet(sheetName); err != nil {
		return nil, err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})

	row := 1

	// Заголовок
	f.SetCellValue(sheetName, cellAddr("A", row), title(data))
	f.MergeCell(sheetName, cellAddr("A", row), cellAddr("F", row))
	row += 2

	// Сводка
	f.SetCellValue(sheetName, cellAddr("A", row), "Summary")
	f.SetCellStyle(sheetName, cellAddr("A", row), cellAddr("B", row), headerStyle)
	row++

	summary := []struct {
		label string
		value any
	}{
		{"Algorithm", data.Algorithm},
		{"Source", data.Source},
		{"Sink", data.Sink},
		{"Max flow", data.MaxFlow},
		{"Edges", len(data.Edges)},
	}
	for _, s := range summary {
		f.SetCellValue(sheetName, cellAddr("A", row), s.label)
		f.SetCellValue(sheetName, cellAddr("B", row), s.value)
		row++
	}
	row++

	// Таблица рёбер
	headers := []string{"From", "To", "Capacity", "Flow", "Utilization", "Saturated"}
	for i, h := range headers {
		col := string(rune('A' + i))
		f.SetCellValue(sheetName, cellAddr(col, row), h)
		f.SetCellStyle(sheetName, cellAddr(col, row), cellAddr(col, row), headerStyle)
	}
	row++

	for _, e := range data.Edges {
		f.SetCellValue(sheetName, cellAddr("A", row), e.From)
		f.SetCellValue(sheetName, cellAddr("B", row), e.To)
		f.SetCellValue(sheetName, cellAddr("C", row), e.Capacity)
		f.SetCellValue(sheetName, cellAddr("D", row), e.Flow)
		f.SetCellValue(sheetName, cellAddr("E", row), e.Utilization())
		f.SetCellValue(sheetName, cellAddr("F", row), e.Saturated())
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// cellAddr строит адрес ячейки вида A1
func cellAddr(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
