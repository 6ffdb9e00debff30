package label

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/xuri/excelize/v2"
)

type ExcelExporter struct {
	OutputDir string
}

func NewExcelExporter(outputDir string) *ExcelExporter {
	return &ExcelExporter{OutputDir: outputDir}
}

func (e *ExcelExporter) Export(rows []Row, table Table, stats map[string]any, filename string) error {
	if err := os.MkdirAll(e.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := e.createDataSheet(f, "Products", rows, table); err != nil {
		return fmt.Errorf("failed to create data sheet: %w", err)
	}

	if err := e.createSummarySheet(f, "Summary", stats); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	if err := f.SaveAs(filepath.Join(e.OutputDir, filename)); err != nil {
		return fmt.Errorf("failed to save excel file: %w", err)
	}

	return nil
}

func (e *ExcelExporter) createDataSheet(f *excelize.File, sheetName string, rows []Row, table Table) error {
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "#000000", Style: 1},
			{Type: "right", Color: "#000000", Style: 1},
			{Type: "top", Color: "#000000", Style: 1},
			{Type: "bottom", Color: "#000000", Style: 1},
		},
	})

	for col, header := range table.Headers() {
		cell := cellName(col+1, 1)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for i, row := range rows {
		for col, value := range table.Cells(row) {
			f.SetCellValue(sheetName, cellName(col+1, i+2), value)
		}
	}

	f.SetColWidth(sheetName, "A", "A", 30)
	f.SetColWidth(sheetName, "B", columnLetter(len(table)), 18)

	f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	return nil
}

func (e *ExcelExporter) createSummarySheet(f *excelize.File, sheetName string, stats map[string]any) error {
	if _, err := f.NewSheet(sheetName); err != nil {
		return err
	}

	labelStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#B4C7E7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})

	row := 1
	for _, key := range []string{"records", "rows", "continuation_rows", "records_without_nutrients", "distinct_nutrients"} {
		f.SetCellValue(sheetName, cellName(1, row), key)
		f.SetCellStyle(sheetName, cellName(1, row), cellName(1, row), labelStyle)
		f.SetCellValue(sheetName, cellName(2, row), stats[key])
		row++
	}

	if byNutrient, ok := stats["by_nutrient"].(map[string]int); ok {
		row++
		f.SetCellValue(sheetName, cellName(1, row), "Nutrient")
		f.SetCellValue(sheetName, cellName(2, row), "Rows")
		f.SetCellStyle(sheetName, cellName(1, row), cellName(2, row), labelStyle)
		row++

		names := make([]string, 0, len(byNutrient))
		for name := range byNutrient {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			f.SetCellValue(sheetName, cellName(1, row), name)
			f.SetCellValue(sheetName, cellName(2, row), byNutrient[name])
			row++
		}
	}

	f.SetColWidth(sheetName, "A", "A", 30)
	f.SetColWidth(sheetName, "B", "B", 12)

	return nil
}

func cellName(col, row int) string {
	return fmt.Sprintf("%s%d", columnLetter(col), row)
}

func columnLetter(col int) string {
	result := ""
	for col > 0 {
		col--
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}
