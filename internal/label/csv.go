package label

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

type CSVExporter struct {
	OutputDir string
}

func NewCSVExporter(outputDir string) *CSVExporter {
	return &CSVExporter{OutputDir: outputDir}
}

// utf8BOM is written ahead of the header so Excel renders the accented
// nutrient names correctly.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func (e *CSVExporter) Export(rows []Row, table Table, filename string) error {
	if err := os.MkdirAll(e.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(filepath.Join(e.OutputDir, filename))
	if err != nil {
		return err
	}
	defer file.Close()

	if _, err := file.Write(utf8BOM); err != nil {
		return err
	}

	writer := csv.NewWriter(file)

	if err := writer.Write(table.Headers()); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writer.Write(table.Cells(row)); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
