package label

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed "templates"
var templateFS embed.FS

type Exporter struct {
	OutputDir string
}

func NewExporter(outputDir string) *Exporter {
	return &Exporter{OutputDir: outputDir}
}

func (e *Exporter) ExportJSON(rows []Row, filename string) error {
	if err := os.MkdirAll(e.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := json.MarshalIndent(rows, "", "\t")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(e.OutputDir, filename), data, 0644)
}

func (e *Exporter) ExportHTML(rows []Row, table Table, stats map[string]any, filename string) error {
	if err := os.MkdirAll(e.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	titleCaser := cases.Title(language.English)
	funcMap := template.FuncMap{
		"title": titleCaser.String,
		"label": func(key string) string {
			return titleCaser.String(strings.ReplaceAll(key, "_", " "))
		},
	}
	tmpl, err := template.New("report.tmpl").Funcs(funcMap).ParseFS(templateFS, "templates/report.tmpl")
	if err != nil {
		return fmt.Errorf("failed to parse HTML template: %w", err)
	}

	f, err := os.Create(filepath.Join(e.OutputDir, filename))
	if err != nil {
		return fmt.Errorf("failed to create HTML file: %w", err)
	}
	defer f.Close()

	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = table.Cells(row)
	}

	statKeys := []string{"records", "rows", "continuation_rows", "records_without_nutrients", "distinct_nutrients"}

	data := map[string]any{
		"Date":     time.Now().Format("2006-01-02 15:04:05"),
		"Headers":  table.Headers(),
		"Rows":     cells,
		"Stats":    stats,
		"StatKeys": statKeys,
	}

	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("failed to render HTML: %w", err)
	}

	return nil
}
