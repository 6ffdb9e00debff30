package label

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

type SQLiteExporter struct {
	OutputDir string
}

func NewSQLiteExporter(outputDir string) *SQLiteExporter {
	return &SQLiteExporter{OutputDir: outputDir}
}

// Export writes all rows into a fresh label_rows table with one TEXT
// column per output column, in table order. An existing file at the
// target path is replaced.
func (e *SQLiteExporter) Export(rows []Row, table Table, filename string) error {
	if err := os.MkdirAll(e.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(e.OutputDir, filename)
	_ = os.Remove(path)

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	headers := table.Headers()
	defs := make([]string, len(headers))
	qCols := make([]string, len(headers))
	for i, h := range headers {
		defs[i] = fmt.Sprintf("%q TEXT", h)
		qCols[i] = fmt.Sprintf("%q", h)
	}

	if _, err := db.Exec(`CREATE TABLE "label_rows" (` + strings.Join(defs, ",") + `)`); err != nil {
		return err
	}

	ph := strings.TrimRight(strings.Repeat("?,", len(headers)), ",")
	stmt, err := db.Prepare(`INSERT INTO "label_rows" (` + strings.Join(qCols, ",") + `) VALUES (` + ph + `)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, row := range rows {
		args := make([]any, len(headers))
		for i, h := range headers {
			args[i] = row[h]
		}
		if _, err := stmt.Exec(args...); err != nil {
			return err
		}
	}

	for _, h := range headers {
		if h == "SKU" {
			if _, err := db.Exec(`CREATE INDEX idx_label_rows_sku ON "label_rows"("SKU")`); err != nil {
				return err
			}
		}
	}

	return nil
}
