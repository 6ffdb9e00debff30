package labelflat

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Afrawles/labelflat/internal/config"
	"github.com/Afrawles/labelflat/internal/label"
)

type Application struct {
	Config    *config.Config
	Logger    *slog.Logger
	Generator *label.Generator
	Columns   label.Table
}

// Result describes one finished conversion.
type Result struct {
	Files []string
	Stats map[string]any
}

func New(cfg *config.Config, columns label.Table) *Application {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	generator := label.NewGenerator(label.NewJSONSource(cfg.Input))

	return &Application{
		Config:    cfg,
		Logger:    logger,
		Generator: generator,
		Columns:   columns,
	}
}

// Convert reads all records, expands them into label rows and writes every
// configured output format. Nothing is written when the input cannot be
// parsed into records.
func (app *Application) Convert(ctx context.Context) (*Result, error) {
	records, err := app.Generator.Generate(ctx)
	if err != nil {
		app.Logger.Error("failed to read records", "error", err)
		return nil, err
	}

	app.Logger.Info("records loaded", "count", len(records))

	rows := label.ExpandAll(records, app.Columns)
	stats := app.Generator.Statistics(records, rows)

	if err := os.MkdirAll(app.Config.Output.Directory, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	result := &Result{Stats: stats}
	timestamp := time.Now().Format("20060102_150405")

	for _, format := range app.Config.Output.Formats {
		filename := fmt.Sprintf("labels_%s.%s", timestamp, format)
		var exportErr error

		switch format {
		case "csv":
			exportErr = label.NewCSVExporter(app.Config.Output.Directory).Export(rows, app.Columns, filename)
		case "xlsx":
			exportErr = label.NewExcelExporter(app.Config.Output.Directory).Export(rows, app.Columns, stats, filename)
		case "sqlite":
			exportErr = label.NewSQLiteExporter(app.Config.Output.Directory).Export(rows, app.Columns, filename)
		case "json":
			exportErr = label.NewExporter(app.Config.Output.Directory).ExportJSON(rows, filename)
		case "html":
			exportErr = label.NewExporter(app.Config.Output.Directory).ExportHTML(rows, app.Columns, stats, filename)
		default:
			exportErr = fmt.Errorf("unknown format %q", format)
		}

		if exportErr != nil {
			app.Logger.Error("export failed", "format", format, "error", exportErr)
			return nil, fmt.Errorf("failed to export %s: %w", format, exportErr)
		}

		app.Logger.Info("export written", "format", format, "file", filename)
		result.Files = append(result.Files, filename)
	}

	app.Logger.Info("conversion complete",
		"records", stats["records"],
		"rows", stats["rows"],
	)

	return result, nil
}
