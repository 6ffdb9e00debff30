package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Afrawles/labelflat/internal/config"
	"github.com/Afrawles/labelflat/internal/label"
	"github.com/Afrawles/labelflat/internal/labelflat"
	"github.com/spf13/cobra"
)

var (
	input       string
	outputDir   string
	formatsFlag string
	columnsFile string
)

var rootCmd = &cobra.Command{
	Use:   "labelflat",
	Short: "Flatten product label JSON into per-nutrient tabular files",
	Long: `Labelflat reads a JSON export of product label records and writes flat
tabular files (CSV, XLSX, SQLite, JSON, HTML) with one row per nutrient.
Product attributes appear on the first row of each group only.`,
	Run: runConvert,
}

var columnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "Print the active column mapping table",
	Run:   showColumns,
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(columnsCmd)

	rootCmd.Flags().StringVarP(&input, "input", "i", "", "Input JSON file (array of product objects)")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory")
	rootCmd.Flags().StringVarP(&formatsFlag, "format", "f", "", "Comma-separated output formats: csv,xlsx,sqlite,json,html")
	rootCmd.Flags().StringVarP(&columnsFile, "columns", "c", "", "Column mapping YAML file (default: built-in table)")

	columnsCmd.Flags().StringVarP(&columnsFile, "columns", "c", "", "Column mapping YAML file (default: built-in table)")
}

func runConvert(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// flags win over environment
	if input != "" {
		cfg.Input = input
	}
	if outputDir != "" {
		cfg.Output.Directory = outputDir
	}
	if formatsFlag != "" {
		cfg.Output.Formats = config.SplitFormats(formatsFlag)
	}
	if columnsFile != "" {
		cfg.Columns = columnsFile
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	columns, err := loadColumns(cfg.Columns)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("Converting %s\n", cfg.Input)

	bar := newSpinner("Flattening records")
	app := labelflat.New(cfg, columns)
	result, err := app.Convert(context.Background())
	finishBar(bar)

	if err != nil {
		fmt.Fprintf(os.Stderr, "\nConversion failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nOutputs saved to %s/\n", cfg.Output.Directory)
	for _, file := range result.Files {
		fmt.Printf("  -> %s\n", file)
	}

	fmt.Printf("\nSummary:\n")
	fmt.Printf("  Records: %d\n", result.Stats["records"])
	fmt.Printf("  Rows written: %d\n", result.Stats["rows"])
	fmt.Printf("  Records without nutrients: %d\n", result.Stats["records_without_nutrients"])
	fmt.Printf("  Distinct nutrients: %d\n", result.Stats["distinct_nutrients"])
}

func showColumns(cmd *cobra.Command, args []string) {
	columns, err := loadColumns(columnsFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, col := range columns {
		if col.Field == "" {
			fmt.Printf("%-35s <- (per nutrient)\n", col.Header)
		} else {
			fmt.Printf("%-35s <- %s\n", col.Header, col.Field)
		}
	}
}

func loadColumns(path string) (label.Table, error) {
	if path == "" {
		return label.DefaultTable(), nil
	}
	return label.LoadTable(path)
}
