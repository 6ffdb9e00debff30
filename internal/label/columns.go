package label

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Column maps one output column to the record field it is populated from.
// Field is empty for the two procedural columns, which are filled from the
// parsed nutrient entry instead of the record.
type Column struct {
	Header string `yaml:"header"`
	Field  string `yaml:"field,omitempty"`
}

// Table is the ordered column mapping. It fixes both the output column
// order and the record field consulted on first rows, and is passed
// explicitly wherever rows are built so deployments can swap it.
type Table []Column

// Headers of the two procedural columns. The nutrient header doubles as
// the record field holding the packed nutrient text.
const (
	NutrientColumn = "Nutrient"
	QuantityColumn = "Quantity"
)

// DefaultTable returns the standard sticker-sheet layout.
func DefaultTable() Table {
	return Table{
		{Header: "Product Name", Field: "Product Name"},
		{Header: "Label Format", Field: "Label Format"},
		{Header: "SKU", Field: "SKU"},
		{Header: "Product ID", Field: "Product ID"},
		{Header: "Size", Field: "Size"},
		{Header: "#servper_Cont", Field: "Servings per Container"},
		{Header: "ServingSz", Field: "Serving Size"},
		{Header: "Kcal", Field: "Calories"},
		{Header: "Calories from Fat from Saturated", Field: "Calories from Saturated Fat"},
		{Header: NutrientColumn},
		{Header: QuantityColumn},
		{Header: "Percent Allowance", Field: "Percent Allowance"},
		{Header: "Comments", Field: "Comments"},
		{Header: "Ingredients", Field: "Ingredients"},
		{Header: "Claims", Field: "Claims"},
		{Header: "Suggested Use", Field: "Suggested Use"},
		{Header: "Warnings", Field: "Warnings"},
		{Header: "Origin", Field: "Origin"},
		{Header: "Storage", Field: "Storage"},
		{Header: "Weight", Field: "Weight"},
	}
}

// LoadTable reads a column table from a YAML file: a sequence of
// {header, field} mappings, procedural columns given with no field.
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read columns file: %w", err)
	}

	var table Table
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse columns file: %w", err)
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

func (t Table) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("column table is empty")
	}

	nutrient, quantity := 0, 0
	for i, col := range t {
		if col.Header == "" {
			return fmt.Errorf("column %d has an empty header", i)
		}
		if col.Field != "" {
			continue
		}
		switch col.Header {
		case NutrientColumn:
			nutrient++
		case QuantityColumn:
			quantity++
		default:
			return fmt.Errorf("column %q has no source field", col.Header)
		}
	}

	if nutrient != 1 || quantity != 1 {
		return fmt.Errorf("table needs exactly one %s and one %s column without a source field", NutrientColumn, QuantityColumn)
	}
	return nil
}

// Headers returns the output header row in table order.
func (t Table) Headers() []string {
	headers := make([]string, len(t))
	for i, col := range t {
		headers[i] = col.Header
	}
	return headers
}

// Cells renders one row as an ordered value slice matching Headers.
func (t Table) Cells(row Row) []string {
	cells := make([]string, len(t))
	for i, col := range t {
		cells[i] = row[col.Header]
	}
	return cells
}
