package label

import "github.com/Afrawles/labelflat/internal/nutrient"

// Row is one output row, keyed by column header.
type Row map[string]string

// Expand turns one product record into its row group: one row per parsed
// nutrient entry, or a single row when the nutrient field is empty or
// absent. Product fields are written on the first row only; continuation
// rows carry just the nutrient columns. The group is never empty.
func Expand(rec Record, table Table) []Row {
	entries := nutrient.Parse(rec.Get(NutrientColumn))

	if len(entries) == 0 {
		return []Row{buildRow(rec, table, nutrient.Entry{}, true)}
	}

	rows := make([]Row, 0, len(entries))
	for i, entry := range entries {
		rows = append(rows, buildRow(rec, table, entry, i == 0))
	}
	return rows
}

// ExpandAll expands every record in input order. Groups are not reordered
// or merged across records.
func ExpandAll(records []Record, table Table) []Row {
	var rows []Row
	for _, rec := range records {
		rows = append(rows, Expand(rec, table)...)
	}
	return rows
}

func buildRow(rec Record, table Table, entry nutrient.Entry, first bool) Row {
	row := make(Row, len(table))
	for _, col := range table {
		switch {
		case col.Field == "" && col.Header == NutrientColumn:
			row[col.Header] = entry.Name
		case col.Field == "" && col.Header == QuantityColumn:
			row[col.Header] = entry.Quantity
		case first && col.Field != "":
			row[col.Header] = rec.Get(col.Field)
		default:
			row[col.Header] = ""
		}
	}
	return row
}
