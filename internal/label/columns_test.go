package label

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTable(t *testing.T) {
	table := DefaultTable()

	require.NoError(t, table.Validate())
	assert.Len(t, table, 20)
	assert.Equal(t, "Product Name", table[0].Header)
	assert.Equal(t, "Weight", table[len(table)-1].Header)

	headers := table.Headers()
	assert.Contains(t, headers, NutrientColumn)
	assert.Contains(t, headers, QuantityColumn)
}

func TestLoadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "columns.yaml")
	content := `- header: Product Name
  field: Product Name
- header: SKU
  field: SKU
- header: Nutrient
- header: Quantity
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	table, err := LoadTable(path)
	require.NoError(t, err)
	require.Len(t, table, 4)
	assert.Equal(t, []string{"Product Name", "SKU", "Nutrient", "Quantity"}, table.Headers())
	assert.Empty(t, table[2].Field)
	assert.Empty(t, table[3].Field)
}

func TestLoadTable_MissingFile(t *testing.T) {
	_, err := LoadTable(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadTable_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "columns.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not a sequence"), 0644))

	_, err := LoadTable(path)
	assert.Error(t, err)
}

func TestTableValidate(t *testing.T) {
	tests := []struct {
		name    string
		table   Table
		wantErr string
	}{
		{
			name:    "empty table",
			table:   Table{},
			wantErr: "empty",
		},
		{
			name: "empty header",
			table: Table{
				{Header: "", Field: "X"},
				{Header: NutrientColumn},
				{Header: QuantityColumn},
			},
			wantErr: "empty header",
		},
		{
			name: "unknown procedural column",
			table: Table{
				{Header: "Mystery"},
				{Header: NutrientColumn},
				{Header: QuantityColumn},
			},
			wantErr: "no source field",
		},
		{
			name: "missing quantity column",
			table: Table{
				{Header: "SKU", Field: "SKU"},
				{Header: NutrientColumn},
			},
			wantErr: "exactly one",
		},
		{
			name: "valid",
			table: Table{
				{Header: "SKU", Field: "SKU"},
				{Header: NutrientColumn},
				{Header: QuantityColumn},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestTableCells(t *testing.T) {
	table := Table{
		{Header: "A", Field: "A"},
		{Header: NutrientColumn},
		{Header: QuantityColumn},
	}
	row := Row{"A": "x", "Nutrient": "Tuky", "Quantity": "0,5 g"}

	assert.Equal(t, []string{"x", "Tuky", "0,5 g"}, table.Cells(row))
}
