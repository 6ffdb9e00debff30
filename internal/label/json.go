package label

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// JSONSource reads product records from a JSON file holding an array of
// objects, the export format of the label spreadsheet.
type JSONSource struct {
	Path string
}

func NewJSONSource(path string) *JSONSource {
	return &JSONSource{Path: path}
}

func (s *JSONSource) Name() string {
	return fmt.Sprintf("json(%s)", filepath.Base(s.Path))
}

func (s *JSONSource) HealthCheck() error {
	info, err := os.Stat(s.Path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a JSON file", s.Path)
	}
	return nil
}

func (s *JSONSource) FetchRecords() ([]Record, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, err
	}
	records, err := DecodeRecords(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	return records, nil
}

// DecodeRecords parses a JSON array of product objects. A payload that is
// not an array of objects is a structural error: nothing is emitted for it.
func DecodeRecords(data []byte) ([]Record, error) {
	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("input is not a JSON array of objects: %w", err)
	}

	records := make([]Record, 0, len(raw))
	for _, obj := range raw {
		rec := make(Record, len(obj))
		for field, value := range obj {
			rec[field] = scalarString(value)
		}
		records = append(records, rec)
	}
	return records, nil
}

// scalarString renders a JSON value as cell text. Nulls and nested
// composites have no column representation and become empty.
func scalarString(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		return ""
	}
}
