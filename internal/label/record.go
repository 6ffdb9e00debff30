package label

// Record is one product document: an unordered mapping from field name to
// value, as authored in the input file.
type Record map[string]string

// Get returns the field value, or the empty string when the field is
// absent. Missing fields are never an error.
func (r Record) Get(field string) string {
	return r[field]
}

// RecordSource supplies product records for flattening.
type RecordSource interface {
	Name() string
	HealthCheck() error
	FetchRecords() ([]Record, error)
}
