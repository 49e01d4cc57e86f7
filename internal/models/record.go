// internal/models/record.go
package models

// Record is one row fetched from the record store, keyed by column name.
// Columns are whatever the table defines; missing or NULL values are
// simply absent from the map.
type Record map[string]string

// Field returns the value for the named column, or def when the column
// is absent or empty.
func (r Record) Field(name, def string) string {
	if v, ok := r[name]; ok && v != "" {
		return v
	}
	return def
}

// Has reports whether the record carries a non-empty value for name.
func (r Record) Has(name string) bool {
	v, ok := r[name]
	return ok && v != ""
}
