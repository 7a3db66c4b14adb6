package domain

// RawRecord represents one row from an upstream source.
// Keys are the producer's field names, which vary between tool versions.
// Values are strings, json.Number, bool, nil, nested maps or slices.
type RawRecord map[string]any

// Table is a delimited table held in memory.
// Every cell is text until explicitly coerced.
type Table struct {
	// Header lists the column names in file order.
	Header []string

	// Rows holds one record per data line, keyed by header name.
	// Cells missing from short lines are empty strings.
	Rows []RawRecord
}

// HasColumn reports whether the table header contains name.
func (t *Table) HasColumn(name string) bool {
	for _, h := range t.Header {
		if h == name {
			return true
		}
	}
	return false
}

// Text returns the string value of a column, or "" when absent or not a string.
func (r RawRecord) Text(column string) string {
	v, ok := r[column]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}
