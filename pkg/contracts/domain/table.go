package domain

import (
	"fmt"
)

// FieldType represents the parsed data type of a table column.
type FieldType int

const (
	FieldText FieldType = iota
	FieldNumeric
)

// String returns a human-readable name for the field type.
func (t FieldType) String() string {
	switch t {
	case FieldNumeric:
		return "numeric"
	default:
		return "text"
	}
}

// Row holds one observation keyed by field name. Values are float64 for
// numeric fields (NaN when the source cell was empty or "null") and
// string for text fields.
type Row map[string]any

// Table is the parsed result of one short-format export file.
// Column order follows Fields. A Table is built once per parse and is
// not mutated afterwards; the caller owns it exclusively.
type Table struct {
	Fields []string             `json:"fields"`
	Types  map[string]FieldType `json:"types"`
	Rows   []Row                `json:"rows"`
}

// Len returns the number of data rows in the table.
func (t *Table) Len() int {
	return len(t.Rows)
}

// HasField reports whether the table contains the named column.
func (t *Table) HasField(name string) bool {
	return t.FieldIndex(name) >= 0
}

// FieldIndex returns the position of the named column, or -1 if absent.
func (t *Table) FieldIndex(name string) int {
	for i, f := range t.Fields {
		if f == name {
			return i
		}
	}
	return -1
}

// Floats extracts a numeric column as a slice ordered by row.
// Missing cells come back as NaN.
func (t *Table) Floats(name string) ([]float64, error) {
	if !t.HasField(name) {
		return nil, fmt.Errorf("no such field: %s", name)
	}
	if t.Types[name] != FieldNumeric {
		return nil, fmt.Errorf("field %s is not numeric", name)
	}
	out := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		v, ok := row[name].(float64)
		if !ok {
			return nil, fmt.Errorf("field %s row %d holds %T, want float64", name, i, row[name])
		}
		out[i] = v
	}
	return out, nil
}

// Strings extracts a text column as a slice ordered by row.
func (t *Table) Strings(name string) ([]string, error) {
	if !t.HasField(name) {
		return nil, fmt.Errorf("no such field: %s", name)
	}
	if t.Types[name] != FieldText {
		return nil, fmt.Errorf("field %s is not text", name)
	}
	out := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		v, ok := row[name].(string)
		if !ok {
			return nil, fmt.Errorf("field %s row %d holds %T, want string", name, i, row[name])
		}
		out[i] = v
	}
	return out, nil
}
